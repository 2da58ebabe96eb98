// Package bind decides how declared method parameters are packaged for
// the binder: bare value, positional tuple, or named pairs.
//
// Key capabilities:
//   - Shape classification from declared parameters vs template references
//   - Canonical uppercase parameter names for named binding
//   - Optional validation pass cross-checking declarations and references
package bind
