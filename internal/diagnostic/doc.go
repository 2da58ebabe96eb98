// Package diagnostic provides structured warnings and errors for the
// sqlbind generator.
//
// Key capabilities:
//   - Grammar errors with byte offsets into the query template
//   - Unreferenced-parameter warnings from the optional validation pass
//   - Undeclared-reference errors from the optional validation pass
package diagnostic
