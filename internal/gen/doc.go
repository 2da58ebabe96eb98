// Package gen provides deterministic Go code generation for query
// binding helpers.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Bare value pass-through for single-parameter queries
//   - Flat positional argument slices, with the two-value padding variant
//   - Named argument slices via database/sql named args
//   - Statement constants reconstructed from the parsed template
package gen
