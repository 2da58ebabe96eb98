package bind

import (
	"slices"

	"sqlbind-generator/internal/common"
)

// Shape is the mapping decision: how a method's parameter values are
// packaged into the single expression handed to the binder.
type Shape int

const (
	// ShapeDirect passes the single parameter value bare, unwrapped.
	ShapeDirect Shape = iota
	// ShapePositional packages the values as a flat tuple in declared order.
	ShapePositional
	// ShapePositionalPad is ShapePositional with a trailing inert unit,
	// required by the binder when exactly two values are bound positionally.
	ShapePositionalPad
	// ShapeNamed packages one (canonical name, value) pair per declared
	// parameter, in declared order.
	ShapeNamed
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeDirect:
		return "direct"
	case ShapePositional:
		return "positional"
	case ShapePositionalPad:
		return "positional-pad"
	case ShapeNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// Decide classifies the relationship between the declared parameters and
// the template's reference list. The rules, in fixed order:
//
//  1. One declared parameter: direct, regardless of how often the
//     template references it.
//  2. References identical to the declaration (same length, names, and
//     order): positional, with the two-parameter padding variant.
//  3. Anything else (duplication, omission, reordering): named.
//
// Decide is total over well-formed parser output; malformed input was
// already rejected by the parser. Binding modes play no role here.
func Decide(params, refs []string) Shape {
	if common.IsSingle(params) {
		return ShapeDirect
	}

	if slices.Equal(params, refs) {
		if len(params) == 2 {
			return ShapePositionalPad
		}

		return ShapePositional
	}

	return ShapeNamed
}
