package gen

import (
	"fmt"
	"strconv"
	"strings"

	"sqlbind-generator/internal/bind"
	"sqlbind-generator/internal/parse"
)

// Expr renders the argument-packaging expression for one parsed
// invocation as Go source text. The shape follows bind.Decide:
//
//	direct          id
//	positional      []any{a1, a2, a3}
//	positional-pad  []any{a1, a2, struct{}{}}
//	named           []any{sql.Named("A1", a1), ...}
//
// The padding element is the inert unit the binder requires when exactly
// two values are bound positionally.
func Expr(inv *parse.Invocation) string {
	params := inv.Params

	switch bind.Decide(params, inv.Refs()) {
	case bind.ShapeDirect:
		return params[0]

	case bind.ShapePositional:
		return "[]any{" + strings.Join(params, ", ") + "}"

	case bind.ShapePositionalPad:
		return "[]any{" + params[0] + ", " + params[1] + ", struct{}{}}"

	case bind.ShapeNamed:
		pairs := make([]string, len(params))
		for i, p := range params {
			pairs[i] = fmt.Sprintf("sql.Named(%q, %s)", bind.CanonicalName(p), p)
		}

		return "[]any{" + strings.Join(pairs, ", ") + "}"

	default:
		return ""
	}
}

// UppercaseLit parses an uppercasing invocation (a single identifier)
// and renders its canonical name as a quoted Go string literal.
func UppercaseLit(input string) (string, error) {
	ident, err := parse.ParseIdent(input)
	if err != nil {
		return "", err
	}

	return strconv.Quote(bind.CanonicalName(ident)), nil
}
