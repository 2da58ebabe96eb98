package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlbind-generator/internal/parse"
)

// exprFor parses an invocation and renders its expression.
func exprFor(t *testing.T, input string) string {
	t.Helper()

	inv, err := parse.Parse(input)
	require.NoError(t, err)

	return Expr(inv)
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "direct ignores reference count",
			input:    `arg => "SELECT " :arg " FROM xxx WHERE x = " :arg " OR y = " :arg " ORDER BY z"`,
			expected: `arg`,
		},
		{
			name:     "two positional parameters get the inert pad",
			input:    `a1 a2 => "SELECT * FROM xxx WHERE a = " :a1 " AND b = " :a2`,
			expected: `[]any{a1, a2, struct{}{}}`,
		},
		{
			name:     "unique references in declared order are positional",
			input:    `a1 a2 a3 => "UPDATE xxx SET a = " :a1 ", b = " :a2 " WHERE c IN (" #a3 ")"`,
			expected: `[]any{a1, a2, a3}`,
		},
		{
			name:     "unreferenced parameter is named",
			input:    `a1 a2 a3 => "UPDATE xxx SET a = " :a1 " WHERE b = " :a2`,
			expected: `[]any{sql.Named("A1", a1), sql.Named("A2", a2), sql.Named("A3", a3)}`,
		},
		{
			name:     "duplicates collapse to one pair per declared parameter",
			input:    `id name data => "UPDATE xxx SET a = " :name ", b = " :name ", c = " :data " WHERE i = " :id " OR ( x = " :name " AND i != " :id ")"`,
			expected: `[]any{sql.Named("ID", id), sql.Named("NAME", name), sql.Named("DATA", data)}`,
		},
		{
			name:     "reordered references are named",
			input:    `a1 a2 a3 => "UPDATE xxx SET a = " :a2 ", b = " :a1 " WHERE c IN (" #a3 ")"`,
			expected: `[]any{sql.Named("A1", a1), sql.Named("A2", a2), sql.Named("A3", a3)}`,
		},
		{
			name:     "by-reference marker does not change the decision",
			input:    `id out_name => "UPDATE xxx SET x = x WHERE i = " :id " RETURN x INTO " #out_name`,
			expected: `[]any{id, out_name, struct{}{}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exprFor(t, tt.input))
		})
	}
}

func TestUppercaseLit(t *testing.T) {
	lit, err := UppercaseLit("param_name")

	require.NoError(t, err)
	assert.Equal(t, `"PARAM_NAME"`, lit)
}

func TestUppercaseLit_Errors(t *testing.T) {
	for _, input := range []string{"", "a b", `"text"`, ":a"} {
		_, err := UppercaseLit(input)

		assert.Error(t, err, "input %q", input)
	}
}
