package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlbind-generator/internal/parse"
)

func TestValidate_Clean(t *testing.T) {
	inv, err := parse.Parse(`id name => "SET name = " :name " WHERE id = " :id`)
	require.NoError(t, err)

	diags := Validate("UpdateUser", inv)

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_UnreferencedParamWarns(t *testing.T) {
	inv, err := parse.Parse(`id name extra => "SET name = " :name " WHERE id = " :id`)
	require.NoError(t, err)

	diags := Validate("UpdateUser", inv)

	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "param_unreferenced", diags.Warnings[0].Code)
	assert.Equal(t, "UpdateUser", diags.Warnings[0].Query)
	assert.Contains(t, diags.Warnings[0].Message, "extra")
}

func TestValidate_UndeclaredRefErrors(t *testing.T) {
	input := `id => "WHERE id = " :id " AND name = " :name`
	inv, err := parse.Parse(input)
	require.NoError(t, err)

	diags := Validate("GetUser", inv)

	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "ref_undeclared", diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "name")

	// The error points at the offending reference in the input.
	assert.Equal(t, 40, diags.Errors[0].Offset)
	assert.Equal(t, "name", input[diags.Errors[0].Offset:diags.Errors[0].Offset+4])
}

func TestValidate_DuplicateReferencesAreNotFlagged(t *testing.T) {
	inv, err := parse.Parse(`id => "i = " :id " OR j = " :id`)
	require.NoError(t, err)

	diags := Validate("GetUser", inv)

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}
