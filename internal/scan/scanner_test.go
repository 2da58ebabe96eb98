package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "header only",
			input: "id name =>",
			expected: []Token{
				{Kind: TokenIdent, Offset: 0, Text: "id"},
				{Kind: TokenIdent, Offset: 3, Text: "name"},
				{Kind: TokenArrow, Offset: 8, Text: "=>"},
			},
		},
		{
			name:  "full invocation",
			input: `id => "SELECT x WHERE i = " :id`,
			expected: []Token{
				{Kind: TokenIdent, Offset: 0, Text: "id"},
				{Kind: TokenArrow, Offset: 3, Text: "=>"},
				{Kind: TokenString, Offset: 6, Text: "SELECT x WHERE i = "},
				{Kind: TokenColon, Offset: 28, Text: ":"},
				{Kind: TokenIdent, Offset: 29, Text: "id"},
			},
		},
		{
			name:  "by-reference marker",
			input: `#ids`,
			expected: []Token{
				{Kind: TokenHash, Offset: 0, Text: "#"},
				{Kind: TokenIdent, Offset: 1, Text: "ids"},
			},
		},
		{
			name:  "escaped quotes in literal",
			input: `"a = \"x\""`,
			expected: []Token{
				{Kind: TokenString, Offset: 0, Text: `a = "x"`},
			},
		},
		{
			name:  "underscore identifiers",
			input: "out_name _tmp1",
			expected: []Token{
				{Kind: TokenIdent, Offset: 0, Text: "out_name"},
				{Kind: TokenIdent, Offset: 9, Text: "_tmp1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokens(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, toks)
		})
	}
}

func TestTokens_OffsetsLocateTokens(t *testing.T) {
	// Every offset must point at the token's first byte in the input:
	// markers and identifiers at their spelling, literals at the
	// opening quote.
	input := `id name => "SELECT x WHERE i = " :id " AND j IN (" #name ")"`

	toks, err := Tokens(input)
	require.NoError(t, err)

	for _, tok := range toks {
		if tok.Kind == TokenString {
			assert.Equal(t, byte('"'), input[tok.Offset], "string token at offset %d", tok.Offset)

			continue
		}

		assert.Equal(t, tok.Text, input[tok.Offset:tok.Offset+len(tok.Text)], "token at offset %d", tok.Offset)
	}
}

func TestTokens_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "unterminated literal", input: `id => "SELECT`, offset: 6},
		{name: "lone equals", input: `id = name`, offset: 3},
		{name: "equals at end of input", input: `id =`, offset: 3},
		{name: "invalid marker character", input: `id => "x = " $id`, offset: 13},
		{name: "digit cannot start identifier", input: `1d =>`, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokens(tt.input)

			require.Error(t, err)

			var gerr *GrammarError
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.offset, gerr.Offset)
		})
	}
}

func TestGrammarError_Message(t *testing.T) {
	err := &GrammarError{Offset: 13, Got: `"$"`, Want: "identifier"}

	assert.Equal(t, `offset 13: expected identifier, found "$"`, err.Error())
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "identifier", TokenIdent.String())
	assert.Equal(t, "arrow", TokenArrow.String())
	assert.Equal(t, "string", TokenString.String())
	assert.Equal(t, "colon", TokenColon.String())
	assert.Equal(t, "hash", TokenHash.String())
	assert.Equal(t, "unknown", TokenKind(99).String())
}
