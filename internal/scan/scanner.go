package scan

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// GrammarError reports input that does not match the invocation grammar.
// Offset is the byte position of the offending token in the input.
type GrammarError struct {
	Offset int
	Got    string
	Want   string
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, found %s", e.Offset, e.Want, e.Got)
}

// Tokens splits one invocation input into its lexical elements.
// Whitespace between tokens is insignificant and discarded.
func Tokens(input string) ([]Token, error) {
	var toks []Token

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case r == ':':
			toks = append(toks, Token{Kind: TokenColon, Offset: i, Text: ":"})
			i++

		case r == '#':
			toks = append(toks, Token{Kind: TokenHash, Offset: i, Text: "#"})
			i++

		case r == '=':
			if i+1 >= len(input) || input[i+1] != '>' {
				return nil, &GrammarError{Offset: i, Got: `"="`, Want: `"=>"`}
			}

			toks = append(toks, Token{Kind: TokenArrow, Offset: i, Text: "=>"})
			i += 2

		case r == '"':
			tok, next, err := scanString(input, i)
			if err != nil {
				return nil, err
			}

			toks = append(toks, tok)
			i = next

		case isIdentStart(r):
			tok, next := scanIdent(input, i)
			toks = append(toks, tok)
			i = next

		default:
			return nil, &GrammarError{
				Offset: i,
				Got:    strconv.QuoteRune(r),
				Want:   `identifier, literal text, ":", "#", or "=>"`,
			}
		}
	}

	return toks, nil
}

// scanString consumes a double-quoted literal starting at the quote at
// offset start. Backslash escapes are passed through to strconv.Unquote.
func scanString(input string, start int) (Token, int, error) {
	i := start + 1
	for i < len(input) {
		switch input[i] {
		case '\\':
			i += 2

		case '"':
			raw := input[start : i+1]

			text, err := strconv.Unquote(raw)
			if err != nil {
				return Token{}, 0, &GrammarError{Offset: start, Got: raw, Want: "valid literal text"}
			}

			return Token{Kind: TokenString, Offset: start, Text: text}, i + 1, nil

		default:
			i++
		}
	}

	return Token{}, 0, &GrammarError{Offset: start, Got: "unterminated literal text", Want: `closing '"'`}
}

// scanIdent consumes an identifier starting at offset start.
func scanIdent(input string, start int) (Token, int) {
	i := start
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !isIdentPart(r) {
			break
		}

		i += size
	}

	return Token{Kind: TokenIdent, Offset: start, Text: input[start:i]}, i
}

// isIdentStart returns true if r can start an identifier.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentPart returns true if r can continue an identifier.
func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
