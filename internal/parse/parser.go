package parse

import (
	"strconv"

	"sqlbind-generator/internal/scan"
)

// state is the parser's position in the invocation grammar.
type state int

const (
	stateHeader state = iota // reading declared parameters, before "=>"
	stateBody                // reading literal/placeholder segments
)

// Parse consumes one mapping invocation:
//
//	ident* "=>" ( string ( (":" | "#") ident )? )*
//
// The header lists the declared parameter names; the body alternates
// literal text with optional marker+identifier placeholders. Parse
// returns a GrammarError naming the unexpected token and its byte
// offset when the input does not match.
func Parse(input string) (*Invocation, error) {
	toks, err := scan.Tokens(input)
	if err != nil {
		return nil, err
	}

	inv := &Invocation{}
	st := stateHeader

	for i := 0; i < len(toks); {
		tok := toks[i]

		switch st {
		case stateHeader:
			switch tok.Kind {
			case scan.TokenIdent:
				inv.Params = append(inv.Params, tok.Text)
				i++

			case scan.TokenArrow:
				st = stateBody
				i++

			default:
				return nil, &scan.GrammarError{
					Offset: tok.Offset,
					Got:    describe(tok),
					Want:   `parameter name or "=>"`,
				}
			}

		case stateBody:
			// A literal segment is mandatory before each placeholder.
			if tok.Kind != scan.TokenString {
				return nil, &scan.GrammarError{
					Offset: tok.Offset,
					Got:    describe(tok),
					Want:   "literal text",
				}
			}

			inv.Segments = append(inv.Segments, Segment{
				Kind:   SegmentLiteral,
				Text:   tok.Text,
				Offset: tok.Offset,
			})
			i++

			if i >= len(toks) {
				return inv, nil
			}

			seg, next, err := parsePlaceholder(toks, i, len(input))
			if err != nil {
				return nil, err
			}

			inv.Segments = append(inv.Segments, seg)
			i = next
		}
	}

	if st == stateHeader {
		return nil, &scan.GrammarError{
			Offset: len(input),
			Got:    "end of input",
			Want:   `"=>"`,
		}
	}

	return inv, nil
}

// parsePlaceholder consumes one marker+identifier pair starting at toks[i].
func parsePlaceholder(toks []scan.Token, i, end int) (Segment, int, error) {
	marker := toks[i]

	var mode Mode

	switch marker.Kind {
	case scan.TokenColon:
		mode = ModeValue

	case scan.TokenHash:
		mode = ModeRef

	default:
		return Segment{}, 0, &scan.GrammarError{
			Offset: marker.Offset,
			Got:    describe(marker),
			Want:   `":" or "#" marker`,
		}
	}

	i++
	if i >= len(toks) {
		return Segment{}, 0, &scan.GrammarError{
			Offset: end,
			Got:    "end of input",
			Want:   "parameter reference",
		}
	}

	if toks[i].Kind != scan.TokenIdent {
		return Segment{}, 0, &scan.GrammarError{
			Offset: toks[i].Offset,
			Got:    describe(toks[i]),
			Want:   "parameter reference",
		}
	}

	seg := Segment{
		Kind:   SegmentPlaceholder,
		Mode:   mode,
		Name:   toks[i].Text,
		Offset: toks[i].Offset,
	}

	return seg, i + 1, nil
}

// ParseIdent consumes an uppercasing invocation: exactly one identifier.
func ParseIdent(input string) (string, error) {
	toks, err := scan.Tokens(input)
	if err != nil {
		return "", err
	}

	if len(toks) == 0 {
		return "", &scan.GrammarError{Offset: len(input), Got: "end of input", Want: "identifier"}
	}

	if toks[0].Kind != scan.TokenIdent {
		return "", &scan.GrammarError{Offset: toks[0].Offset, Got: describe(toks[0]), Want: "identifier"}
	}

	if len(toks) > 1 {
		return "", &scan.GrammarError{Offset: toks[1].Offset, Got: describe(toks[1]), Want: "end of input"}
	}

	return toks[0].Text, nil
}

// describe renders a token for an error message.
func describe(t scan.Token) string {
	if t.Kind == scan.TokenString {
		return "literal text " + strconv.Quote(t.Text)
	}

	return strconv.Quote(t.Text)
}
