package scan

import "sqlbind-generator/internal/common"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenIdent  TokenKind = iota // parameter name or reference
	TokenArrow                   // "=>" header/body separator
	TokenString                  // double-quoted literal text
	TokenColon                   // ":" by-value marker
	TokenHash                    // "#" by-reference marker
)

// String returns a human-readable token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "identifier"
	case TokenArrow:
		return "arrow"
	case TokenString:
		return "string"
	case TokenColon:
		return "colon"
	case TokenHash:
		return "hash"
	default:
		return common.UnknownStr
	}
}

// Token is one lexical element of an invocation, with its byte offset.
type Token struct {
	Kind TokenKind
	// Offset is the byte offset of the token's first character in the input.
	Offset int
	// Text is the identifier spelling or the decoded string contents.
	// Marker and arrow tokens carry their literal spelling.
	Text string
}
