package bind

import "strings"

// CanonicalName returns the canonical uppercase form of an identifier,
// used as the name in named binding pairs. Pure and total: identifiers
// are already constrained to the identifier character set, so there is
// no failure mode, and the result is idempotent under repeated
// application.
func CanonicalName(ident string) string {
	return strings.ToUpper(ident)
}
