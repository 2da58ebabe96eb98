// Package parse turns tokenized binding invocations into their structured
// form: the declared parameter list and the template segments.
//
// The parser is a two-state scan (header, then body after "=>"). The body
// alternates mandatory literal text with optional marker+identifier
// placeholders and terminates when the input is exhausted after a literal.
// Each placeholder keeps its binding mode; the mode is threaded through to
// consumers but never inspected by the mapping decision.
package parse
