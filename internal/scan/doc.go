// Package scan tokenizes binding invocations.
//
// The lexical grammar has five token kinds: identifiers, double-quoted
// literal text, the "=>" separator, and the ":" and "#" binding markers.
// Every token carries its byte offset so grammar violations can point at
// the offending position.
package scan
