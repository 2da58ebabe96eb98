package parse

import (
	"strings"

	"sqlbind-generator/internal/common"
)

// Mode is the binding mode attached to a placeholder.
type Mode int

const (
	ModeValue Mode = iota // ":name", bound by value
	ModeRef               // "#name", bound by reference (arrays, OUT args)
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeRef:
		return "ref"
	default:
		return common.UnknownStr
	}
}

// SegmentKind identifies the kind of a template segment.
type SegmentKind int

const (
	SegmentLiteral     SegmentKind = iota // opaque literal text
	SegmentPlaceholder                    // reference to a declared parameter
)

// Segment is one piece of a parsed template. Literal segments carry Text;
// placeholder segments carry Mode and Name.
type Segment struct {
	Kind SegmentKind
	Text string
	Mode Mode
	Name string
	// Offset is the byte offset of the segment in the invocation input.
	// For placeholders it points at the referenced identifier.
	Offset int
}

// Invocation is the parsed form of one mapping invocation.
type Invocation struct {
	// Params are the declared parameter names, in declaration order.
	// Declared parameters are assumed unique.
	Params []string
	// Segments is the template body: literal text and placeholders in
	// the order they were written.
	Segments []Segment
}

// Refs returns the identifiers referenced by the template placeholders,
// in template order. Duplicates and reordering are preserved exactly as
// written.
func (inv *Invocation) Refs() []string {
	var refs []string

	for _, s := range inv.Segments {
		if s.Kind == SegmentPlaceholder {
			refs = append(refs, s.Name)
		}
	}

	return refs
}

// SQLText reconstructs the SQL statement with each placeholder rendered
// as a named bind variable (":name"). The binding mode does not change
// the statement text.
func (inv *Invocation) SQLText() string {
	var sb strings.Builder

	for _, s := range inv.Segments {
		if s.Kind == SegmentPlaceholder {
			sb.WriteByte(':')
			sb.WriteString(s.Name)

			continue
		}

		sb.WriteString(s.Text)
	}

	return sb.String()
}
