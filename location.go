package graphforge

import "fmt"

// Location records where a declaration event originated. Every event carries
// one; it flows through into definitions and issues for error reporting.
type Location struct {
	File string
	Line int
}

// IsZero reports whether the location carries no position.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 }

// String renders "file:line", or "<unknown>" when the location is empty.
func (l Location) String() string {
	if l.File == "" && l.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// SourceReference ties a type definition to the module and location that
// declared it. Every definition except the implicit root has exactly one.
type SourceReference struct {
	Module string
	Loc    Location
}
