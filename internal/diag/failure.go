package diag

import (
	"fmt"

	"tstrip/internal/source"
)

// FailureKind is the two-kind taxonomy exposed at the engine boundary.
type FailureKind uint8

const (
	// InvalidSyntax: the input could not be parsed as TypeScript at all.
	InvalidSyntax FailureKind = iota
	// UnsupportedSyntax: the input parsed, but contains a construct the
	// active mode cannot erase or lower.
	UnsupportedSyntax
)

func (k FailureKind) String() string {
	switch k {
	case InvalidSyntax:
		return "InvalidSyntax"
	case UnsupportedSyntax:
		return "UnsupportedSyntax"
	}
	return "Unknown"
}

// Failure is the stable diagnostic shape handed to callers. Line is
// 1-based, Column is a 0-based byte column, Snippet is the literal source
// text of the triggering construct.
type Failure struct {
	Kind     FailureKind
	Filename string
	Line     uint32
	Column   uint32
	Message  string
	Snippet  string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", f.Filename, f.Line, f.Column, f.Kind, f.Message)
}

// FailureFrom resolves an internal diagnostic into the boundary shape.
// The kind is derived from the code space: lexer/parser codes surface as
// InvalidSyntax, pass rejections as UnsupportedSyntax.
func FailureFrom(fs *source.FileSet, d Diagnostic) *Failure {
	kind := UnsupportedSyntax
	if d.Code.IsParse() {
		kind = InvalidSyntax
	}
	start, _ := fs.Resolve(d.Primary)
	return &Failure{
		Kind:     kind,
		Filename: fs.Get(d.Primary.File).Path,
		Line:     start.Line,
		Column:   start.Col,
		Message:  d.Message,
		Snippet:  fs.Snippet(d.Primary),
	}
}
