package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"tstrip/internal/diag"
	"tstrip/internal/source"
)

// Pretty renders every diagnostic in the bag. Call bag.Sort() first for
// deterministic order. Per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <context lines>
//	  <source line>
//	  <caret underline>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

// PrettyOne renders a single diagnostic.
func PrettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	prettyOne(w, d, fs, opts)
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintln(w, headline(d, fs, opts))
	writeSpanContext(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				displayPath(fs.Get(n.Span.File).Path, opts.PathMode), pos.Line, pos.Col, n.Msg)
			writeSpanContext(w, fs, n.Span, opts)
		}
	}
}

func headline(d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	pos, _ := fs.Resolve(d.Primary)
	path := displayPath(fs.Get(d.Primary.File).Path, opts.PathMode)

	sev := d.Severity.String()
	code := d.Code.String()
	if opts.Color {
		switch d.Severity {
		case diag.SevError:
			sev = color.New(color.FgRed, color.Bold).Sprint(sev)
		case diag.SevWarning:
			sev = color.New(color.FgYellow, color.Bold).Sprint(sev)
		default:
			sev = color.New(color.FgCyan).Sprint(sev)
		}
		code = color.New(color.Faint).Sprint(code)
	}

	return fmt.Sprintf("%s:%d:%d: %s %s: %s", path, pos.Line, pos.Col, sev, code, d.Message)
}

// writeSpanContext prints the offending line with a caret underline, plus
// up to opts.Context preceding lines.
func writeSpanContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if sp.Empty() && sp.Start == 0 {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := int(start.Line) - opts.Context
	if first < 1 {
		first = 1
	}
	for ln := first; ln < int(start.Line); ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, f.GetLine(uint32(ln)))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, line)

	width := int(sp.End - sp.Start)
	if end.Line != start.Line {
		// multi-line span: underline to the end of the first line
		width = len(line) - int(start.Col)
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", int(start.Col)), marker)
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
