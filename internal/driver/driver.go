// Package driver wires the front end and the passes into whole-file
// operations: load, tokenize, parse, then strip or transform. Everything
// here is per-invocation state; concurrent calls share nothing.
package driver

import (
	"tstrip/internal/ast"
	"tstrip/internal/classify"
	"tstrip/internal/diag"
	"tstrip/internal/lower"
	"tstrip/internal/parser"
	"tstrip/internal/printer"
	"tstrip/internal/source"
	"tstrip/internal/strip"
)

// DefaultMaxDiagnostics caps the front end's diagnostic bag. The passes
// are first-fatal-wins, so the cap only matters for lex/parse errors.
const DefaultMaxDiagnostics = 64

// Result is one finished file. Exactly one of Code and Failure is set.
type Result struct {
	Path    string
	Mode    classify.Mode
	Code    []byte
	Failure *diag.Failure
}

// Strip loads a file and runs the strip-only pass on it.
func Strip(path string) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return runFile(fs, fileID, classify.ModeStrip), nil
}

// Transform loads a file and runs the full transform pass on it.
func Transform(path string) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return runFile(fs, fileID, classify.ModeTransform), nil
}

// StripSource runs a mode over in-memory content, for stdin and tests.
func StripSource(name string, content []byte, mode classify.Mode) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return runFile(fs, fileID, mode)
}

// runFile is the shared single-file pipeline.
func runFile(fs *source.FileSet, fileID source.FileID, mode classify.Mode) *Result {
	file := fs.Get(fileID)
	res := &Result{Path: file.Path, Mode: mode}

	bag := diag.NewBag(DefaultMaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	toks := parser.Tokenize(file, reporter)
	builder := ast.NewBuilder(ast.Hints{})
	p := parser.New(file, toks, builder, reporter)
	astFile := p.ParseFile()

	if d, failed := bag.First(); failed {
		res.Failure = diag.FailureFrom(fs, d)
		return res
	}

	switch mode {
	case classify.ModeStrip:
		out, d := strip.File(fs, builder, astFile)
		if d != nil {
			res.Failure = diag.FailureFrom(fs, *d)
			return res
		}
		res.Code = out.Code
	case classify.ModeTransform:
		out, d := lower.File(fs, builder, astFile)
		if d != nil {
			res.Failure = diag.FailureFrom(fs, *d)
			return res
		}
		res.Code = printer.Render(file.Content, out.Edits)
	}
	return res
}
