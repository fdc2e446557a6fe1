package driver

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/parser"
	"tstrip/internal/source"
)

// ParseResult is the parsed tree for one path.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse lexes and parses one file without running a pass.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	toks := parser.Tokenize(file, reporter)
	builder := ast.NewBuilder(ast.Hints{})
	p := parser.New(file, toks, builder, reporter)
	astFile := p.ParseFile()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  astFile,
		Bag:     bag,
	}, nil
}
