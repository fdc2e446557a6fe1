package ast

import (
	"tstrip/internal/source"
)

type Hints struct{ Files, Stmts, Exprs, Fns, Classes, Params uint }

// Builder bundles every arena for one parse. A pass owns exactly one
// Builder; rewrites allocate into it and never mutate shared state.
type Builder struct {
	Files   *Files
	Stmts   *Stmts
	Exprs   *Exprs
	Fns     *Fns
	Classes *Classes
	Params  *Params
	Strings *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 9
	}
	if hints.Fns == 0 {
		hints.Fns = 1 << 5
	}
	if hints.Classes == 0 {
		hints.Classes = 1 << 4
	}
	if hints.Params == 0 {
		hints.Params = 1 << 6
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Fns:     NewFns(hints.Fns),
		Classes: NewClasses(hints.Classes),
		Params:  NewParams(hints.Params),
		Strings: source.NewInterner(),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Body = append(f.Body, stmt)
}

// Lookup resolves an interned name; missing IDs come back empty.
func (b *Builder) Lookup(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
