package ast

import (
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Modifier records one TypeScript modifier keyword with its span. Erasure
// blanks exactly these spans.
type Modifier struct {
	Kind token.Kind // KwPublic, KwPrivate, KwProtected, KwReadonly, KwAbstract, KwDeclare, KwOverride, KwStatic, KwAsync
	Span source.Span
}

// HasModifier reports whether kind is present in the list.
func HasModifier(mods []Modifier, kind token.Kind) bool {
	for i := range mods {
		if mods[i].Kind == kind {
			return true
		}
	}
	return false
}

// Param is one function parameter.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	// Pattern is set instead of Name for destructuring parameters.
	Pattern ExprID
	// Dots is the rest '...' span, empty when absent.
	Dots source.Span
	// Modifiers holds accessibility/readonly/override keywords; a non-empty
	// list makes the parameter a parameter property.
	Modifiers []Modifier
	// Question is the optional '?' span, empty when absent.
	Question source.Span
	// TypeAnn covers ': T' including the colon, empty when absent.
	TypeAnn source.Span
	Init    ExprID
	Span    source.Span
}

// IsProperty reports whether the parameter is a constructor parameter
// property (it carries at least one accessibility or readonly modifier).
func (p *Param) IsProperty() bool {
	return len(p.Modifiers) > 0
}

// FnDecl is the shared shape of function declarations, function
// expressions, arrows, methods, and constructors.
type FnDecl struct {
	Name     source.StringID // NoStringID for anonymous functions
	NameSpan source.Span
	Async    bool
	Generator bool
	// TypeParams covers '<T, U>' including the brackets, empty when absent.
	TypeParams source.Span
	Params     []ParamID
	// ThisParam covers a leading 'this: T' pseudo-parameter, widened to
	// swallow its trailing comma.
	ThisParam source.Span
	// ReturnType covers ': T' after the parameter list, empty when absent.
	ReturnType source.Span
	// Body is the block statement; NoStmtID for overload signatures,
	// ambient functions, and expression-bodied arrows.
	Body StmtID
	// ExprBody is an arrow's expression body.
	ExprBody ExprID
	Span     source.Span
}

// IsOverloadSig reports whether the function has no body of either form.
func (f *FnDecl) IsOverloadSig() bool {
	return f.Body == NoStmtID && f.ExprBody == NoExprID
}

// Fns owns function declarations.
type Fns struct {
	Arena *Arena[FnDecl]
}

func NewFns(capHint uint) *Fns {
	return &Fns{Arena: NewArena[FnDecl](capHint)}
}

func (f *Fns) New(decl FnDecl) FnID {
	return FnID(f.Arena.Allocate(decl))
}

func (f *Fns) Get(id FnID) *FnDecl {
	return f.Arena.Get(uint32(id))
}

// Params owns function parameters.
type Params struct {
	Arena *Arena[Param]
}

func NewParams(capHint uint) *Params {
	return &Params{Arena: NewArena[Param](capHint)}
}

func (p *Params) New(param Param) ParamID {
	return ParamID(p.Arena.Allocate(param))
}

func (p *Params) Get(id ParamID) *Param {
	return p.Arena.Get(uint32(id))
}
