package ast

import (
	"tstrip/internal/source"
)

// MemberKind classifies class body members.
type MemberKind uint8

const (
	MemberField MemberKind = iota
	MemberMethod
	MemberGetter
	MemberSetter
	MemberCtor
	MemberIndexSig
	MemberStaticBlock
)

// Member is one class body member.
type Member struct {
	Kind MemberKind
	Span source.Span
	// Modifiers holds every leading modifier keyword with its span.
	Modifiers []Modifier
	// NameSpan covers the member name (or the whole bracketed key).
	NameSpan source.Span
	// Key is the computed-key expression, NoExprID otherwise.
	Key ExprID
	// Question is the optional '?' span, empty when absent.
	Question source.Span
	// Bang is the definite-assignment '!' span, empty when absent.
	Bang source.Span
	// TypeAnn covers ': T' on fields and index signatures.
	TypeAnn source.Span
	// Init is a field initializer.
	Init ExprID
	// Fn is the body of methods, accessors, and constructors.
	Fn FnID
	// Body is a static block's statement block.
	Body StmtID
}

// ClassDecl is a class declaration or expression.
type ClassDecl struct {
	Name     source.StringID // NoStringID for anonymous class expressions
	NameSpan source.Span
	// AbstractSpan covers a leading 'abstract' keyword, empty when absent.
	AbstractSpan source.Span
	// TypeParams covers '<T>' on the class, empty when absent.
	TypeParams source.Span
	// Extends is the heritage expression, NoExprID when absent.
	Extends ExprID
	// ExtendsTypeArgs covers '<T>' on the extends clause.
	ExtendsTypeArgs source.Span
	// Implements covers the whole 'implements A, B' clause.
	Implements source.Span
	Members    []MemberID
	Span       source.Span
}

// Classes owns class declarations and their members.
type Classes struct {
	Arena   *Arena[ClassDecl]
	Members *Arena[Member]
}

func NewClasses(capHint uint) *Classes {
	return &Classes{
		Arena:   NewArena[ClassDecl](capHint),
		Members: NewArena[Member](capHint * 4),
	}
}

func (c *Classes) New(decl ClassDecl) ClassID {
	return ClassID(c.Arena.Allocate(decl))
}

func (c *Classes) Get(id ClassID) *ClassDecl {
	return c.Arena.Get(uint32(id))
}

func (c *Classes) NewMember(m Member) MemberID {
	return MemberID(c.Members.Allocate(m))
}

func (c *Classes) Member(id MemberID) *Member {
	return c.Members.Get(uint32(id))
}
