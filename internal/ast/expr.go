package ast

import (
	"tstrip/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprTemplate
	ExprArray
	ExprObject
	ExprFunction
	ExprArrow
	ExprClass
	ExprUnary
	ExprUpdate
	ExprBinary
	ExprAssign
	ExprCond
	ExprCall
	ExprNew
	ExprMember
	ExprIndex
	ExprSeq
	ExprSpread
	ExprParen
	ExprTagged
	ExprAwait
	ExprYield
	// TypeScript expression wrappers.
	ExprAs
	ExprSatisfies
	ExprNonNull
	ExprTypeAssert
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// Exprs owns the expression arena and the per-kind payload arenas.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Lits      *Arena[ExprLitData]
	Templates *Arena[ExprTemplateData]
	Lists     *Arena[ExprListData]
	Objects   *Arena[ExprObjectData]
	Fns       *Arena[ExprFnData]
	ClassRefs *Arena[ExprClassData]
	Unaries   *Arena[ExprUnaryData]
	Updates   *Arena[ExprUpdateData]
	Binaries  *Arena[ExprBinaryData]
	Assigns   *Arena[ExprAssignData]
	Conds     *Arena[ExprCondData]
	Calls     *Arena[ExprCallData]
	Members   *Arena[ExprMemberData]
	Indices   *Arena[ExprIndexData]
	Wraps     *Arena[ExprWrapData]
	Casts     *Arena[ExprCastData]
	Taggeds   *Arena[ExprTaggedData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint / 4
	if small == 0 {
		small = 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Lits:      NewArena[ExprLitData](capHint),
		Templates: NewArena[ExprTemplateData](small),
		Lists:     NewArena[ExprListData](small),
		Objects:   NewArena[ExprObjectData](small),
		Fns:       NewArena[ExprFnData](small),
		ClassRefs: NewArena[ExprClassData](small),
		Unaries:   NewArena[ExprUnaryData](small),
		Updates:   NewArena[ExprUpdateData](small),
		Binaries:  NewArena[ExprBinaryData](small),
		Assigns:   NewArena[ExprAssignData](small),
		Conds:     NewArena[ExprCondData](small),
		Calls:     NewArena[ExprCallData](small),
		Members:   NewArena[ExprMemberData](small),
		Indices:   NewArena[ExprIndexData](small),
		Wraps:     NewArena[ExprWrapData](small),
		Casts:     NewArena[ExprCastData](small),
		Taggeds:   NewArena[ExprTaggedData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}
