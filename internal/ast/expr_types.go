package ast

import (
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// ExprIdentData holds an identifier reference.
type ExprIdentData struct {
	Name source.StringID
}

// LitKind distinguishes literal expressions.
type LitKind uint8

const (
	LitNumber LitKind = iota
	LitString
	LitRegex
	LitBool
	LitNull
	LitThis
	LitSuper
)

// ExprLitData holds a literal; the span carries the text.
type ExprLitData struct {
	Lit LitKind
}

// ExprTemplateData holds a template literal with interpolations.
type ExprTemplateData struct {
	Parts []ExprID
}

// ExprListData serves arrays, sequences, and spread-free lists. A NoExprID
// element is an elision hole.
type ExprListData struct {
	Elems []ExprID
}

// ObjectProp is one property in an object literal.
type ObjectProp struct {
	// Key is the computed-key expression, NoExprID for plain keys.
	Key ExprID
	// KeySpan covers the property name for plain keys.
	KeySpan source.Span
	// Value is the property value, NoExprID for shorthand and methods.
	Value ExprID
	// Fn is set for method, getter, and setter properties.
	Fn FnID
}

type ExprObjectData struct {
	Props []ObjectProp
}

// ExprFnData serves function and arrow expressions.
type ExprFnData struct {
	Fn FnID
}

type ExprClassData struct {
	Class ClassID
}

type ExprUnaryData struct {
	Op      token.Kind
	Operand ExprID
}

type ExprUpdateData struct {
	Op      token.Kind // PlusPlus or MinusMinus
	Prefix  bool
	Operand ExprID
}

type ExprBinaryData struct {
	Op    token.Kind
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Op     token.Kind
	Target ExprID
	Value  ExprID
}

type ExprCondData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// ExprCallData serves call and new expressions.
type ExprCallData struct {
	Callee ExprID
	// TypeArgs covers '<T, U>' at the call site, empty when absent.
	TypeArgs source.Span
	Args     []ExprID
	Optional bool // ?.()
}

type ExprMemberData struct {
	Object   ExprID
	PropSpan source.Span
	Optional bool // ?.
}

type ExprIndexData struct {
	Object   ExprID
	Index    ExprID
	Optional bool // ?.[
}

// ExprWrapData serves single-child wrappers: paren, spread, await, yield,
// non-null.
type ExprWrapData struct {
	Inner ExprID
	// Delegate is yield* only.
	Delegate bool
}

// ExprCastData serves as/satisfies/angle-bracket assertions. TypeSpan covers
// the type syntax; for 'as'/'satisfies' it includes the keyword.
type ExprCastData struct {
	Inner    ExprID
	TypeSpan source.Span
}

type ExprTaggedData struct {
	Tag   ExprID
	Quasi ExprID
}

// Constructors and accessors.

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLit(span source.Span, lit LitKind) ExprID {
	payload := e.Lits.Allocate(ExprLitData{Lit: lit})
	return e.new(ExprLit, span, PayloadID(payload))
}

func (e *Exprs) Lit(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Lits.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewTemplate(span source.Span, parts []ExprID) ExprID {
	payload := e.Templates.Allocate(ExprTemplateData{Parts: parts})
	return e.new(ExprTemplate, span, PayloadID(payload))
}

func (e *Exprs) Template(id ExprID) (*ExprTemplateData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTemplate {
		return nil, false
	}
	return e.Templates.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Lists.Allocate(ExprListData{Elems: elems})
	return e.new(ExprArray, span, PayloadID(payload))
}

func (e *Exprs) NewSeq(span source.Span, elems []ExprID) ExprID {
	payload := e.Lists.Allocate(ExprListData{Elems: elems})
	return e.new(ExprSeq, span, PayloadID(payload))
}

func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprArray && expr.Kind != ExprSeq) {
		return nil, false
	}
	return e.Lists.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewObject(span source.Span, props []ObjectProp) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{Props: props})
	return e.new(ExprObject, span, PayloadID(payload))
}

func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprObject {
		return nil, false
	}
	return e.Objects.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewFunction(span source.Span, fn FnID) ExprID {
	payload := e.Fns.Allocate(ExprFnData{Fn: fn})
	return e.new(ExprFunction, span, PayloadID(payload))
}

func (e *Exprs) NewArrow(span source.Span, fn FnID) ExprID {
	payload := e.Fns.Allocate(ExprFnData{Fn: fn})
	return e.new(ExprArrow, span, PayloadID(payload))
}

func (e *Exprs) Fn(id ExprID) (*ExprFnData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprFunction && expr.Kind != ExprArrow) {
		return nil, false
	}
	return e.Fns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewClassExpr(span source.Span, class ClassID) ExprID {
	payload := e.ClassRefs.Allocate(ExprClassData{Class: class})
	return e.new(ExprClass, span, PayloadID(payload))
}

func (e *Exprs) ClassRef(id ExprID) (*ExprClassData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClass {
		return nil, false
	}
	return e.ClassRefs.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op token.Kind, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUpdate(span source.Span, op token.Kind, prefix bool, operand ExprID) ExprID {
	payload := e.Updates.Allocate(ExprUpdateData{Op: op, Prefix: prefix, Operand: operand})
	return e.new(ExprUpdate, span, PayloadID(payload))
}

func (e *Exprs) Update(id ExprID) (*ExprUpdateData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUpdate {
		return nil, false
	}
	return e.Updates.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op token.Kind, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, op token.Kind, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCond(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Conds.Allocate(ExprCondData{Cond: cond, Then: then, Else: els})
	return e.new(ExprCond, span, PayloadID(payload))
}

func (e *Exprs) Cond(id ExprID) (*ExprCondData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCond {
		return nil, false
	}
	return e.Conds.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, data ExprCallData) ExprID {
	payload := e.Calls.Allocate(data)
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) NewNew(span source.Span, data ExprCallData) ExprID {
	payload := e.Calls.Allocate(data)
	return e.new(ExprNew, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprCall && expr.Kind != ExprNew) {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(span source.Span, object ExprID, propSpan source.Span, optional bool) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Object: object, PropSpan: propSpan, Optional: optional})
	return e.new(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIndex(span source.Span, object, index ExprID, optional bool) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Object: object, Index: index, Optional: optional})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewSpread(span source.Span, inner ExprID) ExprID {
	payload := e.Wraps.Allocate(ExprWrapData{Inner: inner})
	return e.new(ExprSpread, span, PayloadID(payload))
}

func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Wraps.Allocate(ExprWrapData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

func (e *Exprs) NewAwait(span source.Span, inner ExprID) ExprID {
	payload := e.Wraps.Allocate(ExprWrapData{Inner: inner})
	return e.new(ExprAwait, span, PayloadID(payload))
}

func (e *Exprs) NewYield(span source.Span, inner ExprID, delegate bool) ExprID {
	payload := e.Wraps.Allocate(ExprWrapData{Inner: inner, Delegate: delegate})
	return e.new(ExprYield, span, PayloadID(payload))
}

func (e *Exprs) NewNonNull(span source.Span, inner ExprID) ExprID {
	payload := e.Wraps.Allocate(ExprWrapData{Inner: inner})
	return e.new(ExprNonNull, span, PayloadID(payload))
}

func (e *Exprs) Wrap(id ExprID) (*ExprWrapData, bool) {
	expr := e.Get(id)
	if expr == nil {
		return nil, false
	}
	switch expr.Kind {
	case ExprSpread, ExprParen, ExprAwait, ExprYield, ExprNonNull:
		return e.Wraps.Get(uint32(expr.Payload)), true
	default:
		return nil, false
	}
}

func (e *Exprs) NewAs(span source.Span, inner ExprID, typeSpan source.Span) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Inner: inner, TypeSpan: typeSpan})
	return e.new(ExprAs, span, PayloadID(payload))
}

func (e *Exprs) NewSatisfies(span source.Span, inner ExprID, typeSpan source.Span) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Inner: inner, TypeSpan: typeSpan})
	return e.new(ExprSatisfies, span, PayloadID(payload))
}

func (e *Exprs) NewTypeAssert(span source.Span, inner ExprID, typeSpan source.Span) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Inner: inner, TypeSpan: typeSpan})
	return e.new(ExprTypeAssert, span, PayloadID(payload))
}

func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil {
		return nil, false
	}
	switch expr.Kind {
	case ExprAs, ExprSatisfies, ExprTypeAssert:
		return e.Casts.Get(uint32(expr.Payload)), true
	default:
		return nil, false
	}
}

func (e *Exprs) NewTagged(span source.Span, tag, quasi ExprID) ExprID {
	payload := e.Taggeds.Allocate(ExprTaggedData{Tag: tag, Quasi: quasi})
	return e.new(ExprTagged, span, PayloadID(payload))
}

func (e *Exprs) Tagged(id ExprID) (*ExprTaggedData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTagged {
		return nil, false
	}
	return e.Taggeds.Get(uint32(expr.Payload)), true
}
