package ast

import (
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// ExprStmtData holds an expression statement.
type ExprStmtData struct {
	Expr ExprID
}

// VarDecl is a single declarator inside var/let/const.
type VarDecl struct {
	Name     source.StringID
	NameSpan source.Span
	// Pattern is set instead of Name for destructuring declarators.
	Pattern ExprID
	// Bang is the definite-assignment '!' span, empty when absent.
	Bang source.Span
	// TypeAnn covers ': T' including the colon, empty when absent.
	TypeAnn source.Span
	Init    ExprID
}

// VarStmtData holds a var/let/const statement.
type VarStmtData struct {
	Kw    token.Kind // KwVar, KwLet, or KwConst
	Decls []VarDecl
}

// FnStmtData holds a function declaration.
type FnStmtData struct {
	Fn FnID
}

// ClassStmtData holds a class declaration.
type ClassStmtData struct {
	Class ClassID
}

// BlockData holds a braced statement list.
type BlockData struct {
	Body []StmtID
}

type IfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

// WhileData serves both while and do-while.
type WhileData struct {
	Cond ExprID
	Body StmtID
}

type ForData struct {
	Init StmtID // var stmt or expr stmt, NoStmtID when empty
	Cond ExprID
	Post ExprID
	Body StmtID
}

type ForInOfData struct {
	Decl   StmtID // the head declaration or expression statement
	IsOf   bool
	Object ExprID
	Body   StmtID
}

type SwitchCase struct {
	Test source.Span // span of the 'case expr' head; empty for default
	Expr ExprID      // NoExprID for default
	Body []StmtID
}

type SwitchData struct {
	Disc  ExprID
	Cases []SwitchCase
}

type TryData struct {
	Block StmtID
	// CatchParam is the binding, NoExprID for a bare catch.
	CatchParam ExprID
	// CatchType covers the TS ': unknown' annotation on the catch binding.
	CatchType source.Span
	CatchBody StmtID // NoStmtID when there is no catch clause
	Finally   StmtID // NoStmtID when there is no finally clause
}

// ReturnData serves return and throw.
type ReturnData struct {
	Expr ExprID // NoExprID for a bare return
}

// LabelData serves break/continue with an optional label.
type LabelData struct {
	Label source.Span // empty when absent
}

type LabeledData struct {
	Label source.Span
	Body  StmtID
}

// ImportData holds an import declaration. The specifier structure is
// skimmed; erasure only needs the type-only flags and spans.
type ImportData struct {
	// TypeOnly marks 'import type ...' (whole statement erasable).
	TypeOnly bool
	// TypeSpecs are spans of inline 'type name,' specifiers, each span
	// widened to swallow its trailing comma when one follows.
	TypeSpecs []source.Span
	// Source is the module string literal span.
	Source source.Span
}

// ExportData holds an export declaration.
type ExportData struct {
	// TypeOnly marks 'export type { ... }'.
	TypeOnly bool
	// TypeSpecs are inline 'type name' specifier spans in an export list.
	TypeSpecs []source.Span
	// Decl is the exported declaration for 'export <decl>' forms,
	// NoStmtID for list and re-export forms.
	Decl StmtID
}

// TypeDeclData serves interface and type-alias declarations. Their bodies
// are skimmed; the statement span is all erasure needs.
type TypeDeclData struct {
	Name     source.StringID
	NameSpan source.Span
}

// EnumMember is one member of an enum declaration.
type EnumMember struct {
	// Name is the member name text. For string-literal names it is the
	// decoded inner text; NameIsString records the spelling.
	Name         string
	NameSpan     source.Span
	NameIsString bool
	Init         ExprID // NoExprID for auto-numbered members
}

type EnumData struct {
	Name     source.StringID
	NameSpan source.Span
	Const    bool
	Members  []EnumMember
}

type NamespaceData struct {
	Name     source.StringID
	NameSpan source.Span
	// KeywordSpan covers the 'namespace' or 'module' keyword.
	KeywordSpan source.Span
	// ModuleKw is true for the legacy 'module foo' spelling.
	ModuleKw bool
	// Dotted is true for 'namespace a.b.c' names.
	Dotted bool
	Body   []StmtID
}

// Accessor helpers, one per payload-carrying kind.

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExpr {
		return nil, false
	}
	return s.ExprStmts.Get(uint32(st.Payload)), true
}

func (s *Stmts) Var(id StmtID) (*VarStmtData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtVar {
		return nil, false
	}
	return s.Vars.Get(uint32(st.Payload)), true
}

func (s *Stmts) Function(id StmtID) (*FnStmtData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFunction {
		return nil, false
	}
	return s.Fns.Get(uint32(st.Payload)), true
}

func (s *Stmts) Class(id StmtID) (*ClassStmtData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtClass {
		return nil, false
	}
	return s.Classes.Get(uint32(st.Payload)), true
}

func (s *Stmts) Block(id StmtID) (*BlockData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(st.Payload)), true
}

func (s *Stmts) If(id StmtID) (*IfData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(st.Payload)), true
}

func (s *Stmts) While(id StmtID) (*WhileData, bool) {
	st := s.Get(id)
	if st == nil || (st.Kind != StmtWhile && st.Kind != StmtDoWhile) {
		return nil, false
	}
	return s.Whiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) For(id StmtID) (*ForData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(st.Payload)), true
}

func (s *Stmts) ForInOf(id StmtID) (*ForInOfData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtForInOf {
		return nil, false
	}
	return s.ForInOfs.Get(uint32(st.Payload)), true
}

func (s *Stmts) Switch(id StmtID) (*SwitchData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtSwitch {
		return nil, false
	}
	return s.Switches.Get(uint32(st.Payload)), true
}

func (s *Stmts) Try(id StmtID) (*TryData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtTry {
		return nil, false
	}
	return s.Tries.Get(uint32(st.Payload)), true
}

func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	st := s.Get(id)
	if st == nil || (st.Kind != StmtReturn && st.Kind != StmtThrow) {
		return nil, false
	}
	return s.Returns.Get(uint32(st.Payload)), true
}

func (s *Stmts) Labeled(id StmtID) (*LabeledData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLabeled {
		return nil, false
	}
	return s.Labeleds.Get(uint32(st.Payload)), true
}

func (s *Stmts) Import(id StmtID) (*ImportData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtImport {
		return nil, false
	}
	return s.Imports.Get(uint32(st.Payload)), true
}

func (s *Stmts) Export(id StmtID) (*ExportData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExport {
		return nil, false
	}
	return s.Exports.Get(uint32(st.Payload)), true
}

func (s *Stmts) TypeDecl(id StmtID) (*TypeDeclData, bool) {
	st := s.Get(id)
	if st == nil || (st.Kind != StmtInterface && st.Kind != StmtTypeAlias) {
		return nil, false
	}
	return s.TypeDecls.Get(uint32(st.Payload)), true
}

func (s *Stmts) Enum(id StmtID) (*EnumData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtEnum {
		return nil, false
	}
	return s.Enums.Get(uint32(st.Payload)), true
}

func (s *Stmts) Namespace(id StmtID) (*NamespaceData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtNamespace {
		return nil, false
	}
	return s.Namespaces.Get(uint32(st.Payload)), true
}
