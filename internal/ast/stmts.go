package ast

import (
	"tstrip/internal/source"
)

// Constructors. Each allocates the payload and the statement node.

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, 0, span, NoPayloadID)
}

func (s *Stmts) NewDebugger(span source.Span) StmtID {
	return s.new(StmtDebugger, 0, span, NoPayloadID)
}

func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(ExprStmtData{Expr: expr})
	return s.new(StmtExpr, 0, span, PayloadID(payload))
}

func (s *Stmts) NewVar(span source.Span, flags StmtFlags, data VarStmtData) StmtID {
	payload := s.Vars.Allocate(data)
	return s.new(StmtVar, flags, span, PayloadID(payload))
}

func (s *Stmts) NewFunction(span source.Span, flags StmtFlags, fn FnID) StmtID {
	payload := s.Fns.Allocate(FnStmtData{Fn: fn})
	return s.new(StmtFunction, flags, span, PayloadID(payload))
}

func (s *Stmts) NewClass(span source.Span, flags StmtFlags, class ClassID) StmtID {
	payload := s.Classes.Allocate(ClassStmtData{Class: class})
	return s.new(StmtClass, flags, span, PayloadID(payload))
}

func (s *Stmts) NewBlock(span source.Span, body []StmtID) StmtID {
	payload := s.Blocks.Allocate(BlockData{Body: body})
	return s.new(StmtBlock, 0, span, PayloadID(payload))
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(IfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, 0, span, PayloadID(payload))
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(WhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, 0, span, PayloadID(payload))
}

func (s *Stmts) NewDoWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(WhileData{Cond: cond, Body: body})
	return s.new(StmtDoWhile, 0, span, PayloadID(payload))
}

func (s *Stmts) NewFor(span source.Span, data ForData) StmtID {
	payload := s.Fors.Allocate(data)
	return s.new(StmtFor, 0, span, PayloadID(payload))
}

func (s *Stmts) NewForInOf(span source.Span, data ForInOfData) StmtID {
	payload := s.ForInOfs.Allocate(data)
	return s.new(StmtForInOf, 0, span, PayloadID(payload))
}

func (s *Stmts) NewSwitch(span source.Span, data SwitchData) StmtID {
	payload := s.Switches.Allocate(data)
	return s.new(StmtSwitch, 0, span, PayloadID(payload))
}

func (s *Stmts) NewTry(span source.Span, data TryData) StmtID {
	payload := s.Tries.Allocate(data)
	return s.new(StmtTry, 0, span, PayloadID(payload))
}

func (s *Stmts) NewReturn(span source.Span, expr ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnData{Expr: expr})
	return s.new(StmtReturn, 0, span, PayloadID(payload))
}

func (s *Stmts) NewThrow(span source.Span, expr ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnData{Expr: expr})
	return s.new(StmtThrow, 0, span, PayloadID(payload))
}

func (s *Stmts) NewBreak(span source.Span, label source.Span) StmtID {
	payload := s.Labels.Allocate(LabelData{Label: label})
	return s.new(StmtBreak, 0, span, PayloadID(payload))
}

func (s *Stmts) NewContinue(span source.Span, label source.Span) StmtID {
	payload := s.Labels.Allocate(LabelData{Label: label})
	return s.new(StmtContinue, 0, span, PayloadID(payload))
}

func (s *Stmts) NewLabeled(span source.Span, label source.Span, body StmtID) StmtID {
	payload := s.Labeleds.Allocate(LabeledData{Label: label, Body: body})
	return s.new(StmtLabeled, 0, span, PayloadID(payload))
}

func (s *Stmts) NewImport(span source.Span, data ImportData) StmtID {
	payload := s.Imports.Allocate(data)
	return s.new(StmtImport, 0, span, PayloadID(payload))
}

func (s *Stmts) NewExport(span source.Span, data ExportData) StmtID {
	payload := s.Exports.Allocate(data)
	return s.new(StmtExport, 0, span, PayloadID(payload))
}

func (s *Stmts) NewInterface(span source.Span, flags StmtFlags, data TypeDeclData) StmtID {
	payload := s.TypeDecls.Allocate(data)
	return s.new(StmtInterface, flags, span, PayloadID(payload))
}

func (s *Stmts) NewTypeAlias(span source.Span, flags StmtFlags, data TypeDeclData) StmtID {
	payload := s.TypeDecls.Allocate(data)
	return s.new(StmtTypeAlias, flags, span, PayloadID(payload))
}

func (s *Stmts) NewEnum(span source.Span, flags StmtFlags, data EnumData) StmtID {
	payload := s.Enums.Allocate(data)
	return s.new(StmtEnum, flags, span, PayloadID(payload))
}

func (s *Stmts) NewNamespace(span source.Span, flags StmtFlags, data NamespaceData) StmtID {
	payload := s.Namespaces.Allocate(data)
	return s.new(StmtNamespace, flags, span, PayloadID(payload))
}

func (s *Stmts) NewImportEquals(span source.Span) StmtID {
	return s.new(StmtImportEquals, 0, span, NoPayloadID)
}

func (s *Stmts) NewExportAssign(span source.Span) StmtID {
	return s.new(StmtExportAssign, 0, span, NoPayloadID)
}
