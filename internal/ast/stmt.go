package ast

import (
	"tstrip/internal/source"
)

type StmtKind uint8

const (
	StmtEmpty StmtKind = iota
	StmtExpr
	StmtVar
	StmtFunction
	StmtClass
	StmtBlock
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtForInOf
	StmtSwitch
	StmtTry
	StmtReturn
	StmtThrow
	StmtBreak
	StmtContinue
	StmtLabeled
	StmtDebugger
	StmtImport
	StmtExport
	StmtInterface
	StmtTypeAlias
	StmtEnum
	StmtNamespace
	StmtImportEquals
	StmtExportAssign
)

// StmtFlags carries the modifier prefixes a statement was declared with.
type StmtFlags uint8

const (
	// StmtFlagAmbient marks a 'declare ...' statement.
	StmtFlagAmbient StmtFlags = 1 << iota
	// StmtFlagExported marks 'export <decl>'.
	StmtFlagExported
	// StmtFlagExportDefault marks 'export default <decl>'.
	StmtFlagExportDefault
)

type Stmt struct {
	Kind    StmtKind
	Flags   StmtFlags
	Span    source.Span
	Payload PayloadID
}

func (s *Stmt) Ambient() bool  { return s.Flags&StmtFlagAmbient != 0 }
func (s *Stmt) Exported() bool { return s.Flags&StmtFlagExported != 0 }

// Stmts owns the statement arena and the per-kind payload arenas.
type Stmts struct {
	Arena      *Arena[Stmt]
	ExprStmts  *Arena[ExprStmtData]
	Vars       *Arena[VarStmtData]
	Fns        *Arena[FnStmtData]
	Classes    *Arena[ClassStmtData]
	Blocks     *Arena[BlockData]
	Ifs        *Arena[IfData]
	Whiles     *Arena[WhileData]
	Fors       *Arena[ForData]
	ForInOfs   *Arena[ForInOfData]
	Switches   *Arena[SwitchData]
	Tries      *Arena[TryData]
	Returns    *Arena[ReturnData]
	Labels     *Arena[LabelData]
	Labeleds   *Arena[LabeledData]
	Imports    *Arena[ImportData]
	Exports    *Arena[ExportData]
	TypeDecls  *Arena[TypeDeclData]
	Enums      *Arena[EnumData]
	Namespaces *Arena[NamespaceData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint / 4
	if small == 0 {
		small = 8
	}
	return &Stmts{
		Arena:      NewArena[Stmt](capHint),
		ExprStmts:  NewArena[ExprStmtData](capHint),
		Vars:       NewArena[VarStmtData](small),
		Fns:        NewArena[FnStmtData](small),
		Classes:    NewArena[ClassStmtData](small),
		Blocks:     NewArena[BlockData](small),
		Ifs:        NewArena[IfData](small),
		Whiles:     NewArena[WhileData](small),
		Fors:       NewArena[ForData](small),
		ForInOfs:   NewArena[ForInOfData](small),
		Switches:   NewArena[SwitchData](small),
		Tries:      NewArena[TryData](small),
		Returns:    NewArena[ReturnData](small),
		Labels:     NewArena[LabelData](small),
		Labeleds:   NewArena[LabeledData](small),
		Imports:    NewArena[ImportData](small),
		Exports:    NewArena[ExportData](small),
		TypeDecls:  NewArena[TypeDeclData](small),
		Enums:      NewArena[EnumData](small),
		Namespaces: NewArena[NamespaceData](small),
	}
}

func (s *Stmts) new(kind StmtKind, flags StmtFlags, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Flags:   flags,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}
