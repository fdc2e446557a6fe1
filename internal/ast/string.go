package ast

var stmtKindNames = [...]string{
	StmtEmpty:        "Empty",
	StmtExpr:         "Expr",
	StmtVar:          "Var",
	StmtFunction:     "Function",
	StmtClass:        "Class",
	StmtBlock:        "Block",
	StmtIf:           "If",
	StmtWhile:        "While",
	StmtDoWhile:      "DoWhile",
	StmtFor:          "For",
	StmtForInOf:      "ForInOf",
	StmtSwitch:       "Switch",
	StmtTry:          "Try",
	StmtReturn:       "Return",
	StmtThrow:        "Throw",
	StmtBreak:        "Break",
	StmtContinue:     "Continue",
	StmtLabeled:      "Labeled",
	StmtDebugger:     "Debugger",
	StmtImport:       "Import",
	StmtExport:       "Export",
	StmtInterface:    "Interface",
	StmtTypeAlias:    "TypeAlias",
	StmtEnum:         "Enum",
	StmtNamespace:    "Namespace",
	StmtImportEquals: "ImportEquals",
	StmtExportAssign: "ExportAssign",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) && stmtKindNames[k] != "" {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

var exprKindNames = [...]string{
	ExprIdent:      "Ident",
	ExprLit:        "Lit",
	ExprTemplate:   "Template",
	ExprArray:      "Array",
	ExprObject:     "Object",
	ExprFunction:   "Function",
	ExprArrow:      "Arrow",
	ExprClass:      "Class",
	ExprUnary:      "Unary",
	ExprUpdate:     "Update",
	ExprBinary:     "Binary",
	ExprAssign:     "Assign",
	ExprCond:       "Cond",
	ExprCall:       "Call",
	ExprNew:        "New",
	ExprMember:     "Member",
	ExprIndex:      "Index",
	ExprSeq:        "Seq",
	ExprSpread:     "Spread",
	ExprParen:      "Paren",
	ExprTagged:     "Tagged",
	ExprAwait:      "Await",
	ExprYield:      "Yield",
	ExprAs:         "As",
	ExprSatisfies:  "Satisfies",
	ExprNonNull:    "NonNull",
	ExprTypeAssert: "TypeAssert",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) && exprKindNames[k] != "" {
		return exprKindNames[k]
	}
	return "Expr(?)"
}
