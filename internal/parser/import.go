package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

func (p *Parser) atFrom() bool {
	return p.at(token.Ident) && p.cur().Text == "from"
}

func (p *Parser) parseImport() (ast.StmtID, bool) {
	importTok := p.cur()

	// dynamic import and import.meta are expressions
	if next := p.peekAt(1); next.Kind == token.LParen || next.Kind == token.Dot {
		return p.parseExprStmt()
	}

	// import A = require("mod") / import A = B.C
	if p.peekAt(1).IsIdentLike() && p.peekAt(2).Kind == token.Assign {
		return p.parseImportEquals()
	}

	p.advance() // 'import'
	var data ast.ImportData

	// import "mod";
	if p.at(token.StringLit) {
		data.Source = p.advance().Span
		if !p.semi() {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewImport(p.spanFrom(importTok.Span), data), true
	}

	// import type ...
	if p.at(token.KwType) {
		next := p.peekAt(1)
		if next.Kind == token.LBrace || next.Kind == token.Star ||
			(next.IsIdentLike() && next.Text != "from") {
			p.advance()
			data.TypeOnly = true
		}
	}

	// default binding
	if p.atIdentLike() {
		p.advance()
		p.eat(token.Comma)
	}

	switch p.cur().Kind {
	case token.Star:
		p.advance()
		if _, ok := p.expect(token.KwAs, diag.SynUnexpectedToken, "expected 'as'"); !ok {
			return ast.NoStmtID, false
		}
		if _, _, ok := p.parseIdent(); !ok {
			return ast.NoStmtID, false
		}
	case token.LBrace:
		specs, ok := p.parseImportSpecs()
		if !ok {
			return ast.NoStmtID, false
		}
		data.TypeSpecs = specs
	}

	if !p.atFrom() {
		p.errHere(diag.SynUnexpectedToken, "expected 'from'")
		return ast.NoStmtID, false
	}
	p.advance()
	src, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module specifier")
	if !ok {
		return ast.NoStmtID, false
	}
	data.Source = src.Span
	if !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewImport(p.spanFrom(importTok.Span), data), true
}

// parseImportSpecs consumes '{ a, type b as c, ... }' and returns the spans
// of the inline type-only specifiers, each widened over its trailing comma.
func (p *Parser) parseImportSpecs() ([]source.Span, bool) {
	p.advance() // '{'
	var typeSpecs []source.Span
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		specStart := p.cur().Span
		typeOnly := false
		if p.at(token.KwType) {
			// 'type' alone and 'type as x' are bindings named type;
			// 'type as as x' is a type-only import of 'as'
			next := p.peekAt(1)
			switch {
			case next.Kind == token.KwAs:
				if p.peekAt(2).Kind == token.KwAs && p.peekAt(3).IsIdentLike() {
					p.advance()
					typeOnly = true
				}
			case next.IsIdentLike() || next.Kind == token.StringLit:
				p.advance()
				typeOnly = true
			}
		}
		if !p.atIdentLike() && !p.at(token.StringLit) {
			p.errHere(diag.SynExpectIdentifier, "expected import name")
			return nil, false
		}
		p.advance()
		if p.at(token.KwAs) {
			p.advance()
			if _, _, ok := p.parseIdent(); !ok {
				return nil, false
			}
		}
		spec := specStart.Cover(p.lastSpan)
		if p.at(token.Comma) {
			spec = spec.Cover(p.cur().Span)
			p.advance()
		}
		if typeOnly {
			typeSpecs = append(typeSpecs, spec)
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'"); !ok {
		return nil, false
	}
	return typeSpecs, true
}

// parseImportEquals consumes 'import A = require("mod")' or
// 'import A = B.C'. The construct is recorded for the classifier; both
// output modes reject it.
func (p *Parser) parseImportEquals() (ast.StmtID, bool) {
	importTok := p.advance()
	p.advance() // name
	p.advance() // '='
	if _, ok := p.parseAssignExpr(); !ok {
		return ast.NoStmtID, false
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewImportEquals(p.spanFrom(importTok.Span)), true
}

func (p *Parser) parseExport() (ast.StmtID, bool) {
	exportTok := p.advance()
	var data ast.ExportData

	switch p.cur().Kind {
	case token.Assign:
		// export = expr
		p.advance()
		if _, ok := p.parseAssignExpr(); !ok {
			return ast.NoStmtID, false
		}
		if !p.semi() {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewExportAssign(p.spanFrom(exportTok.Span)), true

	case token.KwImport:
		// export import A = B
		return p.parseImportEquals()

	case token.Star:
		p.advance()
		if p.eat(token.KwAs) {
			if _, _, ok := p.parseIdent(); !ok {
				return ast.NoStmtID, false
			}
		}
		if !p.atFrom() {
			p.errHere(diag.SynUnexpectedToken, "expected 'from'")
			return ast.NoStmtID, false
		}
		p.advance()
		if _, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module specifier"); !ok {
			return ast.NoStmtID, false
		}
		if !p.semi() {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewExport(p.spanFrom(exportTok.Span), data), true

	case token.KwDefault:
		p.advance()
		return p.parseExportDefault(exportTok)

	case token.LBrace:
		return p.parseExportList(exportTok, false)

	case token.KwType:
		if p.peekAt(1).Kind == token.LBrace {
			p.advance()
			return p.parseExportList(exportTok, true)
		}
		if p.peekAt(1).IsIdentLike() {
			decl, ok := p.parseTypeAlias(ast.StmtFlagExported)
			if !ok {
				return ast.NoStmtID, false
			}
			data.Decl = decl
			return p.b.Stmts.NewExport(p.spanFrom(exportTok.Span), data), true
		}
		p.errHere(diag.SynUnexpectedToken, "expected declaration after 'export'")
		return ast.NoStmtID, false

	default:
		decl, ok := p.parseExportedDecl()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Decl = decl
		return p.b.Stmts.NewExport(p.spanFrom(exportTok.Span), data), true
	}
}

func (p *Parser) parseExportedDecl() (ast.StmtID, bool) {
	switch p.cur().Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		if p.cur().Kind == token.KwConst && p.peekAt(1).Kind == token.KwEnum {
			return p.parseEnum(ast.StmtFlagExported)
		}
		return p.parseVarStmt(ast.StmtFlagExported, true)
	case token.KwFunction, token.KwAsync:
		return p.parseFunctionStmt(ast.StmtFlagExported)
	case token.KwClass, token.KwAbstract:
		return p.parseClassStmt(ast.StmtFlagExported)
	case token.KwEnum:
		return p.parseEnum(ast.StmtFlagExported)
	case token.KwNamespace, token.KwModule:
		return p.parseNamespace(ast.StmtFlagExported)
	case token.KwInterface:
		return p.parseInterface(ast.StmtFlagExported)
	case token.KwDeclare:
		stmt, ok := p.parseAmbient()
		if !ok {
			return ast.NoStmtID, false
		}
		p.b.Stmts.Get(stmt).Flags |= ast.StmtFlagExported
		return stmt, true
	default:
		p.errHere(diag.SynUnexpectedToken, "expected declaration after 'export'")
		return ast.NoStmtID, false
	}
}

func (p *Parser) parseExportDefault(exportTok token.Token) (ast.StmtID, bool) {
	var data ast.ExportData
	flags := ast.StmtFlagExported | ast.StmtFlagExportDefault

	switch {
	case p.at(token.KwFunction),
		p.at(token.KwAsync) && p.peekAt(1).Kind == token.KwFunction,
		p.at(token.KwClass),
		p.at(token.KwAbstract) && p.peekAt(1).Kind == token.KwClass:
		decl, ok := p.parseDefaultFnOrClass(flags)
		if !ok {
			return ast.NoStmtID, false
		}
		data.Decl = decl
	default:
		start := p.cur().Span
		expr, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		if !p.semi() {
			return ast.NoStmtID, false
		}
		data.Decl = p.b.Stmts.NewExprStmt(p.spanFrom(start), expr)
		flagged := p.b.Stmts.Get(data.Decl)
		flagged.Flags |= flags
	}
	return p.b.Stmts.NewExport(p.spanFrom(exportTok.Span), data), true
}

// parseDefaultFnOrClass parses the declaration after 'export default'.
// Default functions and classes may be anonymous.
func (p *Parser) parseDefaultFnOrClass(flags ast.StmtFlags) (ast.StmtID, bool) {
	if p.at(token.KwClass) || p.at(token.KwAbstract) {
		start := p.cur().Span
		class, ok := p.parseClassDecl(false)
		if !ok {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewClass(p.spanFrom(start), flags, class), true
	}

	start := p.cur().Span
	async := p.eat(token.KwAsync)
	p.advance() // 'function'
	generator := p.eat(token.Star)
	name := source.NoStringID
	var nameSpan source.Span
	if p.atIdentLike() {
		var ok bool
		name, nameSpan, ok = p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	fn, ok := p.parseFnRest(name, nameSpan, async, generator)
	if !ok {
		return ast.NoStmtID, false
	}
	decl := p.b.Fns.Get(fn)
	decl.Span = p.spanFrom(start)
	return p.b.Stmts.NewFunction(p.spanFrom(start), flags, fn), true
}

// parseExportList consumes 'export [type] { a, type b } [from "mod"]'.
func (p *Parser) parseExportList(exportTok token.Token, typeOnly bool) (ast.StmtID, bool) {
	specs, ok := p.parseImportSpecs()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.atFrom() {
		p.advance()
		if _, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module specifier"); !ok {
			return ast.NoStmtID, false
		}
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewExport(p.spanFrom(exportTok.Span), ast.ExportData{
		TypeOnly:  typeOnly,
		TypeSpecs: specs,
	}), true
}
