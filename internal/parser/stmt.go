package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// parseStmt dispatches one statement. Contextual keywords are
// disambiguated by one or two tokens of lookahead before committing.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	if p.fatal {
		return ast.NoStmtID, false
	}

	switch p.cur().Kind {
	case token.Semicolon:
		t := p.advance()
		return p.b.Stmts.NewEmpty(t.Span), true

	case token.LBrace:
		return p.parseBlock()

	case token.KwVar, token.KwConst:
		if p.cur().Kind == token.KwConst && p.peekAt(1).Kind == token.KwEnum {
			return p.parseEnum(0)
		}
		return p.parseVarStmt(0, true)

	case token.KwLet:
		if next := p.peekAt(1); next.IsIdentLike() || next.Kind == token.LBracket || next.Kind == token.LBrace {
			return p.parseVarStmt(0, true)
		}
		return p.parseExprStmt()

	case token.KwFunction:
		return p.parseFunctionStmt(0)

	case token.KwAsync:
		if p.peekAt(1).Kind == token.KwFunction && !p.peekAt(1).NewlineBefore {
			return p.parseFunctionStmt(0)
		}
		return p.parseExprStmt()

	case token.KwClass:
		return p.parseClassStmt(0)

	case token.KwAbstract:
		if p.peekAt(1).Kind == token.KwClass {
			return p.parseClassStmt(0)
		}
		return p.parseExprStmt()

	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwTry:
		return p.parseTry()

	case token.KwReturn:
		return p.parseReturnOrThrow(token.KwReturn)
	case token.KwThrow:
		return p.parseReturnOrThrow(token.KwThrow)

	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()

	case token.KwDebugger:
		t := p.advance()
		p.semi()
		return p.b.Stmts.NewDebugger(p.spanFrom(t.Span)), !p.fatal

	case token.KwImport:
		return p.parseImport()
	case token.KwExport:
		return p.parseExport()

	case token.KwInterface:
		if p.peekAt(1).IsIdentLike() {
			return p.parseInterface(0)
		}
		return p.parseExprStmt()

	case token.KwType:
		if next := p.peekAt(1); next.IsIdentLike() && !next.NewlineBefore {
			after := p.peekAt(2)
			if after.Kind == token.Assign || after.Kind == token.Lt {
				return p.parseTypeAlias(0)
			}
		}
		return p.parseExprStmt()

	case token.KwEnum:
		return p.parseEnum(0)

	case token.KwNamespace:
		if p.peekAt(1).IsIdentLike() && !p.peekAt(1).NewlineBefore {
			return p.parseNamespace(0)
		}
		return p.parseExprStmt()

	case token.KwModule:
		if next := p.peekAt(1); (next.IsIdentLike() || next.Kind == token.StringLit) && !next.NewlineBefore {
			return p.parseNamespace(0)
		}
		return p.parseExprStmt()

	case token.KwDeclare:
		if p.startsAmbientDecl() {
			return p.parseAmbient()
		}
		return p.parseExprStmt()

	case token.At:
		p.errHere(diag.SynDecoratorsDisabled, "decorators are not supported")
		return ast.NoStmtID, false

	default:
		// label?
		if p.cur().IsIdentLike() && p.peekAt(1).Kind == token.Colon {
			return p.parseLabeled()
		}
		return p.parseExprStmt()
	}
}

func (p *Parser) startsAmbientDecl() bool {
	next := p.peekAt(1)
	if next.NewlineBefore {
		return false
	}
	switch next.Kind {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
		token.KwClass, token.KwAbstract, token.KwEnum, token.KwNamespace,
		token.KwModule, token.KwInterface, token.KwType, token.KwAsync:
		return true
	}
	// 'declare global { ... }'
	return next.Kind == token.Ident && next.Text == "global"
}

// parseAmbient parses 'declare <decl>' and marks the result ambient. The
// declared form may omit bodies and initializers.
func (p *Parser) parseAmbient() (ast.StmtID, bool) {
	declTok := p.advance() // 'declare'

	var id ast.StmtID
	var ok bool
	switch p.cur().Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		if p.cur().Kind == token.KwConst && p.peekAt(1).Kind == token.KwEnum {
			id, ok = p.parseEnum(ast.StmtFlagAmbient)
		} else {
			id, ok = p.parseVarStmt(ast.StmtFlagAmbient, true)
		}
	case token.KwFunction, token.KwAsync:
		id, ok = p.parseFunctionStmt(ast.StmtFlagAmbient)
	case token.KwClass, token.KwAbstract:
		id, ok = p.parseClassStmt(ast.StmtFlagAmbient)
	case token.KwEnum:
		id, ok = p.parseEnum(ast.StmtFlagAmbient)
	case token.KwNamespace, token.KwModule:
		id, ok = p.parseNamespace(ast.StmtFlagAmbient)
	case token.KwInterface:
		id, ok = p.parseInterface(ast.StmtFlagAmbient)
	case token.KwType:
		id, ok = p.parseTypeAlias(ast.StmtFlagAmbient)
	case token.Ident: // declare global
		id, ok = p.parseNamespace(ast.StmtFlagAmbient)
	default:
		p.errHere(diag.SynUnexpectedToken, "expected declaration after 'declare'")
		return ast.NoStmtID, false
	}
	if !ok {
		return ast.NoStmtID, false
	}

	// widen the span to cover the 'declare' keyword
	st := p.b.Stmts.Get(id)
	st.Span = declTok.Span.Cover(st.Span)
	st.Flags |= ast.StmtFlagAmbient
	return id, true
}

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	var body []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		body = append(body, stmt)
	}
	rbrace, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewBlock(lbrace.Span.Cover(rbrace.Span), body), true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.cur().Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewExprStmt(p.spanFrom(start), expr), true
}

func (p *Parser) parseIf() (ast.StmtID, bool) {
	ifTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	els := ast.NoStmtID
	if p.eat(token.KwElse) {
		els, ok = p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	return p.b.Stmts.NewIf(p.spanFrom(ifTok.Span), cond, then, els), true
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	whileTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewWhile(p.spanFrom(whileTok.Span), cond, body), true
}

func (p *Parser) parseDoWhile() (ast.StmtID, bool) {
	doTok := p.advance()
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	p.eat(token.Semicolon)
	return p.b.Stmts.NewDoWhile(p.spanFrom(doTok.Span), cond, body), true
}

func (p *Parser) parseFor() (ast.StmtID, bool) {
	forTok := p.advance()
	p.eat(token.KwAwait) // for await (... of ...)
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); !ok {
		return ast.NoStmtID, false
	}

	var head ast.StmtID
	switch p.cur().Kind {
	case token.Semicolon:
		// empty init
	case token.KwVar, token.KwLet, token.KwConst:
		var ok bool
		head, ok = p.parseVarStmt(0, false)
		if !ok {
			return ast.NoStmtID, false
		}
	default:
		start := p.cur().Span
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		head = p.b.Stmts.NewExprStmt(p.spanFrom(start), expr)
	}

	if p.at(token.KwIn) || p.at(token.KwOf) {
		isOf := p.advance().Kind == token.KwOf
		object, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
			return ast.NoStmtID, false
		}
		body, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewForInOf(p.spanFrom(forTok.Span), ast.ForInOfData{
			Decl:   head,
			IsOf:   isOf,
			Object: object,
			Body:   body,
		}), true
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for header"); !ok {
		return ast.NoStmtID, false
	}
	cond := ast.NoExprID
	if !p.at(token.Semicolon) {
		var ok bool
		cond, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' in for header"); !ok {
		return ast.NoStmtID, false
	}
	post := ast.NoExprID
	if !p.at(token.RParen) {
		var ok bool
		post, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewFor(p.spanFrom(forTok.Span), ast.ForData{
		Init: head,
		Cond: cond,
		Post: post,
		Body: body,
	}), true
}

func (p *Parser) parseSwitch() (ast.StmtID, bool) {
	switchTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'switch'"); !ok {
		return ast.NoStmtID, false
	}
	disc, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return ast.NoStmtID, false
	}

	var cases []ast.SwitchCase
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		var test ast.ExprID
		var testSpan source.Span
		switch p.cur().Kind {
		case token.KwCase:
			caseTok := p.advance()
			test, ok = p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			testSpan = p.spanFrom(caseTok.Span)
		case token.KwDefault:
			p.advance()
		default:
			p.errHere(diag.SynUnexpectedToken, "expected 'case' or 'default'")
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'"); !ok {
			return ast.NoStmtID, false
		}
		var body []ast.StmtID
		for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
			stmt, ok := p.parseStmt()
			if !ok {
				return ast.NoStmtID, false
			}
			body = append(body, stmt)
		}
		cases = append(cases, ast.SwitchCase{Test: testSpan, Expr: test, Body: body})
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'"); !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewSwitch(p.spanFrom(switchTok.Span), ast.SwitchData{Disc: disc, Cases: cases}), true
}

func (p *Parser) parseTry() (ast.StmtID, bool) {
	tryTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	data := ast.TryData{Block: block}
	if p.eat(token.KwCatch) {
		if p.eat(token.LParen) {
			param, ok := p.parseBindingTarget()
			if !ok {
				return ast.NoStmtID, false
			}
			data.CatchParam = param
			if p.at(token.Colon) {
				data.CatchType = p.skimTypeAnnotation()
				if p.fatal {
					return ast.NoStmtID, false
				}
			}
			if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
				return ast.NoStmtID, false
			}
		}
		data.CatchBody, ok = p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if p.eat(token.KwFinally) {
		data.Finally, ok = p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if data.CatchBody == ast.NoStmtID && data.Finally == ast.NoStmtID {
		p.errHere(diag.SynUnexpectedToken, "expected 'catch' or 'finally' after try block")
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewTry(p.spanFrom(tryTok.Span), data), true
}

func (p *Parser) parseReturnOrThrow(kw token.Kind) (ast.StmtID, bool) {
	kwTok := p.advance()
	expr := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) && !p.cur().NewlineBefore {
		var ok bool
		expr, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	if kw == token.KwThrow {
		return p.b.Stmts.NewThrow(p.spanFrom(kwTok.Span), expr), true
	}
	return p.b.Stmts.NewReturn(p.spanFrom(kwTok.Span), expr), true
}

func (p *Parser) parseBreakContinue() (ast.StmtID, bool) {
	kwTok := p.advance()
	var label source.Span
	if p.atIdentLike() && !p.cur().NewlineBefore {
		label = p.advance().Span
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	if kwTok.Kind == token.KwBreak {
		return p.b.Stmts.NewBreak(p.spanFrom(kwTok.Span), label), true
	}
	return p.b.Stmts.NewContinue(p.spanFrom(kwTok.Span), label), true
}

func (p *Parser) parseLabeled() (ast.StmtID, bool) {
	labelTok := p.advance()
	p.advance() // ':'
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewLabeled(p.spanFrom(labelTok.Span), labelTok.Span, body), true
}
