package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// parseVarStmt parses a var/let/const statement. consumeSemi is false for
// for-loop heads, where the terminator belongs to the loop.
func (p *Parser) parseVarStmt(flags ast.StmtFlags, consumeSemi bool) (ast.StmtID, bool) {
	kwTok := p.advance()
	data := ast.VarStmtData{Kw: kwTok.Kind}

	for {
		decl, ok := p.parseVarDecl()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Decls = append(data.Decls, decl)
		if !p.eat(token.Comma) {
			break
		}
	}
	if consumeSemi && !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewVar(p.spanFrom(kwTok.Span), flags, data), true
}

func (p *Parser) parseVarDecl() (ast.VarDecl, bool) {
	var decl ast.VarDecl

	switch {
	case p.atIdentLike():
		name := p.advance()
		decl.Name = p.b.Strings.Intern(name.Text)
		decl.NameSpan = name.Span
	case p.at(token.LBracket) || p.at(token.LBrace):
		pattern, ok := p.parseBindingTarget()
		if !ok {
			return decl, false
		}
		decl.Pattern = pattern
	default:
		p.errHere(diag.SynExpectIdentifier, "expected binding name")
		return decl, false
	}

	if p.at(token.Bang) && !p.cur().NewlineBefore {
		decl.Bang = p.advance().Span
	}
	if p.at(token.Colon) {
		decl.TypeAnn = p.skimTypeAnnotation()
		if p.fatal {
			return decl, false
		}
	}
	if p.eat(token.Assign) {
		init, ok := p.parseAssignExpr()
		if !ok {
			return decl, false
		}
		decl.Init = init
	}
	return decl, true
}

// parseBindingTarget parses an identifier or a destructuring pattern. The
// cover grammar reuses array/object literal parsing for patterns.
func (p *Parser) parseBindingTarget() (ast.ExprID, bool) {
	switch {
	case p.atIdentLike():
		t := p.advance()
		return p.b.Exprs.NewIdent(t.Span, p.b.Strings.Intern(t.Text)), true
	case p.at(token.LBracket):
		return p.parseArrayLiteral()
	case p.at(token.LBrace):
		return p.parseObjectLiteral()
	default:
		p.errHere(diag.SynExpectIdentifier, "expected binding name")
		return ast.NoExprID, false
	}
}

// parseFunctionStmt parses '[async] function [*] name ...'.
func (p *Parser) parseFunctionStmt(flags ast.StmtFlags) (ast.StmtID, bool) {
	start := p.cur().Span
	async := p.eat(token.KwAsync)
	if _, ok := p.expect(token.KwFunction, diag.SynUnexpectedToken, "expected 'function'"); !ok {
		return ast.NoStmtID, false
	}
	generator := p.eat(token.Star)

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	fn, ok := p.parseFnRest(name, nameSpan, async, generator)
	if !ok {
		return ast.NoStmtID, false
	}
	decl := p.b.Fns.Get(fn)
	decl.Span = p.spanFrom(start)
	if decl.Body == ast.NoStmtID {
		// overload signature or ambient function; terminator required
		if !p.semi() {
			return ast.NoStmtID, false
		}
	}
	return p.b.Stmts.NewFunction(p.spanFrom(start), flags, fn), true
}

// parseFnRest parses everything after the function name: type parameters,
// parameter list, return type, and body. A missing body is accepted and the
// declaration becomes an overload signature; the callers decide whether that
// form is legal where it appeared.
func (p *Parser) parseFnRest(name source.StringID, nameSpan source.Span, async, generator bool) (ast.FnID, bool) {
	decl := ast.FnDecl{
		Name:      name,
		NameSpan:  nameSpan,
		Async:     async,
		Generator: generator,
	}

	if p.at(token.Lt) {
		decl.TypeParams = p.skimTypeParams()
		if p.fatal {
			return ast.NoFnID, false
		}
	}

	params, thisParam, ok := p.parseParams()
	if !ok {
		return ast.NoFnID, false
	}
	decl.Params = params
	decl.ThisParam = thisParam

	if p.at(token.Colon) {
		decl.ReturnType = p.skimReturnType()
		if p.fatal {
			return ast.NoFnID, false
		}
	}

	if p.at(token.LBrace) {
		p.pushFnCtx(async, generator)
		body, ok := p.parseBlock()
		p.popFnCtx()
		if !ok {
			return ast.NoFnID, false
		}
		decl.Body = body
	}
	decl.Span = nameSpan.Cover(p.lastSpan)
	return p.b.Fns.New(decl), true
}

// parseParams parses '(' params ')' including a leading 'this' parameter.
func (p *Parser) parseParams() ([]ast.ParamID, source.Span, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, source.Span{}, false
	}

	var params []ast.ParamID
	var thisParam source.Span
	first := true
	for !p.at(token.RParen) && !p.at(token.EOF) && !p.fatal {
		if first && p.at(token.KwThis) {
			thisParam = p.parseThisParam()
			if p.fatal {
				return nil, source.Span{}, false
			}
			first = false
			continue
		}
		first = false

		param, ok := p.parseParam()
		if !ok {
			return nil, source.Span{}, false
		}
		params = append(params, p.b.Params.New(param))
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return nil, source.Span{}, false
	}
	return params, thisParam, true
}

// parseThisParam consumes 'this[: T]' and a trailing comma, returning the
// span to erase.
func (p *Parser) parseThisParam() source.Span {
	thisTok := p.advance()
	sp := thisTok.Span
	if p.at(token.Colon) {
		sp = sp.Cover(p.skimTypeAnnotation())
		if p.fatal {
			return source.Span{}
		}
	}
	if p.at(token.Comma) {
		sp = sp.Cover(p.advance().Span)
	}
	return sp
}

func (p *Parser) parseParam() (ast.Param, bool) {
	var param ast.Param
	start := p.cur().Span

	param.Modifiers = p.parseParamModifiers()
	if p.at(token.DotDotDot) {
		param.Dots = p.advance().Span
	}

	switch {
	case p.atIdentLike() || p.at(token.KwThis):
		t := p.advance()
		param.Name = p.b.Strings.Intern(t.Text)
		param.NameSpan = t.Span
	case p.at(token.LBracket) || p.at(token.LBrace):
		pattern, ok := p.parseBindingTarget()
		if !ok {
			return param, false
		}
		param.Pattern = pattern
	default:
		p.errHere(diag.SynBadParameter, "expected parameter name")
		return param, false
	}

	if p.at(token.Question) {
		param.Question = p.advance().Span
	}
	if p.at(token.Colon) {
		param.TypeAnn = p.skimTypeAnnotation()
		if p.fatal {
			return param, false
		}
	}
	if p.eat(token.Assign) {
		init, ok := p.parseAssignExpr()
		if !ok {
			return param, false
		}
		param.Init = init
	}
	param.Span = start.Cover(p.lastSpan)
	return param, true
}

// parseParamModifiers collects accessibility/readonly/override keywords in
// front of a parameter. A modifier word directly followed by ',', ')', ':',
// '?', or '=' is the parameter name itself, not a modifier.
func (p *Parser) parseParamModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for {
		switch p.cur().Kind {
		case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwReadonly, token.KwOverride:
			next := p.peekAt(1)
			if !next.IsIdentLike() && next.Kind != token.LBracket &&
				next.Kind != token.LBrace && next.Kind != token.DotDotDot {
				return mods
			}
			t := p.advance()
			mods = append(mods, ast.Modifier{Kind: t.Kind, Span: t.Span})
		default:
			return mods
		}
	}
}
