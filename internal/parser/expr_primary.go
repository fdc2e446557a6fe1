package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// parseLHSExpr parses a left-hand-side expression: a primary with its
// member, index, call, tag, and non-null suffixes.
func (p *Parser) parseLHSExpr() (ast.ExprID, bool) {
	var expr ast.ExprID
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNewExpr()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseCallTail(expr, true)
}

// parseCallTail consumes suffixes. allowCall is false for a 'new' callee,
// whose call parentheses belong to the new expression.
func (p *Parser) parseCallTail(expr ast.ExprID, allowCall bool) (ast.ExprID, bool) {
	start := p.b.Exprs.Get(expr).Span
	for !p.fatal {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			prop, ok := p.memberProp()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.b.Exprs.NewMember(p.spanFrom(start), expr, prop, false)

		case token.QuestionDot:
			p.advance()
			switch p.cur().Kind {
			case token.LParen:
				if !allowCall {
					return expr, true
				}
				args, ok := p.parseArgs()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.b.Exprs.NewCall(p.spanFrom(start), ast.ExprCallData{
					Callee:   expr,
					Args:     args,
					Optional: true,
				})
			case token.LBracket:
				p.advance()
				index, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'"); !ok {
					return ast.NoExprID, false
				}
				expr = p.b.Exprs.NewIndex(p.spanFrom(start), expr, index, true)
			default:
				prop, ok := p.memberProp()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.b.Exprs.NewMember(p.spanFrom(start), expr, prop, true)
			}

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'"); !ok {
				return ast.NoExprID, false
			}
			expr = p.b.Exprs.NewIndex(p.spanFrom(start), expr, index, false)

		case token.LParen:
			if !allowCall {
				return expr, true
			}
			args, ok := p.parseArgs()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.b.Exprs.NewCall(p.spanFrom(start), ast.ExprCallData{
				Callee: expr,
				Args:   args,
			})

		case token.TemplateFull, token.TemplateHead:
			quasi, ok := p.parseTemplate()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.b.Exprs.NewTagged(p.spanFrom(start), expr, quasi)

		case token.Bang:
			if p.cur().NewlineBefore {
				return expr, true
			}
			t := p.advance()
			expr = p.b.Exprs.NewNonNull(start.Cover(t.Span), expr)

		case token.Lt:
			typeArgs, matched := p.tryTypeArgs()
			if !matched {
				return expr, true
			}
			switch p.cur().Kind {
			case token.LParen:
				if !allowCall {
					return expr, true
				}
				args, ok := p.parseArgs()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.b.Exprs.NewCall(p.spanFrom(start), ast.ExprCallData{
					Callee:   expr,
					TypeArgs: typeArgs,
					Args:     args,
				})
			default:
				quasi, ok := p.parseTemplate()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.b.Exprs.NewTagged(p.spanFrom(start), expr, quasi)
			}

		default:
			return expr, true
		}
	}
	return ast.NoExprID, false
}

func (p *Parser) memberProp() (source.Span, bool) {
	t := p.cur()
	if t.IsIdentLike() || t.IsKeyword() || t.Kind == token.PrivateIdent {
		p.advance()
		return t.Span, true
	}
	p.errHere(diag.SynExpectIdentifier, "expected property name")
	return source.Span{}, false
}

func (p *Parser) parseArgs() ([]ast.ExprID, bool) {
	p.advance() // '('
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) && !p.fatal {
		var arg ast.ExprID
		var ok bool
		if p.at(token.DotDotDot) {
			dots := p.advance()
			inner, innerOK := p.parseAssignExpr()
			if !innerOK {
				return nil, false
			}
			arg = p.b.Exprs.NewSpread(dots.Span.Cover(p.lastSpan), inner)
			ok = true
		} else {
			arg, ok = p.parseAssignExpr()
		}
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) parseNewExpr() (ast.ExprID, bool) {
	newTok := p.advance()

	// new.target
	if p.at(token.Dot) {
		p.advance()
		prop, ok := p.memberProp()
		if !ok {
			return ast.NoExprID, false
		}
		callee := p.b.Exprs.NewLit(newTok.Span, ast.LitThis)
		return p.b.Exprs.NewMember(newTok.Span.Cover(prop), callee, prop, false), true
	}

	var callee ast.ExprID
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNewExpr()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}
	callee, ok = p.parseCallTail(callee, false)
	if !ok {
		return ast.NoExprID, false
	}

	data := ast.ExprCallData{Callee: callee}
	if p.at(token.Lt) {
		if typeArgs, matched := p.tryTypeArgs(); matched {
			data.TypeArgs = typeArgs
		}
	}
	if p.at(token.LParen) {
		args, ok := p.parseArgs()
		if !ok {
			return ast.NoExprID, false
		}
		data.Args = args
	}
	return p.b.Exprs.NewNew(p.spanFrom(newTok.Span), data), true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	t := p.cur()
	switch t.Kind {
	case token.NumberLit:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitNumber), true
	case token.StringLit:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitString), true
	case token.RegexLit:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitRegex), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitBool), true
	case token.KwNull:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitNull), true
	case token.KwThis:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitThis), true
	case token.KwSuper:
		p.advance()
		return p.b.Exprs.NewLit(t.Span, ast.LitSuper), true

	case token.TemplateFull, token.TemplateHead:
		return p.parseTemplate()

	case token.LParen:
		lparen := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		rparen, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
		if !ok {
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewParen(lparen.Span.Cover(rparen.Span), inner), true

	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()

	case token.KwFunction:
		return p.parseFnExpr(false)
	case token.KwAsync:
		if p.peekAt(1).Kind == token.KwFunction && !p.peekAt(1).NewlineBefore {
			return p.parseFnExpr(true)
		}
	case token.KwClass:
		start := p.cur().Span
		class, ok := p.parseClassDecl(false)
		if !ok {
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewClassExpr(p.spanFrom(start), class), true

	case token.KwImport:
		// dynamic import() and import.meta as callee/member base
		p.advance()
		return p.b.Exprs.NewIdent(t.Span, p.b.Strings.Intern("import")), true

	case token.PrivateIdent:
		// '#field in obj' brand check
		p.advance()
		return p.b.Exprs.NewIdent(t.Span, p.b.Strings.Intern(t.Text)), true
	}

	if p.atIdentLike() {
		p.advance()
		return p.b.Exprs.NewIdent(t.Span, p.b.Strings.Intern(t.Text)), true
	}
	p.errHere(diag.SynExpectExpression, "expected expression")
	return ast.NoExprID, false
}

func (p *Parser) parseFnExpr(async bool) (ast.ExprID, bool) {
	start := p.cur().Span
	if async {
		p.advance()
	}
	p.advance() // 'function'
	generator := p.eat(token.Star)
	name := source.NoStringID
	var nameSpan source.Span
	if p.atIdentLike() {
		nameTok := p.advance()
		name = p.b.Strings.Intern(nameTok.Text)
		nameSpan = nameTok.Span
	}
	fn, ok := p.parseFnRest(name, nameSpan, async, generator)
	if !ok {
		return ast.NoExprID, false
	}
	decl := p.b.Fns.Get(fn)
	decl.Span = p.spanFrom(start)
	return p.b.Exprs.NewFunction(decl.Span, fn), true
}

// parseTemplate parses a template literal; Parts holds the interpolated
// expressions in order.
func (p *Parser) parseTemplate() (ast.ExprID, bool) {
	t := p.advance()
	if t.Kind == token.TemplateFull {
		return p.b.Exprs.NewTemplate(t.Span, nil), true
	}
	var parts []ast.ExprID
	for {
		part, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		parts = append(parts, part)
		switch p.cur().Kind {
		case token.TemplateMiddle:
			p.advance()
		case token.TemplateTail:
			tail := p.advance()
			return p.b.Exprs.NewTemplate(t.Span.Cover(tail.Span), parts), true
		default:
			p.errHere(diag.SynUnclosedDelimiter, "unterminated template literal")
			return ast.NoExprID, false
		}
	}
}

// parseArrayLiteral also serves array binding patterns via the cover
// grammar; holes become NoExprID elements.
func (p *Parser) parseArrayLiteral() (ast.ExprID, bool) {
	open := p.advance()
	var elems []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) && !p.fatal {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, ast.NoExprID)
			continue
		}
		var elem ast.ExprID
		var ok bool
		if p.at(token.DotDotDot) {
			dots := p.advance()
			inner, innerOK := p.parseAssignExpr()
			if !innerOK {
				return ast.NoExprID, false
			}
			elem = p.b.Exprs.NewSpread(dots.Span.Cover(p.lastSpan), inner)
			ok = true
		} else {
			elem, ok = p.parseAssignExpr()
		}
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
		if !p.eat(token.Comma) {
			break
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'")
	if !ok {
		return ast.NoExprID, false
	}
	return p.b.Exprs.NewArray(open.Span.Cover(closeTok.Span), elems), true
}

// parseObjectLiteral also serves object binding patterns; '= init' after a
// shorthand name is accepted for the pattern reading.
func (p *Parser) parseObjectLiteral() (ast.ExprID, bool) {
	open := p.advance()
	var props []ast.ObjectProp
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		prop, ok := p.parseObjectProp()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)
		if !p.eat(token.Comma) {
			break
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
	if !ok {
		return ast.NoExprID, false
	}
	return p.b.Exprs.NewObject(open.Span.Cover(closeTok.Span), props), true
}

func (p *Parser) parseObjectProp() (ast.ObjectProp, bool) {
	var prop ast.ObjectProp

	if p.at(token.DotDotDot) {
		dots := p.advance()
		inner, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		prop.Value = p.b.Exprs.NewSpread(dots.Span.Cover(p.lastSpan), inner)
		return prop, true
	}

	async := false
	generator := false
	accessor := token.Invalid
	if p.at(token.KwAsync) && p.objPropNameFollows(1) {
		p.advance()
		async = true
	}
	if p.at(token.Star) {
		p.advance()
		generator = true
	}
	if (p.at(token.KwGet) || p.at(token.KwSet)) && p.objPropNameFollows(1) && !async && !generator {
		accessor = p.advance().Kind
	}

	switch {
	case p.atIdentLike() || p.at(token.StringLit) || p.at(token.NumberLit):
		prop.KeySpan = p.advance().Span
	case p.at(token.LBracket):
		open := p.advance()
		key, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'")
		if !ok {
			return prop, false
		}
		prop.Key = key
		prop.KeySpan = open.Span.Cover(closeTok.Span)
	default:
		p.errHere(diag.SynExpectIdentifier, "expected property name")
		return prop, false
	}

	// method, getter, setter
	if accessor != token.Invalid || p.at(token.LParen) || p.at(token.Lt) {
		fn, ok := p.parseFnRest(source.NoStringID, prop.KeySpan, async, generator)
		if !ok {
			return prop, false
		}
		prop.Fn = fn
		return prop, true
	}

	switch p.cur().Kind {
	case token.Colon:
		p.advance()
		value, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		prop.Value = value
	case token.Assign:
		// shorthand default in a destructuring pattern
		p.advance()
		if _, ok := p.parseAssignExpr(); !ok {
			return prop, false
		}
	}
	return prop, true
}

func (p *Parser) objPropNameFollows(n int) bool {
	t := p.peekAt(n)
	return t.IsIdentLike() || t.Kind == token.StringLit || t.Kind == token.NumberLit ||
		t.Kind == token.LBracket
}
