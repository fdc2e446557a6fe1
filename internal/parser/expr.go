package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// parseExpr parses a full expression including comma sequences.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	start := p.cur().Span
	first, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	elems := []ast.ExprID{first}
	for p.eat(token.Comma) {
		next, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, next)
	}
	return p.b.Exprs.NewSeq(p.spanFrom(start), elems), true
}

// parseAssignExpr parses an assignment-level expression: arrows, yield,
// conditional, and the assignment operators.
func (p *Parser) parseAssignExpr() (ast.ExprID, bool) {
	if arrow, ok, matched := p.tryArrow(); matched {
		return arrow, ok
	}
	if p.at(token.KwYield) && p.inGenerator() {
		return p.parseYield()
	}

	start := p.cur().Span
	left, ok := p.parseCondExpr()
	if !ok {
		return ast.NoExprID, false
	}

	op, width := p.assignOpAhead()
	if op == token.Invalid {
		return left, true
	}
	for i := 0; i < width; i++ {
		p.advance()
	}
	right, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.b.Exprs.NewAssign(p.spanFrom(start), op, left, right), true
}

// assignOpAhead recognizes an assignment operator at the cursor, including
// the multi-token '>>=' and '>>>=' runs the lexer leaves split.
func (p *Parser) assignOpAhead() (token.Kind, int) {
	t := p.cur()
	if t.IsAssignOp() {
		return t.Kind, 1
	}
	if t.Kind != token.Gt {
		return token.Invalid, 0
	}
	n := 1
	for n < 3 && p.adjacentKind(n, token.Gt) {
		n++
	}
	if !p.adjacentKind(n, token.Assign) {
		return token.Invalid, 0
	}
	switch n {
	case 2:
		return token.ShrAssign, 3
	case 3:
		return token.UShrAssign, 4
	default:
		return token.Invalid, 0 // '>=' is a comparison
	}
}

func (p *Parser) parseYield() (ast.ExprID, bool) {
	yieldTok := p.advance()
	delegate := p.eat(token.Star)
	inner := ast.NoExprID
	if p.startsExpr() && !p.cur().NewlineBefore {
		var ok bool
		inner, ok = p.parseAssignExpr()
		if !ok {
			return ast.NoExprID, false
		}
	}
	return p.b.Exprs.NewYield(p.spanFrom(yieldTok.Span), inner, delegate), true
}

// startsExpr reports whether the current token can begin an expression.
func (p *Parser) startsExpr() bool {
	t := p.cur()
	if t.IsIdentLike() || t.IsLiteral() {
		return true
	}
	switch t.Kind {
	case token.NumberLit, token.StringLit, token.RegexLit,
		token.TemplateFull, token.TemplateHead,
		token.LParen, token.LBracket, token.LBrace, token.Lt,
		token.KwThis, token.KwSuper, token.KwNew, token.KwFunction,
		token.KwClass, token.KwTypeof, token.KwVoid, token.KwDelete,
		token.KwImport, token.PrivateIdent,
		token.Plus, token.Minus, token.Bang, token.Tilde,
		token.PlusPlus, token.MinusMinus, token.DotDotDot:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCondExpr() (ast.ExprID, bool) {
	start := p.cur().Span
	cond, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Question) {
		return cond, true
	}
	p.advance()
	then, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional"); !ok {
		return ast.NoExprID, false
	}
	els, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.b.Exprs.NewCond(p.spanFrom(start), cond, then, els), true
}

// Binary operator precedence. Zero means not a binary operator.
func binPrec(k token.Kind) int {
	switch k {
	case token.QuestionQuestion, token.OrOr:
		return 1
	case token.AndAnd:
		return 2
	case token.Pipe:
		return 3
	case token.Caret:
		return 4
	case token.Amp:
		return 5
	case token.EqEq, token.EqEqEq, token.BangEq, token.BangEqEq:
		return 6
	case token.Lt, token.Gt, token.LtEq, token.KwIn, token.KwInstanceof,
		token.KwAs, token.KwSatisfies:
		return 7
	case token.Shl:
		return 8
	case token.Plus, token.Minus:
		return 9
	case token.Star, token.Slash, token.Percent:
		return 10
	case token.StarStar:
		return 11
	default:
		return 0
	}
}

// parseBinaryExpr climbs operator precedence. The lexer splits '>' runs, so
// shift and '>=' operators on the right are re-joined here; a Gt run that
// ends in '=' is a compound assignment and terminates the climb.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	start := p.cur().Span
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for !p.fatal {
		op := p.cur().Kind
		width := 1

		if op == token.Gt {
			n := 1
			for n < 3 && p.adjacentKind(n, token.Gt) {
				n++
			}
			hasEq := p.adjacentKind(n, token.Assign)
			switch {
			case n == 1 && hasEq:
				op, width = token.GtEq, 2
			case n == 1:
				op, width = token.Gt, 1
			case n == 2 && !hasEq:
				op, width = token.Shr, 2
			case n == 3 && !hasEq:
				op, width = token.UShr, 3
			default:
				return left, true // >>= or >>>=
			}
		}

		var prec int
		switch op {
		case token.Shr, token.UShr:
			prec = 8
		case token.GtEq:
			prec = 7
		default:
			prec = binPrec(op)
		}
		if prec == 0 || prec < minPrec {
			return left, true
		}
		if op == token.KwIn && p.noIn {
			return left, true
		}

		// 'as T' / 'satisfies T' bind at relational precedence
		if op == token.KwAs || op == token.KwSatisfies {
			if p.cur().NewlineBefore {
				return left, true
			}
			kw := p.advance()
			if op == token.KwAs && p.at(token.KwConst) {
				p.advance()
			} else {
				if !p.skimTypePrimary() {
					return ast.NoExprID, false
				}
			}
			typeSpan := kw.Span.Cover(p.lastSpan)
			span := p.spanFrom(start)
			if op == token.KwAs {
				left = p.b.Exprs.NewAs(span, left, typeSpan)
			} else {
				left = p.b.Exprs.NewSatisfies(span, left, typeSpan)
			}
			continue
		}

		for i := 0; i < width; i++ {
			p.advance()
		}

		nextMin := prec + 1
		if op == token.StarStar {
			nextMin = prec // right-associative
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			return ast.NoExprID, false
		}
		left = p.b.Exprs.NewBinary(p.spanFrom(start), op, left, right)
	}
	return ast.NoExprID, false
}

func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	t := p.cur()
	switch t.Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus,
		token.KwTypeof, token.KwVoid, token.KwDelete:
		p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewUnary(t.Span.Cover(p.lastSpan), t.Kind, operand), true

	case token.PlusPlus, token.MinusMinus:
		p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewUpdate(t.Span.Cover(p.lastSpan), t.Kind, true, operand), true

	case token.KwAwait:
		if !p.awaitIsOperator() {
			break
		}
		p.advance()
		if len(p.fnCtx) > 0 && !p.inAsync() {
			p.errHere(diag.SynAwaitOutsideAsync, "await isn't allowed in non-async function")
			return ast.NoExprID, false
		}
		operand, ok := p.parseUnaryExpr()
		if !ok {
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewAwait(t.Span.Cover(p.lastSpan), operand), true

	case token.Lt:
		// angle-bracket type assertion: <T>expr
		m := p.mark()
		ltSpan := p.cur().Span
		p.quiet++
		okArgs := p.skimTypeArgsQuiet()
		p.quiet--
		if okArgs && !p.fatal && p.startsExpr() {
			typeSpan := ltSpan.Cover(p.lastSpan)
			inner, ok := p.parseUnaryExpr()
			if !ok {
				return ast.NoExprID, false
			}
			return p.b.Exprs.NewTypeAssert(ltSpan.Cover(p.lastSpan), inner, typeSpan), true
		}
		p.fatal = false
		p.reset(m)
	}

	return p.parsePostfixExpr()
}

// awaitIsOperator decides whether 'await' begins an await expression or is
// a plain identifier. An operand on the same line makes it an operator.
func (p *Parser) awaitIsOperator() bool {
	next := p.peekAt(1)
	if next.NewlineBefore {
		return false
	}
	switch next.Kind {
	case token.Comma, token.RParen, token.RBracket, token.RBrace,
		token.Semicolon, token.Colon, token.Dot, token.Question,
		token.Arrow, token.EOF:
		return false
	}
	if next.IsAssignOp() {
		return false
	}
	return true
}

func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	start := p.cur().Span
	expr, ok := p.parseLHSExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.cur().NewlineBefore {
		op := p.advance()
		return p.b.Exprs.NewUpdate(p.spanFrom(start), op.Kind, false, expr), true
	}
	return expr, true
}

// tryArrow recognizes arrow functions at assignment level. matched is false
// when the tokens are not an arrow head and the caller should parse
// normally.
func (p *Parser) tryArrow() (ast.ExprID, bool, bool) {
	t := p.cur()

	// x => ...
	if t.IsIdentLike() && p.peekAt(1).Kind == token.Arrow && !p.peekAt(1).NewlineBefore {
		return p.finishSimpleArrow(false)
	}
	// async x => ...
	if t.Kind == token.KwAsync && !p.peekAt(1).NewlineBefore &&
		p.peekAt(1).IsIdentLike() && p.peekAt(2).Kind == token.Arrow {
		p.advance()
		return p.finishSimpleArrow(true)
	}

	switch {
	case t.Kind == token.LParen || t.Kind == token.Lt:
		return p.trialArrow(false)
	case t.Kind == token.KwAsync && !p.peekAt(1).NewlineBefore &&
		(p.peekAt(1).Kind == token.LParen || p.peekAt(1).Kind == token.Lt):
		return p.trialArrow(true)
	}
	return ast.NoExprID, false, false
}

// finishSimpleArrow handles the single-identifier head.
func (p *Parser) finishSimpleArrow(async bool) (ast.ExprID, bool, bool) {
	nameTok := p.advance()
	param := p.b.Params.New(ast.Param{
		Name:     p.b.Strings.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Span:     nameTok.Span,
	})
	p.advance() // '=>'
	id, ok := p.finishArrowBody(nameTok.Span, ast.FnDecl{
		Async:  async,
		Params: []ast.ParamID{param},
	})
	return id, ok, true
}

// trialArrow speculatively parses a parenthesized (and possibly generic)
// arrow head. On mismatch the cursor rewinds and the caller parses the
// tokens as an ordinary expression.
func (p *Parser) trialArrow(async bool) (ast.ExprID, bool, bool) {
	m := p.mark()
	start := p.cur().Span
	if async {
		start = p.advance().Span
	}

	p.quiet++
	decl, headOK := p.parseArrowHead(async)
	p.quiet--
	if !headOK || p.fatal || !p.at(token.Arrow) || p.cur().NewlineBefore {
		p.fatal = false
		p.reset(m)
		return ast.NoExprID, false, false
	}
	p.advance() // '=>'
	id, ok := p.finishArrowBody(start, decl)
	return id, ok, true
}

func (p *Parser) parseArrowHead(async bool) (ast.FnDecl, bool) {
	var decl ast.FnDecl
	decl.Async = async

	if p.at(token.Lt) {
		decl.TypeParams = p.skimTypeParams()
		if p.fatal {
			return decl, false
		}
	}
	if !p.at(token.LParen) {
		return decl, false
	}
	params, thisParam, ok := p.parseParams()
	if !ok {
		return decl, false
	}
	decl.Params = params
	decl.ThisParam = thisParam
	if p.at(token.Colon) {
		decl.ReturnType = p.skimReturnType()
		if p.fatal {
			return decl, false
		}
	}
	return decl, true
}

func (p *Parser) finishArrowBody(start source.Span, decl ast.FnDecl) (ast.ExprID, bool) {
	p.pushFnCtx(decl.Async, false)
	defer p.popFnCtx()

	if p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoExprID, false
		}
		decl.Body = body
	} else {
		body, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoExprID, false
		}
		decl.ExprBody = body
	}
	decl.Span = start.Cover(p.lastSpan)
	fn := p.b.Fns.New(decl)
	return p.b.Exprs.NewArrow(decl.Span, fn), true
}
