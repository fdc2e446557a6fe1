package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

func (p *Parser) parseClassStmt(flags ast.StmtFlags) (ast.StmtID, bool) {
	start := p.cur().Span
	class, ok := p.parseClassDecl(true)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewClass(p.spanFrom(start), flags, class), true
}

// parseClassDecl parses '[abstract] class [Name] ...'. nameRequired is
// false for class expressions.
func (p *Parser) parseClassDecl(nameRequired bool) (ast.ClassID, bool) {
	start := p.cur().Span
	var abstractSpan source.Span
	if p.at(token.KwAbstract) {
		abstractSpan = p.advance().Span
	}
	if _, ok := p.expect(token.KwClass, diag.SynUnexpectedToken, "expected 'class'"); !ok {
		return ast.NoClassID, false
	}

	decl := ast.ClassDecl{AbstractSpan: abstractSpan}
	if p.atIdentLike() {
		t := p.advance()
		decl.Name = p.b.Strings.Intern(t.Text)
		decl.NameSpan = t.Span
	} else if nameRequired {
		p.errHere(diag.SynExpectIdentifier, "expected class name")
		return ast.NoClassID, false
	}

	if p.at(token.Lt) {
		decl.TypeParams = p.skimTypeParams()
		if p.fatal {
			return ast.NoClassID, false
		}
	}

	if p.eat(token.KwExtends) {
		heritage, ok := p.parseLHSExpr()
		if !ok {
			return ast.NoClassID, false
		}
		decl.Extends = heritage
		if p.at(token.Lt) {
			ltSpan := p.cur().Span
			if !p.skimTypeArgs() {
				return ast.NoClassID, false
			}
			decl.ExtendsTypeArgs = ltSpan.Cover(p.lastSpan)
		}
	}

	if p.at(token.KwImplements) {
		implTok := p.advance()
		for {
			if !p.skimTypePrimary() {
				return ast.NoClassID, false
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		decl.Implements = implTok.Span.Cover(p.lastSpan)
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return ast.NoClassID, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		if p.eat(token.Semicolon) {
			continue
		}
		member, ok := p.parseMember()
		if !ok {
			return ast.NoClassID, false
		}
		decl.Members = append(decl.Members, p.b.Classes.NewMember(member))
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'"); !ok {
		return ast.NoClassID, false
	}
	decl.Span = start.Cover(p.lastSpan)
	return p.b.Classes.New(decl), true
}

func (p *Parser) parseMember() (ast.Member, bool) {
	var m ast.Member
	start := p.cur().Span

	if p.at(token.At) {
		p.errHere(diag.SynDecoratorsDisabled, "decorators are not supported")
		return m, false
	}

	m.Modifiers = p.parseMemberModifiers()

	// static { ... }
	if len(m.Modifiers) > 0 &&
		m.Modifiers[len(m.Modifiers)-1].Kind == token.KwStatic && p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return m, false
		}
		m.Kind = ast.MemberStaticBlock
		m.Body = body
		m.Span = start.Cover(p.lastSpan)
		return m, true
	}

	// index signature: [key: string]: T
	if p.at(token.LBracket) && p.peekAt(1).IsIdentLike() && p.peekAt(2).Kind == token.Colon {
		open := p.advance()
		p.skimBalanced(open)
		if p.fatal {
			return m, false
		}
		m.Kind = ast.MemberIndexSig
		m.NameSpan = open.Span.Cover(p.lastSpan)
		if p.at(token.Colon) {
			m.TypeAnn = p.skimTypeAnnotation()
			if p.fatal {
				return m, false
			}
		}
		if !p.semi() {
			return m, false
		}
		m.Span = start.Cover(p.lastSpan)
		return m, true
	}

	async := false
	generator := false
	if p.at(token.KwAsync) && p.memberNameFollows(1) {
		t := p.advance()
		async = true
		m.Modifiers = append(m.Modifiers, ast.Modifier{Kind: t.Kind, Span: t.Span})
	}
	if p.at(token.Star) {
		p.advance()
		generator = true
	}

	accessor := token.Invalid
	if (p.at(token.KwGet) || p.at(token.KwSet)) && p.memberNameFollows(1) && !generator {
		accessor = p.advance().Kind
	}

	ok := p.parseMemberName(&m)
	if !ok {
		return m, false
	}

	if p.at(token.Question) {
		m.Question = p.advance().Span
	} else if p.at(token.Bang) && !p.cur().NewlineBefore {
		m.Bang = p.advance().Span
	}

	// method or accessor
	if p.at(token.LParen) || p.at(token.Lt) {
		name := source.NoStringID
		if m.Key == ast.NoExprID {
			name = p.b.Strings.Intern(p.memberNameText(m.NameSpan))
		}
		fn, ok := p.parseFnRest(name, m.NameSpan, async, generator)
		if !ok {
			return m, false
		}
		m.Fn = fn
		switch {
		case accessor == token.KwGet:
			m.Kind = ast.MemberGetter
		case accessor == token.KwSet:
			m.Kind = ast.MemberSetter
		case m.Key == ast.NoExprID && p.memberNameText(m.NameSpan) == "constructor":
			m.Kind = ast.MemberCtor
		default:
			m.Kind = ast.MemberMethod
		}
		if p.b.Fns.Get(fn).IsOverloadSig() {
			if !p.semi() {
				return m, false
			}
		}
		m.Span = start.Cover(p.lastSpan)
		return m, true
	}

	// field
	m.Kind = ast.MemberField
	if p.at(token.Colon) {
		m.TypeAnn = p.skimTypeAnnotation()
		if p.fatal {
			return m, false
		}
	}
	if p.eat(token.Assign) {
		init, ok := p.parseAssignExpr()
		if !ok {
			return m, false
		}
		m.Init = init
	}
	if !p.semi() {
		return m, false
	}
	m.Span = start.Cover(p.lastSpan)
	return m, true
}

// parseMemberModifiers collects leading member modifiers. A modifier word
// followed by anything that can't start a member name is the name itself.
func (p *Parser) parseMemberModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for {
		switch p.cur().Kind {
		case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwStatic,
			token.KwReadonly, token.KwAbstract, token.KwDeclare, token.KwOverride:
			if !p.memberNameFollows(1) &&
				!(p.cur().Kind == token.KwStatic && p.peekAt(1).Kind == token.LBrace) {
				return mods
			}
			t := p.advance()
			mods = append(mods, ast.Modifier{Kind: t.Kind, Span: t.Span})
		default:
			return mods
		}
	}
}

// memberNameFollows reports whether the token n ahead can begin a member
// name (or the generator star).
func (p *Parser) memberNameFollows(n int) bool {
	t := p.peekAt(n)
	if t.NewlineBefore && t.Kind == token.LBracket {
		return false
	}
	return t.IsIdentLike() || t.Kind == token.StringLit || t.Kind == token.NumberLit ||
		t.Kind == token.PrivateIdent || t.Kind == token.LBracket || t.Kind == token.Star
}

func (p *Parser) parseMemberName(m *ast.Member) bool {
	switch {
	case p.atIdentLike() || p.at(token.StringLit) || p.at(token.NumberLit) || p.at(token.PrivateIdent):
		m.NameSpan = p.advance().Span
		return true
	case p.at(token.LBracket):
		open := p.advance()
		key, ok := p.parseAssignExpr()
		if !ok {
			return false
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'")
		if !ok {
			return false
		}
		m.Key = key
		m.NameSpan = open.Span.Cover(closeTok.Span)
		return true
	default:
		p.errHere(diag.SynExpectIdentifier, "expected member name")
		return false
	}
}

func (p *Parser) memberNameText(sp source.Span) string {
	return string(p.file.Content[sp.Start:sp.End])
}
