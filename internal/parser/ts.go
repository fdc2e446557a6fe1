package parser

import (
	"strings"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Type syntax is skimmed, not modeled: erasure only needs the covering
// span, so the skimmers walk the token stream balancing delimiters and
// recognizing just enough structure (unions, conditionals, function
// types, template literal types) to find where the type ends.

// skimTypeAnnotation consumes ': T' and returns its covering span.
func (p *Parser) skimTypeAnnotation() source.Span {
	colon := p.advance()
	p.skimType()
	if p.fatal {
		return source.Span{}
	}
	return colon.Span.Cover(p.lastSpan)
}

// skimReturnType consumes ': T' after a parameter list, including
// 'asserts x', 'x is T', and 'asserts x is T' predicate forms.
func (p *Parser) skimReturnType() source.Span {
	colon := p.advance()
	if p.at(token.Ident) && p.cur().Text == "asserts" && p.peekAt(1).IsIdentLike() {
		p.advance()
	}
	p.skimType()
	if p.fatal {
		return source.Span{}
	}
	return colon.Span.Cover(p.lastSpan)
}

// skimTypeParams consumes a '<T, U extends V = W>' clause.
func (p *Parser) skimTypeParams() source.Span {
	lt := p.advance() // '<'
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.EOF:
			p.errAt(diag.SynUnclosedDelimiter, lt.Span, "unclosed '<'")
			return source.Span{}
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.LParen, token.LBracket, token.LBrace:
			open := p.advance()
			p.skimBalanced(open)
			if p.fatal {
				return source.Span{}
			}
			continue
		}
		p.advance()
	}
	return lt.Span.Cover(p.lastSpan)
}

// skimBalanced consumes tokens until the delimiter opened by open closes.
// open has already been consumed.
func (p *Parser) skimBalanced(open token.Token) {
	var close token.Kind
	switch open.Kind {
	case token.LParen:
		close = token.RParen
	case token.LBracket:
		close = token.RBracket
	case token.LBrace:
		close = token.RBrace
	}
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.EOF:
			p.errAt(diag.SynUnclosedDelimiter, open.Span, "unclosed '"+open.Text+"'")
			return
		case open.Kind:
			depth++
		case close:
			depth--
		}
		p.advance()
	}
}

// skimType consumes one complete type expression.
func (p *Parser) skimType() {
	if !p.skimTypePrimary() {
		return
	}
	for !p.fatal {
		switch p.cur().Kind {
		case token.Pipe, token.Amp, token.KwIs:
			p.advance()
			if !p.skimTypePrimary() {
				return
			}
		case token.KwExtends:
			// conditional type: T extends U ? A : B
			p.advance()
			if !p.skimTypePrimary() {
				return
			}
			p.skimTypePostfix()
			if p.eat(token.Question) {
				p.skimType()
				if p.fatal {
					return
				}
				if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' in conditional type"); !ok {
					return
				}
				p.skimType()
			}
			return
		default:
			return
		}
	}
}

// skimTypePrimary consumes one type atom plus its postfix operators.
func (p *Parser) skimTypePrimary() bool {
	// leading '|' or '&' of a union/intersection
	for p.at(token.Pipe) || p.at(token.Amp) {
		p.advance()
	}
	// prefix operators take a full operand
	switch p.cur().Kind {
	case token.KwTypeof, token.KwKeyof, token.KwReadonly, token.KwNew, token.Minus:
		p.advance()
		return p.skimTypePrimary()
	case token.Ident:
		if t := p.cur().Text; t == "infer" || t == "unique" {
			p.advance()
			return p.skimTypePrimary()
		}
	}

	switch p.cur().Kind {
	case token.NumberLit, token.StringLit, token.TemplateFull,
		token.KwNull, token.KwTrue, token.KwFalse, token.KwVoid, token.KwThis:
		p.advance()
	case token.TemplateHead:
		p.skimTemplateType()
	case token.LParen, token.LBracket, token.LBrace:
		open := p.advance()
		p.skimBalanced(open)
		if p.fatal {
			return false
		}
		// function or constructor type
		if p.eat(token.Arrow) {
			p.skimType()
			return !p.fatal
		}
	case token.KwImport:
		// import("mod").T
		p.advance()
		if p.at(token.LParen) {
			open := p.advance()
			p.skimBalanced(open)
			if p.fatal {
				return false
			}
		}
	default:
		if !p.atIdentLike() {
			p.errHere(diag.SynExpectType, "expected type")
			return false
		}
		p.advance()
	}
	p.skimTypePostfix()
	return !p.fatal
}

// skimTypePostfix consumes qualified names, type arguments, and array or
// indexed-access suffixes.
func (p *Parser) skimTypePostfix() {
	for !p.fatal {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			if !p.atIdentLike() {
				p.errHere(diag.SynExpectType, "expected name after '.'")
				return
			}
			p.advance()
		case token.Lt:
			if !p.skimTypeArgs() {
				return
			}
		case token.LBracket:
			if p.cur().NewlineBefore {
				return
			}
			open := p.advance()
			p.skimBalanced(open)
		default:
			return
		}
	}
}

// skimTypeArgs consumes a '<...>' run in type position.
func (p *Parser) skimTypeArgs() bool {
	lt := p.advance()
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.EOF:
			p.errAt(diag.SynUnclosedDelimiter, lt.Span, "unclosed '<'")
			return false
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.LParen, token.LBracket, token.LBrace:
			open := p.advance()
			p.skimBalanced(open)
			if p.fatal {
				return false
			}
			continue
		}
		p.advance()
	}
	return true
}

// skimTemplateType consumes a template literal type with interpolations.
func (p *Parser) skimTemplateType() {
	p.advance() // head
	for {
		p.skimType()
		if p.fatal {
			return
		}
		switch p.cur().Kind {
		case token.TemplateMiddle:
			p.advance()
		case token.TemplateTail:
			p.advance()
			return
		default:
			p.errHere(diag.SynUnclosedDelimiter, "unterminated template literal type")
			return
		}
	}
}

// tryTypeArgs speculatively parses '<...>' as call type arguments. It
// commits only when the token after '>' cannot continue a comparison
// expression, mirroring how tsc resolves 'f<T>(x)' against 'a < b > c'.
func (p *Parser) tryTypeArgs() (source.Span, bool) {
	m := p.mark()
	lt := p.cur()
	if !p.skimTypeArgsQuiet() {
		p.reset(m)
		return source.Span{}, false
	}
	switch p.cur().Kind {
	case token.LParen, token.TemplateFull, token.TemplateHead:
		return lt.Span.Cover(p.lastSpan), true
	default:
		p.reset(m)
		return source.Span{}, false
	}
}

// skimTypeArgsQuiet balances '<...>' without reporting; a failed balance
// just means the '<' was a comparison.
func (p *Parser) skimTypeArgsQuiet() bool {
	p.advance() // '<'
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.EOF, token.Semicolon, token.LBrace, token.RBrace:
			return false
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.StringLit, token.NumberLit, token.Ident, token.Comma, token.Dot,
			token.LBracket, token.RBracket, token.LParen, token.RParen, token.Pipe,
			token.Amp, token.Question, token.Colon, token.Arrow, token.DotDotDot,
			token.KwNull, token.KwVoid, token.KwTypeof, token.KwKeyof, token.KwReadonly,
			token.KwExtends, token.KwIn, token.KwNew, token.KwThis, token.KwImport,
			token.TemplateFull, token.Assign, token.Minus:
			// plausible type-argument tokens
		default:
			if !p.cur().IsIdentLike() {
				return false
			}
		}
		p.advance()
	}
	return true
}

// parseInterface parses an interface declaration, skimming the heritage
// clause and body.
func (p *Parser) parseInterface(flags ast.StmtFlags) (ast.StmtID, bool) {
	kwTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.Lt) {
		p.skimTypeParams()
		if p.fatal {
			return ast.NoStmtID, false
		}
	}
	if p.eat(token.KwExtends) {
		for {
			if !p.skimTypePrimary() {
				return ast.NoStmtID, false
			}
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	p.skimBalanced(open)
	if p.fatal {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewInterface(p.spanFrom(kwTok.Span), flags, ast.TypeDeclData{
		Name:     name,
		NameSpan: nameSpan,
	}), true
}

// parseTypeAlias parses 'type Name<...> = T'.
func (p *Parser) parseTypeAlias(flags ast.StmtFlags) (ast.StmtID, bool) {
	kwTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.Lt) {
		p.skimTypeParams()
		if p.fatal {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in type alias"); !ok {
		return ast.NoStmtID, false
	}
	p.skimType()
	if p.fatal {
		return ast.NoStmtID, false
	}
	if !p.semi() {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewTypeAlias(p.spanFrom(kwTok.Span), flags, ast.TypeDeclData{
		Name:     name,
		NameSpan: nameSpan,
	}), true
}

// parseEnum parses '[const] enum Name { members }'.
func (p *Parser) parseEnum(flags ast.StmtFlags) (ast.StmtID, bool) {
	start := p.cur().Span
	isConst := p.eat(token.KwConst)
	p.advance() // 'enum'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	data := ast.EnumData{Name: name, NameSpan: nameSpan, Const: isConst}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return ast.NoStmtID, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		member, ok := p.parseEnumMember()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Members = append(data.Members, member)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'"); !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewEnum(p.spanFrom(start), flags, data), true
}

func (p *Parser) parseEnumMember() (ast.EnumMember, bool) {
	var m ast.EnumMember
	switch {
	case p.atIdentLike():
		t := p.advance()
		m.Name = t.Text
		m.NameSpan = t.Span
	case p.at(token.StringLit):
		t := p.advance()
		m.Name = unquote(t.Text)
		m.NameSpan = t.Span
		m.NameIsString = true
	default:
		p.errHere(diag.SynBadEnumMember, "expected enum member name")
		return m, false
	}
	if p.eat(token.Assign) {
		init, ok := p.parseAssignExpr()
		if !ok {
			return m, false
		}
		m.Init = init
	}
	return m, true
}

// unquote strips the quotes from a string literal and resolves simple
// escapes. Enum member names rarely carry escapes; unresolvable ones stay
// verbatim.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	inner := text[1 : len(text)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var sb strings.Builder
	sb.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i+1 >= len(inner) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch inner[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\', '\'', '"', '`':
			sb.WriteByte(inner[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(inner[i])
		}
	}
	return sb.String()
}

// parseNamespace parses 'namespace a.b { ... }', the legacy 'module foo'
// spelling, quoted ambient modules, and 'declare global'.
func (p *Parser) parseNamespace(flags ast.StmtFlags) (ast.StmtID, bool) {
	kwTok := p.advance() // namespace / module / global
	data := ast.NamespaceData{
		KeywordSpan: kwTok.Span,
		ModuleKw:    kwTok.Kind == token.KwModule,
	}

	switch {
	case kwTok.Kind == token.Ident: // declare global: keyword is the name
		data.Name = p.b.Strings.Intern(kwTok.Text)
		data.NameSpan = kwTok.Span
	case p.at(token.StringLit):
		t := p.advance()
		data.Name = p.b.Strings.Intern(unquote(t.Text))
		data.NameSpan = t.Span
	default:
		nameTok, ok := p.expectName()
		if !ok {
			return ast.NoStmtID, false
		}
		nameSpan := nameTok.Span
		nameText := nameTok.Text
		for p.eat(token.Dot) {
			part, ok := p.expectName()
			if !ok {
				return ast.NoStmtID, false
			}
			data.Dotted = true
			nameText += "." + part.Text
			nameSpan = nameSpan.Cover(part.Span)
		}
		data.Name = p.b.Strings.Intern(nameText)
		data.NameSpan = nameSpan
	}

	// shorthand ambient module: declare module "foo";
	if !p.at(token.LBrace) {
		if !p.semi() {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewNamespace(p.spanFrom(kwTok.Span), flags, data), true
	}

	p.advance() // '{'
	for !p.at(token.RBrace) && !p.at(token.EOF) && !p.fatal {
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Body = append(data.Body, stmt)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'"); !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewNamespace(p.spanFrom(kwTok.Span), flags, data), true
}

func (p *Parser) expectName() (token.Token, bool) {
	if !p.atIdentLike() {
		p.errHere(diag.SynExpectIdentifier, "expected name")
		return token.Token{}, false
	}
	return p.advance(), true
}
