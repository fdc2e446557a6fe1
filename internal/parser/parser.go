package parser

import (
	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/lexer"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Parser builds an arena AST from a pre-tokenized file. Tokenizing up
// front keeps speculative parses (arrow heads, call type arguments) to a
// simple position save/restore.
//
// The parser is fail-fast: the first syntax error poisons it and every
// production unwinds. Multi-error recovery is deliberately absent; a
// failed parse reproduces the same diagnostic on every rerun.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	b        *ast.Builder
	reporter diag.Reporter
	fatal    bool
	lastSpan source.Span
	// quiet suppresses reporting during speculative parses; errors still
	// poison the parser so the trial unwinds, and the caller resets both.
	quiet int
	// noIn drops 'in' from the binary operator set inside for-loop heads.
	noIn bool
	// fn context stack for await/yield legality
	fnCtx []fnCtx
}

type fnCtx struct {
	async     bool
	generator bool
}

// Tokenize runs the lexer over the whole file.
func Tokenize(f *source.File, reporter diag.Reporter) []token.Token {
	lx := lexer.New(f, lexer.Options{Reporter: lexReporter{reporter}})
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

type lexReporter struct{ r diag.Reporter }

func (lr lexReporter) Report(code diag.Code, sp source.Span, msg string) {
	if lr.r != nil {
		lr.r.Report(code, diag.SevError, sp, msg, nil)
	}
}

func New(f *source.File, toks []token.Token, b *ast.Builder, reporter diag.Reporter) *Parser {
	return &Parser{
		file:     f,
		toks:     toks,
		b:        b,
		reporter: reporter,
	}
}

// ParseFile parses the whole token stream into one ast.File.
func (p *Parser) ParseFile() ast.FileID {
	span := source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
	fileID := p.b.NewFile(span)

	for !p.at(token.EOF) && !p.fatal {
		stmt, ok := p.parseStmt()
		if !ok {
			break
		}
		p.b.PushStmt(fileID, stmt)
	}
	return fileID
}

// --- token plumbing ---

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.lastSpan = t.Span
	return t
}

func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

type mark int

func (p *Parser) mark() mark   { return mark(p.pos) }
func (p *Parser) reset(m mark) { p.pos = int(m) }

func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.errHere(code, msg)
	return token.Token{}, false
}

// errHere reports at the current token and poisons the parser.
func (p *Parser) errHere(code diag.Code, msg string) {
	p.errAt(code, p.cur().Span, msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	if p.fatal {
		return
	}
	p.fatal = true
	if p.quiet == 0 && p.reporter != nil {
		p.reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// atIdentLike reports whether the current token can sit in an identifier
// position (contextual keywords included).
func (p *Parser) atIdentLike() bool {
	return p.cur().IsIdentLike()
}

// parseIdent consumes an identifier-position token and interns its text.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if !p.atIdentLike() {
		p.errHere(diag.SynExpectIdentifier, "expected identifier")
		return source.NoStringID, source.Span{}, false
	}
	t := p.advance()
	return p.b.Strings.Intern(t.Text), t.Span, true
}

// semi consumes a statement terminator with automatic semicolon insertion:
// an explicit ';', or a '}' / EOF / newline boundary.
func (p *Parser) semi() bool {
	if p.eat(token.Semicolon) {
		return true
	}
	if p.at(token.RBrace) || p.at(token.EOF) {
		return true
	}
	if p.cur().NewlineBefore {
		return true
	}
	p.errHere(diag.SynExpectSemicolon, "expected ';'")
	return false
}

// spanFrom covers from a start span through the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// gtAdjacent reports whether the token n positions ahead is a '>' glued to
// the one before it (no trivia between), used to re-join >>, >>>, >= runs.
func (p *Parser) gtAdjacent(n int) bool {
	prev := p.peekAt(n - 1)
	next := p.peekAt(n)
	return next.Kind == token.Gt && len(next.Leading) == 0 && next.Span.Start == prev.Span.End
}

// adjacentKind reports whether the token n ahead has the kind and is glued
// to its predecessor.
func (p *Parser) adjacentKind(n int, kind token.Kind) bool {
	prev := p.peekAt(n - 1)
	next := p.peekAt(n)
	return next.Kind == kind && len(next.Leading) == 0 && next.Span.Start == prev.Span.End
}

func (p *Parser) pushFnCtx(async, generator bool) {
	p.fnCtx = append(p.fnCtx, fnCtx{async: async, generator: generator})
}

func (p *Parser) popFnCtx() {
	if len(p.fnCtx) > 0 {
		p.fnCtx = p.fnCtx[:len(p.fnCtx)-1]
	}
}

func (p *Parser) inAsync() bool {
	if len(p.fnCtx) == 0 {
		return false
	}
	return p.fnCtx[len(p.fnCtx)-1].async
}

func (p *Parser) inGenerator() bool {
	if len(p.fnCtx) == 0 {
		return false
	}
	return p.fnCtx[len(p.fnCtx)-1].generator
}
