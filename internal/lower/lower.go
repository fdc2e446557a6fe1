// Package lower implements the full transform pass: erasable TypeScript
// syntax is blanked exactly as in strip mode, while enums, value
// namespaces, and constructor parameter properties are rewritten into
// plain JavaScript. The module keyword stays rejected.
package lower

import (
	"strings"

	"tstrip/internal/ast"
	"tstrip/internal/classify"
	"tstrip/internal/diag"
	"tstrip/internal/printer"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Result carries the splice edits for one file. printer.Render applies
// them to the original bytes.
type Result struct {
	Edits []printer.Edit
}

// File lowers one parsed file. The first disallowed construct aborts.
func File(fs *source.FileSet, b *ast.Builder, fileID ast.FileID) (*Result, *diag.Diagnostic) {
	f := b.Files.Get(fileID)
	src := fs.Get(f.Span.File).Content

	lc := &lowerer{
		b:    b,
		src:  src,
		file: f.Span.File,
	}
	sc := newScope("")
	var edits []printer.Edit
	for _, stmt := range f.Body {
		lc.stmt(&edits, sc, stmt)
		if lc.fail != nil {
			return nil, lc.fail
		}
	}
	return &Result{Edits: edits}, nil
}

// lowerer is the per-invocation transform context. It owns the failure
// slot and the synthesized-text builders; nothing in it is shared across
// invocations.
type lowerer struct {
	b    *ast.Builder
	src  []byte
	file source.FileID
	fail *diag.Diagnostic
}

// scope tracks which namespace/enum bindings were already declared at one
// nesting level, so merged blocks reuse the binding instead of
// redeclaring it.
type scope struct {
	// ns is the enclosing namespace binding, empty at file level.
	ns       string
	declared map[string]bool
}

func newScope(ns string) *scope {
	return &scope{ns: ns, declared: make(map[string]bool)}
}

// bind records a lowered binding and reports whether this is its first
// declaration at this level.
func (s *scope) bind(name string) bool {
	if s.declared[name] {
		return false
	}
	s.declared[name] = true
	return true
}

func (lc *lowerer) reject(code diag.Code, sp source.Span, msg string) {
	if lc.fail == nil {
		d := diag.NewError(code, sp, msg)
		lc.fail = &d
	}
}

// rejectConstruct maps a disallowed construct to its rejection message.
func (lc *lowerer) rejectConstruct(c ast.TSConstruct, sp source.Span) {
	switch c {
	case ast.ConstructModuleKeyword:
		lc.reject(diag.LowerModuleKeyword, sp,
			"`module` keyword is not supported. Use `namespace` instead.")
	case ast.ConstructImportEquals:
		lc.reject(diag.LowerImportEquals, sp,
			"TypeScript import equals declaration is not supported")
	case ast.ConstructExportAssign:
		lc.reject(diag.LowerExportAssign, sp,
			"TypeScript export assignment is not supported")
	}
}

// apply consults the classification table. Erasable spans are blanked,
// disallowed constructs recorded; it returns false when the construct has
// runtime semantics and the caller must rewrite it.
func (lc *lowerer) apply(edits *[]printer.Edit, c ast.TSConstruct, sp source.Span) bool {
	switch classify.Of(c, classify.ModeTransform) {
	case classify.Erasable:
		lc.erase(edits, sp)
		return true
	case classify.Disallowed:
		lc.rejectConstruct(c, sp)
		return true
	}
	return false
}

func (lc *lowerer) erase(edits *[]printer.Edit, sp source.Span) {
	if sp.Empty() {
		return
	}
	*edits = append(*edits, printer.Edit{Span: sp})
}

func (lc *lowerer) replace(edits *[]printer.Edit, sp source.Span, text string) {
	*edits = append(*edits, printer.Edit{Span: sp, Text: []byte(text)})
}

func (lc *lowerer) insert(edits *[]printer.Edit, at uint32, text string) {
	*edits = append(*edits, printer.Edit{
		Span: source.Span{File: lc.file, Start: at, End: at},
		Text: []byte(text),
	})
}

func (lc *lowerer) text(sp source.Span) string {
	return string(lc.src[sp.Start:sp.End])
}

// stmt lowers one statement into the edit sink. exported is the span of a
// wrapping 'export' keyword when the statement came through an export
// declaration inside a namespace.
func (lc *lowerer) stmt(edits *[]printer.Edit, sc *scope, id ast.StmtID) {
	if lc.fail != nil || id == ast.NoStmtID {
		return
	}
	st := lc.b.Stmts.Get(id)

	// the module keyword is rejected even inside ambient subtrees
	if st.Kind == ast.StmtNamespace {
		ns, _ := lc.b.Stmts.Namespace(id)
		if ns.ModuleKw {
			lc.rejectConstruct(ast.ConstructModuleKeyword, ns.KeywordSpan.Cover(ns.NameSpan))
			return
		}
	}
	if st.Ambient() {
		if sp, found := findModuleKeyword(lc.b, id); found {
			lc.rejectConstruct(ast.ConstructModuleKeyword, sp)
			return
		}
		lc.apply(edits, ast.ConstructAmbientDeclare, st.Span)
		return
	}

	switch st.Kind {
	case ast.StmtInterface:
		lc.apply(edits, ast.ConstructInterface, st.Span)

	case ast.StmtTypeAlias:
		lc.apply(edits, ast.ConstructTypeAlias, st.Span)

	case ast.StmtEnum:
		lc.lowerEnum(edits, sc, id, st, false)

	case ast.StmtNamespace:
		lc.lowerNamespace(edits, sc, id, st, false)

	case ast.StmtImportEquals:
		lc.rejectConstruct(ast.ConstructImportEquals, st.Span)

	case ast.StmtExportAssign:
		lc.rejectConstruct(ast.ConstructExportAssign, st.Span)

	case ast.StmtImport:
		imp, _ := lc.b.Stmts.Import(id)
		if imp.TypeOnly {
			lc.apply(edits, ast.ConstructImportType, st.Span)
			return
		}
		for _, sp := range imp.TypeSpecs {
			lc.apply(edits, ast.ConstructImportType, sp)
		}

	case ast.StmtExport:
		lc.lowerExport(edits, sc, id, st)

	case ast.StmtVar:
		v, _ := lc.b.Stmts.Var(id)
		for i := range v.Decls {
			d := &v.Decls[i]
			lc.apply(edits, ast.ConstructDefiniteAssign, d.Bang)
			lc.apply(edits, ast.ConstructTypeAnnotation, d.TypeAnn)
			lc.expr(edits, sc, d.Pattern)
			lc.expr(edits, sc, d.Init)
		}

	case ast.StmtFunction:
		fn, _ := lc.b.Stmts.Function(id)
		if lc.b.Fns.Get(fn.Fn).IsOverloadSig() {
			lc.apply(edits, ast.ConstructFunctionOverload, st.Span)
			return
		}
		lc.fn(edits, sc, fn.Fn, false)

	case ast.StmtClass:
		cl, _ := lc.b.Stmts.Class(id)
		lc.class(edits, sc, cl.Class)

	case ast.StmtExpr:
		es, _ := lc.b.Stmts.ExprStmt(id)
		lc.expr(edits, sc, es.Expr)

	case ast.StmtBlock:
		// a block opens a fresh lexical scope: a same-name enum or
		// namespace inside it is a new binding that needs its own 'var',
		// not a continuation of an outer one
		blk, _ := lc.b.Stmts.Block(id)
		inner := newScope(sc.ns)
		for _, s := range blk.Body {
			lc.stmt(edits, inner, s)
		}

	case ast.StmtIf:
		d, _ := lc.b.Stmts.If(id)
		lc.expr(edits, sc, d.Cond)
		lc.stmt(edits, sc, d.Then)
		lc.stmt(edits, sc, d.Else)

	case ast.StmtWhile, ast.StmtDoWhile:
		d, _ := lc.b.Stmts.While(id)
		lc.expr(edits, sc, d.Cond)
		lc.stmt(edits, sc, d.Body)

	case ast.StmtFor:
		d, _ := lc.b.Stmts.For(id)
		lc.stmt(edits, sc, d.Init)
		lc.expr(edits, sc, d.Cond)
		lc.expr(edits, sc, d.Post)
		lc.stmt(edits, sc, d.Body)

	case ast.StmtForInOf:
		d, _ := lc.b.Stmts.ForInOf(id)
		lc.stmt(edits, sc, d.Decl)
		lc.expr(edits, sc, d.Object)
		lc.stmt(edits, sc, d.Body)

	case ast.StmtSwitch:
		d, _ := lc.b.Stmts.Switch(id)
		lc.expr(edits, sc, d.Disc)
		for i := range d.Cases {
			lc.expr(edits, sc, d.Cases[i].Expr)
			for _, s := range d.Cases[i].Body {
				lc.stmt(edits, sc, s)
			}
		}

	case ast.StmtTry:
		d, _ := lc.b.Stmts.Try(id)
		lc.stmt(edits, sc, d.Block)
		lc.expr(edits, sc, d.CatchParam)
		lc.apply(edits, ast.ConstructTypeAnnotation, d.CatchType)
		lc.stmt(edits, sc, d.CatchBody)
		lc.stmt(edits, sc, d.Finally)

	case ast.StmtReturn, ast.StmtThrow:
		d, _ := lc.b.Stmts.Return(id)
		lc.expr(edits, sc, d.Expr)

	case ast.StmtLabeled:
		d, _ := lc.b.Stmts.Labeled(id)
		lc.stmt(edits, sc, d.Body)
	}
}

// lowerExport handles export declarations. Inside a namespace the export
// keyword is blanked and a property assignment onto the namespace object
// is appended instead.
func (lc *lowerer) lowerExport(edits *[]printer.Edit, sc *scope, id ast.StmtID, st *ast.Stmt) {
	exp, _ := lc.b.Stmts.Export(id)
	if exp.TypeOnly {
		lc.apply(edits, ast.ConstructExportType, st.Span)
		return
	}
	for _, sp := range exp.TypeSpecs {
		lc.apply(edits, ast.ConstructExportType, sp)
	}
	if exp.Decl == ast.NoStmtID {
		return
	}
	inner := lc.b.Stmts.Get(exp.Decl)
	if inner.Ambient() || inner.Kind == ast.StmtInterface || inner.Kind == ast.StmtTypeAlias {
		if sp, found := findModuleKeyword(lc.b, exp.Decl); found {
			lc.rejectConstruct(ast.ConstructModuleKeyword, sp)
			return
		}
		lc.erase(edits, st.Span)
		return
	}

	kwSpan := source.Span{File: lc.file, Start: st.Span.Start, End: inner.Span.Start}
	if sc.ns == "" {
		// real ESM export: lower the declaration. The keyword survives
		// only on a binding's first block; a later same-name block merges
		// into a binding the first block already exported, and keeping
		// 'export' in front of its bare IIFE would not parse.
		switch inner.Kind {
		case ast.StmtEnum:
			en, _ := lc.b.Stmts.Enum(exp.Decl)
			if sc.declared[lc.b.Lookup(en.Name)] {
				lc.erase(edits, kwSpan)
			}
			lc.lowerEnum(edits, sc, exp.Decl, inner, true)
		case ast.StmtNamespace:
			ns, _ := lc.b.Stmts.Namespace(exp.Decl)
			if typeOnlyBody(lc.b, ns.Body) {
				lc.erase(edits, st.Span)
				return
			}
			root, _, _ := strings.Cut(lc.b.Lookup(ns.Name), ".")
			if sc.declared[root] {
				lc.erase(edits, kwSpan)
			}
			lc.lowerNamespace(edits, sc, exp.Decl, inner, true)
		default:
			lc.stmt(edits, sc, exp.Decl)
		}
		return
	}

	// namespace member export: blank the keyword
	lc.erase(edits, kwSpan)

	switch inner.Kind {
	case ast.StmtEnum:
		lc.lowerEnum(edits, sc, exp.Decl, inner, true)
	case ast.StmtNamespace:
		lc.lowerNamespace(edits, sc, exp.Decl, inner, true)
	case ast.StmtVar:
		lc.stmt(edits, sc, exp.Decl)
		v, _ := lc.b.Stmts.Var(exp.Decl)
		var sb []byte
		for i := range v.Decls {
			name := lc.declName(&v.Decls[i])
			if name == "" {
				continue
			}
			sb = append(sb, (" " + sc.ns + "." + name + " = " + name + ";")...)
		}
		lc.insert(edits, st.Span.End, string(sb))
	case ast.StmtFunction:
		lc.stmt(edits, sc, exp.Decl)
		fn, _ := lc.b.Stmts.Function(exp.Decl)
		name := lc.b.Lookup(lc.b.Fns.Get(fn.Fn).Name)
		lc.insert(edits, st.Span.End, " "+sc.ns+"."+name+" = "+name+";")
	case ast.StmtClass:
		lc.stmt(edits, sc, exp.Decl)
		cl, _ := lc.b.Stmts.Class(exp.Decl)
		name := lc.b.Lookup(lc.b.Classes.Get(cl.Class).Name)
		lc.insert(edits, st.Span.End, " "+sc.ns+"."+name+" = "+name+";")
	default:
		lc.stmt(edits, sc, exp.Decl)
	}
}

func (lc *lowerer) declName(d *ast.VarDecl) string {
	if d.Pattern != ast.NoExprID {
		return "" // destructuring exports keep their bindings local
	}
	return lc.b.Lookup(d.Name)
}

func (lc *lowerer) fn(edits *[]printer.Edit, sc *scope, id ast.FnID, inCtor bool) {
	decl := lc.b.Fns.Get(id)
	lc.apply(edits, ast.ConstructTypeParams, decl.TypeParams)
	lc.apply(edits, ast.ConstructThisParam, decl.ThisParam)
	lc.apply(edits, ast.ConstructTypeAnnotation, decl.ReturnType)

	var propNames []string
	for _, pid := range decl.Params {
		param := lc.b.Params.Get(pid)
		if param.IsProperty() && inCtor {
			// parameter keeps its plain form; modifiers go, and the
			// field assignment lands at the top of the body
			if param.Pattern == ast.NoExprID {
				propNames = append(propNames, lc.b.Lookup(param.Name))
			}
		}
		for _, mod := range param.Modifiers {
			lc.erase(edits, mod.Span)
		}
		lc.apply(edits, ast.ConstructOptionalMarker, param.Question)
		lc.apply(edits, ast.ConstructTypeAnnotation, param.TypeAnn)
		lc.expr(edits, sc, param.Pattern)
		lc.expr(edits, sc, param.Init)
	}

	if len(propNames) > 0 && decl.Body != ast.NoStmtID {
		body := lc.b.Stmts.Get(decl.Body)
		var sb []byte
		for _, name := range propNames {
			sb = append(sb, (" this." + name + " = " + name + ";")...)
		}
		lc.insert(edits, body.Span.Start+1, string(sb))
	}

	lc.stmt(edits, sc, decl.Body)
	lc.expr(edits, sc, decl.ExprBody)
}

func (lc *lowerer) class(edits *[]printer.Edit, sc *scope, id ast.ClassID) {
	decl := lc.b.Classes.Get(id)
	lc.apply(edits, ast.ConstructAbstractModifier, decl.AbstractSpan)
	lc.apply(edits, ast.ConstructTypeParams, decl.TypeParams)
	lc.apply(edits, ast.ConstructTypeArgs, decl.ExtendsTypeArgs)
	lc.apply(edits, ast.ConstructImplementsClause, decl.Implements)
	lc.expr(edits, sc, decl.Extends)

	for _, mid := range decl.Members {
		if lc.fail != nil {
			return
		}
		lc.member(edits, sc, mid)
	}
}

func (lc *lowerer) member(edits *[]printer.Edit, sc *scope, mid ast.MemberID) {
	m := lc.b.Classes.Member(mid)

	if m.Kind == ast.MemberIndexSig {
		lc.apply(edits, ast.ConstructIndexSignature, m.Span)
		return
	}
	if ast.HasModifier(m.Modifiers, token.KwDeclare) {
		lc.apply(edits, ast.ConstructDeclareMember, m.Span)
		return
	}
	if ast.HasModifier(m.Modifiers, token.KwAbstract) && m.Kind != ast.MemberField {
		lc.apply(edits, ast.ConstructAbstractMember, m.Span)
		return
	}
	if m.Fn != ast.NoFnID && lc.b.Fns.Get(m.Fn).IsOverloadSig() {
		lc.apply(edits, ast.ConstructFunctionOverload, m.Span)
		return
	}

	for _, mod := range m.Modifiers {
		if c, ok := modifierConstruct(mod.Kind); ok {
			lc.apply(edits, c, mod.Span)
		}
	}
	lc.apply(edits, ast.ConstructOptionalMarker, m.Question)
	lc.apply(edits, ast.ConstructDefiniteAssign, m.Bang)
	lc.apply(edits, ast.ConstructTypeAnnotation, m.TypeAnn)
	lc.expr(edits, sc, m.Key)
	lc.expr(edits, sc, m.Init)
	switch m.Kind {
	case ast.MemberStaticBlock:
		lc.stmt(edits, sc, m.Body)
	case ast.MemberCtor:
		lc.fn(edits, sc, m.Fn, true)
	case ast.MemberMethod, ast.MemberGetter, ast.MemberSetter:
		lc.fn(edits, sc, m.Fn, false)
	}
}

func (lc *lowerer) expr(edits *[]printer.Edit, sc *scope, id ast.ExprID) {
	if lc.fail != nil || id == ast.NoExprID {
		return
	}
	expr := lc.b.Exprs.Get(id)

	switch expr.Kind {
	case ast.ExprAs:
		cast, _ := lc.b.Exprs.Cast(id)
		lc.apply(edits, ast.ConstructAsExpr, cast.TypeSpan)
		lc.expr(edits, sc, cast.Inner)

	case ast.ExprSatisfies:
		cast, _ := lc.b.Exprs.Cast(id)
		lc.apply(edits, ast.ConstructSatisfiesExpr, cast.TypeSpan)
		lc.expr(edits, sc, cast.Inner)

	case ast.ExprTypeAssert:
		cast, _ := lc.b.Exprs.Cast(id)
		lc.apply(edits, ast.ConstructTypeAssertion, cast.TypeSpan)
		lc.expr(edits, sc, cast.Inner)

	case ast.ExprNonNull:
		w, _ := lc.b.Exprs.Wrap(id)
		inner := lc.b.Exprs.Get(w.Inner)
		lc.apply(edits, ast.ConstructNonNull,
			source.Span{File: lc.file, Start: inner.Span.End, End: expr.Span.End})
		lc.expr(edits, sc, w.Inner)

	case ast.ExprSpread, ast.ExprParen, ast.ExprAwait, ast.ExprYield:
		w, _ := lc.b.Exprs.Wrap(id)
		lc.expr(edits, sc, w.Inner)

	case ast.ExprCall, ast.ExprNew:
		call, _ := lc.b.Exprs.Call(id)
		lc.apply(edits, ast.ConstructTypeArgs, call.TypeArgs)
		lc.expr(edits, sc, call.Callee)
		for _, arg := range call.Args {
			lc.expr(edits, sc, arg)
		}

	case ast.ExprFunction, ast.ExprArrow:
		fd, _ := lc.b.Exprs.Fn(id)
		lc.fn(edits, sc, fd.Fn, false)

	case ast.ExprClass:
		cd, _ := lc.b.Exprs.ClassRef(id)
		lc.class(edits, sc, cd.Class)

	case ast.ExprArray, ast.ExprSeq:
		list, _ := lc.b.Exprs.List(id)
		for _, elem := range list.Elems {
			lc.expr(edits, sc, elem)
		}

	case ast.ExprObject:
		obj, _ := lc.b.Exprs.Object(id)
		for i := range obj.Props {
			prop := &obj.Props[i]
			lc.expr(edits, sc, prop.Key)
			lc.expr(edits, sc, prop.Value)
			if prop.Fn != ast.NoFnID {
				lc.fn(edits, sc, prop.Fn, false)
			}
		}

	case ast.ExprTemplate:
		tpl, _ := lc.b.Exprs.Template(id)
		for _, part := range tpl.Parts {
			lc.expr(edits, sc, part)
		}

	case ast.ExprTagged:
		tag, _ := lc.b.Exprs.Tagged(id)
		lc.expr(edits, sc, tag.Tag)
		lc.expr(edits, sc, tag.Quasi)

	case ast.ExprUnary:
		u, _ := lc.b.Exprs.Unary(id)
		lc.expr(edits, sc, u.Operand)

	case ast.ExprUpdate:
		u, _ := lc.b.Exprs.Update(id)
		lc.expr(edits, sc, u.Operand)

	case ast.ExprBinary:
		bin, _ := lc.b.Exprs.Binary(id)
		lc.expr(edits, sc, bin.Left)
		lc.expr(edits, sc, bin.Right)

	case ast.ExprAssign:
		a, _ := lc.b.Exprs.Assign(id)
		lc.expr(edits, sc, a.Target)
		lc.expr(edits, sc, a.Value)

	case ast.ExprCond:
		c, _ := lc.b.Exprs.Cond(id)
		lc.expr(edits, sc, c.Cond)
		lc.expr(edits, sc, c.Then)
		lc.expr(edits, sc, c.Else)

	case ast.ExprMember:
		m, _ := lc.b.Exprs.Member(id)
		lc.expr(edits, sc, m.Object)

	case ast.ExprIndex:
		ix, _ := lc.b.Exprs.Index(id)
		lc.expr(edits, sc, ix.Object)
		lc.expr(edits, sc, ix.Index)
	}
}

// findModuleKeyword scans a subtree for the legacy module spelling.
func findModuleKeyword(b *ast.Builder, id ast.StmtID) (source.Span, bool) {
	if id == ast.NoStmtID {
		return source.Span{}, false
	}
	st := b.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtNamespace:
		ns, _ := b.Stmts.Namespace(id)
		if ns.ModuleKw {
			return ns.KeywordSpan.Cover(ns.NameSpan), true
		}
		for _, inner := range ns.Body {
			if sp, found := findModuleKeyword(b, inner); found {
				return sp, true
			}
		}
	case ast.StmtExport:
		exp, _ := b.Stmts.Export(id)
		return findModuleKeyword(b, exp.Decl)
	case ast.StmtBlock:
		blk, _ := b.Stmts.Block(id)
		for _, inner := range blk.Body {
			if sp, found := findModuleKeyword(b, inner); found {
				return sp, true
			}
		}
	}
	return source.Span{}, false
}

// modifierConstruct maps a class member modifier keyword to its construct;
// static and async are plain JavaScript and stay.
func modifierConstruct(k token.Kind) (ast.TSConstruct, bool) {
	switch k {
	case token.KwPublic, token.KwPrivate, token.KwProtected:
		return ast.ConstructAccessModifier, true
	case token.KwReadonly:
		return ast.ConstructReadonlyModifier, true
	case token.KwAbstract:
		return ast.ConstructAbstractModifier, true
	case token.KwOverride:
		return ast.ConstructOverrideModifier, true
	default:
		return 0, false
	}
}
