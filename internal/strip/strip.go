// Package strip implements the strip-only erasure pass: every erasable
// TypeScript construct is replaced by ASCII spaces of the same byte
// length, newlines inside erased spans survive verbatim, and any
// construct with runtime semantics aborts the pass. Output positions are
// identical to input positions by construction.
package strip

import (
	"tstrip/internal/ast"
	"tstrip/internal/classify"
	"tstrip/internal/diag"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Result holds the stripped file content. Its length always equals the
// input length.
type Result struct {
	Code []byte
}

// File erases the TypeScript dimension of one parsed file. The first
// runtime or disallowed construct aborts the pass.
func File(fs *source.FileSet, b *ast.Builder, fileID ast.FileID) (Result, *diag.Diagnostic) {
	f := b.Files.Get(fileID)
	src := fs.Get(f.Span.File).Content

	e := &eraser{
		b:   b,
		out: append([]byte(nil), src...),
	}
	for _, stmt := range f.Body {
		e.stmt(stmt)
		if e.fail != nil {
			return Result{}, e.fail
		}
	}
	return Result{Code: e.out}, nil
}

type eraser struct {
	b    *ast.Builder
	out  []byte
	fail *diag.Diagnostic
}

// erase space-pads a span, keeping line terminators.
func (e *eraser) erase(sp source.Span) {
	for i := sp.Start; i < sp.End && int(i) < len(e.out); i++ {
		if e.out[i] != '\n' && e.out[i] != '\r' {
			e.out[i] = ' '
		}
	}
}

func (e *eraser) reject(code diag.Code, sp source.Span, msg string) {
	if e.fail == nil {
		d := diag.NewError(code, sp, msg)
		e.fail = &d
	}
}

// rejectConstruct maps a disallowed construct to its rejection message.
func (e *eraser) rejectConstruct(c ast.TSConstruct, sp source.Span) {
	switch c {
	case ast.ConstructEnum, ast.ConstructConstEnum:
		e.reject(diag.StripEnum, sp,
			"TypeScript enum is not supported in strip-only mode")
	case ast.ConstructNamespaceValue:
		e.reject(diag.StripNamespace, sp,
			"TypeScript namespace declaration is not supported in strip-only mode")
	case ast.ConstructModuleKeyword:
		e.reject(diag.StripModuleKeyword, sp,
			"`module` keyword is not supported. Use `namespace` instead.")
	case ast.ConstructParamProperty:
		e.reject(diag.StripParamProperty, sp,
			"TypeScript parameter property is not supported in strip-only mode")
	case ast.ConstructImportEquals:
		e.reject(diag.StripImportEquals, sp,
			"TypeScript import equals declaration is not supported in strip-only mode")
	case ast.ConstructExportAssign:
		e.reject(diag.StripExportAssign, sp,
			"TypeScript export assignment is not supported in strip-only mode")
	}
}

// apply consults the classification table and either erases the span or
// records the rejection. It reports whether the construct was erased.
func (e *eraser) apply(c ast.TSConstruct, sp source.Span) bool {
	switch classify.Of(c, classify.ModeStrip) {
	case classify.Erasable:
		e.erase(sp)
		return true
	default:
		e.rejectConstruct(c, sp)
		return false
	}
}

func (e *eraser) stmt(id ast.StmtID) {
	if e.fail != nil || id == ast.NoStmtID {
		return
	}
	st := e.b.Stmts.Get(id)

	// the module keyword is rejected even inside ambient subtrees
	if st.Kind == ast.StmtNamespace {
		ns, _ := e.b.Stmts.Namespace(id)
		if ns.ModuleKw {
			e.rejectConstruct(ast.ConstructModuleKeyword, ns.KeywordSpan.Cover(ns.NameSpan))
			return
		}
	}
	if st.Ambient() {
		if sp, found := findModuleKeyword(e.b, id); found {
			e.rejectConstruct(ast.ConstructModuleKeyword, sp)
			return
		}
		e.apply(ast.ConstructAmbientDeclare, st.Span)
		return
	}

	switch st.Kind {
	case ast.StmtInterface:
		e.apply(ast.ConstructInterface, st.Span)

	case ast.StmtTypeAlias:
		e.apply(ast.ConstructTypeAlias, st.Span)

	case ast.StmtEnum:
		en, _ := e.b.Stmts.Enum(id)
		c := ast.ConstructEnum
		if en.Const {
			c = ast.ConstructConstEnum
		}
		e.apply(c, st.Span)

	case ast.StmtNamespace:
		ns, _ := e.b.Stmts.Namespace(id)
		if typeOnlyBody(e.b, ns.Body) {
			e.apply(ast.ConstructNamespaceTypeOnly, st.Span)
			return
		}
		e.apply(ast.ConstructNamespaceValue, st.Span)

	case ast.StmtImportEquals:
		e.apply(ast.ConstructImportEquals, st.Span)

	case ast.StmtExportAssign:
		e.apply(ast.ConstructExportAssign, st.Span)

	case ast.StmtImport:
		imp, _ := e.b.Stmts.Import(id)
		if imp.TypeOnly {
			e.apply(ast.ConstructImportType, st.Span)
			return
		}
		for _, sp := range imp.TypeSpecs {
			e.apply(ast.ConstructImportType, sp)
		}

	case ast.StmtExport:
		exp, _ := e.b.Stmts.Export(id)
		if exp.TypeOnly {
			e.apply(ast.ConstructExportType, st.Span)
			return
		}
		for _, sp := range exp.TypeSpecs {
			e.apply(ast.ConstructExportType, sp)
		}
		if exp.Decl != ast.NoStmtID {
			inner := e.b.Stmts.Get(exp.Decl)
			// 'export interface', 'export type', 'export declare' erase
			// together with the export keyword
			if inner.Ambient() || inner.Kind == ast.StmtInterface || inner.Kind == ast.StmtTypeAlias {
				if sp, found := findModuleKeyword(e.b, exp.Decl); found {
					e.rejectConstruct(ast.ConstructModuleKeyword, sp)
					return
				}
				e.erase(st.Span)
				return
			}
			e.stmt(exp.Decl)
		}

	case ast.StmtVar:
		v, _ := e.b.Stmts.Var(id)
		for i := range v.Decls {
			d := &v.Decls[i]
			if !d.Bang.Empty() {
				e.apply(ast.ConstructDefiniteAssign, d.Bang)
			}
			if !d.TypeAnn.Empty() {
				e.apply(ast.ConstructTypeAnnotation, d.TypeAnn)
			}
			e.expr(d.Pattern)
			e.expr(d.Init)
		}

	case ast.StmtFunction:
		fn, _ := e.b.Stmts.Function(id)
		if e.b.Fns.Get(fn.Fn).IsOverloadSig() {
			e.apply(ast.ConstructFunctionOverload, st.Span)
			return
		}
		e.fn(fn.Fn, false)

	case ast.StmtClass:
		cl, _ := e.b.Stmts.Class(id)
		e.class(cl.Class)

	case ast.StmtExpr:
		es, _ := e.b.Stmts.ExprStmt(id)
		e.expr(es.Expr)

	case ast.StmtBlock:
		blk, _ := e.b.Stmts.Block(id)
		for _, s := range blk.Body {
			e.stmt(s)
		}

	case ast.StmtIf:
		d, _ := e.b.Stmts.If(id)
		e.expr(d.Cond)
		e.stmt(d.Then)
		e.stmt(d.Else)

	case ast.StmtWhile, ast.StmtDoWhile:
		d, _ := e.b.Stmts.While(id)
		e.expr(d.Cond)
		e.stmt(d.Body)

	case ast.StmtFor:
		d, _ := e.b.Stmts.For(id)
		e.stmt(d.Init)
		e.expr(d.Cond)
		e.expr(d.Post)
		e.stmt(d.Body)

	case ast.StmtForInOf:
		d, _ := e.b.Stmts.ForInOf(id)
		e.stmt(d.Decl)
		e.expr(d.Object)
		e.stmt(d.Body)

	case ast.StmtSwitch:
		d, _ := e.b.Stmts.Switch(id)
		e.expr(d.Disc)
		for i := range d.Cases {
			e.expr(d.Cases[i].Expr)
			for _, s := range d.Cases[i].Body {
				e.stmt(s)
			}
		}

	case ast.StmtTry:
		d, _ := e.b.Stmts.Try(id)
		e.stmt(d.Block)
		e.expr(d.CatchParam)
		if !d.CatchType.Empty() {
			e.apply(ast.ConstructTypeAnnotation, d.CatchType)
		}
		e.stmt(d.CatchBody)
		e.stmt(d.Finally)

	case ast.StmtReturn, ast.StmtThrow:
		d, _ := e.b.Stmts.Return(id)
		e.expr(d.Expr)

	case ast.StmtLabeled:
		d, _ := e.b.Stmts.Labeled(id)
		e.stmt(d.Body)
	}
}

// fn erases the TypeScript dimension of a function. inCtor enables the
// parameter-property rejection, which only constructors can trigger.
func (e *eraser) fn(id ast.FnID, inCtor bool) {
	decl := e.b.Fns.Get(id)
	if !decl.TypeParams.Empty() {
		e.apply(ast.ConstructTypeParams, decl.TypeParams)
	}
	if !decl.ThisParam.Empty() {
		e.apply(ast.ConstructThisParam, decl.ThisParam)
	}
	if !decl.ReturnType.Empty() {
		e.apply(ast.ConstructTypeAnnotation, decl.ReturnType)
	}
	for _, pid := range decl.Params {
		param := e.b.Params.Get(pid)
		if param.IsProperty() && inCtor {
			e.apply(ast.ConstructParamProperty, param.Span)
			return
		}
		for _, mod := range param.Modifiers {
			e.erase(mod.Span)
		}
		if !param.Question.Empty() {
			e.apply(ast.ConstructOptionalMarker, param.Question)
		}
		if !param.TypeAnn.Empty() {
			e.apply(ast.ConstructTypeAnnotation, param.TypeAnn)
		}
		e.expr(param.Pattern)
		e.expr(param.Init)
	}
	e.stmt(decl.Body)
	e.expr(decl.ExprBody)
}

func (e *eraser) class(id ast.ClassID) {
	decl := e.b.Classes.Get(id)
	if !decl.AbstractSpan.Empty() {
		e.apply(ast.ConstructAbstractModifier, decl.AbstractSpan)
	}
	if !decl.TypeParams.Empty() {
		e.apply(ast.ConstructTypeParams, decl.TypeParams)
	}
	if !decl.ExtendsTypeArgs.Empty() {
		e.apply(ast.ConstructTypeArgs, decl.ExtendsTypeArgs)
	}
	if !decl.Implements.Empty() {
		e.apply(ast.ConstructImplementsClause, decl.Implements)
	}
	e.expr(decl.Extends)

	for _, mid := range decl.Members {
		if e.fail != nil {
			return
		}
		e.member(mid)
	}
}

func (e *eraser) member(mid ast.MemberID) {
	m := e.b.Classes.Member(mid)

	if m.Kind == ast.MemberIndexSig {
		e.apply(ast.ConstructIndexSignature, m.Span)
		return
	}
	if ast.HasModifier(m.Modifiers, token.KwDeclare) {
		e.apply(ast.ConstructDeclareMember, m.Span)
		return
	}
	// abstract methods and accessors have no runtime body
	if ast.HasModifier(m.Modifiers, token.KwAbstract) && m.Kind != ast.MemberField {
		e.apply(ast.ConstructAbstractMember, m.Span)
		return
	}
	if isFnMember(m.Kind) && e.b.Fns.Get(m.Fn).IsOverloadSig() {
		e.apply(ast.ConstructFunctionOverload, m.Span)
		return
	}

	for _, mod := range m.Modifiers {
		if c, erasable := modifierConstruct(mod.Kind); erasable {
			e.apply(c, mod.Span)
		}
	}
	if !m.Question.Empty() {
		e.apply(ast.ConstructOptionalMarker, m.Question)
	}
	if !m.Bang.Empty() {
		e.apply(ast.ConstructDefiniteAssign, m.Bang)
	}
	if !m.TypeAnn.Empty() {
		e.apply(ast.ConstructTypeAnnotation, m.TypeAnn)
	}
	e.expr(m.Key)
	e.expr(m.Init)
	switch m.Kind {
	case ast.MemberStaticBlock:
		e.stmt(m.Body)
	case ast.MemberCtor:
		e.fn(m.Fn, true)
	case ast.MemberMethod, ast.MemberGetter, ast.MemberSetter:
		e.fn(m.Fn, false)
	}
}

func isFnMember(k ast.MemberKind) bool {
	switch k {
	case ast.MemberMethod, ast.MemberGetter, ast.MemberSetter, ast.MemberCtor:
		return true
	default:
		return false
	}
}

// modifierConstruct maps TS-only member modifiers to constructs; static
// and async carry runtime semantics and stay.
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

func (e *eraser) expr(id ast.ExprID) {
	if e.fail != nil || id == ast.NoExprID {
		return
	}
	expr := e.b.Exprs.Get(id)

	switch expr.Kind {
	case ast.ExprAs:
		cast, _ := e.b.Exprs.Cast(id)
		e.apply(ast.ConstructAsExpr, cast.TypeSpan)
		e.expr(cast.Inner)

	case ast.ExprSatisfies:
		cast, _ := e.b.Exprs.Cast(id)
		e.apply(ast.ConstructSatisfiesExpr, cast.TypeSpan)
		e.expr(cast.Inner)

	case ast.ExprTypeAssert:
		cast, _ := e.b.Exprs.Cast(id)
		e.apply(ast.ConstructTypeAssertion, cast.TypeSpan)
		e.expr(cast.Inner)

	case ast.ExprNonNull:
		w, _ := e.b.Exprs.Wrap(id)
		inner := e.b.Exprs.Get(w.Inner)
		e.apply(ast.ConstructNonNull,
			source.Span{File: expr.Span.File, Start: inner.Span.End, End: expr.Span.End})
		e.expr(w.Inner)

	case ast.ExprSpread, ast.ExprParen, ast.ExprAwait, ast.ExprYield:
		w, _ := e.b.Exprs.Wrap(id)
		e.expr(w.Inner)

	case ast.ExprCall, ast.ExprNew:
		call, _ := e.b.Exprs.Call(id)
		if !call.TypeArgs.Empty() {
			e.apply(ast.ConstructTypeArgs, call.TypeArgs)
		}
		e.expr(call.Callee)
		for _, arg := range call.Args {
			e.expr(arg)
		}

	case ast.ExprFunction, ast.ExprArrow:
		fd, _ := e.b.Exprs.Fn(id)
		e.fn(fd.Fn, false)

	case ast.ExprClass:
		cd, _ := e.b.Exprs.ClassRef(id)
		e.class(cd.Class)

	case ast.ExprArray, ast.ExprSeq:
		list, _ := e.b.Exprs.List(id)
		for _, elem := range list.Elems {
			e.expr(elem)
		}

	case ast.ExprObject:
		obj, _ := e.b.Exprs.Object(id)
		for i := range obj.Props {
			prop := &obj.Props[i]
			e.expr(prop.Key)
			e.expr(prop.Value)
			if prop.Fn != ast.NoFnID {
				e.fn(prop.Fn, false)
			}
		}

	case ast.ExprTemplate:
		tpl, _ := e.b.Exprs.Template(id)
		for _, part := range tpl.Parts {
			e.expr(part)
		}

	case ast.ExprTagged:
		tag, _ := e.b.Exprs.Tagged(id)
		e.expr(tag.Tag)
		e.expr(tag.Quasi)

	case ast.ExprUnary:
		u, _ := e.b.Exprs.Unary(id)
		e.expr(u.Operand)

	case ast.ExprUpdate:
		u, _ := e.b.Exprs.Update(id)
		e.expr(u.Operand)

	case ast.ExprBinary:
		bin, _ := e.b.Exprs.Binary(id)
		e.expr(bin.Left)
		e.expr(bin.Right)

	case ast.ExprAssign:
		a, _ := e.b.Exprs.Assign(id)
		e.expr(a.Target)
		e.expr(a.Value)

	case ast.ExprCond:
		c, _ := e.b.Exprs.Cond(id)
		e.expr(c.Cond)
		e.expr(c.Then)
		e.expr(c.Else)

	case ast.ExprMember:
		m, _ := e.b.Exprs.Member(id)
		e.expr(m.Object)

	case ast.ExprIndex:
		ix, _ := e.b.Exprs.Index(id)
		e.expr(ix.Object)
		e.expr(ix.Index)
	}
}

// typeOnlyBody reports whether every statement in a namespace body is
// erasable, making the namespace itself type-only.
func typeOnlyBody(b *ast.Builder, body []ast.StmtID) bool {
	for _, id := range body {
		st := b.Stmts.Get(id)
		if st.Ambient() {
			continue
		}
		switch st.Kind {
		case ast.StmtEmpty, ast.StmtInterface, ast.StmtTypeAlias:
			continue
		case ast.StmtNamespace:
			ns, _ := b.Stmts.Namespace(id)
			if ns.ModuleKw || !typeOnlyBody(b, ns.Body) {
				return false
			}
		case ast.StmtExport:
			exp, _ := b.Stmts.Export(id)
			if exp.TypeOnly {
				continue
			}
			if exp.Decl == ast.NoStmtID {
				return false
			}
			inner := b.Stmts.Get(exp.Decl)
			if inner.Ambient() || inner.Kind == ast.StmtInterface || inner.Kind == ast.StmtTypeAlias {
				continue
			}
			if inner.Kind == ast.StmtNamespace {
				ns, _ := b.Stmts.Namespace(exp.Decl)
				if !ns.ModuleKw && typeOnlyBody(b, ns.Body) {
					continue
				}
			}
			return false
		default:
			return false
		}
	}
	return true
}

// findModuleKeyword scans a subtree for a 'module foo' namespace and
// returns the span to report.
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
