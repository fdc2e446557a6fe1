package parser

import (
	"testing"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/source"
)

func parseSrc(t *testing.T, src string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("parse.ts", []byte(src)))

	bag := diag.NewBag(32)
	reporter := diag.BagReporter{Bag: bag}
	toks := Tokenize(file, reporter)
	b := ast.NewBuilder(ast.Hints{})
	p := New(file, toks, b, reporter)
	return b, p.ParseFile(), bag
}

func parseClean(t *testing.T, src string) (*ast.Builder, *ast.File) {
	t.Helper()
	b, fid, bag := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %+v", src, bag.Items())
	}
	return b, b.Files.Get(fid)
}

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		src  string
		want ast.StmtKind
	}{
		{"var a;", ast.StmtVar},
		{"let a = 1;", ast.StmtVar},
		{"const a = 1;", ast.StmtVar},
		{"f();", ast.StmtExpr},
		{"function f() {}", ast.StmtFunction},
		{"class C {}", ast.StmtClass},
		{"{ }", ast.StmtBlock},
		{"if (x) {}", ast.StmtIf},
		{"while (x) {}", ast.StmtWhile},
		{"do {} while (x);", ast.StmtDoWhile},
		{"for (;;) {}", ast.StmtFor},
		{"for (const k in o) {}", ast.StmtForInOf},
		{"for (const v of xs) {}", ast.StmtForInOf},
		{"switch (x) {}", ast.StmtSwitch},
		{"try {} finally {}", ast.StmtTry},
		{"throw e;", ast.StmtThrow},
		{"debugger;", ast.StmtDebugger},
		{"loop: while (x) break loop;", ast.StmtLabeled},
		{"import { a } from \"m\";", ast.StmtImport},
		{"export { };", ast.StmtExport},
		{"interface I { x: number; }", ast.StmtInterface},
		{"type T = number;", ast.StmtTypeAlias},
		{"enum E { A }", ast.StmtEnum},
		{"namespace N {}", ast.StmtNamespace},
		{";", ast.StmtEmpty},
	}
	for _, tt := range tests {
		b, f := parseClean(t, tt.src)
		if len(f.Body) != 1 {
			t.Errorf("%q: got %d statements, want 1", tt.src, len(f.Body))
			continue
		}
		if got := b.Stmts.Get(f.Body[0]).Kind; got != tt.want {
			t.Errorf("%q: kind = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestParseVarAnnotations(t *testing.T) {
	src := "const n: number = 1, plain = 2;"
	b, f := parseClean(t, src)
	v, ok := b.Stmts.Var(f.Body[0])
	if !ok {
		t.Fatal("not a var statement")
	}
	if len(v.Decls) != 2 {
		t.Fatalf("got %d declarators, want 2", len(v.Decls))
	}
	first := v.Decls[0]
	if b.Lookup(first.Name) != "n" {
		t.Errorf("name = %q, want n", b.Lookup(first.Name))
	}
	if first.TypeAnn.Empty() {
		t.Error("annotated declarator has empty TypeAnn span")
	}
	if got := src[first.TypeAnn.Start:first.TypeAnn.End]; got != ": number" {
		t.Errorf("TypeAnn text = %q, want %q", got, ": number")
	}
	if !v.Decls[1].TypeAnn.Empty() {
		t.Error("bare declarator got a TypeAnn span")
	}
}

func TestParseDefiniteAssignment(t *testing.T) {
	b, f := parseClean(t, "let x!: number;")
	v, _ := b.Stmts.Var(f.Body[0])
	if v.Decls[0].Bang.Empty() {
		t.Error("definite-assignment bang span missing")
	}
}

func TestParseEnum(t *testing.T) {
	b, f := parseClean(t, "enum Color { Red, Green = 2, \"light blue\" = 3 }")
	e, ok := b.Stmts.Enum(f.Body[0])
	if !ok {
		t.Fatal("not an enum")
	}
	if b.Lookup(e.Name) != "Color" {
		t.Errorf("enum name = %q", b.Lookup(e.Name))
	}
	if e.Const {
		t.Error("plain enum flagged const")
	}
	if len(e.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(e.Members))
	}
	if e.Members[0].Name != "Red" || e.Members[0].Init != ast.NoExprID {
		t.Errorf("member 0 = %+v", e.Members[0])
	}
	if e.Members[1].Init == ast.NoExprID {
		t.Error("member 1 missing initializer")
	}
	if !e.Members[2].NameIsString || e.Members[2].Name != "light blue" {
		t.Errorf("member 2 = %+v", e.Members[2])
	}
}

func TestParseConstEnum(t *testing.T) {
	b, f := parseClean(t, "const enum Flag { On }")
	e, _ := b.Stmts.Enum(f.Body[0])
	if !e.Const {
		t.Error("const enum not flagged")
	}
}

func TestParseNamespaceForms(t *testing.T) {
	b, f := parseClean(t, "namespace a.b { export const v = 1; }")
	ns, ok := b.Stmts.Namespace(f.Body[0])
	if !ok {
		t.Fatal("not a namespace")
	}
	if !ns.Dotted {
		t.Error("dotted namespace not flagged")
	}
	if ns.ModuleKw {
		t.Error("namespace flagged as module keyword")
	}
	if len(ns.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(ns.Body))
	}
	ex, ok := b.Stmts.Export(ns.Body[0])
	if !ok {
		t.Fatalf("exported member kind = %v, want export", b.Stmts.Get(ns.Body[0]).Kind)
	}
	if ex.Decl == ast.NoStmtID || !b.Stmts.Get(ex.Decl).Exported() {
		t.Error("exported member declaration not flagged")
	}

	b2, f2 := parseClean(t, "module legacy { }")
	ns2, _ := b2.Stmts.Namespace(f2.Body[0])
	if !ns2.ModuleKw {
		t.Error("module spelling not flagged")
	}
}

func TestParseImportTypeOnly(t *testing.T) {
	b, f := parseClean(t, "import type { A } from \"m\";")
	im, _ := b.Stmts.Import(f.Body[0])
	if !im.TypeOnly {
		t.Error("import type not flagged TypeOnly")
	}

	src := "import { type A, b } from \"m\";"
	b, f = parseClean(t, src)
	im, _ = b.Stmts.Import(f.Body[0])
	if im.TypeOnly {
		t.Error("mixed import flagged whole-statement TypeOnly")
	}
	if len(im.TypeSpecs) != 1 {
		t.Fatalf("got %d type specs, want 1", len(im.TypeSpecs))
	}
	// The specifier span swallows the trailing comma so erasure leaves no gap.
	got := src[im.TypeSpecs[0].Start:im.TypeSpecs[0].End]
	if got != "type A," && got != "type A, " {
		t.Errorf("type spec text = %q", got)
	}
}

func TestParseExportedDeclarations(t *testing.T) {
	b, f := parseClean(t, "export const a = 1;")
	ex, ok := b.Stmts.Export(f.Body[0])
	if !ok {
		t.Fatal("not an export")
	}
	if ex.Decl == ast.NoStmtID {
		t.Fatal("export of declaration lost its decl")
	}
	if b.Stmts.Get(ex.Decl).Kind != ast.StmtVar {
		t.Errorf("exported decl kind = %v", b.Stmts.Get(ex.Decl).Kind)
	}

	b, f = parseClean(t, "export default function main() {}")
	st := b.Stmts.Get(f.Body[0])
	if st.Flags&ast.StmtFlagExportDefault == 0 && st.Kind != ast.StmtExport {
		t.Errorf("export default shape unexpected: kind %v flags %v", st.Kind, st.Flags)
	}
}

func TestParseFunctionSignature(t *testing.T) {
	src := "async function go<T>(a: T, b = 2, ...rest: T[]): Promise<T> { return a; }"
	b, f := parseClean(t, src)
	fd, _ := b.Stmts.Function(f.Body[0])
	fn := b.Fns.Get(fd.Fn)
	if !fn.Async {
		t.Error("async not flagged")
	}
	if fn.TypeParams.Empty() {
		t.Error("type parameter span missing")
	}
	if got := src[fn.TypeParams.Start:fn.TypeParams.End]; got != "<T>" {
		t.Errorf("TypeParams text = %q", got)
	}
	if got := src[fn.ReturnType.Start:fn.ReturnType.End]; got != ": Promise<T>" {
		t.Errorf("ReturnType text = %q", got)
	}
	if len(fn.Params) != 3 {
		t.Fatalf("got %d params, want 3", len(fn.Params))
	}
	if b.Params.Get(fn.Params[0]).TypeAnn.Empty() {
		t.Error("first parameter annotation missing")
	}
	if b.Params.Get(fn.Params[1]).Init == ast.NoExprID {
		t.Error("default value missing")
	}
	if b.Params.Get(fn.Params[2]).Dots.Empty() {
		t.Error("rest parameter dots missing")
	}
	if fn.Body == ast.NoStmtID {
		t.Error("body missing")
	}
}

func TestParseOverloadSignature(t *testing.T) {
	b, f := parseClean(t, "function f(x: number): void;\nfunction f(x: any) {}")
	if len(f.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(f.Body))
	}
	fd, _ := b.Stmts.Function(f.Body[0])
	if !b.Fns.Get(fd.Fn).IsOverloadSig() {
		t.Error("bodyless declaration not an overload signature")
	}
	fd, _ = b.Stmts.Function(f.Body[1])
	if b.Fns.Get(fd.Fn).IsOverloadSig() {
		t.Error("implementation flagged as overload signature")
	}
}

func TestParseParamProperties(t *testing.T) {
	b, f := parseClean(t, "class Box { constructor(private readonly v: number, plain: string) {} }")
	cd, _ := b.Stmts.Class(f.Body[0])
	cls := b.Classes.Get(cd.Class)
	if len(cls.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(cls.Members))
	}
	ctor := b.Classes.Members.Get(uint32(cls.Members[0]))
	fn := b.Fns.Get(ctor.Fn)
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if !b.Params.Get(fn.Params[0]).IsProperty() {
		t.Error("modified parameter not a property")
	}
	if b.Params.Get(fn.Params[1]).IsProperty() {
		t.Error("plain parameter misread as property")
	}
}

func TestParseClassHeritage(t *testing.T) {
	src := "abstract class C<T> extends Base<T> implements A, B {}"
	b, f := parseClean(t, src)
	cd, _ := b.Stmts.Class(f.Body[0])
	cls := b.Classes.Get(cd.Class)
	if cls.AbstractSpan.Empty() {
		t.Error("abstract span missing")
	}
	if cls.Extends == ast.NoExprID {
		t.Error("extends expression missing")
	}
	if got := src[cls.ExtendsTypeArgs.Start:cls.ExtendsTypeArgs.End]; got != "<T>" {
		t.Errorf("ExtendsTypeArgs text = %q", got)
	}
	if got := src[cls.Implements.Start:cls.Implements.End]; got != "implements A, B" {
		t.Errorf("Implements text = %q", got)
	}
}

func TestParseTypeExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want ast.ExprKind
	}{
		{"x as number", ast.ExprAs},
		{"x satisfies number", ast.ExprSatisfies},
		{"x!", ast.ExprNonNull},
		{"(x)", ast.ExprParen},
		{"tag`t`", ast.ExprTagged},
	}
	for _, tt := range tests {
		b, f := parseClean(t, tt.src)
		es, ok := b.Stmts.ExprStmt(f.Body[0])
		if !ok {
			t.Errorf("%q: not an expression statement", tt.src)
			continue
		}
		if got := b.Exprs.Get(es.Expr).Kind; got != tt.want {
			t.Errorf("%q: kind = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestParseASI(t *testing.T) {
	_, f := parseClean(t, "a\nb\nc()")
	if len(f.Body) != 3 {
		t.Errorf("got %d statements, want 3", len(f.Body))
	}
}

func TestParseAwaitOutsideAsync(t *testing.T) {
	_, _, bag := parseSrc(t, "function f() { await g(); }")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynAwaitOutsideAsync {
			found = true
		}
	}
	if !found {
		t.Errorf("expected SynAwaitOutsideAsync, got %+v", bag.Items())
	}
}

func TestParseAwaitInsideAsyncOK(t *testing.T) {
	_, _, bag := parseSrc(t, "async function f() { await g(); }")
	if bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestParseStopsOnError(t *testing.T) {
	b, fid, bag := parseSrc(t, "let ok = 1;\nconst = 2;\nlet after = 3;")
	if !bag.HasErrors() {
		t.Fatal("malformed input produced no diagnostics")
	}
	// Parsing is fail-fast: statements before the error survive, nothing
	// after it is guessed at.
	f := b.Files.Get(fid)
	if len(f.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(f.Body))
	}
	v, ok := b.Stmts.Var(f.Body[0])
	if !ok || b.Lookup(v.Decls[0].Name) != "ok" {
		t.Error("valid leading statement was lost")
	}
}

func TestParseAmbientDeclare(t *testing.T) {
	b, f := parseClean(t, "declare const env: string;")
	st := b.Stmts.Get(f.Body[0])
	if !st.Ambient() {
		t.Error("declare statement not flagged ambient")
	}
}
