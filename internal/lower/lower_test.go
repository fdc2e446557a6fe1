package lower_test

import (
	"strings"
	"testing"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/lower"
	"tstrip/internal/parser"
	"tstrip/internal/printer"
	"tstrip/internal/source"
)

func parseTS(t *testing.T, src string) (*source.FileSet, *ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(src))
	f := fs.Get(fileID)

	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	toks := parser.Tokenize(f, reporter)
	b := ast.NewBuilder(ast.Hints{})
	p := parser.New(f, toks, b, reporter)
	astFile := p.ParseFile()
	if bag.HasErrors() {
		d, _ := bag.First()
		t.Fatalf("parse error: %s", d.Message)
	}
	return fs, b, astFile
}

func transformSource(t *testing.T, src string) (string, *diag.Failure) {
	t.Helper()
	fs, b, fileID := parseTS(t, src)
	res, d := lower.File(fs, b, fileID)
	if d != nil {
		return "", diag.FailureFrom(fs, *d)
	}
	return string(printer.Render([]byte(src), res.Edits)), nil
}

func mustTransform(t *testing.T, src string) string {
	t.Helper()
	out, fail := transformSource(t, src)
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	return out
}

func TestLowerNumericEnum(t *testing.T) {
	src := "enum Direction { Up, Down }"
	want := strings.Join([]string{
		"var Direction;",
		"(function (Direction) {",
		`    Direction[Direction["Up"] = 0] = "Up";`,
		`    Direction[Direction["Down"] = 1] = "Down";`,
		"})(Direction || (Direction = {}));",
	}, "\n")
	got := mustTransform(t, src)
	if got != want {
		t.Errorf("enum lowering mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLowerEnumExplicitValues(t *testing.T) {
	src := "enum E { A = 5, B, C = 2 * n, D = -1, E2 = 0x10, F }"
	got := mustTransform(t, src)
	checks := []string{
		`E[E["A"] = 5] = "A";`,
		`E[E["B"] = 6] = "B";`,   // sequence continues from the last explicit value
		`E[E["C"] = 2 * n] = "C";`, // opaque initializer copied through
		`E[E["D"] = -1] = "D";`,
		`E[E["E2"] = 16] = "E2";`,
		`E[E["F"] = 17] = "F";`,
	}
	for _, c := range checks {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

func TestLowerStringEnum(t *testing.T) {
	src := `enum Color { Red = "red", Blue = "blue" }`
	got := mustTransform(t, src)
	for _, c := range []string{`Color["Red"] = "red";`, `Color["Blue"] = "blue";`} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
	// string members get no reverse mapping
	if strings.Contains(got, `Color[Color[`) {
		t.Errorf("unexpected reverse mapping in string enum:\n%s", got)
	}
}

// The reverse mapping must hold exactly for numeric members: for every
// member m with value v, obj[m] == v and obj[v] == m.
func TestLowerEnumReverseMappingShape(t *testing.T) {
	src := "enum E { A, B = 10, C }"
	got := mustTransform(t, src)
	pairs := map[string]string{"A": "0", "B": "10", "C": "11"}
	for m, v := range pairs {
		fwd := `E[E["` + m + `"] = ` + v + `] = "` + m + `";`
		if !strings.Contains(got, fwd) {
			t.Errorf("missing assignment %q in:\n%s", fwd, got)
		}
	}
}

func TestLowerEnumAutoAfterOpaque(t *testing.T) {
	src := "enum E { A = compute(), B }"
	_, fail := transformSource(t, src)
	if fail == nil {
		t.Fatal("expected failure for auto member after computed value")
	}
	if fail.Kind != diag.UnsupportedSyntax {
		t.Errorf("kind = %v, want UnsupportedSyntax", fail.Kind)
	}
	if !strings.Contains(fail.Message, "must have an initializer") {
		t.Errorf("message = %q", fail.Message)
	}
}

func TestLowerEnumMerging(t *testing.T) {
	src := "enum E { A }\nenum E { B = 1 }"
	got := mustTransform(t, src)
	if n := strings.Count(got, "var E;"); n != 1 {
		t.Errorf("binding declared %d times, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, "(function (E) {"); n != 2 {
		t.Errorf("%d initializer blocks, want 2:\n%s", n, got)
	}
}

func TestLowerStringLiteralMemberNames(t *testing.T) {
	src := `enum E { "has space" = 1 }`
	got := mustTransform(t, src)
	if !strings.Contains(got, `E[E["has space"] = 1] = "has space";`) {
		t.Errorf("string-named member not lowered:\n%s", got)
	}
}

func TestLowerNamespace(t *testing.T) {
	src := "namespace N { export const x = 1; }"
	got := mustTransform(t, src)
	for _, c := range []string{
		"var N;",
		"(function (N) {",
		"const x = 1;",
		"N.x = x;",
		"})(N || (N = {}));",
	} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
	if strings.Contains(got, "namespace") || strings.Contains(got, "export") {
		t.Errorf("TypeScript syntax survived:\n%s", got)
	}
}

func TestLowerNamespaceMerging(t *testing.T) {
	src := "namespace N { export const a = 1; }\nlet mid = 0;\nnamespace N { export const b = 2; }"
	got := mustTransform(t, src)
	if n := strings.Count(got, "var N;"); n != 1 {
		t.Errorf("binding declared %d times, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, "(function (N) {"); n != 2 {
		t.Errorf("%d initializer blocks, want 2:\n%s", n, got)
	}
	for _, c := range []string{"N.a = a;", "N.b = b;", "let mid = 0;"} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

func TestLowerNestedNamespace(t *testing.T) {
	src := "namespace A { export namespace B { export const x = 1; } }"
	got := mustTransform(t, src)
	for _, c := range []string{
		"var A;",
		"(function (A) {",
		"var B;",
		"(function (B) {",
		"B.x = x;",
		"})(B = A.B || (A.B = {}));",
		"})(A || (A = {}));",
	} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

func TestLowerDottedNamespace(t *testing.T) {
	src := "namespace A.B { export const x = 1; }"
	got := mustTransform(t, src)
	for _, c := range []string{
		"var A;",
		"(function (A) {",
		"var B;",
		"(function (B) {",
		"B.x = x;",
		"})(B = A.B || (A.B = {}));",
		"})(A || (A = {}));",
	} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

func TestLowerNamespaceExportedFunctions(t *testing.T) {
	src := "namespace N { export function f() { return 1; } export class C {} }"
	got := mustTransform(t, src)
	for _, c := range []string{"N.f = f;", "N.C = C;", "function f()", "class C {}"} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

func TestLowerNamespaceExportedEnum(t *testing.T) {
	src := "namespace N { export enum E { A } }"
	got := mustTransform(t, src)
	for _, c := range []string{
		"var E;",
		`E[E["A"] = 0] = "A";`,
		"})(E = N.E || (N.E = {}));",
	} {
		if !strings.Contains(got, c) {
			t.Errorf("missing %q in:\n%s", c, got)
		}
	}
}

// A namespace with only type members has no runtime meaning and is
// erased in full transform mode too.
func TestLowerTypeOnlyNamespaceErased(t *testing.T) {
	src := "namespace T { export interface I { x: number; } }\nlet y = 1;"
	got := mustTransform(t, src)
	if strings.Contains(got, "namespace") || strings.Contains(got, "function (") {
		t.Errorf("type-only namespace not erased:\n%s", got)
	}
	if !strings.Contains(got, "let y = 1;") {
		t.Errorf("runtime code lost:\n%s", got)
	}
}

func TestLowerParamProperties(t *testing.T) {
	src := "class C {\n  constructor(private x: number, readonly y = 2) {}\n}"
	got := mustTransform(t, src)
	if strings.Contains(got, "private") || strings.Contains(got, "readonly") || strings.Contains(got, ": number") {
		t.Errorf("TypeScript modifiers survived:\n%s", got)
	}
	xi := strings.Index(got, "this.x = x;")
	yi := strings.Index(got, "this.y = y;")
	if xi < 0 || yi < 0 {
		t.Fatalf("field assignments missing:\n%s", got)
	}
	// declaration order
	if xi > yi {
		t.Errorf("assignments out of order:\n%s", got)
	}
}

// Pre-existing constructor statements run after the synthesized field
// assignments.
func TestLowerParamPropertyBeforeBody(t *testing.T) {
	src := "class C {\n  constructor(public x: number) { use(x); }\n}"
	got := mustTransform(t, src)
	assign := strings.Index(got, "this.x = x;")
	use := strings.Index(got, "use(x);")
	if assign < 0 || use < 0 {
		t.Fatalf("expected both statements:\n%s", got)
	}
	if assign > use {
		t.Errorf("field assignment not before body statements:\n%s", got)
	}
}

func TestLowerErasesTypeSyntax(t *testing.T) {
	src := "const foo: number = bar as string;\ninterface I { x: 1; }\ntype T = 1;"
	got := mustTransform(t, src)
	for _, gone := range []string{": number", "as string", "interface", "type T"} {
		if strings.Contains(got, gone) {
			t.Errorf("%q survived transform:\n%s", gone, got)
		}
	}
	if !strings.Contains(got, "const foo") || !strings.Contains(got, "= bar") {
		t.Errorf("runtime code lost:\n%s", got)
	}
}

func TestLowerModuleKeywordRejected(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		column uint32
	}{
		{name: "plain", src: "module foo {}", column: 0},
		{name: "declared", src: "declare module foo {}", column: 8},
		{name: "inside namespace", src: "namespace N { module foo {} }", column: 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fail := transformSource(t, tt.src)
			if fail == nil {
				t.Fatalf("expected rejection for %q", tt.src)
			}
			if fail.Kind != diag.UnsupportedSyntax {
				t.Errorf("kind = %v, want UnsupportedSyntax", fail.Kind)
			}
			if fail.Message != "`module` keyword is not supported. Use `namespace` instead." {
				t.Errorf("message = %q", fail.Message)
			}
			if fail.Line != 1 || fail.Column != tt.column {
				t.Errorf("position = %d:%d, want 1:%d", fail.Line, fail.Column, tt.column)
			}
			if fail.Snippet != "module foo" {
				t.Errorf("snippet = %q, want \"module foo\"", fail.Snippet)
			}
		})
	}
}

func TestLowerImportExportAssignRejected(t *testing.T) {
	for _, src := range []string{"import foo = require(\"./foo\");", "export = foo;"} {
		_, fail := transformSource(t, src)
		if fail == nil {
			t.Fatalf("expected rejection for %q", src)
		}
		if fail.Kind != diag.UnsupportedSyntax {
			t.Errorf("kind = %v for %q", fail.Kind, src)
		}
	}
}

func TestLowerExportedEnumKeepsExport(t *testing.T) {
	src := "export enum E { A }"
	got := mustTransform(t, src)
	if !strings.HasPrefix(got, "export var E;") {
		t.Errorf("export binding not emitted:\n%s", got)
	}
}

func TestLowerExportedEnumMerging(t *testing.T) {
	src := "export enum E { A }\nexport enum E { B = 1 }"
	got := mustTransform(t, src)
	if strings.Contains(got, "export (function") {
		t.Errorf("export keyword survived on merged block:\n%s", got)
	}
	if n := strings.Count(got, "var E;"); n != 1 {
		t.Errorf("binding declared %d times, want 1:\n%s", n, got)
	}
	if !strings.HasPrefix(got, "export var E;") {
		t.Errorf("first block lost its export:\n%s", got)
	}
	if !strings.Contains(got, `E[E["B"] = 1] = "B";`) {
		t.Errorf("merged member not lowered:\n%s", got)
	}
}

func TestLowerExportedNamespaceMerging(t *testing.T) {
	src := "export namespace N { export const a = 1; }\nexport namespace N { export const b = 2; }"
	got := mustTransform(t, src)
	if strings.Contains(got, "export (function") {
		t.Errorf("export keyword survived on merged block:\n%s", got)
	}
	if n := strings.Count(got, "var N;"); n != 1 {
		t.Errorf("binding declared %d times, want 1:\n%s", n, got)
	}
	if !strings.Contains(got, "N.b = b;") {
		t.Errorf("merged member not wired:\n%s", got)
	}
}

func TestLowerExportedTypeOnlyNamespaceErased(t *testing.T) {
	src := "export namespace N { export type T = 1; }"
	got := mustTransform(t, src)
	if strings.Contains(got, "export") {
		t.Errorf("export keyword left dangling:\n%s", got)
	}
}

func TestLowerEnumPerFunctionScope(t *testing.T) {
	src := "function f() { enum E { A } }\nfunction g() { enum E { B } }"
	got := mustTransform(t, src)
	if n := strings.Count(got, "var E;"); n != 2 {
		t.Errorf("binding declared %d times, want one per function:\n%s", n, got)
	}
}

func TestLowerEnumPerBlockScope(t *testing.T) {
	src := "{ enum E { A } }\n{ enum E { B } }"
	got := mustTransform(t, src)
	if n := strings.Count(got, "var E;"); n != 2 {
		t.Errorf("binding declared %d times, want one per block:\n%s", n, got)
	}
}
