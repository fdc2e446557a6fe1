package strip_test

import (
	"strings"
	"testing"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/parser"
	"tstrip/internal/source"
	"tstrip/internal/strip"
	"tstrip/internal/testkit"
)

// parseTS parses a virtual file and fails the test on syntax errors.
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
	if err := testkit.CheckSpanInvariants(b, astFile, f); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	return fs, b, astFile
}

func stripSource(t *testing.T, src string) (string, *diag.Failure) {
	t.Helper()
	fs, b, fileID := parseTS(t, src)
	res, d := strip.File(fs, b, fileID)
	if d != nil {
		return "", diag.FailureFrom(fs, *d)
	}
	return string(res.Code), nil
}

func mustStrip(t *testing.T, src string) string {
	t.Helper()
	out, fail := stripSource(t, src)
	if fail != nil {
		t.Fatalf("unexpected failure: %v", fail)
	}
	return out
}

func TestStripErasesAnnotations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "var annotation",
			src:  "const foo: number = 1;",
			want: "const foo         = 1;",
		},
		{
			name: "two declarations",
			src:  "const foo: number = 1;\nconst bar: string = \"bar\";",
			want: "const foo         = 1;\nconst bar         = \"bar\";",
		},
		{
			name: "return type",
			src:  "function f(x: number): string { return \"\"; }",
			want: "function f(x        )         { return \"\"; }",
		},
		{
			name: "type params",
			src:  "function id<T>(x: T): T { return x; }",
			want: "function id   (x   )    { return x; }",
		},
		{
			name: "as expression",
			src:  "const x = y as number;",
			want: "const x = y          ;",
		},
		{
			name: "satisfies expression",
			src:  "const x = y satisfies number;",
			want: "const x = y                 ;",
		},
		{
			name: "non-null",
			src:  "const x = y!;",
			want: "const x = y ;",
		},
		{
			name: "angle assertion",
			src:  "const x = <number>y;",
			want: "const x =         y;",
		},
		{
			name: "optional parameter",
			src:  "function f(x?: number) {}",
			want: "function f(x         ) {}",
		},
		{
			name: "definite assignment",
			src:  "let x!: number;",
			want: "let x         ;",
		},
		{
			name: "call type args",
			src:  "f<number>(1);",
			want: "f        (1);",
		},
		{
			name: "interface",
			src:  "interface Foo { x: number; }\nlet y = 1;",
			want: "                            \nlet y = 1;",
		},
		{
			name: "type alias",
			src:  "type Foo = number | string;",
			want: "                           ",
		},
		{
			name: "import type",
			src:  "import type { Foo } from \"./foo\";",
			want: "                                 ",
		},
		{
			name: "inline type specifier",
			src:  "import { type Foo, bar } from \"./foo\";",
			want: "import {           bar } from \"./foo\";",
		},
		{
			name: "ambient declaration",
			src:  "declare const x: number;\nlet y = 1;",
			want: "                        \nlet y = 1;",
		},
		{
			name: "implements clause",
			src:  "class A implements B {}",
			want: "class A              {}",
		},
		{
			name: "this parameter",
			src:  "function f(this: Window, x) {}",
			want: "function f(              x) {}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustStrip(t, tt.src)
			if got != tt.want {
				t.Errorf("strip mismatch\nsrc:  %q\ngot:  %q\nwant: %q", tt.src, got, tt.want)
			}
		})
	}
}

// Every statement in a type-alias or interface body must be blanked
// without touching line structure: output length equals input length and
// newlines stay where they were.
func TestStripPreservesPositions(t *testing.T) {
	srcs := []string{
		"const foo: number = 1;",
		"interface Foo {\n  x: number;\n  y(): void;\n}\nconst z = 2;",
		"function f<T extends object>(a: T, b?: string): T {\n  return a;\n}",
		"type Big = {\n  a: 1;\n} | {\n  b: 2;\n};\nlet live = true;",
		"class C implements I {\n  private x: number = 1;\n  m(this: C): void {}\n}",
	}
	for _, src := range srcs {
		out := mustStrip(t, src)
		if err := testkit.CheckErasureInvariants([]byte(src), []byte(out)); err != nil {
			t.Errorf("%v for %q", err, src)
		}
	}
}

// Stripping already-stripped output must be a no-op.
func TestStripIdempotent(t *testing.T) {
	src := "const foo: number = 1;\ninterface I { x: string; }\nconst b = a as string;"
	once := mustStrip(t, src)
	twice := mustStrip(t, once)
	if once != twice {
		t.Errorf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestStripRejections(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    uint32
		column  uint32
		message string
		snippet string
	}{
		{
			name:    "enum",
			src:     "enum Foo {}",
			line:    1,
			column:  0,
			message: "TypeScript enum is not supported in strip-only mode",
			snippet: "enum Foo {}",
		},
		{
			name:    "const enum",
			src:     "const enum Foo { A }",
			line:    1,
			column:  0,
			message: "TypeScript enum is not supported in strip-only mode",
			snippet: "const enum Foo { A }",
		},
		{
			name:    "enum after code",
			src:     "let x = 1;\nenum Bar { A, B }",
			line:    2,
			column:  0,
			message: "TypeScript enum is not supported in strip-only mode",
			snippet: "enum Bar { A, B }",
		},
		{
			name:    "value namespace",
			src:     "namespace N { export const x = 1; }",
			line:    1,
			column:  0,
			message: "TypeScript namespace declaration is not supported in strip-only mode",
			snippet: "namespace N { export const x = 1; }",
		},
		{
			name:    "module keyword",
			src:     "module foo {}",
			line:    1,
			column:  0,
			message: "`module` keyword is not supported. Use `namespace` instead.",
			snippet: "module foo",
		},
		{
			name:    "declared module keyword",
			src:     "declare module foo {}",
			line:    1,
			column:  8,
			message: "`module` keyword is not supported. Use `namespace` instead.",
			snippet: "module foo",
		},
		{
			name:    "parameter property",
			src:     "class C { constructor(private x: number) {} }",
			line:    1,
			column:  22,
			message: "TypeScript parameter property is not supported in strip-only mode",
			snippet: "private x: number",
		},
		{
			name:    "import equals",
			src:     "import foo = require(\"./foo\");",
			line:    1,
			column:  0,
			message: "TypeScript import equals declaration is not supported in strip-only mode",
			snippet: "import foo = require(\"./foo\");",
		},
		{
			name:    "export assignment",
			src:     "export = foo;",
			line:    1,
			column:  0,
			message: "TypeScript export assignment is not supported in strip-only mode",
			snippet: "export = foo;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fail := stripSource(t, tt.src)
			if fail == nil {
				t.Fatalf("expected rejection for %q", tt.src)
			}
			if fail.Kind != diag.UnsupportedSyntax {
				t.Errorf("kind = %v, want UnsupportedSyntax", fail.Kind)
			}
			if fail.Line != tt.line || fail.Column != tt.column {
				t.Errorf("position = %d:%d, want %d:%d", fail.Line, fail.Column, tt.line, tt.column)
			}
			if fail.Message != tt.message {
				t.Errorf("message = %q, want %q", fail.Message, tt.message)
			}
			if fail.Snippet != tt.snippet {
				t.Errorf("snippet = %q, want %q", fail.Snippet, tt.snippet)
			}
		})
	}
}

// A namespace whose body has no runtime members is pure type syntax and
// must be erased, not rejected.
func TestStripTypeOnlyNamespace(t *testing.T) {
	src := "namespace N {\n  export interface I { x: number; }\n  type T = string;\n}\nlet y = 1;"
	out := mustStrip(t, src)
	if strings.Contains(out, "namespace") {
		t.Errorf("namespace text survived: %q", out)
	}
	if !strings.Contains(out, "let y = 1;") {
		t.Errorf("runtime code lost: %q", out)
	}
	if len(out) != len(src) {
		t.Errorf("length changed: %d -> %d", len(src), len(out))
	}
}

func TestStripClassMembers(t *testing.T) {
	src := strings.Join([]string{
		"class C {",
		"  private a: number = 1;",
		"  readonly b = 2;",
		"  declare c: string;",
		"  d?: number;",
		"  [key: string]: unknown;",
		"  m(x: number): void {}",
		"}",
	}, "\n")
	out := mustStrip(t, src)
	for _, gone := range []string{"private", "readonly", "declare", ": number", ": string", ": void", ": unknown", "?"} {
		if strings.Contains(out, gone) {
			t.Errorf("%q survived strip:\n%s", gone, out)
		}
	}
	for _, kept := range []string{"class C {", "a", "= 1;", "b = 2;", "m(x", ") {}"} {
		if !strings.Contains(out, kept) {
			t.Errorf("%q missing from output:\n%s", kept, out)
		}
	}
}

func TestStripFunctionOverloads(t *testing.T) {
	src := "function f(x: number): number;\nfunction f(x: string): string;\nfunction f(x) { return x; }"
	out := mustStrip(t, src)
	if strings.Contains(out, ": number") || strings.Contains(out, ": string") {
		t.Errorf("annotations survived: %q", out)
	}
	if !strings.Contains(out, "function f(x) { return x; }") {
		t.Errorf("implementation lost: %q", out)
	}
	if count := strings.Count(out, "function"); count != 1 {
		t.Errorf("overload signatures survived, %d function keywords: %q", count, out)
	}
}

// await outside an async function is a parse failure surfaced as
// InvalidSyntax, positioned at the awaited expression.
func TestStripAwaitOutsideAsync(t *testing.T) {
	src := "function f() { return await Promise.resolve(1); }"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(src))
	f := fs.Get(fileID)

	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	toks := parser.Tokenize(f, reporter)
	b := ast.NewBuilder(ast.Hints{})
	parser.New(f, toks, b, reporter).ParseFile()

	d, ok := bag.First()
	if !ok {
		t.Fatal("expected a parse error")
	}
	fail := diag.FailureFrom(fs, d)
	if fail.Kind != diag.InvalidSyntax {
		t.Errorf("kind = %v, want InvalidSyntax", fail.Kind)
	}
	if fail.Line != 1 || fail.Column != 28 {
		t.Errorf("position = %d:%d, want 1:28", fail.Line, fail.Column)
	}
	if fail.Message != "await isn't allowed in non-async function" {
		t.Errorf("message = %q", fail.Message)
	}
	if fail.Snippet != "Promise" {
		t.Errorf("snippet = %q, want \"Promise\"", fail.Snippet)
	}
}

func TestStripExportForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "export type list",
			src:  "export type { Foo };",
			want: "                    ",
		},
		{
			name: "export interface",
			src:  "export interface I { x: 1; }",
			want: "                            ",
		},
		{
			name: "inline type in export list",
			src:  "export { type A, b };",
			want: "export {         b };",
		},
		{
			name: "export const with annotation",
			src:  "export const n: number = 3;",
			want: "export const n         = 3;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustStrip(t, tt.src)
			if got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}
