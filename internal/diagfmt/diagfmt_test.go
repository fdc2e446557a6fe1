package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/parser"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

func addFile(t *testing.T, src string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.ts", []byte(src))
	return fs, id
}

func TestPrettyPlain(t *testing.T) {
	fs, id := addFile(t, "const x: number = 1;\n")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 9, End: 15},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	want := "app.ts:1:9: ERROR SYN2001: unexpected token\n" +
		"    1 | const x: number = 1;\n" +
		"      |          ^~~~~~\n"
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs, id := addFile(t, "let a = 1;\nlet b = 2;\nlet c = ;\n")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectExpression,
		Message:  "expected expression",
		Primary:  source.Span{File: id, Start: 30, End: 31},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 2})

	out := buf.String()
	for _, line := range []string{
		"    1 | let a = 1;",
		"    2 | let b = 2;",
		"    3 | let c = ;",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing context line %q in:\n%s", line, out)
		}
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, id := addFile(t, "let a = 1;\nlet a = 2;\n")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "duplicate binding",
		Primary:  source.Span{File: id, Start: 15, End: 16},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 4, End: 5}, Msg: "first declared here"},
		},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: app.ts:1:4: first declared here") {
		t.Errorf("note missing from output:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyBasenamePath(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/deep/app.ts", []byte("enum E {}\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.StripEnum,
		Message:  "TypeScript enum is not supported in strip-only mode",
		Primary:  source.Span{File: id, Start: 0, End: 9},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(buf.String(), "app.ts:1:0: ERROR STR3001:") {
		t.Errorf("unexpected headline: %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	fs, id := addFile(t, "const x: number = 1;\n")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 9, End: 15},
	})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, len = %d, want 1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2001" {
		t.Errorf("severity/code = %s/%s", d.Severity, d.Code)
	}
	if d.Location.File != "app.ts" || d.Location.StartByte != 9 || d.Location.EndByte != 15 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 9 {
		t.Errorf("position = %d:%d, want 1:9", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestWriteJSONMax(t *testing.T) {
	fs, id := addFile(t, "x;\ny;\nz;\n")
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "boom",
			Primary:  source.Span{File: id, Start: uint32(i * 3), End: uint32(i*3 + 1)},
		})
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Diagnostics) != 2 {
		t.Errorf("len = %d, want 2", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Errorf("count = %d, want 3", out.Count)
	}
}

func TestWriteFailureJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteFailureJSON(&buf, &diag.Failure{
		Kind:     diag.UnsupportedSyntax,
		Filename: "app.ts",
		Line:     1,
		Column:   0,
		Message:  "TypeScript enum is not supported in strip-only mode",
		Snippet:  "enum E {}",
	})
	if err != nil {
		t.Fatalf("WriteFailureJSON: %v", err)
	}

	var out FailureJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Code != "UnsupportedSyntax" || out.Line != 1 || out.Snippet != "enum E {}" {
		t.Errorf("failure = %+v", out)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, id := addFile(t, "const x = 1;\n")
	toks := parser.Tokenize(fs.Get(id), diag.NopReporter{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	for _, part := range []string{"KwConst", "Ident", "NumberLit", "Semicolon", "EOF", "at 1:0-1:5"} {
		if !strings.Contains(out, part) {
			t.Errorf("missing %q in token dump:\n%s", part, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs, id := addFile(t, "let y = 2;\n")
	toks := parser.Tokenize(fs.Get(id), diag.NopReporter{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) == 0 || out[len(out)-1].Kind != token.EOF.String() {
		t.Fatalf("token stream does not end with EOF: %+v", out)
	}
	if out[0].Kind != "KwLet" {
		t.Errorf("first token = %s, want KwLet", out[0].Kind)
	}
}

func TestFormatASTPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.ts", []byte("const x = 1;\nif (x) { f(x); }\n"))
	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	toks := parser.Tokenize(fs.Get(id), reporter)
	b := ast.NewBuilder(ast.Hints{})
	p := parser.New(fs.Get(id), toks, b, reporter)
	fileID := p.ParseFile()
	if bag.HasErrors() {
		d, _ := bag.First()
		t.Fatalf("parse failed: %s", d.Message)
	}

	var buf bytes.Buffer
	FormatASTPretty(&buf, b, fileID, fs)
	out := buf.String()

	if !strings.HasPrefix(out, "File app.ts (2 statements)\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, part := range []string{
		"  Var @1:0",
		"    Lit @1:10",
		"  If @2:0",
		"    Ident @2:4",
		"    Block @2:7",
		"      Expr @2:9",
		"        Call @2:9",
	} {
		if !strings.Contains(out, part) {
			t.Errorf("missing %q in AST dump:\n%s", part, out)
		}
	}
}
