package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.ts", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.ts")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Re-adding the same path makes a new FileID; the old one stays readable.
	id2 := fs.Add("test.ts", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("test.ts")
	if !exists {
		t.Error("Expected file to exist after second Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content to be 'hello world', got '%s'", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("Expected second file content to be 'hello universe', got '%s'", got)
	}
}

func TestAddVirtualKeepsRelativePath(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("src\\app.ts", []byte("const x = 1;"))
	f := fs.Get(id)
	if f.Path != "src\\app.ts" && f.Path != "src/app.ts" {
		t.Errorf("unexpected path %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	src := "const a = 1;\nlet b = 2;\n"
	id := fs.AddVirtual("a.ts", []byte(src))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 0}},
		{6, LineCol{Line: 1, Col: 6}},
		{12, LineCol{Line: 1, Col: 12}}, // the newline byte itself
		{13, LineCol{Line: 2, Col: 0}},
		{17, LineCol{Line: 2, Col: 4}},
	}
	for _, tt := range tests {
		got := fs.ResolveOffset(id, tt.off)
		if got != tt.want {
			t.Errorf("ResolveOffset(%d) = %d:%d, want %d:%d",
				tt.off, got.Line, got.Col, tt.want.Line, tt.want.Col)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 13, End: 16})
	if start != (LineCol{Line: 2, Col: 0}) || end != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("Resolve span = %v..%v, want 2:0..2:3", start, end)
	}
}

func TestSnippetClampsOutOfRange(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("abc"))
	if got := fs.Snippet(Span{File: id, Start: 1, End: 3}); got != "bc" {
		t.Errorf("Snippet = %q, want %q", got, "bc")
	}
	if got := fs.Snippet(Span{File: id, Start: 2, End: 99}); got != "c" {
		t.Errorf("Snippet past end = %q, want %q", got, "c")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ts", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLineCount(t *testing.T) {
	fs := NewFileSet()
	tests := []struct {
		src  string
		want uint32
	}{
		{"", 1},
		{"one line", 1},
		{"one line\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"a\n\nb\n", 3},
	}
	for _, tt := range tests {
		id := fs.AddVirtual("n.ts", []byte(tt.src))
		if got := fs.Get(id).LineCount(); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.ts")
	raw := []byte{0xEF, 0xBB, 0xBF}
	raw = append(raw, []byte("const a = 1;\r\nconst b = 2;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "const a = 1;\nconst b = 2;\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag")
	}
}
