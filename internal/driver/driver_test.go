package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tstrip/internal/classify"
	"tstrip/internal/diag"
	"tstrip/internal/driver"
)

func TestStripSource(t *testing.T) {
	res := driver.StripSource("test.ts", []byte("const x: number = 1;"), classify.ModeStrip)
	if res.Failure != nil {
		t.Fatalf("unexpected failure: %v", res.Failure)
	}
	if string(res.Code) != "const x         = 1;" {
		t.Errorf("got %q", res.Code)
	}
}

func TestStripSourceRejection(t *testing.T) {
	res := driver.StripSource("test.ts", []byte("enum E {}"), classify.ModeStrip)
	if res.Failure == nil {
		t.Fatal("expected a failure")
	}
	if res.Failure.Kind != diag.UnsupportedSyntax {
		t.Errorf("kind = %v", res.Failure.Kind)
	}
	if res.Failure.Filename != "test.ts" {
		t.Errorf("filename = %q", res.Failure.Filename)
	}
}

func TestTransformSource(t *testing.T) {
	res := driver.StripSource("test.ts", []byte("enum E { A }"), classify.ModeTransform)
	if res.Failure != nil {
		t.Fatalf("unexpected failure: %v", res.Failure)
	}
	want := "var E;\n(function (E) {\n    E[E[\"A\"] = 0] = \"A\";\n})(E || (E = {}));"
	if string(res.Code) != want {
		t.Errorf("got:\n%s\nwant:\n%s", res.Code, want)
	}
}

func TestParseSyntaxError(t *testing.T) {
	res := driver.StripSource("test.ts", []byte("const = ;"), classify.ModeStrip)
	if res.Failure == nil {
		t.Fatal("expected a parse failure")
	}
	if res.Failure.Kind != diag.InvalidSyntax {
		t.Errorf("kind = %v, want InvalidSyntax", res.Failure.Kind)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStripDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "const a: number = 1;")
	writeFile(t, dir, "sub/b.ts", "let b = 2 as const;")
	writeFile(t, dir, "bad.ts", "enum E {}")
	writeFile(t, dir, "types.d.ts", "declare const skipme: number;")
	writeFile(t, dir, "node_modules/dep.ts", "const ignored = 0;")

	results, err := driver.StripDir(context.Background(), dir, driver.DirOptions{
		Mode: classify.ModeStrip,
		Jobs: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// path order is deterministic
	if filepath.Base(results[0].Path) != "a.ts" {
		t.Errorf("results out of order: %s first", results[0].Path)
	}

	var failures int
	for _, res := range results {
		if res.Failure != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("%d failures, want 1 (bad.ts)", failures)
	}
}

func TestStripDirEmpty(t *testing.T) {
	results, err := driver.StripDir(context.Background(), t.TempDir(), driver.DirOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("tstrip-test")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "const a: string = \"x\";")

	first, err := driver.StripDir(context.Background(), dir, driver.DirOptions{
		Mode:  classify.ModeStrip,
		Cache: cache,
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := driver.StripDir(context.Background(), dir, driver.DirOptions{
		Mode:  classify.ModeStrip,
		Cache: cache,
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(first[0].Code) != string(second[0].Code) {
		t.Errorf("cached result differs:\n%q\n%q", first[0].Code, second[0].Code)
	}
}
