package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"tstrip/internal/project"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	content := `[package]
name = "demo"

[build]
mode = "transform"
src = "src"
out = "dist"
exclude = ["*_generated.ts"]
jobs = 4
cache = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if m.Build.Mode != "transform" || m.Build.Jobs != 4 || !m.Build.Cache {
		t.Errorf("build = %+v", m.Build)
	}
	if !m.Build.Excluded("foo_generated.ts") {
		t.Error("exclude pattern not applied")
	}
	if m.Build.Excluded("foo.ts") {
		t.Error("exclude matched too much")
	}
}

func TestLoadManifestRejectsBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte("[build]\nmode = \"minify\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := project.Load(path); err == nil {
		t.Error("expected an error for unknown mode")
	}
}

func TestLoadManifestRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte("[build]\nspeed = 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := project.Load(path); err == nil {
		t.Error("expected an error for unknown key")
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := project.InitManifest(root, "demo"); err != nil {
		t.Fatal(err)
	}

	found, ok, err := project.FindRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedFound, _ := filepath.EvalSymlinks(found)
	if resolvedFound != resolvedRoot {
		t.Errorf("root = %q, want %q", found, root)
	}
}

func TestInitManifestRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if _, err := project.InitManifest(dir, "demo"); err != nil {
		t.Fatal(err)
	}
	if _, err := project.InitManifest(dir, "demo"); err == nil {
		t.Error("expected an error on second init")
	}
}
