package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"tstrip/internal/classify"
	"tstrip/internal/pipeline"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type recordingSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *recordingSink) OnEvent(evt pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) byStatus(status pipeline.Status) []pipeline.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []pipeline.Event
	for _, evt := range s.events {
		if evt.Status == status {
			out = append(out, evt)
		}
	}
	return out
}

func TestRunStrip(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ts":     "const x: number = 1;",
		"sub/b.ts": "let s: string = \"hi\";",
		"bad.ts":   "enum E {}",
	})
	outDir := filepath.Join(dir, "dist")

	sum, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:    dir,
		OutDir: outDir,
		Mode:   classify.ModeStrip,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Written != 2 || sum.Failed != 1 {
		t.Fatalf("written = %d, failed = %d, want 2/1", sum.Written, sum.Failed)
	}
	if len(sum.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(sum.Results))
	}

	got, err := os.ReadFile(filepath.Join(outDir, "a.js"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if string(got) != "const x         = 1;" {
		t.Errorf("a.js = %q", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, "sub", "b.js")); err != nil {
		t.Errorf("missing nested output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.js")); !os.IsNotExist(err) {
		t.Errorf("failed file must not produce output")
	}

	if !sum.Timings.Has(pipeline.StageStrip) || !sum.Timings.Has(pipeline.StageWrite) {
		t.Errorf("missing stage timings")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ts": "let n: number = 1;"})

	sum, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:    dir,
		Mode:   classify.ModeStrip,
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Written != 0 {
		t.Errorf("written = %d, want 0", sum.Written)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.js")); !os.IsNotExist(err) {
		t.Errorf("dry run must not write outputs")
	}
}

func TestRunEvents(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ts":     "const x = 1;",
		"sub/b.ts": "const y = 2;",
	})
	sink := &recordingSink{}

	_, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:      dir,
		Mode:     classify.ModeTransform,
		DryRun:   true,
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	queued := sink.byStatus(pipeline.StatusQueued)
	if len(queued) != 2 {
		t.Fatalf("queued events = %d, want 2", len(queued))
	}
	if queued[0].File != "a.ts" || queued[1].File != "sub/b.ts" {
		t.Errorf("queued files = %q, %q", queued[0].File, queued[1].File)
	}

	done := sink.byStatus(pipeline.StatusDone)
	if len(done) != 2 {
		t.Fatalf("done events = %d, want 2", len(done))
	}
	for _, evt := range done {
		if evt.Stage != pipeline.StageTransform {
			t.Errorf("stage = %s, want transform", evt.Stage)
		}
	}
}

func TestRunFailureEvent(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ts": "namespace N { let x = 1; }"})
	sink := &recordingSink{}

	sum, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:      dir,
		Mode:     classify.ModeStrip,
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Failed != 1 {
		t.Fatalf("failed = %d, want 1", sum.Failed)
	}
	errs := sink.byStatus(pipeline.StatusError)
	if len(errs) != 1 || errs[0].Err == nil {
		t.Fatalf("error events = %+v", errs)
	}
}

func TestRunExclude(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.ts":    "const x = 1;",
		"skip.ts": "const y = 2;",
	})

	sum, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:    dir,
		Mode:   classify.ModeStrip,
		DryRun: true,
		Exclude: func(path string) bool {
			return filepath.Base(path) == "skip.ts"
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sum.Results) != 1 {
		t.Errorf("results = %d, want 1", len(sum.Results))
	}
}

func TestRunEmptyDir(t *testing.T) {
	sum, err := pipeline.Run(context.Background(), &pipeline.Request{
		Dir:  t.TempDir(),
		Mode: classify.ModeStrip,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sum.Results) != 0 || sum.Written != 0 {
		t.Errorf("summary = %+v, want empty", sum)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		src, root, outDir string
		want              string
		wantErr           bool
	}{
		{src: filepath.Join("src", "a.ts"), want: filepath.Join("src", "a.js")},
		{src: filepath.Join("src", "a.ts"), root: "src", outDir: "dist", want: filepath.Join("dist", "a.js")},
		{src: filepath.Join("src", "sub", "a.ts"), root: "src", outDir: "dist", want: filepath.Join("dist", "sub", "a.js")},
		{src: filepath.Join("other", "a.ts"), root: "src", outDir: "dist", wantErr: true},
	}
	for _, tt := range tests {
		got, err := pipeline.OutputPath(tt.src, tt.root, tt.outDir)
		if tt.wantErr {
			if err == nil {
				t.Errorf("OutputPath(%q): expected error", tt.src)
			}
			continue
		}
		if err != nil {
			t.Errorf("OutputPath(%q): %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
