// Package pipeline orchestrates batch strip and transform runs over a
// source tree: listing, parallel processing, output writing, and progress
// reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tstrip/internal/classify"
	"tstrip/internal/driver"
)

// Request configures one batch run.
type Request struct {
	// Dir is the source root to walk.
	Dir string
	// OutDir is the output root; "" writes each .js next to its source.
	OutDir string
	Mode   classify.Mode
	// Jobs caps worker goroutines; <= 0 means GOMAXPROCS.
	Jobs  int
	Cache *driver.DiskCache
	// Exclude, when non-nil, drops matching source paths.
	Exclude func(path string) bool
	// Progress, when non-nil, receives per-file events.
	Progress ProgressSink
	// DryRun processes files without writing any output.
	DryRun bool
}

// Summary captures the outcome of a batch run.
type Summary struct {
	Results []*driver.Result
	Written int
	Failed  int
	Timings Timings
}

// Run walks req.Dir, processes every TypeScript file in the requested mode,
// and writes JavaScript outputs. Per-file failures are collected in the
// summary; only I/O errors on listing or writing abort the run.
func Run(ctx context.Context, req *Request) (Summary, error) {
	var sum Summary
	if req == nil {
		return sum, fmt.Errorf("missing run request")
	}
	stage := StageStrip
	if req.Mode == classify.ModeTransform {
		stage = StageTransform
	}

	files, err := driver.ListFiles(req.Dir, req.Exclude)
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		return sum, nil
	}

	display := displayPaths(files, req.Dir)
	emitQueued(req.Progress, files, display)

	start := time.Now()
	results, err := driver.StripFiles(ctx, files, driver.DirOptions{
		Mode:  req.Mode,
		Jobs:  req.Jobs,
		Cache: req.Cache,
		OnStart: func(path string) {
			emitFile(req.Progress, display[path], stage, StatusWorking, nil, 0)
		},
		OnFile: func(res *driver.Result) {
			if res.Failure != nil {
				emitFile(req.Progress, display[res.Path], stage, StatusError, res.Failure, 0)
				return
			}
			emitFile(req.Progress, display[res.Path], stage, StatusDone, nil, 0)
		},
	})
	sum.Timings.Set(stage, time.Since(start))
	sum.Results = results
	if err != nil {
		return sum, err
	}

	writeStart := time.Now()
	for _, res := range results {
		if res.Failure != nil {
			sum.Failed++
			continue
		}
		if req.DryRun {
			continue
		}
		out, err := OutputPath(res.Path, req.Dir, req.OutDir)
		if err != nil {
			emitFile(req.Progress, display[res.Path], StageWrite, StatusError, err, 0)
			return sum, err
		}
		if err := writeOutput(out, res.Code); err != nil {
			emitFile(req.Progress, display[res.Path], StageWrite, StatusError, err, 0)
			return sum, err
		}
		sum.Written++
	}
	if !req.DryRun {
		sum.Timings.Set(StageWrite, time.Since(writeStart))
	}
	return sum, nil
}

// OutputPath maps a source path to its .js output location. With an output
// root the source's position relative to root is mirrored under outDir.
func OutputPath(src, root, outDir string) (string, error) {
	out := strings.TrimSuffix(src, ".ts") + ".js"
	if outDir == "" {
		return out, nil
	}
	rel, err := filepath.Rel(root, out)
	if err != nil {
		return "", fmt.Errorf("output path for %q: %w", src, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("source %q escapes root %q", src, root)
	}
	return filepath.Join(outDir, rel), nil
}

func writeOutput(path string, code []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(path, code, 0o600); err != nil {
		return fmt.Errorf("failed to write output %q: %w", path, err)
	}
	return nil
}

// displayPaths maps each source path to a short root-relative slash form
// for progress display.
func displayPaths(files []string, root string) map[string]string {
	out := make(map[string]string, len(files))
	for _, file := range files {
		name := file
		if root != "" {
			if rel, err := filepath.Rel(root, file); err == nil && !strings.HasPrefix(rel, "..") {
				name = rel
			}
		}
		out[file] = filepath.ToSlash(name)
	}
	return out
}

// DisplayList returns the sorted display names for a file list, for seeding
// a progress view before the run starts.
func DisplayList(files []string, root string) []string {
	names := displayPaths(files, root)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func emitQueued(sink ProgressSink, files []string, display map[string]string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: display[file], Status: StatusQueued})
	}
}

func emitFile(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
