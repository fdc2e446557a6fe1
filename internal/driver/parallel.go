package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tstrip/internal/classify"
	"tstrip/internal/diag"
	"tstrip/internal/source"
)

// DirOptions tunes a directory run.
type DirOptions struct {
	Mode classify.Mode
	// Jobs caps worker goroutines; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips files whose content hash already has a
	// cached result for this mode.
	Cache *DiskCache
	// OnStart is called when a worker picks up a file.
	OnStart func(path string)
	// OnFile is called after each file finishes, from worker goroutines.
	OnFile func(res *Result)
	// Exclude, when non-nil, drops matching paths from directory listings.
	Exclude func(path string) bool
}

// ListFiles returns every .ts file under dir in sorted order.
// Declaration files and node_modules are skipped.
func ListFiles(dir string, exclude func(path string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".d.ts") {
			return nil
		}
		if exclude != nil && exclude(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// StripDir runs one mode over every .ts file under dir in parallel.
// Results come back in path order regardless of completion order.
func StripDir(ctx context.Context, dir string, opts DirOptions) ([]*Result, error) {
	files, err := ListFiles(dir, opts.Exclude)
	if err != nil {
		return nil, err
	}
	return StripFiles(ctx, files, opts)
}

// StripFiles runs one mode over an explicit file list in parallel.
func StripFiles(ctx context.Context, files []string, opts DirOptions) ([]*Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// index i is owned by exactly one goroutine, no mutex needed
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if opts.OnStart != nil {
				opts.OnStart(path)
			}
			res, err := stripOne(path, opts.Mode, opts.Cache)
			if err != nil {
				// surface I/O problems as a failure result, not an abort
				res = &Result{
					Path: path,
					Mode: opts.Mode,
					Failure: &diag.Failure{
						Kind:     diag.InvalidSyntax,
						Filename: path,
						Message:  "failed to load file: " + err.Error(),
					},
				}
			}
			results[i] = res
			if opts.OnFile != nil {
				opts.OnFile(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// stripOne processes a single path, consulting the cache when present.
func stripOne(path string, mode classify.Mode, cache *DiskCache) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	key := cacheKey(mode, file.Hash)
	if cache != nil {
		var payload DiskPayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			if res, ok := payload.toResult(path, mode); ok {
				return res, nil
			}
		}
	}

	res := runFile(fs, fileID, mode)
	if cache != nil {
		// a failed Put only costs the next run a recompute
		_ = cache.Put(key, payloadFrom(res))
	}
	return res, nil
}
