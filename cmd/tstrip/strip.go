package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tstrip/internal/classify"
	"tstrip/internal/driver"
	"tstrip/internal/pipeline"
	"tstrip/internal/project"
)

var stripCmd = &cobra.Command{
	Use:   "strip [flags] <file.ts|directory>",
	Short: "Erase type syntax, preserving byte positions",
	Long: `Strip removes TypeScript type annotations by blanking them with spaces,
so every remaining byte keeps its original line and column. Enums,
namespaces, and parameter properties are rejected in this mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, args[0], classify.ModeStrip)
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform [flags] <file.ts|directory>",
	Short: "Erase type syntax and down-level enums and namespaces",
	Long: `Transform erases type annotations and additionally rewrites enums,
namespaces, and parameter properties into plain JavaScript.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, args[0], classify.ModeTransform)
	},
}

func init() {
	for _, c := range []*cobra.Command{stripCmd, transformCmd} {
		c.Flags().StringP("out", "o", "", "output file or directory (default: stdout for files, alongside sources for directories)")
		c.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
		c.Flags().Bool("cache", false, "reuse cached results keyed by content hash")
		c.Flags().Bool("dry-run", false, "process files without writing outputs")
		c.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
		c.Flags().String("format", "pretty", "failure output format (pretty|json)")
	}
}

func runMode(cmd *cobra.Command, path string, mode classify.Mode) error {
	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return runDirectory(cmd, path, mode)
	}
	return runSingleFile(cmd, path, mode)
}

func runSingleFile(cmd *cobra.Command, path string, mode classify.Mode) error {
	var res *driver.Result
	var err error
	if mode == classify.ModeTransform {
		res, err = driver.Transform(path)
	} else {
		res, err = driver.Strip(path)
	}
	if err != nil {
		return err
	}
	if res.Failure != nil {
		return reportFailure(cmd, res.Failure)
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		return nil
	}
	if outPath == "" {
		_, err = os.Stdout.Write(res.Code)
		return err
	}
	return os.WriteFile(outPath, res.Code, 0o600)
}

func runDirectory(cmd *cobra.Command, dir string, mode classify.Mode) error {
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	// manifest values fill in whatever the flags left unset
	var exclude func(string) bool
	if manifestPath, ok, err := project.FindManifest(dir); err != nil {
		return err
	} else if ok {
		m, err := project.Load(manifestPath)
		if err != nil {
			return err
		}
		root := filepath.Dir(manifestPath)
		if outDir == "" && m.Build.Out != "" {
			outDir = filepath.Join(root, m.Build.Out)
		}
		if jobs == 0 {
			jobs = m.Build.Jobs
		}
		if !cmd.Flags().Changed("cache") {
			useCache = m.Build.Cache
		}
		if len(m.Build.Exclude) > 0 {
			cfg := m.Build
			exclude = func(path string) bool {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return false
				}
				return cfg.Excluded(filepath.ToSlash(rel))
			}
		}
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("tstrip")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	req := &pipeline.Request{
		Dir:     dir,
		OutDir:  outDir,
		Mode:    mode,
		Jobs:    jobs,
		Cache:   cache,
		Exclude: exclude,
		DryRun:  dryRun,
	}

	uiChoice, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var sum pipeline.Summary
	if shouldUseTUI(uiChoice) && !quiet {
		files, err := driver.ListFiles(dir, exclude)
		if err != nil {
			return err
		}
		title := "stripping " + dir
		if mode == classify.ModeTransform {
			title = "transforming " + dir
		}
		sum, err = runPipelineWithUI(cmd.Context(), title, pipeline.DisplayList(files, dir), req)
		if err != nil {
			return err
		}
	} else {
		sum, err = pipeline.Run(cmd.Context(), req)
		if err != nil {
			return err
		}
	}

	if err := printFailures(cmd, sum.Results); err != nil {
		return err
	}
	if showTimings {
		printStageTimings(os.Stderr, sum.Timings)
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "%d files, %d written, %d failed\n",
			len(sum.Results), sum.Written, sum.Failed)
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", sum.Failed, len(sum.Results))
	}
	return nil
}
