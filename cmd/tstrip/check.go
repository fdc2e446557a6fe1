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

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.ts|directory>",
	Short: "Verify sources are erasable without writing output",
	Long: `Check parses every TypeScript source and runs the requested mode
without producing any output files. The exit status reports whether all
files went through cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("mode", "", "erasure mode (strip|transform; default from tstrip.toml or strip)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("format", "pretty", "failure output format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	modeFlag, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}

	var exclude func(string) bool
	if manifestPath, ok, err := project.FindManifest(path); err != nil {
		return err
	} else if ok {
		m, err := project.Load(manifestPath)
		if err != nil {
			return err
		}
		if modeFlag == "" {
			modeFlag = m.Build.Mode
		}
		if len(m.Build.Exclude) > 0 {
			cfg := m.Build
			exclude = func(p string) bool {
				rel, err := filepath.Rel(path, p)
				if err != nil {
					return false
				}
				return cfg.Excluded(filepath.ToSlash(rel))
			}
		}
	}

	mode := classify.ModeStrip
	switch modeFlag {
	case "", "strip":
	case "transform":
		mode = classify.ModeTransform
	default:
		return fmt.Errorf("invalid --mode value %q (expected strip|transform)", modeFlag)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		var res *driver.Result
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
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	sum, err := pipeline.Run(cmd.Context(), &pipeline.Request{
		Dir:     path,
		Mode:    mode,
		Jobs:    jobs,
		Exclude: exclude,
		DryRun:  true,
	})
	if err != nil {
		return err
	}
	if err := printFailures(cmd, sum.Results); err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "%d files checked, %d failed\n", len(sum.Results), sum.Failed)
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", sum.Failed, len(sum.Results))
	}
	return nil
}
