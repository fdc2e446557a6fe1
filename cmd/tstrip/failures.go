package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tstrip/internal/diag"
	"tstrip/internal/diagfmt"
	"tstrip/internal/driver"
)

// reportFailure prints one boundary failure and returns it as the command
// error so the process exits non-zero.
func reportFailure(cmd *cobra.Command, f *diag.Failure) error {
	format := "pretty"
	if cmd.Flags().Lookup("format") != nil {
		format, _ = cmd.Flags().GetString("format")
	}
	if format == "json" {
		if err := diagfmt.WriteFailureJSON(os.Stderr, f); err != nil {
			return err
		}
	} else {
		printFailure(os.Stderr, f, useColor(cmd, os.Stderr))
	}
	return fmt.Errorf("%s: %s", f.Filename, f.Message)
}

// printFailures prints every failed result in a batch; successful results
// are skipped.
func printFailures(cmd *cobra.Command, results []*driver.Result) error {
	format := "pretty"
	if cmd.Flags().Lookup("format") != nil {
		format, _ = cmd.Flags().GetString("format")
	}
	colored := useColor(cmd, os.Stderr)
	for _, res := range results {
		if res.Failure == nil {
			continue
		}
		if format == "json" {
			if err := diagfmt.WriteFailureJSON(os.Stderr, res.Failure); err != nil {
				return err
			}
			continue
		}
		printFailure(os.Stderr, res.Failure, colored)
	}
	return nil
}

func printFailure(out *os.File, f *diag.Failure, colored bool) {
	sev := "error"
	if colored {
		sev = color.New(color.FgRed, color.Bold).Sprint(sev)
	}
	fmt.Fprintf(out, "%s:%d:%d: %s: %s\n", f.Filename, f.Line, f.Column, sev, f.Message)
	if f.Snippet != "" {
		fmt.Fprintf(out, "    %s\n", f.Snippet)
	}
}
