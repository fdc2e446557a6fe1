package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tstrip/internal/diagfmt"
	"tstrip/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ts",
	Short: "Parse a TypeScript source file and dump its syntax tree",
	Long:  `Parse analyzes a TypeScript source file and prints its statement and expression tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("parsing failed with %d diagnostics", result.Bag.Len())
	}
	return nil
}
