package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tstrip/internal/driver"
	"tstrip/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tstrip",
	Short: "TypeScript type stripper and down-leveler",
	Long: `tstrip erases TypeScript type syntax from source files, either as
position-preserving strip-only output or as fully down-leveled JavaScript.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", driver.DefaultMaxDiagnostics, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given path")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to the given path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
