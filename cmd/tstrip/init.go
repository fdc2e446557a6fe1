package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tstrip/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new tstrip project",
	Long: `Initialize a tstrip project by creating a project manifest (tstrip.toml)
and a starter source file (main.ts). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will
be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if filepath.IsAbs(arg) {
			target = arg
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		}
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "tstrip-project"
	}

	manifestPath, err := project.InitManifest(target, name)
	if err != nil {
		return err
	}

	mainPath := filepath.Join(target, "main.ts")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainTS()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.ts: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized tstrip project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", filepath.Base(manifestPath))
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - main.ts\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - main.ts (existing)\n")
	}
	return nil
}

func defaultMainTS() string {
	return `const greeting: string = "Hello, TypeScript!";

function shout(message: string): string {
    return message.toUpperCase();
}

console.log(shout(greeting));
`
}
