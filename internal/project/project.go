// Package project locates and parses the tstrip.toml manifest that
// configures directory runs.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "tstrip.toml"

// Manifest is the parsed tstrip.toml.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Build BuildConfig `toml:"build"`
}

// BuildConfig is the [build] section.
type BuildConfig struct {
	// Mode is "strip" or "transform"; strip when empty.
	Mode string `toml:"mode"`
	// Src is the input directory, "." when empty.
	Src string `toml:"src"`
	// Out is the output directory; empty writes next to the inputs with
	// the .js extension.
	Out string `toml:"out"`
	// Exclude lists glob patterns matched against slash-separated paths
	// relative to Src.
	Exclude []string `toml:"exclude"`
	// Jobs caps parallel workers; 0 means one per CPU.
	Jobs int `toml:"jobs"`
	// Cache enables the on-disk result cache.
	Cache bool `toml:"cache"`
}

// FindManifest walks up from startDir to locate tstrip.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing tstrip.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load parses a manifest file and validates its fields.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", ManifestName, undecoded[0].String())
	}
	switch m.Build.Mode {
	case "", "strip", "transform":
	default:
		return nil, fmt.Errorf("%s: build.mode must be \"strip\" or \"transform\", got %q",
			ManifestName, m.Build.Mode)
	}
	if m.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: build.jobs must not be negative", ManifestName)
	}
	return &m, nil
}

// Excluded reports whether rel (slash-separated, relative to Src) matches
// any exclude pattern. Bad patterns never match.
func (b *BuildConfig) Excluded(rel string) bool {
	for _, pat := range b.Exclude {
		if ok, err := filepath.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// InitManifest writes a starter tstrip.toml into dir. It refuses to
// overwrite an existing manifest.
func InitManifest(dir, name string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	content := fmt.Sprintf(`[package]
name = %q

[build]
mode = "strip"
src = "."
out = "dist"
`, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
