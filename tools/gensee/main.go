// Command gensee generates the slot enumeration and the wrappers of
// package see from the slot manifest.
//
// Run it through go generate:
//
//	go generate ./internal/see/slots
//
// It writes two files into the see package: zsymbols.go, the table type
// and the standard-library and wrapper tables, and zwrappers.go, one
// wrapper per slot.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

func main() {
	manifest := pflag.StringP("manifest", "m", "slots.yaml", "slot manifest")
	slotsOut := pflag.String("slots", "zslots.go", "output file of the slot enumeration")
	seeDir := pflag.String("see", "", "directory of package see (skip wrappers if empty)")
	pflag.Parse()

	if err := run(*manifest, *slotsOut, *seeDir); err != nil {
		fmt.Fprintf(os.Stderr, "gensee: %v\n", err)
		os.Exit(1)
	}
}

func run(manifest, slotsOut, seeDir string) error {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return err
	}
	m, err := parseManifest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", manifest, err)
	}

	src, err := generateSlots(m, filepath.Base(manifest))
	if err != nil {
		return err
	}
	if err := os.WriteFile(slotsOut, src, 0o644); err != nil {
		return err
	}

	if seeDir == "" {
		return nil
	}
	source := moduleRelative(manifest)
	src, err = generateSymbols(m, source)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(seeDir, "zsymbols.go"), src, 0o644); err != nil {
		return err
	}
	src, err = generateWrappers(m, source)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(seeDir, "zwrappers.go"), src, 0o644)
}

// moduleRelative returns path relative to the root of the enclosing
// module, or path itself if no go.mod is found.
func moduleRelative(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if rel, err := filepath.Rel(dir, abs); err == nil {
				return filepath.ToSlash(rel)
			}
			break
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	return filepath.ToSlash(path)
}
