// Package runtime links instrumented programs against the libsee runtime.
//
// Instrumented sources import github.com/kolkov/libsee/see. This package
// writes the go.mod that makes that import resolve: it requires the
// runtime module, points it at a local checkout when libsee runs from its
// own source tree, and carries the original module's replace directives
// over with their paths made absolute, since the instrumented copy lives
// in a temporary directory.
package runtime

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"

	"github.com/kolkov/libsee/see"
)

const (
	// RuntimeModulePath is the module that provides the wrappers.
	RuntimeModulePath = "github.com/kolkov/libsee"

	// MinGoVersion is the lowest go directive the runtime builds with.
	MinGoVersion = "1.24"

	// RootEnv overrides the location of a local libsee checkout.
	RootEnv = "LIBSEE_ROOT"

	// fallbackModulePath names loose files that have no go.mod.
	fallbackModulePath = "instrumented"

	// devVersion is required when a replace directive supplies the code.
	devVersion = "v0.0.0"
)

// GetRuntimePackagePath returns the import path instrumented code uses.
//
// Returns: "github.com/kolkov/libsee/see"
func GetRuntimePackagePath() string {
	return RuntimeModulePath + "/see"
}

// Version returns the runtime module version required by published builds.
func Version() string {
	return "v" + see.Version
}

// ValidateRuntimeAvailable checks that instrumented code can be built: the
// go command must be on PATH.
func ValidateRuntimeAvailable() error {
	if _, err := exec.LookPath("go"); err != nil {
		return fmt.Errorf("go command not found in PATH: %w", err)
	}
	return nil
}

// FindProjectRoot returns the root of a local libsee checkout, or an error
// when libsee runs from an installed binary.
//
// It looks at $LIBSEE_ROOT, then walks up from the working directory, then
// tries the directories around the executable. A directory qualifies when
// it holds internal/see/engine and a go.mod declaring RuntimeModulePath.
// Any go.mod is not enough: that would match the user's project.
func FindProjectRoot() (string, error) {
	if root := os.Getenv(RootEnv); root != "" {
		if isProjectRoot(root) {
			return filepath.Abs(root)
		}
		return "", fmt.Errorf("%s=%s is not a libsee checkout", RootEnv, root)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := cwd; ; {
		if isProjectRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	exePath, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exePath)
		candidates := []string{
			exeDir,                             // libsee in project root
			filepath.Dir(exeDir),               // libsee in bin/
			filepath.Dir(filepath.Dir(exeDir)), // deeper nesting
		}
		for _, candidate := range candidates {
			if isProjectRoot(candidate) {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("could not find libsee project root")
}

func isProjectRoot(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, "internal", "see", "engine")); err != nil {
		return false
	}
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return false
	}
	return modfile.ModulePath(data) == RuntimeModulePath
}

// FindOriginalGoMod finds the go.mod of the project being instrumented by
// walking up from startDir. It returns "" when there is none.
func FindOriginalGoMod(startDir string) string {
	dir := startDir
	for {
		modPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(modPath); err == nil {
			return modPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// BuildOptions selects compile-time variants of the runtime.
type BuildOptions struct {
	// Atomic makes counter updates atomic (libsee_atomic).
	Atomic bool

	// ManyUnits raises the execution-unit bucket count (libsee_units1024).
	ManyUnits bool
}

// Tags returns the build tags for opts.
func (o BuildOptions) Tags() []string {
	var tags []string
	if o.Atomic {
		tags = append(tags, "libsee_atomic")
	}
	if o.ManyUnits {
		tags = append(tags, "libsee_units1024")
	}
	return tags
}

// BuildFlags merges the runtime build tags into the user's go build flags.
// An existing -tags flag is extended rather than repeated, because the go
// command only honours the last one.
//
// Example:
//
//	flags := BuildFlags([]string{"-tags", "netgo"}, BuildOptions{Atomic: true})
//	// flags = ["-tags=netgo,libsee_atomic"]
func BuildFlags(userFlags []string, opts BuildOptions) []string {
	tags := opts.Tags()
	if len(tags) == 0 {
		return userFlags
	}

	var out, existing []string
	for i := 0; i < len(userFlags); i++ {
		flag := userFlags[i]
		name := strings.TrimPrefix(flag, "-")
		switch {
		case name == "tags" || name == "-tags":
			if i+1 < len(userFlags) {
				i++
				existing = append(existing, splitTags(userFlags[i])...)
			}
		case strings.HasPrefix(name, "tags=") || strings.HasPrefix(name, "-tags="):
			existing = append(existing, splitTags(flag[strings.Index(flag, "=")+1:])...)
		default:
			out = append(out, flag)
		}
	}
	return append(out, "-tags="+strings.Join(MergeTags(existing, tags), ","))
}

// MergeTags appends the tags in add that base does not already contain.
func MergeTags(base, add []string) []string {
	merged := append([]string(nil), base...)
	for _, tag := range add {
		dup := false
		for _, b := range merged {
			if b == tag {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, tag)
		}
	}
	return merged
}

func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

// ModFileOverlay writes tempDir/go.mod for instrumented code.
//
// The original go.mod (empty for loose files) is kept, with:
//   - a require of the runtime module
//   - a replace to the local libsee checkout, when one is found
//   - relative replace paths made absolute against the original go.mod
//   - the go directive raised to MinGoVersion if it is older
//
// Parameters:
//   - tempDir: Root of the instrumented copy
//   - originalGoMod: Path of the project's go.mod, or "" for loose files
//
// Returns:
//   - Path to the written go.mod
//   - Error if the original cannot be parsed or the file cannot be written
func ModFileOverlay(tempDir, originalGoMod string) (string, error) {
	f, err := loadModFile(originalGoMod)
	if err != nil {
		return "", err
	}

	if f.Module.Mod.Path != RuntimeModulePath {
		if err := linkRuntime(f); err != nil {
			return "", err
		}
	}

	if originalGoMod != "" {
		if err := absolutizeReplaces(f, filepath.Dir(originalGoMod)); err != nil {
			return "", err
		}
	}

	if f.Go == nil || semver.Compare("v"+f.Go.Version, "v"+MinGoVersion) < 0 {
		if err := f.AddGoStmt(MinGoVersion); err != nil {
			return "", err
		}
	}

	f.Cleanup()
	data, err := f.Format()
	if err != nil {
		return "", fmt.Errorf("failed to format go.mod: %w", err)
	}

	overlayPath := filepath.Join(tempDir, "go.mod")
	if err := os.WriteFile(overlayPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to create go.mod overlay: %w", err)
	}
	return overlayPath, nil
}

func loadModFile(path string) (*modfile.File, error) {
	if path == "" {
		f := new(modfile.File)
		if err := f.AddModuleStmt(fallbackModulePath); err != nil {
			return nil, err
		}
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if f.Module == nil {
		return nil, fmt.Errorf("%s has no module directive", path)
	}
	return f, nil
}

// linkRuntime adds the runtime requirement, pointing it at a local
// checkout when there is one.
func linkRuntime(f *modfile.File) error {
	root, err := FindProjectRoot()
	if err != nil {
		// Installed binary: use the published module.
		return f.AddRequire(RuntimeModulePath, Version())
	}
	if err := f.AddRequire(RuntimeModulePath, devVersion); err != nil {
		return err
	}
	return f.AddReplace(RuntimeModulePath, "", root, "")
}

// absolutizeReplaces rewrites directory replacements relative to dir into
// absolute paths.
func absolutizeReplaces(f *modfile.File, dir string) error {
	replaces := append([]*modfile.Replace(nil), f.Replace...)
	for _, rep := range replaces {
		if rep.New.Version != "" || !modfile.IsDirectoryPath(rep.New.Path) || filepath.IsAbs(rep.New.Path) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, rep.New.Path))
		if err != nil {
			return fmt.Errorf("replace %s: %w", rep.Old.Path, err)
		}
		if err := f.AddReplace(rep.Old.Path, rep.Old.Version, abs, ""); err != nil {
			return err
		}
	}
	return nil
}
