package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/mod/modfile"

	"github.com/kolkov/libsee/cmd/libsee/instrument"
	"github.com/kolkov/libsee/cmd/libsee/runtime"
	"github.com/kolkov/libsee/internal/see/slots"
)

// workspace is a temporary copy of the user's module with instrumented
// sources.
//
// Inside a module the whole module is mirrored, so that imports between
// its packages resolve to instrumented code too. Loose files with no
// go.mod are copied flat into the workspace root.
type workspace struct {
	// Root directory of workspace; go.mod lives here
	dir string

	// Root of the original module, "" for loose files
	modRoot string

	// Path of the original go.mod, "" for loose files
	goMod string

	// Module path declared in goMod
	modPath string

	// Package-level names per source directory, see packageScope
	scopes map[string]map[string]bool

	log zerolog.Logger
}

// createWorkspace creates a temporary workspace for the module containing
// startDir.
func createWorkspace(startDir string, log zerolog.Logger) (*workspace, error) {
	dir, err := os.MkdirTemp("", "libsee-build-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	w := &workspace{dir: dir, log: log, scopes: make(map[string]map[string]bool)}
	if goMod := runtime.FindOriginalGoMod(startDir); goMod != "" {
		data, err := os.ReadFile(goMod)
		if err != nil {
			w.cleanup()
			return nil, fmt.Errorf("failed to read %s: %w", goMod, err)
		}
		w.goMod = goMod
		w.modRoot = filepath.Dir(goMod)
		w.modPath = modfile.ModulePath(data)
	}
	return w, nil
}

// cleanup removes the temporary workspace.
func (w *workspace) cleanup() {
	if w.dir != "" {
		_ = os.RemoveAll(w.dir) // Best effort cleanup, ignore errors
	}
}

// populateOptions selects which files are instrumented.
type populateOptions struct {
	// Instrument _test.go files and add TestMain where missing
	tests bool

	// Loose files to copy when there is no module
	files []string
}

// populate fills the workspace. Per-file instrumentation errors are
// collected so that all of them are reported at once.
func (w *workspace) populate(opts populateOptions) (instrument.InstrumentStats, error) {
	var total instrument.InstrumentStats
	var errs *multierror.Error

	add := func(src, dst string) {
		reserved, err := w.packageScope(src, opts)
		if err != nil {
			errs = multierror.Append(errs, err)
			return
		}
		stats, err := w.instrumentFile(src, dst, reserved)
		if err != nil {
			errs = multierror.Append(errs, err)
			return
		}
		total.Add(stats)
	}

	if w.modRoot == "" {
		if len(opts.files) == 0 {
			return total, fmt.Errorf("no go.mod found and no Go files given")
		}
		for _, src := range opts.files {
			add(src, filepath.Join(w.dir, filepath.Base(src)))
		}
		if opts.tests {
			if err := w.addTestMain(w.dir); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		return total, errs.ErrorOrNil()
	}

	testDirs := make(map[string]bool)
	err := filepath.WalkDir(w.modRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(w.modRoot, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(w.dir, rel)

		if d.IsDir() {
			if path == w.modRoot {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" {
				return filepath.SkipDir
			}
			if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
				// Nested module
				return filepath.SkipDir
			}
			return os.MkdirAll(dst, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		switch {
		case name == "go.mod":
			return nil // written by setupRuntimeLinking
		case !strings.HasSuffix(name, ".go") || inTestdata(rel):
			return copyFile(path, dst)
		case strings.HasSuffix(name, "_test.go") && !opts.tests:
			return nil
		case w.isRuntime(rel):
			// Instrumenting the runtime would make it import itself.
			return copyFile(path, dst)
		}
		add(path, dst)
		if strings.HasSuffix(name, "_test.go") {
			testDirs[filepath.Dir(dst)] = true
		}
		return nil
	})
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to mirror %s: %w", w.modRoot, err))
	}

	dirs := make([]string, 0, len(testDirs))
	for dir := range testDirs {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		if err := w.addTestMain(dir); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return total, errs.ErrorOrNil()
}

// isRuntime reports whether the file at rel, relative to the module
// root, belongs to the profiler runtime. That only happens when the
// module being mirrored is libsee itself.
func (w *workspace) isRuntime(rel string) bool {
	if w.modPath != runtime.RuntimeModulePath {
		return false
	}
	importPath := path.Join(w.modPath, filepath.ToSlash(filepath.Dir(rel)))
	internal := runtime.RuntimeModulePath + "/internal"
	return importPath == instrument.SeePackageImportPath ||
		importPath == internal ||
		strings.HasPrefix(importPath, internal+"/")
}

// packageScope returns the package-level names of the package src
// belongs to: the given loose files, or the Go files next to src.
func (w *workspace) packageScope(src string, opts populateOptions) (map[string]bool, error) {
	dir := filepath.Dir(src)
	if scope, ok := w.scopes[dir]; ok {
		return scope, nil
	}

	files := opts.files
	if w.modRoot != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		files = nil
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".go") {
				continue
			}
			if strings.HasSuffix(name, "_test.go") && !opts.tests {
				continue
			}
			files = append(files, filepath.Join(dir, name))
		}
	}

	scope, err := instrument.PackageScope(files)
	if err != nil {
		return nil, fmt.Errorf("failed to read package of %s: %w", src, err)
	}
	w.scopes[dir] = scope
	return scope, nil
}

func inTestdata(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "testdata" {
			return true
		}
	}
	return false
}

// instrumentFile instruments src and writes the result to dst.
func (w *workspace) instrumentFile(src, dst string, reserved map[string]bool) (*instrument.InstrumentStats, error) {
	opts := instrument.Options{
		SkipMainInjection: strings.HasSuffix(src, "_test.go"),
		Reserved:          reserved,
	}
	result, err := instrument.InstrumentFileWithOptions(src, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to instrument %s: %w", src, err)
	}
	if err := os.WriteFile(dst, []byte(result.Code), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write instrumented file %s: %w", dst, err)
	}

	stats := &result.Stats
	for _, warn := range stats.Warnings {
		w.log.Warn().Msg(warn.Error())
	}
	if result.Changed() {
		ev := w.log.Debug().
			Str("file", w.display(src)).
			Int("calls", stats.Total()).
			Int("exits", stats.ExitsRewritten).
			Int("skipped", stats.TotalSkipped()).
			Bool("main", stats.MainInjected)
		if groups := formatGroups(stats.ByGroup()); groups != "" {
			ev = ev.Str("groups", groups)
		}
		ev.Msg("Instrumented")
	}
	return stats, nil
}

// display returns path relative to the module root when possible.
func (w *workspace) display(path string) string {
	if w.modRoot != "" {
		if rel, err := filepath.Rel(w.modRoot, path); err == nil {
			return rel
		}
	}
	return path
}

// formatGroups renders per-group call counts as "3 string, 1 format".
func formatGroups(groups map[slots.Group]int) string {
	keys := make([]slots.Group, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, g := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", groups[g], g))
	}
	return strings.Join(parts, ", ")
}

// addTestMain writes a TestMain into dir unless one of its test files
// already declares one.
func (w *workspace) addTestMain(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	pkg := ""
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, parser.SkipObjectResolution)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
		if instrument.HasTestMain(file) {
			return nil
		}
		if pkg == "" || strings.HasSuffix(pkg, "_test") {
			pkg = file.Name.Name
		}
	}
	if pkg == "" {
		return nil
	}

	src, err := instrument.GenerateTestMain(pkg)
	if err != nil {
		return fmt.Errorf("failed to generate TestMain for %s: %w", dir, err)
	}
	w.log.Debug().Str("dir", w.display(dir)).Msg("Added TestMain")
	return os.WriteFile(filepath.Join(dir, instrument.TestMainFileName), src, 0o644)
}

// copyFile copies a non-Go file, such as an embedded asset, unchanged.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// setupRuntimeLinking writes go.mod and go.sum and tidies the module so
// that the see import resolves.
func (w *workspace) setupRuntimeLinking() error {
	if _, err := runtime.ModFileOverlay(w.dir, w.goMod); err != nil {
		return fmt.Errorf("failed to create go.mod overlay: %w", err)
	}
	if w.modRoot != "" {
		goSum := filepath.Join(w.modRoot, "go.sum")
		if _, err := os.Stat(goSum); err == nil {
			if err := copyFile(goSum, filepath.Join(w.dir, "go.sum")); err != nil {
				return fmt.Errorf("failed to copy go.sum: %w", err)
			}
		}
	}

	tidy := w.goCommand("mod", "tidy")
	tidy.Stdout = os.Stderr
	tidy.Stderr = os.Stderr
	if err := tidy.Run(); err != nil {
		return fmt.Errorf("failed to tidy go.mod: %w", err)
	}
	return nil
}

// goCommand prepares a go command that runs in the workspace. Workspace
// files and vendor directories of the original tree do not apply to the
// copy.
func (w *workspace) goCommand(args ...string) *exec.Cmd {
	cmd := exec.Command("go", args...)
	cmd.Dir = w.dir
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod")
	return cmd
}

// target maps a file or directory of the original tree to its path
// relative to the workspace root, in the form go build expects.
func (w *workspace) target(path string) (string, error) {
	if w.modRoot == "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return ".", nil
		}
		return filepath.Base(path), nil
	}
	rel, err := filepath.Rel(w.modRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside module %s", path, w.modRoot)
	}
	if rel == "." {
		return ".", nil
	}
	return "./" + filepath.ToSlash(rel), nil
}

// targetPattern is target for go package patterns such as ./... . Import
// path patterns are returned unchanged: the module path is the same.
func (w *workspace) targetPattern(pattern, workDir string) (string, error) {
	if !strings.HasPrefix(pattern, ".") && !filepath.IsAbs(pattern) {
		return pattern, nil
	}
	suffix := ""
	base := pattern
	if strings.HasSuffix(pattern, "/...") || pattern == "..." {
		suffix = "/..."
		base = strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")
		if base == "" {
			base = "."
		}
	}
	if !filepath.IsAbs(base) {
		base = filepath.Join(workDir, base)
	}
	t, err := w.target(base)
	if err != nil {
		return "", err
	}
	if w.modRoot == "" {
		t = "."
	}
	return t + suffix, nil
}
