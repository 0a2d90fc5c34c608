// build_test.go tests the 'libsee build' command and the workspace.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/cmd/libsee/instrument"
	"github.com/kolkov/libsee/internal/see/slots"
)

// resetViper undoes settings made by argument parsing.
func resetViper(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		viper.Set(keyVerbose, false)
	})
}

// writeFiles creates files under dir from a path -> content map.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

const demoMain = `package main

import (
	"fmt"
	"strings"
)

func main() {
	fmt.Println(strings.Index("hello", "l"))
}
`

func TestParseBuildArgs_SimpleFile(t *testing.T) {
	config, err := parseBuildArgs([]string{"main.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, config.sourceFiles)
	assert.Empty(t, config.outputFile)
	assert.Empty(t, config.buildFlags)
	assert.NotEmpty(t, config.workDir)
}

func TestParseBuildArgs_OutputFlag(t *testing.T) {
	for _, args := range [][]string{
		{"-o", "app", "main.go"},
		{"-o=app", "main.go"},
	} {
		config, err := parseBuildArgs(args)
		require.NoError(t, err)
		assert.Equal(t, "app", config.outputFile)
		assert.Equal(t, []string{"main.go"}, config.sourceFiles)
	}

	_, err := parseBuildArgs([]string{"-o"})
	assert.Error(t, err)
}

func TestParseBuildArgs_BuildFlags(t *testing.T) {
	config, err := parseBuildArgs([]string{"-ldflags", "-s -w", "-trimpath", "-tags=netgo", "main.go", "util.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-ldflags", "-s -w", "-trimpath", "-tags=netgo"}, config.buildFlags)
	assert.Equal(t, []string{"main.go", "util.go"}, config.sourceFiles)
}

func TestParseBuildArgs_ToolFlags(t *testing.T) {
	resetViper(t)
	config, err := parseBuildArgs([]string{"-v", "--atomic", "--many-units", "."})
	require.NoError(t, err)
	assert.True(t, config.verbose)
	assert.True(t, config.options.Atomic)
	assert.True(t, config.options.ManyUnits)
	assert.Empty(t, config.buildFlags)
	assert.True(t, viper.GetBool(keyVerbose))
}

func TestParseBuildArgs_Defaults(t *testing.T) {
	config, err := parseBuildArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, config.sourceFiles)

	config, err = parseBuildArgs([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, config.help)
}

func TestNeedsValue(t *testing.T) {
	tests := []struct {
		flag string
		want bool
	}{
		{"-ldflags", true},
		{"-ldflags=-s", false},
		{"-tags", true},
		{"-trimpath", false},
		{"-race", false},
		{"-p", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, needsValue(tt.flag), tt.flag)
	}
}

func TestCollectGoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.go":      demoMain,
		"util.go":      "package main\n",
		"main_test.go": "package main\n",
		"README.md":    "x",
		"sub/x.go":     "package sub\n",
	})

	files, err := collectGoFiles([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "util.go"),
	}, files)

	files, err = collectGoFiles([]string{filepath.Join(dir, "util.go")})
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = collectGoFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestAbsSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.go": demoMain})

	abs, err := absSources([]string{"main.go", "."}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "main.go"), dir}, abs)

	_, err = absSources([]string{"nope.go"}, dir)
	assert.Error(t, err)
}

func TestDefaultOutput(t *testing.T) {
	name := defaultOutput("/src/app/main.go")
	assert.True(t, strings.HasPrefix(name, "main"))
	assert.True(t, strings.HasPrefix(defaultOutput("/src/app"), "app"))
}

func TestWorkspace_MirrorsModule(t *testing.T) {
	modRoot := t.TempDir()
	writeFiles(t, modRoot, map[string]string{
		"go.mod":            "module example.com/demo\n\ngo 1.22\n",
		"go.sum":            "",
		"main.go":           demoMain,
		"main_test.go":      "package main\n",
		"lib/lib.go":        "package lib\n\nimport \"strings\"\n\nfunc Up(s string) string { return strings.ToUpper(s) }\n",
		"lib/data.txt":      "asset",
		"lib/testdata/f.go": "package fixture\n\nimport \"strings\"\n\nvar _ = strings.Index\n",
		".git/config":       "x",
		"vendor/v/v.go":     "package v\n",
		"nested/go.mod":     "module example.com/nested\n",
		"nested/n.go":       "package nested\n",
	})

	ws, err := createWorkspace(modRoot, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()
	assert.Equal(t, modRoot, ws.modRoot)

	stats, err := ws.populate(populateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total())
	assert.True(t, stats.MainInjected)

	code, err := os.ReadFile(filepath.Join(ws.dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "see.StringsIndex")

	lib, err := os.ReadFile(filepath.Join(ws.dir, "lib", "lib.go"))
	require.NoError(t, err)
	assert.Contains(t, string(lib), "see.StringsToUpper(s)")

	asset, err := os.ReadFile(filepath.Join(ws.dir, "lib", "data.txt"))
	require.NoError(t, err)
	assert.Equal(t, "asset", string(asset))

	fixture, err := os.ReadFile(filepath.Join(ws.dir, "lib", "testdata", "f.go"))
	require.NoError(t, err)
	assert.Contains(t, string(fixture), "strings.Index", "testdata is copied verbatim")

	for _, skipped := range []string{"main_test.go", ".git", "vendor", "nested", "go.mod"} {
		_, err := os.Stat(filepath.Join(ws.dir, skipped))
		assert.True(t, os.IsNotExist(err), "%s should not be mirrored", skipped)
	}

	target, err := ws.target(filepath.Join(modRoot, "lib"))
	require.NoError(t, err)
	assert.Equal(t, "./lib", target)
	target, err = ws.target(modRoot)
	require.NoError(t, err)
	assert.Equal(t, ".", target)
	_, err = ws.target(t.TempDir())
	assert.Error(t, err)

	pattern, err := ws.targetPattern("./...", filepath.Join(modRoot, "lib"))
	require.NoError(t, err)
	assert.Equal(t, "./lib/...", pattern)
	pattern, err = ws.targetPattern("example.com/demo/...", modRoot)
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo/...", pattern)
}

func TestWorkspace_Tests(t *testing.T) {
	modRoot := t.TempDir()
	writeFiles(t, modRoot, map[string]string{
		"go.mod":      "module example.com/demo\n",
		"a/a.go":      "package a\n",
		"a/a_test.go": "package a_test\n\nimport (\n\t\"strings\"\n\t\"testing\"\n)\n\nfunc TestA(t *testing.T) { _ = strings.Clone(\"x\") }\n",
		"b/b.go":      "package b\n",
		"b/b_test.go": "package b\n\nimport (\n\t\"os\"\n\t\"testing\"\n)\n\nfunc TestMain(m *testing.M) { os.Exit(m.Run()) }\n",
	})

	ws, err := createWorkspace(modRoot, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()

	stats, err := ws.populate(populateOptions{tests: true})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total())
	assert.Equal(t, 1, stats.ExitsRewritten)

	generated, err := os.ReadFile(filepath.Join(ws.dir, "a", instrument.TestMainFileName))
	require.NoError(t, err)
	assert.Contains(t, string(generated), "package a_test")

	_, err = os.Stat(filepath.Join(ws.dir, "b", instrument.TestMainFileName))
	assert.True(t, os.IsNotExist(err), "b already has TestMain")
}

func TestWorkspace_RuntimeCopiedVerbatim(t *testing.T) {
	runtimeSee := "package see\n\nimport \"strings\"\n\nfunc Up(s string) string { return strings.ToUpper(s) }\n"
	runtimeCycles := "package cycles\n\nimport \"strings\"\n\nvar Bar = strings.Repeat(\"-\", 3)\n"
	modRoot := t.TempDir()
	writeFiles(t, modRoot, map[string]string{
		"go.mod":                   "module github.com/kolkov/libsee\n\ngo 1.24\n",
		"see/see.go":               runtimeSee,
		"see/see_test.go":          "package see\n\nimport \"testing\"\n\nfunc TestUp(t *testing.T) {}\n",
		"internal/see/cycles/c.go": runtimeCycles,
		"examples/app/main.go":     demoMain,
	})

	ws, err := createWorkspace(filepath.Join(modRoot, "examples", "app"), zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()
	assert.Equal(t, "github.com/kolkov/libsee", ws.modPath)

	stats, err := ws.populate(populateOptions{tests: true})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total(), "only the example is instrumented")

	for rel, want := range map[string]string{
		"see/see.go":               runtimeSee,
		"internal/see/cycles/c.go": runtimeCycles,
	} {
		got, err := os.ReadFile(filepath.Join(ws.dir, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), rel)
	}
	_, err = os.Stat(filepath.Join(ws.dir, "see", instrument.TestMainFileName))
	assert.True(t, os.IsNotExist(err), "runtime tests get no TestMain")

	app, err := os.ReadFile(filepath.Join(ws.dir, "examples", "app", "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "see.StringsIndex")
}

func TestWorkspace_RuntimeOnlyInLibseeModule(t *testing.T) {
	modRoot := t.TempDir()
	writeFiles(t, modRoot, map[string]string{
		"go.mod":          "module example.com/demo\n",
		"internal/x/x.go": "package x\n\nimport \"strings\"\n\nvar X = strings.Repeat(\"-\", 3)\n",
	})

	ws, err := createWorkspace(modRoot, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()

	assert.False(t, ws.isRuntime("internal/x/x.go"))
	stats, err := ws.populate(populateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total(), "internal packages of other modules are instrumented")
}

func TestWorkspace_AliasAvoidsPackageNames(t *testing.T) {
	modRoot := t.TempDir()
	writeFiles(t, modRoot, map[string]string{
		"go.mod":     "module example.com/demo\n",
		"lib/a.go":   "package lib\n\nvar see = \"declared in another file\"\n",
		"lib/b.go":   "package lib\n\nimport \"strings\"\n\nfunc Up(s string) string { return strings.ToUpper(s) }\n",
		"app/app.go": "package app\n\nimport \"strings\"\n\nfunc Up(s string) string { return strings.ToUpper(s) }\n",
	})

	ws, err := createWorkspace(modRoot, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()

	_, err = ws.populate(populateOptions{})
	require.NoError(t, err)

	lib, err := os.ReadFile(filepath.Join(ws.dir, "lib", "b.go"))
	require.NoError(t, err)
	assert.Contains(t, string(lib), `libsee "github.com/kolkov/libsee/see"`)
	assert.Contains(t, string(lib), "libsee.StringsToUpper(s)")

	app, err := os.ReadFile(filepath.Join(ws.dir, "app", "app.go"))
	require.NoError(t, err)
	assert.Contains(t, string(app), "see.StringsToUpper(s)")
	assert.NotContains(t, string(app), "libsee.")
}

// TestWorkspace_RepositoryExample mirrors this repository for one of its
// own examples: the runtime must come through untouched.
func TestWorkspace_RepositoryExample(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	example := filepath.Join(root, "examples", "workers")
	if _, err := os.Stat(example); err != nil {
		t.Skip("examples not available")
	}

	ws, err := createWorkspace(example, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()

	_, err = ws.populate(populateOptions{})
	require.NoError(t, err)

	for _, rel := range []string{"see/api.go", "internal/see/cycles/cycles.go", "internal/see/engine/engine.go"} {
		want, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(ws.dir, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), rel)
	}

	code, err := os.ReadFile(filepath.Join(ws.dir, "examples", "workers", "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "see.RandIntn")
	assert.Contains(t, string(code), "defer see.Fini()")
}

func TestWorkspace_LooseFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.go": demoMain})

	ws, err := createWorkspace(dir, zerolog.Nop())
	require.NoError(t, err)
	defer ws.cleanup()
	if ws.modRoot != "" {
		t.Skipf("temp dir is inside module %s", ws.modRoot)
	}

	_, err = ws.populate(populateOptions{})
	assert.Error(t, err, "loose mode needs files")

	stats, err := ws.populate(populateOptions{files: []string{filepath.Join(dir, "main.go")}})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total())

	target, err := ws.target(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "main.go", target)
}

func TestWorkspaceCleanup(t *testing.T) {
	ws, err := createWorkspace(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ws.cleanup()
	_, err = os.Stat(ws.dir)
	assert.True(t, os.IsNotExist(err))
}

func TestFormatGroups(t *testing.T) {
	assert.Equal(t, "2 string, 1 format", formatGroups(map[slots.Group]int{
		slots.GroupFormat: 1,
		slots.GroupString: 2,
	}))
	assert.Empty(t, formatGroups(nil))
}

func BenchmarkParseBuildArgs(b *testing.B) {
	args := []string{"-o", "app", "-ldflags", "-s -w", "main.go", "util.go"}
	for i := 0; i < b.N; i++ {
		_, _ = parseBuildArgs(args)
	}
}
