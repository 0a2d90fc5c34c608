// test_test.go implements tests for the 'libsee test' command.
package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/internal/see/report"
)

func TestParseTestArgs(t *testing.T) {
	resetViper(t)

	tests := []struct {
		name         string
		args         []string
		wantPackages []string
		wantFlags    []string
		wantBinary   []string
		wantVerbose  bool
	}{
		{
			name:         "no args - default to current dir",
			args:         []string{},
			wantPackages: []string{"."},
			wantFlags:    []string{},
		},
		{
			name:         "single package",
			args:         []string{"./..."},
			wantPackages: []string{"./..."},
			wantFlags:    []string{},
		},
		{
			name:         "verbose flag",
			args:         []string{"-v", "./..."},
			wantPackages: []string{"./..."},
			wantFlags:    []string{"-v"},
			wantVerbose:  true,
		},
		{
			name:         "run flag with value",
			args:         []string{"-run", "TestFoo", "./pkg/..."},
			wantPackages: []string{"./pkg/..."},
			wantFlags:    []string{"-run", "TestFoo"},
		},
		{
			name:         "run flag with equals",
			args:         []string{"-run=TestBar", "./..."},
			wantPackages: []string{"./..."},
			wantFlags:    []string{"-run=TestBar"},
		},
		{
			name:         "build flag with value",
			args:         []string{"-tags", "integration", "-count=1", "./a", "./b"},
			wantPackages: []string{"./a", "./b"},
			wantFlags:    []string{"-tags", "integration", "-count=1"},
		},
		{
			name:         "binary arguments",
			args:         []string{"./...", "-args", "-v", "data.txt"},
			wantPackages: []string{"./..."},
			wantFlags:    []string{},
			wantBinary:   []string{"-v", "data.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := parseTestArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPackages, config.packages)
			assert.Equal(t, tt.wantFlags, config.testFlags)
			assert.Equal(t, tt.wantBinary, config.binaryArgs)
			assert.Equal(t, tt.wantVerbose, config.verbose)
		})
	}
}

func TestParseTestArgs_ToolFlags(t *testing.T) {
	config, err := parseTestArgs([]string{"--many-units", "--raw", "--save=t.txt", "--prom", "t.prom", "-count", "3"})
	require.NoError(t, err)
	assert.True(t, config.options.ManyUnits)
	assert.False(t, config.options.Atomic)
	assert.True(t, config.sink.raw)
	assert.Equal(t, "t.txt", config.sink.save)
	assert.Equal(t, "t.prom", config.sink.prom)
	assert.Equal(t, []string{"-count", "3"}, config.testFlags)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(cwd), config.sink.program)

	_, err = parseTestArgs([]string{"--prom"})
	assert.Error(t, err)

	config, err = parseTestArgs([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, config.help)
}

func TestTestFlagNeedsValue(t *testing.T) {
	tests := []struct {
		flag string
		want bool
	}{
		{"-run", true},
		{"-bench", true},
		{"-timeout", true},
		{"-coverprofile", true},
		{"-tags", true},
		{"-run=TestX", false},
		{"-timeout=30s", false},
		{"-v", false},
		{"-race", false},
		{"-short", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testFlagNeedsValue(tt.flag), tt.flag)
	}
}

func TestCollectTestGoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.go":          "package a\n",
		"a_test.go":     "package a\n",
		"README.md":     "docs\n",
		"sub/b.go":      "package sub\n",
		"sub/b_test.go": "package sub\n",
	})

	files, err := collectTestGoFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.go"), filepath.Join(dir, "a_test.go")}, files)

	_, err = collectTestGoFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestUncachedTestFlags(t *testing.T) {
	assert.Equal(t, []string{"-count=1"}, uncachedTestFlags(nil))
	assert.Equal(t, []string{"-run", "TestA", "-count=1"}, uncachedTestFlags([]string{"-run", "TestA"}))
	assert.Equal(t, []string{"-count", "3"}, uncachedTestFlags([]string{"-count", "3"}))
	assert.Equal(t, []string{"-count=2"}, uncachedTestFlags([]string{"-count=2"}))

	flags := make([]string, 1, 4)
	flags[0] = "-v"
	assert.Equal(t, []string{"-v", "-count=1"}, uncachedTestFlags(flags))
	assert.Empty(t, flags[:2][1], "the caller's spare capacity is not written")
}

func TestCollectReports(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"libsee-200.txt": secondReport,
		"libsee-100.txt": helperReport,
		"libsee-300.txt": strings.TrimSuffix(helperReport, report.Separator+"\n"),
		"other.txt":      helperReport,
	})

	sections, err := collectReports(dir)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, uint64(10), sections[0].Rows[0].Cycles)
	assert.Equal(t, uint64(30), sections[1].Rows[0].Cycles)
	assert.True(t, sections[2].Truncated)

	sections, err = collectReports(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sections)
}

// TestRunTests_EndToEnd runs go test, without -v, on an instrumented
// module and checks that the report of the passing test binary arrives.
func TestRunTests_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go test on a generated module")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"go.mod": "module example.com/w\n\ngo 1.24\n",
		"w.go":   "package w\n",
		"w_test.go": `package w

import (
	"strings"
	"testing"
)

func TestUpper(t *testing.T) {
	for i := 0; i < 10; i++ {
		if strings.ToUpper("go") != "GO" {
			t.Fatal("ToUpper")
		}
	}
}
`,
	})

	config := &testConfig{packages: []string{"."}, workDir: dir}
	var out bytes.Buffer
	code, sections, err := runTests(config, &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "ok")
	assert.NotContains(t, out.String(), report.Separator, "reports do not go through go test")

	require.Len(t, sections, 1)
	calls := map[string]uint64{}
	for _, r := range sections[0].Rows {
		calls[r.Function] = r.Calls
	}
	assert.Equal(t, uint64(10), calls["strings.ToUpper"])
}
