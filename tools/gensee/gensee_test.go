package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
groups:
  - name: string
    import: strings
    funcs:
      - Index(s, substr string) int
      - NewReplacer(oldnew ...string) *strings.Replacer
  - name: stream
    import: io
    funcs:
      - Copy(dst io.Writer, src io.Reader) (written int64, err error)
  - name: time
    import: time
    funcs:
      - Sleep(d time.Duration)
`

func TestParseFunc(t *testing.T) {
	f, err := parseFunc("Copy(dst io.Writer, src io.Reader) (written int64, err error)")
	require.NoError(t, err)
	assert.Equal(t, "Copy", f.Name)
	assert.Equal(t, "dst io.Writer, src io.Reader", f.Params)
	assert.Equal(t, "(written int64, err error)", f.Results)
	assert.Equal(t, []string{"dst", "src"}, f.Args)
	assert.Equal(t, 2, f.NumResults)
	assert.Equal(t, []string{"io"}, f.Uses)

	f, err = parseFunc("Sprintf(format string, a ...any) string")
	require.NoError(t, err)
	assert.Equal(t, []string{"format", "a..."}, f.Args)
	assert.Equal(t, 1, f.NumResults)
	assert.Empty(t, f.Uses)

	f, err = parseFunc("Sleep(d time.Duration)")
	require.NoError(t, err)
	assert.Empty(t, f.Results)
	assert.Zero(t, f.NumResults)
}

func TestParseFuncErrors(t *testing.T) {
	for _, sig := range []string{
		"Index",
		"index(s string) int",
		"Index(string, string) int",
		"Index(s, start string) int",
		"Index(r0 string) int",
		"Index(s string int",
	} {
		_, err := parseFunc(sig)
		assert.Error(t, err, sig)
	}
}

func TestParseManifest(t *testing.T) {
	m, err := parseManifest([]byte(sample))
	require.NoError(t, err)
	require.Len(t, m.Funcs, 4)
	assert.Equal(t, []string{"io", "strings", "time"}, m.Imports)
	assert.Equal(t, "StringsNewReplacer", m.Funcs[1].Const)
	assert.Equal(t, "GroupStream", m.Funcs[2].GroupConst)

	_, err = parseManifest([]byte("groups:\n  - name: nope\n    import: x\n"))
	assert.ErrorContains(t, err, "unknown group")

	_, err = parseManifest([]byte("groups:\n  - name: string\n    import: strings\n    funcs: [\"Index(s, t string) int\", \"Index(a, b string) int\"]\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = parseManifest([]byte("groups: []\n"))
	assert.Error(t, err)
}

func TestGenerateWrappers(t *testing.T) {
	m, err := parseManifest([]byte(sample))
	require.NoError(t, err)

	src, err := generateWrappers(m, "sample.yaml")
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by gensee from sample.yaml. DO NOT EDIT.\n"))
	assert.Contains(t, out, "\t\"io\"\n")
	assert.Contains(t, out, "\t\"time\"\n")
	assert.Contains(t, out, "\t\"strings\"\n", "strings.Replacer is named in a signature")
	assert.Contains(t, out, "func IoCopy(dst io.Writer, src io.Reader) (written int64, err error) {\n"+
		"\tstart := engine.Default.Begin(slots.IoCopy)\n"+
		"\tr0, r1 := next.IoCopy(dst, src)\n"+
		"\tengine.Default.End(slots.IoCopy, start)\n"+
		"\treturn r0, r1\n}\n")
	assert.Contains(t, out, "\tr0 := next.StringsNewReplacer(oldnew...)\n")
	assert.Contains(t, out, "func TimeSleep(d time.Duration) {\n"+
		"\tstart := engine.Default.Begin(slots.TimeSleep)\n"+
		"\tnext.TimeSleep(d)\n"+
		"\tengine.Default.End(slots.TimeSleep, start)\n}\n")
}

func TestGenerateSymbolsAndSlots(t *testing.T) {
	m, err := parseManifest([]byte(sample))
	require.NoError(t, err)

	src, err := generateSymbols(m, "sample.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(src), "StringsIndex       func(s, substr string) int\n")
	assert.Contains(t, string(src), "TimeSleep:          time.Sleep,\n")
	assert.Contains(t, string(src), "IoCopy:             IoCopy,\n")

	src, err = generateSlots(m, "sample.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(src), "\tStringsIndex Slot = iota\n\tStringsNewReplacer\n")
	assert.Contains(t, string(src), `{"io.Copy", "io", "Copy", "IoCopy", GroupStream},`)
}

// TestGeneratedFilesAreUpToDate fails when slots.yaml was edited without
// running go generate.
func TestGeneratedFilesAreUpToDate(t *testing.T) {
	root := filepath.Join("..", "..")
	manifest := filepath.Join(root, "internal", "see", "slots", "slots.yaml")
	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	m, err := parseManifest(data)
	require.NoError(t, err)

	check := func(path string, gen func(*Manifest, string) ([]byte, error), source string) {
		t.Helper()
		want, err := gen(m, source)
		require.NoError(t, err)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "%s is stale, run go generate ./internal/see/slots", path)
	}
	check(filepath.Join(root, "internal", "see", "slots", "zslots.go"), generateSlots, "slots.yaml")
	check(filepath.Join(root, "see", "zsymbols.go"), generateSymbols, "internal/see/slots/slots.yaml")
	check(filepath.Join(root, "see", "zwrappers.go"), generateWrappers, "internal/see/slots/slots.yaml")
	assert.Equal(t, "internal/see/slots/slots.yaml", moduleRelative(manifest))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "slots.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(sample), 0o644))

	seeDir := filepath.Join(dir, "see")
	require.NoError(t, os.Mkdir(seeDir, 0o755))
	require.NoError(t, run(manifest, filepath.Join(dir, "zslots.go"), seeDir))

	for _, name := range []string{"zslots.go", "see/zsymbols.go", "see/zwrappers.go"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
