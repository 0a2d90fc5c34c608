// report_test.go tests the report, slots, doctor and version commands.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/internal/see/report"
)

// secondReport is a later run of the helper program.
var secondReport = strings.Replace(helperReport, "10,             2", "30,             2", 1)

func writeReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSections(t *testing.T) {
	one := writeReport(t, "one.txt", "program output\n"+helperReport)
	two := writeReport(t, "two.txt", secondReport+secondReport)

	sections, err := readSections([]string{one, two})
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, uint64(10), sections[0].Rows[0].Cycles)
	assert.Equal(t, uint64(30), sections[2].Rows[0].Cycles)

	_, err = readSections([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	empty := writeReport(t, "empty.txt", "no report here\n")
	_, err = readSections([]string{empty})
	assert.ErrorContains(t, err, "no libsee report found")
}

func TestReadSections_Truncated(t *testing.T) {
	cut := strings.TrimSuffix(helperReport, report.Separator+"\n")
	path := writeReport(t, "cut.txt", cut)

	sections, err := readSections([]string{path})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.True(t, sections[0].Truncated)
}

func TestShowReports(t *testing.T) {
	one := writeReport(t, "one.txt", helperReport)
	two := writeReport(t, "two.txt", secondReport)
	prom := filepath.Join(t.TempDir(), "out.prom")

	single, err := readSections([]string{one})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, showReports(&out, single, prom))
	assert.Contains(t, out.String(), "strings.Index")
	assert.FileExists(t, prom)

	both, err := readSections([]string{one, two})
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, showReports(&out, both, ""))
	assert.Contains(t, out.String(), "2 runs merged")
	assert.Contains(t, out.String(), "20", "mean of 10 and 30 cycles")

	assert.Error(t, showReports(&out, both, prom))
}

func TestListSlots(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listSlots(&out, ""))
	assert.Contains(t, out.String(), "strings.Index")
	assert.Contains(t, out.String(), "see.RandIntn")

	out.Reset()
	require.NoError(t, listSlots(&out, "random"))
	assert.Contains(t, out.String(), "math/rand.Intn")
	assert.NotContains(t, out.String(), "strings.Index")

	err := listSlots(&out, "bogus")
	assert.ErrorContains(t, err, "unknown group")
}

func TestGroupNames(t *testing.T) {
	names := groupNames()
	assert.True(t, strings.HasPrefix(names, "string, memory"), names)
	assert.True(t, strings.HasSuffix(names, "time"), names)
}

func TestUnitCheck(t *testing.T) {
	c := unitCheck(0, "test")
	assert.Equal(t, "warn", c.status)
	assert.Contains(t, c.value, "--many-units")

	c = unitCheck(1<<20, "test")
	assert.Equal(t, "ok", c.status)
	assert.Contains(t, c.value, "ids from test")
}

func TestDoctor(t *testing.T) {
	checks := runChecks(time.Millisecond)
	require.NotEmpty(t, checks)
	assert.Equal(t, "libsee", checks[0].name)

	var out bytes.Buffer
	require.NoError(t, printChecks(&out, []check{
		{"a", "fine", "ok"},
		{"b", "odd", "warn"},
	}))
	assert.Contains(t, out.String(), "odd")
	assert.True(t, strings.HasSuffix(out.String(), "1 warnings\n"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.True(t, strings.HasPrefix(out.String(), "libsee version "), out.String())
}
