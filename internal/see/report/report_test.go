package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/internal/see/counters"
	"github.com/kolkov/libsee/internal/see/rawout"
	"github.com/kolkov/libsee/internal/see/slots"
)

func render(t *testing.T, r *Ranking, sep byte) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, sep))
	return buf.String()
}

func TestEmptyReport(t *testing.T) {
	var agg [slots.Count]counters.Counter
	r := Rank(&agg)

	assert.Empty(t, r.Rows())
	assert.Zero(t, r.TotalCycles)
	for _, st := range r.Stats {
		assert.Zero(t, st.Share)
		assert.False(t, math.IsNaN(st.Share))
	}

	want := Separator + "\n" + Header + "\n" + Separator + "\n"
	assert.Equal(t, want, render(t, &r, rawout.DefaultSeparator))
}

func TestFramingWidth(t *testing.T) {
	assert.Len(t, Separator, 80)
	assert.Len(t, Header, 80)
}

func TestRankOrdersByCycles(t *testing.T) {
	var agg [slots.Count]counters.Counter
	agg[slots.BytesClone] = counters.Counter{Calls: 1000, Cycles: 90000}
	agg[slots.BytesCompare] = counters.Counter{Calls: 500, Cycles: 10000}
	agg[slots.TimeNow] = counters.Counter{Calls: 3, Cycles: 0}

	r := Rank(&agg)
	rows := r.Rows()
	require.Len(t, rows, 3)

	assert.Equal(t, slots.BytesClone, rows[0].Slot)
	assert.Equal(t, uint64(1000), rows[0].Calls)
	assert.Equal(t, slots.BytesCompare, rows[1].Slot)
	assert.Equal(t, uint64(500), rows[1].Calls)
	assert.Equal(t, slots.TimeNow, rows[2].Slot, "called functions are listed even with zero cycles")

	assert.Equal(t, uint64(100000), r.TotalCycles)
	assert.Equal(t, uint64(1503), r.TotalCalls)
	assert.InDelta(t, 90.0, rows[0].Share, 1e-9)
	assert.InDelta(t, 10.0, rows[1].Share, 1e-9)
}

func TestRankIsStableOnTies(t *testing.T) {
	var agg [slots.Count]counters.Counter
	agg[slots.StringsSplit] = counters.Counter{Calls: 1, Cycles: 5}
	agg[slots.StringsClone] = counters.Counter{Calls: 1, Cycles: 5}
	agg[slots.StringsIndex] = counters.Counter{Calls: 2, Cycles: 5}

	r := Rank(&agg)
	rows := r.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, slots.StringsIndex, rows[0].Slot)
	assert.Equal(t, slots.StringsClone, rows[1].Slot)
	assert.Equal(t, slots.StringsSplit, rows[2].Slot)
}

func TestSharesSumToHundred(t *testing.T) {
	var agg [slots.Count]counters.Counter
	for s := range agg {
		if s%3 == 0 {
			agg[s] = counters.Counter{Calls: uint64(s + 1), Cycles: uint64(s*s*17 + 3)}
		}
	}
	r := Rank(&agg)

	var sum float64
	for _, st := range r.Rows() {
		sum += st.Share
	}
	assert.InDelta(t, 100.0, sum, 1e-6)

	// The rendered, rounded shares also add up within rounding error.
	var rendered float64
	for _, line := range strings.Split(render(t, &r, 0), "\n") {
		fields := strings.Split(line, ",")
		if len(fields) != 4 || strings.HasPrefix(line, "function,") {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		require.NoError(t, err)
		rendered += v
	}
	assert.InDelta(t, 100.0, rendered, 0.005*float64(len(r.Rows())))
}

func TestUncalledFunctionsAreOmitted(t *testing.T) {
	var agg [slots.Count]counters.Counter
	agg[slots.OsReadFile] = counters.Counter{Calls: 2, Cycles: 400}

	r := Rank(&agg)
	out := render(t, &r, rawout.DefaultSeparator)
	assert.Contains(t, out, "os.ReadFile,")
	assert.NotContains(t, out, "os.WriteFile")
	assert.Equal(t, 4, strings.Count(out, "\n"))

	_, ok := r.Lookup(slots.OsWriteFile)
	assert.True(t, ok, "uncalled functions are still ranked")
}

// A constant clock leaves every cycle total at zero; the calls must still show.
func TestZeroCycleClockListsCalls(t *testing.T) {
	var agg [slots.Count]counters.Counter
	agg[slots.StringsToUpper] = counters.Counter{Calls: 7}
	agg[slots.OsReadFile] = counters.Counter{Calls: 2}

	r := Rank(&agg)
	require.Len(t, r.Rows(), 2)
	assert.Zero(t, r.TotalCycles)
	for _, st := range r.Rows() {
		assert.Zero(t, st.Share)
	}

	out := render(t, &r, rawout.DefaultSeparator)
	assert.Contains(t, out, "strings.ToUpper,")
	assert.Contains(t, out, "os.ReadFile,")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestRowLayout(t *testing.T) {
	st := RankedStat{Slot: slots.StringsIndex, Cycles: 1234567, Calls: 1000, Share: 12.5}
	row := string(AppendRow(nil, &st, rawout.DefaultSeparator))

	require.True(t, strings.HasSuffix(row, "\n"))
	line := strings.TrimSuffix(row, "\n")
	assert.Len(t, line, 80)
	assert.Equal(t, byte(','), line[cyclesEnd])
	assert.Equal(t, byte(','), line[callsEnd])
	assert.True(t, strings.HasPrefix(line, "strings.Index,"))
	assert.True(t, strings.HasSuffix(line[:cyclesEnd], " 1_234_567"))
	assert.True(t, strings.HasSuffix(line[:callsEnd], " 1_000"))
	assert.True(t, strings.HasSuffix(line, " 12.50"))

	fields := strings.Split(line, ",")
	require.Len(t, fields, 4)
	cycles, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 0, 64)
	require.NoError(t, err, "grouped numbers parse as Go literals")
	assert.Equal(t, uint64(1234567), cycles)
}

func TestRowLayoutFullShare(t *testing.T) {
	st := RankedStat{Slot: slots.TimeSleep, Cycles: 10, Calls: 1, Share: 100}
	line := strings.TrimSuffix(string(AppendRow(nil, &st, 0)), "\n")
	assert.Len(t, line, 80)
	assert.True(t, strings.HasSuffix(line, ",100.00"))
}

func TestRowLayoutOverflowNeverTruncates(t *testing.T) {
	st := RankedStat{Slot: slots.StrconvFormatFloat, Cycles: math.MaxUint64, Calls: math.MaxUint64, Share: 100}
	line := strings.TrimSuffix(string(AppendRow(nil, &st, rawout.DefaultSeparator)), "\n")
	assert.Contains(t, line, "18_446_744_073_709_551_615,")
	assert.True(t, strings.HasSuffix(line, "18_446_744_073_709_551_615,100.00"))
}

func TestRankAndRowDoNotAllocate(t *testing.T) {
	var agg [slots.Count]counters.Counter
	agg[slots.FmtSprintf] = counters.Counter{Calls: 10, Cycles: 1000}
	var line [lineCap]byte

	allocs := testing.AllocsPerRun(50, func() {
		r := Rank(&agg)
		for i := range r.Rows() {
			_ = AppendRow(line[:0], &r.Stats[i], rawout.DefaultSeparator)
		}
	})
	assert.Zero(t, allocs)
}

func TestCopyCompareScenario(t *testing.T) {
	tbl := new(counters.Table)
	for i := 0; i < 1000; i++ {
		tbl.Record(0, slots.BytesClone, 30)
	}
	for i := 0; i < 500; i++ {
		tbl.Record(0, slots.BytesCompare, 12)
	}

	path := filepath.Join(t.TempDir(), "report.txt")
	r, err := Emit(tbl, path, rawout.DefaultSeparator)
	require.NoError(t, err)

	rows := r.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, slots.BytesClone, rows[0].Slot)
	assert.Equal(t, uint64(1000), rows[0].Calls)
	assert.Equal(t, slots.BytesCompare, rows[1].Slot)
	assert.Equal(t, uint64(500), rows[1].Calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Less(t, strings.Index(out, "bytes.Clone,"), strings.Index(out, "bytes.Compare,"))
	assert.True(t, strings.HasPrefix(out, Separator+"\n"+Header+"\n"))
	assert.True(t, strings.HasSuffix(out, Separator+"\n"))
}

func TestEmitUnavailableTarget(t *testing.T) {
	tbl := new(counters.Table)
	tbl.Record(0, slots.IoReadAll, 5)

	r, err := Emit(tbl, filepath.Join(t.TempDir(), "no", "such", "dir"), 0)
	assert.ErrorIs(t, err, rawout.ErrUnavailable)
	assert.Len(t, r.Rows(), 1, "the ranking is computed even when nothing is written")
}
