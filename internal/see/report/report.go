// Package report ranks the aggregated counters and renders the exit
// report.
//
// The report is rendered while the process shuts down, so this package
// formats with rawout and writes through rawout descriptors only. It must
// never call a function libsee intercepts; layering_test.go checks the
// imports and calls of every package on this path.
package report

import (
	"io"

	"github.com/kolkov/libsee/internal/see/counters"
	"github.com/kolkov/libsee/internal/see/rawout"
	"github.com/kolkov/libsee/internal/see/slots"
)

// Framing lines of the report.
const (
	Separator = "----------------------------------LIBSEE----------------------------------------"
	Header    = "function,           cycles,                                 calls,         share"
)

// Row layout: each value is right-aligned so that it ends just before the
// given column. A value wider than its column pushes the rest of the row
// right instead of being cut.
const (
	cyclesEnd = 58
	callsEnd  = 73
	shareEnd  = 80

	// ShareDigits is the number of fractional digits of the share column.
	ShareDigits = 2
)

// lineCap fits the widest possible row: a long name, two grouped uint64
// values and a share, with padding.
const lineCap = 192

var (
	separatorLine = []byte(Separator + "\n")
	headerLine    = []byte(Header + "\n")
)

// RankedStat is one function's line in the report.
type RankedStat struct {
	Slot   slots.Slot
	Cycles uint64
	Calls  uint64
	Share  float64 // percent of all measured cycles
}

// Ranking is every function's statistics, sorted by descending cycles.
// It is a fixed-size value so that ranking never allocates.
type Ranking struct {
	Stats       [slots.Count]RankedStat
	TotalCycles uint64
	TotalCalls  uint64

	rows int
}

// Rank turns aggregated counters into a Ranking.
//
// Functions are ordered by cycles, most expensive first. Ties are broken
// by calls, then by slot order, so every function that was called comes
// before every function that was not. Shares are 0 when no cycles were
// measured at all.
func Rank(agg *[slots.Count]counters.Counter) Ranking {
	var r Ranking
	for s := range agg {
		r.TotalCycles += agg[s].Cycles
		r.TotalCalls += agg[s].Calls
	}
	for s := range agg {
		st := RankedStat{
			Slot:   slots.Slot(s),
			Cycles: agg[s].Cycles,
			Calls:  agg[s].Calls,
		}
		if r.TotalCycles > 0 {
			st.Share = 100 * float64(st.Cycles) / float64(r.TotalCycles)
		}
		if st.Calls > 0 || st.Cycles > 0 {
			r.rows++
		}
		r.Stats[s] = st
	}
	sortStats(&r.Stats)
	return r
}

// before reports whether a ranks above b.
func before(a, b *RankedStat) bool {
	if a.Cycles != b.Cycles {
		return a.Cycles > b.Cycles
	}
	return a.Calls > b.Calls
}

// sortStats is an insertion sort: stable, in place and allocation free.
// The input is small and fixed, so its quadratic worst case is irrelevant.
func sortStats(a *[slots.Count]RankedStat) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i
		for j > 0 && before(&x, &a[j-1]) {
			a[j] = a[j-1]
			j--
		}
		a[j] = x
	}
}

// Rows returns the functions that appear in the report: those that were
// called at least once, in rank order.
func (r *Ranking) Rows() []RankedStat {
	return r.Stats[:r.rows]
}

// Lookup returns the statistics of function s.
func (r *Ranking) Lookup(s slots.Slot) (RankedStat, bool) {
	for _, st := range r.Stats {
		if st.Slot == s {
			return st, true
		}
	}
	return RankedStat{}, false
}

// Render writes the report: separator, header, one row per called
// function, separator. sep is the digit-grouping separator, 0 for none.
func Render(w io.Writer, r *Ranking, sep byte) error {
	if _, err := w.Write(separatorLine); err != nil {
		return err
	}
	if _, err := w.Write(headerLine); err != nil {
		return err
	}
	var line [lineCap]byte
	for i := range r.Rows() {
		if _, err := w.Write(AppendRow(line[:0], &r.Stats[i], sep)); err != nil {
			return err
		}
	}
	_, err := w.Write(separatorLine)
	return err
}

// AppendRow appends the report row of st, newline included, to dst.
func AppendRow(dst []byte, st *RankedStat, sep byte) []byte {
	start := len(dst)
	var num [32]byte

	dst = append(dst, st.Slot.Name()...)
	dst = append(dst, ',')

	field := rawout.AppendUint(num[:0], st.Cycles, sep)
	dst = rawout.AppendPadLeft(dst, field, cyclesEnd-(len(dst)-start))
	dst = append(dst, ',')

	field = rawout.AppendUint(num[:0], st.Calls, sep)
	dst = rawout.AppendPadLeft(dst, field, callsEnd-(len(dst)-start))
	dst = append(dst, ',')

	field = rawout.AppendFixed(num[:0], st.Share, ShareDigits)
	dst = rawout.AppendPadLeft(dst, field, shareEnd-(len(dst)-start))
	return append(dst, '\n')
}

// Emit aggregates t, ranks it and writes the report to target (see
// rawout.Open). The ranking is returned even when the destination could
// not be opened, in which case nothing is written.
func Emit(t *counters.Table, target string, sep byte) (Ranking, error) {
	agg := t.Aggregate()
	r := Rank(&agg)

	w, err := rawout.Open(target)
	if err != nil {
		return r, err
	}
	err = Render(w, &r, sep)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return r, err
}
