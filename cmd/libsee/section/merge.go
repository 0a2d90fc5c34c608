package section

import (
	"fmt"
	"io"
	"slices"

	"github.com/montanaflynn/stats"
)

// Summary is one function's statistics across several runs.
type Summary struct {
	Function string

	// Runs is the number of runs that called the function. Runs that did
	// not count as zero in the statistics below.
	Runs int

	MeanCycles   float64
	StdDevCycles float64
	MeanCalls    float64
	Share        float64 // percent of the mean total cycles
}

// Merge combines the reports of several runs of the same program. The
// result is ordered by mean cycles, most expensive first, then by the
// order functions first appear.
func Merge(sections []Section) ([]Summary, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("section: nothing to merge")
	}

	type series struct {
		cycles stats.Float64Data
		calls  stats.Float64Data
		runs   int
	}
	var order []string
	byName := make(map[string]*series)
	for i, s := range sections {
		for _, r := range s.Rows {
			sr, ok := byName[r.Function]
			if !ok {
				sr = &series{
					cycles: make(stats.Float64Data, len(sections)),
					calls:  make(stats.Float64Data, len(sections)),
				}
				byName[r.Function] = sr
				order = append(order, r.Function)
			}
			sr.cycles[i] += float64(r.Cycles)
			sr.calls[i] += float64(r.Calls)
			sr.runs++
		}
	}

	sums := make([]Summary, 0, len(order))
	var total float64
	for _, name := range order {
		sr := byName[name]
		mean, err := stats.Mean(sr.cycles)
		if err != nil {
			return nil, fmt.Errorf("section: %s: %w", name, err)
		}
		sd, err := stats.StandardDeviation(sr.cycles)
		if err != nil {
			return nil, fmt.Errorf("section: %s: %w", name, err)
		}
		calls, err := sr.calls.Mean()
		if err != nil {
			return nil, fmt.Errorf("section: %s: %w", name, err)
		}
		sums = append(sums, Summary{
			Function:     name,
			Runs:         sr.runs,
			MeanCycles:   mean,
			StdDevCycles: sd,
			MeanCalls:    calls,
		})
		total += mean
	}
	if total > 0 {
		for i := range sums {
			sums[i].Share = 100 * sums[i].MeanCycles / total
		}
	}

	slices.SortStableFunc(sums, func(a, b Summary) int {
		switch {
		case a.MeanCycles > b.MeanCycles:
			return -1
		case a.MeanCycles < b.MeanCycles:
			return 1
		}
		return 0
	})
	return sums, nil
}

// RenderSummary writes merged statistics as a table.
func RenderSummary(w io.Writer, sums []Summary, runs int, opts Options) error {
	rows := make([][]string, 0, len(sums))
	for i, s := range sums {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			s.Function,
			fmt.Sprintf("%d/%d", s.Runs, runs),
			formatFloat(s.MeanCycles, 1),
			formatFloat(s.StdDevCycles, 1),
			formatFloat(s.MeanCalls, 1),
			formatFloat(s.Share, 2),
		})
	}
	out := Table(
		[]string{"#", "Function", "Runs", "Mean cycles", "Std dev", "Mean calls", "Share %"},
		rows, []int{0, 2, 3, 4, 5, 6}, false, opts)
	_, err := fmt.Fprintf(w, "%s\n%d runs merged\n", out, runs)
	return err
}
