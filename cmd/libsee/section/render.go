package section

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kolkov/libsee/internal/see/rawout"
)

// Options controls table rendering.
type Options struct {
	// NoColor renders without colors or bold text.
	NoColor bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	totalStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Table renders rows under headers. Columns listed in numeric are right
// aligned. With total set, the last row is set apart as a totals line.
func Table(headers []string, rows [][]string, numeric []int, total bool, opts Options) string {
	isNumeric := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case opts.NoColor:
				s = cellStyle
			case row == table.HeaderRow:
				s = headerStyle
			case total && row == len(rows)-1:
				s = totalStyle
			default:
				s = cellStyle
			}
			if isNumeric[col] && row != table.HeaderRow {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	if !opts.NoColor {
		t = t.BorderStyle(borderStyle)
	}
	return t.String()
}

// Render writes s as a table with one line per function and a totals line.
func Render(w io.Writer, s *Section, opts Options) error {
	rows := make([][]string, 0, len(s.Rows)+1)
	for i, r := range s.Rows {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			r.Function,
			r.Group(),
			formatUint(r.Cycles),
			formatUint(r.Calls),
			formatFloat(r.CyclesPerCall(), 1),
			formatFloat(r.Share, 2),
		})
	}
	total := len(rows) > 0
	if total {
		totalCycles := s.TotalCycles()
		totalCalls := s.TotalCalls()
		perCall := 0.0
		if totalCalls > 0 {
			perCall = float64(totalCycles) / float64(totalCalls)
		}
		rows = append(rows, []string{
			"", "total", "",
			formatUint(totalCycles),
			formatUint(totalCalls),
			formatFloat(perCall, 1),
			formatFloat(100, 2),
		})
	}

	out := Table(
		[]string{"#", "Function", "Group", "Cycles", "Calls", "Cycles/call", "Share %"},
		rows, []int{0, 3, 4, 5, 6}, total, opts)

	var b strings.Builder
	b.WriteString(out)
	b.WriteByte('\n')
	if len(s.Rows) == 0 {
		b.WriteString("no intercepted calls\n")
	}
	if s.Truncated {
		b.WriteString("report truncated: the program stopped while printing it\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatUint groups digits in threes with commas.
func formatUint(v uint64) string {
	return string(rawout.AppendUint(nil, v, ','))
}

func formatFloat(v float64, digits int) string {
	return string(rawout.AppendFixed(nil, v, digits))
}
