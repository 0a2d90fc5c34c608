// Package section finds libsee reports in a program's output and turns
// them into data.
//
// An instrumented program prints its report to stdout when it exits,
// framed by separator lines:
//
//	----------------------------------LIBSEE----------------------------------------
//	function,           cycles,                                 calls,         share
//	strings.Index,                                   1_234_567,         1_000, 12.50
//	----------------------------------LIBSEE----------------------------------------
//
// Split copies everything outside the frames through unchanged and
// collects the sections. The rest of the package renders a section as a
// table, merges sections from several runs and exports one to Prometheus.
package section

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kolkov/libsee/internal/see/rawout"
	"github.com/kolkov/libsee/internal/see/report"
	"github.com/kolkov/libsee/internal/see/slots"
)

// ErrUnterminated is returned when the input ends inside a section, which
// happens when the program is killed while printing its report.
var ErrUnterminated = errors.New("section: report not terminated")

// Row is one function's line of a report.
type Row struct {
	Function string
	Cycles   uint64
	Calls    uint64
	Share    float64 // percent of the run's cycles
}

// CyclesPerCall returns the mean cost of one call, 0 if there were none.
func (r Row) CyclesPerCall() float64 {
	if r.Calls == 0 {
		return 0
	}
	return float64(r.Cycles) / float64(r.Calls)
}

// Group returns the function family of the row, "" for functions this
// version of libsee does not know.
func (r Row) Group() string {
	if s, ok := slots.ByName(r.Function); ok {
		return s.Info().Group.String()
	}
	return ""
}

// Section is one report.
type Section struct {
	Rows []Row

	// Raw is the report exactly as printed, frames included.
	Raw []byte

	// Truncated is set when the input ended before the closing frame.
	Truncated bool
}

// TotalCycles returns the sum of all rows' cycles.
func (s *Section) TotalCycles() uint64 {
	var n uint64
	for _, r := range s.Rows {
		n += r.Cycles
	}
	return n
}

// TotalCalls returns the sum of all rows' calls.
func (s *Section) TotalCalls() uint64 {
	var n uint64
	for _, r := range s.Rows {
		n += r.Calls
	}
	return n
}

// ParseRow parses one report row.
func ParseRow(line string) (Row, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != 4 {
		return Row{}, fmt.Errorf("section: row %q: want 4 fields, got %d", line, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] == "" {
		return Row{}, fmt.Errorf("section: row %q: empty function name", line)
	}

	cycles, err := rawout.ParseUint([]byte(fields[1]), rawout.DefaultSeparator)
	if err != nil {
		return Row{}, fmt.Errorf("section: row %q: cycles: %w", line, err)
	}
	calls, err := rawout.ParseUint([]byte(fields[2]), rawout.DefaultSeparator)
	if err != nil {
		return Row{}, fmt.Errorf("section: row %q: calls: %w", line, err)
	}
	share, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Row{}, fmt.Errorf("section: row %q: share: %w", line, err)
	}
	return Row{Function: fields[0], Cycles: cycles, Calls: calls, Share: share}, nil
}

type state int

const (
	outside state = iota
	wantHeader
	inRows
)

// Split reads a program's output from r, writes every line that is not
// part of a report to out unchanged, and returns the reports in order.
//
// A separator not followed by the header line is ordinary output. Lines
// inside a report that are not rows, such as output another goroutine
// printed while the report was being written, are passed through as well.
// If r ends inside a report, the partial section is returned together with
// ErrUnterminated.
func Split(r io.Reader, out io.Writer) ([]Section, error) {
	br := bufio.NewReader(r)
	var (
		sections []Section
		cur      Section
		pending  string // separator waiting for its header
		st       = outside
	)

	pass := func(line string) error {
		_, err := io.WriteString(out, line)
		return err
	}

	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			text := strings.TrimRight(line, "\r\n")
			var err error
			switch st {
			case outside:
				if text == report.Separator {
					pending = line
					st = wantHeader
				} else {
					err = pass(line)
				}
			case wantHeader:
				if text == report.Header {
					cur = Section{Raw: []byte(pending + line)}
					st = inRows
				} else if text == report.Separator {
					err = pass(pending)
					pending = line
				} else {
					err = pass(pending + line)
					st = outside
				}
			case inRows:
				if text == report.Separator {
					cur.Raw = append(cur.Raw, line...)
					sections = append(sections, cur)
					cur = Section{}
					st = outside
				} else if row, perr := ParseRow(text); perr == nil {
					cur.Rows = append(cur.Rows, row)
					cur.Raw = append(cur.Raw, line...)
				} else {
					err = pass(line)
				}
			}
			if err != nil {
				return sections, err
			}
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return sections, rerr
		}
	}

	switch st {
	case wantHeader:
		if err := pass(pending); err != nil {
			return sections, err
		}
	case inRows:
		cur.Truncated = true
		sections = append(sections, cur)
		return sections, ErrUnterminated
	}
	return sections, nil
}

// Parse returns the reports in r, ignoring everything else.
func Parse(r io.Reader) ([]Section, error) {
	return Split(r, io.Discard)
}

// ParseBytes is Parse for in-memory output.
func ParseBytes(b []byte) ([]Section, error) {
	return Parse(bytes.NewReader(b))
}
