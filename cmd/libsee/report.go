// report.go implements the 'libsee report' command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kolkov/libsee/cmd/libsee/section"
)

var reportCmd = &cobra.Command{
	Use:   "report FILE...",
	Short: "Show saved reports, merging several runs",
	Long: `Report reads files holding libsee reports, such as those written by
'libsee run --save' or the raw output of an instrumented program, and shows
them as a table. With more than one report, the runs are merged: each
function gets the mean and standard deviation of its cycles across runs.
Use - to read standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := readSections(args)
		if err != nil {
			return err
		}
		return showReports(cmd.OutOrStdout(), sections, viper.GetString(keyProm))
	},
}

func init() {
	reportCmd.Flags().String(keyProm, "", "write the report of a single run as Prometheus metrics to this file")
	_ = viper.BindPFlag(keyProm, reportCmd.Flags().Lookup(keyProm))
}

// readSections parses every report in the given files.
func readSections(paths []string) ([]section.Section, error) {
	var all []section.Section
	for _, path := range paths {
		var r io.Reader = os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer func() { _ = f.Close() }()
			r = f
		}

		sections, err := section.Parse(r)
		if err != nil && !errors.Is(err, section.ErrUnterminated) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(sections) == 0 {
			return nil, fmt.Errorf("%s: no libsee report found", path)
		}
		all = append(all, sections...)
	}
	return all, nil
}

// showReports renders a single report as is and merges several.
func showReports(out io.Writer, sections []section.Section, prom string) error {
	if len(sections) == 1 {
		if prom != "" {
			if err := section.WritePrometheus(prom, &sections[0], "report"); err != nil {
				return err
			}
		}
		return section.Render(out, &sections[0], tableOptions())
	}
	if prom != "" {
		return fmt.Errorf("--prom needs a single report, got %d", len(sections))
	}

	sums, err := section.Merge(sections)
	if err != nil {
		return err
	}
	return section.RenderSummary(out, sums, len(sections), tableOptions())
}
