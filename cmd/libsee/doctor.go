// doctor.go implements the 'libsee doctor' command.
package main

import (
	"fmt"
	"io"
	"os/exec"
	goruntime "runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/spf13/cobra"

	"github.com/kolkov/libsee/cmd/libsee/runtime"
	"github.com/kolkov/libsee/cmd/libsee/section"
	"github.com/kolkov/libsee/internal/see/cycles"
	"github.com/kolkov/libsee/see"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check how well this machine suits libsee",
	Long: `Doctor reports the cycle counter libsee reads on this machine and its
rate, how execution units are told apart, whether the logical CPU count fits
the execution-unit buckets, and where instrumented builds get the runtime
from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		checks := runChecks(200 * time.Millisecond)
		return printChecks(cmd.OutOrStdout(), checks)
	},
}

// check is one line of the doctor report.
type check struct {
	name   string
	value  string
	status string // "ok", "warn" or "info"
}

func runChecks(calibration time.Duration) []check {
	info := see.GetInfo()
	checks := []check{
		{"libsee", info.Version, "info"},
		{"platform", goruntime.GOOS + "/" + goruntime.GOARCH + ", " + goruntime.Version(), "info"},
	}

	if cycles.Supported {
		rate := cycles.Calibrate(calibration)
		checks = append(checks, check{"cycle counter", fmt.Sprintf("%s, %.2f ticks/ns", info.Clock, rate), "ok"})
	} else {
		checks = append(checks, check{"cycle counter", "none: every call counts 0 cycles", "warn"})
	}

	if model := cpuModel(); model != "" {
		checks = append(checks, check{"cpu", model, "info"})
	}
	checks = append(checks, unitCheck(info.MaxUnits, info.Units))

	counters := "plain (approximate under contention)"
	if info.AtomicCounters {
		counters = "atomic"
	}
	checks = append(checks, check{"counters", counters + "; build with --atomic to change", "info"})

	if path, err := exec.LookPath("go"); err == nil {
		checks = append(checks, check{"go command", path, "ok"})
	} else {
		checks = append(checks, check{"go command", "not found in PATH", "warn"})
	}

	if root, err := runtime.FindProjectRoot(); err == nil {
		checks = append(checks, check{"runtime", "local checkout " + root, "info"})
	} else {
		checks = append(checks, check{"runtime", runtime.RuntimeModulePath + " " + runtime.Version(), "info"})
	}
	return checks
}

// unitCheck compares the logical CPU count with the bucket count. More
// CPUs than buckets means units share counter cells.
func unitCheck(maxUnits int, source string) check {
	logical, err := cpu.Counts(true)
	if err != nil || logical <= 0 {
		logical = goruntime.NumCPU()
	}
	value := fmt.Sprintf("%d logical CPUs, %d buckets, ids from %s", logical, maxUnits, source)
	if logical > maxUnits {
		return check{"execution units", value + "; build with --many-units", "warn"}
	}
	return check{"execution units", value, "ok"}
}

func cpuModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return ""
	}
	return strings.TrimSpace(infos[0].ModelName)
}

func printChecks(out io.Writer, checks []check) error {
	rows := make([][]string, 0, len(checks))
	warnings := 0
	for _, c := range checks {
		if c.status == "warn" {
			warnings++
		}
		rows = append(rows, []string{c.name, c.value, c.status})
	}
	table := section.Table([]string{"Check", "Result", "Status"}, rows, nil, false, tableOptions())
	_, err := fmt.Fprintf(out, "%s\n%d warnings\n", table, warnings)
	return err
}
