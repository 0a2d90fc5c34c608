// test.go implements the 'libsee test' command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kolkov/libsee/cmd/libsee/runtime"
	"github.com/kolkov/libsee/cmd/libsee/section"
)

var testCmd = &cobra.Command{
	Use:   "test [flags] [packages] [-args test binary flags]",
	Short: "Test packages with instrumentation",
	Long: `Test instruments the module's sources, including _test.go files, and
runs go test. Each test binary writes a report for the calls made by its
tests, shown as a table unless --raw is given. Packages without TestMain
get one that writes the report when the tests finish. Tests always run,
cached results are bypassed with -count=1 unless -count is given.

Accepts the go test flags, plus --raw, --save, --prom, --atomic and
--many-units as for run.

Examples:
  libsee test ./...
  libsee test -v -run TestParse ./internal/parser
  libsee test --raw -count=1 .`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := parseTestArgs(args)
		if err != nil {
			return err
		}
		if config.help {
			return cmd.Help()
		}
		return testCommand(config, newLogger())
	},
}

// testConfig holds configuration for the test command.
type testConfig struct {
	// Package patterns to test (e.g., "./...", "./internal/...")
	packages []string

	// Test flags to pass to go test (-v, -run, -bench, etc.)
	testFlags []string

	// Arguments after -args, passed to the test binaries
	binaryArgs []string

	// Working directory
	workDir string

	// Runtime variant
	options runtime.BuildOptions

	// What to do with the reports
	sink reportSink

	// Verbose output flag (-v)
	verbose bool

	help bool
}

// parseTestArgs parses command-line arguments for 'libsee test'.
//
// The 'go test' command format is:
//
//	go test [build/test flags] [packages] [-args test binary flags]
//
// Returns testConfig with parsed arguments.
func parseTestArgs(args []string) (*testConfig, error) {
	config := &testConfig{
		packages:  []string{},
		testFlags: []string{},
		options: runtime.BuildOptions{
			Atomic:    viper.GetBool(keyAtomic),
			ManyUnits: viper.GetBool(keyUnits),
		},
		sink: reportSink{prom: viper.GetString(keyProm)},
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	config.workDir = cwd
	config.sink.program = filepath.Base(cwd)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "-args" || arg == "--args" {
			config.binaryArgs = append(config.binaryArgs, args[i+1:]...)
			break
		}

		n, err := parseSinkFlag(args, i, &config.sink)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			i += n - 1
			continue
		}

		switch arg {
		case "-h", "--help":
			config.help = true
			continue
		case "-v":
			// We use it too, and so does go test
			config.verbose = true
			viper.Set(keyVerbose, true)
			config.testFlags = append(config.testFlags, arg)
			continue
		case "--atomic":
			config.options.Atomic = true
			continue
		case "--many-units":
			config.options.ManyUnits = true
			continue
		}

		if strings.HasPrefix(arg, "-") {
			config.testFlags = append(config.testFlags, arg)

			// Check if this flag expects a value (next arg will be consumed)
			if testFlagNeedsValue(arg) && i+1 < len(args) {
				i++
				config.testFlags = append(config.testFlags, args[i])
			}
			continue
		}

		// No dash prefix - it's a package pattern
		config.packages = append(config.packages, arg)
	}

	// Default: test current directory if no packages specified
	if len(config.packages) == 0 {
		config.packages = []string{"."}
	}

	return config, nil
}

// testFlagNeedsValue returns true if the test flag expects a following value.
func testFlagNeedsValue(flag string) bool {
	// Already has = format (e.g., -run=TestFoo)
	if strings.Contains(flag, "=") {
		return false
	}

	valueFlags := []string{
		"-run", "-skip", "-bench", "-benchtime", "-blockprofile", "-blockprofilerate",
		"-coverprofile", "-covermode", "-coverpkg", "-count", "-cpu", "-cpuprofile",
		"-memprofile", "-memprofilerate", "-mutexprofile", "-mutexprofilefraction",
		"-outputdir", "-parallel", "-timeout", "-trace", "-shuffle", "-fuzz", "-fuzztime",
		"-exec", "-o",
	}

	for _, vf := range valueFlags {
		if flag == vf {
			return true
		}
	}

	return needsValue(flag)
}

// testCommand instruments the module including test files and runs
// 'go test' on it.
//
// Flow:
//  1. Create temporary workspace for the module
//  2. Instrument source files (including _test.go) and add TestMain
//  3. Setup runtime linking (go.mod overlay)
//  4. Call 'go test' with instrumented code
//  5. Render reports, forward test output and exit code
func testCommand(config *testConfig, log zerolog.Logger) error {
	exitCode, sections, err := runTests(config, os.Stdout, log)
	if err != nil {
		return err
	}
	if err := config.sink.finish(sections, nil, os.Stdout, log); err != nil {
		return err
	}
	if exitCode != 0 {
		return &exitError{code: exitCode}
	}
	return nil
}

// runTests runs the instrumented tests with their output going to out
// and returns the exit status of go test and the report of every test
// binary that ran.
//
// go test only shows the output of a passing package in verbose mode, so
// the reports do not travel over stdout: every test binary writes its
// own file, named after its process id, into a report directory.
func runTests(config *testConfig, out io.Writer, log zerolog.Logger) (int, []section.Section, error) {
	if err := runtime.ValidateRuntimeAvailable(); err != nil {
		return 1, nil, err
	}

	ws, err := createWorkspace(config.workDir, log)
	if err != nil {
		return 1, nil, err
	}
	defer ws.cleanup()

	var files []string
	if ws.modRoot == "" {
		files, err = collectTestGoFiles(config.workDir)
		if err != nil {
			return 1, nil, fmt.Errorf("failed to collect files from %s: %w", config.workDir, err)
		}
	}
	stats, err := ws.populate(populateOptions{tests: true, files: files})
	if err != nil {
		return 1, nil, fmt.Errorf("failed to instrument sources: %w", err)
	}
	log.Info().Int("calls", stats.Total()).Int("exits", stats.ExitsRewritten).Msg("Instrumented sources")

	if err := ws.setupRuntimeLinking(); err != nil {
		return 1, nil, err
	}

	reportDir, err := os.MkdirTemp("", "libsee-reports-*")
	if err != nil {
		return 1, nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(reportDir) }() // Best effort cleanup

	args := []string{"test"}
	args = append(args, runtime.BuildFlags(uncachedTestFlags(config.testFlags), config.options)...)
	for _, pattern := range config.packages {
		t, err := ws.targetPattern(pattern, config.workDir)
		if err != nil {
			return 1, nil, err
		}
		args = append(args, t)
	}
	if len(config.binaryArgs) > 0 {
		args = append(args, "-args")
		args = append(args, config.binaryArgs...)
	}

	log.Debug().Strs("args", args).Msg("go")
	cmd := ws.goCommand(args...)
	cmd.Env = append(cmd.Env, "LIBSEE_OUTPUT="+filepath.Join(reportDir, reportFilePattern))
	exitCode, _, err := execute(cmd, out)
	if err != nil && !errors.Is(err, section.ErrUnterminated) {
		return exitCode, nil, err
	}

	sections, err := collectReports(reportDir)
	if err != nil {
		return exitCode, nil, err
	}
	return exitCode, sections, nil
}

// reportFilePattern names the report file of one test binary. The
// runtime replaces %p with the process id.
const reportFilePattern = "libsee-%p.txt"

// uncachedTestFlags adds -count=1 unless the user chose a count: a cached
// test result comes without running the binary, and so without a report.
func uncachedTestFlags(flags []string) []string {
	for _, f := range flags {
		if f == "-count" || strings.HasPrefix(f, "-count=") ||
			f == "--count" || strings.HasPrefix(f, "--count=") {
			return flags
		}
	}
	return append(append([]string{}, flags...), "-count=1")
}

// collectReports reads the report files in dir in name order. A binary
// that died while writing leaves a truncated section, which is kept.
func collectReports(dir string) ([]section.Section, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "libsee-*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var all []section.Section
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sections, err := section.ParseBytes(data)
		if err != nil && !errors.Is(err, section.ErrUnterminated) {
			return nil, fmt.Errorf("failed to read report %s: %w", filepath.Base(path), err)
		}
		all = append(all, sections...)
	}
	return all, nil
}

// collectTestGoFiles collects all .go files from a directory (including _test.go).
func collectTestGoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var goFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			goFiles = append(goFiles, filepath.Join(dir, entry.Name()))
		}
	}

	return goFiles, nil
}
