// run.go implements the 'libsee run' command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kolkov/libsee/cmd/libsee/section"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] files|dir [arguments...]",
	Short: "Build and run an instrumented program, then show its report",
	Long: `Run instruments and builds the given files, runs the binary with the
remaining arguments and shows its libsee report as a table. Everything else
the program prints to stdout is passed through unchanged.

  --raw          print the report as the program wrote it
  --save FILE    also write the raw report to FILE (for libsee report)
  --prom FILE    also write the report as Prometheus metrics to FILE
  --atomic       update counters atomically
  --many-units   use 1024 execution-unit buckets instead of 256
  -v             print per-file instrumentation details

Go build flags may appear before the files.

Examples:
  libsee run main.go
  libsee run --save run1.txt main.go -n 1000
  libsee run -tags netgo . --listen :8080`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, programArgs, err := parseRunArgs(args)
		if err != nil {
			return err
		}
		if config.build.help {
			return cmd.Help()
		}
		return runCommand(config, programArgs, newLogger())
	},
}

// reportSink decides what happens to the reports found in a child's
// output.
type reportSink struct {
	raw     bool   // print sections verbatim
	save    string // file for the raw sections
	prom    string // Prometheus textfile
	program string // program label for Prometheus
}

// runConfig holds configuration for the run command.
type runConfig struct {
	build *buildConfig
	sink  reportSink
}

// parseSinkFlag consumes the report flags shared by run and test. It
// returns how many arguments were used, 0 if arg is not one of them.
func parseSinkFlag(args []string, i int, sink *reportSink) (int, error) {
	arg := args[i]
	switch {
	case arg == "--raw":
		sink.raw = true
		return 1, nil
	case arg == "--save" || arg == "--prom":
		if i+1 >= len(args) {
			return 0, fmt.Errorf("%s flag requires an argument", arg)
		}
		if arg == "--save" {
			sink.save = args[i+1]
		} else {
			sink.prom = args[i+1]
		}
		return 2, nil
	case strings.HasPrefix(arg, "--save="):
		sink.save = strings.TrimPrefix(arg, "--save=")
		return 1, nil
	case strings.HasPrefix(arg, "--prom="):
		sink.prom = strings.TrimPrefix(arg, "--prom=")
		return 1, nil
	}
	return 0, nil
}

// parseRunArgs separates source files from program arguments.
//
// The format follows 'go run':
//
//	libsee run [flags] file.go [arguments...]
//	libsee run [flags] file1.go file2.go [arguments...]
//	libsee run [flags] dir [arguments...]
//
// Flags come before the sources. Everything after the sources belongs to
// the program.
func parseRunArgs(args []string) (*runConfig, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("no source files specified")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	config := &runConfig{
		build: &buildConfig{workDir: cwd},
		sink:  reportSink{prom: viper.GetString(keyProm)},
	}
	config.build.options.Atomic = viper.GetBool(keyAtomic)
	config.build.options.ManyUnits = viper.GetBool(keyUnits)

	var programArgs []string
	sawGoFile := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if sawGoFile {
			if filepath.Ext(arg) == ".go" && len(programArgs) == 0 {
				config.build.sourceFiles = append(config.build.sourceFiles, arg)
				continue
			}
			programArgs = append(programArgs, arg)
			continue
		}

		if n, err := parseSinkFlag(args, i, &config.sink); err != nil {
			return nil, nil, err
		} else if n > 0 {
			i += n - 1
			continue
		}

		switch {
		case arg == "-h" || arg == "--help":
			config.build.help = true
			return config, nil, nil
		case arg == "-o":
			return nil, nil, fmt.Errorf("-o is not supported by run, use build")
		case isToolFlag(arg, config.build):
		case strings.HasPrefix(arg, "-"):
			config.build.buildFlags = append(config.build.buildFlags, arg)
			if needsValue(arg) && i+1 < len(args) {
				i++
				config.build.buildFlags = append(config.build.buildFlags, args[i])
			}
		case filepath.Ext(arg) == ".go":
			config.build.sourceFiles = append(config.build.sourceFiles, arg)
			sawGoFile = true
		default:
			// A package directory: the rest are program arguments.
			config.build.sourceFiles = append(config.build.sourceFiles, arg)
			programArgs = append(programArgs, args[i+1:]...)
			i = len(args)
		}
	}

	if len(config.build.sourceFiles) == 0 {
		return nil, nil, fmt.Errorf("no Go source files specified")
	}

	first := config.build.sourceFiles[0]
	if filepath.Ext(first) == ".go" {
		config.sink.program = strings.TrimSuffix(filepath.Base(first), ".go")
	} else {
		config.sink.program = filepath.Base(filepath.Join(cwd, first))
	}

	return config, programArgs, nil
}

// runCommand builds the program to a temporary binary, runs it and
// processes its report.
func runCommand(config *runConfig, programArgs []string, log zerolog.Logger) error {
	tempBinary, err := buildTemporary(config.build, log)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tempBinary) }() // Best effort cleanup

	exitCode, sections, splitErr := executeBinary(tempBinary, programArgs, os.Stdout)
	if err := config.sink.finish(sections, splitErr, os.Stdout, log); err != nil {
		return err
	}
	if exitCode != 0 {
		return &exitError{code: exitCode}
	}
	return nil
}

// buildTemporary builds the instrumented code to a temporary binary.
//
// Returns:
//   - Path to temporary binary
//   - Error if build fails
func buildTemporary(config *buildConfig, log zerolog.Logger) (string, error) {
	tempBinary, err := os.CreateTemp("", "libsee-run-*.exe")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempBinary.Name()
	_ = tempBinary.Close() // Ignore close error on temp file

	config.outputFile = tempPath
	if _, err := buildInstrumented(config, log); err != nil {
		_ = os.Remove(tempPath) // Cleanup on error, ignore removal errors
		return "", err
	}
	return tempPath, nil
}

// executeBinary runs the instrumented binary with given arguments.
//
// stdin and stderr are forwarded. The report goes to stdout, which is
// passed through out except for the report sections, which are returned.
//
// Returns:
//   - Exit code of the process (0 = success)
//   - The reports found in stdout
//   - The error from reading stdout, if any
func executeBinary(binaryPath string, args []string, out io.Writer) (int, []section.Section, error) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "LIBSEE_OUTPUT=stdout")
	return execute(cmd, out)
}

// execute runs cmd with stdout split into pass-through output and report
// sections.
func execute(cmd *exec.Cmd, out io.Writer) (int, []section.Section, error) {
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 1, nil, err
	}

	// The child gets the terminal's interrupt as well. Outlive it so that
	// whatever it printed is still processed.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return 1, nil, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	sections, splitErr := section.Split(stdout, out)
	if splitErr != nil && !errors.Is(splitErr, section.ErrUnterminated) {
		// Keep draining so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), sections, splitErr
		}
		return 1, sections, err
	}
	return 0, sections, splitErr
}

// finish shows, saves and exports the reports.
func (s *reportSink) finish(sections []section.Section, splitErr error, out io.Writer, log zerolog.Logger) error {
	if splitErr != nil {
		if !errors.Is(splitErr, section.ErrUnterminated) {
			return fmt.Errorf("failed to read program output: %w", splitErr)
		}
		log.Warn().Msg("the program stopped while printing its report")
	}
	if len(sections) == 0 {
		log.Warn().Msg("no libsee report found in the program output")
		return nil
	}

	var raw []byte
	for i := range sections {
		sec := &sections[i]
		raw = append(raw, sec.Raw...)
		if s.raw {
			if _, err := out.Write(sec.Raw); err != nil {
				return err
			}
			continue
		}
		if err := section.Render(out, sec, tableOptions()); err != nil {
			return err
		}
	}

	if s.save != "" {
		if err := os.WriteFile(s.save, raw, 0o644); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		log.Info().Str("file", s.save).Msg("Saved report")
	}
	if s.prom != "" {
		last := &sections[len(sections)-1]
		if err := section.WritePrometheus(s.prom, last, s.program); err != nil {
			return err
		}
		log.Info().Str("file", s.prom).Msg("Wrote Prometheus metrics")
	}
	return nil
}
