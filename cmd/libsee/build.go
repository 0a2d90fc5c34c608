// build.go implements the 'libsee build' command.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kolkov/libsee/cmd/libsee/runtime"
)

var buildCmd = &cobra.Command{
	Use:   "build [-o output] [-v] [--atomic] [--many-units] [build flags] [files|dirs]",
	Short: "Build an instrumented binary",
	Long: `Build instruments the given files or package directory and builds them
with go build. Any go build flag is passed through.

  --atomic       update counters atomically (exact counts under contention)
  --many-units   use 1024 execution-unit buckets instead of 256

Examples:
  libsee build main.go
  libsee build -o myapp main.go helper.go
  libsee build -ldflags="-s -w" .`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := parseBuildArgs(args)
		if err != nil {
			return err
		}
		if config.help {
			return cmd.Help()
		}
		return buildCommand(config, newLogger())
	},
}

// buildConfig holds configuration for the build command.
type buildConfig struct {
	// Source files or directories to instrument and build
	sourceFiles []string

	// Output binary name (from -o flag)
	outputFile string

	// Additional go build flags
	buildFlags []string

	// Working directory for build
	workDir string

	// Runtime variant
	options runtime.BuildOptions

	// Verbose output flag (-v)
	verbose bool

	// -h or --help was given
	help bool
}

// parseBuildArgs parses command-line arguments for 'libsee build'.
//
// It separates:
//   - Source files (.go files or directories)
//   - Output file (-o flag)
//   - libsee flags (-v, --atomic, --many-units)
//   - Go build flags (everything else)
//
// Returns buildConfig with parsed arguments.
func parseBuildArgs(args []string) (*buildConfig, error) {
	config := &buildConfig{
		sourceFiles: []string{},
		buildFlags:  []string{},
		options: runtime.BuildOptions{
			Atomic:    viper.GetBool(keyAtomic),
			ManyUnits: viper.GetBool(keyUnits),
		},
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	config.workDir = cwd

	expectingValue := false
	for i := 0; i < len(args); i++ {
		arg := args[i]

		// If previous flag expects a value, this is it (even if it starts with -)
		// Example: -ldflags "-s -w"
		if expectingValue {
			config.buildFlags = append(config.buildFlags, arg)
			expectingValue = false
			continue
		}

		switch {
		case arg == "-o":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("-o flag requires an argument")
			}
			i++
			config.outputFile = args[i]
		case strings.HasPrefix(arg, "-o="):
			config.outputFile = strings.TrimPrefix(arg, "-o=")
		case arg == "-h" || arg == "--help":
			config.help = true
		case isToolFlag(arg, config):
		case strings.HasPrefix(arg, "-"):
			config.buildFlags = append(config.buildFlags, arg)
			expectingValue = needsValue(arg)
		default:
			config.sourceFiles = append(config.sourceFiles, arg)
		}
	}

	// Default: build current directory if no sources specified
	if len(config.sourceFiles) == 0 {
		config.sourceFiles = []string{"."}
	}

	return config, nil
}

// isToolFlag consumes the flags libsee handles itself.
func isToolFlag(arg string, config *buildConfig) bool {
	switch arg {
	case "-v", "--verbose":
		config.verbose = true
		viper.Set(keyVerbose, true)
	case "--atomic":
		config.options.Atomic = true
	case "--many-units":
		config.options.ManyUnits = true
	default:
		return false
	}
	return true
}

// needsValue returns true if the flag expects a following value.
func needsValue(flag string) bool {
	valueFlags := []string{
		"-ldflags", "-gcflags", "-asmflags", "-gccgoflags",
		"-tags", "-installsuffix", "-buildmode", "-mod",
		"-modfile", "-overlay", "-pkgdir", "-toolexec", "-p",
	}

	for _, vf := range valueFlags {
		// Already has = format (e.g., -ldflags=-s)
		if strings.HasPrefix(flag, vf+"=") {
			return false
		}
		if flag == vf {
			return true
		}
	}

	return false
}

// buildCommand instruments the sources and builds them.
//
// Flow:
//  1. Create temporary workspace
//  2. Instrument source files (redirect intercepted calls)
//  3. Setup runtime linking (go.mod overlay)
//  4. Call 'go build' with instrumented code
//  5. Cleanup temporary files
func buildCommand(config *buildConfig, log zerolog.Logger) error {
	output, err := buildInstrumented(config, log)
	if err != nil {
		return err
	}
	fmt.Printf("Built successfully: %s\n", output)
	return nil
}

// buildInstrumented builds config.sourceFiles and returns the path of the
// binary.
func buildInstrumented(config *buildConfig, log zerolog.Logger) (string, error) {
	if err := runtime.ValidateRuntimeAvailable(); err != nil {
		return "", err
	}

	sources, err := absSources(config.sourceFiles, config.workDir)
	if err != nil {
		return "", err
	}

	ws, err := createWorkspace(sourceDir(sources[0]), log)
	if err != nil {
		return "", err
	}
	defer ws.cleanup()

	files, err := collectGoFiles(sources)
	if err != nil {
		return "", fmt.Errorf("failed to collect source files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no Go source files found")
	}

	stats, err := ws.populate(populateOptions{files: files})
	if err != nil {
		return "", fmt.Errorf("failed to instrument sources: %w", err)
	}
	log.Info().
		Int("calls", stats.Total()).
		Int("exits", stats.ExitsRewritten).
		Bool("main", stats.MainInjected).
		Msg("Instrumented sources")
	if !stats.MainInjected {
		log.Warn().Msg("no func main found: the report is printed only if the program calls see.Fini or see.Exit")
	}

	if err := ws.setupRuntimeLinking(); err != nil {
		return "", err
	}

	output := config.outputFile
	if output == "" {
		output = defaultOutput(sources[0])
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(config.workDir, output)
	}

	args := []string{"build", "-o", output}
	args = append(args, runtime.BuildFlags(config.buildFlags, config.options)...)
	for _, src := range sources {
		t, err := ws.target(src)
		if err != nil {
			return "", err
		}
		args = append(args, t)
	}

	log.Debug().Strs("args", args).Msg("go")
	cmd := ws.goCommand(args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build failed: %w", err)
	}
	return output, nil
}

// absSources makes the source arguments absolute and checks they exist.
func absSources(sources []string, workDir string) ([]string, error) {
	abs := make([]string, 0, len(sources))
	for _, src := range sources {
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, src)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", src, err)
		}
		abs = append(abs, path)
	}
	return abs, nil
}

// sourceDir returns path if it is a directory, else its parent.
func sourceDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// defaultOutput names the binary like go build does: after the first file
// or the directory.
func defaultOutput(src string) string {
	name := filepath.Base(src)
	if strings.HasSuffix(name, ".go") {
		name = strings.TrimSuffix(name, ".go")
	}
	if goruntime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// collectGoFiles finds all non-test .go files from the given sources.
//
// Sources can be:
//   - .go files directly
//   - directories (scans for .go files)
func collectGoFiles(sources []string) ([]string, error) {
	var goFiles []string

	for _, srcPath := range sources {
		info, err := os.Stat(srcPath)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", srcPath, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(srcPath, ".go") {
				goFiles = append(goFiles, srcPath)
			}
			continue
		}

		entries, err := os.ReadDir(srcPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", srcPath, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() && strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
				goFiles = append(goFiles, filepath.Join(srcPath, name))
			}
		}
	}

	return goFiles, nil
}
