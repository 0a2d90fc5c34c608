// Package instrument rewrites Go source files so that calls to intercepted
// standard-library functions go through the libsee wrappers.
//
// This package provides the core functionality of the libsee tool. It
// parses a Go source file, finds calls whose target is an intercepted
// function, redirects them to the wrapper with the same signature in
// package see, and makes sure the report is printed when main returns
// or the program calls os.Exit.
//
// Algorithm:
//  1. Parse the source file using go/parser
//  2. Map the file's import names to intercepted import paths
//  3. Rewrite every call pkg.Func(...) that names an intercepted function
//  4. Rewrite os.Exit(...) to see.Exit(...)
//  5. Inject see.Init() and defer see.Fini() at the top of func main
//  6. Add the see import and drop imports that are no longer used
//  7. Generate the instrumented code using go/printer
//
// Example Transformation:
//
//	// INPUT (original code):
//	import "strings"
//
//	func main() {
//		n := strings.Index(s, "x")
//	}
//
//	// OUTPUT (instrumented code):
//	import "github.com/kolkov/libsee/see"
//
//	func main() {
//		see.Init()
//		defer see.Fini()
//		n := see.StringsIndex(s, "x")
//	}
//
// Function values (f := strings.Index) are left alone: the wrapper has
// the same type, but a value may be compared or stored where the
// identity of the real function matters.
//
// Thread Safety: This package is NOT thread-safe. Callers must ensure
// single-threaded access to a given file.
package instrument

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
)

const (
	// SeePackageImportPath is the import path of the wrapper package.
	SeePackageImportPath = "github.com/kolkov/libsee/see"

	// SeePackageAlias is the local name used for the wrapper package,
	// unless the file already uses that name for something else.
	SeePackageAlias = "see"

	// fallbackAlias is used when SeePackageAlias is taken.
	fallbackAlias = "libsee"
)

// Options controls what InstrumentFile does besides rewriting calls.
type Options struct {
	// SkipMainInjection disables the see.Init/see.Fini injection into
	// func main.
	SkipMainInjection bool

	// Reserved holds the package-level names declared by the other files
	// of the package. The see import is never given one of these names,
	// since an import name may not clash with the package block.
	Reserved map[string]bool
}

// InstrumentResult holds the result of instrumentation.
//
//nolint:revive // InstrumentResult is clear and descriptive despite stuttering
type InstrumentResult struct {
	Code  string          // Instrumented source code
	Stats InstrumentStats // Instrumentation statistics
}

// Changed reports whether the file differs from its input.
func (r *InstrumentResult) Changed() bool {
	return r.Stats.Total() > 0 || r.Stats.ExitsRewritten > 0 || r.Stats.MainInjected
}

// InstrumentFile rewrites a single Go source file.
//
// Parameters:
//   - filename: Path to the Go source file (used for error messages)
//   - src: Source code to instrument. Can be:
//   - nil: Read from filename
//   - []byte: Use provided bytes
//   - string: Use provided string
//   - io.Reader: Read from reader
//
// Syntax errors are returned as *InstrumentationError.
//
// Example:
//
//	result, err := InstrumentFile("main.go", nil)
//	if err != nil {
//	    log.Fatalf("Instrumentation failed: %v", err)
//	}
//	fmt.Printf("Rewrote %d calls\n", result.Stats.Total())
func InstrumentFile(filename string, src interface{}) (*InstrumentResult, error) {
	return InstrumentFileWithOptions(filename, src, Options{})
}

// InstrumentFileWithOptions is InstrumentFile with explicit options.
func InstrumentFileWithOptions(filename string, src interface{}, opts Options) (*InstrumentResult, error) {
	// Comments are kept so that build constraints and directives survive.
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, syntaxError(filename, err)
	}

	stats := Instrument(fset, file, opts)

	var buf bytes.Buffer
	cfg := &printer.Config{
		Mode:     printer.UseSpaces | printer.TabIndent,
		Tabwidth: 8,
	}
	if err := cfg.Fprint(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	return &InstrumentResult{
		Code:  buf.String(),
		Stats: stats,
	}, nil
}

// Instrument rewrites an already parsed file in place. The file must have
// been parsed with object resolution enabled (the go/parser default), which
// is how shadowed package names are told apart from imports.
func Instrument(fset *token.FileSet, file *ast.File, opts Options) InstrumentStats {
	r := newRewriter(fset, file, opts.Reserved)
	r.rewriteCalls()
	if !opts.SkipMainInjection {
		r.injectMain()
	}
	r.fixImports()
	return r.stats
}

// syntaxError converts a parser error into an InstrumentationError at the
// position of the first syntax error.
func syntaxError(filename string, err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		return &InstrumentationError{
			File:       first.Pos.Filename,
			Line:       first.Pos.Line,
			Column:     first.Pos.Column,
			Message:    first.Msg,
			Suggestion: "Make sure the file compiles with go build before instrumenting it",
		}
	}
	return fmt.Errorf("failed to parse file %s: %w", filename, err)
}
