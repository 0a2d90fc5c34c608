// Package main implements the libsee CLI tool.
//
// libsee measures how much time a Go program spends in common
// standard-library functions. It works by:
//
//  1. Parsing Go source files using go/ast
//  2. Redirecting calls such as strings.Index to counting wrappers
//  3. Linking the libsee runtime, which prints a ranked report at exit
//  4. Building/running the instrumented code
//
// Usage:
//
//	libsee build main.go       # Build an instrumented binary
//	libsee run main.go         # Run and show the report as a table
//	libsee test ./...          # Test with instrumentation
//	libsee report run*.txt     # Merge saved reports
//
// build, run and test accept the flags of go build, go run and go test.
package main

import (
	"errors"
	"fmt"
	"os"
)

// exitError carries a child process exit status through cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
