// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux && (amd64 || arm64))

package engine

import (
	"os"

	"github.com/kolkov/libsee/internal/see/rawout"
)

// abortProcess writes msg to fd 2 and exits with status 134, what a
// shell reports for SIGABRT. Raising SIGABRT would only produce the Go
// runtime's goroutine dump.
func abortProcess(msg string) {
	rawout.WriteFD(2, []byte(msg))
	os.Exit(134)
}
