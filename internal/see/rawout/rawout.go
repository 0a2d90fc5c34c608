// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rawout writes bytes straight to file descriptors and formats
// numbers without the standard library's formatting packages.
//
// The report is produced while the process is shutting down, from inside
// the profiler that instruments fmt, strconv, os and io. Nothing here may
// route through those packages: output goes to the kernel with write(2)
// via golang.org/x/sys/unix and numbers are converted by hand into
// caller-provided buffers.
//
// The package imports neither fmt, strconv nor os; a test in package
// report enforces it.
package rawout

import (
	"errors"
	"io"
)

// Output targets understood by Open.
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
	TargetTTY    = "tty"
)

// ErrUnavailable is returned by Open when no destination could be opened.
var ErrUnavailable = errors.New("rawout: output destination unavailable")

// Writer writes to a raw file descriptor.
//
// A Writer returned by Open owns its descriptor and must be closed. The
// Stdout and Stderr writers do not own theirs; closing them is a no-op.
type Writer struct {
	fd     int
	owned  bool
	closed bool
}

// Standard-stream writers. They write to descriptors 1 and 2 directly.
var (
	Stdout = &Writer{fd: 1}
	Stderr = &Writer{fd: 2}
)

// Open opens the report destination.
//
// Targets:
//   - "" or "stdout": a duplicate of descriptor 1, falling back to the
//     controlling terminal when descriptor 1 is already closed
//   - "stderr": a duplicate of descriptor 2
//   - "tty": the controlling terminal
//   - anything else: a file path, created or truncated
//
// The standard streams are duplicated rather than used directly so the
// report survives a program that closed os.Stdout, and so Close never
// closes the program's own descriptors.
func Open(target string) (*Writer, error) {
	var (
		fd  int
		err error
	)
	switch target {
	case "", TargetStdout:
		fd, err = dupFD(1)
		if err != nil {
			fd, err = openTTY()
		}
	case TargetStderr:
		fd, err = dupFD(2)
	case TargetTTY:
		fd, err = openTTY()
	default:
		fd, err = openPath(target)
	}
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return &Writer{fd: fd, owned: true}, nil
}

// FD returns the descriptor w writes to.
func (w *Writer) FD() int {
	return w.fd
}

// Write writes all of p, retrying on partial writes and EINTR.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, io.ErrClosedPipe
	}
	return writeAll(w.fd, p)
}

// WriteString writes s without converting it to a byte slice first.
func (w *Writer) WriteString(s string) (int, error) {
	var buf [256]byte
	written := 0
	for written < len(s) {
		n := copy(buf[:], s[written:])
		m, err := w.Write(buf[:n])
		written += m
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Close releases the descriptor if w owns it. It is safe to call more
// than once.
func (w *Writer) Close() error {
	if !w.owned || w.closed {
		return nil
	}
	w.closed = true
	return closeFD(w.fd)
}

// WriteFD writes p to descriptor fd, ignoring errors. It is meant for
// diagnostics emitted where nothing could be done about a failure.
func WriteFD(fd int, p []byte) {
	_, _ = writeAll(fd, p)
}

func writeAll(fd int, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := write(fd, p[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			if interrupted(err) {
				continue
			}
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}
