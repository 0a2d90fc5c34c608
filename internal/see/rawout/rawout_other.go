// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package rawout

import (
	"errors"
	"syscall"
)

var errUnsupported = errors.New("rawout: not supported on this platform")

// Without dup(2) the standard streams are used as they are; closing a
// Writer never closes them.
func dupFD(fd int) (int, error) {
	if fd != 1 && fd != 2 {
		return -1, errUnsupported
	}
	return fd, nil
}

func openTTY() (int, error) {
	return -1, errUnsupported
}

func openPath(string) (int, error) {
	return -1, errUnsupported
}

func write(fd int, p []byte) (int, error) {
	switch fd {
	case 1:
		return syscall.Write(syscall.Stdout, p)
	case 2:
		return syscall.Write(syscall.Stderr, p)
	}
	return 0, errUnsupported
}

func closeFD(int) error {
	return nil
}

func interrupted(error) bool {
	return false
}
