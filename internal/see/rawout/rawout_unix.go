// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package rawout

import "golang.org/x/sys/unix"

const devTTY = "/dev/tty"

func dupFD(fd int) (int, error) {
	return unix.Dup(fd)
}

func openTTY() (int, error) {
	return unix.Open(devTTY, unix.O_WRONLY|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
}

func openPath(path string) (int, error) {
	return unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC|unix.O_CLOEXEC, 0o644)
}

func write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

func closeFD(fd int) error {
	return unix.Close(fd)
}

func interrupted(err error) bool {
	return err == unix.EINTR
}
