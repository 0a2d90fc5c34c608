// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && (amd64 || arm64)

package engine

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/kolkov/libsee/internal/see/rawout"
)

// kernelSigaction is struct sigaction as the rt_sigaction system call
// takes it on amd64 and arm64.
type kernelSigaction struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

// abortProcess writes msg to fd 2 and kills the process with SIGABRT.
//
// The Go runtime handles SIGABRT itself and turns it into a goroutine
// dump and exit status 2, so the default disposition is restored with a
// raw rt_sigaction first. If the signal does not terminate the process,
// it exits with status 134, what a shell reports for SIGABRT.
func abortProcess(msg string) {
	rawout.WriteFD(2, []byte(msg))

	var sa kernelSigaction // SIG_DFL
	_, _, _ = unix.RawSyscall6(unix.SYS_RT_SIGACTION, uintptr(unix.SIGABRT),
		uintptr(unsafe.Pointer(&sa)), 0, unsafe.Sizeof(sa.mask), 0, 0)
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)

	time.Sleep(100 * time.Millisecond)
	unix.Exit(134)
}
