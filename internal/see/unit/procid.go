// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gc

package unit

import _ "unsafe" // for go:linkname

// procPin disables preemption and returns the id of the current P.
//
//go:linkname procPin runtime.procPin
func procPin() int

//go:linkname procUnpin runtime.procUnpin
func procUnpin()

// procID returns the id of the P running the caller. The goroutine is
// pinned only for the read, so the id may be stale by the time it is used;
// a stale id costs accuracy, never correctness.
//
//go:nosplit
func procID() uint32 {
	id := procPin()
	procUnpin()
	return uint32(id)
}
