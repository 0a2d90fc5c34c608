// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gc && !(linux && amd64)

package unit

//go:nosplit
func current() uint32 {
	return procID()
}

func source() string {
	return "proc"
}
