// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !gc

package unit

func current() uint32 {
	return 0
}

func source() string {
	return "none"
}
