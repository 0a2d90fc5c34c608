// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm64

package cycles

// Supported reports whether Now reads a real hardware counter.
const Supported = true

// Source names the hardware counter read by Now.
const Source = "cntvct_el0"

// Now returns the current value of the virtual count register.
//
// Implemented in cycles_arm64.s.
//
//go:noescape
func Now() uint64
