// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package cycles

// Supported reports whether Now reads a real hardware counter.
const Supported = true

// Source names the hardware counter read by Now.
const Source = "rdtsc"

// Now returns the current value of the time-stamp counter.
//
// Implemented in cycles_amd64.s.
//
//go:noescape
func Now() uint64
