// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit identifies the execution unit the calling goroutine runs on.
//
// The profiler keeps one row of counters per execution unit so that
// concurrent calls update disjoint memory without synchronization. Current
// must therefore be cheap: no syscall, no lock, no allocation.
//
// Identification, by platform:
//   - linux/amd64 with RDTSCP: the CPU number the kernel stores in
//     IA32_TSC_AUX, read with one instruction
//   - other gc targets: the id of the scheduler P running the goroutine
//   - other toolchains: always 0
//
// Ids are folded into [0, MaxUnits) with a mask. Two units landing on the
// same bucket share a row and may lose updates; this is accepted.
package unit

// MaxUnits is the number of execution-unit buckets. It sizes the counter
// table and is fixed at compile time: 256 by default, 1024 when built with
// the libsee_units1024 tag.
const MaxUnits = maxUnits

// Mask folds an execution-unit id into a bucket index.
const Mask = MaxUnits - 1

// MaxUnits must be a power of two for Mask to work.
var _ [1 - MaxUnits&(MaxUnits-1)]struct{}

// Current returns the bucket index of the execution unit running the
// caller, in [0, MaxUnits).
//
//go:nosplit
func Current() int {
	return int(current() & Mask)
}

// Source describes how Current identifies execution units on this
// platform: "tsc_aux", "proc" or "none".
func Source() string {
	return source()
}
