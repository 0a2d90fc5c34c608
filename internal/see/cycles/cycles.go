// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cycles reads the free-running hardware cycle counter.
//
// Now is the measurement primitive of the profiler: it is called twice for
// every intercepted call, so it is implemented in assembly, never allocates
// and never calls into any other package.
//
// Counter sources:
//   - amd64: the time-stamp counter (RDTSC)
//   - arm64: the virtual count register (CNTVCT_EL0)
//   - everything else: the constant 0, see Supported
//
// The counters tick at a fixed rate that is not necessarily the core clock,
// so values are only comparable within one machine. Use Calibrate to relate
// them to wall time.
package cycles

import "time"

// Since returns the number of cycles elapsed since start.
//
// The subtraction is unsigned: if the counter wrapped or the goroutine
// migrated to a core with a skewed counter the result is large, and it is
// accepted as measurement noise.
//
//go:nosplit
func Since(start uint64) uint64 {
	return Now() - start
}

// Calibrate estimates how many counter ticks elapse per nanosecond by
// spinning for d. It returns 0 when the counter is not supported or d is
// too short to observe a difference.
//
// Calibrate is meant for diagnostics. The profiler itself reports raw
// counter values.
func Calibrate(d time.Duration) float64 {
	if !Supported || d <= 0 {
		return 0
	}

	start := time.Now()
	startCycles := Now()
	for time.Since(start) < d {
		// Spin.
	}
	endCycles := Now()
	elapsed := time.Since(start)

	if elapsed <= 0 || endCycles <= startCycles {
		return 0
	}
	return float64(endCycles-startCycles) / float64(elapsed.Nanoseconds())
}
