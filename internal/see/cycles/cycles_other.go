// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package cycles

// Supported reports whether Now reads a real hardware counter.
const Supported = false

// Source names the hardware counter read by Now.
const Source = "none"

// Now always returns 0 on this architecture. Every measured delta is zero,
// so call counts stay exact while cycle totals do not accumulate.
//
//go:nosplit
func Now() uint64 {
	return 0
}
