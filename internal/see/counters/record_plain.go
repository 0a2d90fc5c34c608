// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !libsee_atomic

package counters

import "github.com/kolkov/libsee/internal/see/slots"

// Atomic reports whether counter updates use atomic instructions.
const Atomic = false

// Record adds one call and delta cycles to function s in bucket u.
//
// The update is a plain read-modify-write: it is not safe against another
// goroutine recording into the same bucket at the same time, and a
// colliding update may be lost.
//
//go:nosplit
func (t *Table) Record(u int, s slots.Slot, delta uint64) {
	c := &t.rows[u&unitMask].cells[s]
	c.Calls++
	c.Cycles += delta
}

func load(c *Counter) Counter {
	return *c
}

func store(c *Counter, v Counter) {
	*c = v
}
