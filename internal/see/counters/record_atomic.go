// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build libsee_atomic

package counters

import (
	"sync/atomic"

	"github.com/kolkov/libsee/internal/see/slots"
)

// Atomic reports whether counter updates use atomic instructions.
const Atomic = true

// Record adds one call and delta cycles to function s in bucket u.
//
// Both fields are updated with atomic adds, so no update is lost. The two
// adds are not a single transaction: a concurrent reader may observe the
// call before its cycles.
//
//go:nosplit
func (t *Table) Record(u int, s slots.Slot, delta uint64) {
	c := &t.rows[u&unitMask].cells[s]
	atomic.AddUint64(&c.Calls, 1)
	atomic.AddUint64(&c.Cycles, delta)
}

func load(c *Counter) Counter {
	return Counter{
		Calls:  atomic.LoadUint64(&c.Calls),
		Cycles: atomic.LoadUint64(&c.Cycles),
	}
}

func store(c *Counter, v Counter) {
	atomic.StoreUint64(&c.Calls, v.Calls)
	atomic.StoreUint64(&c.Cycles, v.Cycles)
}
