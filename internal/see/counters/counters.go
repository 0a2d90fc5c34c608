// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package counters holds the per-function, per-execution-unit counter
// table.
//
// The table has one row per execution-unit bucket and one Counter per
// intercepted function in each row. A call running on unit u updates only
// row u, so concurrent calls on different units never touch the same cache
// line and no lock is needed.
//
// Updates are plain, unsynchronized read-modify-writes by default. Two
// goroutines whose units alias the same bucket may lose an update; the
// profiler accepts that in exchange for a hot path with no atomic
// instructions. Building with the libsee_atomic tag switches Record and
// the readers to sync/atomic operations, which makes counts exact at the
// cost of a locked instruction per field. See Atomic.
package counters

import (
	"golang.org/x/sys/cpu"

	"github.com/kolkov/libsee/internal/see/slots"
	"github.com/kolkov/libsee/internal/see/unit"
)

const unitMask = unit.Mask

// Counter accumulates the calls made to one function and the cycles they
// consumed.
type Counter struct {
	Calls  uint64
	Cycles uint64
}

// add folds o into c.
func (c *Counter) add(o Counter) {
	c.Calls += o.Calls
	c.Cycles += o.Cycles
}

// row is the counter set of one execution-unit bucket. The trailing pad
// keeps the next row's first cells off this row's last cache line.
type row struct {
	cells [slots.Count]Counter
	_     cpu.CacheLinePad
}

// Table is the counter table. The zero value is an all-zero table ready
// for use.
//
// Record may be called concurrently. Reset and Aggregate read or write
// every row and must not overlap with Record if exact results are needed;
// the profiler calls them only during initialization and teardown.
type Table struct {
	rows [unit.MaxUnits]row
}

// Aggregate sums every bucket into one Counter per function. Calls and
// cycles are summed independently.
func (t *Table) Aggregate() [slots.Count]Counter {
	var agg [slots.Count]Counter
	for u := range t.rows {
		r := &t.rows[u]
		for s := range r.cells {
			agg[s].add(load(&r.cells[s]))
		}
	}
	return agg
}

// Cell returns the counter of function s in bucket u.
func (t *Table) Cell(u int, s slots.Slot) Counter {
	return load(&t.rows[u&unitMask].cells[s])
}

// Reset zeroes every counter.
func (t *Table) Reset() {
	for u := range t.rows {
		r := &t.rows[u]
		for s := range r.cells {
			store(&r.cells[s], Counter{})
		}
	}
}
