// Package policy defines the hook an intercepted call consults before the
// real function runs.
//
// A Policy sees the slot of every intercepted call, on the calling
// goroutine, before the cycle counter is read. It can record, delay or
// panic, which is enough to build fault injection on top of the
// profiler. libsee itself ships no rules.
package policy

import "github.com/kolkov/libsee/internal/see/slots"

// Policy is consulted before each intercepted call.
type Policy interface {
	Before(s slots.Slot)
}

// Func adapts an ordinary function to a Policy.
type Func func(s slots.Slot)

// Before calls f(s).
func (f Func) Before(s slots.Slot) { f(s) }

// Chain runs its policies in order. Nil entries are skipped.
type Chain []Policy

// Before calls Before on every policy of the chain.
func (c Chain) Before(s slots.Slot) {
	for _, p := range c {
		if p != nil {
			p.Before(s)
		}
	}
}

// Only returns a policy that forwards to p for the given slots and
// ignores every other call.
func Only(p Policy, only ...slots.Slot) Policy {
	var set [slots.Count]bool
	for _, s := range only {
		if s.Valid() {
			set[s] = true
		}
	}
	return Func(func(s slots.Slot) {
		if s.Valid() && set[s] {
			p.Before(s)
		}
	})
}
