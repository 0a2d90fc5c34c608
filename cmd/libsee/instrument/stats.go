package instrument

import (
	"github.com/kolkov/libsee/internal/see/slots"
)

// InstrumentStats tracks instrumentation statistics.
//
// Use Case:
// Enable with -v flag to see detailed instrumentation statistics:
//
//	libsee build -v main.go
//	Instrumented: main.go
//	  - 12 calls rewritten (7 string, 3 format, 2 file)
//	  - 1 os.Exit rewritten
//	  - 2 items skipped (1 function value, 1 shadowed package name)
//
// Thread Safety: NOT thread-safe (single-threaded instrumentation).
//
//nolint:revive // InstrumentStats is clear and descriptive despite stuttering
type InstrumentStats struct {
	Calls           [slots.Count]int // Rewritten calls per intercepted function
	ExitsRewritten  int              // os.Exit calls rewritten to see.Exit
	ValuesSkipped   int              // Intercepted functions used as values, not called
	ShadowedSkipped int              // Selectors on a local name that shadows an import
	MainInjected    bool             // see.Init/see.Fini were added to func main

	// Warnings describe code that hides intercepted calls from the
	// rewriter, such as dot imports of an intercepted package.
	Warnings []*InstrumentationError
}

// Total returns the total number of rewritten calls.
func (s *InstrumentStats) Total() int {
	n := 0
	for _, c := range s.Calls {
		n += c
	}
	return n
}

// TotalSkipped returns the total number of skipped items.
func (s *InstrumentStats) TotalSkipped() int {
	return s.ValuesSkipped + s.ShadowedSkipped
}

// ByGroup returns the rewritten calls per function family.
func (s *InstrumentStats) ByGroup() map[slots.Group]int {
	groups := make(map[slots.Group]int)
	for i, c := range s.Calls {
		if c > 0 {
			groups[slots.Slot(i).Info().Group] += c
		}
	}
	return groups
}

// Add accumulates o into s.
func (s *InstrumentStats) Add(o *InstrumentStats) {
	for i, c := range o.Calls {
		s.Calls[i] += c
	}
	s.ExitsRewritten += o.ExitsRewritten
	s.ValuesSkipped += o.ValuesSkipped
	s.ShadowedSkipped += o.ShadowedSkipped
	s.MainInjected = s.MainInjected || o.MainInjected
	s.Warnings = append(s.Warnings, o.Warnings...)
}
