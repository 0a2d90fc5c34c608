// Package engine drives the profiler: it owns the lifecycle of the
// process-wide counter table and implements the two halves of every
// intercepted call.
//
// A generated wrapper in package see looks like this:
//
//	func StringsIndex(s, substr string) int {
//		start := engine.Default.Begin(slots.StringsIndex)
//		r0 := next.StringsIndex(s, substr)
//		engine.Default.End(slots.StringsIndex, start)
//		return r0
//	}
//
// Begin makes sure the engine is initialized, runs the optional trace and
// policy hooks, and reads the cycle counter. End reads the counter again
// and adds the call and its cycles to the caller's execution-unit bucket.
//
// Lifecycle:
//
//	Uninitialized -> Initializing -> Ready -> Finalizing -> Done
//
// The first Begin, Init or Finalize moves the engine out of
// Uninitialized. Exactly one goroutine wins that transition and resolves
// the real functions; the others yield until it is done. Finalize runs
// the report exactly once. There is no way back to Ready.
//
// Performance:
//   - Begin/End on a Ready engine: one atomic load each, two cycle counter
//     reads, a P or CPU id read and two plain adds
//   - No allocation, no lock, no call into an intercepted function
package engine
