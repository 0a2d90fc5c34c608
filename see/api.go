package see

import (
	"os"

	"github.com/kolkov/libsee/internal/see/engine"
	"github.com/kolkov/libsee/internal/see/policy"
	"github.com/kolkov/libsee/internal/see/slots"
)

// Slot identifies an intercepted function.
type Slot = slots.Slot

// Policy is consulted before each intercepted call. See SetPolicy.
type Policy = policy.Policy

// PolicyFunc adapts an ordinary function to a Policy.
type PolicyFunc = policy.Func

// Init initializes the profiler.
//
// The libsee tool inserts this call at the beginning of main(). Calling it
// is optional: the first intercepted call initializes the profiler too.
//
// Init is safe to call multiple times (subsequent calls are no-ops).
func Init() {
	engine.Default.Init()
}

// Fini prints the report.
//
// The libsee tool defers this call at the beginning of main():
//
//	func main() {
//		see.Init()
//		defer see.Fini()
//		// ... rest of program
//	}
//
// Only the first call prints. Intercepted calls made after Fini still
// reach the real functions but are no longer counted.
func Fini() {
	engine.Default.Finalize()
}

// Exit prints the report and then exits with the given status code. The
// libsee tool rewrites os.Exit calls to Exit, since deferred calls such
// as Fini do not run when a program exits through os.Exit.
func Exit(code int) {
	engine.Default.Finalize()
	os.Exit(code)
}

// SetPolicy installs p as the hook run before every intercepted call, on
// the calling goroutine, before the cycle counter is read. A nil p
// removes the hook.
func SetPolicy(p Policy) {
	engine.Default.SetPolicy(p)
}

// Lookup returns the slot of the intercepted function with the given
// qualified name, such as "strings.Index" or "math/rand.Intn".
func Lookup(name string) (Slot, bool) {
	return slots.ByName(name)
}
