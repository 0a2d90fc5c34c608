// Package see is the runtime of libsee, a cycle and call-count profiler
// for calls into the Go standard library.
//
// For every intercepted function pkg.Func there is a wrapper
// see.PkgFunc with the same signature. The wrapper reads the processor's
// cycle counter, calls the real function, reads the counter again and
// adds one call and the elapsed cycles to a per-function counter. When
// the program ends a ranked report is printed:
//
//	----------------------------------LIBSEE----------------------------------------
//	function,           cycles,                                 calls,         share
//	bytes.Clone,                                        48_391,         1_000, 78.12
//	bytes.Compare,                                      13_554,           500, 21.88
//	----------------------------------LIBSEE----------------------------------------
//
// # Quick Start
//
// Programs are not changed by hand. The libsee tool rewrites their calls
// to the wrappers while building:
//
//	$ libsee build ./cmd/myprogram
//	$ ./myprogram
//
// or builds and runs in one step:
//
//	$ libsee run main.go
//
// For manual instrumentation:
//
//	package main
//
//	import "github.com/kolkov/libsee/see"
//
//	func main() {
//		see.Init()
//		defer see.Fini()
//
//		s := see.StringsRepeat("ab", 3) // instead of strings.Repeat
//		see.FmtPrintln(s)               // instead of fmt.Println
//	}
//
// # Configuration
//
// The environment is read once, on the first intercepted call:
//
//	LIBSEE_OUTPUT    stdout (default), stderr, tty or a file path
//	LIBSEE_TRACE     print "<function>-started" and "<function>-closed" to stderr
//	LIBSEE_GROUPING  separate thousands with '_' (default true)
//	LIBSEE_SIGNALS   also report when the process gets SIGINT or SIGTERM
//	LIBSEE_LOG       level of diagnostic logging on stderr (default disabled)
//
// Build tags select the counter table variant:
//
//	libsee_atomic     exact counts under contention, at the cost of atomic adds
//	libsee_units1024  1024 execution-unit buckets instead of 256
//
// # How It Works
//
// The wrappers forward to the real functions through a table resolved
// once, the first time any wrapper runs. Resolution searches the symbol
// libraries that come after this one, so a wrapper never resolves to
// itself. If a function cannot be resolved the process is aborted: there
// is nothing sensible a wrapper could return instead.
//
// Counters are kept per execution unit (the CPU on linux/amd64, the Go
// scheduler's P elsewhere) so that concurrent calls do not contend. The
// report is rendered without calling any intercepted function.
//
// The cycle counter is RDTSC on amd64 and CNTVCT_EL0 on arm64. On other
// architectures every call measures 0 cycles and only call counts are
// meaningful.
package see
