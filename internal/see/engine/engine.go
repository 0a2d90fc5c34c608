package engine

import (
	"os"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/kolkov/libsee/internal/logging"
	"github.com/kolkov/libsee/internal/see/config"
	"github.com/kolkov/libsee/internal/see/counters"
	"github.com/kolkov/libsee/internal/see/cycles"
	"github.com/kolkov/libsee/internal/see/policy"
	"github.com/kolkov/libsee/internal/see/rawout"
	"github.com/kolkov/libsee/internal/see/report"
	"github.com/kolkov/libsee/internal/see/slots"
	"github.com/kolkov/libsee/internal/see/symtab"
	"github.com/kolkov/libsee/internal/see/unit"
)

// State is a lifecycle state of an Engine.
type State uint32

// Lifecycle states, in the only order they are visited.
const (
	Uninitialized State = iota
	Initializing
	Ready
	Finalizing
	Done
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Initializing:  "initializing",
	Ready:         "ready",
	Finalizing:    "finalizing",
	Done:          "done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Binder connects an engine to the wrappers it measures.
type Binder interface {
	// Libraries returns the symbol search order and the name of the
	// wrapper library within it.
	Libraries() (order []symtab.Library, self string)
	// Bind installs the resolved symbols where the wrappers read them.
	Bind(t *symtab.Table) error
}

// Engine is a profiler instance. The zero value is not usable; use New.
// Programs use Default, which the generated wrappers report to.
type Engine struct {
	state atomic.Uint32

	// Set before initialization.
	binder    Binder
	configure func() (config.Config, error)
	abort     func(msg string)
	traceFD   int

	// Set during initialization, read-only once Ready.
	cfg     config.Config
	log     zerolog.Logger
	trace   bool
	started [slots.Count][]byte
	closed  [slots.Count][]byte
	stop    func()

	policy atomic.Pointer[policyHolder]
	table  counters.Table

	// Set during finalization.
	ranking report.Ranking
}

type policyHolder struct {
	p policy.Policy
}

// Default is the process-wide engine.
var Default = New()

// New returns an engine in the Uninitialized state that reads its
// configuration from the environment.
func New() *Engine {
	return &Engine{
		configure: config.FromEnv,
		abort:     abortProcess,
		traceFD:   2,
		log:       zerolog.Nop(),
		stop:      func() {},
	}
}

// Register sets the binder used to resolve the real functions. It must
// be called before the engine initializes; package see does it from its
// init function.
func (e *Engine) Register(b Binder) {
	e.mustBeUninitialized("Register")
	e.binder = b
}

// SetConfig makes the engine use cfg instead of reading the environment.
// It must be called before the engine initializes.
func (e *Engine) SetConfig(cfg config.Config) {
	e.mustBeUninitialized("SetConfig")
	e.configure = func() (config.Config, error) { return cfg, nil }
}

// SetAbort replaces the function that terminates the process when
// initialization fails. abort receives the diagnostic and must not
// return. It must be called before the engine initializes.
func (e *Engine) SetAbort(abort func(msg string)) {
	e.mustBeUninitialized("SetAbort")
	e.abort = abort
}

// SetPolicy installs p as the hook run before every intercepted call. A
// nil p removes the hook. Safe to call at any time.
func (e *Engine) SetPolicy(p policy.Policy) {
	if p == nil {
		e.policy.Store(nil)
		return
	}
	e.policy.Store(&policyHolder{p: p})
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Config returns the configuration in effect. It is the zero Config
// until the engine is initialized.
func (e *Engine) Config() config.Config {
	if e.State() < Ready {
		return config.Config{}
	}
	return e.cfg
}

// Table returns the engine's counter table.
func (e *Engine) Table() *counters.Table {
	return &e.table
}

func (e *Engine) mustBeUninitialized(op string) {
	if e.State() != Uninitialized {
		panic("libsee: engine." + op + " called after initialization")
	}
}

// Init initializes the engine if it is not initialized yet.
//
// Thread Safety: Safe for concurrent calls. Exactly one caller performs
// the initialization; the others return once it is complete.
func (e *Engine) Init() {
	if e.State() < Ready {
		e.ensure()
	}
}

func (e *Engine) ensure() {
	for {
		switch State(e.state.Load()) {
		case Uninitialized:
			if e.state.CompareAndSwap(uint32(Uninitialized), uint32(Initializing)) {
				e.initialize()
				e.state.Store(uint32(Ready))
				return
			}
		case Initializing:
			runtime.Gosched()
		default:
			return
		}
	}
}

// initialize runs on the single goroutine that won the transition to
// Initializing.
func (e *Engine) initialize() {
	cfg, err := e.configure()
	e.cfg = cfg
	e.log = logging.NewWithComponent(logging.Config{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	}, "libsee")
	if err != nil {
		e.log.Warn().Err(err).Msg("Ignoring invalid settings")
	}

	e.table.Reset()

	if e.binder == nil {
		e.fatal("libsee: no symbol library registered\n")
	}
	order, self := e.binder.Libraries()
	tab := symtab.Resolve(order, self)
	if err := e.binder.Bind(tab); err != nil {
		e.fatal("libsee: cannot resolve the real functions: " + err.Error() + "\n")
	}

	if cfg.Trace {
		for s := range e.started {
			name := slots.Slot(s).Name()
			e.started[s] = []byte(name + "-started\n")
			e.closed[s] = []byte(name + "-closed\n")
		}
		e.trace = true
	}

	if cfg.Signals {
		e.stop = e.watchSignals()
	}

	e.log.Debug().
		Str("output", cfg.Output).
		Bool("trace", cfg.Trace).
		Bool("signals", cfg.Signals).
		Str("clock", cycles.Source).
		Str("units", unit.Source()).
		Int("max_units", unit.MaxUnits).
		Bool("atomic_counters", counters.Atomic).
		Msg("Profiler ready")
}

// fatal reports msg and terminates the process. It never returns.
func (e *Engine) fatal(msg string) {
	e.abort(msg)
	panic("libsee: abort returned: " + msg)
}

// Begin is the first half of an intercepted call. It initializes the
// engine on first use, emits the start trace line, runs the policy hook
// and returns the cycle counter.
func (e *Engine) Begin(s slots.Slot) uint64 {
	if e.state.Load() < uint32(Ready) {
		e.ensure()
	}
	if e.trace {
		rawout.WriteFD(e.traceFD, e.started[s])
	}
	if h := e.policy.Load(); h != nil {
		h.p.Before(s)
	}
	return cycles.Now()
}

// End is the second half of an intercepted call, run after the real
// function returned. It records one call and the cycles elapsed since
// start in the bucket of the current execution unit. Calls completing
// outside the Ready state are forwarded but not recorded.
func (e *Engine) End(s slots.Slot, start uint64) {
	delta := cycles.Since(start)
	if e.state.Load() == uint32(Ready) {
		e.table.Record(unit.Current(), s, delta)
	}
	if e.trace {
		rawout.WriteFD(e.traceFD, e.closed[s])
	}
}

// Finalize emits the report and moves the engine to Done. Only the first
// call reports; later calls wait until the report is written and return
// the same ranking. An engine that was never used is initialized first,
// so it still prints an empty report.
//
// Thread Safety: Safe for concurrent calls.
func (e *Engine) Finalize() report.Ranking {
	e.Init()
	if !e.state.CompareAndSwap(uint32(Ready), uint32(Finalizing)) {
		for e.State() != Done {
			runtime.Gosched()
		}
		return e.ranking
	}

	r, err := report.Emit(&e.table, e.cfg.Output, e.cfg.Separator())
	if err != nil {
		e.log.Debug().Err(err).Str("output", e.cfg.Output).Msg("Report not written")
	}
	e.ranking = r
	e.stop()
	e.state.Store(uint32(Done))

	e.log.Debug().
		Uint64("cycles", r.TotalCycles).
		Uint64("calls", r.TotalCalls).
		Int("functions", len(r.Rows())).
		Msg("Profiler finalized")
	return r
}
