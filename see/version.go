package see

import (
	"github.com/kolkov/libsee/internal/see/counters"
	"github.com/kolkov/libsee/internal/see/cycles"
	"github.com/kolkov/libsee/internal/see/slots"
	"github.com/kolkov/libsee/internal/see/unit"
)

// Version information for the libsee runtime.
const (
	// Version is the current version of the runtime.
	Version = "0.3.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 3

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes how the runtime was built for this platform.
type Info struct {
	// Version is the runtime version string.
	Version string

	// Clock names the cycle counter, "none" if the architecture has no
	// supported counter.
	Clock string

	// Units names the source of execution-unit ids.
	Units string

	// MaxUnits is the number of execution-unit buckets.
	MaxUnits int

	// AtomicCounters reports whether counters use atomic updates.
	AtomicCounters bool

	// Functions is the number of intercepted functions.
	Functions int
}

// GetInfo returns information about the runtime.
//
// Example:
//
//	info := see.GetInfo()
//	fmt.Printf("libsee %s (clock %s, %d functions)\n", info.Version, info.Clock, info.Functions)
func GetInfo() Info {
	return Info{
		Version:        Version,
		Clock:          cycles.Source,
		Units:          unit.Source(),
		MaxUnits:       unit.MaxUnits,
		AtomicCounters: counters.Atomic,
		Functions:      slots.Count,
	}
}
