// Package slots enumerates the standard-library functions libsee
// intercepts.
//
// The set is closed and fixed at build time. Each function gets a Slot, a
// small integer that indexes a column of the counter table, the symbol
// table and the wrapper table. The enumeration is generated from
// slots.yaml by tools/gensee together with the wrappers in package see.
package slots

//go:generate go run ../../../tools/gensee --manifest slots.yaml --slots zslots.go --see ../../../see

// Slot identifies one intercepted function.
type Slot uint16

// Group is the family an intercepted function belongs to.
type Group uint8

// Function families.
const (
	GroupString Group = iota
	GroupMemory
	GroupSort
	GroupRandom
	GroupNumber
	GroupFormat
	GroupFile
	GroupStream
	GroupTime

	numGroups = iota
)

var groupNames = [numGroups]string{
	GroupString: "string",
	GroupMemory: "memory",
	GroupSort:   "sort",
	GroupRandom: "random",
	GroupNumber: "number",
	GroupFormat: "format",
	GroupFile:   "file",
	GroupStream: "stream",
	GroupTime:   "time",
}

// String returns the manifest name of the group.
func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

// ParseGroup returns the group with the given manifest name.
func ParseGroup(name string) (Group, bool) {
	for g, n := range groupNames {
		if n == name {
			return Group(g), true
		}
	}
	return 0, false
}

// Info describes one intercepted function.
type Info struct {
	Name    string // qualified name, e.g. "strings.Index" or "math/rand.Intn"
	Import  string // import path of the defining package
	Func    string // function name within the package
	Wrapper string // name of the wrapper in package see
	Group   Group
}

// Valid reports whether s names an intercepted function.
func (s Slot) Valid() bool {
	return int(s) < Count
}

// Info returns the description of s. It panics if s is not valid.
func (s Slot) Info() Info {
	return infos[s]
}

// Name returns the qualified function name of s, the text printed in
// reports. It is safe to call on the reporting path: it returns a
// string constant and never allocates.
func (s Slot) Name() string {
	if !s.Valid() {
		return "invalid"
	}
	return infos[s].Name
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	return s.Name()
}

// All returns the descriptions of every slot, in slot order.
func All() []Info {
	all := make([]Info, Count)
	copy(all, infos[:])
	return all
}

var (
	byName   map[string]Slot
	byImport map[importKey]Slot
)

type importKey struct {
	path, fn string
}

func init() {
	byName = make(map[string]Slot, Count)
	byImport = make(map[importKey]Slot, Count)
	for i, info := range infos {
		byName[info.Name] = Slot(i)
		byImport[importKey{info.Import, info.Func}] = Slot(i)
	}
}

// ByName returns the slot whose qualified name is name.
func ByName(name string) (Slot, bool) {
	s, ok := byName[name]
	return s, ok
}

// ByImport returns the slot for function fn of the package imported as
// path.
func ByImport(path, fn string) (Slot, bool) {
	s, ok := byImport[importKey{path, fn}]
	return s, ok
}

// Imports returns the distinct import paths of the intercepted functions,
// in slot order.
func Imports() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, info := range infos {
		if !seen[info.Import] {
			seen[info.Import] = true
			paths = append(paths, info.Import)
		}
	}
	return paths
}
