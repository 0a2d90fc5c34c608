package see

import (
	"github.com/kolkov/libsee/internal/see/engine"
	"github.com/kolkov/libsee/internal/see/symtab"
)

// LibraryName is the name of the wrapper library in the symbol search
// order.
const LibraryName = "libsee"

// stdlibName names the library of the real functions.
const stdlibName = "std"

// next holds the real functions the wrappers forward to. It is filled in
// once, while the engine initializes, and only read afterwards.
var next symbols

// library registers the wrappers with the engine.
type library struct{}

func (library) Libraries() ([]symtab.Library, string) {
	return []symtab.Library{
		symtab.StructLibrary(LibraryName, &exports),
		symtab.StructLibrary(stdlibName, &system),
	}, LibraryName
}

func (library) Bind(t *symtab.Table) error {
	return symtab.Bind(t, &next)
}

func init() {
	engine.Default.Register(library{})
}
