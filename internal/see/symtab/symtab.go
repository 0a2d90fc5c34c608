// Package symtab resolves the implementation each wrapper forwards to.
//
// Symbols live in an ordered list of libraries, the way a dynamic linker
// sees the shared objects of a process. A library asking for the next
// definition of a name gets the first one found after itself in the
// order, never its own. The wrapper library is listed first and the Go
// standard library after it, so every wrapper resolves to the real
// function.
package symtab

import (
	"fmt"
	"reflect"

	"github.com/kolkov/libsee/internal/see/slots"
)

// Library exports symbols by slot.
type Library interface {
	// Name identifies the library in the search order.
	Name() string
	// Symbol returns the library's definition of s, a func value, or
	// false if the library does not define it.
	Symbol(s slots.Slot) (any, bool)
}

type structLibrary struct {
	name   string
	fields [slots.Count]reflect.Value
}

// StructLibrary exposes the func fields of the struct table points to as
// a Library. A field defines the slot whose wrapper name it carries
// (slots.Info.Wrapper); nil fields and slots without a field are not
// defined. It panics if table is not a non-nil pointer to a struct.
func StructLibrary(name string, table any) Library {
	v := reflect.ValueOf(table)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("symtab: StructLibrary(%q) needs a pointer to a struct, got %T", name, table))
	}
	v = v.Elem()

	lib := &structLibrary{name: name}
	for s := range lib.fields {
		f := v.FieldByName(slots.Slot(s).Info().Wrapper)
		if f.IsValid() && f.Kind() == reflect.Func {
			lib.fields[s] = f
		}
	}
	return lib
}

func (l *structLibrary) Name() string { return l.name }

func (l *structLibrary) Symbol(s slots.Slot) (any, bool) {
	if !s.Valid() {
		return nil, false
	}
	f := l.fields[s]
	if !f.IsValid() || f.IsNil() {
		return nil, false
	}
	return f.Interface(), true
}

// Table is the outcome of one resolution pass: at most one symbol per
// slot, together with the library that provided it.
type Table struct {
	syms   [slots.Count]any
	origin [slots.Count]string
}

// Resolve looks up every slot in the libraries that follow self in
// order. If self is not in order the whole order is searched. Slots no
// library defines are left unresolved.
func Resolve(order []Library, self string) *Table {
	from := 0
	for i, lib := range order {
		if lib.Name() == self {
			from = i + 1
			break
		}
	}

	t := new(Table)
	for s := range t.syms {
		for _, lib := range order[from:] {
			if sym, ok := lib.Symbol(slots.Slot(s)); ok {
				t.syms[s] = sym
				t.origin[s] = lib.Name()
				break
			}
		}
	}
	return t
}

// Lookup returns the symbol resolved for s, or nil.
func (t *Table) Lookup(s slots.Slot) any {
	if !s.Valid() {
		return nil
	}
	return t.syms[s]
}

// Origin returns the name of the library that defined s, or "" if s is
// unresolved.
func (t *Table) Origin(s slots.Slot) string {
	if !s.Valid() {
		return ""
	}
	return t.origin[s]
}

// LookupName is Lookup by qualified function name, e.g. "strings.Index".
func (t *Table) LookupName(name string) (any, bool) {
	s, ok := slots.ByName(name)
	if !ok || t.syms[s] == nil {
		return nil, false
	}
	return t.syms[s], true
}

// Missing returns the unresolved slots in slot order.
func (t *Table) Missing() []slots.Slot {
	var missing []slots.Slot
	for s, sym := range t.syms {
		if sym == nil {
			missing = append(missing, slots.Slot(s))
		}
	}
	return missing
}
