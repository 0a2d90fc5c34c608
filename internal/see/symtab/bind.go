package symtab

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"github.com/kolkov/libsee/internal/see/slots"
)

// ErrNotFound is the reason of a ResolveError for a slot no library
// defines.
var ErrNotFound = errors.New("symbol not found")

// ResolveError reports a slot that could not be bound.
type ResolveError struct {
	Slot slots.Slot
	Err  error
}

func (e *ResolveError) Error() string {
	return "symtab: " + e.Slot.Name() + ": " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Bind stores the symbols of t into the struct dst points to. Every func
// field named after a slot's wrapper receives that slot's symbol; other
// fields are left alone. A field whose slot is unresolved, or whose
// symbol has a different type, yields a *ResolveError. All such errors
// are returned together; fields that could be bound are bound anyway.
func Bind(t *Table, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("symtab: Bind needs a pointer to a struct, got %T", dst)
	}
	v = v.Elem()

	var result *multierror.Error
	for s := range t.syms {
		slot := slots.Slot(s)
		f := v.FieldByName(slot.Info().Wrapper)
		if !f.IsValid() || f.Kind() != reflect.Func {
			continue
		}
		sym := t.syms[s]
		if sym == nil {
			result = multierror.Append(result, &ResolveError{Slot: slot, Err: ErrNotFound})
			continue
		}
		sv := reflect.ValueOf(sym)
		if sv.Type() != f.Type() {
			result = multierror.Append(result, &ResolveError{
				Slot: slot,
				Err:  fmt.Errorf("type mismatch: %s from %s, want %s", sv.Type(), t.origin[s], f.Type()),
			})
			continue
		}
		f.Set(sv)
	}
	return result.ErrorOrNil()
}
