package symtab

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/internal/see/slots"
)

type partial struct {
	StringsIndex func(s, substr string) int
	StringsClone func(s string) string
	Unrelated    func()
}

func wrapperIndex(s, substr string) int { return -42 }

func TestStructLibrary(t *testing.T) {
	lib := StructLibrary("std", &partial{StringsIndex: strings.Index})
	assert.Equal(t, "std", lib.Name())

	sym, ok := lib.Symbol(slots.StringsIndex)
	require.True(t, ok)
	assert.Equal(t, 2, sym.(func(string, string) int)("abc", "c"))

	_, ok = lib.Symbol(slots.StringsClone)
	assert.False(t, ok, "nil fields are not defined")
	_, ok = lib.Symbol(slots.TimeNow)
	assert.False(t, ok, "slots without a field are not defined")
	_, ok = lib.Symbol(slots.Slot(slots.Count))
	assert.False(t, ok)
}

func TestStructLibraryRejectsNonStruct(t *testing.T) {
	assert.Panics(t, func() { StructLibrary("x", partial{}) })
	assert.Panics(t, func() { StructLibrary("x", (*partial)(nil)) })
	n := 1
	assert.Panics(t, func() { StructLibrary("x", &n) })
}

func TestResolveSkipsSelf(t *testing.T) {
	self := StructLibrary("libsee", &partial{StringsIndex: wrapperIndex})
	std := StructLibrary("std", &partial{StringsIndex: strings.Index})
	order := []Library{self, std}

	tab := Resolve(order, "libsee")
	fn, ok := tab.Lookup(slots.StringsIndex).(func(string, string) int)
	require.True(t, ok)
	assert.Equal(t, 1, fn("abc", "b"), "must resolve to the next library, not to itself")
	assert.Equal(t, "std", tab.Origin(slots.StringsIndex))

	// A caller outside the order sees the first definition.
	tab = Resolve(order, "elsewhere")
	fn = tab.Lookup(slots.StringsIndex).(func(string, string) int)
	assert.Equal(t, -42, fn("abc", "b"))
	assert.Equal(t, "libsee", tab.Origin(slots.StringsIndex))
}

func TestResolveFirstAfterSelfWins(t *testing.T) {
	first := func(s, substr string) int { return 1 }
	second := func(s, substr string) int { return 2 }
	order := []Library{
		StructLibrary("a", &partial{StringsIndex: first}),
		StructLibrary("self", &partial{StringsIndex: wrapperIndex}),
		StructLibrary("b", &partial{StringsIndex: second}),
		StructLibrary("c", &partial{StringsIndex: first}),
	}
	tab := Resolve(order, "self")
	assert.Equal(t, 2, tab.Lookup(slots.StringsIndex).(func(string, string) int)("", ""))
	assert.Equal(t, "b", tab.Origin(slots.StringsIndex))
}

func TestMissing(t *testing.T) {
	tab := Resolve([]Library{StructLibrary("std", &partial{StringsIndex: strings.Index})}, "libsee")

	missing := tab.Missing()
	assert.Len(t, missing, slots.Count-1)
	assert.NotContains(t, missing, slots.StringsIndex)
	assert.Contains(t, missing, slots.StringsClone)

	_, ok := tab.LookupName("strings.Index")
	assert.True(t, ok)
	_, ok = tab.LookupName("strings.Clone")
	assert.False(t, ok)
	_, ok = tab.LookupName("strings.NoSuchThing")
	assert.False(t, ok)
	assert.Nil(t, tab.Lookup(slots.Slot(slots.Count)))
	assert.Empty(t, tab.Origin(slots.StringsClone))
}

func TestBind(t *testing.T) {
	std := StructLibrary("std", &partial{StringsIndex: strings.Index, StringsClone: strings.Clone})
	tab := Resolve([]Library{std}, "libsee")

	var dst partial
	require.NoError(t, Bind(tab, &dst))
	assert.Equal(t, 3, dst.StringsIndex("abcd", "d"))
	assert.Equal(t, "x", dst.StringsClone("x"))
	assert.Nil(t, dst.Unrelated)
}

func TestBindReportsEverySlot(t *testing.T) {
	type mistyped struct {
		StringsIndex func(s, substr string) int
		StringsClone func(s string) string
		StringsCount func(s, substr string) int
	}
	std := StructLibrary("std", &struct {
		StringsIndex func(s, substr string) int
		StringsCount func(s string) int // wrong signature
	}{
		StringsIndex: strings.Index,
		StringsCount: func(s string) int { return len(s) },
	})
	tab := Resolve([]Library{std}, "libsee")

	var dst mistyped
	err := Bind(tab, &dst)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)

	var rerr *ResolveError
	require.True(t, errors.As(merr.Errors[0], &rerr))
	assert.Equal(t, slots.StringsClone, rerr.Slot)
	assert.ErrorIs(t, rerr, ErrNotFound)
	assert.Contains(t, rerr.Error(), "strings.Clone")

	require.True(t, errors.As(merr.Errors[1], &rerr))
	assert.Equal(t, slots.StringsCount, rerr.Slot)
	assert.Contains(t, rerr.Error(), "type mismatch")

	assert.NotNil(t, dst.StringsIndex, "resolvable fields are bound anyway")
	assert.Nil(t, dst.StringsClone)
}

func TestBindRejectsNonPointer(t *testing.T) {
	tab := Resolve(nil, "")
	assert.Error(t, Bind(tab, partial{}))
	assert.Error(t, Bind(tab, nil))
}
