package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kolkov/libsee/internal/see/slots"
)

func TestChainOrder(t *testing.T) {
	var got []string
	record := func(tag string) Policy {
		return Func(func(s slots.Slot) { got = append(got, tag+":"+s.Name()) })
	}

	c := Chain{record("a"), nil, record("b")}
	c.Before(slots.StringsIndex)
	assert.Equal(t, []string{"a:strings.Index", "b:strings.Index"}, got)
}

func TestOnly(t *testing.T) {
	var calls []slots.Slot
	p := Only(Func(func(s slots.Slot) { calls = append(calls, s) }), slots.OsOpen, slots.Slot(slots.Count+5))

	p.Before(slots.OsOpen)
	p.Before(slots.OsCreate)
	p.Before(slots.Slot(slots.Count + 5))
	assert.Equal(t, []slots.Slot{slots.OsOpen}, calls)
}

func TestPolicyMayPanic(t *testing.T) {
	p := Func(func(s slots.Slot) { panic("injected fault in " + s.Name()) })
	assert.PanicsWithValue(t, "injected fault in os.Open", func() { Chain{p}.Before(slots.OsOpen) })
}
