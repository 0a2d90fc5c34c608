package slots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsConsistent(t *testing.T) {
	require.Equal(t, Count, len(All()))

	names := make(map[string]bool)
	wrappers := make(map[string]bool)
	for i, info := range All() {
		s := Slot(i)
		assert.True(t, s.Valid())
		assert.Equal(t, info.Import+"."+info.Func, info.Name, "slot %d", i)
		assert.False(t, names[info.Name], "duplicate name %s", info.Name)
		assert.False(t, wrappers[info.Wrapper], "duplicate wrapper %s", info.Wrapper)
		names[info.Name] = true
		wrappers[info.Wrapper] = true

		assert.True(t, strings.HasSuffix(info.Wrapper, info.Func), "wrapper %s for %s", info.Wrapper, info.Name)
		assert.NotEqual(t, "unknown", info.Group.String())
	}
}

func TestGeneratedConstantsMatchTable(t *testing.T) {
	cases := map[Slot]string{
		StringsClone: "strings.Clone",
		StringsIndex: "strings.Index",
		BytesClone:   "bytes.Clone",
		BytesCompare: "bytes.Compare",
		SortSlice:    "sort.Slice",
		RandIntn:     "math/rand.Intn",
		StrconvItoa:  "strconv.Itoa",
		FmtSprintf:   "fmt.Sprintf",
		OsReadFile:   "os.ReadFile",
		IoCopy:       "io.Copy",
		TimeNow:      "time.Now",
		TimeUntil:    "time.Until",
	}
	for s, name := range cases {
		assert.Equal(t, name, s.Name())
		got, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, Slot(Count-1), TimeUntil)
}

func TestByImport(t *testing.T) {
	s, ok := ByImport("math/rand", "Intn")
	require.True(t, ok)
	assert.Equal(t, RandIntn, s)

	_, ok = ByImport("math/rand/v2", "IntN")
	assert.False(t, ok)
	_, ok = ByImport("strings", "Builder")
	assert.False(t, ok)
}

func TestInvalidSlot(t *testing.T) {
	s := Slot(Count)
	assert.False(t, s.Valid())
	assert.Equal(t, "invalid", s.Name())
	assert.Panics(t, func() { _ = s.Info() })
}

func TestGroups(t *testing.T) {
	for _, name := range []string{"string", "memory", "sort", "random", "number", "format", "file", "stream", "time"} {
		g, ok := ParseGroup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, g.String())
	}
	_, ok := ParseGroup("heap")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Group(200).String())

	assert.Equal(t, GroupMemory, BytesClone.Info().Group)
	assert.Equal(t, GroupTime, TimeSleep.Info().Group)
}

func TestImports(t *testing.T) {
	assert.Equal(t, []string{"strings", "bytes", "sort", "math/rand", "strconv", "fmt", "os", "io", "time"}, Imports())
}
