package unit

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxUnitsIsPowerOfTwo(t *testing.T) {
	require.Greater(t, MaxUnits, 0)
	assert.Zero(t, MaxUnits&(MaxUnits-1))
	assert.Equal(t, MaxUnits-1, Mask)
}

func TestCurrentInRange(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 4*runtime.GOMAXPROCS(0); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				u := Current()
				if u < 0 || u >= MaxUnits {
					t.Errorf("Current() = %d, want [0, %d)", u, MaxUnits)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSource(t *testing.T) {
	assert.Contains(t, []string{"tsc_aux", "proc", "none"}, Source())
}

func BenchmarkCurrent(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += Current()
	}
	_ = sink
}
