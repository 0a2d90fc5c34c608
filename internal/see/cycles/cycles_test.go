package cycles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := Now()
	for i := 0; i < 1000; i++ {
		cur := Now()
		if Supported {
			// Same goroutine, short interval: the counter must not go backwards.
			assert.GreaterOrEqual(t, cur, prev)
		} else {
			assert.Zero(t, cur)
		}
		prev = cur
	}
}

func TestSinceAdvances(t *testing.T) {
	if !Supported {
		t.Skip("no hardware cycle counter on this architecture")
	}
	start := Now()
	time.Sleep(time.Millisecond)
	assert.NotZero(t, Since(start))
}

func TestSinceWraps(t *testing.T) {
	// A start value ahead of the counter yields the unsigned wraparound
	// (now + 1) instead of a panic or a clamp.
	d := Since(^uint64(0))
	if Supported {
		assert.GreaterOrEqual(t, d, uint64(1))
		assert.LessOrEqual(t, d, Now()+1)
	} else {
		assert.Equal(t, uint64(1), d)
	}
}

func TestCalibrate(t *testing.T) {
	if !Supported {
		assert.Zero(t, Calibrate(5*time.Millisecond))
		return
	}
	perNS := Calibrate(5 * time.Millisecond)
	assert.Greater(t, perNS, 0.0)
	assert.Zero(t, Calibrate(0))
}

func BenchmarkNow(b *testing.B) {
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += Now()
	}
	_ = sink
}
