package deadline

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xmidt-org/rtsync/clock/clocktest"
)

// sequenceClock serves a scripted sequence of Millis readings.
func sequenceClock(values ...uint32) *clocktest.Mock {
	m := new(clocktest.Mock)
	for _, v := range values {
		m.OnMillis(v).Once()
	}

	return m
}

func TestExpired(t *testing.T) {
	var (
		assert = assert.New(t)

		// construction, then three polls straddling the 200ms mark
		c = sequenceClock(1000, 1100, 1199, 1200, 1500)
		d = NewWithClock(c, 200*time.Millisecond)
	)

	assert.False(d.Expired())
	assert.False(d.Expired())
	assert.True(d.Expired())
	assert.True(d.Expired())

	c.AssertExpectations(t)
}

func TestExpiredWraparound(t *testing.T) {
	var (
		assert = assert.New(t)

		// the counter wraps past its maximum between the reads
		c = sequenceClock(math.MaxUint32-50, 20, 80)
		d = NewWithClock(c, 100*time.Millisecond)
	)

	assert.False(d.Expired()) // 71ms elapsed across the wrap
	assert.True(d.Expired())  // 131ms elapsed

	c.AssertExpectations(t)
}

func TestReset(t *testing.T) {
	var (
		assert = assert.New(t)

		c = sequenceClock(0, 150, 150, 200, 250)
		d = NewWithClock(c, 100*time.Millisecond)
	)

	assert.True(d.Expired())

	// the zero point restarts at the Reset call
	d.Reset(100 * time.Millisecond)
	assert.False(d.Expired())
	assert.True(d.Expired())

	c.AssertExpectations(t)
}

func TestNonpositiveDuration(t *testing.T) {
	var (
		assert = assert.New(t)

		c = sequenceClock(500, 500)
		d = NewWithClock(c, 0)
	)

	assert.True(d.Expired())
	c.AssertExpectations(t)
}

func TestNew(t *testing.T) {
	var (
		assert = assert.New(t)
		d      = New(5 * time.Millisecond)
	)

	deadline := time.Now().Add(time.Second)
	for !d.Expired() {
		if time.Now().After(deadline) {
			assert.FailNow("the deadline never expired")
		}

		time.Sleep(time.Millisecond)
	}
}
