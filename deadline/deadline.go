package deadline

import (
	"time"

	"github.com/xmidt-org/rtsync/clock"
)

// Deadline is a non-blocking soft timeout for polling loops that must stay
// responsive and so cannot park on a blocking wait:
//
//	d := deadline.New(200 * time.Millisecond)
//	for !d.Expired() {
//		doSomething()
//	}
//
// Elapsed time is computed over the clock's 32-bit millisecond counter with
// modular subtraction, so a Deadline stays correct across counter wraparound.
type Deadline struct {
	c       clock.Interface
	start   uint32
	timeout uint32
}

// New constructs a Deadline over the system clock, expiring after d.
func New(d time.Duration) *Deadline {
	return NewWithClock(clock.System(), d)
}

// NewWithClock constructs a Deadline over the given clock.
func NewWithClock(c clock.Interface, d time.Duration) *Deadline {
	dl := &Deadline{c: c}
	dl.Reset(d)
	return dl
}

// Reset restarts the zero point at the moment of the call, with a possibly
// new duration.  The duration is quantized to whole ticks; a nonpositive
// duration is already expired.
func (dl *Deadline) Reset(d time.Duration) {
	dl.start = dl.c.Millis()
	dl.timeout = uint32(clock.Ticks(d))
}

// Expired reports whether the duration has elapsed since the zero point.
func (dl *Deadline) Expired() bool {
	return clock.MillisDiff(dl.start, dl.c.Millis()) >= dl.timeout
}
