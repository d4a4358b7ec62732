package clock

import "time"

// Interface represents the module's view of a monotonic clock.  It combines the
// stdlib-style event sources with the free-running millisecond and microsecond
// counters a real-time kernel exposes to application code.
type Interface interface {
	Now() time.Time

	// Millis returns a free-running millisecond counter.  The counter wraps
	// modulo 2^32; use MillisDiff to compute elapsed time across a wrap.
	Millis() uint32

	// MillisISR is the interrupt-context read of the millisecond counter.
	// It never blocks and is the only counter read legal from an interrupt
	// handler.
	MillisISR() uint32

	// Micros returns a free-running microsecond counter, also wrapping
	// modulo 2^32.
	Micros() uint32

	Sleep(time.Duration)
	NewTicker(time.Duration) Ticker
	NewTimer(time.Duration) Timer
}

// epoch anchors the counters for all system clocks, so that independently
// obtained System() instances agree on Millis and Micros.
var epoch = time.Now()

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Millis() uint32 {
	return uint32(time.Since(epoch) / time.Millisecond)
}

func (sc systemClock) MillisISR() uint32 {
	return sc.Millis()
}

func (sc systemClock) Micros() uint32 {
	return uint32(time.Since(epoch) / time.Microsecond)
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (sc systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

// System returns a clock backed by the time package.  Its counters run from
// an epoch fixed at process start, so wraparound behaves like a hardware tick
// counter rather than tracking wall-clock time.
func System() Interface {
	return systemClock{}
}

// MillisDiff computes the forward elapsed time from time1 to time2 in
// milliseconds.  Unsigned modular subtraction keeps the result correct even
// when the counter wrapped past its maximum between the two reads.
func MillisDiff(time1, time2 uint32) uint32 {
	return time2 - time1
}
