package clock

import "time"

// Tick is the scheduling granularity of the modeled kernel.  Timeouts passed
// to blocking operations in this module are quantized to whole ticks.
const Tick = time.Millisecond

// Forever is the timeout sentinel meaning "wait indefinitely".  Any negative
// timeout passed to a blocking operation is treated the same way.
const Forever time.Duration = -1

// Ticks converts a duration to a whole number of kernel ticks, rounding up.
// Nonpositive durations convert to zero ticks.
func Ticks(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}

	return int64((d + Tick - 1) / Tick)
}

// Quantize rounds a positive timeout up to a whole number of ticks, so that a
// sub-tick timeout still waits for at least one tick.  Nonpositive durations
// are returned unchanged.
func Quantize(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}

	return time.Duration(Ticks(d)) * Tick
}
