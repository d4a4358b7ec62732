package gate

import (
	"time"

	"github.com/go-kit/kit/metrics/discard"

	"github.com/xmidt-org/rtsync/clock"
	"github.com/xmidt-org/rtsync/lock"
	"github.com/xmidt-org/rtsync/xmetrics"
)

// Gate is a counting-resource gate: a counting semaphore assembled from two
// binary locks, for environments without a native counting primitive.  The
// unit count is guarded by an exclusive lock, and a second lock — the gate
// itself — is held closed exactly when no units remain, so waiters queue on
// the gate rather than polling the count.
//
// Gate is task-context only.  Ordering among multiple waiters is whatever the
// underlying wait queue provides, not guaranteed FIFO.
type Gate struct {
	mutex     *lock.Lock
	gate      *lock.Lock
	resources int

	resourceGauge xmetrics.Setter
	timeouts      xmetrics.Adder
}

// Option is a configuration option for a Gate.
type Option func(*Gate)

// WithResourceGauge establishes a metric tracking the number of available
// units.  If a nil gauge is supplied, resource levels are discarded.
func WithResourceGauge(gauge xmetrics.Setter) Option {
	return func(g *Gate) {
		if gauge != nil {
			g.resourceGauge = gauge
		} else {
			g.resourceGauge = discard.NewGauge()
		}
	}
}

// WithTimeouts establishes a metric counting Get calls that failed on a
// finite timeout.  If a nil counter is supplied, timeout counts are discarded.
func WithTimeouts(a xmetrics.Adder) Option {
	return func(g *Gate) {
		if a != nil {
			g.timeouts = a
		} else {
			g.timeouts = discard.NewCounter()
		}
	}
}

// New constructs a Gate with the given initial unit count.  A nonpositive
// count results in a panic.
func New(resources int, options ...Option) *Gate {
	if resources < 1 {
		panic("gate: the resource count must be positive")
	}

	g := &Gate{
		mutex:         lock.New(),
		gate:          lock.New(),
		resources:     resources,
		resourceGauge: discard.NewGauge(),
		timeouts:      discard.NewCounter(),
	}

	for _, o := range options {
		o(g)
	}

	g.resourceGauge.Set(float64(resources))
	return g
}

// Get claims one unit, blocking on the gate until a unit is available or the
// timeout elapses.  clock.Forever blocks indefinitely; a zero timeout fails
// immediately when no unit is free.  On timeout Get returns false and the
// count is untouched.
//
// Each successful Get either re-opens the gate for the next waiter or, when
// it claimed the last unit, leaves the gate closed until a Release.
func (g *Gate) Get(timeout time.Duration) bool {
	if !g.gate.Lock(timeout) {
		g.timeouts.Add(1.0)
		return false
	}

	g.mutex.Lock(clock.Forever)
	g.resources--
	if g.resources > 0 {
		g.gate.Unlock()
	}

	g.resourceGauge.Set(float64(g.resources))
	g.mutex.Unlock()
	return true
}

// Release returns one unit.  The zero-to-one transition opens the gate,
// admitting exactly one blocked getter.  Release does not clamp at the
// initial count: a release unmatched by a prior Get raises the ceiling.
func (g *Gate) Release() {
	g.mutex.Lock(clock.Forever)
	g.resources++
	if g.resources == 1 {
		g.gate.Unlock()
	}

	g.resourceGauge.Set(float64(g.resources))
	g.mutex.Unlock()
}
