package queue

import (
	"time"

	"github.com/go-kit/kit/metrics/discard"

	"github.com/xmidt-org/rtsync/clock"
	"github.com/xmidt-org/rtsync/critical"
	"github.com/xmidt-org/rtsync/xmetrics"
)

// Queue is a fixed-capacity FIFO message queue with separate task-context and
// interrupt-context entry points.  Items are copied into and out of the
// queue's storage, so the sender's and receiver's values never alias.
//
// Storage is a ring buffer mutated only inside the process-wide critical
// region; admission and occupancy are tracked with token channels, so every
// blocking operation is a wait with a tick-quantized timeout.
type Queue[T any] struct {
	buf   []T
	head  int
	count int

	items chan struct{}
	space chan struct{}

	depthGauge xmetrics.Setter
	timeouts   xmetrics.Adder
}

// option collects configuration independent of the queue's type parameter.
type option struct {
	depthGauge xmetrics.Setter
	timeouts   xmetrics.Adder
}

// Option is a configuration option for a Queue.
type Option func(*option)

// WithDepthGauge establishes a metric tracking the queue depth.  If a nil
// gauge is supplied, depth updates are discarded.
func WithDepthGauge(gauge xmetrics.Setter) Option {
	return func(o *option) {
		if gauge != nil {
			o.depthGauge = gauge
		} else {
			o.depthGauge = discard.NewGauge()
		}
	}
}

// WithTimeouts establishes a metric counting sends and receives that failed
// on a finite timeout.  If a nil counter is supplied, timeout counts are
// discarded.
func WithTimeouts(a xmetrics.Adder) Option {
	return func(o *option) {
		if a != nil {
			o.timeouts = a
		} else {
			o.timeouts = discard.NewCounter()
		}
	}
}

// New constructs a Queue with the given fixed capacity.  A nonpositive
// capacity results in a panic.  Close must be called after all use to release
// the queue's storage.
func New[T any](capacity int, options ...Option) *Queue[T] {
	if capacity < 1 {
		panic("queue: the capacity must be positive")
	}

	o := option{
		depthGauge: discard.NewGauge(),
		timeouts:   discard.NewCounter(),
	}

	for _, f := range options {
		f(&o)
	}

	q := &Queue[T]{
		buf:        make([]T, capacity),
		items:      make(chan struct{}, capacity),
		space:      make(chan struct{}, capacity),
		depthGauge: o.depthGauge,
		timeouts:   o.timeouts,
	}

	for i := 0; i < capacity; i++ {
		q.space <- struct{}{}
	}

	return q
}

// Close releases the queue's storage.  All use must complete before Close;
// operations on a closed queue panic.
func (q *Queue[T]) Close() {
	critical.Do(func() {
		q.buf = nil
		q.head = 0
		q.count = 0
	})
}

// await claims a token within the timeout, using the same timeout semantics
// as every blocking operation in this module.
func await(c chan struct{}, timeout time.Duration) bool {
	if timeout < 0 {
		<-c
		return true
	}

	select {
	case <-c:
		return true
	default:
	}

	if timeout == 0 {
		return false
	}

	t := time.NewTimer(clock.Quantize(timeout))
	defer t.Stop()

	select {
	case <-c:
		return true
	case <-t.C:
		return false
	}
}

func (q *Queue[T]) push(item T) {
	critical.Do(func() {
		q.buf[(q.head+q.count)%len(q.buf)] = item
		q.count++
		q.depthGauge.Set(float64(q.count))
	})
}

func (q *Queue[T]) pop(item *T) {
	critical.Do(func() {
		var zero T
		*item = q.buf[q.head]
		q.buf[q.head] = zero
		q.head = (q.head + 1) % len(q.buf)
		q.count--
		q.depthGauge.Set(float64(q.count))
	})
}

// Send copies item into the queue, blocking until there is room or the
// timeout elapses.  clock.Forever blocks indefinitely; a zero timeout fails
// immediately when the queue is full.  FIFO order is preserved for
// single-producer/single-consumer use.
func (q *Queue[T]) Send(item T, timeout time.Duration) bool {
	if !await(q.space, timeout) {
		q.timeouts.Add(1.0)
		return false
	}

	q.push(item)
	q.items <- struct{}{}
	return true
}

// Signal sends a zero-valued item: pure synchronization, with the payload
// discarded by convention on the receiving side.
func (q *Queue[T]) Signal(timeout time.Duration) bool {
	var zero T
	return q.Send(zero, timeout)
}

// SendISR is the non-blocking enqueue for interrupt context, returning false
// when the queue is full.  If this send unblocks a higher-priority waiter,
// any scheduler yield is the caller's responsibility.
func (q *Queue[T]) SendISR(item T) bool {
	select {
	case <-q.space:
	default:
		return false
	}

	q.push(item)
	q.items <- struct{}{}
	return true
}

// Receive removes the head of the queue into *item, blocking until an item
// arrives or the timeout elapses.
func (q *Queue[T]) Receive(item *T, timeout time.Duration) bool {
	if !await(q.items, timeout) {
		q.timeouts.Add(1.0)
		return false
	}

	q.pop(item)
	q.space <- struct{}{}
	return true
}

// Wait removes and discards the head of the queue.  It pairs with Signal for
// payload-free synchronization.
func (q *Queue[T]) Wait(timeout time.Duration) bool {
	var dummy T
	return q.Receive(&dummy, timeout)
}

// Peek copies the head of the queue into *item without removing it, blocking
// until an item arrives or the timeout elapses.
func (q *Queue[T]) Peek(item *T, timeout time.Duration) bool {
	if !await(q.items, timeout) {
		q.timeouts.Add(1.0)
		return false
	}

	critical.Do(func() {
		*item = q.buf[q.head]
	})

	// the item stays queued
	q.items <- struct{}{}
	return true
}

// Clear discards everything queued, resetting the depth to zero.  Items being
// sent concurrently with Clear may survive it.
func (q *Queue[T]) Clear() {
	for {
		select {
		case <-q.items:
		default:
			return
		}

		critical.Do(func() {
			var zero T
			q.buf[q.head] = zero
			q.head = (q.head + 1) % len(q.buf)
			q.count--
			q.depthGauge.Set(float64(q.count))
		})

		q.space <- struct{}{}
	}
}

// Available returns the queue depth for diagnostics.  The value may be stale
// the instant it is read and must not be used for flow-control decisions.
func (q *Queue[T]) Available() (depth int) {
	critical.Do(func() {
		depth = q.count
	})

	return
}
