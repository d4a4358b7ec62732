// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lock

import (
	"time"

	"github.com/xmidt-org/rtsync/clock"
)

// Lock is a binary mutex with separate task-context and interrupt-context
// method sets.  Task-side callers may block, subject to a tick-quantized
// timeout; interrupt-side callers use only the non-blocking variants.
//
// Holder identity is not tracked.  Unlocking a Lock held by someone else is
// caller misuse, and a holder that re-acquires its own Lock self-deadlocks.
// Neither condition is detected.
type Lock struct {
	c chan struct{}
}

// New constructs an unlocked Lock.  Close must be called after all use to
// release the underlying state.
func New() *Lock {
	return &Lock{
		c: make(chan struct{}, 1),
	}
}

// Close releases the Lock's underlying state.  All use must complete before
// Close; acquiring a closed Lock panics.
func (l *Lock) Close() {
	close(l.c)
}

// Lock attempts to acquire within the given timeout, quantized to whole kernel
// ticks.  clock.Forever (or any negative timeout) blocks indefinitely and a
// zero timeout is a pure try.  Lock returns false only on timeout.
func (l *Lock) Lock(timeout time.Duration) bool {
	if timeout < 0 {
		l.c <- struct{}{}
		return true
	}

	select {
	case l.c <- struct{}{}:
		return true
	default:
	}

	if timeout == 0 {
		return false
	}

	t := time.NewTimer(clock.Quantize(timeout))
	defer t.Stop()

	select {
	case l.c <- struct{}{}:
		return true
	case <-t.C:
		return false
	}
}

// LockISR attempts a non-blocking acquire.  This is the only acquire legal
// from interrupt context.
func (l *Lock) LockISR() bool {
	select {
	case l.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// Unlock releases the Lock.  The caller must hold it: exactly one Unlock per
// successful acquire.  Unlocking an unheld Lock panics.
func (l *Lock) Unlock() {
	select {
	case <-l.c:
	default:
		panic("lock: unlock of an unheld Lock")
	}
}

// UnlockISR is the interrupt-context release, with the same contract as
// Unlock.
func (l *Lock) UnlockISR() {
	select {
	case <-l.c:
	default:
		panic("lock: unlock of an unheld Lock")
	}
}
