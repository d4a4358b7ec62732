// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lock

import "time"

// Scope is a scoped acquisition of a Lock.  The acquire is attempted at
// construction; Release unlocks at most once, and only if the acquire
// succeeded, so it is safe to defer unconditionally:
//
//	s := lock.Scoped(l, 100*time.Millisecond)
//	defer s.Release()
//	if !s.Acquired() {
//		return false
//	}
type Scope struct {
	l        *Lock
	acquired bool
	fromISR  bool
}

// Scoped attempts l.Lock(timeout) and records the result.
func Scoped(l *Lock, timeout time.Duration) *Scope {
	return &Scope{
		l:        l,
		acquired: l.Lock(timeout),
	}
}

// ScopedISR is the interrupt-context variant of Scoped, using the
// non-blocking acquire.  Release on the returned Scope uses the
// interrupt-context unlock.
func ScopedISR(l *Lock) *Scope {
	return &Scope{
		l:        l,
		acquired: l.LockISR(),
		fromISR:  true,
	}
}

// Acquired reports whether the construction-time acquire succeeded.  Callers
// must branch on this before touching the guarded state.
func (s *Scope) Acquired() bool {
	return s.acquired
}

// Release unlocks the underlying Lock if and only if it was acquired, and at
// most once.  Further calls are no-ops.
func (s *Scope) Release() {
	if !s.acquired {
		return
	}

	s.acquired = false
	if s.fromISR {
		s.l.UnlockISR()
	} else {
		s.l.Unlock()
	}
}
