// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lock

import (
	"golang.org/x/exp/constraints"

	"github.com/xmidt-org/rtsync/clock"
)

// Number constrains the scalar types a Value can guard.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is a scalar guarded by a private Lock.  Every operation is one
// complete lock/unlock pair covering a single copy or arithmetic step, so no
// partial mutation is ever observable and each critical section stays short.
//
// Value is not usable from interrupt context: every operation may block.
type Value[T Number] struct {
	mutex *Lock
	value T
}

// NewValue constructs a Value holding the given initial scalar.
func NewValue[T Number](initial T) *Value[T] {
	return &Value[T]{
		mutex: New(),
		value: initial,
	}
}

// Load returns a copy of the guarded scalar.
func (v *Value[T]) Load() (value T) {
	v.mutex.Lock(clock.Forever)
	value = v.value
	v.mutex.Unlock()
	return
}

// Store replaces the guarded scalar.
func (v *Value[T]) Store(value T) {
	v.mutex.Lock(clock.Forever)
	v.value = value
	v.mutex.Unlock()
}

// Inc increments the guarded scalar and returns the new value.
func (v *Value[T]) Inc() (value T) {
	v.mutex.Lock(clock.Forever)
	v.value++
	value = v.value
	v.mutex.Unlock()
	return
}

// Dec decrements the guarded scalar and returns the new value.
func (v *Value[T]) Dec() (value T) {
	v.mutex.Lock(clock.Forever)
	v.value--
	value = v.value
	v.mutex.Unlock()
	return
}

// PostInc increments the guarded scalar and returns the prior value.
func (v *Value[T]) PostInc() (value T) {
	v.mutex.Lock(clock.Forever)
	value = v.value
	v.value++
	v.mutex.Unlock()
	return
}

// PostDec decrements the guarded scalar and returns the prior value.
func (v *Value[T]) PostDec() (value T) {
	v.mutex.Lock(clock.Forever)
	value = v.value
	v.value--
	v.mutex.Unlock()
	return
}
