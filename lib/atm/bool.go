//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package atm provides a collection of thread-safe types.
package atm

import "sync/atomic"

// Bool provides an atomic boolean value.
type Bool uint32

// NewBool returns a Bool set to the provided starting value.
func NewBool(in bool) Bool {
	var b Bool
	if in {
		b.SetTrue()
	}
	return b
}

// SetTrue sets the Bool to true.
func (b *Bool) SetTrue() {
	atomic.StoreUint32((*uint32)(b), 1)
}

// SetTrueCond sets the Bool to true if it's false.
// Returns a bool indicating whether or not the value changed.
func (b *Bool) SetTrueCond() bool {
	return atomic.CompareAndSwapUint32((*uint32)(b), 0, 1)
}

// SetFalse sets the Bool to false.
func (b *Bool) SetFalse() {
	atomic.StoreUint32((*uint32)(b), 0)
}

// IsTrue returns true if the value is true.
func (b *Bool) IsTrue() bool {
	return b.Load()
}

// IsFalse returns true if the value is false.
func (b *Bool) IsFalse() bool {
	return !b.Load()
}

// Load returns a bool representing the value.
func (b *Bool) Load() bool {
	return atomic.LoadUint32((*uint32)(b)) != 0
}

// Uint32 provides an atomic uint32 value suitable for small
// state machines.
type Uint32 uint32

// Load returns the current value.
func (u *Uint32) Load() uint32 {
	return atomic.LoadUint32((*uint32)(u))
}

// Store sets the value.
func (u *Uint32) Store(val uint32) {
	atomic.StoreUint32((*uint32)(u), val)
}

// CompareAndSwap sets the value to new if the current value is old,
// and reports whether the swap took place.
func (u *Uint32) CompareAndSwap(old, new uint32) bool {
	return atomic.CompareAndSwapUint32((*uint32)(u), old, new)
}
