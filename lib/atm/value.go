//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package atm

import "sync/atomic"

// Value holds a lazily-initialized pointer which is published at
// most once until Reset. Concurrent initializers may race; exactly
// one result is kept and every caller observes it.
type Value[T any] struct {
	ptr atomic.Pointer[T]
}

// Load returns the published value, or nil if none has been set.
func (v *Value[T]) Load() *T {
	return v.ptr.Load()
}

// LoadOrStore returns the published value if present. Otherwise it
// calls init and attempts to publish the result. If another caller
// published first, that caller's value is returned instead. Errors
// from init are returned without publishing anything.
func (v *Value[T]) LoadOrStore(init func() (*T, error)) (*T, error) {
	if cur := v.ptr.Load(); cur != nil {
		return cur, nil
	}

	val, err := init()
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}

	if v.ptr.CompareAndSwap(nil, val) {
		return val, nil
	}
	return v.ptr.Load(), nil
}

// Reset clears the published value.
func (v *Value[T]) Reset() {
	v.ptr.Store(nil)
}
