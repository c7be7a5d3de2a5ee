//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package atm_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/lib/atm"
)

func TestAtomicValue_LoadOrStore(t *testing.T) {
	var v atm.Value[int]

	if v.Load() != nil {
		t.Fatal("expected nil zero value")
	}

	_, err := v.LoadOrStore(func() (*int, error) {
		return nil, errors.New("no")
	})
	if err == nil {
		t.Fatal("expected error from init")
	}
	if v.Load() != nil {
		t.Fatal("failed init must not publish")
	}

	one := 1
	got, err := v.LoadOrStore(func() (*int, error) { return &one, nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != &one {
		t.Fatalf("expected published pointer")
	}

	two := 2
	got, _ = v.LoadOrStore(func() (*int, error) { return &two, nil })
	if *got != 1 {
		t.Fatalf("expected first value to stick; got %d", *got)
	}

	v.Reset()
	if v.Load() != nil {
		t.Fatal("expected nil after Reset")
	}
}

func TestAtomicValue_ConcurrentInit(t *testing.T) {
	var v atm.Value[int]
	var calls int32
	var wg sync.WaitGroup

	results := make([]*int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val := i
			results[i], _ = v.LoadOrStore(func() (*int, error) {
				atomic.AddInt32(&calls, 1)
				return &val, nil
			})
		}(i)
	}
	wg.Wait()

	winner := v.Load()
	for i, r := range results {
		if r != winner {
			t.Fatalf("result %d: expected winner %p; got %p", i, winner, r)
		}
	}
	if atomic.LoadInt32(&calls) < 1 {
		t.Fatal("expected at least one init call")
	}
}
