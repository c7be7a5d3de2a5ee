//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package atm_test

import (
	"testing"

	"github.com/roracle/ocishim/lib/atm"
)

func TestAtomicBool(t *testing.T) {
	for name, tc := range map[string]struct {
		start      bool
		op         string
		expEnd     bool
		expChanged bool
	}{
		"true-IsTrue":       {start: true, op: "IsTrue", expEnd: true},
		"true-IsFalse":      {start: true, op: "IsFalse", expEnd: false},
		"false-IsTrue":      {start: false, op: "IsTrue", expEnd: false},
		"false-IsFalse":     {start: false, op: "IsFalse", expEnd: true},
		"true-SetTrue":      {start: true, op: "SetTrue", expEnd: true},
		"true-SetFalse":     {start: true, op: "SetFalse", expEnd: false},
		"false-SetTrue":     {start: false, op: "SetTrue", expEnd: true},
		"false-SetTrueCond": {start: false, op: "SetTrueCond", expEnd: true, expChanged: true},
		"true-SetTrueCond":  {start: true, op: "SetTrueCond", expEnd: true},
	} {
		cmpBool := func(t *testing.T, expected, actual bool) {
			t.Helper()

			if actual != expected {
				t.Fatalf("expected %t; got %t", expected, actual)
			}
		}

		t.Run(name, func(t *testing.T) {
			b := atm.NewBool(tc.start)

			switch tc.op {
			case "SetTrue":
				b.SetTrue()
				cmpBool(t, tc.expEnd, b.Load())
			case "SetTrueCond":
				cmpBool(t, tc.expChanged, b.SetTrueCond())
				cmpBool(t, tc.expEnd, b.Load())
			case "IsTrue":
				cmpBool(t, tc.expEnd, b.IsTrue())
			case "SetFalse":
				b.SetFalse()
				cmpBool(t, tc.expEnd, b.Load())
			case "IsFalse":
				cmpBool(t, tc.expEnd, b.IsFalse())
			default:
				t.Fatalf("unhandled op %q", tc.op)
			}
		})
	}
}

func TestAtomicUint32_CompareAndSwap(t *testing.T) {
	var u atm.Uint32

	if !u.CompareAndSwap(0, 1) {
		t.Fatal("expected first swap to succeed")
	}
	if u.CompareAndSwap(0, 2) {
		t.Fatal("expected second swap to fail")
	}
	if u.Load() != 1 {
		t.Fatalf("expected 1; got %d", u.Load())
	}
	u.Store(3)
	if u.Load() != 3 {
		t.Fatalf("expected 3; got %d", u.Load())
	}
}
