//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package dlopen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestDlopen_bindFunc(t *testing.T) {
	var target func() int32

	for name, tc := range map[string]struct {
		fnPtr    interface{}
		addr     uintptr
		register func(interface{}, uintptr)
		expErr   bool
	}{
		"nil address": {
			fnPtr:  &target,
			expErr: true,
		},
		"nil fnPtr": {
			addr:   0x1000,
			expErr: true,
		},
		"not a pointer": {
			fnPtr:  target,
			addr:   0x1000,
			expErr: true,
		},
		"register panics": {
			fnPtr: &target,
			addr:  0x1000,
			register: func(interface{}, uintptr) {
				panic("bad signature")
			},
			expErr: true,
		},
		"success": {
			fnPtr:    &target,
			addr:     0x1000,
			register: func(interface{}, uintptr) {},
		},
	} {
		t.Run(name, func(t *testing.T) {
			register := tc.register
			if register == nil {
				register = func(interface{}, uintptr) {
					t.Fatal("register should not be called")
				}
			}

			err := bindFunc(register, tc.fnPtr, tc.addr)
			if (err != nil) != tc.expErr {
				t.Fatalf("expected error: %t, got %v", tc.expErr, err)
			}
		})
	}
}

func TestDlopen_MockPlatform(t *testing.T) {
	errWrongArch := errors.New("bad exe format")
	lib := NewMockLibrary("/opt/lib/libfoo.so", map[string]interface{}{
		"foo": func(a int32) int32 { return a * 2 },
	})
	mp := NewMockPlatform(&MockPlatformConfig{
		Libraries: map[string]*MockLibrary{
			"/opt/lib/libfoo.so": lib,
		},
		OpenErrors: map[string]error{
			"libfoo.so": errWrongArch,
		},
		WrongArchErr: errWrongArch,
		ModuleDir:    "/opt/bin",
		ThreadID:     42,
	})

	_, err := mp.Open("libfoo.so")
	if !mp.IsWrongArchitecture(err) {
		t.Fatalf("expected wrong architecture error, got %v", err)
	}
	if _, err := mp.Open("libbar.so"); !errors.Is(err, ErrSoNotFound) {
		t.Fatalf("expected ErrSoNotFound, got %v", err)
	}

	opened, err := mp.Open("/opt/lib/libfoo.so")
	if err != nil {
		t.Fatal(err)
	}

	addr, err := opened.Lookup("foo")
	if err != nil {
		t.Fatal(err)
	}
	var foo func(int32) int32
	if err := opened.Bind(&foo, addr); err != nil {
		t.Fatal(err)
	}
	if got := foo(21); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	var wrong func() int32
	if err := opened.Bind(&wrong, addr); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if _, err := opened.Lookup("missing"); err == nil {
		t.Fatal("expected lookup failure")
	}

	if err := opened.Close(); err != nil {
		t.Fatal(err)
	}
	if !lib.IsClosed() {
		t.Fatal("expected library to be closed")
	}

	expAttempts := []string{"libfoo.so", "libbar.so", "/opt/lib/libfoo.so"}
	if diff := cmp.Diff(expAttempts, mp.OpenAttempts()); diff != "" {
		t.Fatalf("unexpected attempts (-want, +got):\n%s\n", diff)
	}
	if diff := cmp.Diff(map[string]int{"foo": 1, "missing": 1}, lib.LookupCt); diff != "" {
		t.Fatalf("unexpected lookup counts (-want, +got):\n%s\n", diff)
	}
	if mp.ThreadID() != 42 {
		t.Fatalf("unexpected thread id %d", mp.ThreadID())
	}
}
