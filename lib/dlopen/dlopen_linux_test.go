//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package dlopen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDlopen_Libc(t *testing.T) {
	for name, tc := range map[string]struct {
		lib           string
		shouldSucceed bool
	}{
		"libc": {
			lib:           "libc.so.6",
			shouldSucceed: true,
		},
		"missing": {
			lib: "libstrange.so",
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := DefaultPlatform()

			lib, err := p.Open(tc.lib)
			if !tc.shouldSucceed {
				if err == nil {
					t.Fatal("expected open to fail")
				}
				if err.Error() == "" {
					t.Fatal("expected OS error text")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected open to succeed: %v", err)
			}
			defer lib.Close()

			addr, err := lib.Lookup("strlen")
			if err != nil {
				t.Fatal(err)
			}

			var strlen func(string) int
			if err := lib.Bind(&strlen, addr); err != nil {
				t.Fatal(err)
			}
			if got := strlen("four"); got != 4 {
				t.Fatalf("expected 4, got %d", got)
			}

			if _, err := lib.Lookup("no_such_symbol_here"); err == nil {
				t.Fatal("expected lookup failure")
			}
		})
	}
}

func TestDlopen_ThreadID(t *testing.T) {
	if DefaultPlatform().ThreadID() == 0 {
		t.Fatal("expected non-zero thread id")
	}
}

func TestDlopen_ModuleDir(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	// A test binary links this package into the executable itself.
	if path := modulePath(); path != "" {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
		if path != exe {
			t.Fatalf("expected module path %q, got %q", exe, path)
		}
	}

	dir, err := DefaultPlatform().ModuleDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Dir(exe) {
		t.Fatalf("expected module dir %q, got %q", filepath.Dir(exe), dir)
	}
}
