//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"testing"
	"unsafe"

	"github.com/roracle/ocishim/lib/dlopen"
	"github.com/roracle/ocishim/logging"
)

const (
	testModuleDir = "/opt/oracle/client"
	testLibPath   = testModuleDir + "/libclntsh.so"
)

// noEnv is a lookup function for an empty environment.
func noEnv(string) (string, bool) {
	return "", false
}

// envMap returns a lookup function backed by vars.
func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, found := vars[key]
		return val, found
	}
}

// clientSymbols returns the minimal set of symbols required for a
// library reporting the given version to load.
func clientSymbols(major, minor Sword) map[string]interface{} {
	return map[string]interface{}{
		"OCIClientVersion": func(ma, mi, up, pa, po *Sword) {
			*ma, *mi, *up, *pa, *po = major, minor, 3, 4, 5
		},
		"OCIAttrGet": func(unsafe.Pointer, Ub4, unsafe.Pointer, *Ub4, Ub4, unsafe.Pointer) Sword {
			return StatusSuccess
		},
		"OCIAttrSet": func(unsafe.Pointer, Ub4, unsafe.Pointer, Ub4, Ub4, unsafe.Pointer) Sword {
			return StatusSuccess
		},
	}
}

// errorGetSymbol returns an OCIErrorGet which reports msg.
func errorGetSymbol(msg string) func(unsafe.Pointer, Ub4, *Ub1, *Sb4, *Ub1, Ub4, Ub4) Sword {
	return func(_ unsafe.Pointer, _ Ub4, _ *Ub1, code *Sb4, bufp *Ub1, bufsiz Ub4, _ Ub4) Sword {
		*code = 12345
		buf := unsafe.Slice(bufp, bufsiz)
		n := copy(buf[:len(buf)-1], msg)
		buf[n] = 0
		return StatusSuccess
	}
}

type testLoadResult struct {
	lib      *Library
	lctx     *LoadContext
	mockLib  *dlopen.MockLibrary
	platform *dlopen.MockPlatform
	buf      *logging.LogBuffer
	dbgBuf   *logging.LogBuffer
}

// testLoad loads a mock client library exporting symbols from the
// module directory. Extra options are applied after the defaults.
func testLoad(t *testing.T, symbols map[string]interface{}, opts ...Option) *testLoadResult {
	t.Helper()

	log, buf := logging.NewTestLogger(t.Name())
	mockLib := dlopen.NewMockLibrary(testLibPath, symbols)
	mp := dlopen.NewMockPlatform(&dlopen.MockPlatformConfig{
		Libraries: map[string]*dlopen.MockLibrary{
			testLibPath: mockLib,
		},
		ModuleDir: testModuleDir,
		ThreadID:  77,
	})

	dbgBuf := &logging.LogBuffer{}
	lctx := NewLoadContext()
	allOpts := append([]Option{
		WithLogger(log),
		WithPlatform(mp),
		WithLookupEnv(noEnv),
		WithDebugOutput(dbgBuf),
	}, opts...)

	lib, err := Load(lctx, allOpts...)
	if err != nil {
		t.Fatalf("unexpected load failure: %s", err)
	}

	return &testLoadResult{
		lib:      lib,
		lctx:     lctx,
		mockLib:  mockLib,
		platform: mp,
		buf:      buf,
		dbgBuf:   dbgBuf,
	}
}

// withSymbols merges extra into a base symbol map.
func withSymbols(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for name, fn := range extra {
		base[name] = fn
	}
	return base
}
