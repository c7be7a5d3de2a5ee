//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/roracle/ocishim/common/test"
)

func pingSymbol(status Sword) map[string]interface{} {
	return map[string]interface{}{
		"OCIPing": func(unsafe.Pointer, unsafe.Pointer, Ub4) Sword {
			return status
		},
	}
}

func TestOCI_SymbolDefs(t *testing.T) {
	seen := make(map[string]bool)
	for id := symbolID(0); id < numSymbols; id++ {
		def := symbolDefs[id]
		if def.name == "" {
			t.Fatalf("symbol %d has no name", id)
		}
		if !strings.HasPrefix(def.name, "OCI") {
			t.Fatalf("unexpected symbol name %q", def.name)
		}
		if seen[def.name] {
			t.Fatalf("duplicate symbol %q", def.name)
		}
		seen[def.name] = true
		if def.proto == nil {
			t.Fatalf("symbol %q has no prototype", def.name)
		}

		got, found := symbolByName(def.name)
		test.AssertTrue(t, found, def.name+" not found by name")
		test.AssertEqual(t, id, got, "unexpected id for "+def.name)
	}

	_, found := symbolByName("OCINotARealFunction")
	test.AssertFalse(t, found, "unknown symbol found by name")
}

func TestOCI_SymbolResolvedAtMostOnce(t *testing.T) {
	res := testLoad(t, withSymbols(clientSymbols(19, 3), pingSymbol(StatusSuccess)))
	defer test.ShowBufferOnFailure(t, res.buf)

	test.AssertEqual(t, 0, res.mockLib.Lookups("OCIPing"), "symbol resolved before first use")
	test.AssertFalse(t, res.lib.Resolved("OCIPing"), "symbol resolved before first use")

	for i := 0; i < 5; i++ {
		test.AssertEqual(t, StatusSuccess, res.lib.Ping(nil, nil, 0), "unexpected status")
	}

	test.AssertEqual(t, 1, res.mockLib.Lookups("OCIPing"), "unexpected number of lookups")
	test.AssertTrue(t, res.lib.Resolved("OCIPing"), "symbol should be resolved")
}

func TestOCI_SymbolConcurrentResolution(t *testing.T) {
	res := testLoad(t, withSymbols(clientSymbols(19, 3), pingSymbol(StatusSuccess)))
	defer test.ShowBufferOnFailure(t, res.buf)

	const workers = 32
	statuses := make([]Sword, workers)
	slots := make([]*boundSymbol, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			statuses[i] = res.lib.Ping(nil, nil, 0)
			slots[i] = res.lib.symbols[symPing].Load()
		}(i)
	}
	close(start)
	wg.Wait()

	final := res.lib.symbols[symPing].Load()
	if final == nil {
		t.Fatal("slot empty after concurrent resolution")
	}
	for i := 0; i < workers; i++ {
		test.AssertEqual(t, StatusSuccess, statuses[i], "unexpected status")
		if slots[i] != final {
			t.Fatalf("worker %d observed a different binding", i)
		}
	}
	if res.mockLib.Lookups("OCIPing") < 1 {
		t.Fatal("expected at least one lookup")
	}
}

func TestOCI_MissingSymbol(t *testing.T) {
	res := testLoad(t, withSymbols(clientSymbols(19, 3), pingSymbol(StatusSuccess)))
	defer test.ShowBufferOnFailure(t, res.buf)

	status := res.lib.TransCommit(nil, nil, 0)
	test.AssertEqual(t, StatusLoadFailure, status, "unexpected status")
	test.AssertEqual(t, ErrSymbolNotFound, res.lctx.Kind(), "unexpected error kind")
	test.AssertEqual(t, "OCITransCommit", res.lctx.FnName(), "unexpected function name")
	if !strings.Contains(res.lctx.Message(), `Unable to find symbol "OCITransCommit"`) {
		t.Fatalf("unexpected message %q", res.lctx.Message())
	}
	test.AssertFalse(t, res.lib.Resolved("OCITransCommit"), "failed symbol must not be cached")

	// a failed lookup is retried on the next call
	res.lib.TransCommit(nil, nil, 0)
	test.AssertEqual(t, 2, res.mockLib.Lookups("OCITransCommit"), "unexpected number of lookups")

	// other resolved symbols keep working
	test.AssertEqual(t, StatusSuccess, res.lib.Ping(nil, nil, 0), "unexpected status")
}

func TestOCI_MissingSymbolAccessors(t *testing.T) {
	res := testLoad(t, clientSymbols(19, 3))
	defer test.ShowBufferOnFailure(t, res.buf)

	for name, tc := range map[string]struct {
		call      func() bool
		expFnName string
	}{
		"RawPtr": {
			call:      func() bool { return res.lib.RawPtr(nil, nil) == nil },
			expFnName: "OCIRawPtr",
		},
		"RawSize": {
			call:      func() bool { return res.lib.RawSize(nil, nil) == 0 },
			expFnName: "OCIRawSize",
		},
		"StringPtr": {
			call:      func() bool { return res.lib.StringPtr(nil, nil) == nil },
			expFnName: "OCIStringPtr",
		},
		"StringSize": {
			call:      func() bool { return res.lib.StringSize(nil, nil) == 0 },
			expFnName: "OCIStringSize",
		},
	} {
		t.Run(name, func(t *testing.T) {
			res.lctx.ClearError()

			test.AssertTrue(t, tc.call(), "expected zero value result")
			test.AssertEqual(t, ErrSymbolNotFound, res.lctx.Kind(), "unexpected error kind")
			test.AssertEqual(t, tc.expFnName, res.lctx.FnName(), "unexpected function name")
		})
	}
}

func TestOCI_ClientVersionAfterClose(t *testing.T) {
	res := testLoad(t, clientSymbols(19, 3))
	defer test.ShowBufferOnFailure(t, res.buf)

	var major, minor, update, patch, port Sword
	res.lib.ClientVersion(&major, &minor, &update, &patch, &port)
	test.AssertEqual(t, []Sword{19, 3, 3, 4, 5}, []Sword{major, minor, update, patch, port}, "unexpected version")

	res.lib.Close()
	res.lib.ClientVersion(&major, &minor, &update, &patch, &port)
	test.AssertEqual(t, []Sword{0, 0, 0, 0, 0}, []Sword{major, minor, update, patch, port}, "outputs must be zeroed")
	test.AssertEqual(t, ErrNotInitialized, res.lctx.Kind(), "unexpected error kind")
}

func TestOCI_ResolveAll(t *testing.T) {
	res := testLoad(t, withSymbols(clientSymbols(19, 3), pingSymbol(StatusSuccess)))
	defer test.ShowBufferOnFailure(t, res.buf)

	infos := res.lib.ResolveAll()
	test.AssertEqual(t, int(numSymbols), len(infos), "unexpected number of symbols")

	resolved := make(map[string]SymbolInfo)
	for _, info := range infos {
		if info.Resolved {
			resolved[info.Name] = info
			if info.Error != "" {
				t.Fatalf("resolved symbol %s has error %q", info.Name, info.Error)
			}
			continue
		}
		if !strings.Contains(info.Error, "Unable to find symbol") {
			t.Fatalf("unexpected error for %s: %q", info.Name, info.Error)
		}
	}

	for _, name := range []string{"OCIClientVersion", "OCIAttrGet", "OCIAttrSet", "OCIPing"} {
		if _, found := resolved[name]; !found {
			t.Fatalf("expected %s to be resolved", name)
		}
	}
	test.AssertEqual(t, 4, len(resolved), "unexpected number of resolved symbols")
	test.AssertEqual(t, "ping", resolved["OCIPing"].Action, "unexpected action")

	// already-cached symbols are not looked up again
	test.AssertEqual(t, 1, res.mockLib.Lookups("OCIAttrGet"), "unexpected number of lookups")
}
