//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package dlopen

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

type (
	// MockLibrary is a Library backed by Go functions, keyed by
	// symbol name.
	MockLibrary struct {
		sync.Mutex
		Path     string
		Symbols  map[string]interface{}
		LookupCt map[string]int
		Closed   bool
		CloseErr error

		addrs map[uintptr]interface{}
	}

	// MockPlatformConfig controls the behavior of a MockPlatform.
	MockPlatformConfig struct {
		Name string
		// Libraries maps an exact open path to the library it yields.
		Libraries map[string]*MockLibrary
		// OpenErrors maps an exact open path to the error it yields.
		// Paths in neither map fail with ErrSoNotFound.
		OpenErrors   map[string]error
		ModuleDir    string
		ModuleDirErr error
		ThreadID     uint64
		WrongArchErr error
	}

	// MockPlatform is a Platform which records open attempts.
	MockPlatform struct {
		sync.Mutex
		cfg      *MockPlatformConfig
		Attempts []string
	}
)

var _ Platform = (*MockPlatform)(nil)
var _ Library = (*MockLibrary)(nil)

// NewMockLibrary returns a MockLibrary exporting the supplied symbols.
func NewMockLibrary(path string, symbols map[string]interface{}) *MockLibrary {
	if symbols == nil {
		symbols = make(map[string]interface{})
	}
	return &MockLibrary{
		Path:     path,
		Symbols:  symbols,
		LookupCt: make(map[string]int),
	}
}

// NewMockPlatform returns a MockPlatform using the supplied config.
func NewMockPlatform(cfg *MockPlatformConfig) *MockPlatform {
	if cfg == nil {
		cfg = &MockPlatformConfig{}
	}
	if cfg.Name == "" {
		cfg.Name = "linux"
	}
	return &MockPlatform{cfg: cfg}
}

func (mp *MockPlatform) Name() string {
	return mp.cfg.Name
}

func (mp *MockPlatform) Open(path string) (Library, error) {
	mp.Lock()
	mp.Attempts = append(mp.Attempts, path)
	mp.Unlock()

	if lib, found := mp.cfg.Libraries[path]; found {
		return lib, nil
	}
	if err, found := mp.cfg.OpenErrors[path]; found {
		return nil, &OpenError{Path: path, Err: err}
	}
	return nil, &OpenError{Path: path, Err: ErrSoNotFound}
}

// OpenAttempts returns a copy of the paths passed to Open so far.
func (mp *MockPlatform) OpenAttempts() []string {
	mp.Lock()
	defer mp.Unlock()
	return append([]string(nil), mp.Attempts...)
}

func (mp *MockPlatform) ModuleDir() (string, error) {
	return mp.cfg.ModuleDir, mp.cfg.ModuleDirErr
}

func (mp *MockPlatform) ThreadID() uint64 {
	return mp.cfg.ThreadID
}

func (mp *MockPlatform) IsWrongArchitecture(err error) bool {
	if mp.cfg.WrongArchErr == nil {
		return false
	}
	return errors.Is(err, mp.cfg.WrongArchErr)
}

func (ml *MockLibrary) Lookup(name string) (uintptr, error) {
	ml.Lock()
	defer ml.Unlock()

	ml.LookupCt[name]++
	fn, found := ml.Symbols[name]
	if !found {
		return 0, errors.Errorf("error resolving symbol %q: not found", name)
	}

	if ml.addrs == nil {
		ml.addrs = make(map[uintptr]interface{})
	}
	// Fake addresses are stable per name and never zero.
	addr := uintptr(0x1000)
	for _, r := range name {
		addr = addr*31 + uintptr(r)
	}
	ml.addrs[addr] = fn

	return addr, nil
}

// Lookups returns the number of times name has been looked up.
func (ml *MockLibrary) Lookups(name string) int {
	ml.Lock()
	defer ml.Unlock()
	return ml.LookupCt[name]
}

// Bind assigns the Go function registered for addr to *fnPtr. The
// registered function must have the same type as *fnPtr.
func (ml *MockLibrary) Bind(fnPtr interface{}, addr uintptr) error {
	ml.Lock()
	fn, found := ml.addrs[addr]
	ml.Unlock()
	if !found {
		return errors.Errorf("no mock function at address %#x", addr)
	}

	dst := reflect.ValueOf(fnPtr)
	if dst.Kind() != reflect.Ptr || dst.Elem().Kind() != reflect.Func {
		return errors.Errorf("expected pointer to func, got %T", fnPtr)
	}
	src := reflect.ValueOf(fn)
	if src.Type() != dst.Elem().Type() {
		return errors.Errorf("mock function type %s does not match %s", src.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(src)

	return nil
}

func (ml *MockLibrary) Close() error {
	ml.Lock()
	defer ml.Unlock()
	ml.Closed = true
	return ml.CloseErr
}

// IsClosed returns true if Close has been called.
func (ml *MockLibrary) IsClosed() bool {
	ml.Lock()
	defer ml.Unlock()
	return ml.Closed
}
