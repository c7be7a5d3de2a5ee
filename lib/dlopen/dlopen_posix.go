//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//
//go:build darwin || freebsd || linux

package dlopen

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type (
	posixPlatform struct{}

	posixLibrary struct {
		path   string
		handle uintptr
	}
)

// DefaultPlatform returns the Platform for the running OS.
func DefaultPlatform() Platform {
	return posixPlatform{}
}

func (posixPlatform) Name() string {
	return runtime.GOOS
}

func (posixPlatform) Open(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if handle == 0 {
		return nil, &OpenError{Path: path, Err: ErrSoNotFound}
	}

	return &posixLibrary{path: path, handle: handle}, nil
}

// dlInfo mirrors Dl_info.
type dlInfo struct {
	fname *byte
	fbase uintptr
	sname *byte
	saddr uintptr
}

var (
	dladdrOnce sync.Once
	dladdr     func(addr uintptr, info *dlInfo) int32

	// moduleAnchor lives in the data segment of whichever object this
	// package is linked into.
	moduleAnchor = [1]byte{1}
)

func bindDladdr() {
	addr, err := purego.Dlsym(purego.RTLD_DEFAULT, "dladdr")
	if err != nil || addr == 0 {
		return
	}
	if err := bindFunc(purego.RegisterFunc, &dladdr, addr); err != nil {
		dladdr = nil
	}
}

// modulePath returns the path of the shared object or executable that
// contains this package, or "" if dladdr cannot tell.
func modulePath() string {
	dladdrOnce.Do(bindDladdr)
	if dladdr == nil {
		return ""
	}

	var info dlInfo
	if dladdr(uintptr(unsafe.Pointer(&moduleAnchor[0])), &info) == 0 || info.fname == nil {
		return ""
	}
	path := unix.BytePtrToString(info.fname)
	if !filepath.IsAbs(path) {
		// The main program may be reported by its argv[0].
		return ""
	}

	return path
}

// ModuleDir returns the directory of the object containing the loader.
// When built with -buildmode=c-shared this is the shared object, not the
// host executable.
func (posixPlatform) ModuleDir() (string, error) {
	path := modulePath()
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.Wrap(err, "unable to determine module path")
		}
		path = exe
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	return filepath.Dir(path), nil
}

func (posixPlatform) ThreadID() uint64 {
	return threadID()
}

func (posixPlatform) IsWrongArchitecture(error) bool {
	// dlopen reports architecture mismatches as ordinary open failures.
	return false
}

func (l *posixLibrary) Lookup(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, errors.Wrapf(err, "error resolving symbol %q", name)
	}
	if addr == 0 {
		return 0, errors.Errorf("symbol %q resolved to nil", name)
	}

	return addr, nil
}

func (l *posixLibrary) Bind(fnPtr interface{}, addr uintptr) error {
	return bindFunc(purego.RegisterFunc, fnPtr, addr)
}

func (l *posixLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	if err := purego.Dlclose(l.handle); err != nil {
		return errors.Wrapf(err, "error closing %s", l.path)
	}
	l.handle = 0

	return nil
}
