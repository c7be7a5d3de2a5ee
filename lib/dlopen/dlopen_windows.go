//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//
//go:build windows

package dlopen

import (
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type (
	windowsPlatform struct{}

	windowsLibrary struct {
		path   string
		handle windows.Handle
	}
)

// DefaultPlatform returns the Platform for the running OS.
func DefaultPlatform() Platform {
	return windowsPlatform{}
}

func (windowsPlatform) Name() string {
	return runtime.GOOS
}

func (windowsPlatform) Open(path string) (Library, error) {
	var flags uintptr
	if filepath.IsAbs(path) {
		// Resolve the library's own dependencies from its directory.
		flags = windows.LOAD_WITH_ALTERED_SEARCH_PATH
	}

	handle, err := windows.LoadLibraryEx(path, 0, flags)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return &windowsLibrary{path: path, handle: handle}, nil
}

// moduleAnchor lives in the image of whichever module this package is
// linked into.
var moduleAnchor = [2]uint16{1, 0}

// ModuleDir returns the directory of the module containing the loader.
// When built with -buildmode=c-shared this is the DLL, not the host
// executable.
func (windowsPlatform) ModuleDir() (string, error) {
	var module windows.Handle
	flags := uint32(windows.GET_MODULE_HANDLE_EX_FLAG_FROM_ADDRESS |
		windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT)
	if err := windows.GetModuleHandleEx(flags, (*uint16)(unsafe.Pointer(&moduleAnchor[0])), &module); err != nil {
		// Fall back to the process executable.
		module = 0
	}

	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetModuleFileName(module, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", errors.Wrap(err, "unable to determine module path")
	}

	return filepath.Dir(windows.UTF16ToString(buf[:n])), nil
}

func (windowsPlatform) ThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

func (windowsPlatform) IsWrongArchitecture(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return errno == windows.ERROR_BAD_EXE_FORMAT
}

func (l *windowsLibrary) Lookup(name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0, errors.Wrapf(err, "error resolving symbol %q", name)
	}

	return addr, nil
}

func (l *windowsLibrary) Bind(fnPtr interface{}, addr uintptr) error {
	return bindFunc(purego.RegisterFunc, fnPtr, addr)
}

func (l *windowsLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	if err := windows.FreeLibrary(l.handle); err != nil {
		return errors.Wrapf(err, "error closing %s", l.path)
	}
	l.handle = 0

	return nil
}
