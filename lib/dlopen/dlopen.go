//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package dlopen provides a small platform abstraction over the native
// dynamic loader: opening a shared library, looking up symbols, binding
// them to typed Go functions and closing the library again.
package dlopen

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ErrSoNotFound is returned when a library could not be opened.
var ErrSoNotFound = errors.New("unable to open a handle to the library")

type (
	// Library represents an open handle to a shared library.
	Library interface {
		// Lookup returns the address of the named symbol.
		Lookup(name string) (uintptr, error)
		// Bind makes the function pointed to by fnPtr call the native
		// function at addr.
		Bind(fnPtr interface{}, addr uintptr) error
		// Close releases the library handle.
		Close() error
	}

	// Platform provides the OS specific pieces needed to locate and
	// open a shared library.
	Platform interface {
		// Name returns the GOOS-style platform name.
		Name() string
		// Open attempts to open the library at path, which may be a bare
		// file name to be resolved by the OS default search.
		Open(path string) (Library, error)
		// ModuleDir returns the directory of the module (shared object or
		// executable) that contains the loader code.
		ModuleDir() (string, error)
		// ThreadID returns an identifier for the calling OS thread.
		ThreadID() uint64
		// IsWrongArchitecture returns true if the Open error indicates
		// the file exists but was built for another architecture.
		IsWrongArchitecture(err error) bool
	}
)

// OpenError describes a failure to open a library, carrying the
// OS-provided text.
type OpenError struct {
	Path string
	Err  error
}

func (oe *OpenError) Error() string {
	return oe.Err.Error()
}

func (oe *OpenError) Unwrap() error {
	return oe.Err
}

// Cause allows errors.Cause to see the underlying OS error.
func (oe *OpenError) Cause() error {
	return oe.Err
}

// bindFunc binds fnPtr to addr with the supplied register function,
// converting a registration panic into an error.
func bindFunc(register func(interface{}, uintptr), fnPtr interface{}, addr uintptr) (err error) {
	if addr == 0 {
		return errors.New("cannot bind a nil symbol address")
	}
	if fnPtr == nil {
		return errors.New("nil function pointer")
	}
	if rt := reflect.TypeOf(fnPtr); rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Func {
		return errors.Errorf("expected pointer to func, got %s", rt)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to bind function: %v", r)
		}
	}()
	register(fnPtr, addr)

	return nil
}
