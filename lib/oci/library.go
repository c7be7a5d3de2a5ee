//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"bytes"
	"strings"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/lib/atm"
	"github.com/roracle/ocishim/lib/dlopen"
	"github.com/roracle/ocishim/logging"
)

// Library is a loaded and validated client library. Its methods
// forward to the native functions of the same name, resolving each
// one on first use.
//
// Close must not be called concurrently with forwarded calls.
type Library struct {
	lctx    *LoadContext
	handle  dlopen.Library
	path    string
	version VersionInfo
	log     logging.Logger
	metrics *Metrics
	closed  atm.Bool
	symbols [numSymbols]atm.Value[boundSymbol]
}

func newLibrary(lctx *LoadContext, handle dlopen.Library, path string, lo *loadOptions) *Library {
	return &Library{
		lctx:    lctx,
		handle:  handle,
		path:    path,
		log:     lo.log,
		metrics: lo.metrics,
	}
}

// Version returns the client version found during validation.
func (l *Library) Version() VersionInfo {
	return l.version
}

// Path returns the path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Context returns the load context the library reports errors into.
func (l *Library) Context() *LoadContext {
	return l.lctx
}

// Close releases the native library. Further forwarded calls fail with
// StatusLoadFailure.
func (l *Library) Close() error {
	if !l.closed.SetTrueCond() {
		return nil
	}
	l.resetSymbols()

	if err := l.handle.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", l.path)
	}
	return nil
}

// errorMessage fetches the native message for the most recent error on
// hndlp. Failures to fetch are recorded in the load context.
func (l *Library) errorMessage(hndlp unsafe.Pointer, htype Ub4) string {
	if hndlp == nil {
		return "no error handle available"
	}

	fn, ok := resolve[fnErrorGet](l, symErrorGet)
	if !ok {
		return "unable to get error message: " + l.lctx.Message()
	}

	var code Sb4
	buf := make([]byte, MaxErrorMessageLen)
	status := fn(hndlp, 1, nil, &code, &buf[0], Ub4(len(buf)), htype)
	if status != StatusSuccess {
		l.lctx.setError(ErrGetErrorMessage, symbolDefs[symErrorGet].name, symbolDefs[symErrorGet].action,
			"unable to get error message (status %d)", status)
		return l.lctx.Message()
	}

	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		buf = buf[:idx]
	}
	return strings.TrimRight(string(buf), "\n")
}

// check records a forwarded call and writes any debug traces for a
// failed status. The status is always returned unchanged.
func (l *Library) check(id symbolID, status Sword, errhp unsafe.Pointer) Sword {
	return l.checkHandle(id, status, errhp, HTypeError)
}

// checkEnv is check for calls whose diagnostics live on an environment
// handle rather than an error handle.
func (l *Library) checkEnv(id symbolID, status Sword, envhp unsafe.Pointer) Sword {
	return l.checkHandle(id, status, envhp, HTypeEnv)
}

func (l *Library) checkHandle(id symbolID, status Sword, hndlp unsafe.Pointer, htype Ub4) Sword {
	def := &symbolDefs[id]
	l.metrics.recordCall(def.name, status)

	if !isFailure(status) {
		return status
	}

	dbg := l.lctx.Debug()
	action := l.lctx.actionFor(def.action)
	if def.diag == diagAllocFree && dbg.Enabled(DebugUnreportedErrors) {
		dbg.Printf("%s (%s) returned unreported error status %d", def.name, action, status)
	}
	if dbg.Enabled(DebugErrors) {
		dbg.Printf("%s (%s) failed: %s", def.name, action, l.errorMessage(hndlp, htype))
	}

	return status
}

// envResult applies the environment creation rules: a usable handle
// with a success status is plain success, and no handle at all is an
// environment creation failure.
func (l *Library) envResult(id symbolID, status Sword, envhpp *unsafe.Pointer) Sword {
	def := &symbolDefs[id]

	if envhpp == nil || *envhpp == nil {
		l.metrics.recordCall(def.name, StatusError)
		l.lctx.setError(ErrCreateEnv, def.name, l.lctx.actionFor(def.action),
			"unable to create environment (status %d)", status)
		if dbg := l.lctx.Debug(); dbg.Enabled(DebugErrors) {
			dbg.Printf("%s (%s) failed: %s", def.name, l.lctx.actionFor(def.action), l.lctx.Message())
		}
		return StatusError
	}

	switch status {
	case StatusSuccessWithInfo:
		l.lctx.withInfo.SetTrue()
		fallthrough
	case StatusSuccess:
		l.metrics.recordCall(def.name, StatusSuccess)
		return StatusSuccess
	}

	return l.checkEnv(id, status, *envhpp)
}

// accessed records a call to a function which returns no status.
func (l *Library) accessed(id symbolID) {
	l.metrics.recordCall(symbolDefs[id].name, StatusSuccess)
}
