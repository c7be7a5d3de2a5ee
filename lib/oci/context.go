//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"fmt"
	"unicode/utf8"

	"github.com/roracle/ocishim/lib/atm"
	"github.com/roracle/ocishim/lib/dlopen"
)

// MaxErrorMessageLen bounds the message recorded in a LoadContext.
const MaxErrorMessageLen = 3072

// LoadState tracks the progress of loading the client library.
type LoadState uint32

const (
	LoadStateUnloaded LoadState = iota
	LoadStateLoading
	LoadStateLoaded
	LoadStateFailed
)

func (ls LoadState) String() string {
	return [...]string{"unloaded", "loading", "loaded", "failed"}[ls]
}

// LoadContext records the most recent error raised while loading or
// calling the client library, along with the loaded library handle
// and the debug trace settings.
//
// The error fields are not synchronized. A caller reading them right
// after its own failed call gets a reliable result only if no other
// goroutine failed in the meantime.
type LoadContext struct {
	kind     ErrorKind
	fnName   string
	action   string
	message  string
	withInfo atm.Bool

	actionOverride string

	state  atm.Uint32
	handle dlopen.Library
	debug  DebugConfig
}

// NewLoadContext returns a LoadContext ready for a single load.
func NewLoadContext() *LoadContext {
	return &LoadContext{}
}

// truncateMessage bounds msg to MaxErrorMessageLen bytes without
// splitting a UTF-8 sequence.
func truncateMessage(msg string) string {
	if len(msg) <= MaxErrorMessageLen {
		return msg
	}

	cut := MaxErrorMessageLen
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}

// setError records an error of the given kind.
func (lc *LoadContext) setError(kind ErrorKind, fnName, action, format string, args ...interface{}) {
	lc.kind = kind
	lc.fnName = fnName
	lc.action = action
	lc.message = truncateMessage(fmt.Sprintf(format, args...))
}

// ClearError resets the recorded error.
func (lc *LoadContext) ClearError() {
	lc.kind = ErrNone
	lc.fnName = ""
	lc.action = ""
	lc.message = ""
}

// Kind returns the kind of the last recorded error.
func (lc *LoadContext) Kind() ErrorKind {
	return lc.kind
}

// FnName returns the function which raised the last recorded error.
func (lc *LoadContext) FnName() string {
	return lc.fnName
}

// Action returns what was being attempted when the last error occurred.
func (lc *LoadContext) Action() string {
	return lc.action
}

// Message returns the last recorded error message.
func (lc *LoadContext) Message() string {
	return lc.message
}

// MessageLen returns the length in bytes of the last error message.
func (lc *LoadContext) MessageLen() int {
	return len(lc.message)
}

// WithInfo returns true if environment creation reported success
// with additional information.
func (lc *LoadContext) WithInfo() bool {
	return lc.withInfo.IsTrue()
}

// State returns the load state.
func (lc *LoadContext) State() LoadState {
	return LoadState(lc.state.Load())
}

// Debug returns the trace settings.
func (lc *LoadContext) Debug() *DebugConfig {
	return &lc.debug
}

// Err returns the last recorded error as a fault, or nil if none has
// been recorded.
func (lc *LoadContext) Err() error {
	if lc.kind == ErrNone {
		return nil
	}
	return newFault(lc.kind, lc.message)
}

// SetAction replaces the action text reported for subsequent failures.
// An empty string restores the per-function defaults.
func (lc *LoadContext) SetAction(action string) {
	lc.actionOverride = action
}

func (lc *LoadContext) actionFor(defAction string) string {
	if lc.actionOverride != "" {
		return lc.actionOverride
	}
	return defAction
}

// beginLoad moves the context from unloaded to loading.
func (lc *LoadContext) beginLoad() bool {
	return lc.state.CompareAndSwap(uint32(LoadStateUnloaded), uint32(LoadStateLoading))
}

func (lc *LoadContext) finishLoad(handle dlopen.Library) {
	lc.handle = handle
	lc.state.Store(uint32(LoadStateLoaded))
}

func (lc *LoadContext) failLoad() {
	lc.handle = nil
	lc.state.Store(uint32(LoadStateFailed))
}
