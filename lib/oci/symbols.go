//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"reflect"

	"github.com/pkg/errors"
)

type (
	symbolID int

	// diagMode selects how a forwarded call reports failures.
	diagMode int

	symbolDef struct {
		name   string
		action string
		diag   diagMode
		// proto is a typed nil pointer to the Go function type the
		// symbol is bound to.
		proto interface{}
	}

	boundSymbol struct {
		addr uintptr
		fn   interface{}
	}

	// SymbolInfo describes the resolution state of one native symbol.
	SymbolInfo struct {
		Name     string `json:"name"`
		Action   string `json:"action"`
		Resolved bool   `json:"resolved"`
		Error    string `json:"error,omitempty"`
	}
)

const (
	// status is checked and failures traced with the native message
	diagStatus diagMode = iota
	// as diagStatus, plus an unreported error trace
	diagAllocFree
	// no status; resolution failures are recorded in the context only
	diagNone
	// environment creation rules apply
	diagEnvCreate
)

func (dm diagMode) String() string {
	return [...]string{"status", "alloc_free", "none", "env_create"}[dm]
}

// symbolByName returns the id for a native symbol name.
func symbolByName(name string) (symbolID, bool) {
	for id := symbolID(0); id < numSymbols; id++ {
		if symbolDefs[id].name == name {
			return id, true
		}
	}
	return 0, false
}

// errNotLoaded is returned when a symbol is requested from a library
// which has been closed.
var errNotLoaded = errors.New("the client library is not loaded")

type symbolError struct {
	kind ErrorKind
	err  error
}

func (se *symbolError) Error() string {
	return se.err.Error()
}

// lookupSymbol finds and binds a symbol without caching it.
func (l *Library) lookupSymbol(id symbolID) (*boundSymbol, error) {
	def := &symbolDefs[id]

	addr, err := l.handle.Lookup(def.name)
	l.metrics.recordResolution(def.name, err == nil)
	if err != nil {
		return nil, &symbolError{kind: ErrSymbolNotFound, err: err}
	}

	fnPtr := reflect.New(reflect.TypeOf(def.proto).Elem())
	if err := l.handle.Bind(fnPtr.Interface(), addr); err != nil {
		return nil, &symbolError{kind: ErrOSError, err: err}
	}
	l.log.Tracef("resolved %s at %#x", def.name, addr)

	return &boundSymbol{addr: addr, fn: fnPtr.Elem().Interface()}, nil
}

// ensureResolved returns the cached binding for a symbol, resolving
// it on first use. A failure is recorded in the load context.
func (l *Library) ensureResolved(id symbolID) (*boundSymbol, bool) {
	def := &symbolDefs[id]

	if l.closed.IsTrue() {
		l.lctx.setError(ErrNotInitialized, def.name, l.lctx.actionFor(def.action), "%s", errNotLoaded)
		return nil, false
	}

	sym, err := l.symbols[id].LoadOrStore(func() (*boundSymbol, error) {
		return l.lookupSymbol(id)
	})
	if err != nil {
		kind := ErrSymbolNotFound
		if se, ok := err.(*symbolError); ok {
			kind = se.kind
		}
		l.lctx.setError(kind, def.name, l.lctx.actionFor(def.action),
			"Unable to find symbol \"%s\": %s", def.name, err)
		return nil, false
	}

	return sym, true
}

// resolve returns the typed function bound to a symbol.
func resolve[F any](l *Library, id symbolID) (F, bool) {
	var zero F

	sym, ok := l.ensureResolved(id)
	if !ok {
		return zero, false
	}
	fn, ok := sym.fn.(F)
	if !ok {
		l.lctx.setError(ErrOSError, symbolDefs[id].name, "", "symbol bound with unexpected type %T", sym.fn)
		return zero, false
	}

	if dbg := l.lctx.Debug(); dbg.Enabled(DebugFns) {
		dbg.Printf("fn %s(%s)", symbolDefs[id].name, l.lctx.actionFor(symbolDefs[id].action))
	}

	return fn, true
}

// Resolved returns true if the named symbol has already been bound.
func (l *Library) Resolved(name string) bool {
	id, found := symbolByName(name)
	if !found {
		return false
	}
	return l.symbols[id].Load() != nil
}

// ResolveAll attempts to bind every known symbol and reports the result
// for each. Symbols which resolve are cached for later calls.
func (l *Library) ResolveAll() []SymbolInfo {
	infos := make([]SymbolInfo, 0, numSymbols)

	for id := symbolID(0); id < numSymbols; id++ {
		def := &symbolDefs[id]
		info := SymbolInfo{Name: def.name, Action: def.action}

		if _, ok := l.ensureResolved(id); ok {
			info.Resolved = true
		} else {
			info.Error = l.lctx.Message()
		}
		infos = append(infos, info)
	}

	return infos
}

// resetSymbols clears every cached binding.
func (l *Library) resetSymbols() {
	for id := range l.symbols {
		l.symbols[id].Reset()
	}
}
