//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/roracle/ocishim/lib/dlopen"
)

// Search strategies, in the order they are tried.
const (
	StrategyLibDir     = "lib_dir"
	StrategyModuleDir  = "module_dir"
	StrategyDefault    = "default"
	StrategyOracleHome = "oracle_home"
)

var clientVersionSuffixes = []string{"23.1", "21.1", "20.1", "19.1", "18.1", "12.1", "11.1"}

// CandidateNames returns the client library file names for goos in
// the order they are tried: the unversioned name first, then
// versioned names from newest to oldest.
func CandidateNames(goos string) []string {
	var base string
	switch goos {
	case "windows":
		return []string{"oci.dll"}
	case "aix":
		return []string{"libclntsh.a(shr.o)"}
	case "darwin":
		base = "libclntsh.dylib"
	default:
		base = "libclntsh.so"
	}

	names := []string{base}
	for _, suffix := range clientVersionSuffixes {
		names = append(names, base+"."+suffix)
	}
	return names
}

// SearchDir is one directory tried while locating the library. An
// empty Dir means the bare name is handed to the OS loader.
type SearchDir struct {
	Strategy string `json:"strategy"`
	Dir      string `json:"dir"`
}

// searchDirs returns the directories to search, in order.
func (lo *loadOptions) searchDirs() []SearchDir {
	if lo.cfg.LibDir != "" {
		return []SearchDir{{Strategy: StrategyLibDir, Dir: lo.cfg.LibDir}}
	}

	var dirs []SearchDir
	if modDir, err := lo.platform.ModuleDir(); err != nil {
		lo.log.Debugf("skipping module directory: %s", err)
	} else if modDir != "" {
		dirs = append(dirs, SearchDir{Strategy: StrategyModuleDir, Dir: modDir})
	}

	dirs = append(dirs, SearchDir{Strategy: StrategyDefault})

	if lo.platform.Name() != "windows" {
		if home := lo.oracleHome(); home != "" {
			dirs = append(dirs, SearchDir{Strategy: StrategyOracleHome, Dir: filepath.Join(home, "lib")})
		}
	}

	return dirs
}

// SearchPlan returns the directories and candidate names that a load
// with the given options would try.
func SearchPlan(opts ...Option) ([]SearchDir, []string) {
	lo := defaultLoadOptions()
	for _, opt := range opts {
		opt(lo)
	}
	return lo.searchDirs(), CandidateNames(lo.platform.Name())
}

// libParams holds the state of a single locate attempt.
type libParams struct {
	fullName  string
	moduleDir string
	firstErr  string
	firstKind ErrorKind
	lastErr   string
	handle    dlopen.Library
}

// openError turns a failed open into the text reported for it,
// checking for an architecture mismatch where the platform can
// detect one.
func (lp *libParams) openError(lo *loadOptions, name string, err error) (string, ErrorKind) {
	if lo.platform.IsWrongArchitecture(err) {
		if path, mismatch := findWrongArchitecture(name, lo); mismatch {
			return fmt.Sprintf("%q is not the correct architecture", path), ErrWrongArchitecture
		}
	}
	return err.Error(), ErrLoadLibrary
}

// tryDir attempts each candidate name within sd, stopping at the first
// one which opens.
func (lp *libParams) tryDir(lo *loadOptions, dbg *DebugConfig, sd SearchDir, names []string) bool {
	var dirErr string
	var dirKind ErrorKind

	for i, name := range names {
		lp.fullName = name
		if sd.Dir != "" {
			lp.fullName = filepath.Join(sd.Dir, name)
		}

		if dbg.Enabled(DebugLoadLib) {
			dbg.Printf("load by %s: attempting %s", sd.Strategy, lp.fullName)
		}

		lib, err := lo.platform.Open(lp.fullName)
		if err == nil {
			if dbg.Enabled(DebugLoadLib) {
				dbg.Printf("load by %s: loaded %s", sd.Strategy, lp.fullName)
			}
			lp.handle = lib
			return true
		}

		msg, kind := lp.openError(lo, name, err)
		if dbg.Enabled(DebugLoadLib) {
			dbg.Printf("load by %s: failed %s: %s", sd.Strategy, lp.fullName, msg)
		}
		if i == 0 || lo.cfg.ScanAllNames {
			dirErr, dirKind = msg, kind
		}
		lp.lastErr = msg
	}

	if lp.firstErr == "" {
		lp.firstErr, lp.firstKind = dirErr, dirKind
	}
	return false
}

// locate searches for the client library using each strategy in turn.
// On failure the error is recorded in lctx.
func locate(names []string, lctx *LoadContext, lo *loadOptions) (dlopen.Library, string, bool) {
	lp := &libParams{}
	dbg := lctx.Debug()

	for _, sd := range lo.searchDirs() {
		if sd.Strategy == StrategyModuleDir {
			lp.moduleDir = sd.Dir
		}
		lo.log.Debugf("searching for client library by %s %q", sd.Strategy, sd.Dir)

		if lp.tryDir(lo, dbg, sd, names) {
			lo.log.Debugf("client library found at %s", lp.fullName)
			return lp.handle, lp.fullName, true
		}
	}

	kind := lp.firstKind
	if kind == ErrNone {
		kind = ErrLoadLibrary
	}
	lctx.setError(kind, "", "load library",
		"Cannot locate a %d-bit Oracle Client library: \"%s\"", strconv.IntSize, lp.firstErr)

	return nil, "", false
}
