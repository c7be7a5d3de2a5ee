//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"github.com/pkg/errors"
)

// Load locates, opens and validates the Oracle Client library. A
// LoadContext may only be used for one load; its error fields describe
// the root cause of any failure.
func Load(lctx *LoadContext, opts ...Option) (*Library, error) {
	if lctx == nil {
		return nil, errors.Wrap(FaultForKind(ErrNotInitialized), "nil LoadContext")
	}

	lo := defaultLoadOptions()
	for _, opt := range opts {
		opt(lo)
	}

	if !lctx.beginLoad() {
		return nil, ErrAlreadyLoaded
	}

	lctx.debug.init(debugSettings{
		lookupEnv: lo.lookupEnv,
		level:     lo.cfg.DebugLevel,
		prefix:    lo.cfg.DebugPrefix,
		out:       lo.debugOut,
		threadID:  lo.platform.ThreadID,
	})
	lctx.ClearError()

	lib, err := load(lctx, lo)
	lo.metrics.recordLoad(err)
	if err != nil {
		lctx.failLoad()
		lo.log.Debugf("client library load failed: %s", err)
		return nil, err
	}

	lctx.finishLoad(lib.handle)
	lo.log.Infof("loaded Oracle Client %s from %s", lib.version, lib.path)

	return lib, nil
}

func load(lctx *LoadContext, lo *loadOptions) (*Library, error) {
	if err := lo.cfg.Validate(); err != nil {
		lctx.setError(ErrLoadLibrary, "", "check configuration", "%s", err)
		return nil, err
	}

	handle, path, found := locate(CandidateNames(lo.platform.Name()), lctx, lo)
	if !found {
		return nil, lctx.Err()
	}

	lib := newLibrary(lctx, handle, path, lo)
	if !lib.validate() {
		err := lctx.Err()
		if cerr := lib.Close(); cerr != nil {
			lo.log.Errorf("%s", cerr)
		}
		return nil, err
	}

	return lib, nil
}

// LoadLib loads the client library as Load does, reporting the result
// as a status. On success the client version is written to out.
func LoadLib(out *VersionInfo, lctx *LoadContext, opts ...Option) (*Library, Sword) {
	lib, err := Load(lctx, opts...)
	if err != nil {
		return nil, StatusLoadFailure
	}

	if out != nil {
		*out = lib.Version()
	}
	return lib, StatusSuccess
}
