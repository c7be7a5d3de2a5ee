//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//
//go:build !(darwin || freebsd || linux || windows)

package dlopen

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

type unsupportedPlatform struct{}

// DefaultPlatform returns the Platform for the running OS. On this OS
// libraries can never be opened.
func DefaultPlatform() Platform {
	return unsupportedPlatform{}
}

func (unsupportedPlatform) Name() string {
	return runtime.GOOS
}

func (unsupportedPlatform) Open(path string) (Library, error) {
	return nil, &OpenError{
		Path: path,
		Err:  errors.Errorf("dynamic loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (unsupportedPlatform) ModuleDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine module path")
	}
	return filepath.Dir(exe), nil
}

func (unsupportedPlatform) ThreadID() uint64 {
	return threadID()
}

func (unsupportedPlatform) IsWrongArchitecture(error) bool {
	return false
}
