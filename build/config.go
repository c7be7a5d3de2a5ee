//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrDefaultConfigNotFound indicates that no config file was found in the default locations.
type ErrDefaultConfigNotFound struct {
	Errors []error
}

func (e *ErrDefaultConfigNotFound) Error() string {
	errStrs := []string{}
	for _, err := range e.Errors {
		errStrs = append(errStrs, err.Error())
	}

	return fmt.Sprintf("config file not found in default locations: [%s]", strings.Join(errStrs, "] ["))
}

// IsDefaultConfigNotFound checks the error to ensure it is a config not found error.
func IsDefaultConfigNotFound(err error) bool {
	_, ok := errors.Cause(err).(*ErrDefaultConfigNotFound)
	return ok
}

// ConfigDirs is an ordered list of directories to search for configuration files.
func ConfigDirs() []string {
	dirs := []string{ConfigDir}
	if filepath.Clean(ConfigDir) != DefaultConfigDir {
		dirs = append(dirs, DefaultConfigDir)
	}
	return dirs
}

// FindConfigFilePath searches for a file with a given name in the configuration directories.
func FindConfigFilePath(filename string) (string, error) {
	if filepath.IsAbs(filename) || filepath.Base(filename) != filename {
		return "", errors.Errorf("%q already specifies a path", filename)
	}

	var errs []error
	for _, dir := range ConfigDirs() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, err)
			continue
		}
		return path, nil
	}

	return "", &ErrDefaultConfigNotFound{Errors: errs}
}
