//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"debug/pe"
	"path/filepath"
	"runtime"
)

var peMachines = map[string]uint16{
	"386":   pe.IMAGE_FILE_MACHINE_I386,
	"amd64": pe.IMAGE_FILE_MACHINE_AMD64,
	"arm":   pe.IMAGE_FILE_MACHINE_ARMNT,
	"arm64": pe.IMAGE_FILE_MACHINE_ARM64,
}

// peMachine returns the machine type recorded in a PE image header.
func peMachine(path string) (uint16, error) {
	f, err := pe.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return f.FileHeader.Machine, nil
}

// findWrongArchitecture looks for name in the working directory and
// then each PATH directory. It returns the first readable image found
// and whether that image was built for a different architecture.
func findWrongArchitecture(name string, lo *loadOptions) (string, bool) {
	var dirs []string
	if cwd, err := lo.getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if path, set := lo.lookupEnv("PATH"); set {
		dirs = append(dirs, filepath.SplitList(path)...)
	}

	want, known := peMachines[runtime.GOARCH]
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		machine, err := peMachine(candidate)
		if err != nil {
			continue
		}
		lo.log.Debugf("%s has PE machine type %#x", candidate, machine)
		return candidate, known && machine != want
	}

	return "", false
}
