//
// (C) Copyright 2023-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package build

import (
	"fmt"
	"strings"
)

// Info describes the build of a binary.
type Info struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Revision string `json:"revision,omitempty"`
	Dirty    bool   `json:"dirty,omitempty"`
}

// shortRevision abbreviates git hashes to the usual seven characters.
func shortRevision() string {
	if VCS == "git" && len(Revision) > 7 {
		return "g" + Revision[:7]
	}
	if VCS == "git" && Revision != "" {
		return "g" + Revision
	}
	return Revision
}

// GetInfo returns the build details for the named binary. Release
// builds carry no revision.
func GetInfo(name string) Info {
	info := Info{Name: name, Version: ShimVersion}
	if !ReleaseBuild && Revision != "" {
		info.Revision = shortRevision()
		info.Dirty = DirtyBuild
	}
	return info
}

// FullVersion returns the version with any revision and dirty markers
// appended.
func (i Info) FullVersion() string {
	parts := []string{i.Version}
	if i.Revision != "" {
		parts = append(parts, i.Revision)
		if i.Dirty {
			parts = append(parts, "dirty")
		}
	}
	return strings.Join(parts, "-")
}

func (i Info) String() string {
	return fmt.Sprintf("%s version %s", i.Name, i.FullVersion())
}

// String returns the version line printed by the named binary.
func String(name string) string {
	return GetInfo(name).String()
}
