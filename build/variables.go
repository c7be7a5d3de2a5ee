//
// (C) Copyright 2020-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package build provides an importable repository of variables set at build time.
package build

var (
	// ConfigDir should be set via linker flag using the value of CONF_DIR.
	ConfigDir string = "./"
	// ShimVersion should be set via linker flag using the value of OCISHIM_VERSION.
	ShimVersion string = "unset"
	// Revision is the VCS revision the binary was built from.
	Revision string
	// VCS names the version control system Revision came from.
	VCS string = "git"
	// DirtyBuild is set if the working tree had uncommitted changes.
	DirtyBuild bool
	// ReleaseBuild is set for release builds, which omit the revision
	// from version strings.
	ReleaseBuild bool

	// DiagToolName defines a consistent name for the diagnostic tool.
	DiagToolName = "ocidiag"
	// DiagConfigName is the name of the diagnostic tool's config file.
	DiagConfigName = "ocidiag.yml"
)

// DefaultConfigDir is searched for config files after ConfigDir.
const DefaultConfigDir = "/etc/ocishim"
