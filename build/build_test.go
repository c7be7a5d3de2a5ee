//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/common/test"
)

func TestBuild_String(t *testing.T) {
	for name, tc := range map[string]struct {
		version  string
		revision string
		vcs      string
		dirty    bool
		release  bool
		exp      string
	}{
		"no revision": {
			version: "1.2.3",
			vcs:     "git",
			exp:     "ocidiag version 1.2.3",
		},
		"git revision": {
			version:  "1.2.3",
			revision: "0123456789abcdef",
			vcs:      "git",
			exp:      "ocidiag version 1.2.3-g0123456",
		},
		"dirty": {
			version:  "1.2.3",
			revision: "0123456789abcdef",
			vcs:      "git",
			dirty:    true,
			exp:      "ocidiag version 1.2.3-g0123456-dirty",
		},
		"short git revision": {
			version:  "1.2.3",
			revision: "abc12",
			vcs:      "git",
			exp:      "ocidiag version 1.2.3-gabc12",
		},
		"other vcs": {
			version:  "1.2.3",
			revision: "42",
			vcs:      "svn",
			exp:      "ocidiag version 1.2.3-42",
		},
		"release": {
			version:  "1.2.3",
			revision: "0123456789abcdef",
			vcs:      "git",
			dirty:    true,
			release:  true,
			exp:      "ocidiag version 1.2.3",
		},
	} {
		t.Run(name, func(t *testing.T) {
			oldVer, oldRev, oldVCS, oldDirty, oldRel := ShimVersion, Revision, VCS, DirtyBuild, ReleaseBuild
			defer func() {
				ShimVersion, Revision, VCS, DirtyBuild, ReleaseBuild = oldVer, oldRev, oldVCS, oldDirty, oldRel
			}()
			ShimVersion, Revision, VCS, DirtyBuild, ReleaseBuild = tc.version, tc.revision, tc.vcs, tc.dirty, tc.release

			test.AssertEqual(t, tc.exp, String(DiagToolName), "unexpected version string")
			test.AssertEqual(t, tc.exp, GetInfo(DiagToolName).String(), "unexpected info string")
		})
	}
}

func TestBuild_FindConfigFilePath(t *testing.T) {
	tmpDir, cleanup := test.CreateTestDir(t)
	defer cleanup()

	test.CreateNamedTestFile(t, tmpDir, DiagConfigName, []byte("lib_dir: /opt/oracle\n"))

	oldDir := ConfigDir
	defer func() { ConfigDir = oldDir }()

	for name, tc := range map[string]struct {
		configDir string
		filename  string
		expPath   string
		expErr    error
	}{
		"found": {
			configDir: tmpDir,
			filename:  DiagConfigName,
			expPath:   filepath.Join(tmpDir, DiagConfigName),
		},
		"not found": {
			configDir: tmpDir,
			filename:  "missing.yml",
			expErr:    errors.New("config file not found in default locations"),
		},
		"absolute path": {
			configDir: tmpDir,
			filename:  filepath.Join(tmpDir, DiagConfigName),
			expErr:    errors.New("already specifies a path"),
		},
		"relative path": {
			configDir: tmpDir,
			filename:  "sub/" + DiagConfigName,
			expErr:    errors.New("already specifies a path"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			ConfigDir = tc.configDir

			gotPath, gotErr := FindConfigFilePath(tc.filename)
			test.CmpErr(t, tc.expErr, gotErr)
			if tc.expErr != nil {
				return
			}
			test.AssertEqual(t, tc.expPath, gotPath, "unexpected path")
		})
	}
}

func TestBuild_IsDefaultConfigNotFound(t *testing.T) {
	notFound := &ErrDefaultConfigNotFound{Errors: []error{os.ErrNotExist}}

	test.AssertTrue(t, IsDefaultConfigNotFound(notFound), "expected match")
	test.AssertTrue(t, IsDefaultConfigNotFound(errors.Wrap(notFound, "wrapped")), "expected wrapped match")
	test.AssertFalse(t, IsDefaultConfigNotFound(os.ErrNotExist), "unexpected match")
}

func TestBuild_ConfigDirs(t *testing.T) {
	oldDir := ConfigDir
	defer func() { ConfigDir = oldDir }()

	ConfigDir = DefaultConfigDir + "/"
	test.AssertEqual(t, []string{ConfigDir}, ConfigDirs(), "default dir must not repeat")

	ConfigDir = "/srv/conf"
	test.AssertEqual(t, []string{"/srv/conf", DefaultConfigDir}, ConfigDirs(), "unexpected dirs")
}
