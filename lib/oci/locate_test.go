//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"debug/pe"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/roracle/ocishim/common/test"
	"github.com/roracle/ocishim/lib/dlopen"
	"github.com/roracle/ocishim/logging"
)

func TestOCI_CandidateNames(t *testing.T) {
	for name, tc := range map[string]struct {
		goos     string
		expNames []string
	}{
		"linux": {
			goos: "linux",
			expNames: []string{
				"libclntsh.so",
				"libclntsh.so.23.1",
				"libclntsh.so.21.1",
				"libclntsh.so.20.1",
				"libclntsh.so.19.1",
				"libclntsh.so.18.1",
				"libclntsh.so.12.1",
				"libclntsh.so.11.1",
			},
		},
		"darwin": {
			goos: "darwin",
			expNames: []string{
				"libclntsh.dylib",
				"libclntsh.dylib.23.1",
				"libclntsh.dylib.21.1",
				"libclntsh.dylib.20.1",
				"libclntsh.dylib.19.1",
				"libclntsh.dylib.18.1",
				"libclntsh.dylib.12.1",
				"libclntsh.dylib.11.1",
			},
		},
		"windows": {
			goos:     "windows",
			expNames: []string{"oci.dll"},
		},
		"aix": {
			goos:     "aix",
			expNames: []string{"libclntsh.a(shr.o)"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expNames, CandidateNames(tc.goos)); diff != "" {
				t.Fatalf("unexpected names (-want, +got):\n%s\n", diff)
			}
		})
	}
}

func joinAll(dir string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if dir == "" {
			out = append(out, name)
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	return out
}

func TestOCI_locate(t *testing.T) {
	names := CandidateNames("linux")
	homeLib := "/u01/app/oracle/lib"
	errMod := errors.New("module dir error")
	errBare := errors.New("default search error")
	errHome := errors.New("oracle home error")
	errModLast := errors.New("module dir last error")

	for name, tc := range map[string]struct {
		platformName string
		cfg          *Config
		env          map[string]string
		libPath      string
		moduleDir    string
		openErrs     map[string]error
		expAttempts  []string
		expFound     bool
		expKind      ErrorKind
		expMsg       string
		expNotInMsg  string
	}{
		"found in module dir": {
			moduleDir:   testModuleDir,
			libPath:     testModuleDir + "/libclntsh.so",
			env:         map[string]string{EnvOracleHome: "/u01/app/oracle"},
			expAttempts: []string{testModuleDir + "/libclntsh.so"},
			expFound:    true,
		},
		"found by versioned name in module dir": {
			moduleDir: testModuleDir,
			libPath:   testModuleDir + "/libclntsh.so.19.1",
			expAttempts: joinAll(testModuleDir, []string{
				"libclntsh.so", "libclntsh.so.23.1", "libclntsh.so.21.1",
				"libclntsh.so.20.1", "libclntsh.so.19.1",
			}),
			expFound: true,
		},
		"found by default search": {
			moduleDir:   testModuleDir,
			libPath:     "libclntsh.so",
			env:         map[string]string{EnvOracleHome: "/u01/app/oracle"},
			expAttempts: append(joinAll(testModuleDir, names), "libclntsh.so"),
			expFound:    true,
		},
		"found in oracle home": {
			moduleDir: testModuleDir,
			libPath:   homeLib + "/libclntsh.so",
			env:       map[string]string{EnvOracleHome: "/u01/app/oracle"},
			expAttempts: append(append(joinAll(testModuleDir, names), names...),
				homeLib+"/libclntsh.so"),
			expFound: true,
		},
		"config oracle home overrides env": {
			cfg:         &Config{OracleHome: "/u01/app/oracle"},
			libPath:     homeLib + "/libclntsh.so",
			env:         map[string]string{EnvOracleHome: "/elsewhere"},
			expAttempts: append(append([]string{}, names...), homeLib+"/libclntsh.so"),
			expFound:    true,
		},
		"lib dir only": {
			cfg:         &Config{LibDir: "/opt/ic"},
			moduleDir:   testModuleDir,
			env:         map[string]string{EnvOracleHome: "/u01/app/oracle"},
			expAttempts: joinAll("/opt/ic", names),
			expKind:     ErrLoadLibrary,
			expMsg:      soNotFoundText(),
		},
		"empty oracle home ignored": {
			env:         map[string]string{EnvOracleHome: ""},
			expAttempts: names,
			expKind:     ErrLoadLibrary,
			expMsg:      fmt.Sprintf("Cannot locate a %d-bit Oracle Client library", strconv.IntSize),
		},
		"windows skips oracle home": {
			platformName: "windows",
			env:          map[string]string{EnvOracleHome: "/u01/app/oracle"},
			expAttempts:  []string{"oci.dll"},
			expKind:      ErrLoadLibrary,
		},
		"not found reports first directory error": {
			moduleDir: testModuleDir,
			env:       map[string]string{EnvOracleHome: "/u01/app/oracle"},
			openErrs: map[string]error{
				testModuleDir + "/libclntsh.so":      errMod,
				testModuleDir + "/libclntsh.so.11.1": errModLast,
				"libclntsh.so":                       errBare,
				homeLib + "/libclntsh.so":            errHome,
			},
			expAttempts: append(append(joinAll(testModuleDir, names), names...), joinAll(homeLib, names)...),
			expKind:     ErrLoadLibrary,
			expMsg: fmt.Sprintf("Cannot locate a %d-bit Oracle Client library: \"%s\"",
				strconv.IntSize, errMod),
			expNotInMsg: errBare.Error(),
		},
		"scan all names reports last name in first directory": {
			cfg:       &Config{ScanAllNames: true},
			moduleDir: testModuleDir,
			openErrs: map[string]error{
				testModuleDir + "/libclntsh.so":      errMod,
				testModuleDir + "/libclntsh.so.11.1": errModLast,
				"libclntsh.so":                       errBare,
			},
			expAttempts: append(joinAll(testModuleDir, names), names...),
			expKind:     ErrLoadLibrary,
			expMsg:      errModLast.Error(),
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			defer test.ShowBufferOnFailure(t, buf)

			libs := map[string]*dlopen.MockLibrary{}
			if tc.libPath != "" {
				libs[tc.libPath] = dlopen.NewMockLibrary(tc.libPath, nil)
			}
			mp := dlopen.NewMockPlatform(&dlopen.MockPlatformConfig{
				Name:       tc.platformName,
				Libraries:  libs,
				OpenErrors: tc.openErrs,
				ModuleDir:  tc.moduleDir,
			})

			lo := defaultLoadOptions()
			for _, opt := range []Option{
				WithConfig(tc.cfg),
				WithLogger(log),
				WithPlatform(mp),
				WithLookupEnv(envMap(tc.env)),
			} {
				opt(lo)
			}
			lctx := NewLoadContext()

			handle, path, found := locate(CandidateNames(mp.Name()), lctx, lo)
			test.AssertEqual(t, tc.expFound, found, "unexpected found result")
			if diff := cmp.Diff(tc.expAttempts, mp.OpenAttempts()); diff != "" {
				t.Fatalf("unexpected attempts (-want, +got):\n%s\n", diff)
			}

			if tc.expFound {
				test.AssertEqual(t, tc.libPath, path, "unexpected path")
				if handle == nil {
					t.Fatal("expected a library handle")
				}
				test.AssertEqual(t, ErrNone, lctx.Kind(), "unexpected error kind")
				return
			}

			test.AssertEqual(t, tc.expKind, lctx.Kind(), "unexpected error kind")
			if !strings.Contains(lctx.Message(), tc.expMsg) {
				t.Fatalf("expected %q in message %q", tc.expMsg, lctx.Message())
			}
			if tc.expNotInMsg != "" && strings.Contains(lctx.Message(), tc.expNotInMsg) {
				t.Fatalf("did not expect %q in message %q", tc.expNotInMsg, lctx.Message())
			}
		})
	}
}

// soNotFoundText returns the text reported for a library the mock
// platform does not know about.
func soNotFoundText() string {
	return dlopen.ErrSoNotFound.Error()
}

func writePEImage(t *testing.T, dir, name string, machine uint16) string {
	t.Helper()

	const peOffset = 0x80
	img := make([]byte, peOffset+4+20)
	img[0], img[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(img[0x3c:], peOffset)
	copy(img[peOffset:], "PE\x00\x00")
	binary.LittleEndian.PutUint16(img[peOffset+4:], machine)

	return test.CreateNamedTestFile(t, dir, name, img)
}

func TestOCI_locateWrongArchitecture(t *testing.T) {
	want, known := peMachines[runtime.GOARCH]
	if !known {
		t.Skipf("no PE machine type for %s", runtime.GOARCH)
	}
	other := uint16(pe.IMAGE_FILE_MACHINE_I386)
	if want == other {
		other = pe.IMAGE_FILE_MACHINE_AMD64
	}
	errBadExe := errors.New("%1 is not a valid Win32 application.")

	for name, tc := range map[string]struct {
		machine  uint16
		inCwd    bool
		expKind  ErrorKind
		expMsg   string
		expNoMsg string
	}{
		"mismatch on PATH": {
			machine: other,
			expKind: ErrWrongArchitecture,
			expMsg:  "is not the correct architecture",
		},
		"mismatch in working directory": {
			machine: other,
			inCwd:   true,
			expKind: ErrWrongArchitecture,
			expMsg:  "is not the correct architecture",
		},
		"same architecture": {
			machine:  want,
			expKind:  ErrLoadLibrary,
			expMsg:   errBadExe.Error(),
			expNoMsg: "is not the correct architecture",
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			defer test.ShowBufferOnFailure(t, buf)

			cwd, cleanupCwd := test.CreateTestDir(t)
			defer cleanupCwd()
			pathDir, cleanupPath := test.CreateTestDir(t)
			defer cleanupPath()

			imgDir := pathDir
			if tc.inCwd {
				imgDir = cwd
			}
			imgPath := writePEImage(t, imgDir, "oci.dll", tc.machine)

			mp := dlopen.NewMockPlatform(&dlopen.MockPlatformConfig{
				Name:         "windows",
				OpenErrors:   map[string]error{"oci.dll": errBadExe},
				WrongArchErr: errBadExe,
			})
			lo := defaultLoadOptions()
			WithLogger(log)(lo)
			WithPlatform(mp)(lo)
			WithLookupEnv(envMap(map[string]string{
				"PATH": strings.Join([]string{"", pathDir}, string(filepath.ListSeparator)),
			}))(lo)
			lo.getwd = func() (string, error) { return cwd, nil }

			lctx := NewLoadContext()
			if _, _, found := locate(CandidateNames("windows"), lctx, lo); found {
				t.Fatal("expected locate to fail")
			}

			test.AssertEqual(t, tc.expKind, lctx.Kind(), "unexpected error kind")
			if !strings.Contains(lctx.Message(), tc.expMsg) {
				t.Fatalf("expected %q in message %q", tc.expMsg, lctx.Message())
			}
			if tc.expKind == ErrWrongArchitecture && !strings.Contains(lctx.Message(), imgPath) {
				t.Fatalf("expected %q in message %q", imgPath, lctx.Message())
			}
			if tc.expNoMsg != "" && strings.Contains(lctx.Message(), tc.expNoMsg) {
				t.Fatalf("did not expect %q in message %q", tc.expNoMsg, lctx.Message())
			}
		})
	}
}

func TestOCI_SearchPlan(t *testing.T) {
	mp := dlopen.NewMockPlatform(&dlopen.MockPlatformConfig{ModuleDir: testModuleDir})

	dirs, names := SearchPlan(
		WithPlatform(mp),
		WithLookupEnv(envMap(map[string]string{EnvOracleHome: "/u01/app/oracle"})),
	)

	expDirs := []SearchDir{
		{Strategy: StrategyModuleDir, Dir: testModuleDir},
		{Strategy: StrategyDefault},
		{Strategy: StrategyOracleHome, Dir: "/u01/app/oracle/lib"},
	}
	if diff := cmp.Diff(expDirs, dirs); diff != "" {
		t.Fatalf("unexpected dirs (-want, +got):\n%s\n", diff)
	}
	test.AssertEqual(t, CandidateNames("linux"), names, "unexpected names")
	test.AssertEqual(t, 0, len(mp.OpenAttempts()), "search plan must not open anything")
}
