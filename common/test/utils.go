//
// (C) Copyright 2018-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package test provides helpers shared by the package tests.
package test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// AssertTrue asserts b is true.
func AssertTrue(t *testing.T, b bool, message string) {
	t.Helper()

	if !b {
		t.Fatal(message)
	}
}

// AssertFalse asserts b is false.
func AssertFalse(t *testing.T, b bool, message string) {
	t.Helper()

	if b {
		t.Fatal(message)
	}
}

// AssertEqual asserts b is equal to a.
func AssertEqual(t *testing.T, a, b interface{}, message string, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(a, b, opts...); diff != "" {
		t.Fatalf("%s (-want, +got):\n%s\n", message, diff)
	}
}

// CmpAny compares two values and fails the test with a diff if
// they are not equal.
func CmpAny(t *testing.T, desc string, want, got interface{}, cmpOpts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Fatalf("unexpected %s (-want, +got):\n%s\n", desc, diff)
	}
}

// CmpErrBool compares two booleans and returns an error if they
// differ. Useful for comparing expected error state.
func CmpErrBool(want, got bool) error {
	if want == got {
		return nil
	}
	return errors.Errorf("want error: %t, got error: %t", want, got)
}

// CmpErr compares two errors for equality or at least close
// similarity in their messages.
func CmpErr(t *testing.T, want, got error) {
	t.Helper()

	if want == got {
		return
	}
	if want == nil || got == nil {
		t.Fatalf("unexpected error (wanted: %v, got: %v)", want, got)
	}
	if errors.Is(got, want) {
		return
	}
	if !strings.Contains(got.Error(), want.Error()) {
		t.Fatalf("error mismatch (wanted: %s, got: %s)", want, got)
	}
}

// ShowBufferOnFailure displays captured output on test failure.
func ShowBufferOnFailure(t *testing.T, buf fmt.Stringer) {
	t.Helper()

	if t.Failed() {
		fmt.Printf("captured log output:\n%s", buf.String())
	}
}

// CreateTestDir creates a temporary test directory and returns
// it along with a cleanup function.
func CreateTestDir(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", strings.ReplaceAll(t.Name(), "/", "-"))
	if err != nil {
		t.Fatalf("Couldn't create temporary directory: %v", err)
	}

	return tmpDir, func() {
		t.Helper()

		if err := os.RemoveAll(tmpDir); err != nil {
			t.Fatalf("Couldn't remove tmp dir: %v", err)
		}
	}
}

// CreateTestFile creates a file in the given directory with the
// supplied content and returns its path.
func CreateTestFile(t *testing.T, dir, content string) string {
	t.Helper()

	f, err := os.CreateTemp(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}

	return f.Name()
}

// CreateNamedTestFile creates a file with the given name in dir,
// writing the supplied bytes, and returns its path.
func CreateNamedTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	return path
}
