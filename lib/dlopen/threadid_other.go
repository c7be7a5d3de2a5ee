//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//
//go:build !linux && !windows

package dlopen

import "os"

// threadID falls back to the process id where no portable thread id
// is exposed.
func threadID() uint64 {
	return uint64(os.Getpid())
}
