//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package dlopen

import "golang.org/x/sys/unix"

func threadID() uint64 {
	return uint64(unix.Gettid())
}
