//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package oci loads the Oracle Call Interface client library at run
// time and forwards calls to it through lazily-resolved symbols.
package oci

import (
	"fmt"
	"math"
)

// Native integer widths, named as in the client headers.
type (
	Sword   = int32
	Sb1     = int8
	Sb2     = int16
	Sb4     = int32
	Sb8     = int64
	Ub1     = uint8
	Ub2     = uint16
	Ub4     = uint32
	Ub8     = uint64
	Uword   = uint32
	Boolean = int32
	Size    = uintptr
)

// Status codes returned by the native client.
const (
	StatusSuccess         Sword = 0
	StatusSuccessWithInfo Sword = 1
	StatusNeedData        Sword = 99
	StatusNoData          Sword = 100
	StatusError           Sword = -1
	StatusInvalidHandle   Sword = -2
	StatusStillExecuting  Sword = -3123
	StatusContinue        Sword = -24200

	// StatusLoadFailure is returned when the native entry point could
	// not be located. No native status has this value.
	StatusLoadFailure Sword = math.MinInt32
)

// Handle types used for error retrieval.
const (
	HTypeEnv   Ub4 = 1
	HTypeError Ub4 = 2
)

// Minimum supported client version.
const (
	MinClientMajor = 11
	MinClientMinor = 2
)

// isFailure returns true for native statuses which indicate the call
// did not succeed.
func isFailure(status Sword) bool {
	return status == StatusError || status == StatusInvalidHandle
}

// StatusString returns a readable name for a native status.
func StatusString(status Sword) string {
	switch status {
	case StatusSuccess:
		return "success"
	case StatusSuccessWithInfo:
		return "success_with_info"
	case StatusNeedData:
		return "need_data"
	case StatusNoData:
		return "no_data"
	case StatusError:
		return "error"
	case StatusInvalidHandle:
		return "invalid_handle"
	case StatusStillExecuting:
		return "still_executing"
	case StatusContinue:
		return "continue"
	case StatusLoadFailure:
		return "load_failure"
	default:
		return fmt.Sprintf("status_%d", status)
	}
}

// VersionInfo holds the client library version.
type VersionInfo struct {
	Major      int `json:"major"`
	Minor      int `json:"minor"`
	Update     int `json:"update"`
	Patch      int `json:"patch"`
	PortUpdate int `json:"port_update"`
}

// VersionNumber packs the version components into a single integer
// which orders the same way as the version.
func (vi VersionInfo) VersionNumber() int {
	return vi.Major*100000000 + vi.Minor*1000000 + vi.Update*10000 +
		vi.Patch*100 + vi.PortUpdate
}

// AtLeast returns true if the version is at or above major.minor.
func (vi VersionInfo) AtLeast(major, minor int) bool {
	if vi.Major != major {
		return vi.Major > major
	}
	return vi.Minor >= minor
}

func (vi VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", vi.Major, vi.Minor, vi.Update, vi.Patch, vi.PortUpdate)
}
