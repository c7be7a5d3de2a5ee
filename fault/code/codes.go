//
// (C) Copyright 2018-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package code holds the stable fault codes reported by the client loader.
package code

// Code represents a stable fault code.
//
// NB: New codes should always be added at the bottom of their
// respective blocks so that codes remain stable over time.
type Code int

const (
	// general fault codes
	Unknown Code = iota
	MissingSoftwareDependency
	BadVersionSoftwareDependency
)

const (
	// client loader fault codes
	ClientUnknown Code = iota + 100
	ClientCreateEnv
	ClientLoadLibrary
	ClientSymbolNotFound
	ClientUnsupported
	ClientGetErrorMessage
	ClientNoMemory
	ClientGetEnvVar
	ClientInvalidHandle
	ClientNotInitialized
	ClientOSError
	ClientWrongArchitecture
	ClientAlreadyLoaded
)

const (
	// configuration fault codes
	ConfigUnknown Code = iota + 200
	ConfigBadLibDir
	ConfigBadDebugPrefix
)
