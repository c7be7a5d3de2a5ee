//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"fmt"

	"github.com/roracle/ocishim/fault"
	"github.com/roracle/ocishim/fault/code"
)

// ErrorKind classifies the most recent error recorded in a LoadContext.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrCreateEnv
	ErrLoadLibrary
	ErrSymbolNotFound
	ErrUnsupportedClient
	ErrGetErrorMessage
	ErrNoMemory
	ErrGetEnvVar
	ErrInvalidHandle
	ErrNotInitialized
	ErrOSError
	ErrWrongArchitecture
)

const faultDomain = "oci"

const (
	clientDocs = "install the 64-bit or 32-bit Oracle Client libraries matching the application and make them findable through the library search path, ORACLE_HOME or lib_dir"

	resolveLoadLibrary = fault.Resolution("verify that an Oracle Client is installed; " + clientDocs)
	resolveWrongArch   = fault.Resolution("install an Oracle Client built for the same architecture as this application")
	resolveUnsupported = fault.Resolution("upgrade to Oracle Client 11.2 or later")
	resolveSymbol      = fault.Resolution("upgrade the Oracle Client to a release which provides this function")
)

var kindInfo = map[ErrorKind]struct {
	name       string
	code       code.Code
	resolution fault.Resolution
}{
	ErrNone:              {"none", code.ClientUnknown, fault.ResolutionEmpty},
	ErrCreateEnv:         {"create_env", code.ClientCreateEnv, fault.ResolutionUnknown},
	ErrLoadLibrary:       {"load_library", code.ClientLoadLibrary, resolveLoadLibrary},
	ErrSymbolNotFound:    {"symbol_not_found", code.ClientSymbolNotFound, resolveSymbol},
	ErrUnsupportedClient: {"unsupported_client", code.ClientUnsupported, resolveUnsupported},
	ErrGetErrorMessage:   {"get_error_message", code.ClientGetErrorMessage, fault.ResolutionUnknown},
	ErrNoMemory:          {"no_memory", code.ClientNoMemory, fault.ResolutionNone},
	ErrGetEnvVar:         {"get_env_var", code.ClientGetEnvVar, fault.ResolutionUnknown},
	ErrInvalidHandle:     {"invalid_handle", code.ClientInvalidHandle, fault.ResolutionUnknown},
	ErrNotInitialized:    {"not_initialized", code.ClientNotInitialized, fault.Resolution("load the client library before calling it")},
	ErrOSError:           {"os_error", code.ClientOSError, fault.ResolutionUnknown},
	ErrWrongArchitecture: {"wrong_architecture", code.ClientWrongArchitecture, resolveWrongArch},
}

func (k ErrorKind) String() string {
	if info, found := kindInfo[k]; found {
		return info.name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Code returns the stable fault code for the kind.
func (k ErrorKind) Code() code.Code {
	if info, found := kindInfo[k]; found {
		return info.code
	}
	return code.ClientUnknown
}

// newFault creates a client fault of the given kind.
func newFault(kind ErrorKind, msg string) *fault.Fault {
	return &fault.Fault{
		Domain:      faultDomain,
		Code:        kind.Code(),
		Description: msg,
		Resolution:  kindInfo[kind].resolution,
	}
}

// ErrAlreadyLoaded is returned when a library load is attempted on a
// LoadContext which has already been used.
var ErrAlreadyLoaded = &fault.Fault{
	Domain:      faultDomain,
	Code:        code.ClientAlreadyLoaded,
	Description: "the client library has already been loaded with this context",
	Resolution:  fault.Resolution("create a new LoadContext or reuse the loaded Library"),
}

// FaultForKind returns an empty fault carrying the code for kind, for
// use as an errors.Is target.
func FaultForKind(kind ErrorKind) *fault.Fault {
	return newFault(kind, "")
}
