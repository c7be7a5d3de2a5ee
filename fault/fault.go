//
// (C) Copyright 2018-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

// Package fault provides the error type reported to callers of the
// client loader, along with the stable codes that classify it.
package fault

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/fault/code"
)

// Resolution represents a potential fault resolution.
type Resolution string

const (
	// ResolutionEmpty is equivalent to an empty string.
	ResolutionEmpty = Resolution("")
	// ResolutionUnknown indicates that there is no known
	// resolution for the fault.
	ResolutionUnknown = Resolution("no known resolution")
	// ResolutionNone indicates that the fault cannot be
	// resolved.
	ResolutionNone = Resolution("none")
)

func (r Resolution) String() string {
	return string(r)
}

const (
	UnknownDomainStr      = "unknown"
	UnknownDescriptionStr = "unknown fault"
)

// UnknownFault represents an unknown fault.
var UnknownFault = &Fault{
	Code:       code.Unknown,
	Resolution: ResolutionUnknown,
}

// Fault represents a well-known error specific to a domain,
// along with an optional potential resolution for the error.
//
// It implements the error interface and can be used
// interchangeably with regular "dumb" errors.
type Fault struct {
	Domain      string
	Code        code.Code
	Description string
	Resolution  Resolution
}

func sanitizeDomain(inDomain string) string {
	if inDomain == "" {
		return UnknownDomainStr
	}
	// keep the domain grep friendly
	return strings.Join(strings.Fields(strings.ReplaceAll(inDomain, ":", " ")), "_")
}

func sanitizeDescription(inDescription string) string {
	if inDescription == "" {
		return UnknownDescriptionStr
	}
	return inDescription
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: code = %d description = %q",
		sanitizeDomain(f.Domain), f.Code, sanitizeDescription(f.Description))
}

// Equals attempts to compare the given error to this one. If they both
// resolve to the same fault code, then they are considered equivalent.
func (f *Fault) Equals(raw error) bool {
	other, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return false
	}
	return f.Code == other.Code
}

// Is allows errors.Is() to match faults by code.
func (f *Fault) Is(target error) bool {
	return f.Equals(target)
}

// ShowResolutionFor attempts to return the resolution string for the
// given error. If the error is not a fault or does not have a
// resolution set, then the string value of ResolutionUnknown
// is returned.
func ShowResolutionFor(raw error) string {
	fmtStr := "%s: code = %d resolution = %q"

	f, ok := errors.Cause(raw).(*Fault)
	if !ok {
		return fmt.Sprintf(fmtStr, UnknownDomainStr, code.Unknown, ResolutionUnknown)
	}
	if f.Resolution == ResolutionEmpty {
		return fmt.Sprintf(fmtStr, sanitizeDomain(f.Domain), f.Code, ResolutionUnknown)
	}
	return fmt.Sprintf(fmtStr, sanitizeDomain(f.Domain), f.Code, f.Resolution)
}

// HasResolution indicates whether or not the error has a resolution
// defined.
func HasResolution(raw error) bool {
	f, ok := errors.Cause(raw).(*Fault)
	return ok && f.Resolution != ResolutionEmpty
}

// GetCode returns the fault code of the error, or code.Unknown
// if the error is not a fault.
func GetCode(raw error) code.Code {
	if f, ok := errors.Cause(raw).(*Fault); ok {
		return f.Code
	}
	return code.Unknown
}
