//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

// baselineSymbols are resolved as soon as the library is validated.
var baselineSymbols = []symbolID{symAttrGet, symAttrSet}

// validate checks that the opened library is a supported client and
// resolves the baseline symbols. The caller must close the library if
// validation fails.
func (l *Library) validate() bool {
	const action = "check Oracle Client version"
	versionSym := symbolDefs[symClientVersion].name

	fn, ok := resolve[fnClientVersion](l, symClientVersion)
	if !ok {
		l.lctx.setError(ErrUnsupportedClient, versionSym, action,
			"Oracle Client library at %s is not supported: %s was not found", l.path, versionSym)
		return false
	}

	var major, minor, update, patch, portUpdate Sword
	fn(&major, &minor, &update, &patch, &portUpdate)
	l.accessed(symClientVersion)

	vi := VersionInfo{
		Major:      int(major),
		Minor:      int(minor),
		Update:     int(update),
		Patch:      int(patch),
		PortUpdate: int(portUpdate),
	}
	l.log.Debugf("%s reports client version %s", l.path, vi)

	if vi.Major == 0 {
		l.lctx.setError(ErrUnsupportedClient, versionSym, action,
			"%s is not a valid Oracle Client library", l.path)
		return false
	}
	if !vi.AtLeast(MinClientMajor, MinClientMinor) {
		l.lctx.setError(ErrUnsupportedClient, versionSym, action,
			"Oracle Client library version %d.%d is not supported; version %d.%d or later is required",
			vi.Major, vi.Minor, MinClientMajor, MinClientMinor)
		return false
	}
	l.version = vi

	for _, id := range baselineSymbols {
		if _, ok := l.ensureResolved(id); !ok {
			return false
		}
	}

	return true
}
