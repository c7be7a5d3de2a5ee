//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnServerAttach       = func(srvhp, errhp unsafe.Pointer, dblink *Ub1, dblinkLen Sb4, mode Ub4) Sword
	fnServerDetach       = func(srvhp, errhp unsafe.Pointer, mode Ub4) Sword
	fnSessionBegin       = func(svchp, errhp, usrhp unsafe.Pointer, credt, mode Ub4) Sword
	fnSessionEnd         = func(svchp, errhp, usrhp unsafe.Pointer, mode Ub4) Sword
	fnSessionGet         = func(envhp, errhp unsafe.Pointer, svchp *unsafe.Pointer, authhp unsafe.Pointer, poolName *Ub1, poolNameLen Ub4, tagInfo *Ub1, tagInfoLen Ub4, retTagInfo **Ub1, retTagInfoLen *Ub4, found *Boolean, mode Ub4) Sword
	fnSessionRelease     = func(svchp, errhp unsafe.Pointer, tag *Ub1, tagLen, mode Ub4) Sword
	fnSessionPoolCreate  = func(envhp, errhp, spoolhp unsafe.Pointer, poolName **Ub1, poolNameLen *Ub4, connStr *Ub1, connStrLen, sessMin, sessMax, sessIncr Ub4, userid *Ub1, useridLen Ub4, password *Ub1, passwordLen, mode Ub4) Sword
	fnSessionPoolDestroy = func(spoolhp, errhp unsafe.Pointer, mode Ub4) Sword
	fnPing               = func(svchp, errhp unsafe.Pointer, mode Ub4) Sword
	fnBreak              = func(hndlp, errhp unsafe.Pointer) Sword
	fnReset              = func(hndlp, errhp unsafe.Pointer) Sword
	fnTransStart         = func(svchp, errhp unsafe.Pointer, timeout Uword, flags Ub4) Sword
	fnTransCommit        = func(svchp, errhp unsafe.Pointer, flags Ub4) Sword
	fnTransRollback      = func(svchp, errhp unsafe.Pointer, flags Ub4) Sword
	fnTransPrepare       = func(svchp, errhp unsafe.Pointer, flags Ub4) Sword
)

// ServerAttach forwards to OCIServerAttach.
func (l *Library) ServerAttach(srvhp, errhp unsafe.Pointer, dblink *Ub1, dblinkLen Sb4, mode Ub4) Sword {
	fn, ok := resolve[fnServerAttach](l, symServerAttach)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symServerAttach, fn(srvhp, errhp, dblink, dblinkLen, mode), errhp)
}

// ServerDetach forwards to OCIServerDetach.
func (l *Library) ServerDetach(srvhp, errhp unsafe.Pointer, mode Ub4) Sword {
	fn, ok := resolve[fnServerDetach](l, symServerDetach)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symServerDetach, fn(srvhp, errhp, mode), errhp)
}

// SessionBegin forwards to OCISessionBegin.
func (l *Library) SessionBegin(svchp, errhp, usrhp unsafe.Pointer, credt, mode Ub4) Sword {
	fn, ok := resolve[fnSessionBegin](l, symSessionBegin)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symSessionBegin, fn(svchp, errhp, usrhp, credt, mode), errhp)
}

// SessionEnd forwards to OCISessionEnd.
func (l *Library) SessionEnd(svchp, errhp, usrhp unsafe.Pointer, mode Ub4) Sword {
	fn, ok := resolve[fnSessionEnd](l, symSessionEnd)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symSessionEnd, fn(svchp, errhp, usrhp, mode), errhp)
}

// SessionGet forwards to OCISessionGet.
func (l *Library) SessionGet(envhp, errhp unsafe.Pointer, svchp *unsafe.Pointer, authhp unsafe.Pointer, poolName *Ub1, poolNameLen Ub4, tagInfo *Ub1, tagInfoLen Ub4, retTagInfo **Ub1, retTagInfoLen *Ub4, found *Boolean, mode Ub4) Sword {
	fn, ok := resolve[fnSessionGet](l, symSessionGet)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, svchp, authhp, poolName, poolNameLen, tagInfo, tagInfoLen, retTagInfo, retTagInfoLen, found, mode)
	return l.check(symSessionGet, status, errhp)
}

// SessionRelease forwards to OCISessionRelease.
func (l *Library) SessionRelease(svchp, errhp unsafe.Pointer, tag *Ub1, tagLen, mode Ub4) Sword {
	fn, ok := resolve[fnSessionRelease](l, symSessionRelease)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symSessionRelease, fn(svchp, errhp, tag, tagLen, mode), errhp)
}

// SessionPoolCreate forwards to OCISessionPoolCreate.
func (l *Library) SessionPoolCreate(envhp, errhp, spoolhp unsafe.Pointer, poolName **Ub1, poolNameLen *Ub4, connStr *Ub1, connStrLen, sessMin, sessMax, sessIncr Ub4, userid *Ub1, useridLen Ub4, password *Ub1, passwordLen, mode Ub4) Sword {
	fn, ok := resolve[fnSessionPoolCreate](l, symSessionPoolCreate)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, spoolhp, poolName, poolNameLen, connStr, connStrLen,
		sessMin, sessMax, sessIncr, userid, useridLen, password, passwordLen, mode)
	return l.check(symSessionPoolCreate, status, errhp)
}

// SessionPoolDestroy forwards to OCISessionPoolDestroy.
func (l *Library) SessionPoolDestroy(spoolhp, errhp unsafe.Pointer, mode Ub4) Sword {
	fn, ok := resolve[fnSessionPoolDestroy](l, symSessionPoolDestroy)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symSessionPoolDestroy, fn(spoolhp, errhp, mode), errhp)
}

// Ping forwards to OCIPing.
func (l *Library) Ping(svchp, errhp unsafe.Pointer, mode Ub4) Sword {
	fn, ok := resolve[fnPing](l, symPing)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symPing, fn(svchp, errhp, mode), errhp)
}

// Break forwards to OCIBreak.
func (l *Library) Break(hndlp, errhp unsafe.Pointer) Sword {
	fn, ok := resolve[fnBreak](l, symBreak)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symBreak, fn(hndlp, errhp), errhp)
}

// Reset forwards to OCIReset.
func (l *Library) Reset(hndlp, errhp unsafe.Pointer) Sword {
	fn, ok := resolve[fnReset](l, symReset)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symReset, fn(hndlp, errhp), errhp)
}

// TransStart forwards to OCITransStart.
func (l *Library) TransStart(svchp, errhp unsafe.Pointer, timeout Uword, flags Ub4) Sword {
	fn, ok := resolve[fnTransStart](l, symTransStart)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symTransStart, fn(svchp, errhp, timeout, flags), errhp)
}

// TransCommit forwards to OCITransCommit.
func (l *Library) TransCommit(svchp, errhp unsafe.Pointer, flags Ub4) Sword {
	fn, ok := resolve[fnTransCommit](l, symTransCommit)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symTransCommit, fn(svchp, errhp, flags), errhp)
}

// TransRollback forwards to OCITransRollback.
func (l *Library) TransRollback(svchp, errhp unsafe.Pointer, flags Ub4) Sword {
	fn, ok := resolve[fnTransRollback](l, symTransRollback)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symTransRollback, fn(svchp, errhp, flags), errhp)
}

// TransPrepare forwards to OCITransPrepare.
func (l *Library) TransPrepare(svchp, errhp unsafe.Pointer, flags Ub4) Sword {
	fn, ok := resolve[fnTransPrepare](l, symTransPrepare)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symTransPrepare, fn(svchp, errhp, flags), errhp)
}
