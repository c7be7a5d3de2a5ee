//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnLobRead2           = func(svchp, errhp, locp unsafe.Pointer, byteAmtp, charAmtp *Ub8, offset Ub8, bufp unsafe.Pointer, bufl Ub8, piece Ub1, ctxp, cbfp unsafe.Pointer, csid Ub2, csfrm Ub1) Sword
	fnLobWrite2          = func(svchp, errhp, locp unsafe.Pointer, byteAmtp, charAmtp *Ub8, offset Ub8, bufp unsafe.Pointer, buflen Ub8, piece Ub1, ctxp, cbfp unsafe.Pointer, csid Ub2, csfrm Ub1) Sword
	fnLobGetLength2      = func(svchp, errhp, locp unsafe.Pointer, lenp *Ub8) Sword
	fnLobTrim2           = func(svchp, errhp, locp unsafe.Pointer, newlen Ub8) Sword
	fnLobCreateTemporary = func(svchp, errhp, locp unsafe.Pointer, csid Ub2, csfrm, lobtype Ub1, cache Boolean, duration Ub2) Sword
	fnLobFreeTemporary   = func(svchp, errhp, locp unsafe.Pointer) Sword
	fnLobIsTemporary     = func(envhp, errhp, locp unsafe.Pointer, isTemporary *Boolean) Sword
	fnLobOpen            = func(svchp, errhp, locp unsafe.Pointer, mode Ub1) Sword
	fnLobClose           = func(svchp, errhp, locp unsafe.Pointer) Sword
	fnLobCharSetForm     = func(envhp, errhp, locp unsafe.Pointer, csfrm *Ub1) Sword
	fnLobGetChunkSize    = func(svchp, errhp, locp unsafe.Pointer, chunkSize *Ub4) Sword
)

// LobRead2 forwards to OCILobRead2.
func (l *Library) LobRead2(svchp, errhp, locp unsafe.Pointer, byteAmtp, charAmtp *Ub8, offset Ub8, bufp unsafe.Pointer, bufl Ub8, piece Ub1, ctxp, cbfp unsafe.Pointer, csid Ub2, csfrm Ub1) Sword {
	fn, ok := resolve[fnLobRead2](l, symLobRead2)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(svchp, errhp, locp, byteAmtp, charAmtp, offset, bufp, bufl, piece, ctxp, cbfp, csid, csfrm)
	return l.check(symLobRead2, status, errhp)
}

// LobWrite2 forwards to OCILobWrite2.
func (l *Library) LobWrite2(svchp, errhp, locp unsafe.Pointer, byteAmtp, charAmtp *Ub8, offset Ub8, bufp unsafe.Pointer, buflen Ub8, piece Ub1, ctxp, cbfp unsafe.Pointer, csid Ub2, csfrm Ub1) Sword {
	fn, ok := resolve[fnLobWrite2](l, symLobWrite2)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(svchp, errhp, locp, byteAmtp, charAmtp, offset, bufp, buflen, piece, ctxp, cbfp, csid, csfrm)
	return l.check(symLobWrite2, status, errhp)
}

// LobGetLength2 forwards to OCILobGetLength2.
func (l *Library) LobGetLength2(svchp, errhp, locp unsafe.Pointer, lenp *Ub8) Sword {
	fn, ok := resolve[fnLobGetLength2](l, symLobGetLength2)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobGetLength2, fn(svchp, errhp, locp, lenp), errhp)
}

// LobTrim2 forwards to OCILobTrim2.
func (l *Library) LobTrim2(svchp, errhp, locp unsafe.Pointer, newlen Ub8) Sword {
	fn, ok := resolve[fnLobTrim2](l, symLobTrim2)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobTrim2, fn(svchp, errhp, locp, newlen), errhp)
}

// LobCreateTemporary forwards to OCILobCreateTemporary.
func (l *Library) LobCreateTemporary(svchp, errhp, locp unsafe.Pointer, csid Ub2, csfrm, lobtype Ub1, cache Boolean, duration Ub2) Sword {
	fn, ok := resolve[fnLobCreateTemporary](l, symLobCreateTemporary)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobCreateTemporary, fn(svchp, errhp, locp, csid, csfrm, lobtype, cache, duration), errhp)
}

// LobFreeTemporary forwards to OCILobFreeTemporary.
func (l *Library) LobFreeTemporary(svchp, errhp, locp unsafe.Pointer) Sword {
	fn, ok := resolve[fnLobFreeTemporary](l, symLobFreeTemporary)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobFreeTemporary, fn(svchp, errhp, locp), errhp)
}

// LobIsTemporary forwards to OCILobIsTemporary.
func (l *Library) LobIsTemporary(envhp, errhp, locp unsafe.Pointer, isTemporary *Boolean) Sword {
	fn, ok := resolve[fnLobIsTemporary](l, symLobIsTemporary)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobIsTemporary, fn(envhp, errhp, locp, isTemporary), errhp)
}

// LobOpen forwards to OCILobOpen.
func (l *Library) LobOpen(svchp, errhp, locp unsafe.Pointer, mode Ub1) Sword {
	fn, ok := resolve[fnLobOpen](l, symLobOpen)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobOpen, fn(svchp, errhp, locp, mode), errhp)
}

// LobClose forwards to OCILobClose.
func (l *Library) LobClose(svchp, errhp, locp unsafe.Pointer) Sword {
	fn, ok := resolve[fnLobClose](l, symLobClose)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobClose, fn(svchp, errhp, locp), errhp)
}

// LobCharSetForm forwards to OCILobCharSetForm.
func (l *Library) LobCharSetForm(envhp, errhp, locp unsafe.Pointer, csfrm *Ub1) Sword {
	fn, ok := resolve[fnLobCharSetForm](l, symLobCharSetForm)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobCharSetForm, fn(envhp, errhp, locp, csfrm), errhp)
}

// LobGetChunkSize forwards to OCILobGetChunkSize.
func (l *Library) LobGetChunkSize(svchp, errhp, locp unsafe.Pointer, chunkSize *Ub4) Sword {
	fn, ok := resolve[fnLobGetChunkSize](l, symLobGetChunkSize)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symLobGetChunkSize, fn(svchp, errhp, locp, chunkSize), errhp)
}
