//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnEnvNlsCreate              = func(envhpp *unsafe.Pointer, mode Ub4, ctxp, malocfp, ralocfp, mfreefp unsafe.Pointer, xtramemSz Size, usrmempp *unsafe.Pointer, charset, ncharset Ub2) Sword
	fnEnvCreate                 = func(envhpp *unsafe.Pointer, mode Ub4, ctxp, malocfp, ralocfp, mfreefp unsafe.Pointer, xtramemSz Size, usrmempp *unsafe.Pointer) Sword
	fnHandleAlloc               = func(parenth unsafe.Pointer, hndlpp *unsafe.Pointer, htype Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword
	fnHandleFree                = func(hndlp unsafe.Pointer, htype Ub4) Sword
	fnDescriptorAlloc           = func(parenth unsafe.Pointer, descpp *unsafe.Pointer, dtype Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword
	fnDescriptorFree            = func(descp unsafe.Pointer, dtype Ub4) Sword
	fnArrayDescriptorAlloc      = func(parenth unsafe.Pointer, descpp *unsafe.Pointer, dtype, arraySize Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword
	fnArrayDescriptorFree       = func(descp *unsafe.Pointer, dtype Ub4) Sword
	fnAttrGet                   = func(trgthndlp unsafe.Pointer, trghndltyp Ub4, attributep unsafe.Pointer, sizep *Ub4, attrtype Ub4, errhp unsafe.Pointer) Sword
	fnAttrSet                   = func(trgthndlp unsafe.Pointer, trghndltyp Ub4, attributep unsafe.Pointer, size, attrtype Ub4, errhp unsafe.Pointer) Sword
	fnParamGet                  = func(hndlp unsafe.Pointer, htype Ub4, errhp unsafe.Pointer, parmdpp *unsafe.Pointer, pos Ub4) Sword
	fnErrorGet                  = func(hndlp unsafe.Pointer, recordno Ub4, sqlstate *Ub1, errcodep *Sb4, bufp *Ub1, bufsiz, htype Ub4) Sword
	fnClientVersion             = func(major, minor, update, patch, portUpdate *Sword)
	fnServerRelease             = func(hndlp, errhp unsafe.Pointer, bufp *Ub1, bufsz Ub4, hndltype Ub1, version *Ub4) Sword
	fnContextGetValue           = func(hdl, errhp unsafe.Pointer, key *Ub1, keylen Ub1, ctxValue *unsafe.Pointer) Sword
	fnContextSetValue           = func(hdl, errhp unsafe.Pointer, duration Ub2, key *Ub1, keylen Ub1, ctxValue unsafe.Pointer) Sword
	fnMemoryAlloc               = func(hdl, errhp unsafe.Pointer, mem *unsafe.Pointer, duration Ub2, size, flags Ub4) Sword
	fnMemoryFree                = func(hdl, errhp, mem unsafe.Pointer) Sword
	fnThreadKeyInit             = func(hndl, errhp unsafe.Pointer, key *unsafe.Pointer, destFn unsafe.Pointer) Sword
	fnThreadKeyGet              = func(hndl, errhp, key unsafe.Pointer, value *unsafe.Pointer) Sword
	fnThreadKeySet              = func(hndl, errhp, key, value unsafe.Pointer) Sword
	fnThreadKeyDestroy          = func(hndl, errhp unsafe.Pointer, key *unsafe.Pointer) Sword
	fnNlsCharSetIdToName        = func(envhp unsafe.Pointer, buf *Ub1, buflen Size, id Ub2) Sword
	fnNlsCharSetNameToId        = func(envhp unsafe.Pointer, name *Ub1) Ub2
	fnNlsEnvironmentVariableGet = func(val unsafe.Pointer, size Size, item, charset Ub2, rsize *Size) Sword
	fnNlsNumericInfoGet         = func(envhp, errhp unsafe.Pointer, val *Sb4, item Ub2) Sword
)

// EnvNlsCreate forwards to OCIEnvNlsCreate. A returned environment
// handle with a success status yields StatusSuccess, and the context
// notes whether the native call reported success with info. A nil
// handle yields StatusError with ErrCreateEnv recorded.
func (l *Library) EnvNlsCreate(envhpp *unsafe.Pointer, mode Ub4, ctxp, malocfp, ralocfp, mfreefp unsafe.Pointer, xtramemSz Size, usrmempp *unsafe.Pointer, charset, ncharset Ub2) Sword {
	fn, ok := resolve[fnEnvNlsCreate](l, symEnvNlsCreate)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhpp, mode, ctxp, malocfp, ralocfp, mfreefp, xtramemSz, usrmempp, charset, ncharset)
	return l.envResult(symEnvNlsCreate, status, envhpp)
}

// EnvCreate forwards to OCIEnvCreate, following the same rules as
// EnvNlsCreate.
func (l *Library) EnvCreate(envhpp *unsafe.Pointer, mode Ub4, ctxp, malocfp, ralocfp, mfreefp unsafe.Pointer, xtramemSz Size, usrmempp *unsafe.Pointer) Sword {
	fn, ok := resolve[fnEnvCreate](l, symEnvCreate)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhpp, mode, ctxp, malocfp, ralocfp, mfreefp, xtramemSz, usrmempp)
	return l.envResult(symEnvCreate, status, envhpp)
}

// HandleAlloc forwards to OCIHandleAlloc.
func (l *Library) HandleAlloc(parenth unsafe.Pointer, hndlpp *unsafe.Pointer, htype Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword {
	fn, ok := resolve[fnHandleAlloc](l, symHandleAlloc)
	if !ok {
		return StatusLoadFailure
	}
	return l.checkEnv(symHandleAlloc, fn(parenth, hndlpp, htype, xtramemSz, usrmempp), parenth)
}

// HandleFree forwards to OCIHandleFree.
func (l *Library) HandleFree(hndlp unsafe.Pointer, htype Ub4) Sword {
	fn, ok := resolve[fnHandleFree](l, symHandleFree)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symHandleFree, fn(hndlp, htype), nil)
}

// DescriptorAlloc forwards to OCIDescriptorAlloc.
func (l *Library) DescriptorAlloc(parenth unsafe.Pointer, descpp *unsafe.Pointer, dtype Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword {
	fn, ok := resolve[fnDescriptorAlloc](l, symDescriptorAlloc)
	if !ok {
		return StatusLoadFailure
	}
	return l.checkEnv(symDescriptorAlloc, fn(parenth, descpp, dtype, xtramemSz, usrmempp), parenth)
}

// DescriptorFree forwards to OCIDescriptorFree.
func (l *Library) DescriptorFree(descp unsafe.Pointer, dtype Ub4) Sword {
	fn, ok := resolve[fnDescriptorFree](l, symDescriptorFree)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symDescriptorFree, fn(descp, dtype), nil)
}

// ArrayDescriptorAlloc forwards to OCIArrayDescriptorAlloc.
func (l *Library) ArrayDescriptorAlloc(parenth unsafe.Pointer, descpp *unsafe.Pointer, dtype, arraySize Ub4, xtramemSz Size, usrmempp *unsafe.Pointer) Sword {
	fn, ok := resolve[fnArrayDescriptorAlloc](l, symArrayDescriptorAlloc)
	if !ok {
		return StatusLoadFailure
	}
	return l.checkEnv(symArrayDescriptorAlloc, fn(parenth, descpp, dtype, arraySize, xtramemSz, usrmempp), parenth)
}

// ArrayDescriptorFree forwards to OCIArrayDescriptorFree.
func (l *Library) ArrayDescriptorFree(descp *unsafe.Pointer, dtype Ub4) Sword {
	fn, ok := resolve[fnArrayDescriptorFree](l, symArrayDescriptorFree)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symArrayDescriptorFree, fn(descp, dtype), nil)
}

// AttrGet forwards to OCIAttrGet.
func (l *Library) AttrGet(trgthndlp unsafe.Pointer, trghndltyp Ub4, attributep unsafe.Pointer, sizep *Ub4, attrtype Ub4, errhp unsafe.Pointer) Sword {
	fn, ok := resolve[fnAttrGet](l, symAttrGet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symAttrGet, fn(trgthndlp, trghndltyp, attributep, sizep, attrtype, errhp), errhp)
}

// AttrSet forwards to OCIAttrSet.
func (l *Library) AttrSet(trgthndlp unsafe.Pointer, trghndltyp Ub4, attributep unsafe.Pointer, size, attrtype Ub4, errhp unsafe.Pointer) Sword {
	fn, ok := resolve[fnAttrSet](l, symAttrSet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symAttrSet, fn(trgthndlp, trghndltyp, attributep, size, attrtype, errhp), errhp)
}

// ParamGet forwards to OCIParamGet.
func (l *Library) ParamGet(hndlp unsafe.Pointer, htype Ub4, errhp unsafe.Pointer, parmdpp *unsafe.Pointer, pos Ub4) Sword {
	fn, ok := resolve[fnParamGet](l, symParamGet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symParamGet, fn(hndlp, htype, errhp, parmdpp, pos), errhp)
}

// ErrorGet forwards to OCIErrorGet. Its own failures are not traced.
func (l *Library) ErrorGet(hndlp unsafe.Pointer, recordno Ub4, sqlstate *Ub1, errcodep *Sb4, bufp *Ub1, bufsiz, htype Ub4) Sword {
	fn, ok := resolve[fnErrorGet](l, symErrorGet)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(hndlp, recordno, sqlstate, errcodep, bufp, bufsiz, htype)
	l.metrics.recordCall(symbolDefs[symErrorGet].name, status)
	return status
}

// ClientVersion forwards to OCIClientVersion. If the symbol cannot be
// resolved the outputs are set to zero.
func (l *Library) ClientVersion(major, minor, update, patch, portUpdate *Sword) {
	fn, ok := resolve[fnClientVersion](l, symClientVersion)
	if !ok {
		for _, out := range []*Sword{major, minor, update, patch, portUpdate} {
			if out != nil {
				*out = 0
			}
		}
		return
	}
	fn(major, minor, update, patch, portUpdate)
	l.accessed(symClientVersion)
}

// ServerRelease forwards to OCIServerRelease.
func (l *Library) ServerRelease(hndlp, errhp unsafe.Pointer, bufp *Ub1, bufsz Ub4, hndltype Ub1, version *Ub4) Sword {
	fn, ok := resolve[fnServerRelease](l, symServerRelease)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symServerRelease, fn(hndlp, errhp, bufp, bufsz, hndltype, version), errhp)
}

// ContextGetValue forwards to OCIContextGetValue.
func (l *Library) ContextGetValue(hdl, errhp unsafe.Pointer, key *Ub1, keylen Ub1, ctxValue *unsafe.Pointer) Sword {
	fn, ok := resolve[fnContextGetValue](l, symContextGetValue)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symContextGetValue, fn(hdl, errhp, key, keylen, ctxValue), errhp)
}

// ContextSetValue forwards to OCIContextSetValue.
func (l *Library) ContextSetValue(hdl, errhp unsafe.Pointer, duration Ub2, key *Ub1, keylen Ub1, ctxValue unsafe.Pointer) Sword {
	fn, ok := resolve[fnContextSetValue](l, symContextSetValue)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symContextSetValue, fn(hdl, errhp, duration, key, keylen, ctxValue), errhp)
}

// MemoryAlloc forwards to OCIMemoryAlloc.
func (l *Library) MemoryAlloc(hdl, errhp unsafe.Pointer, mem *unsafe.Pointer, duration Ub2, size, flags Ub4) Sword {
	fn, ok := resolve[fnMemoryAlloc](l, symMemoryAlloc)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symMemoryAlloc, fn(hdl, errhp, mem, duration, size, flags), errhp)
}

// MemoryFree forwards to OCIMemoryFree.
func (l *Library) MemoryFree(hdl, errhp, mem unsafe.Pointer) Sword {
	fn, ok := resolve[fnMemoryFree](l, symMemoryFree)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symMemoryFree, fn(hdl, errhp, mem), errhp)
}

// ThreadKeyInit forwards to OCIThreadKeyInit.
func (l *Library) ThreadKeyInit(hndl, errhp unsafe.Pointer, key *unsafe.Pointer, destFn unsafe.Pointer) Sword {
	fn, ok := resolve[fnThreadKeyInit](l, symThreadKeyInit)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symThreadKeyInit, fn(hndl, errhp, key, destFn), errhp)
}

// ThreadKeyGet forwards to OCIThreadKeyGet.
func (l *Library) ThreadKeyGet(hndl, errhp, key unsafe.Pointer, value *unsafe.Pointer) Sword {
	fn, ok := resolve[fnThreadKeyGet](l, symThreadKeyGet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symThreadKeyGet, fn(hndl, errhp, key, value), errhp)
}

// ThreadKeySet forwards to OCIThreadKeySet.
func (l *Library) ThreadKeySet(hndl, errhp, key, value unsafe.Pointer) Sword {
	fn, ok := resolve[fnThreadKeySet](l, symThreadKeySet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symThreadKeySet, fn(hndl, errhp, key, value), errhp)
}

// ThreadKeyDestroy forwards to OCIThreadKeyDestroy.
func (l *Library) ThreadKeyDestroy(hndl, errhp unsafe.Pointer, key *unsafe.Pointer) Sword {
	fn, ok := resolve[fnThreadKeyDestroy](l, symThreadKeyDestroy)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symThreadKeyDestroy, fn(hndl, errhp, key), errhp)
}

// NlsCharSetIdToName forwards to OCINlsCharSetIdToName.
func (l *Library) NlsCharSetIdToName(envhp unsafe.Pointer, buf *Ub1, buflen Size, id Ub2) Sword {
	fn, ok := resolve[fnNlsCharSetIdToName](l, symNlsCharSetIdToName)
	if !ok {
		return StatusLoadFailure
	}
	return l.checkEnv(symNlsCharSetIdToName, fn(envhp, buf, buflen, id), envhp)
}

// NlsCharSetNameToId forwards to OCINlsCharSetNameToId. It returns 0
// if the symbol cannot be resolved.
func (l *Library) NlsCharSetNameToId(envhp unsafe.Pointer, name *Ub1) Ub2 {
	fn, ok := resolve[fnNlsCharSetNameToId](l, symNlsCharSetNameToId)
	if !ok {
		return 0
	}
	defer l.accessed(symNlsCharSetNameToId)
	return fn(envhp, name)
}

// NlsEnvironmentVariableGet forwards to OCINlsEnvironmentVariableGet.
func (l *Library) NlsEnvironmentVariableGet(val unsafe.Pointer, size Size, item, charset Ub2, rsize *Size) Sword {
	fn, ok := resolve[fnNlsEnvironmentVariableGet](l, symNlsEnvironmentVariableGet)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(val, size, item, charset, rsize)
	if isFailure(status) {
		l.lctx.setError(ErrGetEnvVar, symbolDefs[symNlsEnvironmentVariableGet].name,
			l.lctx.actionFor(symbolDefs[symNlsEnvironmentVariableGet].action),
			"unable to get NLS environment variable %d (status %d)", item, status)
	}
	return l.check(symNlsEnvironmentVariableGet, status, nil)
}

// NlsNumericInfoGet forwards to OCINlsNumericInfoGet.
func (l *Library) NlsNumericInfoGet(envhp, errhp unsafe.Pointer, val *Sb4, item Ub2) Sword {
	fn, ok := resolve[fnNlsNumericInfoGet](l, symNlsNumericInfoGet)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symNlsNumericInfoGet, fn(envhp, errhp, val, item), errhp)
}
