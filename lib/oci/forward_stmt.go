//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnStmtPrepare2      = func(svchp unsafe.Pointer, stmthp *unsafe.Pointer, errhp unsafe.Pointer, stmttext *Ub1, stmtLen Ub4, key *Ub1, keylen, language, mode Ub4) Sword
	fnStmtRelease       = func(stmthp, errhp unsafe.Pointer, key *Ub1, keylen, mode Ub4) Sword
	fnStmtExecute       = func(svchp, stmtp, errhp unsafe.Pointer, iters, rowoff Ub4, snapIn, snapOut unsafe.Pointer, mode Ub4) Sword
	fnStmtFetch2        = func(stmthp, errhp unsafe.Pointer, nrows Ub4, orientation Ub2, fetchOffset Sb4, mode Ub4) Sword
	fnStmtGetNextResult = func(stmthp, errhp unsafe.Pointer, result *unsafe.Pointer, rtype *Ub4, mode Ub4) Sword
	fnBindByPos2        = func(stmtp unsafe.Pointer, bindp *unsafe.Pointer, errhp unsafe.Pointer, position Ub4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, alenp *Ub4, rcodep *Ub2, maxarrLen Ub4, curelep *Ub4, mode Ub4) Sword
	fnBindByName2       = func(stmtp unsafe.Pointer, bindp *unsafe.Pointer, errhp unsafe.Pointer, placeholder *Ub1, placehLen Sb4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, alenp *Ub4, rcodep *Ub2, maxarrLen Ub4, curelep *Ub4, mode Ub4) Sword
	fnDefineByPos2      = func(stmtp unsafe.Pointer, defnpp *unsafe.Pointer, errhp unsafe.Pointer, position Ub4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, rlenp *Ub4, rcodep *Ub2, mode Ub4) Sword
	fnDescribeAny       = func(svchp, errhp, objptr unsafe.Pointer, objnmLen Ub4, objptrTyp, infoLevel, objtyp Ub1, dschp unsafe.Pointer) Sword
)

// StmtPrepare2 forwards to OCIStmtPrepare2.
func (l *Library) StmtPrepare2(svchp unsafe.Pointer, stmthp *unsafe.Pointer, errhp unsafe.Pointer, stmttext *Ub1, stmtLen Ub4, key *Ub1, keylen, language, mode Ub4) Sword {
	fn, ok := resolve[fnStmtPrepare2](l, symStmtPrepare2)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStmtPrepare2, fn(svchp, stmthp, errhp, stmttext, stmtLen, key, keylen, language, mode), errhp)
}

// StmtRelease forwards to OCIStmtRelease.
func (l *Library) StmtRelease(stmthp, errhp unsafe.Pointer, key *Ub1, keylen, mode Ub4) Sword {
	fn, ok := resolve[fnStmtRelease](l, symStmtRelease)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStmtRelease, fn(stmthp, errhp, key, keylen, mode), errhp)
}

// StmtExecute forwards to OCIStmtExecute.
func (l *Library) StmtExecute(svchp, stmtp, errhp unsafe.Pointer, iters, rowoff Ub4, snapIn, snapOut unsafe.Pointer, mode Ub4) Sword {
	fn, ok := resolve[fnStmtExecute](l, symStmtExecute)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStmtExecute, fn(svchp, stmtp, errhp, iters, rowoff, snapIn, snapOut, mode), errhp)
}

// StmtFetch2 forwards to OCIStmtFetch2.
func (l *Library) StmtFetch2(stmthp, errhp unsafe.Pointer, nrows Ub4, orientation Ub2, fetchOffset Sb4, mode Ub4) Sword {
	fn, ok := resolve[fnStmtFetch2](l, symStmtFetch2)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStmtFetch2, fn(stmthp, errhp, nrows, orientation, fetchOffset, mode), errhp)
}

// StmtGetNextResult forwards to OCIStmtGetNextResult.
func (l *Library) StmtGetNextResult(stmthp, errhp unsafe.Pointer, result *unsafe.Pointer, rtype *Ub4, mode Ub4) Sword {
	fn, ok := resolve[fnStmtGetNextResult](l, symStmtGetNextResult)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStmtGetNextResult, fn(stmthp, errhp, result, rtype, mode), errhp)
}

// BindByPos2 forwards to OCIBindByPos2.
func (l *Library) BindByPos2(stmtp unsafe.Pointer, bindp *unsafe.Pointer, errhp unsafe.Pointer, position Ub4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, alenp *Ub4, rcodep *Ub2, maxarrLen Ub4, curelep *Ub4, mode Ub4) Sword {
	fn, ok := resolve[fnBindByPos2](l, symBindByPos2)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(stmtp, bindp, errhp, position, valuep, valueSz, dty, indp, alenp, rcodep, maxarrLen, curelep, mode)
	return l.check(symBindByPos2, status, errhp)
}

// BindByName2 forwards to OCIBindByName2.
func (l *Library) BindByName2(stmtp unsafe.Pointer, bindp *unsafe.Pointer, errhp unsafe.Pointer, placeholder *Ub1, placehLen Sb4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, alenp *Ub4, rcodep *Ub2, maxarrLen Ub4, curelep *Ub4, mode Ub4) Sword {
	fn, ok := resolve[fnBindByName2](l, symBindByName2)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(stmtp, bindp, errhp, placeholder, placehLen, valuep, valueSz, dty, indp, alenp, rcodep, maxarrLen, curelep, mode)
	return l.check(symBindByName2, status, errhp)
}

// DefineByPos2 forwards to OCIDefineByPos2.
func (l *Library) DefineByPos2(stmtp unsafe.Pointer, defnpp *unsafe.Pointer, errhp unsafe.Pointer, position Ub4, valuep unsafe.Pointer, valueSz Sb8, dty Ub2, indp unsafe.Pointer, rlenp *Ub4, rcodep *Ub2, mode Ub4) Sword {
	fn, ok := resolve[fnDefineByPos2](l, symDefineByPos2)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(stmtp, defnpp, errhp, position, valuep, valueSz, dty, indp, rlenp, rcodep, mode)
	return l.check(symDefineByPos2, status, errhp)
}

// DescribeAny forwards to OCIDescribeAny.
func (l *Library) DescribeAny(svchp, errhp, objptr unsafe.Pointer, objnmLen Ub4, objptrTyp, infoLevel, objtyp Ub1, dschp unsafe.Pointer) Sword {
	fn, ok := resolve[fnDescribeAny](l, symDescribeAny)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symDescribeAny, fn(svchp, errhp, objptr, objnmLen, objptrTyp, infoLevel, objtyp, dschp), errhp)
}
