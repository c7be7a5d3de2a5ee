//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnTypeByFullName = func(envhp, errhp, svchp unsafe.Pointer, fullTypeName *Ub1, fullTypeNameLength Ub4, versionName *Ub1, versionNameLength Ub4, pinDuration Ub2, getOption Sword, tdo *unsafe.Pointer) Sword
	fnObjectNew      = func(envhp, errhp, svchp unsafe.Pointer, typecode Ub2, tdo, table unsafe.Pointer, duration Ub2, value Boolean, instance *unsafe.Pointer) Sword
	fnObjectFree     = func(envhp, errhp, instance unsafe.Pointer, flags Ub2) Sword
	fnObjectPin      = func(envhp, errhp, objectRef, corhdl unsafe.Pointer, pinOption Sword, pinDuration Ub2, lockOption Sword, object *unsafe.Pointer) Sword
	fnObjectUnpin    = func(envhp, errhp, object unsafe.Pointer) Sword
	fnObjectGetInd   = func(envhp, errhp, instance unsafe.Pointer, nullStruct *unsafe.Pointer) Sword
	fnObjectCopy     = func(envhp, errhp, svchp, source, nullSource, target, nullTarget, tdo unsafe.Pointer, duration Ub2, option Ub1) Sword
)

// TypeByFullName forwards to OCITypeByFullName.
func (l *Library) TypeByFullName(envhp, errhp, svchp unsafe.Pointer, fullTypeName *Ub1, fullTypeNameLength Ub4, versionName *Ub1, versionNameLength Ub4, pinDuration Ub2, getOption Sword, tdo *unsafe.Pointer) Sword {
	fn, ok := resolve[fnTypeByFullName](l, symTypeByFullName)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, svchp, fullTypeName, fullTypeNameLength, versionName, versionNameLength, pinDuration, getOption, tdo)
	return l.check(symTypeByFullName, status, errhp)
}

// ObjectNew forwards to OCIObjectNew.
func (l *Library) ObjectNew(envhp, errhp, svchp unsafe.Pointer, typecode Ub2, tdo, table unsafe.Pointer, duration Ub2, value Boolean, instance *unsafe.Pointer) Sword {
	fn, ok := resolve[fnObjectNew](l, symObjectNew)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, svchp, typecode, tdo, table, duration, value, instance)
	return l.check(symObjectNew, status, errhp)
}

// ObjectFree forwards to OCIObjectFree.
func (l *Library) ObjectFree(envhp, errhp, instance unsafe.Pointer, flags Ub2) Sword {
	fn, ok := resolve[fnObjectFree](l, symObjectFree)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symObjectFree, fn(envhp, errhp, instance, flags), errhp)
}

// ObjectPin forwards to OCIObjectPin.
func (l *Library) ObjectPin(envhp, errhp, objectRef, corhdl unsafe.Pointer, pinOption Sword, pinDuration Ub2, lockOption Sword, object *unsafe.Pointer) Sword {
	fn, ok := resolve[fnObjectPin](l, symObjectPin)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, objectRef, corhdl, pinOption, pinDuration, lockOption, object)
	return l.check(symObjectPin, status, errhp)
}

// ObjectUnpin forwards to OCIObjectUnpin.
func (l *Library) ObjectUnpin(envhp, errhp, object unsafe.Pointer) Sword {
	fn, ok := resolve[fnObjectUnpin](l, symObjectUnpin)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symObjectUnpin, fn(envhp, errhp, object), errhp)
}

// ObjectGetInd forwards to OCIObjectGetInd.
func (l *Library) ObjectGetInd(envhp, errhp, instance unsafe.Pointer, nullStruct *unsafe.Pointer) Sword {
	fn, ok := resolve[fnObjectGetInd](l, symObjectGetInd)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symObjectGetInd, fn(envhp, errhp, instance, nullStruct), errhp)
}

// ObjectCopy forwards to OCIObjectCopy.
func (l *Library) ObjectCopy(envhp, errhp, svchp, source, nullSource, target, nullTarget, tdo unsafe.Pointer, duration Ub2, option Ub1) Sword {
	fn, ok := resolve[fnObjectCopy](l, symObjectCopy)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(envhp, errhp, svchp, source, nullSource, target, nullTarget, tdo, duration, option)
	return l.check(symObjectCopy, status, errhp)
}
