//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import "unsafe"

type (
	fnDateTimeConstruct         = func(hndl, errhp, datetime unsafe.Pointer, yr Sb2, mnth, dy, hr, mm, ss Ub1, fsec Ub4, timezone *Ub1, timezoneLength Size) Sword
	fnDateTimeGetDate           = func(hndl, errhp, date unsafe.Pointer, yr *Sb2, mnth, dy *Ub1) Sword
	fnDateTimeGetTime           = func(hndl, errhp, datetime unsafe.Pointer, hr, mm, ss *Ub1, fsec *Ub4) Sword
	fnDateTimeGetTimeZoneOffset = func(hndl, errhp, datetime unsafe.Pointer, hr, mm *Sb1) Sword
	fnIntervalGetDaySecond      = func(hndl, errhp unsafe.Pointer, dy, hr, mm, ss, fsec *Sb4, interval unsafe.Pointer) Sword
	fnIntervalGetYearMonth      = func(hndl, errhp unsafe.Pointer, yr, mnth *Sb4, interval unsafe.Pointer) Sword
	fnIntervalSetDaySecond      = func(hndl, errhp unsafe.Pointer, dy, hr, mm, ss, fsec Sb4, result unsafe.Pointer) Sword
	fnIntervalSetYearMonth      = func(hndl, errhp unsafe.Pointer, yr, mnth Sb4, result unsafe.Pointer) Sword
	fnNumberFromInt             = func(errhp, inum unsafe.Pointer, inumLength, inumSFlag Uword, number unsafe.Pointer) Sword
	fnNumberToInt               = func(errhp, number unsafe.Pointer, rslLength, rslFlag Uword, rsl unsafe.Pointer) Sword
	fnNumberFromReal            = func(errhp, rnum unsafe.Pointer, rnumLength Uword, number unsafe.Pointer) Sword
	fnNumberToReal              = func(errhp, number unsafe.Pointer, rslLength Uword, rsl unsafe.Pointer) Sword

	fnRawAssignBytes   = func(envhp, errhp unsafe.Pointer, rhs *Ub1, rhsLen Ub4, lhs *unsafe.Pointer) Sword
	fnRawPtr           = func(envhp, raw unsafe.Pointer) *Ub1
	fnRawResize        = func(envhp, errhp unsafe.Pointer, newSize Ub4, raw *unsafe.Pointer) Sword
	fnRawSize          = func(envhp, raw unsafe.Pointer) Ub4
	fnStringAssignText = func(envhp, errhp unsafe.Pointer, rhs *Ub1, rhsLen Ub4, lhs *unsafe.Pointer) Sword
	fnStringPtr        = func(envhp, vs unsafe.Pointer) *Ub1
	fnStringResize     = func(envhp, errhp unsafe.Pointer, newSize Ub4, str *unsafe.Pointer) Sword
	fnStringSize       = func(envhp, vs unsafe.Pointer) Ub4
)

// DateTimeConstruct forwards to OCIDateTimeConstruct.
func (l *Library) DateTimeConstruct(hndl, errhp, datetime unsafe.Pointer, yr Sb2, mnth, dy, hr, mm, ss Ub1, fsec Ub4, timezone *Ub1, timezoneLength Size) Sword {
	fn, ok := resolve[fnDateTimeConstruct](l, symDateTimeConstruct)
	if !ok {
		return StatusLoadFailure
	}
	status := fn(hndl, errhp, datetime, yr, mnth, dy, hr, mm, ss, fsec, timezone, timezoneLength)
	return l.check(symDateTimeConstruct, status, errhp)
}

// DateTimeGetDate forwards to OCIDateTimeGetDate.
func (l *Library) DateTimeGetDate(hndl, errhp, date unsafe.Pointer, yr *Sb2, mnth, dy *Ub1) Sword {
	fn, ok := resolve[fnDateTimeGetDate](l, symDateTimeGetDate)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symDateTimeGetDate, fn(hndl, errhp, date, yr, mnth, dy), errhp)
}

// DateTimeGetTime forwards to OCIDateTimeGetTime.
func (l *Library) DateTimeGetTime(hndl, errhp, datetime unsafe.Pointer, hr, mm, ss *Ub1, fsec *Ub4) Sword {
	fn, ok := resolve[fnDateTimeGetTime](l, symDateTimeGetTime)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symDateTimeGetTime, fn(hndl, errhp, datetime, hr, mm, ss, fsec), errhp)
}

// DateTimeGetTimeZoneOffset forwards to OCIDateTimeGetTimeZoneOffset.
func (l *Library) DateTimeGetTimeZoneOffset(hndl, errhp, datetime unsafe.Pointer, hr, mm *Sb1) Sword {
	fn, ok := resolve[fnDateTimeGetTimeZoneOffset](l, symDateTimeGetTimeZoneOffset)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symDateTimeGetTimeZoneOffset, fn(hndl, errhp, datetime, hr, mm), errhp)
}

// IntervalGetDaySecond forwards to OCIIntervalGetDaySecond.
func (l *Library) IntervalGetDaySecond(hndl, errhp unsafe.Pointer, dy, hr, mm, ss, fsec *Sb4, interval unsafe.Pointer) Sword {
	fn, ok := resolve[fnIntervalGetDaySecond](l, symIntervalGetDaySecond)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symIntervalGetDaySecond, fn(hndl, errhp, dy, hr, mm, ss, fsec, interval), errhp)
}

// IntervalGetYearMonth forwards to OCIIntervalGetYearMonth.
func (l *Library) IntervalGetYearMonth(hndl, errhp unsafe.Pointer, yr, mnth *Sb4, interval unsafe.Pointer) Sword {
	fn, ok := resolve[fnIntervalGetYearMonth](l, symIntervalGetYearMonth)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symIntervalGetYearMonth, fn(hndl, errhp, yr, mnth, interval), errhp)
}

// IntervalSetDaySecond forwards to OCIIntervalSetDaySecond.
func (l *Library) IntervalSetDaySecond(hndl, errhp unsafe.Pointer, dy, hr, mm, ss, fsec Sb4, result unsafe.Pointer) Sword {
	fn, ok := resolve[fnIntervalSetDaySecond](l, symIntervalSetDaySecond)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symIntervalSetDaySecond, fn(hndl, errhp, dy, hr, mm, ss, fsec, result), errhp)
}

// IntervalSetYearMonth forwards to OCIIntervalSetYearMonth.
func (l *Library) IntervalSetYearMonth(hndl, errhp unsafe.Pointer, yr, mnth Sb4, result unsafe.Pointer) Sword {
	fn, ok := resolve[fnIntervalSetYearMonth](l, symIntervalSetYearMonth)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symIntervalSetYearMonth, fn(hndl, errhp, yr, mnth, result), errhp)
}

// NumberFromInt forwards to OCINumberFromInt.
func (l *Library) NumberFromInt(errhp, inum unsafe.Pointer, inumLength, inumSFlag Uword, number unsafe.Pointer) Sword {
	fn, ok := resolve[fnNumberFromInt](l, symNumberFromInt)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symNumberFromInt, fn(errhp, inum, inumLength, inumSFlag, number), errhp)
}

// NumberToInt forwards to OCINumberToInt.
func (l *Library) NumberToInt(errhp, number unsafe.Pointer, rslLength, rslFlag Uword, rsl unsafe.Pointer) Sword {
	fn, ok := resolve[fnNumberToInt](l, symNumberToInt)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symNumberToInt, fn(errhp, number, rslLength, rslFlag, rsl), errhp)
}

// NumberFromReal forwards to OCINumberFromReal.
func (l *Library) NumberFromReal(errhp, rnum unsafe.Pointer, rnumLength Uword, number unsafe.Pointer) Sword {
	fn, ok := resolve[fnNumberFromReal](l, symNumberFromReal)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symNumberFromReal, fn(errhp, rnum, rnumLength, number), errhp)
}

// NumberToReal forwards to OCINumberToReal.
func (l *Library) NumberToReal(errhp, number unsafe.Pointer, rslLength Uword, rsl unsafe.Pointer) Sword {
	fn, ok := resolve[fnNumberToReal](l, symNumberToReal)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symNumberToReal, fn(errhp, number, rslLength, rsl), errhp)
}

// RawAssignBytes forwards to OCIRawAssignBytes.
func (l *Library) RawAssignBytes(envhp, errhp unsafe.Pointer, rhs *Ub1, rhsLen Ub4, lhs *unsafe.Pointer) Sword {
	fn, ok := resolve[fnRawAssignBytes](l, symRawAssignBytes)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symRawAssignBytes, fn(envhp, errhp, rhs, rhsLen, lhs), errhp)
}

// RawPtr forwards to OCIRawPtr. It returns nil if the symbol cannot be
// resolved.
func (l *Library) RawPtr(envhp, raw unsafe.Pointer) *Ub1 {
	fn, ok := resolve[fnRawPtr](l, symRawPtr)
	if !ok {
		return nil
	}
	defer l.accessed(symRawPtr)
	return fn(envhp, raw)
}

// RawResize forwards to OCIRawResize.
func (l *Library) RawResize(envhp, errhp unsafe.Pointer, newSize Ub4, raw *unsafe.Pointer) Sword {
	fn, ok := resolve[fnRawResize](l, symRawResize)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symRawResize, fn(envhp, errhp, newSize, raw), errhp)
}

// RawSize forwards to OCIRawSize. It returns 0 if the symbol cannot be
// resolved.
func (l *Library) RawSize(envhp, raw unsafe.Pointer) Ub4 {
	fn, ok := resolve[fnRawSize](l, symRawSize)
	if !ok {
		return 0
	}
	defer l.accessed(symRawSize)
	return fn(envhp, raw)
}

// StringAssignText forwards to OCIStringAssignText.
func (l *Library) StringAssignText(envhp, errhp unsafe.Pointer, rhs *Ub1, rhsLen Ub4, lhs *unsafe.Pointer) Sword {
	fn, ok := resolve[fnStringAssignText](l, symStringAssignText)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStringAssignText, fn(envhp, errhp, rhs, rhsLen, lhs), errhp)
}

// StringPtr forwards to OCIStringPtr. It returns nil if the symbol
// cannot be resolved.
func (l *Library) StringPtr(envhp, vs unsafe.Pointer) *Ub1 {
	fn, ok := resolve[fnStringPtr](l, symStringPtr)
	if !ok {
		return nil
	}
	defer l.accessed(symStringPtr)
	return fn(envhp, vs)
}

// StringResize forwards to OCIStringResize.
func (l *Library) StringResize(envhp, errhp unsafe.Pointer, newSize Ub4, str *unsafe.Pointer) Sword {
	fn, ok := resolve[fnStringResize](l, symStringResize)
	if !ok {
		return StatusLoadFailure
	}
	return l.check(symStringResize, fn(envhp, errhp, newSize, str), errhp)
}

// StringSize forwards to OCIStringSize. It returns 0 if the symbol
// cannot be resolved.
func (l *Library) StringSize(envhp, vs unsafe.Pointer) Ub4 {
	fn, ok := resolve[fnStringSize](l, symStringSize)
	if !ok {
		return 0
	}
	defer l.accessed(symStringSize)
	return fn(envhp, vs)
}
