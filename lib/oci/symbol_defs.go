//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

const (
	// environment and handles
	symEnvNlsCreate symbolID = iota
	symEnvCreate
	symHandleAlloc
	symHandleFree
	symDescriptorAlloc
	symDescriptorFree
	symArrayDescriptorAlloc
	symArrayDescriptorFree
	symAttrGet
	symAttrSet
	symParamGet
	symErrorGet
	symClientVersion
	symServerRelease
	symContextGetValue
	symContextSetValue
	symMemoryAlloc
	symMemoryFree
	symThreadKeyInit
	symThreadKeyGet
	symThreadKeySet
	symThreadKeyDestroy
	symNlsCharSetIdToName
	symNlsCharSetNameToId
	symNlsEnvironmentVariableGet
	symNlsNumericInfoGet

	// sessions and transactions
	symServerAttach
	symServerDetach
	symSessionBegin
	symSessionEnd
	symSessionGet
	symSessionRelease
	symSessionPoolCreate
	symSessionPoolDestroy
	symPing
	symBreak
	symReset
	symTransStart
	symTransCommit
	symTransRollback
	symTransPrepare

	// statements
	symStmtPrepare2
	symStmtRelease
	symStmtExecute
	symStmtFetch2
	symStmtGetNextResult
	symBindByPos2
	symBindByName2
	symDefineByPos2
	symDescribeAny

	// LOBs
	symLobRead2
	symLobWrite2
	symLobGetLength2
	symLobTrim2
	symLobCreateTemporary
	symLobFreeTemporary
	symLobIsTemporary
	symLobOpen
	symLobClose
	symLobCharSetForm
	symLobGetChunkSize

	// dates, intervals and numbers
	symDateTimeConstruct
	symDateTimeGetDate
	symDateTimeGetTime
	symDateTimeGetTimeZoneOffset
	symIntervalGetDaySecond
	symIntervalGetYearMonth
	symIntervalSetDaySecond
	symIntervalSetYearMonth
	symNumberFromInt
	symNumberToInt
	symNumberFromReal
	symNumberToReal

	// raw and string values
	symRawAssignBytes
	symRawPtr
	symRawResize
	symRawSize
	symStringAssignText
	symStringPtr
	symStringResize
	symStringSize

	// objects
	symTypeByFullName
	symObjectNew
	symObjectFree
	symObjectPin
	symObjectUnpin
	symObjectGetInd
	symObjectCopy

	numSymbols
)

var symbolDefs = [numSymbols]symbolDef{
	symEnvNlsCreate:              {"OCIEnvNlsCreate", "create environment", diagEnvCreate, (*fnEnvNlsCreate)(nil)},
	symEnvCreate:                 {"OCIEnvCreate", "create environment", diagEnvCreate, (*fnEnvCreate)(nil)},
	symHandleAlloc:               {"OCIHandleAlloc", "allocate handle", diagAllocFree, (*fnHandleAlloc)(nil)},
	symHandleFree:                {"OCIHandleFree", "free handle", diagAllocFree, (*fnHandleFree)(nil)},
	symDescriptorAlloc:           {"OCIDescriptorAlloc", "allocate descriptor", diagAllocFree, (*fnDescriptorAlloc)(nil)},
	symDescriptorFree:            {"OCIDescriptorFree", "free descriptor", diagAllocFree, (*fnDescriptorFree)(nil)},
	symArrayDescriptorAlloc:      {"OCIArrayDescriptorAlloc", "allocate descriptors", diagAllocFree, (*fnArrayDescriptorAlloc)(nil)},
	symArrayDescriptorFree:       {"OCIArrayDescriptorFree", "free descriptors", diagAllocFree, (*fnArrayDescriptorFree)(nil)},
	symAttrGet:                   {"OCIAttrGet", "get attribute", diagStatus, (*fnAttrGet)(nil)},
	symAttrSet:                   {"OCIAttrSet", "set attribute", diagStatus, (*fnAttrSet)(nil)},
	symParamGet:                  {"OCIParamGet", "get parameter", diagStatus, (*fnParamGet)(nil)},
	symErrorGet:                  {"OCIErrorGet", "get error", diagNone, (*fnErrorGet)(nil)},
	symClientVersion:             {"OCIClientVersion", "get client version", diagNone, (*fnClientVersion)(nil)},
	symServerRelease:             {"OCIServerRelease", "get server version", diagStatus, (*fnServerRelease)(nil)},
	symContextGetValue:           {"OCIContextGetValue", "get context value", diagStatus, (*fnContextGetValue)(nil)},
	symContextSetValue:           {"OCIContextSetValue", "set context value", diagStatus, (*fnContextSetValue)(nil)},
	symMemoryAlloc:               {"OCIMemoryAlloc", "allocate memory", diagStatus, (*fnMemoryAlloc)(nil)},
	symMemoryFree:                {"OCIMemoryFree", "free memory", diagStatus, (*fnMemoryFree)(nil)},
	symThreadKeyInit:             {"OCIThreadKeyInit", "initialize thread key", diagStatus, (*fnThreadKeyInit)(nil)},
	symThreadKeyGet:              {"OCIThreadKeyGet", "get thread key value", diagStatus, (*fnThreadKeyGet)(nil)},
	symThreadKeySet:              {"OCIThreadKeySet", "set thread key value", diagStatus, (*fnThreadKeySet)(nil)},
	symThreadKeyDestroy:          {"OCIThreadKeyDestroy", "destroy thread key", diagStatus, (*fnThreadKeyDestroy)(nil)},
	symNlsCharSetIdToName:        {"OCINlsCharSetIdToName", "get character set name", diagStatus, (*fnNlsCharSetIdToName)(nil)},
	symNlsCharSetNameToId:        {"OCINlsCharSetNameToId", "get character set id", diagNone, (*fnNlsCharSetNameToId)(nil)},
	symNlsEnvironmentVariableGet: {"OCINlsEnvironmentVariableGet", "get NLS environment variable", diagStatus, (*fnNlsEnvironmentVariableGet)(nil)},
	symNlsNumericInfoGet:         {"OCINlsNumericInfoGet", "get NLS info", diagStatus, (*fnNlsNumericInfoGet)(nil)},

	symServerAttach:       {"OCIServerAttach", "server attach", diagStatus, (*fnServerAttach)(nil)},
	symServerDetach:       {"OCIServerDetach", "server detach", diagStatus, (*fnServerDetach)(nil)},
	symSessionBegin:       {"OCISessionBegin", "begin session", diagStatus, (*fnSessionBegin)(nil)},
	symSessionEnd:         {"OCISessionEnd", "end session", diagStatus, (*fnSessionEnd)(nil)},
	symSessionGet:         {"OCISessionGet", "get session", diagStatus, (*fnSessionGet)(nil)},
	symSessionRelease:     {"OCISessionRelease", "release session", diagStatus, (*fnSessionRelease)(nil)},
	symSessionPoolCreate:  {"OCISessionPoolCreate", "create pool", diagStatus, (*fnSessionPoolCreate)(nil)},
	symSessionPoolDestroy: {"OCISessionPoolDestroy", "destroy pool", diagStatus, (*fnSessionPoolDestroy)(nil)},
	symPing:               {"OCIPing", "ping", diagStatus, (*fnPing)(nil)},
	symBreak:              {"OCIBreak", "break execution", diagStatus, (*fnBreak)(nil)},
	symReset:              {"OCIReset", "reset after break", diagStatus, (*fnReset)(nil)},
	symTransStart:         {"OCITransStart", "start transaction", diagStatus, (*fnTransStart)(nil)},
	symTransCommit:        {"OCITransCommit", "commit", diagStatus, (*fnTransCommit)(nil)},
	symTransRollback:      {"OCITransRollback", "rollback", diagStatus, (*fnTransRollback)(nil)},
	symTransPrepare:       {"OCITransPrepare", "prepare transaction", diagStatus, (*fnTransPrepare)(nil)},

	symStmtPrepare2:      {"OCIStmtPrepare2", "prepare SQL", diagStatus, (*fnStmtPrepare2)(nil)},
	symStmtRelease:       {"OCIStmtRelease", "release statement", diagStatus, (*fnStmtRelease)(nil)},
	symStmtExecute:       {"OCIStmtExecute", "execute", diagStatus, (*fnStmtExecute)(nil)},
	symStmtFetch2:        {"OCIStmtFetch2", "fetch", diagStatus, (*fnStmtFetch2)(nil)},
	symStmtGetNextResult: {"OCIStmtGetNextResult", "get next result", diagStatus, (*fnStmtGetNextResult)(nil)},
	symBindByPos2:        {"OCIBindByPos2", "bind by position", diagStatus, (*fnBindByPos2)(nil)},
	symBindByName2:       {"OCIBindByName2", "bind by name", diagStatus, (*fnBindByName2)(nil)},
	symDefineByPos2:      {"OCIDefineByPos2", "define", diagStatus, (*fnDefineByPos2)(nil)},
	symDescribeAny:       {"OCIDescribeAny", "describe", diagStatus, (*fnDescribeAny)(nil)},

	symLobRead2:           {"OCILobRead2", "read from LOB", diagStatus, (*fnLobRead2)(nil)},
	symLobWrite2:          {"OCILobWrite2", "write to LOB", diagStatus, (*fnLobWrite2)(nil)},
	symLobGetLength2:      {"OCILobGetLength2", "get LOB length", diagStatus, (*fnLobGetLength2)(nil)},
	symLobTrim2:           {"OCILobTrim2", "trim LOB", diagStatus, (*fnLobTrim2)(nil)},
	symLobCreateTemporary: {"OCILobCreateTemporary", "create temporary LOB", diagStatus, (*fnLobCreateTemporary)(nil)},
	symLobFreeTemporary:   {"OCILobFreeTemporary", "free temporary LOB", diagStatus, (*fnLobFreeTemporary)(nil)},
	symLobIsTemporary:     {"OCILobIsTemporary", "check is temporary", diagStatus, (*fnLobIsTemporary)(nil)},
	symLobOpen:            {"OCILobOpen", "open LOB", diagStatus, (*fnLobOpen)(nil)},
	symLobClose:           {"OCILobClose", "close LOB", diagStatus, (*fnLobClose)(nil)},
	symLobCharSetForm:     {"OCILobCharSetForm", "get character set form", diagStatus, (*fnLobCharSetForm)(nil)},
	symLobGetChunkSize:    {"OCILobGetChunkSize", "get chunk size", diagStatus, (*fnLobGetChunkSize)(nil)},

	symDateTimeConstruct:         {"OCIDateTimeConstruct", "construct date", diagStatus, (*fnDateTimeConstruct)(nil)},
	symDateTimeGetDate:           {"OCIDateTimeGetDate", "get date portion", diagStatus, (*fnDateTimeGetDate)(nil)},
	symDateTimeGetTime:           {"OCIDateTimeGetTime", "get time portion", diagStatus, (*fnDateTimeGetTime)(nil)},
	symDateTimeGetTimeZoneOffset: {"OCIDateTimeGetTimeZoneOffset", "get time zone portion", diagStatus, (*fnDateTimeGetTimeZoneOffset)(nil)},
	symIntervalGetDaySecond:      {"OCIIntervalGetDaySecond", "get interval components", diagStatus, (*fnIntervalGetDaySecond)(nil)},
	symIntervalGetYearMonth:      {"OCIIntervalGetYearMonth", "get interval components", diagStatus, (*fnIntervalGetYearMonth)(nil)},
	symIntervalSetDaySecond:      {"OCIIntervalSetDaySecond", "set interval components", diagStatus, (*fnIntervalSetDaySecond)(nil)},
	symIntervalSetYearMonth:      {"OCIIntervalSetYearMonth", "set interval components", diagStatus, (*fnIntervalSetYearMonth)(nil)},
	symNumberFromInt:             {"OCINumberFromInt", "convert integer to Oracle number", diagStatus, (*fnNumberFromInt)(nil)},
	symNumberToInt:               {"OCINumberToInt", "convert Oracle number to integer", diagStatus, (*fnNumberToInt)(nil)},
	symNumberFromReal:            {"OCINumberFromReal", "convert real to Oracle number", diagStatus, (*fnNumberFromReal)(nil)},
	symNumberToReal:              {"OCINumberToReal", "convert Oracle number to real", diagStatus, (*fnNumberToReal)(nil)},

	symRawAssignBytes:   {"OCIRawAssignBytes", "assign bytes to raw", diagStatus, (*fnRawAssignBytes)(nil)},
	symRawPtr:           {"OCIRawPtr", "get raw pointer", diagNone, (*fnRawPtr)(nil)},
	symRawResize:        {"OCIRawResize", "resize raw", diagStatus, (*fnRawResize)(nil)},
	symRawSize:          {"OCIRawSize", "get raw size", diagNone, (*fnRawSize)(nil)},
	symStringAssignText: {"OCIStringAssignText", "assign to string", diagStatus, (*fnStringAssignText)(nil)},
	symStringPtr:        {"OCIStringPtr", "get string pointer", diagNone, (*fnStringPtr)(nil)},
	symStringResize:     {"OCIStringResize", "resize string", diagStatus, (*fnStringResize)(nil)},
	symStringSize:       {"OCIStringSize", "get string size", diagNone, (*fnStringSize)(nil)},

	symTypeByFullName: {"OCITypeByFullName", "get type by full name", diagStatus, (*fnTypeByFullName)(nil)},
	symObjectNew:      {"OCIObjectNew", "create object", diagStatus, (*fnObjectNew)(nil)},
	symObjectFree:     {"OCIObjectFree", "free object", diagStatus, (*fnObjectFree)(nil)},
	symObjectPin:      {"OCIObjectPin", "pin reference", diagStatus, (*fnObjectPin)(nil)},
	symObjectUnpin:    {"OCIObjectUnpin", "unpin object", diagStatus, (*fnObjectUnpin)(nil)},
	symObjectGetInd:   {"OCIObjectGetInd", "get indicator structure", diagStatus, (*fnObjectGetInd)(nil)},
	symObjectCopy:     {"OCIObjectCopy", "copy object", diagStatus, (*fnObjectCopy)(nil)},
}
