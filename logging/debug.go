//
// (C) Copyright 2019-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
)

// knownWrappers lists the LeveledLogger methods to skip over when
// determining the real caller location.
var knownWrappers = map[string]struct{}{
	"Trace":   {},
	"Tracef":  {},
	"Debug":   {},
	"Debugf":  {},
	"Info":    {},
	"Infof":   {},
	"Notice":  {},
	"Noticef": {},
	"Error":   {},
	"Errorf":  {},
}

const debugLogFlags = log.Lmicroseconds | log.Lshortfile

// callerDepth returns the output depth adjusted for any convenience
// wrappers so that the reported file:line is the real caller. The
// depth supplied is relative to the caller of callerDepth.
func callerDepth(depth int) int {
	pc := make([]uintptr, depth+5)
	n := runtime.Callers(depth+1, pc)
	if n == 0 {
		return depth
	}

	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !more {
			break
		}
		fnName := frame.Function[strings.LastIndex(frame.Function, ".")+1:]
		if _, found := knownWrappers[fnName]; found {
			depth++
		}
	}

	return depth
}

func newSourceLogger(dest io.Writer, tag string) baseLogger {
	return baseLogger{
		dest: dest,
		log:  log.New(dest, tag, debugLogFlags),
	}
}

func (l *baseLogger) emitSource(name, format string, args ...interface{}) {
	out := fmt.Sprintf(format, args...)
	if err := l.log.Output(callerDepth(logOutputDepth+1), out); err != nil {
		fmt.Fprintf(os.Stderr, "logger %s() failed: %s\n", name, err)
	}
}

// NewDebugLogger returns a DebugLogger configured for outputting
// debugging messages.
func NewDebugLogger(dest io.Writer) *DefaultDebugLogger {
	return &DefaultDebugLogger{newSourceLogger(dest, "DEBUG ")}
}

// DefaultDebugLogger implements the DebugLogger interface.
type DefaultDebugLogger struct {
	baseLogger
}

// Debugf emits a formatted debug message.
func (l *DefaultDebugLogger) Debugf(format string, args ...interface{}) {
	l.emitSource("Debugf", format, args...)
}

// NewTraceLogger returns a TraceLogger configured for outputting
// very verbose messages, e.g. every native symbol resolution.
func NewTraceLogger(dest io.Writer) *DefaultTraceLogger {
	return &DefaultTraceLogger{newSourceLogger(dest, "TRACE ")}
}

// DefaultTraceLogger implements the TraceLogger interface.
type DefaultTraceLogger struct {
	baseLogger
}

// Tracef emits a formatted trace message.
func (l *DefaultTraceLogger) Tracef(format string, args ...interface{}) {
	l.emitSource("Tracef", format, args...)
}
