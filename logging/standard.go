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
)

const stdLogFlags = log.LstdFlags

// newPlainLogger creates an unadorned logger (i.e. no timestamps,
// source info, etc); typically used for CLI utility logging.
func newPlainLogger(output io.Writer, tag string) baseLogger {
	return baseLogger{
		dest: output,
		log:  log.New(output, tag, emptyLogFlags),
	}
}

// newStdLogger creates a logger with standard formatting
// (e.g. to stderr, logfile, etc.)
func newStdLogger(prefix, tag string, output io.Writer) baseLogger {
	loggerPrefix := tag + " "
	if prefix != "" {
		loggerPrefix = prefix + " " + loggerPrefix
	}
	return baseLogger{
		dest:   output,
		prefix: prefix,
		log:    log.New(output, loggerPrefix, stdLogFlags),
	}
}

func (l *baseLogger) emit(name, format string, args ...interface{}) {
	out := fmt.Sprintf(format, args...)
	if err := l.log.Output(logOutputDepth+1, out); err != nil {
		fmt.Fprintf(os.Stderr, "logger %s() failed: %s\n", name, err)
	}
}

// DefaultInfoLogger implements the InfoLogger interface.
type DefaultInfoLogger struct {
	baseLogger
}

// NewCommandLineInfoLogger returns an InfoLogger that writes
// messages without any decoration.
func NewCommandLineInfoLogger(output io.Writer) *DefaultInfoLogger {
	return &DefaultInfoLogger{newPlainLogger(output, "")}
}

// NewInfoLogger returns an InfoLogger with standard formatting.
func NewInfoLogger(prefix string, output io.Writer) *DefaultInfoLogger {
	return &DefaultInfoLogger{newStdLogger(prefix, "INFO", output)}
}

// Infof emits a formatted informational message.
func (l *DefaultInfoLogger) Infof(format string, args ...interface{}) {
	l.emit("Infof", format, args...)
}

// DefaultNoticeLogger implements the NoticeLogger interface.
type DefaultNoticeLogger struct {
	baseLogger
}

// NewCommandLineNoticeLogger returns a NoticeLogger that writes
// messages with a bare "NOTICE: " tag.
func NewCommandLineNoticeLogger(output io.Writer) *DefaultNoticeLogger {
	return &DefaultNoticeLogger{newPlainLogger(output, "NOTICE: ")}
}

// NewNoticeLogger returns a NoticeLogger with standard formatting.
func NewNoticeLogger(prefix string, output io.Writer) *DefaultNoticeLogger {
	return &DefaultNoticeLogger{newStdLogger(prefix, "NOTICE", output)}
}

// Noticef emits a formatted notice message.
func (l *DefaultNoticeLogger) Noticef(format string, args ...interface{}) {
	l.emit("Noticef", format, args...)
}

// DefaultErrorLogger implements the ErrorLogger interface.
type DefaultErrorLogger struct {
	baseLogger
}

// NewCommandLineErrorLogger returns an ErrorLogger that writes
// messages with a bare "ERROR: " tag.
func NewCommandLineErrorLogger(output io.Writer) *DefaultErrorLogger {
	return &DefaultErrorLogger{newPlainLogger(output, "ERROR: ")}
}

// NewErrorLogger returns an ErrorLogger with standard formatting.
func NewErrorLogger(prefix string, output io.Writer) *DefaultErrorLogger {
	return &DefaultErrorLogger{newStdLogger(prefix, "ERROR", output)}
}

// Errorf emits a formatted error message.
func (l *DefaultErrorLogger) Errorf(format string, args ...interface{}) {
	l.emit("Errorf", format, args...)
}
