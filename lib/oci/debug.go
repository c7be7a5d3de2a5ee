//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DebugLevel is a bitmask selecting which debug traces are written.
type DebugLevel uint32

const (
	// DebugUnreportedErrors traces failures of alloc/free calls whose
	// status callers usually ignore.
	DebugUnreportedErrors DebugLevel = 0x0001
	// DebugRefs is reserved for reference count tracing.
	DebugRefs DebugLevel = 0x0002
	// DebugFns traces every forwarded function call.
	DebugFns DebugLevel = 0x0004
	// DebugErrors traces native failures along with the native message.
	DebugErrors DebugLevel = 0x0008
	// DebugSQL is reserved for statement tracing.
	DebugSQL DebugLevel = 0x0010
	// DebugMem is reserved for memory tracing.
	DebugMem DebugLevel = 0x0020
	// DebugLoadLib traces each library load attempt.
	DebugLoadLib DebugLevel = 0x0040
)

const (
	// EnvDebugLevel names the variable holding the debug bitmask.
	EnvDebugLevel = "RORACLE_DEBUG_LEVEL"
	// EnvDebugPrefix names the variable holding the trace prefix template.
	EnvDebugPrefix = "RORACLE_DEBUG_PREFIX"
	// DefaultDebugPrefix is used when no valid prefix is configured.
	DefaultDebugPrefix = "RORACLE [%i] %d %t: "
	// MaxDebugPrefixLen is the longest accepted prefix template.
	MaxDebugPrefixLen = 64
)

// DebugConfig holds the trace settings. It is initialized once and not
// modified afterwards; trace lines are serialized so that they never
// interleave.
type DebugConfig struct {
	once   sync.Once
	level  DebugLevel
	prefix string

	mu       sync.Mutex
	out      io.Writer
	threadID func() uint64
	now      func() time.Time

	prefixSet bool
}

type debugSettings struct {
	lookupEnv func(string) (string, bool)
	level     DebugLevel
	prefix    string
	out       io.Writer
	threadID  func() uint64
	now       func() time.Time
}

// parseDebugLevel parses a debug level value. Invalid values are
// reported as not ok and must be ignored by the caller.
func parseDebugLevel(val string) (DebugLevel, bool) {
	lvl, err := strconv.ParseUint(strings.TrimSpace(val), 10, 32)
	if err != nil {
		return 0, false
	}
	return DebugLevel(lvl), true
}

// validDebugPrefix returns true if the prefix template fits.
func validDebugPrefix(prefix string) bool {
	return len(prefix) <= MaxDebugPrefixLen
}

// init sets the level and prefix from the environment on the first call
// only. Configured values are used unless the environment supplies a
// valid replacement; invalid environment values are ignored.
func (dc *DebugConfig) init(ds debugSettings) {
	dc.once.Do(func() {
		dc.prefix = DefaultDebugPrefix
		dc.prefixSet = true
		dc.out = ds.out
		if dc.out == nil {
			dc.out = os.Stderr
		}
		dc.threadID = ds.threadID
		if dc.threadID == nil {
			dc.threadID = func() uint64 { return 0 }
		}
		dc.now = ds.now
		if dc.now == nil {
			dc.now = time.Now
		}

		dc.level = ds.level
		if ds.prefix != "" && validDebugPrefix(ds.prefix) {
			dc.prefix = ds.prefix
		}

		lookupEnv := ds.lookupEnv
		if lookupEnv == nil {
			lookupEnv = os.LookupEnv
		}
		if val, set := lookupEnv(EnvDebugLevel); set {
			if lvl, ok := parseDebugLevel(val); ok {
				dc.level = lvl
			}
		}
		if val, set := lookupEnv(EnvDebugPrefix); set && validDebugPrefix(val) {
			dc.prefix = val
		}
	})
}

// Level returns the debug bitmask.
func (dc *DebugConfig) Level() DebugLevel {
	if dc == nil {
		return 0
	}
	return dc.level
}

// Prefix returns the trace prefix template. An empty template set from
// the environment disables the prefix.
func (dc *DebugConfig) Prefix() string {
	if dc == nil || !dc.prefixSet {
		return DefaultDebugPrefix
	}
	return dc.prefix
}

// Enabled returns true if any of the supplied bits are set.
func (dc *DebugConfig) Enabled(bits DebugLevel) bool {
	return dc.Level()&bits != 0
}

// formatPrefix expands the prefix template. Unknown directives are
// copied through unchanged.
func formatPrefix(tmpl string, tid uint64, now time.Time) string {
	var sb strings.Builder

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '%' || i+1 == len(tmpl) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch tmpl[i] {
		case 'i':
			sb.WriteString(strconv.FormatUint(tid, 10))
		case 'd':
			sb.WriteString(now.Format("2006-01-02"))
		case 't':
			sb.WriteString(now.Format("15:04:05.000"))
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(tmpl[i])
		}
	}

	return sb.String()
}

// Printf writes a single prefixed trace line.
func (dc *DebugConfig) Printf(format string, args ...interface{}) {
	if dc == nil || dc.out == nil {
		return
	}

	line := formatPrefix(dc.Prefix(), dc.threadID(), dc.now()) + fmt.Sprintf(format, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()
	io.WriteString(dc.out, line)
}
