//
// (C) Copyright 2019-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	// LogLevelDisabled disables any logging output
	LogLevelDisabled LogLevel = iota
	// LogLevelError emits messages at ERROR or higher
	LogLevelError
	// LogLevelNotice emits messages at NOTICE or higher
	LogLevelNotice
	// LogLevelInfo emits messages at INFO or higher
	LogLevelInfo
	// LogLevelDebug emits messages at DEBUG or higher
	LogLevelDebug
	// LogLevelTrace emits messages at TRACE or higher
	LogLevelTrace
)

var levelNames = []string{"DISABLED", "ERROR", "NOTICE", "INFO", "DEBUG", "TRACE"}

// LogLevel represents the level at which the logger will emit log messages
type LogLevel int32

// Set safely sets the log level to the supplied level
func (ll *LogLevel) Set(newLevel LogLevel) {
	atomic.StoreInt32((*int32)(ll), int32(newLevel))
}

// Get returns the current log level
func (ll *LogLevel) Get() LogLevel {
	return LogLevel(atomic.LoadInt32((*int32)(ll)))
}

// SetString sets the log level from the supplied string.
func (ll *LogLevel) SetString(in string) error {
	for i, name := range levelNames {
		if strings.EqualFold(in, name) {
			ll.Set(LogLevel(i))
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid log level", in)
}

func (ll LogLevel) String() string {
	if ll < 0 || int(ll) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[ll]
}

// UnmarshalYAML implements yaml.Unmarshaler so that log levels
// can be written by name in configuration files.
func (ll *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	return ll.SetString(str)
}
