//
// (C) Copyright 2019-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package logging_test

import (
	"strings"
	"testing"

	"github.com/roracle/ocishim/logging"
)

func TestLogging_LeveledLoggerLevels(t *testing.T) {
	for name, tc := range map[string]struct {
		level     logging.LogLevel
		expOutput []string
		expAbsent []string
	}{
		"trace": {
			level:     logging.LogLevelTrace,
			expOutput: []string{"TRACE", "DEBUG", "INFO", "NOTICE", "ERROR"},
		},
		"info": {
			level:     logging.LogLevelInfo,
			expOutput: []string{"INFO", "NOTICE", "ERROR"},
			expAbsent: []string{"TRACE", "DEBUG"},
		},
		"error": {
			level:     logging.LogLevelError,
			expOutput: []string{"ERROR"},
			expAbsent: []string{"TRACE", "DEBUG", "INFO", "NOTICE"},
		},
		"disabled": {
			level:     logging.LogLevelDisabled,
			expAbsent: []string{"TRACE", "DEBUG", "INFO", "NOTICE", "ERROR"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			log.SetLevel(tc.level)

			log.Trace("trace msg")
			log.Debug("debug msg")
			log.Info("info msg")
			log.Notice("notice msg")
			log.Error("error msg")

			out := buf.String()
			for _, exp := range tc.expOutput {
				if !strings.Contains(out, exp+" ") {
					t.Errorf("expected %q in output:\n%s", exp, out)
				}
			}
			for _, exp := range tc.expAbsent {
				if strings.Contains(out, exp+" ") {
					t.Errorf("did not expect %q in output:\n%s", exp, out)
				}
			}
		})
	}
}

func TestLogging_DebugCallerLocation(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())

	log.Debugf("where am %s", "I")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller location in %q", buf.String())
	}
}

func TestLogging_ClearLevel(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())

	log.ClearLevel(logging.LogLevelInfo)
	log.Info("gone")
	log.Notice("kept")

	if strings.Contains(buf.String(), "gone") {
		t.Fatalf("cleared logger still emitted: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected notice output: %q", buf.String())
	}
}
