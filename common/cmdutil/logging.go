//
// (C) Copyright 2021-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"github.com/roracle/ocishim/logging"
)

var _ LogSetter = (*LogCmd)(nil)

type (
	// LogSetter defines an interface to be implemented by types
	// that can set a logger.
	LogSetter interface {
		SetLog(log logging.Logger)
	}

	// LogCmd is an embeddable type that extends a command with
	// logging capabilities.
	LogCmd struct {
		logging.Logger
	}
)

// SetLog sets the logger for the command.
func (cmd *LogCmd) SetLog(log logging.Logger) {
	cmd.Logger = log
}

// Log returns the command's logger, or a disabled logger if none
// has been set.
func (cmd *LogCmd) Log() logging.Logger {
	if cmd.Logger == nil {
		return logging.NewDisabledLogger()
	}
	return cmd.Logger
}
