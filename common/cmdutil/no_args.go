//
// (C) Copyright 2021-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"strings"

	"github.com/pkg/errors"
)

// ArgsHandler is implemented by commands which check their positional
// arguments before running.
type ArgsHandler interface {
	CheckArgs([]string) error
}

var _ ArgsHandler = (*NoArgsCmd)(nil)

// NoArgsCmd is embedded by commands that take no positional arguments.
type NoArgsCmd struct{}

// CheckArgs rejects any positional arguments.
func (NoArgsCmd) CheckArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return errors.Errorf("unexpected arguments: %s", strings.Join(args, " "))
}
