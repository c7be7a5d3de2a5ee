//
// (C) Copyright 2022-2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/lib/atm"
)

var _ JSONOutputter = (*JSONOutputCmd)(nil)

type (
	// JSONOutputter defines an interface for commands which can emit
	// their results as JSON.
	JSONOutputter interface {
		EnableJSONOutput(io.Writer, *atm.Bool)
		JSONOutputEnabled() bool
		OutputJSON(interface{}, error) error
	}

	// JSONOutputCmd is an embeddable type that extends a command with
	// JSON output capabilities.
	JSONOutputCmd struct {
		writer    io.Writer
		jsonOut   bool
		wroteJSON *atm.Bool
	}

	jsonResponse struct {
		Response interface{} `json:"response"`
		Error    *string     `json:"error"`
		Status   int         `json:"status"`
	}
)

// EnableJSONOutput enables JSON output to w. The wrote flag is set
// once any JSON has been written so that callers can avoid emitting a
// second document on error.
func (cmd *JSONOutputCmd) EnableJSONOutput(w io.Writer, wrote *atm.Bool) {
	cmd.writer = w
	cmd.jsonOut = true
	cmd.wroteJSON = wrote
}

// JSONOutputEnabled returns true if JSON output is enabled.
func (cmd *JSONOutputCmd) JSONOutputEnabled() bool {
	return cmd.jsonOut
}

// OutputJSON writes in and cmdErr as a single JSON document. The
// command error is returned unchanged if the write succeeds.
func (cmd *JSONOutputCmd) OutputJSON(in interface{}, cmdErr error) error {
	if cmd.writer == nil {
		return errors.New("JSON output is not enabled")
	}
	if cmd.wroteJSON != nil && cmd.wroteJSON.IsTrue() {
		return cmdErr
	}

	resp := jsonResponse{Response: in}
	if cmdErr != nil {
		errStr := cmdErr.Error()
		resp.Error = &errStr
		resp.Status = -1
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON output")
	}
	if _, err := cmd.writer.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write JSON output")
	}
	if cmd.wroteJSON != nil {
		cmd.wroteJSON.SetTrue()
	}

	return cmdErr
}
