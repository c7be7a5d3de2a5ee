//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/common/test"
	"github.com/roracle/ocishim/lib/atm"
	"github.com/roracle/ocishim/logging"
)

func TestCmdutil_NoArgsCmd(t *testing.T) {
	var cmd NoArgsCmd

	test.CmpErr(t, nil, cmd.CheckArgs(nil))
	test.CmpErr(t, nil, cmd.CheckArgs([]string{}))
	test.CmpErr(t, errors.New("unexpected arguments: a b"), cmd.CheckArgs([]string{"a", "b"}))
}

func TestCmdutil_LogCmd(t *testing.T) {
	var cmd LogCmd
	cmd.Log().Info("discarded")

	log, buf := logging.NewTestLogger(t.Name())
	cmd.SetLog(log)
	cmd.Log().Info("kept")
	cmd.Debug("direct")

	if !strings.Contains(buf.String(), "kept") || !strings.Contains(buf.String(), "direct") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestCmdutil_OutputJSON(t *testing.T) {
	for name, tc := range map[string]struct {
		enable  bool
		wrote   bool
		in      interface{}
		cmdErr  error
		expErr  error
		expJSON string
	}{
		"not enabled": {
			in:     "x",
			expErr: errors.New("not enabled"),
		},
		"success": {
			enable: true,
			in:     map[string]int{"major": 19},
			expJSON: `{
  "response": {
    "major": 19
  },
  "error": null,
  "status": 0
}
`,
		},
		"command error": {
			enable: true,
			cmdErr: errors.New("load failed"),
			expErr: errors.New("load failed"),
			expJSON: `{
  "response": null,
  "error": "load failed",
  "status": -1
}
`,
		},
		"already written": {
			enable: true,
			wrote:  true,
			in:     "ignored",
			cmdErr: errors.New("late failure"),
			expErr: errors.New("late failure"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			var wrote atm.Bool
			if tc.wrote {
				wrote.SetTrue()
			}

			var cmd JSONOutputCmd
			if tc.enable {
				cmd.EnableJSONOutput(&buf, &wrote)
			}
			test.AssertEqual(t, tc.enable, cmd.JSONOutputEnabled(), "unexpected enabled state")

			err := cmd.OutputJSON(tc.in, tc.cmdErr)
			test.CmpErr(t, tc.expErr, err)
			test.AssertEqual(t, tc.expJSON, buf.String(), "unexpected output")
			if tc.expJSON != "" {
				test.AssertTrue(t, wrote.IsTrue(), "wrote flag not set")
			}
		})
	}
}

func TestCmdutil_ManCmd(t *testing.T) {
	tmpDir, cleanup := test.CreateTestDir(t)
	defer cleanup()

	var cmd ManCmd
	test.CmpErr(t, errors.New("no man page writer"), cmd.Execute(nil))

	cmd.SetWriteFunc(func(w io.Writer) {
		io.WriteString(w, ".TH ocidiag 1\n")
	})
	cmd.Output = filepath.Join(tmpDir, "ocidiag.1")
	if err := cmd.Execute(nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cmd.Output)
	if err != nil {
		t.Fatal(err)
	}
	test.AssertEqual(t, ".TH ocidiag 1\n", string(data), "unexpected man page")
}
