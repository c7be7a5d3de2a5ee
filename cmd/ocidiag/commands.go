//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/roracle/ocishim/common/cmdutil"
	"github.com/roracle/ocishim/lib/dlopen"
	"github.com/roracle/ocishim/lib/oci"
	"github.com/roracle/ocishim/lib/txtfmt"
)

type (
	outputSetter interface {
		setOutput(io.Writer)
	}

	// clientCmd is embedded by commands which work with the client
	// library.
	clientCmd struct {
		cmdutil.NoArgsCmd
		cmdutil.LogCmd
		cmdutil.JSONOutputCmd
		configCmd

		out       io.Writer
		platform  dlopen.Platform
		lookupEnv func(string) (string, bool)
		debugOut  io.Writer
	}
)

func (cmd *clientCmd) setOutput(out io.Writer) {
	cmd.out = out
}

func (cmd *clientCmd) output() io.Writer {
	if cmd.out == nil {
		return os.Stdout
	}
	return cmd.out
}

func (cmd *clientCmd) loadOptions(extra ...oci.Option) []oci.Option {
	cfg := &oci.Config{}
	if cmd.cfg != nil {
		cfg = &cmd.cfg.Client
	}

	opts := []oci.Option{
		oci.WithConfig(cfg),
		oci.WithLogger(cmd.Log()),
		oci.WithPlatform(cmd.platform),
		oci.WithLookupEnv(cmd.lookupEnv),
	}
	if cmd.debugOut != nil {
		opts = append(opts, oci.WithDebugOutput(cmd.debugOut))
	}
	return append(opts, extra...)
}

// loadFailure describes why the client library could not be loaded.
type loadFailure struct {
	Kind    string `json:"kind"`
	Code    int    `json:"code"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

func newLoadFailure(lctx *oci.LoadContext) *loadFailure {
	return &loadFailure{
		Kind:    lctx.Kind().String(),
		Code:    int(lctx.Kind().Code()),
		Action:  lctx.Action(),
		Message: lctx.Message(),
	}
}

func (cmd *clientCmd) reportFailure(lctx *oci.LoadContext, err error) error {
	lf := newLoadFailure(lctx)
	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(lf, err)
	}

	fmt.Fprint(cmd.output(), txtfmt.FormatEntity("Client library load failed", []txtfmt.EntityAttr{
		{Key: "Kind", Value: lf.Kind},
		{Key: "Action", Value: lf.Action},
		{Key: "Message", Value: lf.Message},
	}))
	return err
}

type loadResult struct {
	Path      string          `json:"path"`
	Version   oci.VersionInfo `json:"version"`
	SizeBytes uint64          `json:"size_bytes,omitempty"`
	WithInfo  bool            `json:"with_info"`
}

// loadCmd loads the client library the way an application would.
type loadCmd struct {
	clientCmd
}

func (cmd *loadCmd) Execute(_ []string) error {
	lctx := oci.NewLoadContext()
	lib, err := oci.Load(lctx, cmd.loadOptions()...)
	if err != nil {
		return cmd.reportFailure(lctx, err)
	}
	defer lib.Close()

	res := &loadResult{
		Path:     lib.Path(),
		Version:  lib.Version(),
		WithInfo: lctx.WithInfo(),
	}
	size := "unknown"
	modified := "unknown"
	if fi, err := os.Stat(lib.Path()); err == nil {
		res.SizeBytes = uint64(fi.Size())
		size = humanize.Bytes(res.SizeBytes)
		modified = humanize.Time(fi.ModTime())
	} else {
		cmd.Log().Debugf("unable to stat %s: %s", lib.Path(), err)
	}

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(res, nil)
	}

	_, err = fmt.Fprint(cmd.output(), txtfmt.FormatEntity("Oracle Client", []txtfmt.EntityAttr{
		{Key: "Version", Value: res.Version.String()},
		{Key: "Path", Value: res.Path},
		{Key: "Size", Value: size},
		{Key: "Modified", Value: modified},
	}))
	return err
}

type searchPlanResult struct {
	Dirs  []oci.SearchDir `json:"dirs"`
	Names []string        `json:"names"`
}

// searchPlanCmd shows where a load would look, without opening anything.
type searchPlanCmd struct {
	clientCmd
}

func (cmd *searchPlanCmd) Execute(_ []string) error {
	dirs, names := oci.SearchPlan(cmd.loadOptions()...)

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(&searchPlanResult{Dirs: dirs, Names: names}, nil)
	}

	rows := make([]txtfmt.TableRow, 0, len(dirs))
	for i, sd := range dirs {
		dir := sd.Dir
		if dir == "" {
			dir = "(system search path)"
		}
		rows = append(rows, txtfmt.TableRow{
			"Order":     strconv.Itoa(i + 1),
			"Strategy":  sd.Strategy,
			"Directory": dir,
		})
	}

	out := cmd.output()
	if err := txtfmt.NewTableFormatter("Order", "Strategy", "Directory").Write(out, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nCandidate names: %s\n", strings.Join(names, ", "))
	return err
}

type symbolsResult struct {
	Resolved int              `json:"resolved"`
	Total    int              `json:"total"`
	Symbols  []oci.SymbolInfo `json:"symbols"`
}

// symbolsCmd resolves every forwarded function.
type symbolsCmd struct {
	clientCmd
	Missing bool `short:"m" long:"missing" description:"Only list functions which could not be resolved"`
	Metrics bool `long:"metrics" description:"Print client metrics after resolving"`
}

func (cmd *symbolsCmd) wantMetrics() bool {
	return cmd.Metrics || (cmd.cfg != nil && cmd.cfg.Metrics)
}

func (cmd *symbolsCmd) Execute(_ []string) error {
	var reg *prometheus.Registry
	var extra []oci.Option
	if cmd.wantMetrics() {
		reg = prometheus.NewRegistry()
		metrics, err := oci.NewMetrics(reg)
		if err != nil {
			return err
		}
		extra = append(extra, oci.WithMetrics(metrics))
	}

	lctx := oci.NewLoadContext()
	lib, err := oci.Load(lctx, cmd.loadOptions(extra...)...)
	if err != nil {
		return cmd.reportFailure(lctx, err)
	}
	defer lib.Close()

	infos := lib.ResolveAll()
	res := &symbolsResult{Total: len(infos)}
	for _, info := range infos {
		if info.Resolved {
			res.Resolved++
		}
		if cmd.Missing && info.Resolved {
			continue
		}
		res.Symbols = append(res.Symbols, info)
	}

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(res, nil)
	}

	rows := make([]txtfmt.TableRow, 0, len(res.Symbols))
	for _, info := range res.Symbols {
		status := "resolved"
		if !info.Resolved {
			status = "missing"
		}
		rows = append(rows, txtfmt.TableRow{
			"Function": info.Name,
			"Action":   info.Action,
			"Status":   status,
		})
	}

	out := cmd.output()
	if err := txtfmt.NewTableFormatter("Function", "Action", "Status").Write(out, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d of %d functions resolved from %s\n", res.Resolved, res.Total, lib.Path())

	if reg != nil {
		fmt.Fprintln(out)
		return writeMetrics(out, reg)
	}
	return nil
}

// writeMetrics writes the gathered metrics in the text exposition format.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	enc := expfmt.NewEncoder(out, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "failed to encode metrics")
		}
	}
	return nil
}
