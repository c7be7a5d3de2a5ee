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
	"path"

	flags "github.com/jessevdk/go-flags"

	"github.com/roracle/ocishim/build"
	"github.com/roracle/ocishim/common/cmdutil"
	"github.com/roracle/ocishim/fault"
	"github.com/roracle/ocishim/lib/atm"
	"github.com/roracle/ocishim/logging"
)

type cliOptions struct {
	Debug      bool           `short:"d" long:"debug" description:"Enable debug output"`
	JSON       bool           `short:"j" long:"json" description:"Enable JSON output"`
	ConfigPath string         `short:"o" long:"config-path" description:"Path to ocidiag configuration file"`
	LibDir     string         `short:"l" long:"lib-dir" description:"Only search this directory for the client library"`
	Load       loadCmd        `command:"load" description:"Load the Oracle Client library and report its version"`
	SearchPlan searchPlanCmd  `command:"search-plan" alias:"plan" description:"Show where the client library would be searched for"`
	Symbols    symbolsCmd     `command:"symbols" description:"Resolve every forwarded function in the client library"`
	Version    versionCmd     `command:"version" description:"Print ocidiag version"`
	ManPage    cmdutil.ManCmd `command:"manpage" hidden:"true"`
}

type (
	configSetter interface {
		setConfig(*Config)
	}

	configCmd struct {
		cfg *Config
	}
)

func (cmd *configCmd) setConfig(cfg *Config) {
	cmd.cfg = cfg
}

type versionCmd struct {
	cmdutil.NoArgsCmd
	cmdutil.JSONOutputCmd
	out io.Writer
}

func (cmd *versionCmd) Execute(_ []string) error {
	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(build.GetInfo(build.DiagToolName), nil)
	}

	_, err := fmt.Fprintln(cmd.out, build.String(build.DiagToolName))
	return err
}

func exitWithError(log logging.Logger, err error) {
	cmdName := path.Base(os.Args[0])
	log.Errorf("%s: %v", cmdName, err)
	if fault.HasResolution(err) {
		log.Errorf("%s: %s", cmdName, fault.ShowResolutionFor(err))
	}
	os.Exit(1)
}

func writeManPage(wr io.Writer) {
	var opts cliOptions
	p := flags.NewParser(&opts, flags.Default)
	p.Name = build.DiagToolName
	p.ShortDescription = "Oracle Client library diagnostic tool"
	p.Usage = "[OPTIONS] [COMMAND]"
	p.LongDescription = `ocidiag loads the Oracle Client library the same way
an application using the client shim would, and reports where it was
found, which version it is and which functions it provides.`
	p.WriteManPage(wr)
}

func parseOpts(args []string, opts *cliOptions, out io.Writer, log *logging.LeveledLogger) error {
	var wroteJSON atm.Bool
	p := flags.NewParser(opts, flags.Default)
	p.Options ^= flags.PrintErrors // Don't allow the library to print errors
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if argsCmd, ok := cmd.(cmdutil.ArgsHandler); ok {
			if err := argsCmd.CheckArgs(args); err != nil {
				return err
			}
		}

		if opts.Debug {
			log.SetLevel(logging.LogLevelTrace)
			log.Debug("debug output enabled")
		}

		if logCmd, ok := cmd.(cmdutil.LogSetter); ok {
			logCmd.SetLog(log)
		}

		if jsonCmd, ok := cmd.(cmdutil.JSONOutputter); ok && opts.JSON {
			jsonCmd.EnableJSONOutput(out, &wroteJSON)
			// disable output on stdout other than JSON
			log.ClearLevel(logging.LogLevelInfo)
		}

		if outCmd, ok := cmd.(outputSetter); ok {
			outCmd.setOutput(out)
		}

		switch c := cmd.(type) {
		case *versionCmd:
			c.out = out
			return cmd.Execute(args)
		case *cmdutil.ManCmd:
			c.SetWriteFunc(writeManPage)
			return cmd.Execute(args)
		}

		cfg, err := loadConfig(log, opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.LibDir != "" {
			cfg.Client.LibDir = opts.LibDir
		}
		if err := cfg.Client.Validate(); err != nil {
			return err
		}

		if cfgCmd, ok := cmd.(configSetter); ok {
			cfgCmd.setConfig(cfg)
		}

		return cmd.Execute(args)
	}

	_, err := p.ParseArgs(args)
	return err
}

func main() {
	var opts cliOptions
	log := logging.NewCommandLineLogger()

	if err := parseOpts(os.Args[1:], &opts, os.Stdout, log); err != nil {
		exitWithError(log, err)
	}
}
