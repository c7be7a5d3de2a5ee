//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/roracle/ocishim/fault"
	"github.com/roracle/ocishim/fault/code"
	"github.com/roracle/ocishim/lib/dlopen"
	"github.com/roracle/ocishim/logging"
)

// EnvOracleHome names the variable used as the last-resort search
// location on non-Windows platforms.
const EnvOracleHome = "ORACLE_HOME"

// Config controls how the client library is located and traced.
type Config struct {
	// LibDir, if set, is the only directory searched.
	LibDir string `yaml:"lib_dir,omitempty"`
	// OracleHome overrides the ORACLE_HOME environment variable.
	OracleHome string `yaml:"oracle_home,omitempty"`
	// ScanAllNames reports the last error seen in each directory rather
	// than the error for the first candidate name.
	ScanAllNames bool `yaml:"scan_all_names,omitempty"`
	// DebugLevel and DebugPrefix are used unless overridden by a valid
	// RORACLE_DEBUG_LEVEL or RORACLE_DEBUG_PREFIX.
	DebugLevel  DebugLevel `yaml:"debug_level,omitempty"`
	DebugPrefix string     `yaml:"debug_prefix,omitempty"`
}

var (
	// FaultBadLibDir indicates an unusable lib_dir setting.
	FaultBadLibDir = &fault.Fault{
		Domain:      "config",
		Code:        code.ConfigBadLibDir,
		Description: "lib_dir must be an absolute path",
		Resolution:  "set lib_dir to the absolute path of the Oracle Client library directory",
	}
	// FaultBadDebugPrefix indicates an overlong debug_prefix setting.
	FaultBadDebugPrefix = &fault.Fault{
		Domain:      "config",
		Code:        code.ConfigBadDebugPrefix,
		Description: "debug_prefix is too long",
		Resolution:  "shorten debug_prefix to at most 64 bytes",
	}
)

// Validate checks the configuration for obvious mistakes.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.LibDir != "" && !filepath.IsAbs(cfg.LibDir) {
		return errors.Wrap(FaultBadLibDir, cfg.LibDir)
	}
	if !validDebugPrefix(cfg.DebugPrefix) {
		return FaultBadDebugPrefix
	}
	return nil
}

type (
	loadOptions struct {
		cfg       *Config
		log       logging.Logger
		platform  dlopen.Platform
		metrics   *Metrics
		debugOut  io.Writer
		lookupEnv func(string) (string, bool)
		getwd     func() (string, error)
	}

	// Option customizes a library load.
	Option func(*loadOptions)
)

func defaultLoadOptions() *loadOptions {
	return &loadOptions{
		cfg:       &Config{},
		log:       logging.NewDisabledLogger(),
		platform:  dlopen.DefaultPlatform(),
		lookupEnv: os.LookupEnv,
		getwd:     os.Getwd,
	}
}

// WithConfig supplies the load configuration.
func WithConfig(cfg *Config) Option {
	return func(lo *loadOptions) {
		if cfg != nil {
			lo.cfg = cfg
		}
	}
}

// WithLogger supplies a logger for load milestones.
func WithLogger(log logging.Logger) Option {
	return func(lo *loadOptions) {
		if log != nil {
			lo.log = log
		}
	}
}

// WithPlatform replaces the native loader.
func WithPlatform(p dlopen.Platform) Option {
	return func(lo *loadOptions) {
		if p != nil {
			lo.platform = p
		}
	}
}

// WithMetrics enables call and resolution counters.
func WithMetrics(m *Metrics) Option {
	return func(lo *loadOptions) {
		lo.metrics = m
	}
}

// WithDebugOutput sets the destination for debug traces. It only has
// an effect on the first load attempt with a given LoadContext.
func WithDebugOutput(w io.Writer) Option {
	return func(lo *loadOptions) {
		lo.debugOut = w
	}
}

// WithLookupEnv replaces the environment lookup function.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(lo *loadOptions) {
		if fn != nil {
			lo.lookupEnv = fn
		}
	}
}

// oracleHome returns the configured or environment home directory.
func (lo *loadOptions) oracleHome() string {
	if lo.cfg.OracleHome != "" {
		return lo.cfg.OracleHome
	}
	val, _ := lo.lookupEnv(EnvOracleHome)
	return val
}
