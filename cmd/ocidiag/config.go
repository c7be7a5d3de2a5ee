//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/roracle/ocishim/build"
	"github.com/roracle/ocishim/lib/oci"
	"github.com/roracle/ocishim/logging"
)

// Config is the ocidiag configuration file.
type Config struct {
	Client oci.Config `yaml:",inline"`
	// Metrics enables the client call counters for the symbols command.
	Metrics bool `yaml:"metrics,omitempty"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and strictly parses the configuration at cfgPath.
func LoadConfig(cfgPath string) (*Config, error) {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", cfgPath)
	}
	return cfg, nil
}

// loadConfig loads the configuration from cfgPath if set, otherwise
// from the default locations, falling back to the defaults if no file
// exists there.
func loadConfig(log logging.Logger, cfgPath string) (*Config, error) {
	if cfgPath == "" {
		path, err := build.FindConfigFilePath(build.DiagConfigName)
		if err != nil {
			if build.IsDefaultConfigNotFound(err) {
				log.Debugf("using default config: %s", err)
				return DefaultConfig(), nil
			}
			return nil, err
		}
		cfgPath = path
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("config loaded from %s", cfgPath)

	return cfg, nil
}
