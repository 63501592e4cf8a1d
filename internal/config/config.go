// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/parallelrun/internal/color"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all parallelrun settings.
type Config struct {
	// KillOthers cascades termination to every other command once one exits.
	KillOthers bool `koanf:"kill_others"`
	// Shell is the interpreter used to run commands. Empty means the platform default.
	Shell string `koanf:"shell"`
	// ShellFlag is the argument that makes Shell execute a string, e.g. "-c".
	ShellFlag string `koanf:"shell_flag"`
	// ProcessGroup starts each command in its own process group (unix only).
	ProcessGroup bool `koanf:"process_group"`
	// OutputGrace bounds how long an exit line waits for the command's remaining output.
	OutputGrace time.Duration `koanf:"output_grace"`
	// Color is auto, always or never.
	Color string `koanf:"color"`
	// LogLevel overrides PARALLELRUN_LOG_LEVEL for diagnostics.
	LogLevel string `koanf:"log_level"`
	// LogFormat is pretty or json.
	LogFormat string `koanf:"log_format"`
	// Commands are run when none are given on the command line.
	Commands []string `koanf:"commands"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		KillOthers:   false,
		Shell:        "",
		ShellFlag:    "",
		ProcessGroup: false,
		OutputGrace:  100 * time.Millisecond,
		Color:        string(color.Auto),
		LogLevel:     "",
		LogFormat:    "pretty",
		Commands:     []string{},
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	if _, err := color.ParseMode(c.Color); err != nil {
		errs = append(errs, err)
	}

	if c.LogLevel != "" {
		if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := ctxlog.ForFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}

	if c.ShellFlag != "" && c.Shell == "" {
		errs = append(errs, fmt.Errorf("shell_flag %q set without shell", c.ShellFlag))
	}

	if len(errs) > 0 {
		return errors.Join(ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
