// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PARALLELRUN_"

var (
	// ErrLoadConfig is returned when a config source cannot be read.
	ErrLoadConfig = errors.New("failed to load config")
	// ErrParseConfig is returned when a config source cannot be parsed or decoded.
	ErrParseConfig = errors.New("failed to parse config")
)

// DiscoveryNames are the file names searched for in the working directory, in order.
var DiscoveryNames = []string{
	".parallelrun.yaml",
	".parallelrun.yml",
	".parallelrun.json",
	".parallelrun.toml",
	".parallelrun.hcl",
}

// LoadOptions controls config loading behavior.
type LoadOptions struct {
	// Dir is where config files are discovered.
	Dir string
	// ConfigFile overrides discovery (--config flag).
	ConfigFile string
	// SkipEnv disables environment variable loading.
	SkipEnv bool
}

// LoadResult contains the loaded config and the sources that contributed to it.
type LoadResult struct {
	Config  *Config
	Sources []string
}

// Load merges defaults, the config file and the environment.
func Load(opts LoadOptions) (*LoadResult, error) {
	k := koanf.New(".")
	result := &LoadResult{Sources: []string{"defaults"}}

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	fs := FsFactory()

	path := opts.ConfigFile
	if path == "" {
		path = discover(fs, opts.Dir)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, errors.Join(ErrParseConfig, err)
		}

		if err := k.Load(&fileProvider{fs: fs, path: path}, parser); err != nil {
			return nil, errors.Join(ErrParseConfig, fmt.Errorf("%s: %w", path, err))
		}

		result.Sources = append(result.Sources, path)
	}

	if !opts.SkipEnv {
		envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		})

		if err := k.Load(envProvider, nil); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}

		result.Sources = append(result.Sources, "env")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = &cfg

	return result, nil
}

func discover(fs afero.Fs, dir string) string {
	for _, name := range DiscoveryNames {
		p := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, p); ok {
			return p
		}
	}

	return ""
}
