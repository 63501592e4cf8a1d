// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/v2"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// yamlParser parses YAML with goccy/go-yaml.
type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return out, nil
}

func (yamlParser) Marshal(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m) //nolint:wrapcheck
}

// hclFile mirrors Config for HCL decoding. Pointers tell unset attributes apart from zero values.
type hclFile struct {
	KillOthers   *bool    `hcl:"kill_others,optional"`
	Shell        *string  `hcl:"shell,optional"`
	ShellFlag    *string  `hcl:"shell_flag,optional"`
	ProcessGroup *bool    `hcl:"process_group,optional"`
	OutputGrace  *string  `hcl:"output_grace,optional"`
	Color        *string  `hcl:"color,optional"`
	LogLevel     *string  `hcl:"log_level,optional"`
	LogFormat    *string  `hcl:"log_format,optional"`
	Commands     []string `hcl:"commands,optional"`
}

// hclParser parses HCL with hashicorp/hcl.
type hclParser struct{}

func (hclParser) Unmarshal(b []byte) (map[string]any, error) {
	var f hclFile
	if err := hclsimple.Decode("config.hcl", b, nil, &f); err != nil {
		return nil, err //nolint:wrapcheck
	}

	out := map[string]any{}
	set := func(key string, v any, ok bool) {
		if ok {
			out[key] = v
		}
	}

	set("kill_others", deref(f.KillOthers), f.KillOthers != nil)
	set("shell", deref(f.Shell), f.Shell != nil)
	set("shell_flag", deref(f.ShellFlag), f.ShellFlag != nil)
	set("process_group", deref(f.ProcessGroup), f.ProcessGroup != nil)
	set("output_grace", deref(f.OutputGrace), f.OutputGrace != nil)
	set("color", deref(f.Color), f.Color != nil)
	set("log_level", deref(f.LogLevel), f.LogLevel != nil)
	set("log_format", deref(f.LogFormat), f.LogFormat != nil)
	set("commands", f.Commands, f.Commands != nil)

	return out, nil
}

func (hclParser) Marshal(map[string]any) ([]byte, error) {
	return nil, errors.New("marshalling to HCL is not supported")
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yamlParser{}, nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".hcl":
		return hclParser{}, nil
	default:
		return nil, errors.Join(ErrUnsupportedFormat, errors.New(ext))
	}
}
