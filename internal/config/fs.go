// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"

	"github.com/spf13/afero"
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// fileProvider is a koanf.Provider that reads a file from an afero filesystem.
type fileProvider struct {
	fs   afero.Fs
	path string
}

// ReadBytes reads the whole file.
func (p *fileProvider) ReadBytes() ([]byte, error) {
	return afero.ReadFile(p.fs, p.path) //nolint:wrapcheck
}

// Read is not supported; a parser is always required.
func (p *fileProvider) Read() (map[string]any, error) {
	return nil, errors.New("file provider does not support this method")
}
