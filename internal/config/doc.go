// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads parallelrun settings.
//
// Sources are merged in order, later ones winning: built in defaults, a config file, then
// PARALLELRUN_* environment variables. Command line flags are applied by the caller.
// The config file is either given explicitly or discovered in the working directory as
// .parallelrun.yaml, .parallelrun.yml, .parallelrun.json, .parallelrun.toml or .parallelrun.hcl.
package config
