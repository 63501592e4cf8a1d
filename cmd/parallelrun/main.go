// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the parallelrun command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/parallelrun"
	"github.com/matt-FFFFFF/parallelrun/cmd"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	cmd.SetVersion(parallelrun.Version, parallelrun.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args) // exit codes from cli.Exit are handled by the framework

	cancel()

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
}
