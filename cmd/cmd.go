// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	killOthersFlag   = "kill-others"
	configFlag       = "config"
	noColorFlag      = "no-color"
	shellFlag        = "shell"
	processGroupFlag = "process-group"
)

// RootCmd is the root command for the CLI.
var RootCmd = newRootCmd()

// SetVersion sets the string printed by --version.
func SetVersion(version, commit string) {
	RootCmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "parallelrun",
		Description: `parallelrun runs shell commands concurrently. Each line a command writes to stdout
is prefixed with the command's index, and an exit line is printed when it terminates.
With --kill-others the first command to exit causes every other command to be terminated.`,
		Usage:     `parallelrun -k "npm run watch" "go run ./server"`,
		ArgsUsage: "COMMAND...",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    killOthersFlag,
				Aliases: []string{"k"},
				Usage:   "Terminate all other commands when one exits",
			},
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "Config file (default: .parallelrun.{yaml,yml,json,toml,hcl} in the working directory)",
				TakesFile: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  noColorFlag,
				Usage: "Disable coloured prefixes",
			},
			&cli.StringFlag{
				Name:  shellFlag,
				Usage: "Shell used to run each command",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  processGroupFlag,
				Usage: "Start each command in its own process group so signals reach its children (unix)",
			},
		},
		Action:                actionFunc,
		EnableShellCompletion: true,
	}
}
