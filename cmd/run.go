// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/matt-FFFFFF/parallelrun/internal/color"
	"github.com/matt-FFFFFF/parallelrun/internal/config"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/runner"
	"github.com/matt-FFFFFF/parallelrun/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	res, err := config.Load(config.LoadOptions{
		Dir:        ".",
		ConfigFile: cmd.String(configFlag),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cfg := res.Config
	applyFlags(cmd, cfg)

	if err := ctxlog.SetLevel(cfg.LogLevel); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger, err := ctxlog.ForFormat(cfg.LogFormat)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx = ctxlog.New(ctx, logger)

	ctxlog.Debug(ctx, "configuration loaded", "sources", res.Sources)

	mode, err := color.ParseMode(cfg.Color)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	commands := cmd.Args().Slice()
	if len(commands) == 0 {
		commands = cfg.Commands
	}

	opts := runner.Options{
		Commands:        commands,
		KillOthers:      cfg.KillOthers,
		Shell:           shellFromConfig(cfg),
		NewProcessGroup: cfg.ProcessGroup,
		OutputGrace:     cfg.OutputGrace,
		Stdout:          cmd.Root().Writer,
		Colour:          resolveColour(mode, cmd.Root().Writer),
	}

	if l := newSignalListener(ctx, cfg.ProcessGroup); l != nil {
		opts.Signals = l
	}

	if _, err := runner.New(opts).Run(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// newSignalListener catches termination signals. Without separate process groups the children
// share the terminal's foreground group, so keyboard signals are not forwarded a second time.
func newSignalListener(ctx context.Context, processGroup bool) *signalbroker.Listener {
	l := signalbroker.New(ctx)
	if !processGroup {
		l.Skip(signalbroker.TerminalKinds...)
	}

	return l
}

// applyFlags overlays flags the user actually passed.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet(killOthersFlag) {
		cfg.KillOthers = cmd.Bool(killOthersFlag)
	}

	if cmd.Bool(noColorFlag) {
		cfg.Color = string(color.Never)
	}

	if cmd.IsSet(shellFlag) {
		cfg.Shell = cmd.String(shellFlag)
		cfg.ShellFlag = ""
	}

	if cmd.IsSet(processGroupFlag) {
		cfg.ProcessGroup = cmd.Bool(processGroupFlag)
	}
}

func shellFromConfig(cfg *config.Config) runner.Shell {
	if cfg.Shell == "" {
		return runner.DefaultShell()
	}

	flag := cfg.ShellFlag
	if flag == "" {
		flag = runner.DefaultShell().Flag
	}

	return runner.Shell{Path: cfg.Shell, Flag: flag}
}

func resolveColour(mode color.Mode, w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return mode == color.Always
	}

	return mode.Resolve(f)
}
