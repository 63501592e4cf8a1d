// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
)

// Shell is the interpreter used to run command text, e.g. "sh" with flag "-c".
type Shell struct {
	Path string
	Flag string
}

// LaunchOptions controls how processes are created.
type LaunchOptions struct {
	Shell Shell
	// NewProcessGroup places each child in its own process group so signals reach its descendants.
	// Only honoured on unix.
	NewProcessGroup bool
}

// Process is a started child process.
type Process struct {
	Spec   Spec
	Pid    int
	cmd    *exec.Cmd
	output io.ReadCloser
}

// launch is swapped out in tests.
var launch = Launch

// Launch starts spec.Text through the shell with stdout connected to a pipe.
// Stdin and stderr are inherited from the parent.
func Launch(ctx context.Context, spec Spec, opts LaunchOptions) (*Process, error) {
	shell := opts.Shell
	if shell.Path == "" {
		shell = DefaultShell()
	}

	logger := ctxlog.Logger(ctx).With("index", spec.Index)

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	cmd := exec.Command(shell.Path, shell.Flag, spec.Text) //nolint:gosec
	cmd.Stdin = os.Stdin
	cmd.Stdout = wOut
	cmd.Stderr = os.Stderr
	setProcAttr(cmd, opts)

	logger.Debug("starting process", "shell", shell.Path, "command", spec.Text)

	if err := cmd.Start(); err != nil {
		_ = rOut.Close()
		_ = wOut.Close()

		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	// The child holds its own copy; ours must go so the reader sees EOF.
	_ = wOut.Close()

	logger.Debug("process started", "pid", cmd.Process.Pid)

	return &Process{
		Spec:   spec,
		Pid:    cmd.Process.Pid,
		cmd:    cmd,
		output: rOut,
	}, nil
}
