// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/parallelrun/internal/config"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type testCmd struct {
	cmd     *cli.Command
	out     *bytes.Buffer
	exitErr error
}

func newTestCmd(t *testing.T, files map[string]string) *testCmd {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)

	tc := &testCmd{cmd: newRootCmd(), out: &bytes.Buffer{}}
	tc.cmd.Writer = tc.out
	tc.cmd.ErrWriter = &bytes.Buffer{}
	tc.cmd.ExitErrHandler = func(_ context.Context, _ *cli.Command, err error) {
		tc.exitErr = err
	}

	return tc
}

func (tc *testCmd) lines() []string {
	return strings.Split(strings.TrimRight(tc.out.String(), "\n"), "\n")
}

func TestRootCmd_RunsArguments(t *testing.T) {
	tc := newTestCmd(t, nil)

	err := tc.cmd.Run(context.Background(), []string{"parallelrun", "echo hello", "exit 3"})
	require.NoError(t, err)
	require.NoError(t, tc.exitErr)

	assert.ElementsMatch(t, []string{
		"[0] hello",
		"[0] echo hello exited with code 0",
		"[1] exit 3 exited with code 3",
	}, tc.lines())
}

func TestRootCmd_KillOthersFlag(t *testing.T) {
	tc := newTestCmd(t, nil)

	err := tc.cmd.Run(context.Background(), []string{"parallelrun", "-k", "true", "sleep 5"})
	require.NoError(t, err)

	out := tc.out.String()
	assert.Contains(t, out, "[0] true exited with code 0")
	assert.Contains(t, out, "--> Sending SIGTERM Signal to other processes..")
	assert.Contains(t, out, "[1] sleep 5 exited with code SIGTERM")
}

func TestRootCmd_CommandsFromConfig(t *testing.T) {
	tc := newTestCmd(t, map[string]string{
		"cfg.yaml": "commands:\n  - echo from-config\n",
	})

	err := tc.cmd.Run(context.Background(), []string{"parallelrun", "--config", "cfg.yaml"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[0] from-config",
		"[0] echo from-config exited with code 0",
	}, tc.lines())
}

func TestRootCmd_NoCommands(t *testing.T) {
	tc := newTestCmd(t, nil)

	err := tc.cmd.Run(context.Background(), []string{"parallelrun"})
	require.NoError(t, err)
	assert.Empty(t, tc.out.String())
}

func TestRootCmd_BadConfig(t *testing.T) {
	tc := newTestCmd(t, map[string]string{
		"cfg.yaml": "color: rainbow\n",
	})

	_ = tc.cmd.Run(context.Background(), []string{"parallelrun", "-c", "cfg.yaml", "true"})

	var exitErr cli.ExitCoder
	require.ErrorAs(t, tc.exitErr, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.ErrorContains(t, tc.exitErr, "invalid color mode")
}

func TestRootCmd_MissingShell(t *testing.T) {
	tc := newTestCmd(t, nil)

	_ = tc.cmd.Run(context.Background(), []string{"parallelrun", "--shell", "/nonexistent/shell", "true"})

	var exitErr cli.ExitCoder
	require.ErrorAs(t, tc.exitErr, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}

func TestApplyFlags_OnlyWhenSet(t *testing.T) {
	cfg := config.Default()
	cfg.KillOthers = true
	cfg.Shell = "bash"
	cfg.ShellFlag = "-lc"

	c := newRootCmd()
	c.Action = func(_ context.Context, cmd *cli.Command) error {
		applyFlags(cmd, cfg)
		return nil
	}

	require.NoError(t, c.Run(context.Background(), []string{"parallelrun", "--no-color"}))

	assert.True(t, cfg.KillOthers)
	assert.Equal(t, "bash", cfg.Shell)
	assert.Equal(t, "-lc", cfg.ShellFlag)
	assert.Equal(t, "never", cfg.Color)
}

func TestShellFromConfig(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "sh", shellFromConfig(cfg).Path)

	cfg.Shell = "bash"
	assert.Equal(t, "-c", shellFromConfig(cfg).Flag)

	cfg.ShellFlag = "-lc"
	assert.Equal(t, "-lc", shellFromConfig(cfg).Flag)
}

func TestResolveColour(t *testing.T) {
	var buf bytes.Buffer

	assert.False(t, resolveColour("auto", &buf))
	assert.True(t, resolveColour("always", &buf))
	assert.False(t, resolveColour("never", &buf))
}

func TestRootCmd_BadLogFormat(t *testing.T) {
	tc := newTestCmd(t, map[string]string{
		"cfg.yaml": "log_format: xml\n",
	})

	_ = tc.cmd.Run(context.Background(), []string{"parallelrun", "-c", "cfg.yaml", "true"})

	require.ErrorContains(t, tc.exitErr, "invalid log format")
	assert.Empty(t, tc.out.String())
}
