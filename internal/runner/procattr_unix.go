// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// DefaultShell returns sh -c.
func DefaultShell() Shell {
	return Shell{Path: "sh", Flag: "-c"}
}

func setProcAttr(cmd *exec.Cmd, opts LaunchOptions) {
	if opts.NewProcessGroup {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}
}
