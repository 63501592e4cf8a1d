// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package runner

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// DefaultShell returns cmd /C.
func DefaultShell() Shell {
	return Shell{Path: "cmd", Flag: "/C"}
}

// setProcAttr stops a console window from popping up next to the parent.
func setProcAttr(cmd *exec.Cmd, _ LaunchOptions) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
