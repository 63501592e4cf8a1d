// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix && !windows

package runner

import "os/exec"

// DefaultShell returns sh -c.
func DefaultShell() Shell {
	return Shell{Path: "sh", Flag: "-c"}
}

func setProcAttr(*exec.Cmd, LaunchOptions) {}
