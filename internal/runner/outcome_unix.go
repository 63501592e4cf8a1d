// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package runner

import (
	"os"
	"syscall"

	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
)

func signalName(state *os.ProcessState) (string, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return "", false
	}

	return procsignal.Name(ws.Signal()), true
}
