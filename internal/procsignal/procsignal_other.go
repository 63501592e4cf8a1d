// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !unix

package procsignal

import (
	"fmt"
	"os"
)

// KillOnly can only terminate a process outright. It is the Signaler on Windows and on
// platforms without unix signals.
type KillOnly struct{}

// Default returns the Signaler for this platform.
func Default() Signaler {
	return KillOnly{}
}

// Deliver implements Signaler. Only Kill is supported.
func (KillOnly) Deliver(pid int, kind Kind) error {
	if kind != Kill {
		return fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}

	p, err := os.FindProcess(pid)
	if err != nil {
		return os.ErrProcessDone
	}

	return p.Kill() //nolint:wrapcheck
}

// FromOS maps an os.Signal received by the parent to a Kind.
func FromOS(sig os.Signal) (Kind, error) {
	switch sig {
	case os.Interrupt:
		return Int, nil
	case os.Kill:
		return Kill, nil
	default:
		return Term, fmt.Errorf("%w: %v", ErrUnknownKind, sig)
	}
}
