// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package procsignal

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

var kindToSignal = map[Kind]unix.Signal{
	Term:   unix.SIGTERM,
	Int:    unix.SIGINT,
	Hangup: unix.SIGHUP,
	Quit:   unix.SIGQUIT,
	Kill:   unix.SIGKILL,
}

// Unix signals the process group led by pid, falling back to the pid itself
// when no such group exists.
type Unix struct{}

// Default returns the Signaler for this platform.
func Default() Signaler {
	return Unix{}
}

// Deliver implements Signaler.
func (Unix) Deliver(pid int, kind Kind) error {
	sig, ok := kindToSignal[kind]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupported, kind)
	}

	err := unix.Kill(-pid, sig)
	if errors.Is(err, unix.ESRCH) {
		err = unix.Kill(pid, sig)
	}

	if errors.Is(err, unix.ESRCH) {
		return os.ErrProcessDone
	}

	return err //nolint:wrapcheck
}

// FromOS maps an os.Signal received by the parent to a Kind.
func FromOS(sig os.Signal) (Kind, error) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return Term, fmt.Errorf("%w: %v", ErrUnknownKind, sig)
	}

	for k, v := range kindToSignal {
		if v == s {
			return k, nil
		}
	}

	return Term, fmt.Errorf("%w: %v", ErrUnknownKind, sig)
}

// Name returns the display name of a raw signal number, e.g. SIGSEGV.
func Name(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}

	return "Unknown Signal"
}
