// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package procsignal

import (
	"errors"
)

// ErrUnsupported is returned when the host platform cannot deliver the requested signal kind.
var ErrUnsupported = errors.New("signal kind not supported on this platform")

// ErrUnknownKind is returned when a signal cannot be mapped to a Kind.
var ErrUnknownKind = errors.New("unknown signal kind")

// Kind is a portable termination-class signal.
type Kind int

// Signal kinds understood by the cascade.
const (
	Term Kind = iota
	Int
	Hangup
	Quit
	Kill
)

// String returns the conventional display name, e.g. SIGTERM.
func (k Kind) String() string {
	switch k {
	case Term:
		return "SIGTERM"
	case Int:
		return "SIGINT"
	case Hangup:
		return "SIGHUP"
	case Quit:
		return "SIGQUIT"
	case Kill:
		return "SIGKILL"
	default:
		return "Unknown Signal"
	}
}

// Signaler delivers signals to processes by pid.
type Signaler interface {
	// Deliver sends kind to the process. It returns ErrUnsupported if the platform
	// cannot express kind.
	Deliver(pid int, kind Kind) error
}

// DeliverOrKill sends kind to pid and falls back to Kill when kind is unsupported.
func DeliverOrKill(s Signaler, pid int, kind Kind) error {
	err := s.Deliver(pid, kind)
	if errors.Is(err, ErrUnsupported) && kind != Kill {
		return s.Deliver(pid, Kill)
	}

	return err
}
