// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cascade

import "github.com/matt-FFFFFF/parallelrun/internal/procsignal"

// Source identifies what requested a cascade.
type Source int

const (
	// SiblingExit is raised by an exit monitor in kill-others mode.
	SiblingExit Source = iota
	// ExternalSignal is raised by the signal listener.
	ExternalSignal
	// SpawnFailure is raised when one of the commands could not be started.
	SpawnFailure
)

func (s Source) String() string {
	switch s {
	case SiblingExit:
		return "sibling exit"
	case ExternalSignal:
		return "external signal"
	case SpawnFailure:
		return "spawn failure"
	default:
		return "unknown"
	}
}

// Trigger is a request to terminate every pending process with Kind.
type Trigger struct {
	Source Source
	Kind   procsignal.Kind
}

// Raiser accepts cascade triggers. Implementations must not block.
type Raiser interface {
	Raise(Trigger)
}
