// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"os"
	"strconv"
)

// OutcomeKind tags the variants of Outcome.
type OutcomeKind int

// Outcome variants.
const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeExitCode
	OutcomeSignaled
)

// Outcome is how a process terminated.
type Outcome struct {
	Kind   OutcomeKind
	Code   int
	Signal string
}

// ExitCode is a normal exit with the given status.
func ExitCode(code int) Outcome {
	return Outcome{Kind: OutcomeExitCode, Code: code}
}

// TerminatedBySignal is a death by the named signal.
func TerminatedBySignal(name string) Outcome {
	return Outcome{Kind: OutcomeSignaled, Signal: name}
}

// Unknown is used when the wait itself failed.
func Unknown() Outcome {
	return Outcome{Kind: OutcomeUnknown}
}

// String renders the outcome for the "exited with code" line.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeExitCode:
		return strconv.Itoa(o.Code)
	case OutcomeSignaled:
		return o.Signal
	default:
		return "?"
	}
}

// Success is true only for exit code 0.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeExitCode && o.Code == 0
}

func classify(state *os.ProcessState) Outcome {
	if state == nil {
		return Unknown()
	}

	if name, ok := signalName(state); ok {
		return TerminatedBySignal(name)
	}

	if code := state.ExitCode(); code >= 0 {
		return ExitCode(code)
	}

	return Unknown()
}
