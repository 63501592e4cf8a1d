// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import "github.com/matt-FFFFFF/parallelrun/internal/teereader"

// Result is the outcome of one launched command.
type Result struct {
	Spec    Spec
	Pid     int
	Outcome Outcome
	// Output summarises the stdout relayed before the exit line was printed.
	Output teereader.Stats
}

// Results holds one Result per launched command, ordered by index.
type Results []*Result

// HasFailure reports whether any command did not exit with code 0.
func (r Results) HasFailure() bool {
	for _, res := range r {
		if res == nil || !res.Outcome.Success() {
			return true
		}
	}

	return false
}

// Outcome looks up the outcome for a command index.
func (r Results) Outcome(index int) (Outcome, bool) {
	for _, res := range r {
		if res != nil && res.Spec.Index == index {
			return res.Outcome, true
		}
	}

	return Unknown(), false
}
