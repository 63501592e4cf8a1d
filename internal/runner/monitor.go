// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/matt-FFFFFF/parallelrun/internal/cascade"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
)

// DefaultOutputGrace bounds how long a Monitor waits for its relay after the process exits.
const DefaultOutputGrace = 100 * time.Millisecond

// Monitor waits for one process to terminate and reports the Outcome.
type Monitor struct {
	proc       *Process
	entry      *Entry
	relayDone  <-chan struct{}
	console    *Console
	grace      time.Duration
	killOthers bool
	raiser     cascade.Raiser
}

// Run blocks until the process exits. It prints the exit line and, in kill-others mode, raises a
// SiblingExit trigger whatever the outcome was.
func (m *Monitor) Run(ctx context.Context) Outcome {
	logger := ctxlog.Logger(ctx).With("index", m.proc.Spec.Index).With("pid", m.proc.Pid)

	err := m.proc.cmd.Wait()
	m.entry.MarkExited()

	outcome := Unknown()

	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		outcome = classify(m.proc.cmd.ProcessState)
	}

	if outcome.Kind == OutcomeUnknown {
		logger.Debug("wait failed", "error", err)
	}

	m.awaitOutput()

	line := m.proc.Spec.Text + " exited with code " + outcome.String()
	if err := m.console.WriteLine(m.proc.Spec.Index, line); err != nil {
		logger.Error("failed to write exit line", "error", err)
	}

	logger.Debug("process finished", "outcome", outcome.String())

	if m.killOthers {
		m.raiser.Raise(cascade.Trigger{Source: cascade.SiblingExit, Kind: procsignal.Term})
	}

	return outcome
}

// awaitOutput lets the relay drain what the process wrote before it died. A descendant that
// inherited the pipe may keep it open, so the wait is bounded.
func (m *Monitor) awaitOutput() {
	if m.relayDone == nil {
		return
	}

	if m.grace <= 0 {
		select {
		case <-m.relayDone:
		default:
		}

		return
	}

	t := time.NewTimer(m.grace)
	defer t.Stop()

	select {
	case <-m.relayDone:
	case <-t.C:
	}
}
