// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cascade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
)

const (
	armed int32 = iota
	fired
)

// Registry lists the processes a cascade may signal.
type Registry interface {
	// Pending returns the pids whose exit has not been observed yet.
	Pending() []int
}

// Coordinator delivers at most one cascade per run.
type Coordinator struct {
	state    atomic.Int32
	triggers chan Trigger
	registry Registry
	signaler procsignal.Signaler
	out      io.Writer
}

// New creates an armed Coordinator. The notice is written to out in a single Write call.
func New(registry Registry, signaler procsignal.Signaler, out io.Writer) *Coordinator {
	if signaler == nil {
		signaler = procsignal.Default()
	}

	return &Coordinator{
		triggers: make(chan Trigger, 1),
		registry: registry,
		signaler: signaler,
		out:      out,
	}
}

// Raise requests a cascade. It never blocks: if a trigger is already pending the new one is dropped.
func (c *Coordinator) Raise(t Trigger) {
	select {
	case c.triggers <- t:
	default:
	}
}

// Run consumes the first raised trigger and fires it. It returns after firing or when ctx is done.
func (c *Coordinator) Run(ctx context.Context) {
	select {
	case t := <-c.triggers:
		c.Fire(ctx, t)
	case <-ctx.Done():
	}
}

// Fired reports whether a cascade has been delivered.
func (c *Coordinator) Fired() bool {
	return c.state.Load() == fired
}

// Fire delivers the cascade if the coordinator is still armed.
// It returns false when a previous trigger already fired.
func (c *Coordinator) Fire(ctx context.Context, t Trigger) bool {
	logger := ctxlog.Logger(ctx).With("source", t.Source.String(), "signal", t.Kind.String())

	if !c.state.CompareAndSwap(armed, fired) {
		logger.Debug("cascade already fired, discarding trigger")
		return false
	}

	if _, err := fmt.Fprintf(c.out, "--> Sending %s Signal to other processes..\n", t.Kind); err != nil {
		logger.Warn("failed to write cascade notice", "error", err)
	}

	for _, pid := range c.registry.Pending() {
		err := procsignal.DeliverOrKill(c.signaler, pid, t.Kind)

		switch {
		case err == nil:
			logger.Debug("signal delivered", "pid", pid)
		case errors.Is(err, os.ErrProcessDone):
			logger.Debug("process already done", "pid", pid)
		default:
			logger.Warn("failed to deliver signal", "pid", pid, "error", err)
		}
	}

	return true
}
