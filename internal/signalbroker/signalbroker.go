// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"slices"

	"github.com/matt-FFFFFF/parallelrun/internal/cascade"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
)

// TerminalKinds are the kinds a terminal sends to its whole foreground process group
// (Ctrl+C and Ctrl+\). Children sharing our group have already received them.
var TerminalKinds = []procsignal.Kind{procsignal.Int, procsignal.Quit}

// Listener republishes OS signals as ExternalSignal triggers.
type Listener struct {
	sigCh chan os.Signal
	skip  []procsignal.Kind
}

// New registers for the termination-class signals, or for sigs if given.
// It returns nil on platforms without asynchronous signal delivery.
func New(ctx context.Context, sigs ...os.Signal) *Listener {
	if len(sigs) == 0 {
		sigs = termSignals
	}

	if len(sigs) == 0 {
		ctxlog.Debug(ctx, "signalbroker", "detail", "signals not supported on this platform")
		return nil
	}

	ch := make(chan os.Signal, 1)

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal listener", "signals", sigs)
	signal.Notify(ch, sigs...)

	return &Listener{sigCh: ch}
}

// Skip stops kinds from being forwarded. They are still caught, so the parent keeps
// running until its children exit.
func (l *Listener) Skip(kinds ...procsignal.Kind) *Listener {
	if l != nil {
		l.skip = append(l.skip, kinds...)
	}

	return l
}

// Watch forwards every received signal not skipped to r until ctx is done, then unregisters.
func (l *Listener) Watch(ctx context.Context, r cascade.Raiser) {
	if l == nil {
		return
	}

	defer signal.Stop(l.sigCh)

	watch(ctx, l.sigCh, r, l.skip...)
}

func watch(ctx context.Context, sigCh <-chan os.Signal, r cascade.Raiser, skip ...procsignal.Kind) {
	logger := ctxlog.Logger(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			kind, err := procsignal.FromOS(sig)
			if err != nil {
				logger.Warn("signalbroker", "detail", "ignoring signal", "signal", sig.String(), "error", err)
				continue
			}

			if slices.Contains(skip, kind) {
				logger.Debug("signalbroker", "detail", "children already received signal, not forwarding", "signal", kind.String())
				continue
			}

			logger.Info("signalbroker", "detail", "received signal, cascading", "signal", kind.String())
			r.Raise(cascade.Trigger{Source: cascade.ExternalSignal, Kind: kind})
		}
	}
}
