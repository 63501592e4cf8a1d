// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/parallelrun/internal/cascade"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
)

// summaryLineLength caps the last output line in the debug summary.
const summaryLineLength = 80

// ErrSpawnFailed is returned when one or more commands could not be started.
var ErrSpawnFailed = errors.New("one or more commands failed to start")

// SignalSource forwards external signals to a cascade. The signalbroker Listener implements it.
type SignalSource interface {
	Watch(ctx context.Context, r cascade.Raiser)
}

// Options configures a Runner.
type Options struct {
	Commands        []string
	KillOthers      bool
	Shell           Shell
	NewProcessGroup bool
	// OutputGrace bounds how long an exit line waits for the process's remaining output.
	OutputGrace time.Duration
	Stdout      io.Writer
	Colour      bool
	Signaler    procsignal.Signaler
	Signals     SignalSource
}

// Runner runs a set of commands concurrently.
type Runner struct {
	opts    Options
	console *Console
}

// New creates a Runner. A nil Stdout means os.Stdout, a nil Signaler the platform default and a
// zero OutputGrace DefaultOutputGrace. A negative OutputGrace disables the wait.
func New(opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Signaler == nil {
		opts.Signaler = procsignal.Default()
	}

	if opts.OutputGrace == 0 {
		opts.OutputGrace = DefaultOutputGrace
	}

	return &Runner{
		opts:    opts,
		console: NewConsole(opts.Stdout, WithPrefixColour(opts.Colour)),
	}
}

// Run launches every command, supervises them and returns once all launched processes have
// exited. If some commands fail to start, the ones that did start are terminated and
// ErrSpawnFailed is returned together with their results.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	logger := ctxlog.Logger(ctx).With("killOthers", r.opts.KillOthers)

	var spawnErr *multierror.Error

	launchOpts := LaunchOptions{Shell: r.opts.Shell, NewProcessGroup: r.opts.NewProcessGroup}
	procs := make([]*Process, 0, len(r.opts.Commands))

	for _, spec := range NewSpecs(r.opts.Commands) {
		p, err := launch(ctx, spec, launchOpts)
		if err != nil {
			logger.Error("failed to start command", "index", spec.Index, "command", spec.Text, "error", err)
			spawnErr = multierror.Append(spawnErr, fmt.Errorf("[%d] %s: %w", spec.Index, spec.Text, err))

			continue
		}

		procs = append(procs, p)
	}

	registry := NewRegistry(procs)
	coordinator := cascade.New(registry, r.opts.Signaler, r.console)

	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var bg sync.WaitGroup

	bg.Add(1)

	go func() {
		defer bg.Done()
		coordinator.Run(bgCtx)
	}()

	if r.opts.Signals != nil {
		bg.Add(1)

		go func() {
			defer bg.Done()
			r.opts.Signals.Watch(bgCtx, coordinator)
		}()
	}

	results := make(Results, len(procs))

	var wg sync.WaitGroup

	for i, p := range procs {
		relay := NewRelay(p, r.console)
		go relay.Run(ctx)

		m := &Monitor{
			proc:       p,
			entry:      registry.Entry(i),
			relayDone:  relay.Done(),
			console:    r.console,
			grace:      r.opts.OutputGrace,
			killOthers: r.opts.KillOthers,
			raiser:     coordinator,
		}

		wg.Add(1)

		go func() {
			defer wg.Done()

			outcome := m.Run(ctx)
			results[i] = &Result{Spec: p.Spec, Pid: p.Pid, Outcome: outcome, Output: relay.Stats()}

			logger.Debug("command summary",
				"index", p.Spec.Index,
				"outcome", outcome.String(),
				"lines", results[i].Output.Lines,
				"lastLine", relay.LastLine(summaryLineLength))
		}()
	}

	if spawnErr != nil && len(procs) > 0 {
		coordinator.Raise(cascade.Trigger{Source: cascade.SpawnFailure, Kind: procsignal.Term})
	}

	wg.Wait()
	cancel()
	bg.Wait()

	logger.Debug("all processes exited", "launched", len(procs), "cascadeFired", coordinator.Fired())

	if spawnErr != nil {
		return results, errors.Join(ErrSpawnFailed, spawnErr.ErrorOrNil())
	}

	return results, nil
}
