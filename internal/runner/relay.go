// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
	"github.com/matt-FFFFFF/parallelrun/internal/teereader"
)

// Relay copies a process's stdout to the Console, one prefixed line at a time.
type Relay struct {
	index   int
	src     io.ReadCloser
	stats   *teereader.StatsReader
	console *Console
	done    chan struct{}
}

// NewRelay takes ownership of the process's output stream.
func NewRelay(p *Process, console *Console) *Relay {
	return newRelay(p.Spec.Index, p.output, console)
}

func newRelay(index int, src io.ReadCloser, console *Console) *Relay {
	return &Relay{
		index:   index,
		src:     src,
		stats:   teereader.New(src),
		console: console,
		done:    make(chan struct{}),
	}
}

// Done is closed once the stream has been fully relayed.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

// Stats reports what has been relayed so far.
func (r *Relay) Stats() teereader.Stats {
	return r.stats.Stats()
}

// LastLine returns the last relayed line, truncated to maxLength.
func (r *Relay) LastLine(maxLength int) string {
	return r.stats.LastLine(maxLength)
}

// Run relays lines until EOF or a read error, then closes the stream.
// Invalid UTF-8 is replaced rather than dropped.
func (r *Relay) Run(ctx context.Context) {
	defer close(r.done)
	defer r.src.Close() //nolint:errcheck

	logger := ctxlog.Logger(ctx).With("index", r.index)
	br := bufio.NewReader(r.stats)

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte("\n"))
			line = bytes.TrimSuffix(line, []byte("\r"))

			if werr := r.console.WriteLine(r.index, strings.ToValidUTF8(string(line), "\uFFFD")); werr != nil {
				logger.Error("failed to write output line", "error", werr)
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Debug("output stream ended", "error", err)
			}

			return
		}
	}
}
