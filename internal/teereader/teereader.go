// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teereader

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
)

// MaxLineLength caps how much of a single line is retained.
const MaxLineLength = 4096

// Stats summarises a stream.
type Stats struct {
	Bytes    int64
	Lines    int
	LastLine string
}

// StatsReader wraps an io.Reader and records Stats as data is read.
// It is safe for concurrent use.
type StatsReader struct {
	reader   io.Reader
	mu       sync.RWMutex
	bytes    int64
	lines    int
	lastLine string
	partial  strings.Builder
}

// New creates a StatsReader that wraps r.
func New(r io.Reader) *StatsReader {
	return &StatsReader{reader: r}
}

// Read implements io.Reader. An unterminated final line counts as a line once EOF is reached.
func (sr *StatsReader) Read(p []byte) (n int, err error) {
	n, err = sr.reader.Read(p)

	if n > 0 || errors.Is(err, io.EOF) {
		sr.mu.Lock()
		defer sr.mu.Unlock()

		sr.observe(p[:n])

		if errors.Is(err, io.EOF) && sr.partial.Len() > 0 {
			sr.endLine()
		}
	}

	return n, err //nolint:wrapcheck
}

// observe must be called with the write lock held.
func (sr *StatsReader) observe(p []byte) {
	sr.bytes += int64(len(p))

	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			sr.appendPartial(p)
			return
		}

		sr.appendPartial(p[:i])
		sr.endLine()
		p = p[i+1:]
	}
}

func (sr *StatsReader) appendPartial(p []byte) {
	room := MaxLineLength - sr.partial.Len()
	if room <= 0 {
		return
	}

	if len(p) > room {
		p = p[:room]
	}

	sr.partial.Write(p)
}

func (sr *StatsReader) endLine() {
	sr.lastLine = strings.TrimSuffix(sr.partial.String(), "\r")
	sr.lines++
	sr.partial.Reset()
}

// LastLine returns the last complete line. If maxLength > 3 and the line is longer,
// it is truncated and "..." appended.
func (sr *StatsReader) LastLine(maxLength int) string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	result := sr.lastLine
	if maxLength > 3 && len(result) > maxLength {
		result = result[:maxLength-3] + "..."
	}

	return result
}

// Stats returns a snapshot of what has been read so far.
func (sr *StatsReader) Stats() Stats {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	return Stats{
		Bytes:    sr.bytes,
		Lines:    sr.lines,
		LastLine: sr.lastLine,
	}
}
