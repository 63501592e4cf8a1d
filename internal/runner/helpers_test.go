// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/parallelrun/internal/cascade"
	"github.com/matt-FFFFFF/parallelrun/internal/ctxlog"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func (b *lockedBuffer) Lines() []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

type recordingRaiser struct {
	mu       sync.Mutex
	triggers []cascade.Trigger
}

func (r *recordingRaiser) Raise(t cascade.Trigger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.triggers = append(r.triggers, t)
}

func testContext() context.Context {
	return ctxlog.New(context.Background(), ctxlog.DefaultLogger)
}
