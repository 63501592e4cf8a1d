// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cascade

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/parallelrun/internal/procsignal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type staticRegistry []int

func (r staticRegistry) Pending() []int {
	return r
}

type delivery struct {
	pid  int
	kind procsignal.Kind
}

type recordingSignaler struct {
	mu          sync.Mutex
	deliveries  []delivery
	unsupported map[procsignal.Kind]bool
	errs        map[int]error
}

func (s *recordingSignaler) Deliver(pid int, kind procsignal.Kind) error {
	if s.unsupported[kind] {
		return procsignal.ErrUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deliveries = append(s.deliveries, delivery{pid: pid, kind: kind})

	return s.errs[pid]
}

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

func TestFire_DeliversToPending(t *testing.T) {
	out := &lockedBuffer{}
	sig := &recordingSignaler{}
	c := New(staticRegistry{10, 11}, sig, out)

	assert.False(t, c.Fired())
	assert.True(t, c.Fire(context.Background(), Trigger{Source: SiblingExit, Kind: procsignal.Term}))
	assert.True(t, c.Fired())

	assert.Equal(t, "--> Sending SIGTERM Signal to other processes..\n", out.String())
	assert.Equal(t, []delivery{{10, procsignal.Term}, {11, procsignal.Term}}, sig.deliveries)
}

func TestFire_SecondTriggerIsNoop(t *testing.T) {
	out := &lockedBuffer{}
	sig := &recordingSignaler{}
	c := New(staticRegistry{10}, sig, out)

	require.True(t, c.Fire(context.Background(), Trigger{Source: ExternalSignal, Kind: procsignal.Hangup}))
	assert.False(t, c.Fire(context.Background(), Trigger{Source: SiblingExit, Kind: procsignal.Term}))

	assert.Equal(t, 1, strings.Count(out.String(), "--> Sending"))
	assert.Equal(t, []delivery{{10, procsignal.Hangup}}, sig.deliveries)
}

func TestFire_UnsupportedFallsBackToKill(t *testing.T) {
	sig := &recordingSignaler{unsupported: map[procsignal.Kind]bool{procsignal.Quit: true}}
	c := New(staticRegistry{7}, sig, &lockedBuffer{})

	c.Fire(context.Background(), Trigger{Source: ExternalSignal, Kind: procsignal.Quit})

	assert.Equal(t, []delivery{{7, procsignal.Kill}}, sig.deliveries)
}

func TestFire_DeliveryErrorsDoNotStopCascade(t *testing.T) {
	sig := &recordingSignaler{errs: map[int]error{1: os.ErrProcessDone, 2: os.ErrPermission}}
	c := New(staticRegistry{1, 2, 3}, sig, &lockedBuffer{})

	c.Fire(context.Background(), Trigger{Source: SiblingExit, Kind: procsignal.Term})

	assert.Len(t, sig.deliveries, 3)
}

func TestRun_ConcurrentTriggersFireOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	out := &lockedBuffer{}
	sig := &recordingSignaler{}
	c := New(staticRegistry{1, 2, 3}, sig, out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(ctx)
	}()

	var wg sync.WaitGroup

	for i := range 64 {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			src := SiblingExit
			if i%2 == 0 {
				src = ExternalSignal
			}

			c.Raise(Trigger{Source: src, Kind: procsignal.Term})
			c.Fire(ctx, Trigger{Source: src, Kind: procsignal.Term})
		}(i)
	}

	wg.Wait()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not return")
	}

	assert.Equal(t, 1, strings.Count(out.String(), "--> Sending"), "expected exactly one cascade notice")
	assert.Len(t, sig.deliveries, 3)
}

func TestRun_ReturnsOnContextDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New(staticRegistry{1}, &recordingSignaler{}, &lockedBuffer{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(ctx)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.False(t, c.Fired())
}

func TestRaise_NeverBlocks(t *testing.T) {
	c := New(staticRegistry{}, &recordingSignaler{}, &lockedBuffer{})

	for range 10 {
		c.Raise(Trigger{Source: SiblingExit, Kind: procsignal.Term})
	}

	assert.Len(t, c.triggers, 1)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "sibling exit", SiblingExit.String())
	assert.Equal(t, "external signal", ExternalSignal.String())
	assert.Equal(t, "spawn failure", SpawnFailure.String())
	assert.Equal(t, "unknown", Source(9).String())
}
