// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import "sync/atomic"

// Entry is one process in the Registry.
type Entry struct {
	pid    int
	exited atomic.Bool
}

// MarkExited records that the process has been waited on and its pid must no longer be signalled.
func (e *Entry) MarkExited() {
	e.exited.Store(true)
}

// Registry is the fixed set of processes started for a run.
// The entry list never changes after construction.
type Registry struct {
	entries []*Entry
}

// NewRegistry builds a registry with one entry per process, in the same order.
func NewRegistry(procs []*Process) *Registry {
	r := &Registry{entries: make([]*Entry, len(procs))}
	for i, p := range procs {
		r.entries[i] = &Entry{pid: p.Pid}
	}

	return r
}

// Entry returns the i'th entry.
func (r *Registry) Entry(i int) *Entry {
	return r.entries[i]
}

// Pending returns the pids of processes whose exit has not been observed yet.
func (r *Registry) Pending() []int {
	pids := make([]int, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.exited.Load() {
			pids = append(pids, e.pid)
		}
	}

	return pids
}
