// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner launches a list of shell commands concurrently and supervises them until every
// one has exited.
//
// Each launched process gets an output Relay, which prefixes every stdout line with the command
// index, and a Monitor, which waits for the process, reports how it terminated and, in
// kill-others mode, raises a cascade trigger. All console writes go through a Console so that
// whole lines never interleave.
package runner
