// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package procsignal abstracts the platform specific parts of signalling a child process.
//
// A Kind is a portable name for a termination-class signal. A Signaler delivers a Kind to a
// process identifier and returns ErrUnsupported when the host cannot express that Kind, in
// which case callers are expected to fall back to Kill.
package procsignal
