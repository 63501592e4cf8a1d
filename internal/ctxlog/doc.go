// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger on a context.Context.
//
// The default logger writes human readable diagnostics to stderr using PrettyHandler, so that
// it never interleaves with the relayed stdout of child processes. The level comes from the
// PARALLELRUN_LOG_LEVEL environment variable (DEBUG, INFO, WARN or ERROR, default WARN) and
// may be changed at runtime through LevelVar or SetLevel.
package ctxlog
