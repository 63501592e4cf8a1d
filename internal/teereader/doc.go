// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package teereader wraps a process output stream and records what passed through it:
// byte and line counts and the most recent complete line.
package teereader
