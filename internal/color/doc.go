// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether ANSI colour should be written and wraps strings in colour codes.
// NO_COLOR always wins, FORCE_COLOR enables colour for non-terminals, otherwise colour is
// enabled only when the destination is a terminal (golang.org/x/term).
package color
