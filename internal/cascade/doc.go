// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cascade implements the single-fire termination cascade.
//
// Any number of goroutines may Raise a Trigger. Triggers land in a single-slot channel that is
// drained by exactly one consumer (Run). The consumer calls Fire, which moves the Coordinator from
// Armed to Fired with a compare-and-swap, so at most one cascade is ever delivered per run no
// matter how many exit monitors or OS signals race to request one.
package cascade
