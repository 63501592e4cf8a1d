// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

// Spec is one user supplied command and its position in the input list.
type Spec struct {
	Index int
	Text  string
}

// NewSpecs numbers commands in input order.
func NewSpecs(commands []string) []Spec {
	specs := make([]Spec, len(commands))
	for i, c := range commands {
		specs[i] = Spec{Index: i, Text: c}
	}

	return specs
}
