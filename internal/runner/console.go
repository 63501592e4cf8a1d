// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// prefixPalette holds the ANSI colours cycled through for the [index] prefixes.
var prefixPalette = []lipgloss.Color{"6", "2", "3", "4", "5", "1"}

// Console serialises whole-line writes to a shared writer.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styles []lipgloss.Style
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPrefixColour colours the [index] prefix of every line.
func WithPrefixColour(on bool) ConsoleOption {
	return func(c *Console) {
		if !on {
			c.styles = nil
			return
		}

		r := lipgloss.NewRenderer(c.w)
		r.SetColorProfile(termenv.ANSI)

		c.styles = make([]lipgloss.Style, len(prefixPalette))
		for i, col := range prefixPalette {
			c.styles[i] = r.NewStyle().Foreground(col)
		}
	}
}

// NewConsole wraps w. Without options lines are written without colour.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WriteLine writes "[index] text\n" with a single Write call.
func (c *Console) WriteLine(index int, text string) error {
	prefix := "[" + strconv.Itoa(index) + "]"
	if len(c.styles) > 0 {
		prefix = c.styles[index%len(c.styles)].Render(prefix)
	}

	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(text) + 2)
	sb.WriteString(prefix)
	sb.WriteString(" ")
	sb.WriteString(text)
	sb.WriteString("\n")

	_, err := c.Write([]byte(sb.String()))

	return err
}

// Write implements io.Writer. Each call is written atomically with respect to other writers.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.w.Write(p) //nolint:wrapcheck
}
