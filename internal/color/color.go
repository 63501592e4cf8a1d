// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
	sbPadding  = 16
)

// ErrInvalidMode is returned by ParseMode for unknown values.
var ErrInvalidMode = errors.New("invalid color mode")

// Code represents an ANSI control code for text formatting.
type Code int

// Foreground text colors.
const (
	FgRed   Code = 31
	FgBlue  Code = 34
	FgCyan  Code = 36
	FgWhite Code = 37

	FgYellow    Code = 33
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

// Mode is the user's colour preference.
type Mode string

// Colour preferences.
const (
	Auto   Mode = "auto"
	Always Mode = "always"
	Never  Mode = "never"
)

// ParseMode validates a colour preference. The empty string means Auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return Auto, nil
	case Auto, Always, Never:
		return m, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Resolve turns a Mode into a yes/no decision for output written to f.
func (m Mode) Resolve(f *os.File) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	default:
		return isColorCapable(f)
	}
}

var enabled = isColorCapable(os.Stderr)

// Enabled reports whether colour is enabled for diagnostics written to stderr.
func Enabled() bool {
	return enabled
}

// Paint wraps str in the given codes followed by a reset, if on is true.
func Paint(on bool, str string, codes ...Code) string {
	if !on || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func isColorCapable(f *os.File) bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
