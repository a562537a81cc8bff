// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the color profile to use for interactive terminals.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileFor returns the color profile for w.
// Anything that is not a terminal (files, pipes, buffers) gets Ascii so that
// redirected diagnostics stay free of escape codes.
func ProfileFor(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return ColorProfile()
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// New creates a new termenv.Output writing to w, defaulting to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ProfileFor(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
