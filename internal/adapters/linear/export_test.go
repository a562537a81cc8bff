package linear

import (
	"io"

	"github.com/muesli/termenv"
)

// NewReporterWithOutput exposes newReporter so tests can force a color profile.
func NewReporterWithOutput(stderr io.Writer, out *termenv.Output) *Reporter {
	return newReporter(stderr, out)
}
