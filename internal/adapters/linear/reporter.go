// Package linear provides a synchronous, line-oriented reporter for installer diagnostics.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alessio/shellescape"
	"github.com/muesli/termenv"
	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/ui/output"
	"go.trai.ch/conanprep/internal/ui/style"
)

// Reporter implements ports.Reporter. Everything goes to the diagnostic stream
// so the installer's own stdout stays untouched.
type Reporter struct {
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewReporter creates a new Reporter writing to stderr, defaulting to os.Stderr.
func NewReporter(stderr io.Writer) *Reporter {
	if stderr == nil {
		stderr = os.Stderr
	}
	return newReporter(stderr, output.New(stderr))
}

func newReporter(stderr io.Writer, out *termenv.Output) *Reporter {
	return &Reporter{
		stderr: stderr,
		output: out,
	}
}

// CommandStarted echoes the command line in a form that can be pasted into a POSIX shell.
func (r *Reporter) CommandStarted(args []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.output.String("run command:").Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, shellescape.QuoteCommand(args))
}

// CommandFinished separates the child's output from what follows.
func (r *Reporter) CommandFinished(_ domain.ProcessOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stderr)
}

// ProfileApplied prints the profile the installer ran with, as read back from disk.
func (r *Reporter) ProfileApplied(_ string, content []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	success := r.output.String("Conan install success").Foreground(termenv.RGBColor(string(style.Green))).String()
	_, _ = fmt.Fprintln(r.stderr, success)
	_, _ = fmt.Fprintln(r.stderr, "Conan profile content:")
	_, _ = r.stderr.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		_, _ = fmt.Fprintln(r.stderr)
	}
	_, _ = fmt.Fprintf(r.stderr, "Conan profile digest: %s\n", domain.ContentDigest(content))
}
