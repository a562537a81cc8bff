// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// The child shares the given streams and runs to completion.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor. Nil streams default to the process's own.
func NewExecutor(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs args[0] with the remaining arguments and waits for it to exit.
// A non-zero exit status is returned as exitCode with a nil error; err is set
// only when the process could not be started. The context is not used to kill
// the child: an interrupt reaches it through the shared process group.
func (e *Executor) Execute(_ context.Context, args []string) (int, error) {
	if len(args) == 0 {
		return -1, domain.ErrEmptyCommand
	}

	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // installer program is operator provided
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when the child was killed by a signal.
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, domain.ErrInstallerStartFailed.Error()), "program", args[0])
	}

	return 0, nil
}
