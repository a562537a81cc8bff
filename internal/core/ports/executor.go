// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running an external program.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs args[0] with the remaining arguments and blocks until it exits.
	//
	// The child inherits the caller's standard streams. A non-zero exit status is
	// returned as the exit code with a nil error; an error means the program could
	// not be started at all.
	Execute(ctx context.Context, args []string) (exitCode int, err error)
}
