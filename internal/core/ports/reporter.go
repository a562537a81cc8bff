package ports

import "go.trai.ch/conanprep/internal/core/domain"

// Reporter writes operator diagnostics for the prepare-deps workflow.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// CommandStarted echoes the command line about to be executed.
	CommandStarted(args []string)

	// CommandFinished is called once the child process has exited.
	CommandFinished(outcome domain.ProcessOutcome)

	// ProfileApplied shows the profile that a successful install used.
	ProfileApplied(path string, content []byte)
}
