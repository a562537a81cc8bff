package ports

import (
	"context"

	"go.trai.ch/conanprep/internal/core/domain"
)

// Installer runs the dependency manager's install step.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the install step described by req and returns the child's exit status.
	Install(ctx context.Context, req domain.InstallRequest) (domain.ProcessOutcome, error)
}
