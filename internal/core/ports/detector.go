package ports

import "go.trai.ch/conanprep/internal/core/domain"

// ToolsetDetector derives the compiler version token from the environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ToolsetDetector interface {
	// Detect returns the token for env's toolset version.
	// It must not touch the filesystem.
	Detect(env domain.Environment) (domain.ToolchainToken, error)
}
