package ports

import "go.trai.ch/conanprep/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path.
	// A missing file is not an error and yields zero Settings.
	Load(path string) (*domain.Settings, error)
	// LoadFile reads the settings file at path, which must exist.
	LoadFile(path string) (*domain.Settings, error)
}
