package ports

import "go.trai.ch/conanprep/internal/core/domain"

// ProfileStore persists build profiles.
//
//go:generate go run go.uber.org/mock/mockgen -source=profile_store.go -destination=mocks/mock_profile_store.go -package=mocks
type ProfileStore interface {
	// EnsureDir creates dir and its parents. It succeeds if dir already exists.
	EnsureDir(dir string) error

	// Write replaces the file at path with the rendered profile.
	Write(path string, profile domain.BuildProfile) error

	// Read returns the current content of the file at path.
	Read(path string) ([]byte, error)
}
