// Package profile persists generated toolchain profiles on disk.
package profile

import (
	"os"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ProfileStore with one plain text file per build type.
// Writes truncate in place: there is no temp file, rename or lock, so concurrent
// runs for the same build type race and the last writer wins.
type Store struct{}

// NewStore creates a new profile Store.
func NewStore() *Store {
	return &Store{}
}

// EnsureDir creates dir and any missing parents.
func (s *Store) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProfileDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

// Write replaces the content of path with the rendered profile.
func (s *Store) Write(path string, profile domain.BuildProfile) error {
	//nolint:gosec // path is derived from the output directory and build type
	if err := os.WriteFile(path, profile.Render(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProfileWriteFailed.Error()), "path", path)
	}
	return nil
}

// Read returns the content of path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the output directory and build type
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProfileReadFailed.Error()), "path", path)
	}
	return data, nil
}
