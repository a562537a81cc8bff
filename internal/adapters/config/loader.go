// Package config provides the settings file loader for conanprep.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the settings file at path. A missing file yields empty Settings.
func (l *FileConfigLoader) Load(path string) (*domain.Settings, error) {
	settings, err := l.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.Settings{}, nil
	}
	return settings, err
}

// LoadFile reads the settings file at path. Unlike Load, a missing file is an error.
func (l *FileConfigLoader) LoadFile(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	settings, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if settings.Installer != "" && settings.Installer != domain.DefaultInstaller {
		l.logger.Warn("Using installer " + settings.Installer + " from " + path)
	}
	if settings.OutputDir != "" {
		l.logger.Info("Using output directory " + settings.OutputDir + " from " + path)
	}
	return settings, nil
}

// Parse decodes settings file content. Relative output directories are joined to baseDir.
// Unknown keys are rejected.
func Parse(data []byte, baseDir string) (*domain.Settings, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	settings := &domain.Settings{
		Installer: file.Installer,
	}

	if file.OutputDir != "" {
		settings.OutputDir = file.OutputDir
		if !filepath.IsAbs(settings.OutputDir) {
			settings.OutputDir = filepath.Join(baseDir, settings.OutputDir)
		}
	}

	if file.BuildType != "" {
		bt, err := domain.ParseBuildType(file.BuildType)
		if err != nil {
			return nil, err
		}
		settings.BuildType = bt
	}

	return settings, nil
}
