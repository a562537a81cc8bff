// Package detector derives the host compiler toolset from the environment.
package detector

import (
	"fmt"
	"strings"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detector implements ports.ToolsetDetector for MSVC toolsets.
type Detector struct {
	table  domain.ToolsetTable
	logger ports.Logger
}

// New creates a Detector using table to map minor versions to tokens.
// A nil table selects domain.DefaultToolsetTable.
func New(table domain.ToolsetTable, logger ports.Logger) *Detector {
	if table == nil {
		table = domain.DefaultToolsetTable
	}
	return &Detector{
		table:  table,
		logger: logger,
	}
}

// Detect returns the compiler token for env's VCToolsVersion, e.g. "14.32.31326" -> "193".
func (d *Detector) Detect(env domain.Environment) (domain.ToolchainToken, error) {
	if !env.HasToolsetVersion {
		return "", zerr.With(domain.ErrToolsetVersionNotFound, "variable", domain.ToolsetVersionEnv)
	}

	minor, err := MinorVersion(env.ToolsetVersion)
	if err != nil {
		return "", err
	}

	token, err := d.table.Lookup(minor)
	if err != nil {
		return "", zerr.With(err, "version", env.ToolsetVersion)
	}

	d.logger.Info(fmt.Sprintf("Detected MSVC version: %s", token))
	return token, nil
}

// MinorVersion returns the second dot-separated component of version.
func MinorVersion(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 || parts[1] == "" {
		return "", zerr.With(domain.ErrMalformedToolsetVersion, "version", version)
	}
	return parts[1], nil
}
