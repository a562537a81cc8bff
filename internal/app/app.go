// Package app implements the application layer for conanprep.
package app

import (
	"context"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports"
	"go.trai.ch/zerr"
)

// App sequences toolset detection, profile generation and the dependency install.
type App struct {
	detector  ports.ToolsetDetector
	store     ports.ProfileStore
	installer ports.Installer
	reporter  ports.Reporter
}

// New creates a new App instance.
func New(
	detector ports.ToolsetDetector,
	store ports.ProfileStore,
	installer ports.Installer,
	reporter ports.Reporter,
) *App {
	return &App{
		detector:  detector,
		store:     store,
		installer: installer,
		reporter:  reporter,
	}
}

// PrepareOptions carries everything one prepare-deps run needs.
type PrepareOptions struct {
	// OutputDir receives the profile directory and the installer's generated files.
	OutputDir string
	// Installer is the installer program; empty means domain.DefaultInstaller.
	Installer string
	Config    domain.BuildConfiguration
	Env       domain.Environment
}

// PrepareDeps writes the toolchain profile for opts.Config.BuildType and runs the installer
// with it. A non-zero installer exit is reported through the outcome, not as an error.
// Nothing is written when the toolset cannot be detected.
func (a *App) PrepareDeps(ctx context.Context, opts PrepareOptions) (domain.ProcessOutcome, error) {
	// 1. Detect the toolset
	token, err := a.detector.Detect(opts.Env)
	if err != nil {
		return domain.ProcessOutcome{}, err
	}

	// 2. Write the profile
	profilePath := domain.ProfilePath(opts.OutputDir, opts.Config.BuildType)
	if err := a.store.EnsureDir(domain.ProfileDir(opts.OutputDir)); err != nil {
		return domain.ProcessOutcome{}, err
	}
	if err := a.store.Write(profilePath, domain.NewMSVCProfile(token, opts.Config.BuildType)); err != nil {
		return domain.ProcessOutcome{}, err
	}

	// 3. Run the installer
	outcome, err := a.installer.Install(ctx, domain.InstallRequest{
		Program:      opts.Installer,
		ManifestDir:  domain.ManifestDir,
		OutputDir:    opts.OutputDir,
		ProfilePath:  profilePath,
		BuildMissing: opts.Config.BuildMissing,
	})
	if err != nil {
		return outcome, zerr.Wrap(err, "dependency install failed")
	}
	if !outcome.Succeeded() {
		return outcome, nil
	}

	// 4. Show what the installer ran with
	content, err := a.store.Read(profilePath)
	if err != nil {
		return outcome, err
	}
	a.reporter.ProfileApplied(profilePath, content)

	return outcome, nil
}
