// Package conan drives the Conan dependency installer.
package conan

import (
	"context"

	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports"
)

// Installer implements ports.Installer by running "conan install" through an Executor.
type Installer struct {
	executor ports.Executor
	reporter ports.Reporter
}

// NewInstaller creates a new Installer.
func NewInstaller(executor ports.Executor, reporter ports.Reporter) *Installer {
	return &Installer{
		executor: executor,
		reporter: reporter,
	}
}

// Install echoes the command, runs it to completion and reports the exit status.
// The returned error is non-nil only when the installer could not be started.
func (i *Installer) Install(ctx context.Context, req domain.InstallRequest) (domain.ProcessOutcome, error) {
	args := InstallArgs(req)
	i.reporter.CommandStarted(args)

	code, err := i.executor.Execute(ctx, args)
	if err != nil {
		return domain.ProcessOutcome{ExitCode: code}, err
	}

	outcome := domain.ProcessOutcome{ExitCode: code}
	i.reporter.CommandFinished(outcome)
	return outcome, nil
}

// InstallArgs builds the argument list for req. The same profile is passed for
// the host and the build context.
func InstallArgs(req domain.InstallRequest) []string {
	program := req.Program
	if program == "" {
		program = domain.DefaultInstaller
	}
	manifest := req.ManifestDir
	if manifest == "" {
		manifest = domain.ManifestDir
	}

	args := []string{
		program,
		"install",
		manifest,
		"--update",
		"--output-folder=" + req.OutputDir,
		"--profile:host=" + req.ProfilePath,
		"--profile:build=" + req.ProfilePath,
	}
	if req.BuildMissing {
		args = append(args, "--build=missing")
	}
	return args
}
