package domain

// InstallRequest describes one invocation of the dependency manager's install step.
type InstallRequest struct {
	// Program is the installer executable, e.g. "conan".
	Program string
	// ManifestDir is the directory holding the dependency manifest.
	ManifestDir string
	// OutputDir receives the generated build files.
	OutputDir string
	// ProfilePath is used for both the host and the build profile.
	ProfilePath string
	// BuildMissing asks the installer to build packages with no prebuilt binary.
	BuildMissing bool
}

// ProcessOutcome is the result of running the installer.
type ProcessOutcome struct {
	ExitCode int
}

// Succeeded reports whether the installer exited with status zero.
func (o ProcessOutcome) Succeeded() bool {
	return o.ExitCode == 0
}

// Settings holds the optional per-project defaults read from the settings file.
// Empty fields mean "not set".
type Settings struct {
	OutputDir string
	Installer string
	BuildType BuildType
}
