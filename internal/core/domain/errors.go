package domain

import "go.trai.ch/zerr"

var (
	// ErrToolsetVersionNotFound is returned when the MSVC toolset version variable is not set.
	ErrToolsetVersionNotFound = zerr.New(
		"VCToolsVersion environment variable not found, run in a Developer Command Prompt",
	)

	// ErrMalformedToolsetVersion is returned when the toolset version has no minor component.
	ErrMalformedToolsetVersion = zerr.New("malformed toolset version, expected MAJOR.MINOR.PATCH")

	// ErrInvalidBuildType is returned when a build type is not one of the supported values.
	ErrInvalidBuildType = zerr.New("invalid build type, expected Debug, Release, RelWithDebInfo or MinSizeRel")

	// ErrProfileDirCreateFailed is returned when the profile directory cannot be created.
	ErrProfileDirCreateFailed = zerr.New("failed to create profile directory")

	// ErrProfileWriteFailed is returned when the profile file cannot be written.
	ErrProfileWriteFailed = zerr.New("failed to write profile")

	// ErrProfileReadFailed is returned when the profile file cannot be read back.
	ErrProfileReadFailed = zerr.New("failed to read profile")

	// ErrInstallerStartFailed is returned when the installer process cannot be started.
	ErrInstallerStartFailed = zerr.New("failed to start installer")

	// ErrEmptyCommand is returned when an executor is asked to run an empty argument list.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWorkingDirFailed is returned when the working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine working directory")
)
