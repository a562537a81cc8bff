package domain

import "path/filepath"

const (
	// OutputDirName is the name of the default output directory under the project root.
	OutputDirName = ".out"

	// ConanDirName is the name of the Conan directory inside the output directory.
	ConanDirName = "conan"

	// ProfilesDirName is the name of the profiles directory inside the Conan directory.
	ProfilesDirName = "profiles"

	// ProfileExt is the file extension of generated profiles.
	ProfileExt = ".txt"

	// SettingsFileName is the name of the optional project settings file.
	SettingsFileName = "conanprep.yaml"

	// ToolsetVersionEnv is the environment variable carrying the MSVC toolset version.
	ToolsetVersionEnv = "VCToolsVersion"

	// DefaultInstaller is the program invoked for the install step.
	DefaultInstaller = "conan"

	// ManifestDir is the directory handed to the installer; it holds the dependency manifest.
	ManifestDir = "."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultOutputDir returns the default output directory for the given project root.
func DefaultOutputDir(root string) string {
	return filepath.Join(root, OutputDirName)
}

// ProfileDir returns the directory holding generated profiles.
// It joins outputDir, conan and profiles.
func ProfileDir(outputDir string) string {
	return filepath.Join(outputDir, ConanDirName, ProfilesDirName)
}

// ProfilePath returns the profile path for a build type.
// The path depends only on outputDir and buildType.
func ProfilePath(outputDir string, buildType BuildType) string {
	return filepath.Join(ProfileDir(outputDir), buildType.String()+ProfileExt)
}
