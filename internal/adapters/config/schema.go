package config

// File represents the structure of the conanprep.yaml settings file.
type File struct {
	// OutputDir overrides the default "<project>/.out". Relative paths are
	// resolved against the directory holding the settings file.
	OutputDir string `yaml:"output_dir"`
	// Installer is the installer program, "conan" when empty.
	Installer string `yaml:"installer"`
	// BuildType is the default build type when none is given on the command line.
	BuildType string `yaml:"build_type"`
}
