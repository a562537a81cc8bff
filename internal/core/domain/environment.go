package domain

// Environment is the part of the process environment the workflow depends on.
// It is captured once at the program boundary and passed down explicitly.
type Environment struct {
	// ToolsetVersion is the raw value of VCToolsVersion, e.g. "14.38.33130".
	ToolsetVersion string
	// HasToolsetVersion is false when the variable is unset or empty.
	HasToolsetVersion bool
}

// EnvironmentFrom builds an Environment using lookup, typically os.LookupEnv.
func EnvironmentFrom(lookup func(string) (string, bool)) Environment {
	v, ok := lookup(ToolsetVersionEnv)
	return Environment{
		ToolsetVersion:    v,
		HasToolsetVersion: ok && v != "",
	}
}

// WithToolsetVersion returns an Environment carrying version.
func WithToolsetVersion(version string) Environment {
	return Environment{
		ToolsetVersion:    version,
		HasToolsetVersion: version != "",
	}
}
