package domain

import "go.trai.ch/zerr"

// BuildType is a named compilation configuration.
type BuildType string

// Supported build types.
const (
	BuildTypeDebug          BuildType = "Debug"
	BuildTypeRelease        BuildType = "Release"
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	BuildTypeMinSizeRel     BuildType = "MinSizeRel"
)

// DefaultBuildType is used when the operator does not pick one.
const DefaultBuildType = BuildTypeDebug

// BuildTypes returns all supported build types in display order.
func BuildTypes() []BuildType {
	return []BuildType{
		BuildTypeDebug,
		BuildTypeRelease,
		BuildTypeRelWithDebInfo,
		BuildTypeMinSizeRel,
	}
}

// ParseBuildType converts s into a BuildType. Matching is exact and case-sensitive.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes() {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", zerr.With(ErrInvalidBuildType, "build_type", s)
}

func (b BuildType) String() string {
	return string(b)
}

// BuildConfiguration is the operator's input to the prepare-deps workflow.
type BuildConfiguration struct {
	BuildMissing bool
	BuildType    BuildType
}
