package domain

import (
	"bytes"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fixed settings of the only supported host toolchain family.
const (
	ProfileOS       = "Windows"
	ProfileArch     = "x86_64"
	ProfileCompiler = "msvc"
	ProfileRuntime  = "dynamic"
)

// BuildProfile is the toolchain description consumed by the dependency manager.
type BuildProfile struct {
	OS              string
	Arch            string
	Compiler        string
	CompilerVersion ToolchainToken
	CompilerRuntime string
	BuildType       BuildType
}

// NewMSVCProfile returns the Windows x86_64 MSVC profile for token and buildType.
func NewMSVCProfile(token ToolchainToken, buildType BuildType) BuildProfile {
	return BuildProfile{
		OS:              ProfileOS,
		Arch:            ProfileArch,
		Compiler:        ProfileCompiler,
		CompilerVersion: token,
		CompilerRuntime: ProfileRuntime,
		BuildType:       buildType,
	}
}

// Render serializes the profile as a [settings] section with one key=value per line.
// The key order is fixed so equal profiles render to equal bytes.
func (p BuildProfile) Render() []byte {
	var buf bytes.Buffer
	buf.WriteString("[settings]\n")
	writeSetting(&buf, "os", p.OS)
	writeSetting(&buf, "arch", p.Arch)
	writeSetting(&buf, "compiler", p.Compiler)
	writeSetting(&buf, "compiler.version", p.CompilerVersion.String())
	writeSetting(&buf, "compiler.runtime", p.CompilerRuntime)
	writeSetting(&buf, "build_type", p.BuildType.String())
	return buf.Bytes()
}

// Digest returns the xxhash64 of the rendered profile in hex.
func (p BuildProfile) Digest() string {
	return ContentDigest(p.Render())
}

// ContentDigest returns the xxhash64 of content in hex.
func ContentDigest(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}

func writeSetting(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte('\n')
}
