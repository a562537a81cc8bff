package domain

import (
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// ToolchainToken identifies a compiler toolset release, e.g. "193".
type ToolchainToken string

func (t ToolchainToken) String() string {
	return string(t)
}

// ToolsetTable maps the minor component of a toolset version to a compiler token.
type ToolsetTable interface {
	Lookup(minor string) (ToolchainToken, error)
}

// MSVCVersionPrefix is prepended to the minor version's leading digit.
const MSVCVersionPrefix = "19"

// DefaultToolsetTable is the table used by the detector unless another one is injected.
var DefaultToolsetTable ToolsetTable = LeadingDigitTable{Prefix: MSVCVersionPrefix}

// LeadingDigitTable derives the token from the first character of the minor version only:
// "32" and "38" both map to Prefix+"3". Toolsets 14.40 and later break this assumption
// (they still ship compiler 19.4x), so a real lookup table can replace it without callers
// noticing.
type LeadingDigitTable struct {
	Prefix string
}

// Lookup implements ToolsetTable.
func (t LeadingDigitTable) Lookup(minor string) (ToolchainToken, error) {
	if minor == "" {
		return "", zerr.With(ErrMalformedToolsetVersion, "minor", minor)
	}
	r, size := utf8.DecodeRuneInString(minor)
	if r == utf8.RuneError && size <= 1 {
		return "", zerr.With(ErrMalformedToolsetVersion, "minor", minor)
	}
	return ToolchainToken(t.Prefix + minor[:size]), nil
}
