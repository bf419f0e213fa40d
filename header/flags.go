package header

import "strings"

// Flags is the FileHeader property bitfield.
type Flags uint32

const (
	FlagCompressed Flags = 1 << iota
	FlagEncrypted
	FlagDistribution
	FlagScript
	FlagDRM
	FlagXMLTemplate
	FlagHistory
	FlagSigned
	FlagCertEncrypted
	FlagSignatureReserved
	FlagCertDRM
	FlagCCL
	FlagMobileOptimized
	FlagPrivacyInfo
	FlagTrackChanges
	FlagKOGL
	FlagVideoControl
	FlagOrderFieldControl
)

var flagNames = []string{
	"compressed",
	"encrypted",
	"distribution",
	"script",
	"drm",
	"xml-template",
	"history",
	"signed",
	"cert-encrypted",
	"signature-reserved",
	"cert-drm",
	"ccl",
	"mobile-optimized",
	"privacy-info",
	"track-changes",
	"kogl",
	"video-control",
	"order-field-control",
}

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// With returns f with f2 set or cleared.
func (f Flags) With(f2 Flags, on bool) Flags {
	if on {
		return f | f2
	}

	return f &^ f2
}

func (f Flags) Compressed() bool   { return f.Has(FlagCompressed) }
func (f Flags) Encrypted() bool    { return f.Has(FlagEncrypted) }
func (f Flags) Distribution() bool { return f.Has(FlagDistribution) }
func (f Flags) Script() bool       { return f.Has(FlagScript) }
func (f Flags) DRM() bool          { return f.Has(FlagDRM) }
func (f Flags) XMLTemplate() bool  { return f.Has(FlagXMLTemplate) }
func (f Flags) History() bool      { return f.Has(FlagHistory) }
func (f Flags) Signed() bool       { return f.Has(FlagSigned) }

// String lists the set flags, e.g. "compressed|distribution".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if rest := f >> len(flagNames); rest != 0 {
		names = append(names, "unknown")
	}

	return strings.Join(names, "|")
}
