package header

import "fmt"

// Version is the four-part format version, compared field by field from Major down.
type Version struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Revision uint8
}

// DefaultVersion is written by the authoring session unless overridden.
var DefaultVersion = Version{Major: 5, Minor: 1, Build: 0, Revision: 1}

// VersionFromUint32 unpacks the on-disk word (major in the high byte).
func VersionFromUint32(v uint32) Version {
	return Version{
		Major:    uint8(v >> 24),
		Minor:    uint8(v >> 16),
		Build:    uint8(v >> 8),
		Revision: uint8(v),
	}
}

// Uint32 packs v into its on-disk word.
func (v Version) Uint32() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16 | uint32(v.Build)<<8 | uint32(v.Revision)
}

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	return v.Uint32() >= o.Uint32()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}
