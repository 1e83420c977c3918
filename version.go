package yad

import "fmt"

// Version is the YAD container's format version header: four independent
// uint8 components, emitted verbatim as the four bytes following the
// 0xF0 marker (§4.7). There is no semantic version comparison in the wire
// format itself; Version is carried through encode/decode unchanged.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
	Beta  uint8
}

// String renders v as "major.minor.patch-beta(N)", matching the worked
// example in §6 (e.g. "0.0.1-beta(1)").
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d-beta(%d)", v.Major, v.Minor, v.Patch, v.Beta)
}
