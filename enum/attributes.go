package enum

import "strings"

// Attributes is a normalized bit set of file attributes, consistent across
// attribute-bit and mode-bit platforms.
type Attributes uint32

const (
	// ReadOnly marks entries that cannot be written: the read-only flag on
	// Windows, absence of owner-write permission elsewhere.
	ReadOnly Attributes = 1 << iota

	// Hidden marks entries hidden from normal listings: the hidden flag on
	// Windows, a leading-dot name elsewhere.
	Hidden

	// Directory marks directory entries.
	Directory

	// ReparsePoint marks symbolic links and Windows reparse points.
	ReparsePoint

	// Normal is the zero value: no special attribute applies. It is reported
	// only when no other bit is set.
	Normal Attributes = 0
)

// Has reports whether all bits in attr are set.
func (a Attributes) Has(attr Attributes) bool {
	return a&attr == attr
}

// IsNormal reports whether no attribute bit is set.
func (a Attributes) IsNormal() bool {
	return a == Normal
}

// String returns a pipe-separated list of set attribute names.
func (a Attributes) String() string {
	if a == Normal {
		return "normal"
	}
	var names []string
	for _, f := range []struct {
		bit  Attributes
		name string
	}{
		{ReadOnly, "readonly"},
		{Hidden, "hidden"},
		{Directory, "directory"},
		{ReparsePoint, "reparse"},
	} {
		if a.Has(f.bit) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}
