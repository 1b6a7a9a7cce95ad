//go:build !windows

package enum

import (
	"io/fs"
	"strings"
)

// Name convention marking hidden entries on mode-bit platforms.
const hiddenPrefix = "."

// quickAttributes derives the attributes knowable from the listing step
// alone: file-type bits and the name convention. No stat required.
func quickAttributes(name string, typ fs.FileMode) Attributes {
	var a Attributes
	if typ.IsDir() {
		a |= Directory
	}
	if typ&fs.ModeSymlink != 0 {
		a |= ReparsePoint
	}
	if strings.HasPrefix(name, hiddenPrefix) {
		a |= Hidden
	}
	return a
}

// fullAttributes resolves the complete attribute set. On mode-bit platforms
// read-only means the owner-write permission bit is absent, which requires
// the entry's deferred stat. On failure the attributes knowable without the
// stat are returned alongside the error.
func fullAttributes(name string, raw fs.DirEntry) (Attributes, error) {
	info, err := raw.Info()
	if err != nil {
		return quickAttributes(name, raw.Type()), err
	}
	a := quickAttributes(name, info.Mode())
	if info.Mode()&0o200 == 0 {
		a |= ReadOnly
	}
	return a, nil
}
