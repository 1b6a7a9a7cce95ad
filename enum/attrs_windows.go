//go:build windows

package enum

import (
	"io/fs"
	"syscall"
)

// quickAttributes derives the attributes knowable from the listing step
// alone. Windows resolves the full flag set at listing time, so this is
// only consulted when the payload is unavailable.
func quickAttributes(name string, typ fs.FileMode) Attributes {
	var a Attributes
	if typ.IsDir() {
		a |= Directory
	}
	if typ&fs.ModeSymlink != 0 {
		a |= ReparsePoint
	}
	return a
}

// fullAttributes reads the FILE_ATTRIBUTE_* bits carried by the listing
// payload. Info does not hit the disk again on this platform.
func fullAttributes(name string, raw fs.DirEntry) (Attributes, error) {
	info, err := raw.Info()
	if err != nil {
		return quickAttributes(name, raw.Type()), err
	}
	sys, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		// Non-OS payload (e.g. a synthetic provider): fall back to mode bits.
		a := quickAttributes(name, info.Mode())
		if info.Mode()&0o200 == 0 {
			a |= ReadOnly
		}
		return a, nil
	}

	var a Attributes
	fa := sys.FileAttributes
	if fa&syscall.FILE_ATTRIBUTE_DIRECTORY != 0 {
		a |= Directory
	}
	if fa&syscall.FILE_ATTRIBUTE_HIDDEN != 0 {
		a |= Hidden
	}
	if fa&syscall.FILE_ATTRIBUTE_READONLY != 0 {
		a |= ReadOnly
	}
	if fa&syscall.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		a |= ReparsePoint
	}
	return a, nil
}
