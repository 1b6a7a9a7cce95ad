package enum

import (
	"io/fs"
	"path/filepath"
)

// Entry is a transient view over one raw directory entry plus its
// enumeration context. An Entry is only valid during the advance that
// produced it; callbacks must not retain it past their return.
type Entry struct {
	raw   fs.DirEntry
	dir   string // parent directory path, borrowed from the engine
	depth int

	path string // joined once, then cached

	attrs         Attributes
	attrsResolved bool

	onError func(*OpError) // engine hook for deferred-stat failures
}

// Name returns the entry's base name.
func (e *Entry) Name() string {
	return e.raw.Name()
}

// Path returns the entry's full path. Construction is pure string joining,
// computed once and cached, so it succeeds even if the entry has since been
// deleted or renamed.
func (e *Entry) Path() string {
	if e.path == "" {
		e.path = filepath.Join(e.dir, e.raw.Name())
	}
	return e.path
}

// Depth returns how many directories below the enumeration root the entry
// sits. Direct children of the root are at depth 0.
func (e *Entry) Depth() int {
	return e.depth
}

// IsDir reports whether the entry is a directory, from the cheap listing
// type bits. It never triggers a metadata query.
func (e *Entry) IsDir() bool {
	return e.raw.IsDir()
}

// Attributes returns the normalized attribute set. Resolution runs at most
// once per entry and is cached, so deleting or replacing the underlying file
// between queries cannot change the observed values. If the deferred
// metadata query fails, the entry degrades to the attributes knowable from
// the listing step alone and the enumeration's error policy is consulted.
func (e *Entry) Attributes() Attributes {
	if !e.attrsResolved {
		a, err := fullAttributes(e.raw.Name(), e.raw)
		if err != nil && e.onError != nil {
			e.onError(&OpError{Op: "stat", Path: e.Path(), Err: err})
		}
		e.attrs = a
		e.attrsResolved = true
	}
	return e.attrs
}

// IsHidden reports whether the entry is hidden: the hidden attribute bit on
// Windows, a leading-dot name elsewhere.
func (e *Entry) IsHidden() bool {
	return e.Attributes().Has(Hidden)
}

// IsReadOnly reports whether the entry cannot be written.
func (e *Entry) IsReadOnly() bool {
	return e.Attributes().Has(ReadOnly)
}
