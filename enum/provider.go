package enum

import (
	"io/fs"
	"os"
)

// Provider supplies raw directory listings, one level at a time. The default
// provider reads from the operating system; tests substitute their own.
type Provider interface {
	// Open starts a listing of the named directory.
	Open(path string) (Handle, error)
}

// Handle is one open directory listing. A raw entry obtained from Next is
// only valid until the following Next or Close call.
type Handle interface {
	// Next returns the next raw entry, or io.EOF once the level is
	// exhausted.
	Next() (fs.DirEntry, error)

	// Close releases the listing. Safe to call once the handle is exhausted
	// or abandoned.
	Close() error
}

// Batch size for the OS adapter. Batching happens inside the adapter only;
// the engine still consumes exactly one entry per advance.
const readDirBatch = 64

type osProvider struct{}

func (osProvider) Open(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osHandle{f: f}, nil
}

type osHandle struct {
	f   *os.File
	buf []fs.DirEntry
}

func (h *osHandle) Next() (fs.DirEntry, error) {
	if len(h.buf) == 0 {
		entries, err := h.f.ReadDir(readDirBatch)
		if err != nil {
			// io.EOF at end of level, otherwise a listing error.
			return nil, err
		}
		h.buf = entries
	}
	e := h.buf[0]
	h.buf = h.buf[1:]
	return e, nil
}

func (h *osHandle) Close() error {
	h.buf = nil
	return h.f.Close()
}
