package enum

import (
	"io"
	"io/fs"
	"time"
)

// Scripted provider doubles for exercising the engine without a real
// filesystem.

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

type fakeEntry struct {
	name    string
	mode    fs.FileMode
	statErr error // injected deferred-stat failure
}

func (f fakeEntry) Name() string { return f.name }
func (f fakeEntry) IsDir() bool  { return f.mode.IsDir() }
func (f fakeEntry) Type() fs.FileMode {
	return f.mode & fs.ModeType
}

func (f fakeEntry) Info() (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	return fakeInfo{name: f.name, mode: f.mode}, nil
}

type fakeHandle struct {
	entries []fs.DirEntry
	readErr error // returned after entries are exhausted, instead of io.EOF
	idx     int
	closed  bool
}

func (h *fakeHandle) Next() (fs.DirEntry, error) {
	if h.idx >= len(h.entries) {
		if h.readErr != nil {
			return nil, h.readErr
		}
		return nil, io.EOF
	}
	e := h.entries[h.idx]
	h.idx++
	return e, nil
}

func (h *fakeHandle) Close() error {
	h.closed = true
	return nil
}

// fakeProvider maps directory paths to scripted handles.
type fakeProvider struct {
	dirs    map[string]*fakeHandle
	openErr map[string]error
	opened  []string
}

func (p *fakeProvider) Open(path string) (Handle, error) {
	p.opened = append(p.opened, path)
	if err, ok := p.openErr[path]; ok {
		return nil, err
	}
	h, ok := p.dirs[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return h, nil
}

func file(name string) fakeEntry {
	return fakeEntry{name: name, mode: 0o644}
}

func dir(name string) fakeEntry {
	return fakeEntry{name: name, mode: fs.ModeDir | 0o755}
}
