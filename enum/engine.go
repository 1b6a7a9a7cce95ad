package enum

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type state uint8

const (
	stateNotStarted state = iota
	stateEnumerating
	stateExhausted
	stateErrored
	stateClosed
)

// Walker drives one enumeration: a lazy, single-pass, pre-order depth-first
// traversal rooted at one directory. Each successful Next consumes exactly
// one raw entry and produces exactly one transformed value.
//
// A Walker holds mutable cursor and handle-stack state and is not safe for
// concurrent Next calls without external synchronization. Re-enumerating
// requires a new Walker.
type Walker[T any] struct {
	root string
	opts Options
	cb   Callbacks[T]
	prov Provider
	log  *zap.Logger

	state     state
	advancing bool
	levels    []*level
	value     T
	err       error
	pending   *OpError // policy-rejected attribute error, surfaced on the next advance
}

// level is one open directory listing on the traversal stack.
type level struct {
	handle Handle
	dir    string
	depth  int
}

// New constructs a Walker rooted at root. Callbacks.Transform must be
// non-nil. No handle is opened until the first Next call.
func New[T any](root string, opts Options, cb Callbacks[T]) *Walker[T] {
	if cb.Transform == nil {
		panic("enum: Callbacks.Transform is required")
	}
	prov := opts.Provider
	if prov == nil {
		prov = osProvider{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	} else {
		log = log.With(
			zap.String("enumeration", uuid.NewString()),
			zap.String("root", root),
		)
	}
	return &Walker[T]{root: root, opts: opts, cb: cb, prov: prov, log: log}
}

// Next advances to the next entry. It returns false once the enumeration is
// exhausted or aborted; Err distinguishes the two. Calling Next again after
// false keeps returning false. Calling Next after Close, or reentrantly from
// a callback, panics: that is misuse, not a recoverable condition.
func (w *Walker[T]) Next() bool {
	switch w.state {
	case stateClosed:
		panic("enum: Next called after Close")
	case stateExhausted, stateErrored:
		return false
	}
	if w.advancing {
		panic("enum: reentrant Next")
	}
	w.advancing = true
	defer func() { w.advancing = false }()

	if w.pending != nil {
		return w.fail(w.pending)
	}
	if w.state == stateNotStarted {
		w.state = stateEnumerating
		w.descend(w.root, 0)
	}
	return w.advance()
}

// Value returns the transform result produced by the most recent successful
// Next.
func (w *Walker[T]) Value() T {
	return w.value
}

// Err returns the terminal error, if any, once Next has returned false.
// Values yielded before the failure remain valid.
func (w *Walker[T]) Err() error {
	return w.err
}

// Close releases every open directory handle up the stack. Closing is how an
// enumeration is abandoned early; it is idempotent, but any Next call after
// Close panics.
func (w *Walker[T]) Close() error {
	if w.state == stateClosed {
		return nil
	}
	err := w.closeAll()
	w.state = stateClosed
	return err
}

// advance pulls raw entries until one survives the skip mask, kind filter
// and Include predicate, descending and popping levels along the way.
func (w *Walker[T]) advance() bool {
	for w.state == stateEnumerating {
		if len(w.levels) == 0 {
			w.state = stateExhausted
			return false
		}
		top := w.levels[len(w.levels)-1]

		raw, err := top.handle.Next()
		if errors.Is(err, io.EOF) {
			w.pop()
			continue
		}
		if err != nil {
			// The handle is unreliable after a read error, so the level is
			// dropped whether or not the policy continues.
			oe := &OpError{Op: "read", Path: top.dir, Err: err}
			w.pop()
			if w.allow(oe) {
				continue
			}
			return w.fail(oe)
		}

		e := &Entry{raw: raw, dir: top.dir, depth: top.depth, onError: w.attrError}

		if w.opts.Skip != Normal && e.Attributes()&w.opts.Skip != 0 {
			w.log.Debug("skipped by attribute mask",
				zap.String("name", e.Name()),
				zap.Stringer("attrs", e.Attributes()))
			continue
		}

		// Descend before yielding so children follow their directory in
		// pre-order. The recurse decision is independent of Include.
		if w.opts.Recurse && w.shouldDescend(e) && (w.cb.Recurse == nil || w.cb.Recurse(e)) {
			w.descend(e.Path(), top.depth+1)
			if w.state != stateEnumerating {
				return false
			}
		}

		if !w.wantKind(e.IsDir()) {
			continue
		}
		if w.cb.Include != nil && !w.cb.Include(e) {
			continue
		}
		w.value = w.cb.Transform(e)
		return true
	}
	return false
}

// descend opens path and pushes it as the new current level. Open failures
// go through the error policy: continue means the subtree is skipped.
func (w *Walker[T]) descend(path string, depth int) {
	h, err := w.prov.Open(path)
	if err != nil {
		oe := &OpError{Op: "open", Path: path, Err: err}
		if !w.allow(oe) {
			w.fail(oe)
		}
		return
	}
	w.levels = append(w.levels, &level{handle: h, dir: path, depth: depth})
	w.log.Debug("descended", zap.String("dir", path), zap.Int("depth", depth))
}

// shouldDescend reports whether e is a directory eligible for descent under
// the depth cap and symlink policy.
func (w *Walker[T]) shouldDescend(e *Entry) bool {
	if w.opts.MaxDepth > 0 && e.depth+1 > w.opts.MaxDepth {
		return false
	}
	if e.raw.IsDir() {
		return true
	}
	if w.opts.FollowSymlinks && e.raw.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(e.Path())
		return err == nil && info.IsDir()
	}
	return false
}

func (w *Walker[T]) wantKind(isDir bool) bool {
	k := w.opts.Kinds
	if k == 0 {
		return true
	}
	if isDir {
		return k&Dirs != 0
	}
	return k&Files != 0
}

// allow consults the caller's error policy for a recoverable failure.
func (w *Walker[T]) allow(oe *OpError) bool {
	if w.cb.ContinueOnError != nil && w.cb.ContinueOnError(oe) {
		w.log.Debug("recoverable error skipped",
			zap.String("op", oe.Op),
			zap.String("path", oe.Path),
			zap.Error(oe.Err))
		return true
	}
	return false
}

// attrError handles a deferred-stat failure reported by an Entry. The view
// has already degraded to listing-time attributes; if the policy rejects the
// error it is surfaced at the next advance, per the enumeration contract.
func (w *Walker[T]) attrError(oe *OpError) {
	if !w.allow(oe) && w.pending == nil {
		w.pending = oe
	}
}

func (w *Walker[T]) fail(err error) bool {
	w.err = err
	w.state = stateErrored
	w.closeAll() //nolint:errcheck // the traversal error takes precedence
	return false
}

func (w *Walker[T]) pop() {
	top := w.levels[len(w.levels)-1]
	if err := top.handle.Close(); err != nil {
		w.log.Debug("handle close failed", zap.String("dir", top.dir), zap.Error(err))
	}
	w.levels = w.levels[:len(w.levels)-1]
}

func (w *Walker[T]) closeAll() error {
	var first error
	for i := len(w.levels) - 1; i >= 0; i-- {
		if err := w.levels[i].handle.Close(); err != nil && first == nil {
			first = err
		}
	}
	w.levels = nil
	return first
}
