// Package filter builds composable include/recurse predicates for enum
// walkers: glob patterns, extensions, attribute checks and boolean
// combinators.
package filter

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/direnum/direnum/enum"
)

// Predicate decides whether an entry passes a filter.
type Predicate func(*enum.Entry) bool

// Glob matches the entry's slash-normalized path against a doublestar
// pattern, so "**/*.go" works across directory levels. An invalid pattern
// matches nothing.
func Glob(pattern string) Predicate {
	return func(e *enum.Entry) bool {
		ok, err := doublestar.Match(pattern, filepath.ToSlash(e.Path()))
		return err == nil && ok
	}
}

// GlobFold is Glob with case folding applied to pattern and path.
func GlobFold(pattern string) Predicate {
	lowered := strings.ToLower(pattern)
	return func(e *enum.Entry) bool {
		ok, err := doublestar.Match(lowered, strings.ToLower(filepath.ToSlash(e.Path())))
		return err == nil && ok
	}
}

// Ext matches entries whose extension is one of exts (with or without the
// leading dot). Comparison honors the enumeration's case sensitivity.
func Ext(opts enum.Options, exts ...string) Predicate {
	normalized := make([]string, len(exts))
	for i, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[i] = ext
	}
	return func(e *enum.Entry) bool {
		got := filepath.Ext(e.Name())
		for _, want := range normalized {
			if opts.NameEqual(got, want) {
				return true
			}
		}
		return false
	}
}

// Named matches entries whose base name equals name under the enumeration's
// case sensitivity.
func Named(opts enum.Options, name string) Predicate {
	return func(e *enum.Entry) bool {
		return opts.NameEqual(e.Name(), name)
	}
}

// Hidden matches hidden entries.
func Hidden() Predicate {
	return func(e *enum.Entry) bool { return e.IsHidden() }
}

// Visible matches entries that are not hidden.
func Visible() Predicate {
	return Not(Hidden())
}

// ReadOnly matches read-only entries.
func ReadOnly() Predicate {
	return func(e *enum.Entry) bool { return e.IsReadOnly() }
}

// Dirs matches directories.
func Dirs() Predicate {
	return func(e *enum.Entry) bool { return e.IsDir() }
}

// Files matches non-directories.
func Files() Predicate {
	return Not(Dirs())
}

// All matches entries passing every predicate. With no predicates it matches
// everything.
func All(preds ...Predicate) Predicate {
	return func(e *enum.Entry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Any matches entries passing at least one predicate.
func Any(preds ...Predicate) Predicate {
	return func(e *enum.Entry) bool {
		for _, p := range preds {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(e *enum.Entry) bool { return !p(e) }
}
