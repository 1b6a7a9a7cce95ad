package enum

import (
	"strings"

	"go.uber.org/zap"
)

// Kind selects which entry kinds an enumeration yields.
type Kind uint8

const (
	// Files yields non-directory entries.
	Files Kind = 1 << iota
	// Dirs yields directory entries.
	Dirs
)

// Options configures one enumeration. The zero value lists a single level,
// yields files and directories, skips nothing and aborts on the first
// recoverable error.
type Options struct {
	// Recurse enables descent into subdirectories.
	Recurse bool

	// MaxDepth caps recursion depth when Recurse is set. 0 means unlimited.
	// Directories past the cap are still yielded, just not descended into.
	MaxDepth int

	// Skip excludes entries whose attributes intersect this set before any
	// callback runs.
	Skip Attributes

	// Kinds restricts the yielded entry kinds. Zero means files and
	// directories. Kinds never affects descent decisions.
	Kinds Kind

	// CaseSensitive controls name comparisons performed by helpers built on
	// top of the enumeration, such as the filter package.
	CaseSensitive bool

	// FollowSymlinks descends into directories reached through symbolic
	// links. Loop detection is the caller's concern.
	FollowSymlinks bool

	// Provider overrides the raw listing source. Nil means the operating
	// system.
	Provider Provider

	// Logger receives debug-level traces of descents, skips and error-policy
	// decisions. Nil disables tracing.
	Logger *zap.Logger
}

// NameEqual compares two names under the configured case sensitivity.
func (o Options) NameEqual(a, b string) bool {
	if o.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// Callbacks supply the caller's half of the enumeration contract, composed
// at construction time.
type Callbacks[T any] struct {
	// Include decides whether an entry is yielded. Nil includes everything.
	// Entries excluded by Options.Skip never reach Include.
	Include func(*Entry) bool

	// Recurse decides whether a directory is descended into. Consulted only
	// when Options.Recurse is set, and independently of Include: a directory
	// Include rejects may still be recursed. Nil descends everywhere.
	Recurse func(*Entry) bool

	// Transform produces the yielded value. Required.
	Transform func(*Entry) T

	// ContinueOnError is consulted for recoverable listing and metadata
	// failures. Returning true discards the failing entry or level and
	// continues; false aborts the enumeration. Nil aborts on first failure.
	ContinueOnError func(error) bool
}
