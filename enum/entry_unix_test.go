//go:build !windows

package enum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), perm))
	// WriteFile perm is masked by umask; force the exact bits.
	require.NoError(t, os.Chmod(path, perm))
	return path
}

func collect(t *testing.T, root string, opts Options, include func(*Entry) bool) []string {
	t.Helper()
	w := New(root, opts, Callbacks[string]{
		Include:   include,
		Transform: func(e *Entry) string { return e.Name() },
	})
	defer w.Close()

	var out []string
	for w.Next() {
		out = append(out, w.Value())
	}
	require.NoError(t, w.Err())
	return out
}

func TestHiddenFollowsDotConvention(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".b.txt", 0o644)
	writeFile(t, root, "a.txt", 0o444)

	// Hidden comes from the name alone, independent of permission bits.
	got := collect(t, root, Options{}, func(e *Entry) bool { return e.IsHidden() })
	assert.Equal(t, []string{".b.txt"}, got)
}

func TestReadOnlyFollowsOwnerWriteBit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 0o644)
	writeFile(t, root, ".b.txt", 0o644)

	require.NoError(t, os.Chmod(filepath.Join(root, "a.txt"), 0o444))

	got := collect(t, root, Options{}, func(e *Entry) bool { return e.IsReadOnly() })
	assert.Equal(t, []string{"a.txt"}, got)
}

func TestFreshFileNormalizesToNormal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.txt", 0o644)

	w := New(root, Options{}, Callbacks[Attributes]{
		Transform: func(e *Entry) Attributes { return e.Attributes() },
	})
	defer w.Close()

	require.True(t, w.Next())
	assert.True(t, w.Value().IsNormal())
	assert.False(t, w.Next())
}

func TestAttributesSurviveDeletion(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "doomed.txt", 0o444)

	w := New(root, Options{}, Callbacks[*Entry]{
		Transform: func(e *Entry) *Entry {
			// Resolve attributes, then pull the file out from under the view.
			assert.True(t, e.IsReadOnly())
			require.NoError(t, os.Remove(path))
			// Already-observed values must hold.
			assert.True(t, e.IsReadOnly())
			assert.False(t, e.IsHidden())
			assert.Equal(t, path, e.Path())
			return e
		},
	})
	defer w.Close()

	require.True(t, w.Next())
	assert.False(t, w.Next())
}

func TestPathSurvivesDirectoryDeletion(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	w := New(root, Options{}, Callbacks[string]{
		Include: func(e *Entry) bool {
			require.NoError(t, os.Remove(sub))
			return true
		},
		Transform: func(e *Entry) string { return e.Path() },
	})
	defer w.Close()

	require.True(t, w.Next())
	assert.Equal(t, sub, w.Value())
}

func TestSymlinkNormalizesToReparsePoint(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, root, "target.txt", 0o644)
	require.NoError(t, os.Symlink(target, filepath.Join(root, "alias")))

	got := collect(t, root, Options{}, func(e *Entry) bool {
		return e.Attributes().Has(ReparsePoint)
	})
	assert.Equal(t, []string{"alias"}, got)
}

func TestSymlinkedDirectoryNotDescendedByDefault(t *testing.T) {
	root := t.TempDir()
	real := filepath.Join(root, "real")
	require.NoError(t, os.Mkdir(real, 0o755))
	writeFile(t, real, "inner.txt", 0o644)
	require.NoError(t, os.Symlink(real, filepath.Join(root, "link")))

	got := collect(t, root, Options{Recurse: true}, nil)
	assert.ElementsMatch(t, []string{"real", "inner.txt", "link"}, got)

	followed := collect(t, root, Options{Recurse: true, FollowSymlinks: true}, nil)
	assert.ElementsMatch(t, []string{"real", "inner.txt", "link", "inner.txt"}, followed)
}

func TestUnreadableSubdirectorySkippedByPolicy(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeFile(t, locked, "secret.txt", 0o644)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	writeFile(t, root, "open.txt", 0o644)

	policyHits := 0
	w := New(root, Options{Recurse: true}, Callbacks[string]{
		Transform:       func(e *Entry) string { return e.Name() },
		ContinueOnError: func(err error) bool { policyHits++; return true },
	})
	defer w.Close()

	var got []string
	for w.Next() {
		got = append(got, w.Value())
	}
	require.NoError(t, w.Err())
	assert.ElementsMatch(t, []string{"locked", "open.txt"}, got)
	assert.Equal(t, 1, policyHits)
}
