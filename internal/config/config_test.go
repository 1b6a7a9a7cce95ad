package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/direnum/direnum/enum"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Scan.MaxDepth)
	assert.True(t, cfg.Scan.CaseSensitive)
	assert.False(t, cfg.Scan.IncludeHidden)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DIRENUM_MAX_DEPTH", "3")
	t.Setenv("DIRENUM_INCLUDE_HIDDEN", "true")
	t.Setenv("DIRENUM_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Scan.MaxDepth)
	assert.True(t, cfg.Scan.IncludeHidden)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("DIRENUM_MAX_DEPTH", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, Default(), cfg)
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
skip:
  - hidden
  - reparse
include:
  - "**/*.go"
exclude:
  - "**/vendor/**"
`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)

	mask, err := p.SkipAttributes()
	require.NoError(t, err)
	assert.Equal(t, enum.Hidden|enum.ReparsePoint, mask)
	assert.Equal(t, []string{"**/*.go"}, p.Include)
	assert.Equal(t, []string{"**/vendor/**"}, p.Exclude)
}

func TestLoadProfileRejectsUnknownAttribute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip: [sparkly]\n"), 0o644))

	_, err := LoadProfile(path)
	assert.ErrorContains(t, err, "sparkly")
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
