// Package config loads CLI configuration from environment variables and
// optional YAML scan profiles.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/direnum/direnum/enum"
)

// Config holds all CLI configuration.
type Config struct {
	Scan    ScanConfig
	Logging LogConfig
}

// ScanConfig holds enumeration defaults.
type ScanConfig struct {
	MaxDepth       int  `envconfig:"DIRENUM_MAX_DEPTH" default:"0"`
	FollowSymlinks bool `envconfig:"DIRENUM_FOLLOW_SYMLINKS" default:"false"`
	CaseSensitive  bool `envconfig:"DIRENUM_CASE_SENSITIVE" default:"true"`
	IncludeHidden  bool `envconfig:"DIRENUM_INCLUDE_HIDDEN" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"DIRENUM_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"DIRENUM_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			CaseSensitive: true,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Profile is a named scan profile loaded from YAML. Profiles hold the
// filtering choices worth sharing between runs.
type Profile struct {
	// Skip lists attribute names ("hidden", "readonly", "directory",
	// "reparse") excluded before any predicate runs.
	Skip []string `yaml:"skip"`

	// Include lists doublestar glob patterns an entry must match.
	Include []string `yaml:"include"`

	// Exclude lists doublestar glob patterns that reject an entry.
	Exclude []string `yaml:"exclude"`
}

// LoadProfile reads a scan profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if _, err := p.SkipAttributes(); err != nil {
		return nil, err
	}
	return &p, nil
}

// SkipAttributes converts the profile's skip names to an attribute mask.
func (p *Profile) SkipAttributes() (enum.Attributes, error) {
	var mask enum.Attributes
	for _, name := range p.Skip {
		switch name {
		case "hidden":
			mask |= enum.Hidden
		case "readonly":
			mask |= enum.ReadOnly
		case "directory":
			mask |= enum.Directory
		case "reparse":
			mask |= enum.ReparsePoint
		default:
			return 0, fmt.Errorf("unknown skip attribute %q", name)
		}
	}
	return mask, nil
}
