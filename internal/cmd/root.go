// Package cmd wires the direnum CLI on top of the enum engine.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/direnum/direnum/internal/config"
	"github.com/direnum/direnum/internal/logging"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command for direnum.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "direnum",
		Short: "Cross-platform directory tree enumerator",
		Long: `direnum lists directory trees with normalized attribute semantics:
hidden, read-only and reparse status mean the same thing whether the
platform stores them as attribute bits or derives them from names and
permission modes.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cfg := config.LoadOrDefault()
	log, err := logging.New(logging.Config(cfg.Logging))
	if err != nil {
		log = logging.NewNop()
	}

	cmd.AddCommand(NewListCommand(cfg, log))
	cmd.AddCommand(NewTreeCommand(cfg, log))

	return cmd
}
