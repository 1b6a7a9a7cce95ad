package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/direnum/direnum/enum"
	"github.com/direnum/direnum/internal/config"
	"github.com/direnum/direnum/internal/logging"
)

// NewTreeCommand creates the tree subcommand.
func NewTreeCommand(cfg *config.Config, log *logging.Logger) *cobra.Command {
	var maxDepth int
	var hidden bool

	cmd := &cobra.Command{
		Use:   "tree <root>",
		Short: "Print an indented directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0], cfg, log, maxDepth, hidden)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", cfg.Scan.MaxDepth, "max recursion depth (0 = unlimited)")
	cmd.Flags().BoolVar(&hidden, "hidden", cfg.Scan.IncludeHidden, "include hidden entries")

	return cmd
}

type treeLine struct {
	name  string
	depth int
	dir   bool
}

func runTree(root string, cfg *config.Config, log *logging.Logger, maxDepth int, hidden bool) error {
	opts := enum.Options{
		Recurse:        true,
		MaxDepth:       maxDepth,
		CaseSensitive:  cfg.Scan.CaseSensitive,
		FollowSymlinks: cfg.Scan.FollowSymlinks,
		Logger:         log.Logger,
	}
	if !hidden {
		opts.Skip = enum.Hidden
	}

	w := enum.New(root, opts, enum.Callbacks[treeLine]{
		Transform: func(e *enum.Entry) treeLine {
			return treeLine{name: e.Name(), depth: e.Depth(), dir: e.IsDir()}
		},
		ContinueOnError: func(err error) bool {
			log.Warn("subtree skipped", zap.Error(err))
			return true
		},
	})
	defer w.Close()

	useColor := isatty.IsTerminal(os.Stdout.Fd())
	fmt.Println(filepath.Base(root) + string(os.PathSeparator))
	for w.Next() {
		line := w.Value()
		indent := strings.Repeat("  ", line.depth+1)
		name := line.name
		if line.dir {
			name += string(os.PathSeparator)
			if useColor {
				name = color.BlueString(name)
			}
		}
		fmt.Println(indent + name)
	}
	return w.Err()
}
