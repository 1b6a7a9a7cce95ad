package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gabriel-vasile/mimetype"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/direnum/direnum/enum"
	"github.com/direnum/direnum/enum/filter"
	"github.com/direnum/direnum/internal/config"
	"github.com/direnum/direnum/internal/logging"
)

type listFlags struct {
	recursive  bool
	maxDepth   int
	glob       string
	hidden     bool
	kind       string
	follow     bool
	detectType bool
	jsonOut    bool
	profile    string
}

// listEntry is the record emitted per enumerated entry.
type listEntry struct {
	Path       string `json:"path"`
	Dir        bool   `json:"dir"`
	Hidden     bool   `json:"hidden,omitempty"`
	ReadOnly   bool   `json:"readonly,omitempty"`
	Attributes string `json:"attributes"`
	MIMEType   string `json:"mime_type,omitempty"`
}

// NewListCommand creates the list subcommand.
func NewListCommand(cfg *config.Config, log *logging.Logger) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list <root>",
		Short: "Enumerate a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], cfg, log, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", cfg.Scan.MaxDepth, "max recursion depth (0 = unlimited)")
	cmd.Flags().StringVarP(&flags.glob, "glob", "g", "", "doublestar pattern entries must match (e.g. '**/*.go')")
	cmd.Flags().BoolVar(&flags.hidden, "hidden", cfg.Scan.IncludeHidden, "include hidden entries")
	cmd.Flags().StringVarP(&flags.kind, "type", "t", "", "restrict to 'file' or 'dir' entries")
	cmd.Flags().BoolVar(&flags.follow, "follow", cfg.Scan.FollowSymlinks, "follow symlinked directories")
	cmd.Flags().BoolVar(&flags.detectType, "mime", false, "detect MIME type of yielded files")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "emit one JSON object per line")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "YAML scan profile path")

	return cmd
}

func runList(root string, cfg *config.Config, log *logging.Logger, flags listFlags) error {
	opts, include, err := buildScan(root, cfg, log, flags)
	if err != nil {
		return err
	}

	w := enum.New(root, opts, enum.Callbacks[listEntry]{
		Include:   include,
		Transform: describeEntry(flags.detectType),
		ContinueOnError: func(err error) bool {
			log.Warn("entry skipped", zap.Error(err))
			return true
		},
	})
	defer w.Close()

	useColor := !flags.jsonOut && isatty.IsTerminal(os.Stdout.Fd())
	out := json.NewEncoder(os.Stdout)
	count := 0
	for w.Next() {
		e := w.Value()
		count++
		if flags.jsonOut {
			if err := out.Encode(e); err != nil {
				return err
			}
			continue
		}
		printEntry(e, useColor)
	}
	if err := w.Err(); err != nil {
		return err
	}
	log.Debug("enumeration finished", zap.String("root", root), zap.Int("entries", count))
	return nil
}

// buildScan translates CLI flags and the optional profile into engine
// options plus the include predicate.
func buildScan(root string, cfg *config.Config, log *logging.Logger, flags listFlags) (enum.Options, filter.Predicate, error) {
	opts := enum.Options{
		Recurse:        flags.recursive,
		MaxDepth:       flags.maxDepth,
		CaseSensitive:  cfg.Scan.CaseSensitive,
		FollowSymlinks: flags.follow,
		Logger:         log.Logger,
	}
	if !flags.hidden {
		opts.Skip |= enum.Hidden
	}

	var preds []filter.Predicate
	switch flags.kind {
	case "":
	case "file":
		opts.Kinds = enum.Files
	case "dir":
		opts.Kinds = enum.Dirs
	default:
		return opts, nil, fmt.Errorf("unknown --type %q (want 'file' or 'dir')", flags.kind)
	}

	if flags.glob != "" {
		if cfg.Scan.CaseSensitive {
			preds = append(preds, filter.Glob(flags.glob))
		} else {
			preds = append(preds, filter.GlobFold(flags.glob))
		}
	}

	if flags.profile != "" {
		p, err := config.LoadProfile(flags.profile)
		if err != nil {
			return opts, nil, err
		}
		mask, err := p.SkipAttributes()
		if err != nil {
			return opts, nil, err
		}
		opts.Skip |= mask
		for _, pattern := range p.Include {
			preds = append(preds, filter.Glob(pattern))
		}
		for _, pattern := range p.Exclude {
			preds = append(preds, filter.Not(filter.Glob(pattern)))
		}
	}

	if len(preds) == 0 {
		return opts, nil, nil
	}
	return opts, filter.All(preds...), nil
}

func describeEntry(detectType bool) func(*enum.Entry) listEntry {
	return func(e *enum.Entry) listEntry {
		out := listEntry{
			Path:       e.Path(),
			Dir:        e.IsDir(),
			Hidden:     e.IsHidden(),
			ReadOnly:   e.IsReadOnly(),
			Attributes: e.Attributes().String(),
		}
		if detectType && !e.IsDir() {
			if mtype, err := mimetype.DetectFile(e.Path()); err == nil {
				out.MIMEType = mtype.String()
			}
		}
		return out
	}
}

func printEntry(e listEntry, useColor bool) {
	name := e.Path
	if e.Dir {
		name += string(os.PathSeparator)
		if useColor {
			name = color.BlueString(name)
		}
	} else if useColor && e.ReadOnly {
		name = color.YellowString(name)
	}
	if e.MIMEType != "" {
		fmt.Printf("%s\t%s\n", name, e.MIMEType)
		return
	}
	fmt.Println(name)
}
