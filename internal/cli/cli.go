// Package cli implements the treescope command-line interface.
//
// This package provides commands for opening the interactive viewer,
// computing and exporting tree layouts, and managing the layout cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - view: Open the interactive pan/zoom viewer for a directory
//   - layout: Compute a layout and write it as a JSON snapshot
//   - render: Render a directory or snapshot to a PNG image
//   - dot: Export the hierarchy as Graphviz DOT (optionally SVG)
//   - cache: Manage the layout cache
//   - config: Manage the configuration file
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/treescope/treescope/internal/config"
	"github.com/treescope/treescope/pkg/buildinfo"
	"github.com/treescope/treescope/pkg/cache"
	"github.com/treescope/treescope/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "treescope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration (defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Load(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treescope visualizes a directory tree as a pannable node-link diagram",
		Long:         `Treescope renders a filesystem hierarchy as a 2D node-link tree with pan/zoom navigation, nearest-node inspection, and static export to JSON, PNG, and Graphviz DOT.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/treescope/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// layoutFlags are the flags shared by every command that computes a layout.
type layoutFlags struct {
	labels   bool
	yscale   float64
	depth    int
	hidden   bool
	font     string
	textSize float64
}

// addLayoutFlags registers the shared layout flags with config-derived defaults.
func (c *CLI) addLayoutFlags(cmd *cobra.Command, f *layoutFlags) {
	cmd.Flags().BoolVar(&f.labels, "labels", c.Config.Labels.DrawAll, "draw a label on every node")
	cmd.Flags().Float64Var(&f.yscale, "yscale", c.Config.Layout.YScale, "vertical scale factor")
	cmd.Flags().IntVar(&f.depth, "depth", c.Config.Scan.MaxDepth, "maximum scan depth (0 = unlimited)")
	cmd.Flags().BoolVar(&f.hidden, "hidden", !c.Config.Scan.SkipHidden, "include hidden (dot) entries")
	cmd.Flags().StringVar(&f.font, "font", c.Config.Labels.Font, "label font file name (empty = auto-detect)")
	cmd.Flags().Float64Var(&f.textSize, "text-size", c.Config.Labels.Size, "label glyph size in pixels")
}

// pipelineOptions translates flags into pipeline options.
func (c *CLI) pipelineOptions(f layoutFlags) pipeline.Options {
	opts := pipeline.Options{
		Labels:         f.labels,
		YScale:         f.yscale,
		TextSize:       f.textSize,
		FontName:       f.font,
		VerticalExtent: float64(c.Config.Window.Height),
		MaxDepth:       f.depth,
		SkipHidden:     !f.hidden,
	}
	opts.SetDefaults()
	return opts
}
