package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treescope/treescope/pkg/fonts"
	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/view"
	"github.com/treescope/treescope/pkg/viewer"
)

// viewCommand creates the view command for the interactive viewer.
func (c *CLI) viewCommand() *cobra.Command {
	f := layoutFlags{}

	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Open the interactive pan/zoom viewer for a directory",
		Long: `Open the interactive viewer for a directory tree.

Controls:
  left drag    pan
  mouse wheel  zoom (about the view center)
  right click  select the nearest node and show its label
  F11          toggle fullscreen
  Escape       quit

With no path argument, the root folder is prompted on stdin. Unless given
as flags, the label mode and vertical scale are prompted as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				p, err := promptString("Enter root folder path")
				if err != nil {
					return err
				}
				path = p
			}

			// Interactive fallbacks mirror the argument-less flow: only
			// prompt for what the user did not pass explicitly.
			if len(args) == 0 {
				if !cmd.Flags().Changed("labels") {
					f.labels = promptBool("Draw all labels?", f.labels)
				}
				if !cmd.Flags().Changed("yscale") {
					f.yscale = promptFloat("Y scale", f.yscale)
				}
			}

			return c.runView(path, f)
		},
	}

	c.addLayoutFlags(cmd, &f)
	return cmd
}

// runView scans, lays out, and opens the window. Blocks until the viewer
// exits.
func (c *CLI) runView(path string, f layoutFlags) error {
	opts := c.pipelineOptions(f)

	// The font is needed even with labels off: the selected node's label
	// is always drawn. Missing font is fatal before any layout work.
	fnt, err := fonts.Load(f.font)
	if err != nil {
		return err
	}
	measurer := fonts.NewMeasurer(fnt, opts.TextSize)

	runner := c.newRunner(true)
	defer runner.Close()

	p := newProgress(c.Logger)
	root, err := runner.Scan(path, opts)
	if err != nil {
		return err
	}
	cfg := runner.Position(root, measurer, opts)
	p.done(fmt.Sprintf("Scanned %d nodes", tree.Count(root)))

	// Start centered on the tree horizontally, unzoomed: one world unit
	// per pixel, like the initial windowed view.
	w := float64(c.Config.Window.Width)
	h := float64(c.Config.Window.Height)
	worldWidth := cfg.SlotWidth * float64(root.LeafCount)
	cam := view.New(worldWidth/2, h/2, w, h)

	v := viewer.New(root, cam, measurer.Face(), viewer.Options{
		Title:         c.Config.Window.Title,
		Width:         c.Config.Window.Width,
		Height:        c.Config.Window.Height,
		DrawAllLabels: f.labels,
	}, c.Logger)

	return v.Run()
}
