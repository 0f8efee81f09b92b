package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golang/freetype/truetype"

	"github.com/treescope/treescope/pkg/fonts"
	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/render"
	"github.com/treescope/treescope/pkg/snapshot"
	"github.com/treescope/treescope/pkg/tree"
)

// renderCommand creates the render command for static PNG output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		width   int
		height  int
	)
	f := layoutFlags{}

	cmd := &cobra.Command{
		Use:   "render [path|layout.json]",
		Short: "Render a directory or layout snapshot to a PNG image",
		Long: `Render a directory tree to a static PNG overview.

The argument is either a directory (scanned and laid out first, with
caching) or a .layout.json snapshot produced by 'layout'. The whole tree
is fitted to the canvas; use 'view' for interactive pan/zoom.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], f, output, noCache, width, height)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.png)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&width, "width", 1600, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 1200, "canvas height in pixels")
	c.addLayoutFlags(cmd, &f)

	return cmd
}

// runRender loads or computes a layout and rasterizes it.
func (c *CLI) runRender(cmd *cobra.Command, input string, f layoutFlags, output string, noCache bool, width, height int) error {
	ctx := cmd.Context()
	opts := c.pipelineOptions(f)

	var fnt *truetype.Font
	var measurer layout.Measurer
	if f.labels {
		loaded, err := fonts.Load(f.font)
		if err != nil {
			return err
		}
		fnt = loaded
		measurer = fonts.NewMeasurer(loaded, opts.TextSize)
	}

	var root *tree.Node
	var base string
	if strings.HasSuffix(input, ".json") {
		l, err := snapshot.ReadFile(input)
		if err != nil {
			return fmt.Errorf("load snapshot %s: %w", input, err)
		}
		root, err = snapshot.ToTree(l)
		if err != nil {
			return err
		}
		base = strings.TrimSuffix(filepath.Base(input), ".layout.json")
	} else {
		abs, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", input, err)
		}

		runner := c.newRunner(noCache)
		defer runner.Close()

		spinner := newSpinner(ctx, "Computing layout...")
		l, _, err := runner.Layout(ctx, abs, measurer, opts)
		if err != nil {
			spinner.StopWithError("Layout failed")
			return err
		}
		spinner.Stop()

		root, err = snapshot.ToTree(l)
		if err != nil {
			return err
		}
		base = filepath.Base(abs)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := render.PNG(root, render.PNGOptions{
		Width:      width,
		Height:     height,
		DrawLabels: f.labels,
		Font:       fnt,
		TextSize:   opts.TextSize * 0.6, // smaller glyphs read better on a fitted overview
	})
	if err != nil {
		return fmt.Errorf("render PNG: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = base + ".png"
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printStats(tree.Count(root), tree.Count(root)-1, false)

	return nil
}
