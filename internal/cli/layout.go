package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/treescope/treescope/pkg/fonts"
	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/snapshot"
)

// layoutCommand creates the layout command for computing tree layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	f := layoutFlags{}

	cmd := &cobra.Command{
		Use:   "layout [path]",
		Short: "Compute a tree layout and write it as a JSON snapshot",
		Long: `Compute a tree layout and write it as a JSON snapshot.

The layout command scans the directory, assigns world coordinates to
every node, and writes a <name>.layout.json snapshot. The snapshot can be
rendered to PNG with 'render' without re-scanning the filesystem.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], f, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	c.addLayoutFlags(cmd, &f)

	return cmd
}

// runLayout computes the layout and writes the snapshot file.
func (c *CLI) runLayout(cmd *cobra.Command, path string, f layoutFlags, output string, noCache bool) error {
	ctx := cmd.Context()
	opts := c.pipelineOptions(f)

	var measurer layout.Measurer
	if f.labels {
		fnt, err := fonts.Load(f.font)
		if err != nil {
			return err
		}
		measurer = fonts.NewMeasurer(fnt, opts.TextSize)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	runner := c.newRunner(noCache)
	defer runner.Close()

	spinner := newSpinner(ctx, "Computing layout...")
	l, cacheHit, err := runner.Layout(ctx, abs, measurer, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = filepath.Base(abs) + ".layout.json"
	}

	if err := snapshot.WriteFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Nodes), len(l.Edges), cacheHit)
	printNewline()
	printNextStep("Render", "treescope render "+outputPath)

	return nil
}
