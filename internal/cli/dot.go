package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treescope/treescope/pkg/render"
)

// dotCommand creates the dot command for Graphviz export.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output string
		svg    bool
		depth  int
		hidden bool
	)

	cmd := &cobra.Command{
		Use:   "dot [path]",
		Short: "Export the hierarchy as Graphviz DOT (optionally rendered to SVG)",
		Long: `Export the directory hierarchy as a Graphviz DOT graph.

DOT output goes to stdout unless --output is given. With --svg the graph
is rendered through Graphviz and written as SVG instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(args[0], output, svg, depth, hidden)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for DOT, <name>.svg for SVG)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render to SVG via Graphviz")
	cmd.Flags().IntVar(&depth, "depth", c.Config.Scan.MaxDepth, "maximum scan depth (0 = unlimited)")
	cmd.Flags().BoolVar(&hidden, "hidden", !c.Config.Scan.SkipHidden, "include hidden (dot) entries")

	return cmd
}

// runDot scans the tree and emits DOT or SVG. No layout pass is needed:
// Graphviz does its own positioning.
func (c *CLI) runDot(path, output string, svg bool, depth int, hidden bool) error {
	runner := c.newRunner(true)
	defer runner.Close()

	root, err := runner.Scan(path, c.pipelineOptions(layoutFlags{depth: depth, hidden: hidden, yscale: 1}))
	if err != nil {
		return err
	}

	dot := render.ToDOT(root)

	if !svg {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("DOT export complete")
		printFile(output)
		return nil
	}

	data, err := render.RenderSVG(dot)
	if err != nil {
		return fmt.Errorf("render SVG: %w", err)
	}
	if output == "" {
		output = root.Name + ".svg"
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("SVG export complete")
	printFile(output)
	return nil
}
