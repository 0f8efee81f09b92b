package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/treescope/treescope/pkg/tree"
)

// ToDOT converts a tree to Graphviz DOT format for node-link export.
// Node identifiers are pre-order indexes, so output is deterministic for
// a given tree. The resulting DOT string can be rendered with [RenderSVG]
// or any external Graphviz install.
func ToDOT(root *tree.Node) string {
	order := tree.PreOrder(root)
	index := make(map[*tree.Node]int, len(order))
	for i, n := range order {
		index[n] = i
	}

	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, n := range order {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, n.Name)
	}

	buf.WriteString("\n")
	for _, n := range order {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", index[n], index[c])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
