// Package layout assigns deterministic 2D world coordinates to a
// filesystem tree and answers nearest-node queries against the result.
//
// The layout is a uniform leaf grid: every leaf occupies one horizontal
// slot in pre-order, every depth level occupies one row, and every internal
// node sits at the midpoint of its first and last child. The arithmetic is
// total over a well-formed tree; there are no failure modes.
//
// # Usage
//
//	leaves, maxDepth := tree.ComputeMetrics(root)
//	cfg := layout.Config{
//	    SlotWidth: layout.SlotWidth(layout.MaxLabelWidth(root, measurer)),
//	    RowHeight: layout.RowHeight(yScale, 800, maxDepth+1),
//	}
//	layout.Assign(root, cfg)
package layout
