package layout

import (
	"github.com/treescope/treescope/pkg/tree"
)

// HorizontalPadding is the slack added to the widest label when sizing
// leaf slots. With no labels the slot width collapses to this value.
const HorizontalPadding = 10.0

// Config holds the two spacing parameters of the layout.
type Config struct {
	SlotWidth float64 // horizontal spacing per leaf column
	RowHeight float64 // vertical spacing per depth level
}

// Measurer reports the rendered pixel width of a label string.
// pkg/fonts provides the production implementation.
type Measurer interface {
	Width(s string) float64
}

// SlotWidth returns the horizontal spacing allocated per leaf column.
// Sizing slots to the widest label guarantees no two leaf labels can
// overlap regardless of tree shape. Pass 0 when labels are not drawn.
func SlotWidth(maxLabelWidth float64) float64 {
	return maxLabelWidth + HorizontalPadding
}

// RowHeight returns the vertical spacing per depth level. Deeper trees get
// proportionally tighter rows so the whole tree stays within the
// configured vertical budget.
func RowHeight(yScale, verticalExtent float64, totalLevels int) float64 {
	return yScale * verticalExtent / float64(totalLevels)
}

// MaxLabelWidth returns the widest label in the tree as measured by m.
func MaxLabelWidth(root *tree.Node, m Measurer) float64 {
	var maxW float64
	for _, n := range tree.PreOrder(root) {
		if w := m.Width(n.Name); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// Assign positions every node of a metrics-decorated tree in place.
//
// Two passes over the same pre-order sequence:
//
//  1. Forward: y = depth * RowHeight for every node; each leaf takes
//     x = (leafIndex + 0.5) * SlotWidth, with a single counter shared
//     across the whole traversal. Leaves end up on a uniform grid ordered
//     exactly as they appear in the tree.
//  2. Backward: each internal node takes the midpoint of its first and
//     last child's x. Not the mean of all children: a far outlier child
//     pulls the parent to the span midpoint, not proportionally to child
//     count. A single-child node inherits that child's x exactly.
//
// The backward pass sees children before parents because pre-order lists
// parents first.
func Assign(root *tree.Node, cfg Config) {
	order := tree.PreOrder(root)

	leafIndex := 0
	for _, n := range order {
		n.Y = float64(n.Depth) * cfg.RowHeight
		if n.IsLeaf() {
			n.X = (float64(leafIndex) + 0.5) * cfg.SlotWidth
			leafIndex++
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if !n.IsLeaf() {
			first := n.Children[0]
			last := n.Children[len(n.Children)-1]
			n.X = (first.X + last.X) / 2
		}
	}
}
