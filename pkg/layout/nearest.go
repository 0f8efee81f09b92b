package layout

import (
	"github.com/treescope/treescope/pkg/tree"
)

// Nearest returns the node whose position is closest to the world-space
// point (wx, wy) by squared Euclidean distance.
//
// The scan is exhaustive over all nodes, which is fine for event-driven
// picking: one query per pointer click, not per frame. Ties go to the
// first node encountered in pre-order, so results are reproducible.
// Returns nil only for a nil root.
func Nearest(root *tree.Node, wx, wy float64) *tree.Node {
	if root == nil {
		return nil
	}

	var best *tree.Node
	bestDist := 0.0
	stack := []*tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dx := n.X - wx
		dy := n.Y - wy
		if d := dx*dx + dy*dy; best == nil || d < bestDist {
			best = n
			bestDist = d
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return best
}
