// Package tree models a filesystem hierarchy as an ordered rooted tree.
//
// A tree is built once by [Scan], decorated with derived metrics by
// [ComputeMetrics], positioned by the layout engine, and then treated as
// read-only for the rest of the session. Sibling order is stable and
// significant: it determines the left-to-right leaf ordering and therefore
// the horizontal ordering of the final layout.
package tree

// Node is a single filesystem entry. The parent exclusively owns its
// children; there are no cycles and no shared nodes.
type Node struct {
	Name     string  // display label
	Children []*Node // ordered, owned

	// Derived by ComputeMetrics.
	LeafCount int // number of leaf descendants; a childless node counts itself
	Depth     int // distance from the root; root is 0

	// World-space position, written by the layout engine.
	X, Y float64
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// PreOrder returns every node reachable from root in pre-order: parents
// before children, siblings left to right. The traversal uses an explicit
// stack so pathologically deep trees cannot exhaust the call stack.
func PreOrder(root *Node) []*Node {
	if root == nil {
		return nil
	}
	order := make([]*Node, 0, 64)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		// Push children reversed so the leftmost child is popped first.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return order
}

// ComputeMetrics assigns LeafCount and Depth to every node and returns the
// root's leaf count together with the maximum depth observed.
//
// LeafCount is 1 for a childless node, otherwise the sum over its children.
// Depth is 0 for the root and parent+1 below it. A root with no children is
// a single leaf with depth range [0,0].
func ComputeMetrics(root *Node) (totalLeaves, maxDepth int) {
	root.Depth = 0
	order := PreOrder(root)
	for _, n := range order {
		for _, c := range n.Children {
			c.Depth = n.Depth + 1
		}
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}

	// Pre-order lists parents before children, so walking it backwards
	// guarantees every child is summed before its parent.
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if len(n.Children) == 0 {
			n.LeafCount = 1
			continue
		}
		sum := 0
		for _, c := range n.Children {
			sum += c.LeafCount
		}
		n.LeafCount = sum
	}

	return root.LeafCount, maxDepth
}

// Count returns the total number of nodes reachable from root.
func Count(root *Node) int { return len(PreOrder(root)) }
