package layout_test

import (
	"fmt"

	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/tree"
)

func ExampleAssign() {
	// Position a small hierarchy: root holds a (with two files) and b.
	x := &tree.Node{Name: "x"}
	y := &tree.Node{Name: "y"}
	a := &tree.Node{Name: "a", Children: []*tree.Node{x, y}}
	b := &tree.Node{Name: "b"}
	root := &tree.Node{Name: "root", Children: []*tree.Node{a, b}}
	tree.ComputeMetrics(root)

	layout.Assign(root, layout.Config{SlotWidth: 10, RowHeight: 20})

	for _, n := range tree.PreOrder(root) {
		fmt.Printf("%s (%g, %g)\n", n.Name, n.X, n.Y)
	}
	// Output:
	// root (17.5, 0)
	// a (10, 20)
	// x (5, 40)
	// y (15, 40)
	// b (25, 20)
}

func ExampleNearest() {
	// Find the node closest to a world-space point, e.g. a click.
	left := &tree.Node{Name: "left", X: 5, Y: 40}
	right := &tree.Node{Name: "right", X: 15, Y: 40}
	root := &tree.Node{Name: "root", X: 10, Y: 0, Children: []*tree.Node{left, right}}

	hit := layout.Nearest(root, 14, 38)
	fmt.Println("Nearest:", hit.Name)
	// Output:
	// Nearest: right
}

func ExampleSlotWidth() {
	// Horizontal spacing is the widest label plus fixed padding.
	fmt.Println("Slot:", layout.SlotWidth(120))
	fmt.Println("Unlabeled:", layout.SlotWidth(0))
	// Output:
	// Slot: 130
	// Unlabeled: 10
}
