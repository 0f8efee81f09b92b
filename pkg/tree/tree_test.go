package tree

import (
	"strings"
	"testing"
)

// build constructs a node with the given children.
func build(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

func TestComputeMetricsSingleNode(t *testing.T) {
	root := build("root")
	leaves, maxDepth := ComputeMetrics(root)

	if leaves != 1 {
		t.Errorf("leaves = %d, want 1 (childless root counts itself)", leaves)
	}
	if maxDepth != 0 {
		t.Errorf("maxDepth = %d, want 0", maxDepth)
	}
	if root.LeafCount != 1 || root.Depth != 0 {
		t.Errorf("root metrics = {leafCount:%d depth:%d}, want {1 0}", root.LeafCount, root.Depth)
	}
}

func TestComputeMetricsMixedBranching(t *testing.T) {
	// Depth 4, branching factors 3/2/1 mixed:
	//
	//	root
	//	├── a
	//	│   ├── a1
	//	│   │   └── a1x
	//	│   │       └── a1x1
	//	│   └── a2
	//	├── b
	//	└── c
	//	    ├── c1
	//	    └── c2
	a1x1 := build("a1x1")
	a1x := build("a1x", a1x1)
	a1 := build("a1", a1x)
	a2 := build("a2")
	a := build("a", a1, a2)
	b := build("b")
	c1 := build("c1")
	c2 := build("c2")
	c := build("c", c1, c2)
	root := build("root", a, b, c)

	leaves, maxDepth := ComputeMetrics(root)

	if leaves != 5 {
		t.Errorf("total leaves = %d, want 5", leaves)
	}
	if maxDepth != 4 {
		t.Errorf("maxDepth = %d, want 4", maxDepth)
	}

	wantLeafCounts := map[*Node]int{
		root: 5, a: 2, b: 1, c: 2,
		a1: 1, a2: 1, c1: 1, c2: 1,
		a1x: 1, a1x1: 1,
	}
	for n, want := range wantLeafCounts {
		if n.LeafCount != want {
			t.Errorf("%s.LeafCount = %d, want %d", n.Name, n.LeafCount, want)
		}
	}

	// Every parent-child pair obeys depth(child) = depth(parent)+1.
	for _, n := range PreOrder(root) {
		for _, ch := range n.Children {
			if ch.Depth != n.Depth+1 {
				t.Errorf("%s.Depth = %d, want parent(%s).Depth+1 = %d", ch.Name, ch.Depth, n.Name, n.Depth+1)
			}
		}
	}
}

func TestComputeMetricsLeafCountIsSumOverChildren(t *testing.T) {
	root := build("root",
		build("a", build("x"), build("y")),
		build("b"),
	)
	ComputeMetrics(root)

	for _, n := range PreOrder(root) {
		if n.IsLeaf() {
			if n.LeafCount != 1 {
				t.Errorf("leaf %s.LeafCount = %d, want 1", n.Name, n.LeafCount)
			}
			continue
		}
		sum := 0
		for _, ch := range n.Children {
			sum += ch.LeafCount
		}
		if n.LeafCount != sum {
			t.Errorf("%s.LeafCount = %d, want sum of children %d", n.Name, n.LeafCount, sum)
		}
	}
}

func TestPreOrderVisitsParentsFirstSiblingsLeftToRight(t *testing.T) {
	root := build("root",
		build("a", build("x"), build("y")),
		build("b"),
	)

	var names []string
	for _, n := range PreOrder(root) {
		names = append(names, n.Name)
	}

	want := "root a x y b"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("pre-order = %q, want %q", got, want)
	}
}

func TestPreOrderNilRoot(t *testing.T) {
	if got := PreOrder(nil); got != nil {
		t.Errorf("PreOrder(nil) = %v, want nil", got)
	}
}

func TestPreOrderDeepTreeNoStackOverflow(t *testing.T) {
	// A pathological chain deeper than any sane call stack.
	root := build("0")
	n := root
	for i := 0; i < 200_000; i++ {
		child := build("n")
		n.Children = []*Node{child}
		n = child
	}

	leaves, maxDepth := ComputeMetrics(root)
	if leaves != 1 {
		t.Errorf("leaves = %d, want 1", leaves)
	}
	if maxDepth != 200_000 {
		t.Errorf("maxDepth = %d, want 200000", maxDepth)
	}
}

func TestCount(t *testing.T) {
	root := build("root", build("a", build("x")), build("b"))
	if got := Count(root); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
}
