package layout

import (
	"math"
	"testing"

	"github.com/treescope/treescope/pkg/tree"
)

func build(name string, children ...*tree.Node) *tree.Node {
	return &tree.Node{Name: name, Children: children}
}

// prepared builds, metric-decorates, and positions a tree in one call.
func prepared(t *testing.T, root *tree.Node, cfg Config) *tree.Node {
	t.Helper()
	tree.ComputeMetrics(root)
	Assign(root, cfg)
	return root
}

func TestAssignLeafGrid(t *testing.T) {
	// Five leaves across mixed branching; leaf order d, e, f, g, h.
	root := build("root",
		build("a", build("d"), build("e")),
		build("b", build("f")),
		build("c", build("g"), build("h")),
	)
	prepared(t, root, Config{SlotWidth: 10, RowHeight: 20})

	var leaves []*tree.Node
	for _, n := range tree.PreOrder(root) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}

	if len(leaves) != 5 {
		t.Fatalf("leaf count = %d, want 5", len(leaves))
	}
	for i, leaf := range leaves {
		want := (float64(i) + 0.5) * 10
		if leaf.X != want {
			t.Errorf("leaf %s.X = %v, want %v", leaf.Name, leaf.X, want)
		}
	}

	// Strictly increasing and equally spaced by exactly one slot.
	for i := 1; i < len(leaves); i++ {
		if gap := leaves[i].X - leaves[i-1].X; gap != 10 {
			t.Errorf("gap between leaf %d and %d = %v, want 10", i-1, i, gap)
		}
	}
}

func TestAssignRowHeights(t *testing.T) {
	root := build("root", build("a", build("x")))
	prepared(t, root, Config{SlotWidth: 10, RowHeight: 25})

	for _, n := range tree.PreOrder(root) {
		if want := float64(n.Depth) * 25; n.Y != want {
			t.Errorf("%s.Y = %v, want %v", n.Name, n.Y, want)
		}
	}
}

func TestAssignParentMidpointIgnoresMiddleChildren(t *testing.T) {
	// Parent of three subtrees whose children land at x = 10, 50, 90
	// with slot width 20 and leaf order giving first/last at 10/90.
	// Parent x must be the midpoint of first and last (50), and must
	// not move if the middle child were anywhere else.
	a := build("a")
	bx := build("bx")
	b := build("b", bx, build("by"), build("bz"))
	c := build("c")
	root := build("root", a, b, c)
	prepared(t, root, Config{SlotWidth: 20, RowHeight: 10})

	// Leaves: a, bx, by, bz, c at x = 10, 30, 50, 70, 90.
	if a.X != 10 || c.X != 90 {
		t.Fatalf("outer leaves at %v and %v, want 10 and 90", a.X, c.X)
	}
	if want := (a.X + c.X) / 2; root.X != want {
		t.Errorf("root.X = %v, want midpoint of first/last child %v", root.X, want)
	}
	if want := (30.0 + 70.0) / 2; b.X != want {
		t.Errorf("b.X = %v, want %v", b.X, want)
	}
}

func TestAssignSingleChildInheritsX(t *testing.T) {
	x := build("x")
	a := build("a", x)
	root := build("root", a)
	prepared(t, root, Config{SlotWidth: 12, RowHeight: 7})

	if a.X != x.X {
		t.Errorf("single-child parent a.X = %v, want child's x %v exactly", a.X, x.X)
	}
	if root.X != x.X {
		t.Errorf("root.X = %v, want %v", root.X, x.X)
	}
}

func TestAssignEndToEndScenario(t *testing.T) {
	// root{a{x,y}, b} with slotWidth=10, rowHeight=20:
	// leaves x,y,b at x=5,15,25; rows y=0/20/40; a.X=10;
	// root.X=(10+25)/2=17.5.
	x := build("x")
	y := build("y")
	a := build("a", x, y)
	b := build("b")
	root := build("root", a, b)
	prepared(t, root, Config{SlotWidth: 10, RowHeight: 20})

	cases := []struct {
		n        *tree.Node
		wantX, wantY float64
	}{
		{x, 5, 40},
		{y, 15, 40},
		{b, 25, 20},
		{a, 10, 20},
		{root, 17.5, 0},
	}
	for _, tc := range cases {
		if tc.n.X != tc.wantX || tc.n.Y != tc.wantY {
			t.Errorf("%s at (%v, %v), want (%v, %v)", tc.n.Name, tc.n.X, tc.n.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestSlotWidth(t *testing.T) {
	if got := SlotWidth(120); got != 130 {
		t.Errorf("SlotWidth(120) = %v, want 130", got)
	}
	// No labels: slot collapses to the padding alone.
	if got := SlotWidth(0); got != HorizontalPadding {
		t.Errorf("SlotWidth(0) = %v, want %v", got, HorizontalPadding)
	}
}

func TestRowHeightCompressesWithDepth(t *testing.T) {
	shallow := RowHeight(1.0, 800, 4)
	deep := RowHeight(1.0, 800, 16)

	if shallow != 200 {
		t.Errorf("RowHeight(1, 800, 4) = %v, want 200", shallow)
	}
	if deep != 50 {
		t.Errorf("RowHeight(1, 800, 16) = %v, want 50", deep)
	}
	if !(deep < shallow) {
		t.Error("deeper trees must get tighter rows")
	}

	if got := RowHeight(2.0, 800, 4); math.Abs(got-400) > 1e-12 {
		t.Errorf("y scale must multiply row height, got %v want 400", got)
	}
}

// runeWidthMeasurer fakes text measurement as characters times a fixed
// advance.
type runeWidthMeasurer struct{ advance float64 }

func (m runeWidthMeasurer) Width(s string) float64 { return float64(len(s)) * m.advance }

func TestMaxLabelWidth(t *testing.T) {
	root := build("ab",
		build("name-with-length", build("c")),
		build("mid"),
	)

	got := MaxLabelWidth(root, runeWidthMeasurer{advance: 7})
	want := float64(len("name-with-length")) * 7
	if got != want {
		t.Errorf("MaxLabelWidth = %v, want %v", got, want)
	}
}
