package render

import (
	"testing"

	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/view"
)

// smallTree is root{a{x,y}, b} positioned with slotWidth=10, rowHeight=20.
func smallTree() (*tree.Node, *tree.Node, *tree.Node) {
	x := &tree.Node{Name: "x", X: 5, Y: 40}
	y := &tree.Node{Name: "y", X: 15, Y: 40}
	a := &tree.Node{Name: "a", X: 10, Y: 20, Children: []*tree.Node{x, y}}
	b := &tree.Node{Name: "b", X: 25, Y: 20}
	root := &tree.Node{Name: "root", X: 17.5, Y: 0, Children: []*tree.Node{a, b}}
	return root, b, x
}

func TestBuildSceneEdges(t *testing.T) {
	root, _, _ := smallTree()
	cam := view.New(17.5, 20, 800, 800)

	s := BuildScene(root, cam, 800, 800, Options{})

	// One edge per parent-child pair: root→a, root→b, a→x, a→y.
	if len(s.Lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(s.Lines))
	}

	// Edges are projected through the camera: the first edge starts at
	// root's screen position. Root sits at the camera center, so it lands
	// mid-screen horizontally; its world y of 0 is 20 units above center.
	first := s.Lines[0]
	if first.X1 != 400 || first.Y1 != 380 {
		t.Errorf("root projected to (%v, %v), want (400, 380)", first.X1, first.Y1)
	}
}

func TestBuildSceneAllLabels(t *testing.T) {
	root, _, _ := smallTree()
	cam := view.New(17.5, 20, 800, 800)

	s := BuildScene(root, cam, 800, 800, Options{DrawAllLabels: true})
	if len(s.Labels) != 5 {
		t.Errorf("labels = %d, want one per node (5)", len(s.Labels))
	}
}

func TestBuildSceneSelectedOnly(t *testing.T) {
	root, b, _ := smallTree()
	cam := view.New(17.5, 20, 800, 800)

	s := BuildScene(root, cam, 800, 800, Options{Selected: b})
	if len(s.Labels) != 1 {
		t.Fatalf("labels = %d, want only the selected node's", len(s.Labels))
	}
	if s.Labels[0].Text != "b" || !s.Labels[0].Selected {
		t.Errorf("label = %+v, want selected b", s.Labels[0])
	}

	// No selection, labels off: nothing is labeled.
	s = BuildScene(root, cam, 800, 800, Options{})
	if len(s.Labels) != 0 {
		t.Errorf("labels with no selection = %d, want 0", len(s.Labels))
	}
}

func TestBuildSceneLabelAnchorsFollowZoom(t *testing.T) {
	root, _, x := smallTree()
	cam := view.New(17.5, 20, 800, 800)

	before := BuildScene(root, cam, 800, 800, Options{Selected: x})
	cam.Zoom(0.5)
	after := BuildScene(root, cam, 800, 800, Options{Selected: x})

	// Zooming moves the anchor (the world point under it shifts on
	// screen) but the label text itself carries no scale: glyph size is
	// the face's pixel size either way.
	if before.Labels[0].X == after.Labels[0].X && before.Labels[0].Y == after.Labels[0].Y {
		t.Error("label anchor did not move with zoom")
	}
}
