package render

import (
	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/view"
)

// Line is a screen-space segment connecting a parent to one of its
// children.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Label is a screen-space text draw command. X, Y is the label's center.
type Label struct {
	Text     string
	X, Y     float64
	Selected bool
}

// Scene is one complete draw pass.
type Scene struct {
	Lines  []Line
	Labels []Label
}

// Options control which labels enter the scene.
type Options struct {
	// DrawAllLabels labels every node. When false, only Selected gets a
	// label.
	DrawAllLabels bool

	// Selected is the currently picked node, labeled even when labels are
	// globally off. May be nil.
	Selected *tree.Node
}

// BuildScene projects the tree through cam onto a screenW x screenH
// surface.
//
// Edges and label anchors are projected per frame; label text itself is
// not scaled with the projection, so glyphs keep a constant pixel size on
// screen however far the camera zooms.
func BuildScene(root *tree.Node, cam *view.Camera, screenW, screenH float64, opts Options) Scene {
	order := tree.PreOrder(root)

	var s Scene
	s.Lines = make([]Line, 0, len(order)-1)
	for _, n := range order {
		px, py := cam.WorldToPixel(n.X, n.Y, screenW, screenH)
		for _, c := range n.Children {
			cx, cy := cam.WorldToPixel(c.X, c.Y, screenW, screenH)
			s.Lines = append(s.Lines, Line{X1: px, Y1: py, X2: cx, Y2: cy})
		}
		if opts.DrawAllLabels || n == opts.Selected {
			s.Labels = append(s.Labels, Label{
				Text:     n.Name,
				X:        px,
				Y:        py,
				Selected: n == opts.Selected,
			})
		}
	}
	return s
}
