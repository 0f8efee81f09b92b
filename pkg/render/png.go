package render

import (
	"bytes"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/treescope/treescope/pkg/tree"
)

// PNGOptions configure offscreen raster rendering.
type PNGOptions struct {
	Width      int     // canvas width in pixels
	Height     int     // canvas height in pixels
	Margin     float64 // padding around the tree in pixels
	DrawLabels bool
	Font       *truetype.Font // required when DrawLabels is set
	TextSize   float64
}

// PNG renders the whole positioned tree to a PNG image. The tree is
// fitted to the canvas per axis, so this is a static overview rather than
// a camera view.
func PNG(root *tree.Node, opts PNGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1600
	}
	if opts.Height <= 0 {
		opts.Height = 1200
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}
	if opts.TextSize <= 0 {
		opts.TextSize = 12
	}

	order := tree.PreOrder(root)
	minX, maxX := order[0].X, order[0].X
	minY, maxY := order[0].Y, order[0].Y
	for _, n := range order {
		minX = min(minX, n.X)
		maxX = max(maxX, n.X)
		minY = min(minY, n.Y)
		maxY = max(maxY, n.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	// A root-only tree has zero span; avoid dividing by it.
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	sx := (float64(opts.Width) - 2*opts.Margin) / spanX
	sy := (float64(opts.Height) - 2*opts.Margin) / spanY
	project := func(n *tree.Node) (float64, float64) {
		return opts.Margin + (n.X-minX)*sx, opts.Margin + (n.Y-minY)*sy
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	dc.SetRGBA(0.4, 0.4, 0.4, 0.4)
	dc.SetLineWidth(1)
	for _, n := range order {
		px, py := project(n)
		for _, c := range n.Children {
			cx, cy := project(c)
			dc.DrawLine(px, py, cx, cy)
		}
	}
	dc.Stroke()

	if opts.DrawLabels && opts.Font != nil {
		face := truetype.NewFace(opts.Font, &truetype.Options{Size: opts.TextSize, DPI: 72})
		dc.SetFontFace(face)
		dc.SetRGB(1, 1, 1)
		for _, n := range order {
			px, py := project(n)
			dc.DrawStringAnchored(n.Name, px, py, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
