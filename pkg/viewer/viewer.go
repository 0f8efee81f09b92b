// Package viewer runs the interactive window.
//
// The window is an ebiten game: a single-threaded 60 TPS loop where each
// tick drains pending input, mutates the camera or selection in response,
// and draws one full frame. Nothing here touches the tree's structure;
// the tree is read-only once positioned.
//
// Controls follow the keyboard/mouse layout of classic pan-zoom viewers:
// left-drag pans, the wheel zooms about the view center, right-click
// selects the nearest node, F11 toggles fullscreen, Escape quits.
package viewer

import (
	"image/color"

	charmlog "github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/render"
	"github.com/treescope/treescope/pkg/tree"
	"github.com/treescope/treescope/pkg/view"
)

// Zoom steps per wheel notch, matching the usual 4/5 ratio so zooming in
// and back out is nearly lossless.
const (
	zoomInFactor  = 0.8
	zoomOutFactor = 1.25
)

var (
	edgeColor     = color.RGBA{R: 100, G: 100, B: 100, A: 100}
	labelColor    = color.White
	selectedColor = color.RGBA{R: 255, G: 210, B: 80, A: 255}
)

// Options configure the window.
type Options struct {
	Title         string
	Width, Height int // initial windowed size in pixels
	DrawAllLabels bool
}

// Viewer is the interactive display surface. It owns the window
// exclusively for the duration of Run.
type Viewer struct {
	root   *tree.Node
	cam    *view.Camera
	face   font.Face
	opts   Options
	logger *charmlog.Logger

	selected *tree.Node

	screenW, screenH float64

	panning          bool
	dragX, dragY     int     // cursor position where the drag started
	startCX, startCY float64 // camera center at drag start

	fullscreen bool
}

// New creates a viewer for a positioned tree. The camera defines the
// initial view; face renders labels at fixed pixel size.
func New(root *tree.Node, cam *view.Camera, face font.Face, opts Options, logger *charmlog.Logger) *Viewer {
	if logger == nil {
		logger = charmlog.Default()
	}
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Title == "" {
		opts.Title = "treescope"
	}
	return &Viewer{
		root:    root,
		cam:     cam,
		face:    face,
		opts:    opts,
		logger:  logger,
		screenW: float64(opts.Width),
		screenH: float64(opts.Height),
	}
}

// Run opens the window and blocks until the user quits.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.opts.Width, v.opts.Height)
	ebiten.SetWindowTitle(v.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}

// Update drains this tick's input events. Runs on the game goroutine;
// there is no other.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		// The camera's zoom ratio survives the surface swap via Layout's
		// Resize call once the new surface reports its size.
		v.fullscreen = !v.fullscreen
		ebiten.SetFullscreen(v.fullscreen)
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		factor := zoomOutFactor
		if wheelY > 0 {
			factor = zoomInFactor
		}
		v.cam.Zoom(factor)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.panning = true
		v.dragX, v.dragY = ebiten.CursorPosition()
		v.startCX, v.startCY = v.cam.CenterX, v.cam.CenterY
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.panning = false
	}
	if v.panning {
		x, y := ebiten.CursorPosition()
		// Pan is anchored to the drag origin rather than accumulated per
		// tick, so a drag never drifts.
		v.cam.CenterX, v.cam.CenterY = v.startCX, v.startCY
		v.cam.Pan(float64(v.dragX-x), float64(v.dragY-y), v.screenW, v.screenH)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		wx, wy := v.cam.PixelToWorld(float64(x), float64(y), v.screenW, v.screenH)
		v.selected = layout.Nearest(v.root, wx, wy)
		if v.selected != nil {
			v.logger.Debug("selected node", "name", v.selected.Name, "depth", v.selected.Depth, "leaves", v.selected.LeafCount)
		}
	}

	return nil
}

// Draw renders one frame.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	scene := render.BuildScene(v.root, v.cam, v.screenW, v.screenH, render.Options{
		DrawAllLabels: v.opts.DrawAllLabels,
		Selected:      v.selected,
	})

	for _, l := range scene.Lines {
		vector.StrokeLine(screen, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), 1, edgeColor, true)
	}

	for _, lb := range scene.Labels {
		v.drawLabel(screen, lb)
	}
}

// drawLabel draws one label centered on its anchor. Glyphs are drawn at
// the face's native pixel size: labels never zoom with the tree.
func (v *Viewer) drawLabel(screen *ebiten.Image, lb render.Label) {
	b := text.BoundString(v.face, lb.Text)
	x := int(lb.X) - b.Min.X - b.Dx()/2
	y := int(lb.Y) - b.Min.Y - b.Dy()/2

	clr := color.Color(labelColor)
	if lb.Selected {
		clr = selectedColor
	}
	text.Draw(screen, lb.Text, v.face, x, y, clr)
}

// Layout reports the drawing surface size and forwards size changes to
// the camera so the zoom ratio is preserved across window resizes and
// fullscreen recreation.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	newW, newH := float64(outsideWidth), float64(outsideHeight)
	if newW != v.screenW || newH != v.screenH {
		v.cam.Resize(v.screenW, v.screenH, newW, newH)
		v.screenW, v.screenH = newW, newH
	}
	return outsideWidth, outsideHeight
}
