// Package view maintains the affine pan/zoom mapping between world
// coordinates and display pixels.
//
// The Camera is independent of the tree: it owns only a world-space center
// and extent, together describing the visible world rectangle mapped onto
// the surface's pixel rectangle. It is mutated by input events and read
// every frame by rendering and node picking.
package view

// Camera is the view transform. The visible world rectangle is centered
// on (CenterX, CenterY) and spans ExtentW x ExtentH world units.
type Camera struct {
	CenterX, CenterY float64
	ExtentW, ExtentH float64
}

// New returns a camera centered on (cx, cy) showing an extentW x extentH
// world rectangle.
func New(cx, cy, extentW, extentH float64) *Camera {
	return &Camera{CenterX: cx, CenterY: cy, ExtentW: extentW, ExtentH: extentH}
}

// Zoom scales the visible extent about the current center. A factor below
// 1 zooms in, above 1 zooms out. Zoom is deliberately unbounded in both
// directions; callers wanting limits must clamp themselves.
func (c *Camera) Zoom(factor float64) {
	c.ExtentW *= factor
	c.ExtentH *= factor
}

// Pan shifts the center by a pixel-space delta. The delta is converted to
// world units via extent/screen per axis, so panning one pixel always
// moves exactly one screen-pixel's worth of world space at any zoom.
func (c *Camera) Pan(dxPixels, dyPixels, screenW, screenH float64) {
	c.CenterX += dxPixels * c.ExtentW / screenW
	c.CenterY += dyPixels * c.ExtentH / screenH
}

// PixelToWorld maps a pixel position on a screenW x screenH surface to
// world coordinates. Exactness matters here: this mapping drives node
// picking, and drift causes visibly wrong selection.
func (c *Camera) PixelToWorld(px, py, screenW, screenH float64) (wx, wy float64) {
	wx = c.CenterX + (px/screenW-0.5)*c.ExtentW
	wy = c.CenterY + (py/screenH-0.5)*c.ExtentH
	return wx, wy
}

// WorldToPixel is the forward projection, the exact inverse of
// PixelToWorld for the current transform.
func (c *Camera) WorldToPixel(wx, wy, screenW, screenH float64) (px, py float64) {
	px = ((wx-c.CenterX)/c.ExtentW + 0.5) * screenW
	py = ((wy-c.CenterY)/c.ExtentH + 0.5) * screenH
	return px, py
}

// Resize rescales the extent proportionally to a surface size change.
// Zoom level is a ratio of extent to surface size, not an absolute
// extent, so recreating the surface (fullscreen toggle) must not visually
// jump the zoom.
func (c *Camera) Resize(oldW, oldH, newW, newH float64) {
	c.ExtentW *= newW / oldW
	c.ExtentH *= newH / oldH
}

// ZoomFactor reports the current zoom as the extent-to-surface ratio on
// the horizontal axis. 1 means one world unit per pixel.
func (c *Camera) ZoomFactor(screenW float64) float64 {
	return c.ExtentW / screenW
}
