// Package fonts locates the label font and measures label widths.
//
// Fonts are discovered on the host system via go-findfont rather than
// embedded, mirroring how the viewer is meant to blend in with the
// platform's text rendering. A font that cannot be found or parsed is
// fatal at startup; nothing in the interactive phase can recover from a
// missing face.
package fonts

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/treescope/treescope/pkg/errors"
)

// DefaultTextSize is the label glyph size in pixels. Labels are drawn at
// this size on screen regardless of zoom.
const DefaultTextSize = 20.0

// defaultNames are tried in order when no font is configured.
var defaultNames = []string{"DejaVuSans.ttf", "Arial.ttf", "Helvetica.ttf", "LiberationSans-Regular.ttf"}

// Load finds and parses a TrueType font. With an empty name a list of
// common sans-serif fonts is tried; with a non-empty name only that font.
// Returns ErrCodeFontNotFound when nothing usable exists on the system.
func Load(name string) (*truetype.Font, error) {
	names := defaultNames
	if name != "" {
		names = []string{name}
	}

	var lastErr error
	for _, n := range names {
		path, err := findfont.Find(n)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			lastErr = err
			continue
		}
		return f, nil
	}
	return nil, errors.Wrap(errors.ErrCodeFontNotFound, lastErr, "no usable font among %v", names)
}

// Measurer measures label pixel widths at a fixed size. It wraps a single
// font.Face and is not safe for concurrent use, which is fine: the whole
// application is single-threaded.
type Measurer struct {
	face font.Face
	size float64
}

// NewMeasurer builds a measurer (and drawable face) for f at sizePx.
func NewMeasurer(f *truetype.Font, sizePx float64) *Measurer {
	return &Measurer{
		face: truetype.NewFace(f, &truetype.Options{Size: sizePx, DPI: 72}),
		size: sizePx,
	}
}

// Width returns the advance width of s in pixels.
func (m *Measurer) Width(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// Face exposes the underlying face for on-screen text drawing.
func (m *Measurer) Face() font.Face { return m.face }

// Size returns the glyph size in pixels.
func (m *Measurer) Size() float64 { return m.size }
