// Package surface defines the drawing capability set scenes render onto,
// modelled on a 2D canvas context.
//
// Implementations:
//
//   - [Recorder]: in-memory op log, used by tests and the SVG exporter
//   - raster.Surface: fogleman/gg image surface for GIF/PNG export
//   - viz.Canvas: braille terminal canvas
//   - the raylib and ebiten hosts' texture surfaces
package surface

import "image/color"

// Surface is the display contract of one grid cell.
//
// Coordinates are pixels with the origin top-left. Drawing state (colours,
// line width, font, shadow) persists between calls, as on a canvas context.
type Surface interface {
	Size() (w, h int)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	FillCircle(x, y, r float64)
	FillText(s string, x, y float64)

	SetFontSize(px float64)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetShadow(c color.Color, dx, dy float64)
	SetLineWidth(w float64)
}

// Framer is implemented by surfaces that must be bracketed around a batch
// of drawing calls, such as render textures.
type Framer interface {
	BeginFrame()
	EndFrame()
}

// Frame runs fn between BeginFrame and EndFrame when s is a Framer.
func Frame(s Surface, fn func()) {
	if f, ok := s.(Framer); ok {
		f.BeginFrame()
		defer f.EndFrame()
	}
	fn()
}
