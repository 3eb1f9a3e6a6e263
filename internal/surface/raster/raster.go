// Package raster implements surface.Surface on an in-memory RGBA image
// using fogleman/gg, for headless export.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/juju/loggo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

var logger = loggo.GetLogger("canvasgrid.surface.raster")

var monoFont *opentype.Font

func init() {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		panic(err)
	}
	monoFont = f
}

// Surface is a gg-backed surface. ClearRect paints Background rather than
// transparency so exported frames stay opaque.
type Surface struct {
	ctx        *gg.Context
	Background color.Color

	fill     color.Color
	stroke   color.Color
	shadow   color.Color
	shadowDX float64
	shadowDY float64
	fontSize float64
	faces    map[float64]font.Face
	pathOpen bool
}

func New(w, h int) *Surface {
	s := &Surface{
		ctx:        gg.NewContext(w, h),
		Background: surface.Black,
		fill:       surface.Black,
		stroke:     surface.Black,
		shadow:     color.Transparent,
		faces:      make(map[float64]font.Face),
	}
	s.ClearRect(0, 0, float64(w), float64(h))
	s.SetFontSize(10)
	return s
}

func (s *Surface) Size() (int, int) { return s.ctx.Width(), s.ctx.Height() }

// Image returns the backing image; it is updated in place by later draws.
func (s *Surface) Image() *image.RGBA {
	return s.ctx.Image().(*image.RGBA)
}

func (s *Surface) SavePNG(path string) error { return s.ctx.SavePNG(path) }

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.Image(), r, image.NewUniform(s.Background), image.Point{}, draw.Src)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.NewSubPath()
	s.ctx.DrawRectangle(x, y, w, h)
	s.ctx.SetColor(s.fill)
	s.ctx.Fill()
}

func (s *Surface) BeginPath() {
	s.ctx.ClearPath()
	s.pathOpen = false
}

func (s *Surface) MoveTo(x, y float64) {
	if !finite(x, y) {
		logger.Tracef("skipping non-finite move to (%v, %v)", x, y)
		s.pathOpen = false
		return
	}
	s.ctx.MoveTo(x, y)
	s.pathOpen = true
}

func (s *Surface) LineTo(x, y float64) {
	if !finite(x, y) {
		s.pathOpen = false
		return
	}
	if !s.pathOpen {
		s.ctx.MoveTo(x, y)
		s.pathOpen = true
		return
	}
	s.ctx.LineTo(x, y)
}

// Stroke strokes the current path. gg consumes the path on stroke, so it
// is replayed as preserved to keep canvas semantics.
func (s *Surface) Stroke() {
	s.ctx.SetColor(s.stroke)
	s.ctx.StrokePreserve()
}

func (s *Surface) FillCircle(x, y, r float64) {
	if !finite(x, y) {
		return
	}
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.NewSubPath()
	s.ctx.DrawCircle(x, y, r)
	s.ctx.SetColor(s.fill)
	s.ctx.Fill()
}

func (s *Surface) FillText(text string, x, y float64) {
	s.ctx.Push()
	defer s.ctx.Pop()
	if _, _, _, a := s.shadow.RGBA(); a > 0 && (s.shadowDX != 0 || s.shadowDY != 0) {
		s.ctx.SetColor(s.shadow)
		s.ctx.DrawString(text, x+s.shadowDX, y+s.shadowDY)
	}
	s.ctx.SetColor(s.fill)
	s.ctx.DrawString(text, x, y)
}

func (s *Surface) SetFontSize(px float64) {
	if px <= 0 || px == s.fontSize {
		return
	}
	face, ok := s.faces[px]
	if !ok {
		var err error
		face, err = opentype.NewFace(monoFont, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			logger.Warningf("cannot create %vpx face: %v", px, err)
			return
		}
		s.faces[px] = face
	}
	s.ctx.SetFontFace(face)
	s.fontSize = px
}

func (s *Surface) SetFillColor(c color.Color)   { s.fill = c }
func (s *Surface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)       { s.ctx.SetLineWidth(w) }

func (s *Surface) SetShadow(c color.Color, dx, dy float64) {
	s.shadow = c
	s.shadowDX, s.shadowDY = dx, dy
}

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
