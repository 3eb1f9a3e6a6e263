package viz

import (
	"image/color"
	"math"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// DefaultScale is the number of grid pixels per braille dot.
const DefaultScale = 4

// minAlpha is the faintest colour that still sets dots.
const minAlpha = 24

type point struct{ x, y float64 }

// Surface draws on a Canvas, mapping each Scale×Scale block of grid pixels
// onto one braille dot. Alpha darkens colours instead of blending, and
// shadows are ignored.
type Surface struct {
	*Canvas
	w, h  int
	scale float64

	fill     color.NRGBA
	stroke   color.NRGBA
	fontSize float64
	path     [][]point
}

func NewSurface(w, h int, scale float64) *Surface {
	if scale <= 0 {
		scale = DefaultScale
	}
	cols := int(float64(w) / (2 * scale))
	rows := int(float64(h) / (4 * scale))
	return &Surface{
		Canvas:   NewCanvas(max(cols, 1), max(rows, 1)),
		w:        w,
		h:        h,
		scale:    scale,
		fill:     surface.White,
		stroke:   surface.White,
		fontSize: 10,
	}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) dot(v float64) int { return int(math.Floor(v / s.scale)) }

func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(s.w) && y+h >= float64(s.h) {
		s.Canvas.Clear()
		return
	}
	x0, y0, x1, y1 := s.dot(x), s.dot(y), s.dot(x+w), s.dot(y+h)
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			s.Unset(dx, dy)
		}
	}
	s.dropLabels(x0/2, y0/4, (x1-1)/2, (y1-1)/4)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	c, ok := visible(s.fill)
	if !ok {
		return
	}
	x0, y0, x1, y1 := s.dot(x), s.dot(y), s.dot(x+w), s.dot(y+h)
	for dy := y0; dy < max(y1, y0+1); dy++ {
		for dx := x0; dx < max(x1, x0+1); dx++ {
			s.Plot(dx, dy, c)
		}
	}
}

func (s *Surface) BeginPath() { s.path = nil }

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, []point{{x, y}})
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], point{x, y})
}

func (s *Surface) Stroke() {
	c, ok := visible(s.stroke)
	if !ok {
		return
	}
	for _, sub := range s.path {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			if !finite(a) || !finite(b) {
				continue
			}
			s.DrawLine(s.dot(a.x), s.dot(a.y), s.dot(b.x), s.dot(b.y), c)
		}
	}
}

func (s *Surface) FillCircle(x, y, r float64) {
	c, ok := visible(s.fill)
	if !ok || !finite(point{x, y}) {
		return
	}
	cx, cy := x/s.scale, y/s.scale
	rd := math.Max(r/s.scale, 0.5)
	for dy := int(math.Floor(cy - rd)); dy <= int(math.Ceil(cy+rd)); dy++ {
		for dx := int(math.Floor(cx - rd)); dx <= int(math.Ceil(cx+rd)); dx++ {
			if math.Hypot(float64(dx)+0.5-cx, float64(dy)+0.5-cy) <= rd+0.5 {
				s.Plot(dx, dy, c)
			}
		}
	}
}

// FillText places text at the character cell containing the baseline
// anchor.
func (s *Surface) FillText(text string, x, y float64) {
	c, ok := visible(s.fill)
	if !ok || !finite(point{x, y}) {
		return
	}
	col := s.dot(x) / 2
	row := (s.dot(y) - 1) / 4
	s.Label(col, max(row, 0), text, c)
}

func (s *Surface) SetFontSize(px float64)                  { s.fontSize = px }
func (s *Surface) SetFillColor(c color.Color)              { s.fill = surface.NRGBA(c) }
func (s *Surface) SetStrokeColor(c color.Color)            { s.stroke = surface.NRGBA(c) }
func (s *Surface) SetShadow(c color.Color, dx, dy float64) {}
func (s *Surface) SetLineWidth(w float64)                  {}

// visible scales c by its alpha, reporting false when too faint to draw.
func visible(c color.NRGBA) (color.NRGBA, bool) {
	if c.A < minAlpha {
		return c, false
	}
	a := uint32(c.A)
	return color.NRGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: 255,
	}, true
}

func finite(p point) bool {
	return !math.IsNaN(p.x) && !math.IsNaN(p.y) && !math.IsInf(p.x, 0) && !math.IsInf(p.y, 0)
}
