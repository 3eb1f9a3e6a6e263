package play

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

type point struct{ x, y float32 }

// ImageSurface draws one cell onto an offscreen ebiten image. Text uses a
// fixed 7×13 face whatever the font size.
type ImageSurface struct {
	Image *ebiten.Image
	w, h  int

	fill      color.NRGBA
	stroke    color.NRGBA
	shadow    color.NRGBA
	shadowDX  int
	shadowDY  int
	lineWidth float32
	path      [][]point
}

func NewImageSurface(w, h int) *ImageSurface {
	img := ebiten.NewImage(w, h)
	img.Fill(color.Black)
	return &ImageSurface{
		Image:     img,
		w:         w,
		h:         h,
		fill:      surface.Black,
		stroke:    surface.Black,
		lineWidth: 1,
	}
}

// Release frees the image's GPU memory.
func (s *ImageSurface) Release() { s.Image.Deallocate() }

func (s *ImageSurface) Size() (int, int) { return s.w, s.h }

func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(s.w) && y+h >= float64(s.h) {
		s.Image.Fill(color.Black)
		return
	}
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), color.Black, false)
}

func (s *ImageSurface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), s.fill, true)
}

func (s *ImageSurface) BeginPath() { s.path = s.path[:0] }

func (s *ImageSurface) MoveTo(x, y float64) {
	s.path = append(s.path, []point{{float32(x), float32(y)}})
}

func (s *ImageSurface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], point{float32(x), float32(y)})
}

func (s *ImageSurface) Stroke() {
	for _, sub := range s.path {
		for i := 1; i < len(sub); i++ {
			a, b := sub[i-1], sub[i]
			if !finite(a) || !finite(b) {
				continue
			}
			vector.StrokeLine(s.Image, a.x, a.y, b.x, b.y, s.lineWidth, s.stroke, true)
		}
	}
}

func (s *ImageSurface) FillCircle(x, y, r float64) {
	c := point{float32(x), float32(y)}
	if !finite(c) {
		return
	}
	vector.DrawFilledCircle(s.Image, c.x, c.y, float32(r), s.fill, true)
}

func (s *ImageSurface) FillText(str string, x, y float64) {
	if !finite(point{float32(x), float32(y)}) {
		return
	}
	ix, iy := int(math.Round(x)), int(math.Round(y))
	if s.shadow.A > 0 {
		text.Draw(s.Image, str, basicfont.Face7x13, ix+s.shadowDX, iy+s.shadowDY, s.shadow)
	}
	text.Draw(s.Image, str, basicfont.Face7x13, ix, iy, s.fill)
}

func (s *ImageSurface) SetFontSize(px float64)       {}
func (s *ImageSurface) SetFillColor(c color.Color)   { s.fill = surface.NRGBA(c) }
func (s *ImageSurface) SetStrokeColor(c color.Color) { s.stroke = surface.NRGBA(c) }
func (s *ImageSurface) SetLineWidth(w float64)       { s.lineWidth = float32(w) }

func (s *ImageSurface) SetShadow(c color.Color, dx, dy float64) {
	s.shadow = surface.NRGBA(c)
	s.shadowDX, s.shadowDY = int(math.Round(dx)), int(math.Round(dy))
}

func finite(p point) bool {
	x, y := float64(p.x), float64(p.y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
