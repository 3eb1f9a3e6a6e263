package gui

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// TextureSurface draws one cell into a raylib render texture. Drawing calls
// must happen between BeginFrame and EndFrame.
type TextureSurface struct {
	Target rl.RenderTexture2D
	font   rl.Font
	w, h   int

	fill      rl.Color
	stroke    rl.Color
	shadow    rl.Color
	shadowDX  float32
	shadowDY  float32
	lineWidth float32
	fontSize  float32
	path      [][]rl.Vector2
}

func NewTextureSurface(w, h int, font rl.Font) *TextureSurface {
	s := &TextureSurface{
		Target:    rl.LoadRenderTexture(int32(w), int32(h)),
		font:      font,
		w:         w,
		h:         h,
		fill:      rl.Black,
		stroke:    rl.Black,
		lineWidth: 1,
		fontSize:  10,
	}
	s.BeginFrame()
	rl.ClearBackground(rl.Black)
	s.EndFrame()
	return s
}

func (s *TextureSurface) BeginFrame() { rl.BeginTextureMode(s.Target) }
func (s *TextureSurface) EndFrame()   { rl.EndTextureMode() }

// Release unloads the render texture.
func (s *TextureSurface) Release() { rl.UnloadRenderTexture(s.Target) }

func (s *TextureSurface) Size() (int, int) { return s.w, s.h }

func (s *TextureSurface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(s.w) && y+h >= float64(s.h) {
		rl.ClearBackground(rl.Black)
		return
	}
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), rl.Black)
}

func (s *TextureSurface) FillRect(x, y, w, h float64) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), s.fill)
}

func (s *TextureSurface) BeginPath() { s.path = s.path[:0] }

func (s *TextureSurface) MoveTo(x, y float64) {
	s.path = append(s.path, []rl.Vector2{vec(x, y)})
}

func (s *TextureSurface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], vec(x, y))
}

func (s *TextureSurface) Stroke() {
	for _, sub := range s.path {
		for i := 1; i < len(sub); i++ {
			if !finite(sub[i-1]) || !finite(sub[i]) {
				continue
			}
			rl.DrawLineEx(sub[i-1], sub[i], s.lineWidth, s.stroke)
		}
	}
}

func (s *TextureSurface) FillCircle(x, y, r float64) {
	c := vec(x, y)
	if !finite(c) {
		return
	}
	rl.DrawCircleV(c, float32(r), s.fill)
}

func (s *TextureSurface) FillText(text string, x, y float64) {
	// raylib positions text by its top-left corner; the anchor is the
	// baseline.
	pos := vec(x, y-float64(s.fontSize))
	if !finite(pos) {
		return
	}
	if s.shadow.A > 0 {
		shadowPos := rl.NewVector2(pos.X+s.shadowDX, pos.Y+s.shadowDY)
		rl.DrawTextEx(s.font, text, shadowPos, s.fontSize, 1, s.shadow)
	}
	rl.DrawTextEx(s.font, text, pos, s.fontSize, 1, s.fill)
}

func (s *TextureSurface) SetFontSize(px float64)       { s.fontSize = float32(px) }
func (s *TextureSurface) SetFillColor(c color.Color)   { s.fill = toRL(c) }
func (s *TextureSurface) SetStrokeColor(c color.Color) { s.stroke = toRL(c) }
func (s *TextureSurface) SetLineWidth(w float64)       { s.lineWidth = float32(w) }

func (s *TextureSurface) SetShadow(c color.Color, dx, dy float64) {
	s.shadow = toRL(c)
	s.shadowDX, s.shadowDY = float32(dx), float32(dy)
}

func toRL(c color.Color) rl.Color {
	n := surface.NRGBA(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

func finite(v rl.Vector2) bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
