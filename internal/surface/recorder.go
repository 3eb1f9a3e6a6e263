package surface

import "image/color"

type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpStroke
	OpFillCircle
	OpFillText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpStroke:
		return "stroke"
	case OpFillCircle:
		return "fill-circle"
	case OpFillText:
		return "fill-text"
	}
	return "unknown"
}

type Vec struct {
	X, Y float64
}

// Op is one recorded drawing call with the drawing state it used.
type Op struct {
	Kind OpKind

	// Rect for clear/fill-rect, centre and radius (W) for circles, anchor
	// for text.
	X, Y, W, H float64

	// Subpaths for stroke.
	Path [][]Vec

	Text      string
	Color     color.NRGBA
	LineWidth float64
	FontSize  float64

	Shadow             color.NRGBA
	ShadowDX, ShadowDY float64
}

// Recorder is a Surface that keeps every drawing call in order.
type Recorder struct {
	W, H int
	Ops  []Op

	path      [][]Vec
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float64
	fontSize  float64
	shadow    color.NRGBA
	shadowDX  float64
	shadowDY  float64
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{
		W:         w,
		H:         h,
		fill:      Black,
		stroke:    Black,
		lineWidth: 1,
		fontSize:  10,
	}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: r.fill})
}

func (r *Recorder) BeginPath() { r.path = nil }

func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, []Vec{{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	if len(r.path) == 0 {
		r.MoveTo(x, y)
		return
	}
	last := len(r.path) - 1
	r.path[last] = append(r.path[last], Vec{x, y})
}

// Stroke records the current path. Like a canvas context, the path is
// kept until the next BeginPath.
func (r *Recorder) Stroke() {
	path := make([][]Vec, len(r.path))
	for i, sub := range r.path {
		path[i] = append([]Vec(nil), sub...)
	}
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: path, Color: r.stroke, LineWidth: r.lineWidth})
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: x, Y: y, W: radius, Color: r.fill})
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{
		Kind:     OpFillText,
		X:        x,
		Y:        y,
		Text:     s,
		Color:    r.fill,
		FontSize: r.fontSize,
		Shadow:   r.shadow,
		ShadowDX: r.shadowDX,
		ShadowDY: r.shadowDY,
	})
}

func (r *Recorder) SetFontSize(px float64)       { r.fontSize = px }
func (r *Recorder) SetFillColor(c color.Color)   { r.fill = NRGBA(c) }
func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = NRGBA(c) }
func (r *Recorder) SetLineWidth(w float64)       { r.lineWidth = w }

func (r *Recorder) SetShadow(c color.Color, dx, dy float64) {
	r.shadow = NRGBA(c)
	r.shadowDX, r.shadowDY = dx, dy
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Segments returns every straight segment stroked so far.
func (r *Recorder) Segments() [][2]Vec {
	var segs [][2]Vec
	for _, op := range r.Ops {
		if op.Kind != OpStroke {
			continue
		}
		for _, sub := range op.Path {
			for i := 1; i < len(sub); i++ {
				segs = append(segs, [2]Vec{sub[i-1], sub[i]})
			}
		}
	}
	return segs
}

// Visible returns the ops drawn after the last clear covering the whole
// surface.
func (r *Recorder) Visible() []Op {
	start := 0
	for i, op := range r.Ops {
		if op.Kind == OpClear && op.X <= 0 && op.Y <= 0 && op.X+op.W >= float64(r.W) && op.Y+op.H >= float64(r.H) {
			start = i + 1
		}
	}
	return r.Ops[start:]
}

// Reset drops the recorded ops, keeping the drawing state.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
