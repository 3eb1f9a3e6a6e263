package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

const (
	labelFontSize = 16
	labelShadowDX = 2
)

var (
	labelFill   = surface.MustHex("#4df")
	labelShadow = surface.MustHex("#fda")
)

// CurveConfig selects and shapes the curve a CurveScene traces.
type CurveConfig struct {
	Curve     string
	Params    []float64
	Thickness float64
	// Hue is the stroke hue in degrees at progress 0; it rotates by 100°
	// per progress unit.
	Hue    float64
	Labels bool
	Step   float64
}

// CurveScene draws a curve as a growing polyline, one segment per Update.
// The surface is never cleared, so the trail persists.
type CurveScene struct {
	id       int
	surf     surface.Surface
	w, h     float64
	progress Progress

	kind      curve.Kind
	params    []float64
	thickness float64
	hue       float64
	labels    bool
	prev      curve.Point
}

// NewCurveScene fails with curve.ErrUnknownCurve for unregistered names.
func NewCurveScene(id int, s surface.Surface, cfg CurveConfig) (*CurveScene, error) {
	k, err := curve.Parse(cfg.Curve)
	if err != nil {
		return nil, fmt.Errorf("curve scene %d: %w", id, err)
	}
	if cfg.Thickness <= 0 {
		cfg.Thickness = 1
	}
	w, h := s.Size()
	s.SetLineWidth(cfg.Thickness)
	return &CurveScene{
		id:        id,
		surf:      s,
		w:         float64(w),
		h:         float64(h),
		progress:  NewProgress(cfg.Step),
		kind:      k,
		params:    append([]float64(nil), cfg.Params...),
		thickness: cfg.Thickness,
		hue:       cfg.Hue,
		labels:    cfg.Labels,
	}, nil
}

func (c *CurveScene) ID() int           { return c.id }
func (c *CurveScene) Kind() string      { return "curve" }
func (c *CurveScene) Progress() float64 { return c.progress.Value() }
func (c *CurveScene) Curve() curve.Kind { return c.kind }

// Previous is the last traced point in surface coordinates.
func (c *CurveScene) Previous() curve.Point { return c.prev }

// point evaluates the curve at t and centres it on the surface.
func (c *CurveScene) point(t float64) curve.Point {
	return c.kind.Eval(c.params, t).Add(curve.Point{X: c.w / 2, Y: c.h / 2})
}

// Render fixes the starting point and draws the label.
func (c *CurveScene) Render() {
	c.prev = c.point(c.progress.Value())
	if c.labels {
		c.drawLabel()
	}
}

func (c *CurveScene) drawLabel() {
	params := c.paramString()
	c.surf.SetFontSize(labelFontSize)
	c.surf.SetFillColor(labelFill)
	c.surf.SetShadow(labelShadow, labelShadowDX, 0)
	c.surf.FillText(c.kind.String(), c.w-120, c.h-50)
	c.surf.FillText("("+params+")", c.w-12*float64(len(params))-20, c.h-20)
}

func (c *CurveScene) paramString() string {
	parts := make([]string, len(c.params))
	for i, p := range c.params {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Update appends one segment.
func (c *CurveScene) Update() {
	t := c.progress.Advance()
	next := c.point(t)

	c.surf.SetStrokeColor(surface.HSL(c.hue+t*100, 1, 0.5))
	c.surf.BeginPath()
	c.surf.MoveTo(c.prev.X, c.prev.Y)
	c.surf.LineTo(next.X, next.Y)
	c.surf.Stroke()
	c.prev = next
}

func (c *CurveScene) Describe() Descriptor {
	return Descriptor{
		ID:        c.id,
		Kind:      c.Kind(),
		Width:     int(c.w),
		Height:    int(c.h),
		Curve:     c.kind.String(),
		Params:    append([]float64(nil), c.params...),
		Thickness: c.thickness,
	}
}
