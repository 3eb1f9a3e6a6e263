package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCurveScene_Ellipse(t *testing.T) {
	rec := surface.NewRecorder(200, 200)
	s, err := NewCurveScene(0, rec, CurveConfig{Curve: "ellipse", Params: []float64{50, 30}, Thickness: 1})
	if err != nil {
		t.Fatalf("NewCurveScene failed: %v", err)
	}

	s.Render()
	if p := s.Previous(); p != (curve.Point{X: 150, Y: 100}) {
		t.Fatalf("expected previous point (150,100) after render, got %v", p)
	}

	s.Update()
	p := s.Previous()
	wantX, wantY := 100+50*math.Cos(0.02), 100+30*math.Sin(0.02)
	if !near(p.X, wantX) || !near(p.Y, wantY) {
		t.Errorf("expected (%f,%f), got %v", wantX, wantY, p)
	}
	if math.Abs(p.X-149.99) > 0.01 || math.Abs(p.Y-100.60) > 0.01 {
		t.Errorf("expected about (149.99, 100.60), got %v", p)
	}

	segs := rec.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0][0] != (surface.Vec{X: 150, Y: 100}) {
		t.Errorf("segment should start at the rendered point, got %v", segs[0][0])
	}
}

func TestCurveScene_NUpdatesNSegments(t *testing.T) {
	params := []float64{120, 40, 0.8}
	rec := surface.NewRecorder(300, 240)
	s, err := NewCurveScene(3, rec, CurveConfig{Curve: "hypocycloid", Params: params, Thickness: 2})
	if err != nil {
		t.Fatal(err)
	}
	s.Render()

	const n = 137
	for i := 0; i < n; i++ {
		s.Update()
	}

	if got := len(rec.Segments()); got != n {
		t.Errorf("expected %d segments, got %d", n, got)
	}
	if rec.Count(surface.OpClear) != 0 {
		t.Error("curve scene must never clear its surface")
	}

	want := curve.Hypocycloid.Eval(params, s.Progress()).Add(curve.Point{X: 150, Y: 120})
	if got := s.Previous(); !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("previous point %v, want %v", got, want)
	}
	if !near(s.Progress(), n*DefaultStep) {
		t.Errorf("progress %f, want %f", s.Progress(), n*DefaultStep)
	}
}

func TestCurveScene_Continuous(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	s, _ := NewCurveScene(0, rec, CurveConfig{Curve: "spiral", Params: []float64{40, 12}})
	s.Render()
	for i := 0; i < 10; i++ {
		s.Update()
	}
	segs := rec.Segments()
	for i := 1; i < len(segs); i++ {
		if segs[i][0] != segs[i-1][1] {
			t.Fatalf("segment %d does not start where %d ended", i, i-1)
		}
	}
}

func TestCurveScene_StrokeHueRotates(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	s, _ := NewCurveScene(0, rec, CurveConfig{Curve: "ellipse", Params: []float64{10, 10}, Hue: 30})
	s.Render()
	s.Update()

	want := surface.HSL(30+0.02*100, 1, 0.5)
	if got := rec.Ops[0].Color; got != want {
		t.Errorf("stroke colour %v, want %v", got, want)
	}
}

func TestCurveScene_Label(t *testing.T) {
	rec := surface.NewRecorder(400, 300)
	s, _ := NewCurveScene(0, rec, CurveConfig{Curve: "ellipse", Params: []float64{30, 45.5}, Labels: true})
	s.Render()

	if rec.Count(surface.OpFillText) != 2 {
		t.Fatalf("expected 2 label texts, got %d", rec.Count(surface.OpFillText))
	}
	name, params := rec.Ops[0], rec.Ops[1]
	if name.Text != "ellipse" || name.X != 280 || name.Y != 250 {
		t.Errorf("unexpected name label %+v", name)
	}
	if params.Text != "(30,45.5)" || params.X != 400-12*7-20 || params.Y != 280 {
		t.Errorf("unexpected params label %+v", params)
	}
	if name.FontSize != 16 || name.ShadowDX != 2 {
		t.Errorf("unexpected label style %+v", name)
	}
}

func TestCurveScene_NoLabel(t *testing.T) {
	rec := surface.NewRecorder(400, 300)
	s, _ := NewCurveScene(0, rec, CurveConfig{Curve: "ellipse", Params: []float64{30, 45}})
	s.Render()
	if len(rec.Ops) != 0 {
		t.Errorf("render without labels should not draw, got %d ops", len(rec.Ops))
	}
}

func TestCurveScene_UnknownCurve(t *testing.T) {
	_, err := NewCurveScene(0, surface.NewRecorder(10, 10), CurveConfig{Curve: "cardioid"})
	if !errors.Is(err, curve.ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestCurveScene_NaNParamsDegradeSilently(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	s, err := NewCurveScene(0, rec, CurveConfig{Curve: "unknown", Params: []float64{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	s.Render()
	s.Update()
	if p := s.Previous(); p.IsFinite() {
		t.Errorf("expected NaN point, got %v", p)
	}
}

func TestCurveScene_Describe(t *testing.T) {
	s, _ := NewCurveScene(9, surface.NewRecorder(80, 60), CurveConfig{Curve: "sine", Params: []float64{20, 3}, Thickness: 2})
	d := s.Describe()
	if d.ID != 9 || d.Kind != "curve" || d.Curve != "sine" || d.Thickness != 2 || d.Width != 80 || len(d.Params) != 2 {
		t.Errorf("unexpected descriptor %+v", d)
	}
}
