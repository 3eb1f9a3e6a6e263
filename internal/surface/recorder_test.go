package surface

import "testing"

func TestRecorder_StrokeKeepsPathUntilBeginPath(t *testing.T) {
	r := NewRecorder(100, 100)
	r.MoveTo(0, 0)
	r.LineTo(10, 10)
	r.Stroke()
	r.LineTo(20, 0)
	r.Stroke()

	segs := r.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments (path accumulates), got %d", len(segs))
	}

	r.Reset()
	r.BeginPath()
	r.MoveTo(0, 0)
	r.LineTo(5, 5)
	r.Stroke()
	if got := len(r.Segments()); got != 1 {
		t.Errorf("expected 1 segment after BeginPath, got %d", got)
	}
}

func TestRecorder_Visible(t *testing.T) {
	r := NewRecorder(50, 40)
	r.FillCircle(5, 5, 2)
	r.ClearRect(0, 0, 10, 10)
	r.FillCircle(6, 6, 2)
	if got := len(r.Visible()); got != 3 {
		t.Fatalf("partial clear should not hide ops, got %d visible", got)
	}

	r.ClearRect(0, 0, 50, 40)
	r.FillCircle(7, 7, 2)
	vis := r.Visible()
	if len(vis) != 1 || vis[0].X != 7 {
		t.Errorf("expected only the op after the full clear, got %+v", vis)
	}
}

func TestRecorder_DrawingState(t *testing.T) {
	r := NewRecorder(10, 10)
	r.SetFillColor(White)
	r.SetFontSize(16)
	r.SetShadow(Black, 2, 0)
	r.FillText("hi", 1, 2)

	op := r.Ops[0]
	if op.Color != White || op.FontSize != 16 || op.ShadowDX != 2 {
		t.Errorf("drawing state not captured: %+v", op)
	}
	if r.Count(OpFillText) != 1 {
		t.Errorf("expected 1 text op")
	}
}

type framed struct {
	*Recorder
	begun, ended int
}

func (f *framed) BeginFrame() { f.begun++ }
func (f *framed) EndFrame()   { f.ended++ }

func TestFrame(t *testing.T) {
	f := &framed{Recorder: NewRecorder(1, 1)}
	called := false
	Frame(f, func() { called = true })
	if !called || f.begun != 1 || f.ended != 1 {
		t.Errorf("Frame did not bracket: called=%v begun=%d ended=%d", called, f.begun, f.ended)
	}

	Frame(NewRecorder(1, 1), func() {})
}
