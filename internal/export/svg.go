package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// SVGCell is a recorded surface placed at X, Y.
type SVGCell struct {
	X, Y int
	Rec  *surface.Recorder
}

// WriteSVG replays the visible operations of every cell into one SVG
// document of the given size. Operations before a cell's last full clear
// are omitted, and non-finite coordinates are dropped.
func WriteSVG(w io.Writer, width, height int, bg color.Color, cells []SVGCell) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fillStyle(surface.NRGBA(bg)))
	for _, c := range cells {
		canvas.Translate(c.X, c.Y)
		for _, op := range c.Rec.Visible() {
			writeOp(canvas, op)
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

func writeOp(canvas *svg.SVG, op surface.Op) {
	switch op.Kind {
	case surface.OpClear:
		canvas.Rect(iround(op.X), iround(op.Y), iround(op.W), iround(op.H), fillStyle(surface.Black))
	case surface.OpFillRect:
		canvas.Rect(iround(op.X), iround(op.Y), iround(op.W), iround(op.H), fillStyle(op.Color))
	case surface.OpStroke:
		if d := pathData(op.Path); d != "" {
			canvas.Path(d, strokeStyle(op.Color, op.LineWidth))
		}
	case surface.OpFillCircle:
		if finite(op.X, op.Y) {
			canvas.Circle(iround(op.X), iround(op.Y), iround(op.W), fillStyle(op.Color))
		}
	case surface.OpFillText:
		if !finite(op.X, op.Y) {
			return
		}
		font := fmt.Sprintf("font-family:monospace;font-size:%gpx", op.FontSize)
		if op.Shadow.A > 0 {
			canvas.Text(iround(op.X+op.ShadowDX), iround(op.Y+op.ShadowDY), op.Text, font+";"+fillStyle(op.Shadow))
		}
		canvas.Text(iround(op.X), iround(op.Y), op.Text, font+";"+fillStyle(op.Color))
	}
}

func pathData(path [][]surface.Vec) string {
	var sb strings.Builder
	for _, sub := range path {
		start := true
		for _, v := range sub {
			if !finite(v.X, v.Y) {
				start = true
				continue
			}
			cmd := "L"
			if start {
				cmd = "M"
				start = false
			}
			fmt.Fprintf(&sb, "%s%.2f %.2f ", cmd, v.X, v.Y)
		}
	}
	return strings.TrimSpace(sb.String())
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}

func strokeStyle(c color.NRGBA, width float64) string {
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%g;stroke-linecap:round",
		c.R, c.G, c.B, float64(c.A)/255, width)
}

func iround(v float64) int { return int(math.Round(v)) }

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
