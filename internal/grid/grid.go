package grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juju/loggo"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/scene"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

var logger = loggo.GetLogger("canvasgrid.grid")

var ErrClosed = errors.New("grid: closed")

// SurfaceFactory creates the surface of one w×h cell.
type SurfaceFactory func(w, h int) surface.Surface

// Releaser is implemented by surfaces holding resources that must be freed
// when their cell is discarded.
type Releaser interface {
	Release()
}

// Cell is one placed scene.
type Cell struct {
	Scene   scene.Scene
	Surface surface.Surface
	Handle  *Handle

	Col, Row int
	// X, Y is the cell's top-left corner within the grid area.
	X, Y int
	W, H int
}

// Grid is not safe for concurrent use; hosts drive it from one goroutine.
type Grid struct {
	opts    Options
	state   *State
	curves  []curve.Kind
	factory SurfaceFactory

	areaW, areaH int
	cells        []*Cell
	closed       bool
}

// New resolves the curve whitelist and prepares an empty grid. Call Resize
// to populate it.
func New(opts Options, factory SurfaceFactory) (*Grid, error) {
	if factory == nil {
		return nil, errors.New("grid: nil surface factory")
	}
	if opts.Digit < 0 || opts.Digit > 9 {
		return nil, fmt.Errorf("grid: digit %d out of range", opts.Digit)
	}
	var kinds []curve.Kind
	for _, name := range opts.Curves {
		k, err := curve.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		kinds = append(kinds, k)
	}
	return &Grid{
		opts:    opts,
		state:   NewState(opts.Digit, opts.Labels, opts.Seed),
		curves:  kinds,
		factory: factory,
	}, nil
}

func (g *Grid) State() *State  { return g.state }
func (g *Grid) Cells() []*Cell { return g.cells }
func (g *Grid) Columns() int   { return g.state.Digit }

// Area is the size of the region the cells are laid out in.
func (g *Grid) Area() (int, int) { return g.areaW, g.areaH }

// CellSize is the surface size of every cell for the current digit and
// area.
func (g *Grid) CellSize() (int, int) {
	d := g.state.Digit
	if d == 0 {
		return 0, 0
	}
	return cellSide(g.areaW, d, g.opts.Gap), cellSide(g.areaH, d, g.opts.Gap)
}

func cellSide(area, d, gap int) int {
	side := area/d - gap
	if side < 1 {
		return 1
	}
	return side
}

// Resize sets the grid area and rebuilds.
func (g *Grid) Resize(w, h int) error {
	g.areaW, g.areaH = w, h
	return g.Rebuild()
}

// SetDigit changes the grid side and rebuilds.
func (g *Grid) SetDigit(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("grid: digit %d out of range", d)
	}
	g.state.Digit = d
	return g.Rebuild()
}

// ToggleLabels flips curve labels and rebuilds so they take effect.
func (g *Grid) ToggleLabels() error {
	g.state.Labels = !g.state.Labels
	return g.Rebuild()
}

func (g *Grid) TogglePause() { g.state.Paused = !g.state.Paused }

// Rebuild discards every cell and populates Digit² new ones.
func (g *Grid) Rebuild() error {
	if g.closed {
		return ErrClosed
	}
	g.discard()
	g.state.Generation++

	d := g.state.Digit
	count := g.state.Count()
	cw, ch := g.CellSize()
	cells := make([]*Cell, 0, count)
	for i := 0; i < count; i++ {
		col, row := i%d, i/d
		s := g.factory(cw, ch)
		sc, err := g.Build(g.pickVariant(), s)
		if err != nil {
			release(s)
			g.cells = cells
			g.discard()
			return fmt.Errorf("grid: cell %d: %w", i, err)
		}
		cell := &Cell{
			Scene:   sc,
			Surface: s,
			Handle:  &Handle{},
			Col:     col,
			Row:     row,
			X:       col*(g.areaW/d) + g.opts.Gap/2,
			Y:       row*(g.areaH/d) + g.opts.Gap/2,
			W:       cw,
			H:       ch,
		}
		surface.Frame(s, func() {
			if g.opts.Debug {
				scene.DrawProbe(s, g.state.Rand)
			}
			sc.Render()
		})
		desc := sc.Describe()
		logger.Debugf("cell %d (%d,%d): %s %d %s %v atoms=%d", i, col, row, desc.Kind, desc.ID, desc.Curve, desc.Params, desc.Atoms)
		cells = append(cells, cell)
	}
	g.cells = cells
	logger.Infof("generation %d: %d cells in %d columns, %dx%d each", g.state.Generation, count, d, cw, ch)
	return nil
}

// Tick updates every live scene once and reports how many were updated.
// Nothing is updated while paused.
func (g *Grid) Tick() int {
	if g.state.Paused {
		return 0
	}
	n := 0
	for _, c := range g.cells {
		if !c.Handle.Live() {
			continue
		}
		surface.Frame(c.Surface, c.Scene.Update)
		n++
	}
	return n
}

// Run ticks the grid fps times a second until ctx is done.
func (g *Grid) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("grid: fps must be positive, got %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if g.closed {
				return ErrClosed
			}
			g.Tick()
		}
	}
}

// Close cancels every scene. A closed grid cannot be rebuilt.
func (g *Grid) Close() {
	if g.closed {
		return
	}
	g.discard()
	g.closed = true
}

func (g *Grid) discard() {
	for _, c := range g.cells {
		c.Handle.Cancel()
		release(c.Surface)
	}
	g.cells = nil
}

func release(s surface.Surface) {
	if r, ok := s.(Releaser); ok {
		r.Release()
	}
}

// Describe summarises the scenes of the current generation in cell order.
func (g *Grid) Describe() []scene.Descriptor {
	out := make([]scene.Descriptor, 0, len(g.cells))
	for _, c := range g.cells {
		out = append(out, c.Scene.Describe())
	}
	return out
}
