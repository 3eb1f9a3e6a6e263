package scene

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// linkFadeDistance is the distance at which a link's alpha reaches zero.
const linkFadeDistance = 100

// AtomConfig configures an AtomScene.
type AtomConfig struct {
	// ColourConnections draws each link in a random hue instead of white.
	ColourConnections bool
	Step              float64
	// Rand picks link hues; nil uses the math/rand global source.
	Rand *rand.Rand
}

// AtomScene moves a fixed set of atoms and links every pair closer than
// the smaller of their gravity radii.
type AtomScene struct {
	id       int
	surf     surface.Surface
	w, h     float64
	progress Progress

	atoms             []*Atom
	colourConnections bool
	rng               *rand.Rand
	links             int
}

func NewAtomScene(id int, s surface.Surface, atoms []*Atom, cfg AtomConfig) *AtomScene {
	w, h := s.Size()
	return &AtomScene{
		id:                id,
		surf:              s,
		w:                 float64(w),
		h:                 float64(h),
		progress:          NewProgress(cfg.Step),
		atoms:             atoms,
		colourConnections: cfg.ColourConnections,
		rng:               cfg.Rand,
	}
}

func (a *AtomScene) ID() int           { return a.id }
func (a *AtomScene) Kind() string      { return "atoms" }
func (a *AtomScene) Progress() float64 { return a.progress.Value() }
func (a *AtomScene) Atoms() []*Atom    { return a.atoms }

// Links is the number of links drawn by the last Update.
func (a *AtomScene) Links() int { return a.links }

// Render draws nothing; the first frame is blank.
func (a *AtomScene) Render() {}

func (a *AtomScene) Update() {
	a.progress.Advance()
	a.surf.ClearRect(0, 0, a.w, a.h)

	for _, atom := range a.atoms {
		atom.Move(a.w, a.h)
	}

	a.surf.SetLineWidth(1)
	a.links = 0
	for i := 0; i < len(a.atoms); i++ {
		for j := i + 1; j < len(a.atoms); j++ {
			p, q := a.atoms[i].Pixel(a.w, a.h), a.atoms[j].Pixel(a.w, a.h)
			d := p.Dist(q)
			if !Linked(a.atoms[i], a.atoms[j], d) {
				continue
			}
			a.surf.SetStrokeColor(a.linkColour(d))
			a.surf.BeginPath()
			a.surf.MoveTo(p.X, p.Y)
			a.surf.LineTo(q.X, q.Y)
			a.surf.Stroke()
			a.links++
		}
	}

	for _, atom := range a.atoms {
		atom.Draw(a.surf, a.w, a.h)
	}
}

// Linked reports whether atoms at pixel distance d are joined.
func Linked(p, q *Atom, d float64) bool {
	return d < math.Min(p.Gravity, q.Gravity)
}

// LinkAlpha fades a link from opaque at distance 0 to invisible at 100 px.
func LinkAlpha(d float64) float64 {
	return (linkFadeDistance - math.Min(d, linkFadeDistance)) / linkFadeDistance
}

func (a *AtomScene) linkColour(d float64) color.NRGBA {
	alpha := LinkAlpha(d)
	if a.colourConnections {
		return surface.HSLuv(a.randFloat()*360, alpha)
	}
	return surface.WithAlpha(surface.White, alpha)
}

func (a *AtomScene) randFloat() float64 {
	if a.rng != nil {
		return a.rng.Float64()
	}
	return rand.Float64()
}

func (a *AtomScene) Describe() Descriptor {
	return Descriptor{
		ID:                a.id,
		Kind:              a.Kind(),
		Width:             int(a.w),
		Height:            int(a.h),
		Atoms:             len(a.atoms),
		ColourConnections: a.colourConnections,
	}
}
