package scene

import (
	"image/color"
	"math/rand"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

const (
	// Atom counts are drawn between area/maxAreaPerAtom and
	// area/minAreaPerAtom.
	minAreaPerAtom = 4096
	maxAreaPerAtom = 8192

	minRadius = 2
	maxRadius = 5 // exclusive

	maxSpeed = 0.005

	gravityBase      = 300
	gravityPerRadius = 5
)

// Atom is a particle. Position and Velocity are in units of the owning
// surface's size, so [0,1] spans the surface on both axes.
type Atom struct {
	ID       int
	Radius   float64
	Colour   color.NRGBA
	Position curve.Point
	Velocity curve.Point
	// Gravity is the pixel distance under which this atom links to
	// another.
	Gravity float64
}

// GravityFor is the link threshold of an atom of the given radius.
func GravityFor(radius float64) float64 {
	return gravityBase + gravityPerRadius*radius
}

// Pixel returns the atom's position on a w×h surface.
func (a *Atom) Pixel(w, h float64) curve.Point {
	return curve.Point{X: a.Position.X * w, Y: a.Position.Y * h}
}

// Move advances the atom one frame and reflects it off the edges of a w×h
// surface. Each axis is checked on its own; an atom inside the radius
// margin and still moving outward is clamped to the margin and its
// velocity component negated.
func (a *Atom) Move(w, h float64) {
	a.Position = a.Position.Add(a.Velocity)
	a.Position.X, a.Velocity.X = reflect(a.Position.X, a.Velocity.X, a.Radius, w)
	a.Position.Y, a.Velocity.Y = reflect(a.Position.Y, a.Velocity.Y, a.Radius, h)
}

func reflect(pos, vel, radius, size float64) (float64, float64) {
	switch {
	case pos*size <= radius && vel < 0:
		return radius / size, -vel
	case pos*size >= size-radius && vel > 0:
		return (size - radius) / size, -vel
	}
	return pos, vel
}

func (a *Atom) Draw(s surface.Surface, w, h float64) {
	p := a.Pixel(w, h)
	s.SetFillColor(a.Colour)
	s.FillCircle(p.X, p.Y, a.Radius)
}

// PopulateAtoms generates the atoms of a w×h cell: count proportional to
// area, radius 2–4 px, random hue, position and small velocity.
func PopulateAtoms(rng *rand.Rand, ids *Counter, w, h int) []*Atom {
	area := float64(w * h)
	n := int(curve.RandInRange(rng, area/maxAreaPerAtom, area/minAreaPerAtom))

	atoms := make([]*Atom, 0, n)
	for i := 0; i < n; i++ {
		r := curve.RandInRange(rng, minRadius, maxRadius)
		atoms = append(atoms, &Atom{
			ID:       ids.Next(),
			Radius:   r,
			Colour:   surface.HSL(rng.Float64()*360, 1, 0.5),
			Position: curve.Point{X: rng.Float64(), Y: rng.Float64()},
			Velocity: curve.Point{
				X: (rng.Float64() - 0.5) * 2 * maxSpeed,
				Y: (rng.Float64() - 0.5) * 2 * maxSpeed,
			},
			Gravity: GravityFor(r),
		})
	}
	return atoms
}
