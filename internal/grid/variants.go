package grid

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/teraspora/multiple-canvases/internal/curve"
	"github.com/teraspora/multiple-canvases/internal/scene"
	"github.com/teraspora/multiple-canvases/internal/surface"
)

const (
	VariantCurve = "curve"
	VariantAtoms = "atoms"
)

// curveSlots is the number of equally likely slots in the default curve
// table; slots past the named curves select the unknown curve.
const curveSlots = 16

var curveTable = []curve.Kind{
	curve.HCRR,
	curve.Spiral,
	curve.TrigGrid,
	curve.Rhodonea,
	curve.Hypocycloid,
	curve.Sine,
	curve.WobblySpiral,
	curve.WobblyHCRR,
}

// builder constructs one scene of a variant on s.
type builder func(g *Grid, s surface.Surface) (scene.Scene, error)

var variants = map[string]builder{
	VariantCurve: buildCurve,
	VariantAtoms: buildAtoms,
}

// Variants lists the scene variants a grid can populate.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs a single scene of the named variant using the grid's
// state and options, without placing it in a cell.
func (g *Grid) Build(variant string, s surface.Surface) (scene.Scene, error) {
	fn, ok := variants[variant]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s", variant)
	}
	return fn(g, s)
}

func (g *Grid) pickVariant() string {
	if g.state.Rand.Float64() < g.opts.AtomProbability {
		return VariantAtoms
	}
	return VariantCurve
}

func (g *Grid) pickCurve() curve.Kind {
	rng := g.state.Rand
	if len(g.curves) > 0 {
		return g.curves[rng.Intn(len(g.curves))]
	}
	if i := rng.Intn(curveSlots); i < len(curveTable) {
		return curveTable[i]
	}
	return curve.Unknown
}

func (g *Grid) thickness() float64 {
	if g.state.Count() < 5 {
		return 1
	}
	return curve.RandInRange(g.state.Rand, 1, 3)
}

func buildCurve(g *Grid, s surface.Surface) (scene.Scene, error) {
	rng := g.state.Rand
	k := g.pickCurve()
	w, _ := s.Size()
	return scene.NewCurveScene(g.state.CurveIDs.Next(), s, scene.CurveConfig{
		Curve:     k.String(),
		Params:    curve.RandomParams(k, rng, float64(w)),
		Thickness: g.thickness(),
		Hue:       rng.Float64() * 360,
		Labels:    g.state.Labels,
		Step:      g.opts.step(),
	})
}

func buildAtoms(g *Grid, s surface.Surface) (scene.Scene, error) {
	rng := g.state.Rand
	w, h := s.Size()
	atoms := scene.PopulateAtoms(rng, &g.state.AtomIDs, w, h)
	return scene.NewAtomScene(g.state.AtomSceneIDs.Next(), s, atoms, scene.AtomConfig{
		ColourConnections: rng.Float64() < g.opts.ColourConnectionsProbability,
		Step:              g.opts.step(),
		Rand:              rand.New(rand.NewSource(rng.Int63())),
	}), nil
}
