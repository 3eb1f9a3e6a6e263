package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownCurve is returned for curve names outside the registered set.
var ErrUnknownCurve = errors.New("curve: unknown curve")

// Kind identifies one of the registered curves.
type Kind int

const (
	Rhodonea Kind = iota
	Sine
	Ellipse
	WobblySpiral
	TrigGrid
	HCRR
	WobblyHCRR
	Hypocycloid
	Spiral
	Unknown
)

// trigGridAmplitude is the fixed radius of the trig_grid figure.
const trigGridAmplitude = 200

var kindInfo = [...]struct {
	name   string
	params []string
}{
	Rhodonea:     {"rhodonea", []string{"k", "amp"}},
	Sine:         {"sine", []string{"amp", "freq"}},
	Ellipse:      {"ellipse", []string{"a", "b"}},
	WobblySpiral: {"wobbly_spiral", []string{"r", "density", "x_wobble_amp", "y_wobble_amp", "x_wobble_freq", "y_wobble_freq"}},
	TrigGrid:     {"trig_grid", []string{"p", "q"}},
	HCRR:         {"hcrr", []string{"R", "r", "amp"}},
	WobblyHCRR:   {"wobbly_hcrr", []string{"R", "r", "amp"}},
	Hypocycloid:  {"hypocycloid", []string{"a", "b", "amp"}},
	Spiral:       {"spiral", []string{"r", "density"}},
	Unknown:      {"unknown", []string{"a", "b", "c", "d", "e", "f", "g", "amp"}},
}

// Kinds returns every registered curve in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindInfo))
	for i := range kindInfo {
		ks[i] = Kind(i)
	}
	return ks
}

// Names returns the registered curve names, sorted.
func Names() []string {
	names := make([]string, 0, len(kindInfo))
	for _, info := range kindInfo {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}

// Parse resolves a curve name.
func Parse(name string) (Kind, error) {
	for i, info := range kindInfo {
		if info.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

func (k Kind) Valid() bool { return k >= 0 && int(k) < len(kindInfo) }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// Arity is the number of shape parameters, not counting progress.
func (k Kind) Arity() int {
	if !k.Valid() {
		return 0
	}
	return len(kindInfo[k].params)
}

// ParamNames returns the names of the shape parameters in order.
func (k Kind) ParamNames() []string {
	if !k.Valid() {
		return nil
	}
	return append([]string(nil), kindInfo[k].params...)
}

// Eval evaluates the curve at progress t. Missing parameters are NaN;
// surplus parameters are ignored.
func (k Kind) Eval(params []float64, t float64) Point {
	p := make([]float64, k.Arity())
	for i := range p {
		if i < len(params) {
			p[i] = params[i]
		} else {
			p[i] = math.NaN()
		}
	}

	switch k {
	case Rhodonea:
		n, amp := p[0], p[1]
		r := amp * math.Cos(n*t+t)
		return Point{r * math.Cos(t), r * math.Sin(t)}
	case Sine:
		amp, freq := p[0], p[1]
		return Point{amp * t, amp * math.Sin(freq*t)}
	case Ellipse:
		return Point{p[0] * math.Cos(t), p[1] * math.Sin(t)}
	case WobblySpiral:
		r := shrink(p[0], p[1], t)
		return Point{
			r*math.Cos(-t) + p[2]*math.Sin(t*p[4]),
			r*math.Sin(-t) + p[3]*math.Cos(t*p[5]),
		}
	case TrigGrid:
		return Point{
			trigGridAmplitude * math.Sin(p[0]*math.Pi*t/10),
			trigGridAmplitude * math.Cos(p[1]*math.Pi*t/10),
		}
	case HCRR:
		return hcrr(p[0], p[1], p[2], t)
	case WobblyHCRR:
		pt := hcrr(p[0], p[1], p[2], t)
		pt.X += 6 * math.Sin(t*100)
		return pt
	case Hypocycloid:
		a, b, amp := p[0], p[1], p[2]
		r := a - b
		ratio := r / b
		return Point{
			amp * (r*math.Cos(t) + b*math.Cos(ratio*t)),
			amp * (r*math.Sin(t) - b*math.Sin(ratio*t)),
		}
	case Spiral:
		r := shrink(p[0], p[1], t)
		return Point{r * math.Cos(-t), r * math.Sin(-t)}
	case Unknown:
		a, b, c, d, e, f, g, amp := p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]
		ts := t / 10
		return Point{
			amp * (math.Cos(a*ts) + math.Cos(b*ts)/d + math.Sin(c*ts)/e),
			amp * (math.Sin(a*ts) + math.Sin(b*ts)/f + math.Cos(c*ts)/g),
		}
	}
	return Point{math.NaN(), math.NaN()}
}

// shrink is the spiral radius, falling linearly to zero at t = density·π.
func shrink(r, density, t float64) float64 {
	return r * (density*math.Pi - t) / (density * math.Pi)
}

func hcrr(bigR, r, amp, t float64) Point {
	s := bigR - r
	return Point{
		amp * (s*math.Cos(t) + r*math.Cos(s/r*t)),
		amp * (s*math.Sin(t) - r*math.Sin(s/r*t)),
	}
}
