package curve

import (
	"math"
	"math/rand"
)

// RandInRange returns floor((n-m)·U + m) for U uniform in [0,1).
func RandInRange(rng *rand.Rand, m, n float64) float64 {
	return math.Floor((n-m)*rng.Float64() + m)
}

// RandomParams draws a parameter list for k from the ranges the grid uses
// when populating a cell that is width pixels wide.
func RandomParams(k Kind, rng *rand.Rand, width float64) []float64 {
	switch k {
	case HCRR:
		return []float64{rng.Float64() * 10, nonZero(rng) * 4, RandInRange(rng, 16, 32)}
	case WobblyHCRR:
		return []float64{rng.Float64() * 10, nonZero(rng) * 6, RandInRange(rng, 32, 48)}
	case Spiral:
		return []float64{RandInRange(rng, 128, 192), RandInRange(rng, 12, 64)}
	case WobblySpiral:
		return []float64{
			RandInRange(rng, 128, 192),
			RandInRange(rng, 12, 64),
			rng.Float64() * 20,
			rng.Float64() * 20,
			rng.Float64() * 20,
			rng.Float64() * 20,
		}
	case TrigGrid:
		return []float64{RandInRange(rng, 3, 16), RandInRange(rng, 3, 16)}
	case Rhodonea:
		return []float64{RandInRange(rng, 1, 13) / RandInRange(rng, 1, 23), RandInRange(rng, 150, 200)}
	case Hypocycloid:
		return []float64{RandInRange(rng, 10, width/2), RandInRange(rng, 2, width/4), rng.Float64() + 0.2}
	case Sine:
		return []float64{RandInRange(rng, 20, width/6), RandInRange(rng, 1, 12)}
	case Ellipse:
		return []float64{RandInRange(rng, 30, 120), RandInRange(rng, 30, 120)}
	case Unknown:
		return []float64{
			RandInRange(rng, -100, 100),
			RandInRange(rng, -100, 100),
			RandInRange(rng, -100, 100),
			RandInRange(rng, 1, 5),
			RandInRange(rng, 1, 5),
			RandInRange(rng, 1, 5),
			RandInRange(rng, 1, 5),
			RandInRange(rng, 40, width/3),
		}
	}
	return nil
}

// nonZero draws from (0,1]; the rolling-circle radius divides the angle.
func nonZero(rng *rand.Rand) float64 {
	return 1 - rng.Float64()
}
