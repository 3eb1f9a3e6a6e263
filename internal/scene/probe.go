package scene

import (
	"math/rand"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// DrawProbe paints a small square in a random hue to show that a surface
// is drawable.
func DrawProbe(s surface.Surface, rng *rand.Rand) {
	s.SetFillColor(surface.HSL(rng.Float64()*360, 1, 0.5))
	s.FillRect(8, 8, 16, 16)
}
