package grid

import (
	"math/rand"

	"github.com/teraspora/multiple-canvases/internal/scene"
)

// State holds the counters and toggles that outlive a single grid
// generation.
type State struct {
	Digit  int
	Labels bool
	Paused bool

	// Generation counts rebuilds.
	Generation int

	CurveIDs     scene.Counter
	AtomSceneIDs scene.Counter
	AtomIDs      scene.Counter

	Rand *rand.Rand
}

func NewState(digit int, labels bool, seed int64) *State {
	return &State{
		Digit:  digit,
		Labels: labels,
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// Count is the number of cells of the current digit.
func (s *State) Count() int { return s.Digit * s.Digit }
