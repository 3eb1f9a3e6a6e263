package grid

import (
	"sync"
	"sync/atomic"

	"github.com/teraspora/multiple-canvases/internal/surface"
)

// TickParallel is Tick with the live scenes split across up to workers
// goroutines. Scenes never share surfaces or random sources, so this is
// safe for surfaces that need no thread affinity (raster, recorder); window
// surfaces must use Tick.
func (g *Grid) TickParallel(workers int) int {
	n := len(g.cells)
	if workers <= 1 || n <= 1 {
		return g.Tick()
	}
	if g.state.Paused {
		return 0
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var updated atomic.Int64
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(cells []*Cell) {
			defer wg.Done()
			for _, c := range cells {
				if !c.Handle.Live() {
					continue
				}
				surface.Frame(c.Surface, c.Scene.Update)
				updated.Add(1)
			}
		}(g.cells[start:end])
	}
	wg.Wait()
	return int(updated.Load())
}
