package export

import (
	"github.com/juju/loggo"

	"github.com/teraspora/multiple-canvases/internal/grid"
	"github.com/teraspora/multiple-canvases/internal/store"
)

var logger = loggo.GetLogger("canvasgrid.export")

type linker interface {
	Links() int
}

// Animate ticks g frames times across workers goroutines, calling capture
// after every frame, and returns per-frame statistics. A capture error
// stops the run.
func Animate(g *grid.Grid, frames, workers int, capture func(frame int) error) ([]store.FrameStat, error) {
	stats := make([]store.FrameStat, 0, frames)
	for i := 0; i < frames; i++ {
		st := store.FrameStat{Frame: i, Updated: g.TickParallel(workers)}
		for _, c := range g.Cells() {
			if l, ok := c.Scene.(linker); ok {
				st.Links += l.Links()
			}
		}
		stats = append(stats, st)
		if capture == nil {
			continue
		}
		if err := capture(i); err != nil {
			return stats, err
		}
	}
	logger.Debugf("animated %d frames over %d cells", frames, len(g.Cells()))
	return stats, nil
}
