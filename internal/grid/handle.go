package grid

import "sync/atomic"

// Handle is the cancellation token of one scheduled scene.
type Handle struct {
	cancelled atomic.Bool
}

func (h *Handle) Cancel()    { h.cancelled.Store(true) }
func (h *Handle) Live() bool { return !h.cancelled.Load() }
