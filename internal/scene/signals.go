package scene

import (
	"github.com/iburimskiy/brain-fatigue/internal/brain"
	"github.com/iburimskiy/brain-fatigue/internal/canvas"
	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// signalLayer owns the shape of each live pulse, keyed by pulse ID.
type signalLayer struct {
	canvas  *canvas.Canvas
	handles map[uint64]canvas.Handle
}

func newSignalLayer(c *canvas.Canvas) *signalLayer {
	return &signalLayer{canvas: c, handles: map[uint64]canvas.Handle{}}
}

// apply erases each pulse's previous shape and redraws the ones still moving.
// A handle left stale by a static redraw is erased as a no-op.
func (l *signalLayer) apply(updates []brain.PulseUpdate) {
	for _, u := range updates {
		l.canvas.Delete(l.handles[u.ID])
		if u.State != brain.PulseMoved {
			delete(l.handles, u.ID)
			continue
		}
		l.handles[u.ID] = l.canvas.Circle(u.Pos.X, u.Pos.Y, config.PulseRadius, config.PulseColor)
	}
}
