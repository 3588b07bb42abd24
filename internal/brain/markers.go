package brain

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// Marker is a plaque spot left behind by decay.
type Marker struct {
	Pos    r2.Vec
	Radius float64
}

// MarkerPool holds the plaque positions for one decay episode. The pool is
// filled the first time fatigue rises above zero and emptied when it falls
// back, so a new episode scatters new plaques.
type MarkerPool struct {
	size    int
	disk    Disk
	markers []Marker
}

// NewMarkerPool sizes the pool relative to the node count.
func NewMarkerPool(nodes int, disk Disk) *MarkerPool {
	return &MarkerPool{
		size: int(math.Round(config.MarkerPoolRatio * float64(nodes))),
		disk: disk,
	}
}

func (p *MarkerPool) Size() int { return p.size }

// Filled reports whether the current episode's markers have been generated.
func (p *MarkerPool) Filled() bool { return p.markers != nil }

// Active returns the markers to draw at fatigue f.
func (p *MarkerPool) Active(rng *rand.Rand, f float64) []Marker {
	if f <= 0 {
		p.markers = nil
		return nil
	}
	if p.markers == nil {
		p.markers = make([]Marker, 0, p.size)
		for range p.size {
			p.markers = append(p.markers, Marker{
				Pos:    p.disk.Sample(rng),
				Radius: uniform(rng, config.MarkerRadiusMin, config.MarkerRadiusMax),
			})
		}
	}
	return p.markers[:MarkerCount(f, p.size)]
}

// MarkerCount is floor(f*size) clamped to [0, size].
func MarkerCount(f float64, size int) int {
	n := int(math.Floor(f * float64(size)))
	return max(0, min(n, size))
}
