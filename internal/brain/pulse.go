package brain

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// Pulse is a signal travelling along one edge.
type Pulse struct {
	ID       uint64
	Edge     int
	Progress float64
	Speed    float64
}

type PulseState int

const (
	// PulseMoved means the pulse advanced and is still travelling.
	PulseMoved PulseState = iota
	// PulseArrived means the pulse reached the end of its edge.
	PulseArrived
	// PulseStranded means an endpoint of its edge was hidden mid-flight.
	PulseStranded
)

func (s PulseState) String() string {
	switch s {
	case PulseMoved:
		return "moved"
	case PulseArrived:
		return "arrived"
	case PulseStranded:
		return "stranded"
	default:
		return "unknown"
	}
}

// PulseUpdate reports what happened to one pulse during a tick. Pos is only
// meaningful for PulseMoved.
type PulseUpdate struct {
	ID    uint64
	State PulseState
	Pos   r2.Vec
}

// Activity tracks the live pulses on a network.
type Activity struct {
	net    *Network
	nextID uint64
	pulses []Pulse
}

func NewActivity(net *Network) *Activity {
	return &Activity{net: net}
}

// Pulses returns the live pulses. The slice must not be modified.
func (a *Activity) Pulses() []Pulse { return a.pulses }

// Len returns the number of live pulses.
func (a *Activity) Len() int { return len(a.pulses) }

// Tick maybe spawns one pulse on a visible edge, then advances every pulse.
// Pulses that arrive or lose an endpoint are dropped.
func (a *Activity) Tick(rng *rand.Rand, f float64, v Visibility) []PulseUpdate {
	visible := VisibleEdges(a.net.Edges, v)
	if len(visible) > 0 && rng.Float64() < SpawnChance(f) {
		a.nextID++
		a.pulses = append(a.pulses, Pulse{
			ID:    a.nextID,
			Edge:  visible[rng.IntN(len(visible))],
			Speed: uniform(rng, config.PulseSpeedMin, config.PulseSpeedMax) * SpeedScale(f),
		})
	}

	updates := make([]PulseUpdate, 0, len(a.pulses))
	live := a.pulses[:0]
	for _, p := range a.pulses {
		p.Progress += p.Speed
		edge := a.net.Edges[p.Edge]
		switch {
		case p.Progress >= 1:
			updates = append(updates, PulseUpdate{ID: p.ID, State: PulseArrived})
		case !v.EdgeVisible(edge):
			updates = append(updates, PulseUpdate{ID: p.ID, State: PulseStranded})
		default:
			updates = append(updates, PulseUpdate{ID: p.ID, State: PulseMoved, Pos: a.net.PointOn(edge, p.Progress)})
			live = append(live, p)
		}
	}
	clear(a.pulses[len(live):])
	a.pulses = live
	return updates
}
