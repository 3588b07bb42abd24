// Package scene turns the brain network into shapes on a canvas. A Scene is
// driven from one goroutine: SetHours redraws the static layers and Tick
// advances the signal layer.
package scene

import (
	"log/slog"
	"math/rand/v2"

	"github.com/iburimskiy/brain-fatigue/internal/brain"
	"github.com/iburimskiy/brain-fatigue/internal/canvas"
)

type Options struct {
	// StableDecay keeps the hidden node set fixed for a given fatigue
	// instead of re-rolling it on every redraw.
	StableDecay bool
	Logger      *slog.Logger
}

// Frame summarises the most recent static redraw.
type Frame struct {
	Hours        float64
	Fatigue      float64
	VisibleNodes int
	VisibleEdges int
	Markers      int
}

type Scene struct {
	rng      *rand.Rand
	net      *brain.Network
	selector *brain.Selector
	markers  *brain.MarkerPool
	activity *brain.Activity
	canvas   *canvas.Canvas
	static   *staticLayer
	signals  *signalLayer
	logger   *slog.Logger

	hours   float64
	fatigue float64
	vis     brain.Visibility
	frame   Frame
}

// New builds a scene over net and draws it at zero hours.
func New(rng *rand.Rand, net *brain.Network, disk brain.Disk, opts Options) *Scene {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := canvas.New()
	s := &Scene{
		rng:      rng,
		net:      net,
		selector: brain.NewSelector(rng, len(net.Nodes), opts.StableDecay),
		markers:  brain.NewMarkerPool(len(net.Nodes), disk),
		activity: brain.NewActivity(net),
		canvas:   c,
		static:   newStaticLayer(c, net),
		signals:  newSignalLayer(c),
		logger:   logger,
	}
	s.SetHours(0)
	return s
}

// SetHours recomputes visibility for the new usage time and redraws edges,
// nodes and plaques from scratch. Pulses reappear on the next Tick.
func (s *Scene) SetHours(hours float64) Frame {
	s.hours = hours
	s.fatigue = brain.Fatigue(hours)
	s.vis = s.selector.Select(s.fatigue)
	markers := s.markers.Active(s.rng, s.fatigue)

	s.canvas.Clear()
	edges := s.static.draw(s.fatigue, s.vis, markers)

	s.frame = Frame{
		Hours:        hours,
		Fatigue:      s.fatigue,
		VisibleNodes: s.vis.Count(),
		VisibleEdges: edges,
		Markers:      len(markers),
	}
	s.logger.Debug("scene redrawn",
		"hours", hours,
		"fatigue", s.fatigue,
		"nodes", s.frame.VisibleNodes,
		"edges", s.frame.VisibleEdges,
		"markers", s.frame.Markers)
	return s.frame
}

// Tick runs one step of the signal animation against the current visibility.
func (s *Scene) Tick() {
	before := s.activity.Len()
	updates := s.activity.Tick(s.rng, s.fatigue, s.vis)
	if len(updates) > before {
		s.logger.Debug("pulse spawned", "live", s.activity.Len(), "fatigue", s.fatigue)
	}
	s.signals.apply(updates)
}

func (s *Scene) Canvas() *canvas.Canvas { return s.canvas }
func (s *Scene) Network() *brain.Network { return s.net }
func (s *Scene) Visibility() brain.Visibility { return s.vis }
func (s *Scene) Frame() Frame { return s.frame }
func (s *Scene) Fatigue() float64 { return s.fatigue }
func (s *Scene) Activity() *brain.Activity { return s.activity }
func (s *Scene) MarkerPool() *brain.MarkerPool { return s.markers }
