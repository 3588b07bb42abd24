package brain

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// Node is a neuron: a planar position, a depth in [-1, 1] and a base radius.
type Node struct {
	Pos    r2.Vec
	Z      float64
	Radius float64
}

// Edge joins two node indices.
type Edge struct {
	A, B int
}

// Network is generated once and never resized.
type Network struct {
	Nodes []Node
	Edges []Edge
}

// Disk is the planar region nodes and decay markers are scattered over.
type Disk struct {
	Center           r2.Vec
	RadiusX, RadiusY float64
}

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Sample returns a point uniformly distributed over the area of the disk.
func (d Disk) Sample(rng *rand.Rand) r2.Vec {
	angle := uniform(rng, 0, 2*math.Pi)
	// sqrt keeps the density uniform per unit area rather than per unit radius
	r := math.Sqrt(rng.Float64())
	return r2.Vec{
		X: d.Center.X + d.RadiusX*r*math.Cos(angle),
		Y: d.Center.Y + d.RadiusY*r*math.Sin(angle),
	}
}

// Generate scatters n nodes over disk and links nearby pairs.
func Generate(rng *rand.Rand, n int, disk Disk) *Network {
	net := &Network{Nodes: make([]Node, 0, n)}
	for range n {
		net.Nodes = append(net.Nodes, Node{
			Pos:    disk.Sample(rng),
			Radius: uniform(rng, config.NodeRadiusMin, config.NodeRadiusMax),
			Z:      uniform(rng, -1, 1),
		})
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := depthDistance(net.Nodes[i], net.Nodes[j], disk.RadiusX)
			if d < config.EdgeDistanceLimit && rng.Float64() < config.EdgeKeepChance {
				net.Edges = append(net.Edges, Edge{A: i, B: j})
			}
		}
	}
	return net
}

// depthDistance weighs the depth difference by the disk radius so that depth
// counts as much as planar separation.
func depthDistance(a, b Node, radius float64) float64 {
	p := r3.Vec{X: a.Pos.X, Y: a.Pos.Y, Z: a.Z * radius}
	q := r3.Vec{X: b.Pos.X, Y: b.Pos.Y, Z: b.Z * radius}
	return r3.Norm(r3.Sub(p, q))
}

// PointOn returns the point at fraction t along e.
func (n *Network) PointOn(e Edge, t float64) r2.Vec {
	a, b := n.Nodes[e.A].Pos, n.Nodes[e.B].Pos
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
