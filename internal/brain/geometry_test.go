package brain

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

func testDisk() Disk {
	return Disk{Center: r2.Vec{X: 400, Y: 275}, RadiusX: 280, RadiusY: 280}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(NewRand(42), 150, testDisk())
	b := Generate(NewRand(42), 150, testDisk())

	if !slices.Equal(a.Nodes, b.Nodes) {
		t.Fatal("nodes differ for the same seed")
	}
	if !slices.Equal(a.Edges, b.Edges) {
		t.Fatal("edges differ for the same seed")
	}

	c := Generate(NewRand(43), 150, testDisk())
	if slices.Equal(a.Nodes, c.Nodes) {
		t.Fatal("nodes equal for different seeds")
	}
}

func TestGenerateNodesInRange(t *testing.T) {
	disk := testDisk()
	net := Generate(NewRand(7), 150, disk)
	if len(net.Nodes) != 150 {
		t.Fatalf("len(Nodes) = %d, want 150", len(net.Nodes))
	}
	for i, n := range net.Nodes {
		if d := r2.Norm(r2.Sub(n.Pos, disk.Center)); d > disk.RadiusX+1e-9 {
			t.Fatalf("node %d at distance %v outside radius %v", i, d, disk.RadiusX)
		}
		if n.Z < -1 || n.Z > 1 {
			t.Fatalf("node %d depth = %v, want within [-1, 1]", i, n.Z)
		}
		if n.Radius < config.NodeRadiusMin || n.Radius >= config.NodeRadiusMax {
			t.Fatalf("node %d radius = %v, want within [%v, %v)", i, n.Radius, config.NodeRadiusMin, config.NodeRadiusMax)
		}
	}
}

func TestGenerateEdges(t *testing.T) {
	disk := testDisk()
	net := Generate(NewRand(7), 150, disk)
	if len(net.Edges) == 0 {
		t.Fatal("expected some edges")
	}
	seen := map[Edge]bool{}
	for _, e := range net.Edges {
		if e.A == e.B {
			t.Fatalf("self loop on node %d", e.A)
		}
		key := Edge{A: min(e.A, e.B), B: max(e.A, e.B)}
		if seen[key] {
			t.Fatalf("duplicate edge %v", e)
		}
		seen[key] = true
		if d := depthDistance(net.Nodes[e.A], net.Nodes[e.B], disk.RadiusX); d >= config.EdgeDistanceLimit {
			t.Fatalf("edge %v spans %v, want below %v", e, d, config.EdgeDistanceLimit)
		}
	}
	complete := 150 * 149 / 2
	if len(net.Edges) >= complete/4 {
		t.Fatalf("len(Edges) = %d, want a sparse graph", len(net.Edges))
	}
}

func TestDiskSampleIsAreaUniform(t *testing.T) {
	disk := testDisk()
	rng := NewRand(1)
	const samples = 20000
	inner := 0
	for range samples {
		p := disk.Sample(rng)
		if r2.Norm(r2.Sub(p, disk.Center)) < disk.RadiusX/2 {
			inner++
		}
	}
	// the inner half radius covers a quarter of the area
	frac := float64(inner) / samples
	if frac < 0.23 || frac > 0.27 {
		t.Fatalf("inner fraction = %v, want about 0.25", frac)
	}
}

func TestPointOn(t *testing.T) {
	net := &Network{Nodes: []Node{{Pos: r2.Vec{X: 0, Y: 0}}, {Pos: r2.Vec{X: 10, Y: 20}}}}
	got := net.PointOn(Edge{A: 0, B: 1}, 0.25)
	if got != (r2.Vec{X: 2.5, Y: 5}) {
		t.Fatalf("PointOn = %v, want {2.5 5}", got)
	}
}
