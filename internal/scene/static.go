package scene

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/iburimskiy/brain-fatigue/internal/brain"
	"github.com/iburimskiy/brain-fatigue/internal/canvas"
	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// staticLayer draws edges, nodes and plaques. It keeps the handle of every
// shape it drew, keyed by entity index, so the domain types stay free of
// drawing state.
type staticLayer struct {
	canvas  *canvas.Canvas
	net     *brain.Network
	nodes   map[int]canvas.Handle
	edges   map[int]canvas.Handle
	markers []canvas.Handle
}

func newStaticLayer(c *canvas.Canvas, net *brain.Network) *staticLayer {
	return &staticLayer{
		canvas: c,
		net:    net,
		nodes:  make(map[int]canvas.Handle, len(net.Nodes)),
		edges:  make(map[int]canvas.Handle, len(net.Edges)),
	}
}

// draw paints edges, then nodes far to near, then plaques. It returns the
// number of edges drawn.
func (l *staticLayer) draw(f float64, vis brain.Visibility, markers []brain.Marker) int {
	clear(l.nodes)
	clear(l.edges)
	l.markers = l.markers[:0]

	edgeColor, width := EdgeStyle(f)
	for i, e := range l.net.Edges {
		if !vis.EdgeVisible(e) {
			continue
		}
		a, b := l.net.Nodes[e.A].Pos, l.net.Nodes[e.B].Pos
		l.edges[i] = l.canvas.Line(a.X, a.Y, b.X, b.Y, width, edgeColor)
	}

	order := make([]int, 0, len(l.net.Nodes))
	for i := range l.net.Nodes {
		if vis[i] {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(l.net.Nodes[a].Z, l.net.Nodes[b].Z)
	})
	for _, i := range order {
		n := l.net.Nodes[i]
		r, clr := NodeStyle(n, f)
		l.nodes[i] = l.canvas.Circle(n.Pos.X, n.Pos.Y, r, clr)
	}

	for _, m := range markers {
		l.markers = append(l.markers, l.canvas.Circle(m.Pos.X, m.Pos.Y, m.Radius, config.MarkerColor))
	}
	return len(l.edges)
}

// EdgeStyle returns the color and stroke width of every edge at fatigue f.
// The width shrinks linearly with fatigue but never below the floor.
func EdgeStyle(f float64) (color.RGBA, float64) {
	width := math.Max(config.EdgeWidthMax*(1-f), config.EdgeWidthFloor)
	return canvas.Mix(config.EdgeHealthy, config.EdgeFatigued, f, 1), width
}

// NodeStyle returns the display radius and color of n at fatigue f. Nearer
// nodes (larger Z) are drawn bigger and brighter.
func NodeStyle(n brain.Node, f float64) (float64, color.RGBA) {
	depth := (n.Z + 1) / 2
	radius := n.Radius * (0.6 + depth*0.8)
	brightness := 0.8 + depth*0.4
	return radius, canvas.Mix(config.NodeHealthy, config.NodeFatigued, f, brightness)
}
