package brain

import "math/rand/v2"

// Visibility flags which nodes are drawn in the current redraw.
type Visibility []bool

// AllVisible returns a Visibility with every one of n nodes shown.
func AllVisible(n int) Visibility {
	v := make(Visibility, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// EdgeVisible reports whether both endpoints of e are shown.
func (v Visibility) EdgeVisible(e Edge) bool {
	return v[e.A] && v[e.B]
}

// Count returns the number of shown nodes.
func (v Visibility) Count() int {
	n := 0
	for _, ok := range v {
		if ok {
			n++
		}
	}
	return n
}

// VisibleEdges returns the indices of edges whose endpoints are both shown.
func VisibleEdges(edges []Edge, v Visibility) []int {
	out := make([]int, 0, len(edges))
	for i, e := range edges {
		if v.EdgeVisible(e) {
			out = append(out, i)
		}
	}
	return out
}

// Selector decides which nodes survive at a given fatigue.
//
// By default every call rolls fresh dice, so nodes flicker between redraws at
// the same fatigue. A stable selector draws one threshold per node up front;
// a node is hidden once the disappear chance exceeds its threshold, so decay
// only grows as fatigue grows.
type Selector struct {
	rng        *rand.Rand
	n          int
	thresholds []float64
}

// NewSelector returns a Selector over n nodes.
func NewSelector(rng *rand.Rand, n int, stable bool) *Selector {
	s := &Selector{rng: rng, n: n}
	if stable {
		s.thresholds = make([]float64, n)
		for i := range s.thresholds {
			s.thresholds[i] = rng.Float64()
		}
	}
	return s
}

// Select returns a new Visibility for fatigue f.
func (s *Selector) Select(f float64) Visibility {
	v := AllVisible(s.n)
	if f <= 0 {
		return v
	}
	p := DisappearChance(f)
	for i := range v {
		var u float64
		if s.thresholds != nil {
			u = s.thresholds[i]
		} else {
			u = s.rng.Float64()
		}
		if u < p {
			v[i] = false
		}
	}
	return v
}
