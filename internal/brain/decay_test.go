package brain

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func hiddenRate(v Visibility) float64 {
	xs := make([]float64, len(v))
	for i, ok := range v {
		if !ok {
			xs[i] = 1
		}
	}
	return stat.Mean(xs, nil)
}

func TestSelectAtZeroFatigue(t *testing.T) {
	s := NewSelector(NewRand(1), 150, false)
	v := s.Select(0)
	if got := v.Count(); got != 150 {
		t.Fatalf("Count() = %d, want 150", got)
	}
}

func TestSelectAtFullFatigue(t *testing.T) {
	s := NewSelector(NewRand(3), 20000, false)
	if got := hiddenRate(s.Select(1)); math.Abs(got-0.7) > 0.02 {
		t.Fatalf("hidden rate = %v, want about 0.7", got)
	}
}

func TestSelectAtFiveHours(t *testing.T) {
	s := NewSelector(NewRand(5), 150, false)
	f := Fatigue(5)
	rates := make([]float64, 0, 200)
	for range 200 {
		rates = append(rates, hiddenRate(s.Select(f)))
	}
	if got := stat.Mean(rates, nil); math.Abs(got-0.35) > 0.02 {
		t.Fatalf("mean hidden rate = %v, want about 0.35", got)
	}
}

func TestSelectRerollsEachCall(t *testing.T) {
	s := NewSelector(NewRand(9), 150, false)
	a, b := s.Select(0.5), s.Select(0.5)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two redraws at the same fatigue produced identical visibility")
	}
}

func TestStableSelector(t *testing.T) {
	s := NewSelector(NewRand(9), 500, true)
	low, high := s.Select(0.3), s.Select(0.8)
	again := s.Select(0.3)
	for i := range low {
		if low[i] != again[i] {
			t.Fatalf("node %d changed between redraws at the same fatigue", i)
		}
		if !low[i] && high[i] {
			t.Fatalf("node %d hidden at low fatigue but shown at high fatigue", i)
		}
	}
}

func TestVisibleEdges(t *testing.T) {
	edges := []Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 0, B: 3}}
	v := Visibility{true, true, false, true}
	got := VisibleEdges(edges, v)
	want := []int{0, 3}
	if len(got) != len(want) {
		t.Fatalf("VisibleEdges = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("VisibleEdges = %v, want %v", got, want)
		}
	}
}

func TestEdgeVisibilityFollowsNodes(t *testing.T) {
	net := Generate(NewRand(11), 150, testDisk())
	s := NewSelector(NewRand(12), len(net.Nodes), false)
	for _, h := range []float64{0, 3, 5, 8} {
		v := s.Select(Fatigue(h))
		visible := map[int]bool{}
		for _, i := range VisibleEdges(net.Edges, v) {
			visible[i] = true
		}
		for i, e := range net.Edges {
			want := v[e.A] && v[e.B]
			if visible[i] != want {
				t.Fatalf("hours %v: edge %d visible = %v, want %v", h, i, visible[i], want)
			}
		}
	}
}
