package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		if s[0] != s[1] {
			return math.NaN()
		}
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func TestToneSilentWithoutPulses(t *testing.T) {
	tone := NewActivityTone(config.ToneSampleRate)
	buf := make([][2]float64, 4096)
	n, ok := tone.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v, want %d, true", n, ok, len(buf))
	}
	if p := peak(buf); p != 0 {
		t.Fatalf("peak = %v, want 0", p)
	}
	if err := tone.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestToneFollowsActivity(t *testing.T) {
	tone := NewActivityTone(config.ToneSampleRate)
	tone.Set(100, 0)

	buf := make([][2]float64, config.ToneSampleRate)
	tone.Stream(buf)
	if p := peak(buf); math.IsNaN(p) || p > config.ToneMaxGain {
		t.Fatalf("peak = %v, want at most %v", p, config.ToneMaxGain)
	}
	if p := peak(buf[len(buf)-1000:]); p < 0.9*config.ToneMaxGain {
		t.Fatalf("settled peak = %v, want near %v", p, config.ToneMaxGain)
	}

	tone.Set(0, 1)
	if tone.freq != config.ToneBaseHz/2 {
		t.Fatalf("freq = %v, want %v", tone.freq, config.ToneBaseHz/2)
	}
	tone.Stream(buf)
	if p := peak(buf[len(buf)-1000:]); p > 0.01*config.ToneMaxGain {
		t.Fatalf("peak after silence = %v, want near 0", p)
	}
}
