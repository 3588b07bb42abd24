package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// ActivityTone is a beep.Streamer that hums along with the network. Loudness
// follows the number of live pulses and pitch drops as fatigue rises. The
// game loop sets the targets and the speaker goroutine streams towards them.
type ActivityTone struct {
	sampleRate beep.SampleRate

	mu   sync.RWMutex
	gain float64
	freq float64

	// owned by the speaker goroutine
	level float64
	phase float64
}

func NewActivityTone(sr beep.SampleRate) *ActivityTone {
	return &ActivityTone{
		sampleRate: sr,
		freq:       config.ToneBaseHz,
	}
}

// Set updates the loudness and pitch targets.
func (t *ActivityTone) Set(pulses int, fatigue float64) {
	ratio := math.Min(float64(pulses)/config.TonePulseCeiling, 1)
	t.mu.Lock()
	t.gain = ratio * config.ToneMaxGain
	t.freq = config.ToneBaseHz * (1 - 0.5*fatigue)
	t.mu.Unlock()
}

func (t *ActivityTone) Stream(samples [][2]float64) (int, bool) {
	t.mu.RLock()
	gain, freq := t.gain, t.freq
	t.mu.RUnlock()

	step := 2 * math.Pi * freq / float64(t.sampleRate)
	for i := range samples {
		t.level += (gain - t.level) * config.ToneSmoothing
		v := math.Sin(t.phase) * t.level
		samples[i] = [2]float64{v, v}
		t.phase += step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (t *ActivityTone) Err() error { return nil }

// StartTone opens the default audio device and plays t until the process exits.
func StartTone(t *ActivityTone) error {
	if err := speaker.Init(t.sampleRate, t.sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(t)
	return nil
}
