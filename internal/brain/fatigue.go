package brain

import (
	"math"

	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// Fatigue maps hours of usage to [0, 1]. It stays at zero up to the onset
// and reaches one at the top of the slider range.
func Fatigue(hours float64) float64 {
	if hours <= config.OnsetHours {
		return 0
	}
	return math.Min((hours-config.OnsetHours)/(config.MaxHours-config.OnsetHours), 1)
}

// DisappearChance is the per-node probability of being hidden at fatigue f.
func DisappearChance(f float64) float64 {
	return f * config.MaxDisappearChance
}

// SpawnChance is the per-tick probability of starting a pulse.
func SpawnChance(f float64) float64 {
	return config.PulseSpawnChance * (1 - f*config.PulseSpawnDamping)
}

// SpeedScale slows pulses as fatigue rises. It never reaches zero.
func SpeedScale(f float64) float64 {
	return 1 - f*config.PulseSpeedDamping
}
