package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid is returned by Load when a tunable is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables that may be overridden from the environment.
type Config struct {
	Seed        int64         `env:"BRAINVIZ_SEED" envDefault:"0"`
	Nodes       int           `env:"BRAINVIZ_NODES" envDefault:"150"`
	Radius      float64       `env:"BRAINVIZ_RADIUS" envDefault:"280"`
	Tick        time.Duration `env:"BRAINVIZ_TICK" envDefault:"50ms"`
	StableDecay bool          `env:"BRAINVIZ_STABLE_DECAY" envDefault:"false"`
	Audio       bool          `env:"BRAINVIZ_AUDIO" envDefault:"false"`
	LogLevel    slog.Level    `env:"BRAINVIZ_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Nodes <= 0 {
		return fmt.Errorf("%w: nodes must be positive, got %d", ErrInvalid, c.Nodes)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalid, c.Radius)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	return nil
}
