package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Nodes != 150 {
		t.Fatalf("Nodes = %d, want 150", cfg.Nodes)
	}
	if cfg.Radius != 280 {
		t.Fatalf("Radius = %v, want 280", cfg.Radius)
	}
	if cfg.Tick != 50*time.Millisecond {
		t.Fatalf("Tick = %s, want 50ms", cfg.Tick)
	}
	if cfg.Seed == 0 {
		t.Fatal("Seed = 0, want a derived seed")
	}
	if cfg.StableDecay || cfg.Audio {
		t.Fatalf("StableDecay = %v, Audio = %v, want both false", cfg.StableDecay, cfg.Audio)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BRAINVIZ_SEED", "1234")
	t.Setenv("BRAINVIZ_NODES", "60")
	t.Setenv("BRAINVIZ_TICK", "20ms")
	t.Setenv("BRAINVIZ_STABLE_DECAY", "true")
	t.Setenv("BRAINVIZ_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 1234 || cfg.Nodes != 60 || cfg.Tick != 20*time.Millisecond || !cfg.StableDecay {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero nodes", key: "BRAINVIZ_NODES", value: "0"},
		{name: "negative radius", key: "BRAINVIZ_RADIUS", value: "-1"},
		{name: "zero tick", key: "BRAINVIZ_TICK", value: "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Setenv("BRAINVIZ_NODES", "many")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
