package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/brain-fatigue/internal/brain"
	"github.com/iburimskiy/brain-fatigue/internal/config"
	"github.com/iburimskiy/brain-fatigue/internal/game"
	"github.com/iburimskiy/brain-fatigue/internal/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	rng := brain.NewRand(cfg.Seed)
	disk := brain.Disk{
		Center:  r2.Vec{X: config.CanvasWidth / 2, Y: config.CanvasHeight / 2},
		RadiusX: cfg.Radius,
		RadiusY: cfg.Radius,
	}
	net := brain.Generate(rng, cfg.Nodes, disk)
	logger.Info("network generated",
		"seed", cfg.Seed,
		"nodes", len(net.Nodes),
		"edges", len(net.Edges),
		"stable_decay", cfg.StableDecay)

	sc := scene.New(rng, net, disk, scene.Options{StableDecay: cfg.StableDecay, Logger: logger})

	opts := game.Options{Logger: logger}
	if cfg.Audio {
		tone := game.NewActivityTone(beep.SampleRate(config.ToneSampleRate))
		if err := game.StartTone(tone); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			opts.Tone = tone
		}
	}
	g, err := game.New(sc, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return g.Dispatcher().RunTicker(ctx, cfg.Tick)
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	runErr := ebiten.RunGame(g)

	// the ticker must not outlive the window
	cancel()
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("ticker: %w", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
