// Package game is the window around the scene: it owns the ebiten loop, the
// usage slider and the status line, and feeds slider changes and timer ticks
// to the scene through a Dispatcher.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/brain-fatigue/internal/config"
	"github.com/iburimskiy/brain-fatigue/internal/scene"
)

type Options struct {
	Logger *slog.Logger
	// Tone, when set, is kept in step with pulse activity.
	Tone *ActivityTone
}

type Game struct {
	scene      *scene.Scene
	dispatcher *Dispatcher
	slider     *Slider
	tone       *ActivityTone
	logger     *slog.Logger

	statusFace *text.GoTextFace
	labelFace  *text.GoTextFace
}

func New(sc *scene.Scene, opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		scene:      sc,
		dispatcher: NewDispatcher(),
		slider:     NewSlider(),
		tone:       opts.Tone,
		logger:     logger,
		statusFace: &text.GoTextFace{Source: src, Size: 16},
		labelFace:  &text.GoTextFace{Source: src, Size: 11},
	}, nil
}

// Dispatcher returns the queue the ticker goroutine posts to.
func (g *Game) Dispatcher() *Dispatcher { return g.dispatcher }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	p := pointer{
		X:            x,
		Y:            y,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	changed := g.slider.handlePointer(p)
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		changed = g.slider.Nudge(-1) || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		changed = g.slider.Nudge(1) || changed
	}
	if changed {
		g.dispatcher.Post(ControlEvent{Hours: g.slider.Value()})
	}

	g.dispatcher.Drain(g.apply)
	return nil
}

// apply runs one event against the scene. Events never overlap.
func (g *Game) apply(ev Event) {
	switch ev := ev.(type) {
	case ControlEvent:
		g.scene.SetHours(ev.Hours)
	case TickEvent:
		g.scene.Tick()
		if g.tone != nil {
			g.tone.Set(g.scene.Activity().Len(), g.scene.Fatigue())
		}
	default:
		g.logger.Warn("unknown event", "type", fmt.Sprintf("%T", ev))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Panel)
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, config.Background, false)
	g.scene.Canvas().Paint(screen)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(config.WindowWidth/2, config.CanvasHeight+18)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 230, G: 230, B: 240, A: 255})
	text.Draw(screen, g.status(), g.statusFace, op)

	g.slider.Draw(screen, g.labelFace)
}

func (g *Game) status() string {
	f := g.scene.Frame()
	net := g.scene.Network()
	return fmt.Sprintf("Usage %s   Fatigue %.0f%%   Neurons %d/%d   Synapses %d/%d   Plaques %d",
		formatHours(f.Hours), f.Fatigue*100,
		f.VisibleNodes, len(net.Nodes),
		f.VisibleEdges, len(net.Edges),
		f.Markers)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
