package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/brain-fatigue/internal/brain"
	"github.com/iburimskiy/brain-fatigue/internal/canvas"
	"github.com/iburimskiy/brain-fatigue/internal/config"
)

// Slider is the usage-time control. It keeps its value inside [Min, Max]
// and snaps it to tenths of an hour.
type Slider struct {
	X, Y, Width, Height int
	Min, Max            float64

	value    float64
	hovered  bool
	dragging bool
}

// pointer is the mouse state for one frame.
type pointer struct {
	X, Y         int
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

func NewSlider() *Slider {
	return &Slider{
		X:      config.SliderX,
		Y:      config.SliderY,
		Width:  config.SliderWidth,
		Height: config.SliderHeight,
		Min:    config.SliderMin,
		Max:    config.SliderMax,
	}
}

func (s *Slider) Value() float64 { return s.value }

// Set clamps and snaps v and reports whether the value changed.
func (s *Slider) Set(v float64) bool {
	v = math.Max(s.Min, math.Min(v, s.Max))
	v = math.Round(v*config.SliderStepsPerHour) / config.SliderStepsPerHour
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Nudge moves the value by steps tenths of an hour.
func (s *Slider) Nudge(steps int) bool {
	return s.Set(s.value + float64(steps)/config.SliderStepsPerHour)
}

// valueAt maps a cursor x coordinate onto the slider range.
func (s *Slider) valueAt(x int) float64 {
	ratio := clamp01(float64(x-s.X) / float64(s.Width))
	return s.Min + ratio*(s.Max-s.Min)
}

func (s *Slider) contains(x, y int) bool {
	const grab = 8
	return x >= s.X-grab && x <= s.X+s.Width+grab &&
		y >= s.Y-grab && y <= s.Y+s.Height+grab
}

// handlePointer applies one frame of mouse input and reports whether the
// value changed.
func (s *Slider) handlePointer(p pointer) bool {
	s.hovered = s.contains(p.X, p.Y)
	if s.hovered && p.JustPressed {
		s.dragging = true
	}
	if !s.dragging {
		return false
	}
	changed := s.Set(s.valueAt(p.X))
	if p.JustReleased || !p.Pressed {
		s.dragging = false
	}
	return changed
}

func (s *Slider) Draw(screen *ebiten.Image, face *text.GoTextFace) {
	ratio := (s.value - s.Min) / (s.Max - s.Min)
	f := brain.Fatigue(s.value)
	fill := canvas.Mix(config.NodeHealthy, config.NodeFatigued, f, 1)

	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), color.RGBA{R: 25, G: 30, B: 40, A: 255}, false)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(ratio*float64(s.Width)), float32(s.Height), fill, false)
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	// onset marker
	onsetX := float32(float64(s.X) + (config.OnsetHours-s.Min)/(s.Max-s.Min)*float64(s.Width))
	vector.StrokeLine(screen, onsetX, float32(s.Y-4), onsetX, float32(s.Y+s.Height+4), 1, config.MarkerColor, false)

	knobX := float32(float64(s.X) + ratio*float64(s.Width))
	knobY := float32(s.Y + s.Height/2)
	knob := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if s.hovered || s.dragging {
		knob = color.RGBA{R: 240, G: 230, B: 140, A: 255}
	}
	vector.DrawFilledCircle(screen, knobX, knobY, 9, knob, true)
	vector.StrokeCircle(screen, knobX, knobY, 9, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, true)

	if face == nil {
		return
	}
	for h := int(s.Min); h <= int(s.Max); h++ {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(s.X)+(float64(h)-s.Min)/(s.Max-s.Min)*float64(s.Width), float64(s.Y+s.Height+10))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 170, G: 175, B: 190, A: 255})
		text.Draw(screen, fmt.Sprintf("%dh", h), face, op)
	}
}
