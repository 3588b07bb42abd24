package config

import "image/color"

const (
	WindowWidth  = 800
	WindowHeight = 700

	CanvasWidth  = 800
	CanvasHeight = 550

	WindowTitle = "Smartphone Brain Fatigue Simulator"

	// Slider dimensions
	SliderX      = 100
	SliderY      = CanvasHeight + 80
	SliderWidth  = 600
	SliderHeight = 16
	SliderMin    = 0.0
	SliderMax    = 8.0

	// The slider snaps to tenths of an hour
	SliderStepsPerHour = 10

	// Fatigue curve, in hours of usage
	OnsetHours = 2.0
	MaxHours   = SliderMax

	// Network generation
	NodeRadiusMin     = 3.0
	NodeRadiusMax     = 6.0
	EdgeDistanceLimit = 160.0
	EdgeKeepChance    = 0.18

	// Decay
	MaxDisappearChance = 0.7
	MarkerPoolRatio    = 0.4
	MarkerRadiusMin    = 3.0
	MarkerRadiusMax    = 6.0

	// Edge rendering
	EdgeWidthMax   = 2.5
	EdgeWidthFloor = 0.3

	// Signal animation
	PulseRadius       = 3.0
	PulseSpawnChance  = 0.2
	PulseSpawnDamping = 0.9
	PulseSpeedMin     = 0.02
	PulseSpeedMax     = 0.05
	PulseSpeedDamping = 0.8

	// Activity tone
	ToneSampleRate   = 44100
	ToneBaseHz       = 220.0
	ToneMaxGain      = 0.15
	TonePulseCeiling = 12
	ToneSmoothing    = 0.0005
)

var (
	Panel      = color.RGBA{R: 0x24, G: 0x24, B: 0x38, A: 0xff}
	Background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

	NodeHealthy  = color.RGBA{R: 70, G: 180, B: 255, A: 255}
	NodeFatigued = color.RGBA{R: 80, G: 80, B: 90, A: 255}

	EdgeHealthy  = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	EdgeFatigued = color.RGBA{R: 50, G: 50, B: 60, A: 255}

	MarkerColor = color.RGBA{R: 0x3d, G: 0x1e, B: 0x4d, A: 0xff}
	PulseColor  = color.RGBA{R: 0xf0, G: 0xe6, B: 0x8c, A: 0xff}
)
