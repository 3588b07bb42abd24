package canvas

import (
	"image/color"
	"math"
)

// Mix interpolates a toward b by t per channel, multiplies by scale and
// clamps each channel to [0, 255]. Alpha is taken from a.
func Mix(a, b color.RGBA, t, scale float64) color.RGBA {
	return color.RGBA{
		R: channel(Lerp(float64(a.R), float64(b.R), t) * scale),
		G: channel(Lerp(float64(a.G), float64(b.G), t) * scale),
		B: channel(Lerp(float64(a.B), float64(b.B), t) * scale),
		A: a.A,
	}
}

// Lerp interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// channel truncates v and clamps it to a valid color channel.
func channel(v float64) uint8 {
	v = math.Trunc(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
