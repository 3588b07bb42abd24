package game

import (
	"fmt"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatHours formats fractional hours as "Hh MMm".
func formatHours(h float64) string {
	total := int(math.Round(h * 60))
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
