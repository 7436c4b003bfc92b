package rind

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// HueDegrees converts a span angle in radians to a hue in [0, 360).
func HueDegrees(span float64) float64 {
	h := math.Mod(span*180/math.Pi, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod can return exactly 360 for inputs a hair below a multiple.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueColor is the fully saturated, full value color of hue degrees.
// HSV(h, 1, 1) is the same color as HSL(h, 1, 0.5).
func HueColor(degrees float64) gg.RGBA {
	return gg.HSL(degrees, 1, 0.5)
}

// Label is the hue annotation drawn next to the chord.
func (rd RenderDescription) Label() string {
	return fmt.Sprintf("Hue: %.1f°", rd.HueAngleDegrees)
}

// Legend names the chord line.
func (rd RenderDescription) Legend() string {
	return fmt.Sprintf("Hue Line (%.1f°)", rd.HueAngleDegrees)
}
