package render

import (
	"image/color"
)

// Palette maps contour levels onto a linear ramp between two anchor
// colors. Undefined-region contours never pass through the ramp; they
// take Options.NaNColor instead.
type Palette struct {
	Low  color.RGBA // anchor for the lowest level
	High color.RGBA // anchor for the highest level
}

// DefaultPalette returns a deep-blue to warm-yellow ramp that reads
// well on a white background.
func DefaultPalette() Palette {
	return Palette{
		Low:  color.RGBA{R: 49, G: 54, B: 149, A: 255},
		High: color.RGBA{R: 253, G: 231, B: 37, A: 255},
	}
}

// Color returns the ramp color for level within [lo, hi]. Levels
// outside the range clamp to the nearest anchor; a degenerate or
// undefined range yields the low anchor. Complexity: O(1).
func (p Palette) Color(level, lo, hi float64) color.RGBA {
	t := 0.0
	if hi > lo {
		t = (level - lo) / (hi - lo)
	}
	if !(t > 0) {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return color.RGBA{
		R: lerp8(p.Low.R, p.High.R, t),
		G: lerp8(p.Low.G, p.High.G, t),
		B: lerp8(p.Low.B, p.High.B, t),
		A: lerp8(p.Low.A, p.High.A, t),
	}
}

// lerp8 blends two channel values at ratio t in [0,1].
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
