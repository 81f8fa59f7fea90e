package julia

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// every HSB axis runs over [0, colorScale]
const colorScale = 100.0

// hue step per iteration
const hueStep = 10.0

type Color struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

func (c Color) String() string {
	return fmt.Sprintf("{Color H: %g S: %g B: %g}", c.Hue, c.Saturation, c.Brightness)
}

// ColorOf maps an iteration count to a fully saturated, full
// brightness hue. Counts past 10 leave the nominal hue range; RGBA
// wraps them.
func ColorOf(iterations int) Color {
	return Color{
		Hue:        hueStep * float64(iterations),
		Saturation: colorScale,
		Brightness: colorScale,
	}
}

// RGBA converts to an opaque 8-bit color. Hue wraps modulo the scale,
// saturation and brightness clamp to it.
func (c Color) RGBA() color.RGBA {
	h := math.Mod(c.Hue, colorScale)
	if h < 0 {
		h += colorScale
	}
	s := clampScale(c.Saturation) / colorScale
	v := clampScale(c.Brightness) / colorScale
	r, g, b := colorful.Hsv(h*360/colorScale, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clampScale(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > colorScale {
		return colorScale
	}
	return v
}
