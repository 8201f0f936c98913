package canvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB color. It implements image/color.Color.
type Color = colorful.Color

var (
	White    = Color{R: 1, G: 1, B: 1}
	DarkGray = Color{R: 1.0 / 3, G: 1.0 / 3, B: 1.0 / 3}
)

// HSB builds a color from hue, saturation and brightness, each in [0,1].
func HSB(hue, saturation, brightness float64) Color {
	return colorful.Hsv(hue*360, saturation, brightness)
}

// Hex parses a "#rrggbb" color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
