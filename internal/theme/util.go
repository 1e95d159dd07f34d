package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// darkThreshold is the relative luminance below which a background counts as dark.
const darkThreshold = 0.2

// ParseHex parses a hex colour. An alpha channel (#rgba, #rrggbbaa) is dropped.
func ParseHex(c Color) (colorful.Color, error) {
	if !c.IsHex() {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	col, err := colorful.Hex(string(c.Opaque()))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, c, err)
	}
	return col, nil
}

// Luminance returns the WCAG relative luminance of the palette background.
// ok is false when the background is not a hex literal.
func (p Palette) Luminance() (l float64, ok bool) {
	col, err := ParseHex(p.Background)
	if err != nil {
		return 0, false
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0)
func InterpolateColor(colorA, colorB Color, pos float64) Color {
	a, errA := ParseHex(colorA)
	b, errB := ParseHex(colorB)
	if errA != nil || errB != nil {
		return colorA
	}
	return Color(a.BlendRgb(b, pos).Clamped().Hex())
}
