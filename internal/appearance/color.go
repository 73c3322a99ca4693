// Package appearance holds the wordmark color and the cosmetic background
// themes. Nothing here affects geometry.
package appearance

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA color as uploaded to the color uniform.
type Color [4]float32

// DefaultColor is the stock cyan.
var DefaultColor = Color{0.06, 0.9, 0.9, 1.0}

// ParseColor converts "#rrggbb" into a Color with alpha fixed at 1.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

// MustParseColor is ParseColor for package-level literals.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the RGB part as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

// RGB returns the first three components, as used by color editors.
func (c Color) RGB() [3]float32 {
	return [3]float32{c[0], c[1], c[2]}
}

// FromRGB builds an opaque Color from three components.
func FromRGB(rgb [3]float32) Color {
	return Color{rgb[0], rgb[1], rgb[2], 1}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (c *Color) Ptr() *float32 {
	return &c[0]
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	l, _, _ := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Lab()
	if l > 0.5 {
		return Color{0, 0, 0, 1}
	}
	return Color{1, 1, 1, 1}
}
