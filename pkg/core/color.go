package core

import "fmt"

// Color is an unclamped RGB triple
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Named colors used as pattern defaults
var (
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Yellow = Color{1, 1, 0}
)

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Equals compares two colors component-wise within Epsilon
func (c Color) Equals(other Color) bool {
	return FuzzyEqual(c.R, other.R) && FuzzyEqual(c.G, other.G) && FuzzyEqual(c.B, other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
