package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Material interface for surfaces that can be shaded by a light.
// The set of implementations is closed; Phong is currently the only one.
type Material interface {
	// Lighting computes the color at position on the surface of object, as seen
	// along eyev, with surface normal normalv, lit by light.
	Lighting(object Object, light lights.PointLight, position, eyev, normalv core.Tuple, inShadow bool) core.Color

	// Reflectiveness is 0 for a matte surface and 1 for a perfect mirror
	Reflectiveness() float64

	isMaterial()
}

// Object is the part of a body that materials and patterns need: the mapping
// from world space into the body's object space.
type Object interface {
	InverseTransform() core.Matrix
}

// Pattern interface for spatially-varying colors. The set of implementations
// is closed: stripes, gradients, rings and checkers.
type Pattern interface {
	// Transform maps pattern space into object space
	Transform() core.Matrix
	InverseTransform() core.Matrix

	// patternAt evaluates the color at a point already in pattern space
	patternAt(point core.Tuple) core.Color
}

// DefaultMaterial returns a Phong material with default parameters
func DefaultMaterial() Material {
	return NewPhong()
}
