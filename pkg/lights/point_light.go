package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight is an infinitely small light source with no size, radiating equally in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position core.Tuple, intensity core.Color) (PointLight, error) {
	if !position.IsPoint() {
		return PointLight{}, fmt.Errorf("light position %v: %w", position, core.ErrNotPoint)
	}
	return PointLight{Position: position, Intensity: intensity}, nil
}

// DirectionFrom returns the unit vector from point towards the light and the distance to it
func (l PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Divide(distance), distance
}
