package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Computations holds the values derived from a hit that shading needs
type Computations struct {
	T         float64
	Body      Body
	Point     core.Tuple // World-space hit point
	OverPoint core.Tuple // Point nudged along the normal, used as the origin of shadow and reflection rays
	Eyev      core.Tuple // Unit vector back towards the ray origin
	Normalv   core.Tuple // Surface normal, flipped to face the eye
	Reflectv  core.Tuple // Ray direction reflected about the normal
	Inside    bool       // Whether the ray started inside the body
}

// PrepareComputations derives the shading values for an intersection
func (i Intersection) PrepareComputations() Computations {
	point := i.Ray.At(i.T)
	eyev := i.Ray.Direction.Negate()
	normalv := i.Body.NormalAt(point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	return Computations{
		T:         i.T,
		Body:      i.Body,
		Point:     point,
		OverPoint: point.Add(normalv.Multiply(core.Epsilon)),
		Eyev:      eyev,
		Normalv:   normalv,
		Reflectv:  i.Ray.Direction.Reflect(normalv),
		Inside:    inside,
	}
}
