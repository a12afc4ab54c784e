package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin. Position, size
// and squashing all come from its transform.
type Sphere struct {
	bodyBase
}

// NewSphere creates a sphere with the given object-to-world transform.
// A nil material means the default Phong material.
func NewSphere(transform core.Matrix, mat material.Material) (*Sphere, error) {
	base, err := newBodyBase("sphere", transform, mat)
	if err != nil {
		return nil, err
	}
	return &Sphere{bodyBase: base}, nil
}

// NewUnitSphere creates an untransformed sphere
func NewUnitSphere(mat material.Material) *Sphere {
	// the identity is always invertible
	s, _ := NewSphere(core.Identity(), mat)
	return s
}

// Intersect implements the Body interface
func (s *Sphere) Intersect(ray core.Ray) Intersections {
	return intersect(s, &s.bodyBase, ray)
}

// NormalAt implements the Body interface
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	return normalAt(s, &s.bodyBase, worldPoint)
}

func (s *Sphere) localIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// Both roots are returned, even when negative or equal
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

func (s *Sphere) localNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0)).Normalize()
}
