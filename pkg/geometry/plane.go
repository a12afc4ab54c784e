package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Plane is the infinite xz plane through the object-space origin (y = 0)
type Plane struct {
	bodyBase
}

// NewPlane creates a plane with the given object-to-world transform.
// A nil material means the default Phong material.
func NewPlane(transform core.Matrix, mat material.Material) (*Plane, error) {
	base, err := newBodyBase("plane", transform, mat)
	if err != nil {
		return nil, err
	}
	return &Plane{bodyBase: base}, nil
}

// NewGroundPlane creates an untransformed plane
func NewGroundPlane(mat material.Material) *Plane {
	// the identity is always invertible
	p, _ := NewPlane(core.Identity(), mat)
	return p
}

// Intersect implements the Body interface
func (p *Plane) Intersect(ray core.Ray) Intersections {
	return intersect(p, &p.bodyBase, ray)
}

// NormalAt implements the Body interface
func (p *Plane) NormalAt(worldPoint core.Tuple) core.Tuple {
	return normalAt(p, &p.bodyBase, worldPoint)
}

func (p *Plane) localIntersect(ray core.Ray) []float64 {
	// Parallel or coplanar rays never register a hit
	if math.Abs(ray.Direction.Y) <= core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (p *Plane) localNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
