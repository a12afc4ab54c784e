package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Body interface for objects that can be hit by rays. The set of body kinds is
// closed (Sphere, Plane); each kind defines itself in object space and the
// shared transform handling maps world-space rays and points into it.
type Body interface {
	// Material returns the body's surface material
	Material() material.Material
	// Transform returns the object-to-world transform
	Transform() core.Matrix
	// InverseTransform returns the world-to-object transform
	InverseTransform() core.Matrix
	// Intersect returns every intersection of a world-space ray with the body, sorted by t
	Intersect(ray core.Ray) Intersections
	// NormalAt returns the world-space unit normal at a world-space point on the surface
	NormalAt(worldPoint core.Tuple) core.Tuple

	// localIntersect returns the t values where an object-space ray meets the canonical shape
	localIntersect(ray core.Ray) []float64
	// localNormalAt returns the object-space normal at an object-space point
	localNormalAt(point core.Tuple) core.Tuple
}

// bodyBase holds the state shared by every body kind. The inverse and the
// normal matrix are derived once at construction.
type bodyBase struct {
	transform    core.Matrix
	inverse      core.Matrix
	normalMatrix core.Matrix
	material     material.Material
}

func newBodyBase(kind string, transform core.Matrix, mat material.Material) (bodyBase, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return bodyBase{}, fmt.Errorf("%s transform: %w", kind, err)
	}
	if mat == nil {
		mat = material.DefaultMaterial()
	}
	return bodyBase{
		transform:    transform,
		inverse:      inverse,
		normalMatrix: inverse.Transpose(),
		material:     mat,
	}, nil
}

// Material returns the body's surface material
func (b *bodyBase) Material() material.Material {
	return b.material
}

// Transform returns the object-to-world transform
func (b *bodyBase) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the world-to-object transform
func (b *bodyBase) InverseTransform() core.Matrix {
	return b.inverse
}

// intersect moves the ray into the body's object space and wraps each local
// root into an Intersection that keeps the original world-space ray.
func intersect(body Body, base *bodyBase, ray core.Ray) Intersections {
	local := ray.Transform(base.inverse)
	roots := body.localIntersect(local)
	xs := make([]Intersection, len(roots))
	for i, t := range roots {
		xs[i] = Intersection{T: t, Ray: ray, Body: body}
	}
	return NewIntersections(xs...)
}

// normalAt moves the point into object space, takes the local normal and
// brings it back with the inverse transpose. The w component is dropped so a
// translation in the transform cannot leak into the normal.
func normalAt(body Body, base *bodyBase, worldPoint core.Tuple) core.Tuple {
	localPoint := base.inverse.MultiplyTuple(worldPoint)
	localNormal := body.localNormalAt(localPoint)
	worldNormal := base.normalMatrix.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
