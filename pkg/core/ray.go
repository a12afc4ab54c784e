package core

import "fmt"

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray, rejecting a non-point origin or a non-vector direction
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, fmt.Errorf("ray origin %v: %w", origin, ErrNotPoint)
	}
	if !direction.IsVector() {
		return Ray{}, fmt.Errorf("ray direction %v: %w", direction, ErrNotVector)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction multiplied by m
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
