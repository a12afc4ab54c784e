package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous 4-component value. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point (w = 1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w = 0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return FuzzyEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return FuzzyEqual(t.W, 0)
}

// Add returns the sum of two tuples. point+vector is a point, vector+vector a vector.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples. point-point is a vector.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
// The zero vector yields NaN components; callers must not normalize it.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Length())
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) (Tuple, error) {
	if !t.IsVector() || !other.IsVector() {
		return Tuple{}, fmt.Errorf("cross product of %v and %v: %w", t, other, ErrNotVector)
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	), nil
}

// Reflect returns the tuple reflected around normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FuzzyEqual(t.X, other.X) &&
		FuzzyEqual(t.Y, other.Y) &&
		FuzzyEqual(t.Z, other.Z) &&
		FuzzyEqual(t.W, other.W)
}

func (t Tuple) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	if t.IsVector() {
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
