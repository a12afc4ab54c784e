package core

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for every floating point comparison
const Epsilon = 0.00001

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is ~0
	ErrSingularMatrix = errors.New("matrix is not invertible")
	// ErrNotPoint is returned when a point was required
	ErrNotPoint = errors.New("tuple is not a point")
	// ErrNotVector is returned when a vector was required
	ErrNotVector = errors.New("tuple is not a vector")
)

// FuzzyEqual reports whether a and b differ by less than Epsilon
func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
