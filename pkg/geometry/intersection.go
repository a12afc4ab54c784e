package geometry

import (
	"cmp"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection records where along a world-space ray a body was hit
type Intersection struct {
	T    float64  // Parameter t along the ray
	Ray  core.Ray // The world-space ray that produced the hit
	Body Body     // The body that was hit
}

// Intersections is a collection of intersections ordered by ascending t
type Intersections []Intersection

// NewIntersections copies xs into a collection sorted by t. Equal t values
// keep their relative order.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return sorted
}

// Merge combines several sorted collections into one sorted collection
func Merge(groups ...Intersections) Intersections {
	var all []Intersection
	for _, g := range groups {
		all = append(all, g...)
	}
	return NewIntersections(all...)
}

// Hit returns the intersection with the smallest positive t. Intersections at
// or behind the ray origin are never a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
