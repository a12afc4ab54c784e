package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PatternKind names one of the built-in pattern types
type PatternKind string

const (
	PatternStriped      PatternKind = "striped"
	PatternGradient     PatternKind = "gradient"
	PatternRing         PatternKind = "ring"
	PatternCheckerboard PatternKind = "checkerboard"
)

// PatternKinds lists every supported pattern kind
func PatternKinds() []PatternKind {
	return []PatternKind{PatternStriped, PatternGradient, PatternRing, PatternCheckerboard}
}

// DefaultPatternColors returns the two colors a pattern kind uses when none are given
func DefaultPatternColors(kind PatternKind) (core.Color, core.Color, error) {
	switch kind {
	case PatternStriped, PatternCheckerboard:
		return core.Black, core.White, nil
	case PatternGradient:
		return core.Red, core.Green, nil
	case PatternRing:
		return core.Yellow, core.Blue, nil
	default:
		return core.Color{}, core.Color{}, fmt.Errorf("unknown pattern type %q", kind)
	}
}

// NewPattern creates a pattern of the given kind. Checkerboards built here vary in all three dimensions.
func NewPattern(kind PatternKind, a, b core.Color, transform core.Matrix) (Pattern, error) {
	var (
		p   Pattern
		err error
	)
	switch kind {
	case PatternStriped:
		p, err = NewStripePattern(a, b, transform)
	case PatternGradient:
		p, err = NewGradientPattern(a, b, transform)
	case PatternRing:
		p, err = NewRingPattern(a, b, transform)
	case PatternCheckerboard:
		p, err = NewCheckerPattern(a, b, true, transform)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ColorAt returns the pattern's color at a world-space point on object.
// The point is moved into object space, then into pattern space. A nil object
// is treated as untransformed.
func ColorAt(pattern Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := worldPoint
	if object != nil {
		objectPoint = object.InverseTransform().MultiplyTuple(worldPoint)
	}
	patternPoint := pattern.InverseTransform().MultiplyTuple(objectPoint)
	return pattern.patternAt(patternPoint)
}

// patternTransform holds a pattern's transform and its precomputed inverse
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newPatternTransform(transform core.Matrix) (patternTransform, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return patternTransform{}, fmt.Errorf("pattern transform: %w", err)
	}
	return patternTransform{transform: transform, inverse: inverse}, nil
}

// Transform returns the pattern-to-object transform
func (p patternTransform) Transform() core.Matrix {
	return p.transform
}

// InverseTransform returns the object-to-pattern transform
func (p patternTransform) InverseTransform() core.Matrix {
	return p.inverse
}

// isEven reports whether floor(v) is an even integer
func isEven(v float64) bool {
	return math.Mod(math.Floor(v), 2) == 0
}

// StripePattern alternates between two colors in unit-wide bands along x
type StripePattern struct {
	patternTransform
	A, B core.Color
}

// NewStripePattern creates a stripe pattern; transform must be invertible
func NewStripePattern(a, b core.Color, transform core.Matrix) (*StripePattern, error) {
	pt, err := newPatternTransform(transform)
	if err != nil {
		return nil, err
	}
	return &StripePattern{patternTransform: pt, A: a, B: b}, nil
}

func (s *StripePattern) patternAt(point core.Tuple) core.Color {
	if isEven(point.X) {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B across each unit of x
type GradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewGradientPattern creates a gradient pattern; transform must be invertible
func NewGradientPattern(a, b core.Color, transform core.Matrix) (*GradientPattern, error) {
	pt, err := newPatternTransform(transform)
	if err != nil {
		return nil, err
	}
	return &GradientPattern{patternTransform: pt, A: a, B: b}, nil
}

func (g *GradientPattern) patternAt(point core.Tuple) core.Color {
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// RingPattern alternates colors in concentric unit-wide rings around the z axis
type RingPattern struct {
	patternTransform
	A, B core.Color
}

// NewRingPattern creates a ring pattern; transform must be invertible
func NewRingPattern(a, b core.Color, transform core.Matrix) (*RingPattern, error) {
	pt, err := newPatternTransform(transform)
	if err != nil {
		return nil, err
	}
	return &RingPattern{patternTransform: pt, A: a, B: b}, nil
}

func (r *RingPattern) patternAt(point core.Tuple) core.Color {
	if isEven(math.Hypot(point.X, point.Y)) {
		return r.A
	}
	return r.B
}

// CheckerPattern alternates colors in unit cubes, or unit squares in the xy plane
// when ThirdDimension is false
type CheckerPattern struct {
	patternTransform
	A, B           core.Color
	ThirdDimension bool
}

// NewCheckerPattern creates a checker pattern; transform must be invertible
func NewCheckerPattern(a, b core.Color, thirdDimension bool, transform core.Matrix) (*CheckerPattern, error) {
	pt, err := newPatternTransform(transform)
	if err != nil {
		return nil, err
	}
	return &CheckerPattern{patternTransform: pt, A: a, B: b, ThirdDimension: thirdDimension}, nil
}

func (c *CheckerPattern) patternAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y)
	if c.ThirdDimension {
		sum += math.Floor(point.Z)
	}
	if isEven(sum) {
		return c.A
	}
	return c.B
}
