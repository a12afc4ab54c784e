package animation

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
)

// LinearScale maps a numeric domain onto a piecewise-linear range. The range
// stops are spread evenly across the domain, so a range of [0, 1, 0] rises
// over the first half of the domain and falls over the second.
type LinearScale struct {
	domainStart float64
	domainEnd   float64
	stops       []float64
}

// NewLinearScale creates a scale from [domainStart, domainEnd] onto the given
// range stops. At least two stops are required.
func NewLinearScale(domainStart, domainEnd float64, stops ...float64) (*LinearScale, error) {
	if domainStart == domainEnd {
		return nil, fmt.Errorf("linear scale domain is empty: [%g, %g]", domainStart, domainEnd)
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("linear scale needs at least two range stops, got %d", len(stops))
	}
	return &LinearScale{
		domainStart: domainStart,
		domainEnd:   domainEnd,
		stops:       append([]float64(nil), stops...),
	}, nil
}

// Scale maps input onto the range. Inputs outside the domain are clamped to
// it, and the result never leaves the span of the range stops.
func (s *LinearScale) Scale(input float64) float64 {
	lo, hi := math.Min(s.domainStart, s.domainEnd), math.Max(s.domainStart, s.domainEnd)
	clamped := math.Max(lo, math.Min(hi, input))
	normalized := (clamped - s.domainStart) / (s.domainEnd - s.domainStart)

	segments := len(s.stops) - 1
	position := normalized * float64(segments)
	index := min(int(math.Floor(position)), segments-1)
	t := position - float64(index)

	from, to := s.stops[index], s.stops[index+1]
	output := from + t*(to-from)

	return math.Max(s.minStop(), math.Min(s.maxStop(), output))
}

func (s *LinearScale) minStop() float64 {
	m := math.Inf(1)
	for _, v := range s.stops {
		m = math.Min(m, v)
	}
	return m
}

func (s *LinearScale) maxStop() float64 {
	m := math.Inf(-1)
	for _, v := range s.stops {
		m = math.Max(m, v)
	}
	return m
}

// Frame identifies one frame of an animation
type Frame struct {
	Current int // Zero-based frame index
	Count   int // Total number of frames
}

// Filename returns dir/<name><current, six digits><suffix>, e.g. out/orbit000042.png
func (f Frame) Filename(dir, name, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("%s%06d%s", name, f.Current, suffix))
}

// LinearScale returns a scale whose domain spans the frame count. The domain
// ends one frame past the last, so looping animations do not repeat a frame.
func (f Frame) LinearScale(stops ...float64) (*LinearScale, error) {
	return NewLinearScale(0, float64(f.Count), stops...)
}

// Progress returns how far through the animation the frame is, in [0, 1)
func (f Frame) Progress() float64 {
	if f.Count <= 0 {
		return 0
	}
	return float64(f.Current) / float64(f.Count)
}

// Animator runs a function once per frame
type Animator struct {
	FrameCount int
}

// NewAnimator creates an animator for frameCount frames
func NewAnimator(frameCount int) *Animator {
	return &Animator{FrameCount: frameCount}
}

// Animate calls fn for every frame in order. It stops at the first error or
// when ctx is cancelled.
func (a *Animator) Animate(ctx context.Context, fn func(Frame) error) error {
	for current := 0; current < a.FrameCount; current++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(Frame{Current: current, Count: a.FrameCount}); err != nil {
			return fmt.Errorf("frame %d: %w", current, err)
		}
	}
	return nil
}
