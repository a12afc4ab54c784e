package core

import (
	"errors"
	"testing"
)

func TestNewRay_Validation(t *testing.T) {
	tests := []struct {
		name      string
		origin    Tuple
		direction Tuple
		wantErr   error
	}{
		{"valid ray", NewPoint(1, 2, 3), NewVector(4, 5, 6), nil},
		{"vector origin", NewVector(1, 2, 3), NewVector(4, 5, 6), ErrNotPoint},
		{"point direction", NewPoint(1, 2, 3), NewPoint(4, 5, 6), ErrNotVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewRay(tt.origin, tt.direction)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if err == nil && (!ray.Origin.Equals(tt.origin) || !ray.Direction.Equals(tt.direction)) {
				t.Errorf("Ray fields not preserved: %+v", ray)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := Ray{Origin: NewPoint(2, 3, 4), Direction: NewVector(1, 0, 0)}

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); !got.Equals(tt.expected) {
			t.Errorf("At(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray := Ray{Origin: NewPoint(1, 2, 3), Direction: NewVector(0, 1, 0)}

	translated := ray.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equals(NewPoint(4, 6, 8)) || !translated.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("Unexpected translated ray %+v", translated)
	}

	scaled := ray.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(NewPoint(2, 6, 12)) || !scaled.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("Unexpected scaled ray %+v", scaled)
	}

	// the original ray is a value and must not change
	if !ray.Origin.Equals(NewPoint(1, 2, 3)) {
		t.Errorf("Original ray was modified: %+v", ray)
	}
}
