package core

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// toDense converts a Matrix into a gonum dense matrix for cross-checking
func toDense(m Matrix) *mat.Dense {
	data := make([]float64, 0, 16)
	for row := 0; row < 4; row++ {
		data = append(data, m[row][:]...)
	}
	return mat.NewDense(4, 4, data)
}

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected\n%v\ngot\n%v", expected, got)
	}
	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("Multiplying by identity changed the matrix:\n%v", got)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := a.MultiplyTuple(Tuple{1, 2, 3, 1})
	if !got.Equals(Tuple{18, 24, 33, 1}) {
		t.Errorf("Expected tuple(18, 24, 33, 1), got %v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}
	if got := a.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected\n%v\ngot\n%v", expected, got)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transpose of identity should be identity")
	}
}

func TestMatrix_SmallDeterminants(t *testing.T) {
	m2 := matrix2{{1, 5}, {-3, 2}}
	if got := m2.determinant(); !FuzzyEqual(got, 17) {
		t.Errorf("2x2 determinant: expected 17, got %f", got)
	}

	m3 := matrix3{
		{1, 2, 6},
		{-5, 8, -4},
		{2, 6, 4},
	}
	cofactors := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 56},
		{0, 1, 12},
		{0, 2, -46},
	}
	for _, c := range cofactors {
		if got := m3.cofactor(c.row, c.col); !FuzzyEqual(got, c.expected) {
			t.Errorf("3x3 cofactor(%d,%d): expected %f, got %f", c.row, c.col, c.expected, got)
		}
	}
	if got := m3.determinant(); !FuzzyEqual(got, -196) {
		t.Errorf("3x3 determinant: expected -196, got %f", got)
	}

	// minor of a 3x3 equals the determinant of its submatrix
	m := matrix3{
		{3, 5, 0},
		{2, -1, -7},
		{6, -1, 5},
	}
	if got := m.minor(1, 0); !FuzzyEqual(got, 25) {
		t.Errorf("3x3 minor(1,0): expected 25, got %f", got)
	}
	if got := m.cofactor(1, 0); !FuzzyEqual(got, -25) {
		t.Errorf("3x3 cofactor(1,0): expected -25, got %f", got)
	}
}

func TestMatrix_Submatrix(t *testing.T) {
	a := Matrix{
		{-6, 1, 1, 6},
		{-8, 5, 8, 6},
		{-1, 0, 8, 2},
		{-7, 1, -1, 1},
	}
	expected := matrix3{
		{-6, 1, 6},
		{-8, 8, 6},
		{-7, -1, 1},
	}
	if got := a.submatrix(2, 1); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	a := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}

	cofactors := []struct {
		col      int
		expected float64
	}{
		{0, 690},
		{1, 447},
		{2, 210},
		{3, 51},
	}
	for _, c := range cofactors {
		if got := a.Cofactor(0, c.col); !FuzzyEqual(got, c.expected) {
			t.Errorf("cofactor(0,%d): expected %f, got %f", c.col, c.expected, got)
		}
	}

	if got := a.Determinant(); !FuzzyEqual(got, -4071) {
		t.Errorf("Expected determinant -4071, got %f", got)
	}

	if oracle := mat.Det(toDense(a)); math.Abs(oracle-a.Determinant()) > 1e-6 {
		t.Errorf("Determinant %f disagrees with gonum %f", a.Determinant(), oracle)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	expected := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}

	if got := a.Determinant(); !FuzzyEqual(got, 532) {
		t.Errorf("Expected determinant 532, got %f", got)
	}
	if got := a.Cofactor(2, 3); !FuzzyEqual(got, -160) {
		t.Errorf("Expected cofactor(2,3) -160, got %f", got)
	}

	inverse, err := a.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !FuzzyEqual(inverse[3][2], -160.0/532.0) {
		t.Errorf("Expected inverse[3][2] = -160/532, got %f", inverse[3][2])
	}
	if !inverse.Equals(expected) {
		t.Errorf("Expected\n%v\ngot\n%v", expected, inverse)
	}

	var oracle mat.Dense
	if err := oracle.Inverse(toDense(a)); err != nil {
		t.Fatalf("gonum inverse failed: %v", err)
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(oracle.At(row, col)-inverse[row][col]) > 1e-9 {
				t.Errorf("inverse[%d][%d] = %f, gonum says %f", row, col, inverse[row][col], oracle.At(row, col))
			}
		}
	}
}

func TestMatrix_InverseOfSingularMatrixFails(t *testing.T) {
	a := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}

	if a.IsInvertible() {
		t.Error("Expected matrix to be singular")
	}
	if _, err := a.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
	if _, err := Scaling(0, 1, 1).Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix for zero scaling, got %v", err)
	}
}

func TestMatrix_ProductTimesInverse(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	inverseB, err := b.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := a.Multiply(b).Multiply(inverseB); !got.Equals(a) {
		t.Errorf("Expected (A*B)*inv(B) = A, got\n%v", got)
	}
}

func TestMatrix_InverseRoundTrip(t *testing.T) {
	transforms := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translation(5, -3, 2)},
		{"scaling", Scaling(2, 3, 4)},
		{"rotation x", RotationX(math.Pi / 3)},
		{"rotation y", RotationY(-math.Pi / 5)},
		{"rotation z", RotationZ(1.234)},
		{"shearing", Shearing(1, 0.5, 0, 2, 0.25, 0)},
		{"composed", Compose(Scaling(0.5, 2, 1), RotationY(0.7), Translation(1, 2, 3))},
	}
	points := []Tuple{
		NewPoint(0, 0, 0),
		NewPoint(1, -2, 3),
		NewPoint(-4.5, 0.25, 9),
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			inverse, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, p := range points {
				if got := inverse.MultiplyTuple(tt.m.MultiplyTuple(p)); !got.Equals(p) {
					t.Errorf("inv(M) * (M * %v) = %v", p, got)
				}
			}
		})
	}
}

func TestMatrix_Transformations(t *testing.T) {
	half := math.Sqrt2 / 2
	tests := []struct {
		name     string
		m        Matrix
		input    Tuple
		expected Tuple
	}{
		{"translation moves a point", Translation(5, -3, 2), NewPoint(-3, 4, 5), NewPoint(2, 1, 7)},
		{"translation ignores vectors", Translation(5, -3, 2), NewVector(-3, 4, 5), NewVector(-3, 4, 5)},
		{"scaling a point", Scaling(2, 3, 4), NewPoint(-4, 6, 8), NewPoint(-8, 18, 32)},
		{"scaling a vector", Scaling(2, 3, 4), NewVector(-4, 6, 8), NewVector(-8, 18, 32)},
		{"reflection is negative scaling", Scaling(-1, 1, 1), NewPoint(2, 3, 4), NewPoint(-2, 3, 4)},
		{"half quarter around x", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, half, half)},
		{"full quarter around x", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"half quarter around y", RotationY(math.Pi / 4), NewPoint(0, 0, 1), NewPoint(half, 0, half)},
		{"full quarter around y", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"half quarter around z", RotationZ(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(-half, half, 0)},
		{"full quarter around z", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 4), NewPoint(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 4), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMatrix_ChainedTransformsApplyRightToLeft(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	chained := c.Multiply(b).Multiply(a)
	if got := chained.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7), got %v", got)
	}
	if got := Compose(a, b, c); !got.Equals(chained) {
		t.Errorf("Compose(a, b, c) should equal c*b*a, got\n%v", got)
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: Matrix{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0},
				{0, 0, 0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewTransform(tt.from, tt.to, tt.up)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Expected\n%v\ngot\n%v", tt.expected, got)
			}
		})
	}
}

func TestViewTransform_RejectsPointAsUp(t *testing.T) {
	_, err := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, -1), NewPoint(0, 1, 0))
	if !errors.Is(err, ErrNotVector) {
		t.Errorf("Expected ErrNotVector, got %v", err)
	}
}
