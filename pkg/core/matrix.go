package core

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a row-major 4x4 transformation matrix
type Matrix [4][4]float64

// matrix3 and matrix2 are the minors produced while expanding cofactors
type matrix3 [3][3]float64
type matrix2 [2][2]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix moving points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix scaling each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation around the x axis (radians, left-handed)
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation around the y axis (radians, left-handed)
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation around the z axis (radians, left-handed)
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a shear matrix. xy moves x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform orients the world relative to an eye at from looking at to.
// up only needs to point roughly upwards.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	if !from.IsPoint() || !to.IsPoint() {
		return Matrix{}, fmt.Errorf("view transform from %v to %v: %w", from, to, ErrNotPoint)
	}
	forward := to.Subtract(from).Normalize()
	left, err := forward.Cross(up.Normalize())
	if err != nil {
		return Matrix{}, fmt.Errorf("view transform up %v: %w", up, err)
	}
	trueUp, err := left.Cross(forward)
	if err != nil {
		return Matrix{}, err
	}

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

// Compose chains transforms so that the first argument is applied first.
// Compose(a, b, c) == c * b * a.
func Compose(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m * t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Minor returns the determinant of the submatrix without row and col
func (m Matrix) Minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	return sign(row, col) * m.Minor(row, col)
}

// IsInvertible reports whether the determinant is not ~0
func (m Matrix) IsInvertible() bool {
	return !FuzzyEqual(m.Determinant(), 0)
}

// Inverse returns the matrix inverse, computed as the transposed cofactor
// matrix divided by the determinant.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if FuzzyEqual(det, 0) {
		return Matrix{}, fmt.Errorf("determinant %g: %w", det, ErrSingularMatrix)
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed storage
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals compares two matrices element-wise within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FuzzyEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "| %g %g %g %g |", m[row][0], m[row][1], m[row][2], m[row][3])
		if row < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Matrix) submatrix(skipRow, skipCol int) matrix3 {
	var result matrix3
	r := 0
	for row := 0; row < 4; row++ {
		if row == skipRow {
			continue
		}
		c := 0
		for col := 0; col < 4; col++ {
			if col == skipCol {
				continue
			}
			result[r][c] = m[row][col]
			c++
		}
		r++
	}
	return result
}

func (m matrix3) submatrix(skipRow, skipCol int) matrix2 {
	var result matrix2
	r := 0
	for row := 0; row < 3; row++ {
		if row == skipRow {
			continue
		}
		c := 0
		for col := 0; col < 3; col++ {
			if col == skipCol {
				continue
			}
			result[r][c] = m[row][col]
			c++
		}
		r++
	}
	return result
}

func (m matrix3) minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

func (m matrix3) cofactor(row, col int) float64 {
	return sign(row, col) * m.minor(row, col)
}

func (m matrix3) determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

func (m matrix2) determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func sign(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
