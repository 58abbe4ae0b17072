package core

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square matrix of size 2, 3 or 4 (row-major).
// 4×4 is the transform size; the smaller sizes exist for cofactor expansion.
type Matrix struct {
	size int
	m    [4][4]float64
}

// NewMatrix builds a matrix from rows. It panics unless rows form a 2×2, 3×3 or 4×4 grid.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	if n < 2 || n > 4 {
		panic(fmt.Sprintf("core: unsupported matrix size %d", n))
	}
	result := Matrix{size: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", r, len(row), n))
		}
		copy(result.m[r][:n], row)
	}
	return result
}

// Identity returns the 4×4 identity matrix
func Identity() Matrix {
	return Matrix{size: 4, m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Size returns the number of rows (and columns)
func (a Matrix) Size() int {
	return a.size
}

// At returns the element at the given row and column
func (a Matrix) At(row, col int) float64 {
	return a.m[row][col]
}

// Equal compares two matrices element by element within Epsilon
func (a Matrix) Equal(b Matrix) bool {
	if a.size != b.size {
		return false
	}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			if !FloatEqual(a.m[r][c], b.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns a × b
func (a Matrix) Multiply(b Matrix) Matrix {
	n := a.size
	result := Matrix{size: n}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a.m[r][k] * b.m[k][c]
			}
			result.m[r][c] = sum
		}
	}
	return result
}

// MultiplyTuple returns a × t for a 4×4 matrix
func (a Matrix) MultiplyTuple(t Tuple) Tuple {
	row := func(r int) float64 {
		return a.m[r][0]*t.X + a.m[r][1]*t.Y + a.m[r][2]*t.Z + a.m[r][3]*t.W
	}
	return Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Transpose swaps rows and columns
func (a Matrix) Transpose() Matrix {
	result := Matrix{size: a.size}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			result.m[r][c] = a.m[c][r]
		}
	}
	return result
}

// Submatrix returns the matrix with the given row and column removed
func (a Matrix) Submatrix(row, col int) Matrix {
	result := Matrix{size: a.size - 1}
	dr := 0
	for r := 0; r < a.size; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < a.size; c++ {
			if c == col {
				continue
			}
			result.m[dr][dc] = a.m[r][c]
			dc++
		}
		dr++
	}
	return result
}

// Minor is the determinant of the submatrix at (row, col)
func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor is the minor at (row, col), negated when row+col is odd
func (a Matrix) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along the first row down to the 2×2 case
func (a Matrix) Determinant() float64 {
	if a.size == 2 {
		return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
	}
	det := 0.0
	for c := 0; c < a.size; c++ {
		det += a.m[0][c] * a.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is distinguishable from zero
func (a Matrix) IsInvertible() bool {
	return math.Abs(a.Determinant()) > Epsilon
}

// Inverse returns the adjugate divided by the determinant
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if math.Abs(det) <= Epsilon {
		return Matrix{}, fmt.Errorf("inverting matrix with determinant %g: %w", det, ErrNotInvertible)
	}

	result := Matrix{size: a.size}
	for r := 0; r < a.size; r++ {
		for c := 0; c < a.size; c++ {
			// transposed write folds the adjugate step into the division
			result.m[c][r] = a.Cofactor(r, c) / det
		}
	}
	return result, nil
}

func (a Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < a.size; r++ {
		sb.WriteString("|")
		for c := 0; c < a.size; c++ {
			fmt.Fprintf(&sb, " %g |", a.m[r][c])
		}
		if r < a.size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
