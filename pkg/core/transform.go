package core

import (
	"fmt"
	"math"
)

// Translation returns a matrix that moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][3] = x
	m.m[1][3] = y
	m.m[2][3] = z
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.m[0][0] = x
	m.m[1][1] = y
	m.m[2][2] = z
	return m
}

// RotationX rotates around the X axis by radians (left-handed)
func RotationX(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.m[1][1] = cos
	m.m[1][2] = -sin
	m.m[2][1] = sin
	m.m[2][2] = cos
	return m
}

// RotationY rotates around the Y axis by radians (left-handed)
func RotationY(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.m[0][0] = cos
	m.m[0][2] = sin
	m.m[2][0] = -sin
	m.m[2][2] = cos
	return m
}

// RotationZ rotates around the Z axis by radians (left-handed)
func RotationZ(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.m[0][0] = cos
	m.m[0][1] = -sin
	m.m[1][0] = sin
	m.m[1][1] = cos
	return m
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m.m[0][1] = xy
	m.m[0][2] = xz
	m.m[1][0] = yx
	m.m[1][2] = yz
	m.m[2][0] = zx
	m.m[2][1] = zy
	return m
}

// The fluent builders post-multiply, so a chain reads outermost first:
// Identity().Translate(..).RotateY(..).Scale(..) scales, then rotates, then translates a point.

// Translate returns m × Translation(x, y, z)
func (a Matrix) Translate(x, y, z float64) Matrix {
	return a.Multiply(Translation(x, y, z))
}

// Scale returns m × Scaling(x, y, z)
func (a Matrix) Scale(x, y, z float64) Matrix {
	return a.Multiply(Scaling(x, y, z))
}

// RotateX returns m × RotationX(radians)
func (a Matrix) RotateX(radians float64) Matrix {
	return a.Multiply(RotationX(radians))
}

// RotateY returns m × RotationY(radians)
func (a Matrix) RotateY(radians float64) Matrix {
	return a.Multiply(RotationY(radians))
}

// RotateZ returns m × RotationZ(radians)
func (a Matrix) RotateZ(radians float64) Matrix {
	return a.Multiply(RotationZ(radians))
}

// Shear returns m × Shearing(...)
func (a Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return a.Multiply(Shearing(xy, xz, yx, yz, zx, zy))
}

// ViewTransform orients the world relative to an eye at from looking toward to.
// from and to must be points and up a vector. It also fails when from and to coincide
// or when up is parallel to the view direction.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	if !from.IsPoint() {
		return Matrix{}, fmt.Errorf("view from %v is not a point: %w", from, ErrInvalidTuple)
	}
	if !to.IsPoint() {
		return Matrix{}, fmt.Errorf("view to %v is not a point: %w", to, ErrInvalidTuple)
	}
	if !up.IsVector() {
		return Matrix{}, fmt.Errorf("view up %v is not a vector: %w", up, ErrInvalidTuple)
	}
	forward, err := to.Subtract(from).NormalizeChecked()
	if err != nil {
		return Matrix{}, fmt.Errorf("view direction: %w", err)
	}
	left := forward.Cross(up.Normalize())
	if left.Magnitude() < Epsilon {
		return Matrix{}, fmt.Errorf("up vector parallel to view direction: %w", ErrZeroVector)
	}
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
