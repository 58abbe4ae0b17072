package core

import "errors"

var (
	// ErrNotInvertible is returned when inverting a matrix whose determinant is ~0
	ErrNotInvertible = errors.New("matrix is not invertible")
	// ErrZeroVector is returned when a direction is required but a zero-length vector was given
	ErrZeroVector = errors.New("zero-length vector")
	// ErrInvalidTuple is returned when an operation would produce a tuple that is neither point nor vector
	ErrInvalidTuple = errors.New("tuple is neither a point nor a vector")
)
