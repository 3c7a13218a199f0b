package matrix

import "errors"

// Sentinel errors for matrix package operations.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices (or a matrix and a
	// vector) have incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf value was encountered where a
	// finite value was required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
