package shgat

import "errors"

// Sentinel errors for the shgat package.
var (
	// ErrEmptyEmbedding is returned when an intent embedding has zero length.
	ErrEmptyEmbedding = errors.New("shgat: intent embedding is empty")

	// ErrDimensionMismatch is returned when a candidate's embedding
	// dimension disagrees with the intent embedding's dimension.
	ErrDimensionMismatch = errors.New("shgat: embedding dimension mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shgat: invalid option supplied")
)
