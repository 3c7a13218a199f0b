package featurestore

import "github.com/katalvlaran/shgat/nodearena"

// Sentinel errors for featurestore package operations, aliased onto the
// underlying nodearena sentinels so errors.Is works across both package
// boundaries without duplicating error identity. All three are
// recoverable per spec §4.2: callers may retry with valid input.
var (
	// ErrUnknownNode indicates an update targeted a non-existent id.
	ErrUnknownNode = nodearena.ErrNotFound

	// ErrDimensionMismatch indicates an embedding's length does not match
	// the dimension fixed at store construction.
	ErrDimensionMismatch = nodearena.ErrDimensionMismatch

	// ErrEmptyCapability indicates toolsUsed was empty for UpsertCapability.
	ErrEmptyCapability = nodearena.ErrEmptyCapability
)
