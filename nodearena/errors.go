package nodearena

import "errors"

// Sentinel errors for nodearena package operations.
var (
	// ErrEmptyID indicates a node ID was the empty string.
	ErrEmptyID = errors.New("nodearena: node ID is empty")

	// ErrNotFound indicates a requested tool or capability ID does not exist.
	ErrNotFound = errors.New("nodearena: node not found")

	// ErrDimensionMismatch indicates an embedding's length does not match
	// the dimension fixed at arena construction time.
	ErrDimensionMismatch = errors.New("nodearena: embedding dimension mismatch")

	// ErrEmptyCapability indicates a Capability was registered with no
	// tools in its observed execution order.
	ErrEmptyCapability = errors.New("nodearena: capability has no tools")

	// ErrNonFiniteFeature indicates a feature patch contained NaN or Inf.
	ErrNonFiniteFeature = errors.New("nodearena: non-finite feature value")
)
