package incidence

import "errors"

// Sentinel errors for incidence package operations.
var (
	// ErrUnknownTool indicates a hyperedge references a tool id that is
	// not present in the known tool set (spec §3 Invariants: "every
	// hyperedge's source and target ids exist as Tool nodes").
	ErrUnknownTool = errors.New("incidence: hyperedge references unknown tool")

	// ErrEmptyCapability indicates a capability node had no tools in its
	// execution trace, which should never reach this package if callers
	// validate via nodearena.Arena.Upsert first.
	ErrEmptyCapability = errors.New("incidence: capability has no tools")

	// ErrInvalidFloor indicates a non-positive success-rate floor (ε) was
	// supplied to Build.
	ErrInvalidFloor = errors.New("incidence: success-rate floor must be > 0")
)
