package spectral

import "errors"

// Sentinel errors for the spectral package.
var (
	// ErrNoNodes is returned when Recompute is asked to cluster an empty
	// incidence matrix (no tools, no capabilities).
	ErrNoNodes = errors.New("spectral: incidence matrix has no nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spectral: invalid option supplied")

	// ErrNotRecomputed names the state in which no successful Recompute
	// has populated the cache. No function in this package returns it:
	// ActiveCluster and ClusterFor report a missing assignment as
	// (NoActiveCluster, false).
	ErrNotRecomputed = errors.New("spectral: no cached recompute available")
)
