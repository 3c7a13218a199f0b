package hyperpath

import "errors"

var (
	// ErrUnknownNode is returned when the source or target tool id passed
	// to FindShortestHyperpath is absent from the hypergraph (spec §4.6:
	// "UnknownNode when s or t is absent").
	ErrUnknownNode = errors.New("hyperpath: unknown source or target node")

	// ErrMixedUnitsNotSupported is returned when a query would require
	// comparing capability-hyperedge cost (1/successRate) against a
	// hypothetical direct tool-to-tool edge cost in the same search —
	// the router forbids mixing rather than silently normalizing units
	// (spec §9 Open Question (i), resolved in SPEC_FULL.md §4.6). No
	// direct-edge source exists in this data model today; the guard is
	// forward-defensive against a future direct-edge type being added to
	// package incidence without updating this router.
	ErrMixedUnitsNotSupported = errors.New("hyperpath: mixed capability-hyperedge and direct-edge units not supported")

	// ErrOptionViolation is returned by FindShortestHyperpath when a functional option
	// was given an invalid value.
	ErrOptionViolation = errors.New("hyperpath: invalid option")
)
