package hyperpath

import "github.com/katalvlaran/shgat/incidence"

// Result is DR-DSP's return shape (spec §4.6: "{found, nodeSequence[],
// hyperedges[], totalWeight}"). A Cancelled result is always well-formed
// with Found=false and empty slices, never an error.
type Result struct {
	Found       bool
	Cancelled   bool
	NodeSequence []string
	Hyperedges   []incidence.Hyperedge
	TotalWeight  float64
}

// DirectEdge is a forward-looking type for a hypothetical future
// tool-to-tool edge that bypasses the capability hypergraph entirely.
// No such edge source exists in this data model today (package incidence
// defines only Hyperedges); FindShortestHyperpath rejects any non-empty
// DirectEdges option with ErrMixedUnitsNotSupported rather than silently
// mixing 1/successRate hyperedge costs with direct-edge weights that may
// not share units (spec §9 Open Question (i)).
type DirectEdge struct {
	From, To string
	Weight   float64
}
