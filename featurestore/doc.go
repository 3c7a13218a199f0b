// Package featurestore is the single source of truth for per-node
// features and the tool×capability incidence matrix (spec §4.2). It
// wraps two nodearena.Arena instances (tools, capabilities) behind the
// store-level API the spec names (UpsertTool, UpsertCapability,
// UpdateFeature, GetFeatures, Incidence, IterHyperedges) and owns the
// dirty bit that governs lazy spectral/PageRank recomputation: any
// mutation sets the bit, and the next call to Incidence rebuilds and
// atomically swaps in a fresh incidence.Matrix rather than editing the
// old one in place (spec §3 Invariants: "a rebuild-and-swap discipline,
// not in-place edit, is required").
package featurestore
