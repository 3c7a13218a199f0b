// Package shgat implements the Structured Heterogeneous Graph Attention
// scorer: four fixed heads (Semantic, Structure, Temporal, Reliability),
// plus a bounded recursive neighbor term. Semantic/Structure/Temporal
// are combined by a per-node 3-way softmax gate; Reliability then scales
// that gated sum as a bounded multiplier rather than sharing the
// softmax's mass (see gate.go's threeHeadGate). Head dispatch is a
// tagged variant batched by HeadKind rather than virtual dispatch per
// node — each head's formula is a free function applied across every
// candidate in one pass.
//
// Scorer owns its learned Params for its lifetime; scoring takes a read
// lock and holds a Params snapshot for the duration of a call, and the
// trainer swaps in updated Params under a write lock once per mini-batch
// (single-writer/many-reader, spec's scheduling model).
package shgat
