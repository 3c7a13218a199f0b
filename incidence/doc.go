// Package incidence builds the compressed-sparse tool×capability
// incidence matrix and the hyperedge records derived from it, adapted
// from the IncidenceMatrix / BuildDenseIncidence machinery of the graph
// library this module's matrix package was trimmed from (package matrix
// itself carries no incidence builder) (deterministic row/column order, sentinel errors, a
// rebuild-and-swap discipline rather than in-place edits).
//
// A Hyperedge views one Capability as a directed edge from a set of
// source tools to a set of target tools, weighted by the inverse of the
// capability's observed success rate. The split between sources and
// targets is derived deterministically from the capability's observed
// tool-execution order: the first half of that order is the source set,
// the second half is the target set (spec's fixed resolution of the
// source-half/target-half ambiguity).
package incidence
