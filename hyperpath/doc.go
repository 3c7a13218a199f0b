// Package hyperpath implements DR-DSP, the directed-hyperpath router: a
// generalized Dijkstra over hyperedges (capabilities, viewed as a set of
// source tools to a set of target tools) rather than simple edges. A
// hyperedge becomes eligible for relaxation once every one of its source
// nodes has been finalized (popped with its shortest distance fixed);
// relaxation offers
// max(dist[source] for source in H.Sources) + w(H) to every target node
// — max, not sum, since a pessimistic aggregation over sources is what
// keeps the resulting hyperpath admissible.
//
// Adapted directly from the teacher's dijkstra package: the heap-based
// "lazy decrease-key" relaxation loop and functional-options Options
// shape are unchanged in spirit, generalized from per-edge to
// per-hyperedge relaxation (a hyperedge can have multiple sources, so
// eligibility and relaxation both key off the whole source set rather
// than a single predecessor).
package hyperpath
