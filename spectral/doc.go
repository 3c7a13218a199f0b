// Package spectral recomputes the two hypergraph-derived feature
// families — spectral cluster assignment and hypergraph PageRank — that
// the feature store exposes lazily behind its dirty bit.
//
// The clusterer builds the symmetric normalized Laplacian of the
// bipartite tool<->capability incidence graph, eigendecomposes it with
// the Jacobi solver in matrix/ops (this codebase's own specialty, not a
// general linear-algebra dependency), embeds each node in the k smallest
// non-trivial eigenvectors, and assigns cluster labels with a fixed-seed
// k-means pass. A content-hash cache (incidence.Matrix.ContentHash)
// skips all of this work when the incidence matrix has not actually
// changed since the last recompute, even if the store's dirty bit was
// set by an unrelated mutation.
package spectral
