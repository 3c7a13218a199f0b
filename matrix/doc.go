// Package matrix provides the dense linear-algebra primitives the
// spectral clusterer needs to build and eigendecompose the symmetric
// normalized Laplacian of the tool×capability incidence projection:
// bounds-checked row-major storage (Dense), the handful of kernels
// (Transpose, Scale, Mul) needed to form D^(-1/2) A D^(-1/2), and (in the
// ops subpackage) a Jacobi eigensolver for symmetric matrices.
//
// This is this codebase's own specialty surface, trimmed from a larger
// general-purpose matrix toolkit down to exactly the operations the
// routing engine's spectral layer exercises: adjacency/incidence-from-
// graph builders, LU/QR factorization, and Floyd-Warshall closure are not
// carried over because nothing in this engine calls them (incidence
// matrices are built directly from nodearena snapshots by package
// incidence, not derived from a general Matrix view).
package matrix
