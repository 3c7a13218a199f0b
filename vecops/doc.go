// Package vecops provides the deterministic numeric kernels shared by every
// layer of the routing engine: dot products, cosine similarity, softmax with
// the max-subtraction trick, L2 normalization, and fixed-order reductions.
//
// Every reduction in this package iterates its input in index order and
// accumulates into a single scalar with no parallel or tree-structured
// summation, so that two calls with the same input slice produce bit-identical
// output on the same platform (see the reproducibility note in the top-level
// design notes). Apart from one intermediate slice in Softmax, nothing here
// allocates beyond the caller-visible return value, and nothing returns NaN/Inf without callers asking for it via
// malformed input: callers on the scoring hot path are expected to guard
// against NaN themselves (see package shgat).
package vecops
