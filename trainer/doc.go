// Package trainer implements the online trainer that turns a stream of
// episodic outcomes into updated shgat.Params: cross-entropy over the
// full capability softmax plus a pairwise ranking margin over sampled
// negatives, Adam-optimized, applied atomically per mini-batch.
//
// Gradients are estimated by central finite differences over the flat
// parameter vector rather than hand-derived analytically. shgat.Params
// is small (a handful of per-head weight rows), so the O(2*dim) extra
// score evaluations per mini-batch are cheap, and it removes an entire
// class of backpropagation arithmetic bugs that would otherwise be
// impossible to catch without running the training loop.
package trainer
