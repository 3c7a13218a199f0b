package shgat

import (
	"math"

	"github.com/katalvlaran/shgat/vecops"
)

const (
	reliabilityHardPenalty = 0.1
	reliabilityMildBoost   = 1.2
	reliabilityLowBound    = 0.5
	reliabilityHighBound   = 0.9
	maxCombinedScore       = 0.95
)

// semanticHead is H1: cosine(intent, candidate embedding). The spec's
// optional learned projection on top of cosine (§9 Open Question iii,
// "transformer semantic head") is explicitly not required, so H1 stays
// pure cosine similarity.
func semanticHead(intent, candidateEmbedding []float64) (float64, error) {
	c, err := vecops.Cosine(intent, candidateEmbedding)
	if err != nil {
		return 0, err
	}

	return c, nil
}

// structureHead is H2: a learned affine over (PageRank, clusterMatch,
// AdamicAdar), clusterMatch being 1 if the node's spectral cluster
// equals the active cluster, 0 otherwise (including when there is no
// active cluster, per spec §8 "zero context tools -> H2 cluster-match
// = 0 for all").
func structureHead(p Params, pageRank, clusterMatch, adamicAdar float64) float64 {
	return p.H2Weights[0]*pageRank + p.H2Weights[1]*clusterMatch + p.H2Weights[2]*adamicAdar + p.H2Bias
}

// temporalHead is H3: a learned affine over (recency, cooccurrence).
// cooccurrence is the caller-computed recent-successful-candidate
// cooccurrence signal (spec does not fix its formula beyond naming the
// two inputs; see ScoreCapabilities's recentSuccessful handling).
func temporalHead(p Params, recency, cooccurrence float64) float64 {
	return p.H3Weights[0]*recency + p.H3Weights[1]*cooccurrence + p.H3Bias
}

// reliabilityHead is H4: a piecewise monotone function of successRate
// (spec §4.4): <=0.5 -> hard penalty 0.1, (0.5,0.9] -> linear ramp from
// 0.1 to 1.0, >0.9 -> mild boost 1.2. Monotone in successRate by
// construction (spec §8 "increasing successRate never decreases score").
func reliabilityHead(successRate float64) float64 {
	switch {
	case successRate <= reliabilityLowBound:
		return reliabilityHardPenalty
	case successRate <= reliabilityHighBound:
		span := reliabilityHighBound - reliabilityLowBound
		frac := (successRate - reliabilityLowBound) / span
		return reliabilityHardPenalty + frac*(1.0-reliabilityHardPenalty)
	default:
		return reliabilityMildBoost
	}
}

// sanitize replaces a non-finite head output with 0, reporting whether
// it did so (spec §4.4: "any head that would produce NaN is replaced by
// 0 and an unstable_head counter is incremented").
func sanitize(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}

	return v, false
}

// clampScore enforces the global [0, maxCombinedScore] invariant.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxCombinedScore {
		return maxCombinedScore
	}

	return v
}
