package shgat

import "github.com/katalvlaran/shgat/vecops"

const gateClip = 50.0

// twoHeadGate restricts the softmax gate to the Semantic and Structure
// heads only, reusing the same learned W_gate rows (spec's discover()
// path scores tools with "H1+H2" only, spec §4.7).
func twoHeadGate(p Params, features []float64) (wSemantic, wStructure float64, err error) {
	d0, err := vecops.Dot(p.WGate[HeadSemantic], features)
	if err != nil {
		return 0, 0, err
	}
	d1, err := vecops.Dot(p.WGate[HeadStructure], features)
	if err != nil {
		return 0, 0, err
	}

	alpha, err := vecops.Softmax([]float64{clip(d0, gateClip), clip(d1, gateClip)})
	if err != nil {
		return 0, 0, err
	}

	return alpha[0], alpha[1], nil
}

// threeHeadGate restricts the softmax gate to the Semantic, Structure,
// and Temporal heads, reusing the same learned W_gate rows. The
// Reliability head sits outside this gate entirely: spec §4.4 describes
// H4 as a multiplier that clamps "the final score <= 0.95 after
// multiplication", not a fourth peer sharing the softmax mass (folding
// it into a 4-way softmax drives its cold-start contribution toward
// ~0.25 regardless of successRate, which cannot reproduce scenario 1's
// confidence>=0.85 direct match or scenario 2's "B's final score <= 0.1
// x its semantic score" bound at the zero-value Params cold start — both
// require H4 to scale H1-H3's combined output directly). ScoreCapabilities
// combines threeHeadGate's weights with H1-H3, then multiplies by H4.
func threeHeadGate(p Params, features []float64) (wSemantic, wStructure, wTemporal float64, err error) {
	d0, err := vecops.Dot(p.WGate[HeadSemantic], features)
	if err != nil {
		return 0, 0, 0, err
	}
	d1, err := vecops.Dot(p.WGate[HeadStructure], features)
	if err != nil {
		return 0, 0, 0, err
	}
	d2, err := vecops.Dot(p.WGate[HeadTemporal], features)
	if err != nil {
		return 0, 0, 0, err
	}

	alpha, err := vecops.Softmax([]float64{clip(d0, gateClip), clip(d1, gateClip), clip(d2, gateClip)})
	if err != nil {
		return 0, 0, 0, err
	}

	return alpha[0], alpha[1], alpha[2], nil
}

func clip(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}

	return v
}

// buildGateFeatures assembles the GateFeatureDim-length feature vector
// F_node from a node's cached features.
func buildGateFeatures(pageRank, adamicAdar, recency, successRate, hypergraphPageRank, heatDiffusion float64) []float64 {
	return []float64{pageRank, adamicAdar, recency, successRate, hypergraphPageRank, heatDiffusion}
}
