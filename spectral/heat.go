package spectral

import "math"

// heatDiffusionScores computes, for each node, the diagonal heat-kernel
// value H_ii = sum_d exp(-heatTime * lambda_d) * phi_d(i)^2 over the k
// retained non-trivial eigenpairs (embeddings/eigenvalues from
// spectralEmbed). This is the standard spectral heat-kernel diagonal,
// used here as the capability-node "heat-diffusion score" feature that
// spec §3 lists among the hypergraph features cached on Capability
// nodes without specifying its formula.
func heatDiffusionScores(embeddings [][]float64, eigenvalues []float64, heatTime float64) []float64 {
	out := make([]float64, len(embeddings))
	for i, row := range embeddings {
		var sum float64
		for d, v := range row {
			sum += math.Exp(-heatTime*eigenvalues[d]) * v * v
		}
		out[i] = sum
	}

	return out
}
