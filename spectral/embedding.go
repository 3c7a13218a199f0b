package spectral

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/shgat/matrix"
	"github.com/katalvlaran/shgat/matrix/ops"
)

const (
	eigenTol     = 1e-9
	eigenMaxIter = 500
)

// eigenPair is one (eigenvalue, eigenvector-column-index) pair, kept
// together so sorting by eigenvalue carries its column along.
type eigenPair struct {
	value float64
	col   int
}

// spectralEmbed eigendecomposes lap and returns, for each of the n
// nodes, its k-dimensional embedding: the node's entry in each of the k
// smallest non-trivial eigenvectors (spec §4.3). The very first
// ascending eigenvalue is treated as the trivial one (the constant
// eigenvector of an all-degrees-positive graph Laplacian) and dropped;
// this is the standard simplification for a single connected component
// and does not attempt to detect multiple trivial eigenvalues from
// disconnected components.
//
// Returns the per-node embeddings (embeddings[i] has length k, or less
// if n-1 < k) and the sorted eigenvalues actually used, for the
// heat-kernel score in heat.go.
func spectralEmbed(lap *matrix.Dense, k int) ([][]float64, []float64, error) {
	n := lap.Rows()

	eigs, q, err := ops.Eigen(lap, eigenTol, eigenMaxIter)
	if err != nil {
		return nil, nil, fmt.Errorf("spectral: eigendecomposition: %w", err)
	}

	pairs := make([]eigenPair, n)
	for i, v := range eigs {
		pairs[i] = eigenPair{value: v, col: i}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

	take := k
	if n-1 < take {
		take = n - 1
	}
	if take < 0 {
		take = 0
	}
	used := pairs[1 : 1+take] // drop index 0 (trivial)

	embeddings := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, take)
		for d, p := range used {
			v, _ := q.At(i, p.col)
			row[d] = v
		}
		embeddings[i] = row
	}

	usedEigs := make([]float64, take)
	for d, p := range used {
		usedEigs[d] = p.value
	}

	return embeddings, usedEigs, nil
}
