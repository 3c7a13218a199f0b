package spectral

import (
	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/matrix"
)

// nodeSpace is the ordered list of graph-node ids the Laplacian is built
// over: all tool ids (rows) followed by all capability ids (cols), so
// row/col index i of the incidence matrix maps to nodeSpace index i for
// tools and Rows()+j for capability column j.
type nodeSpace struct {
	ids []string // len == inc.Rows() + inc.Cols()
	n   int
}

func buildNodeSpace(inc *incidence.Matrix) nodeSpace {
	ids := make([]string, 0, inc.Rows()+inc.Cols())
	ids = append(ids, inc.ToolIDs...)
	ids = append(ids, inc.CapIDs...)

	return nodeSpace{ids: ids, n: len(ids)}
}

// bipartiteAdjacency builds the square adjacency matrix of the
// tool<->capability bipartite graph: A[i][Rows()+j] = A[Rows()+j][i] = 1
// iff incidence[i][j] = 1 (spec §4.3: "the symmetric normalized Laplacian
// ... of the tool-to-capability bipartite graph"). Returns the adjacency,
// the per-node degree vector, and the node-id ordering.
func bipartiteAdjacency(inc *incidence.Matrix) (*matrix.Dense, []float64, nodeSpace) {
	ns := buildNodeSpace(inc)
	rows := inc.Rows()

	a, _ := matrix.NewDense(ns.n, ns.n)
	deg := make([]float64, ns.n)

	for _, e := range inc.Entries() {
		toolIdx := e.Row
		capIdx := rows + e.Col
		_ = a.Set(toolIdx, capIdx, e.Value)
		_ = a.Set(capIdx, toolIdx, e.Value)
		deg[toolIdx] += e.Value
		deg[capIdx] += e.Value
	}

	return a, deg, ns
}

// buildNormalizedLaplacian is the §4.3 entry point: adjacency + degree ->
// L_sym = I - D^(-1/2) A D^(-1/2).
func buildNormalizedLaplacian(inc *incidence.Matrix) (*matrix.Dense, nodeSpace, error) {
	a, deg, ns := bipartiteAdjacency(inc)
	if ns.n == 0 {
		return nil, ns, ErrNoNodes
	}

	lap, err := matrix.NormalizedLaplacian(a, deg)
	if err != nil {
		return nil, ns, err
	}

	return lap, ns, nil
}
