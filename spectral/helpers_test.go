package spectral

import "github.com/katalvlaran/shgat/nodearena"

// nodesFromIDs builds minimal Tool nodes for laplacian/incidence tests.
func nodesFromIDs(ids ...string) []nodearena.Node {
	out := make([]nodearena.Node, len(ids))
	for i, id := range ids {
		out[i] = nodearena.Node{ID: id, Kind: nodearena.KindTool, Embedding: []float64{1}}
	}

	return out
}

// capsFromTrace builds a single Capability node referencing toolsUsed.
func capsFromTrace(id string, toolsUsed []string, successRate float64) []nodearena.Node {
	return []nodearena.Node{{
		ID:        id,
		Kind:      nodearena.KindCapability,
		Embedding: []float64{1},
		ToolsUsed: toolsUsed,
		Features:  nodearena.Features{Reliability: nodearena.Reliability{SuccessRate: successRate}},
	}}
}
