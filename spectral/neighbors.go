package spectral

import (
	"context"

	"github.com/katalvlaran/shgat/incidence"
)

// sharedToolGraph answers "which capabilities share at least one tool
// with capability c", the adjacency a breadth-first search walks when a
// freshly inserted capability has no spectral-cluster assignment yet
// (spec §3: a fresh node is never assigned NoActiveCluster permanently;
// it inherits the nearest already-clustered neighbor's label on the
// next query path).
type sharedToolGraph struct {
	// neighbors[capID] is the set of capability ids sharing >=1 tool
	// with capID.
	neighbors map[string]map[string]struct{}
}

// buildSharedToolGraph derives the capability<->capability adjacency
// from the incidence matrix's column-sharing structure: two capability
// columns are adjacent iff they both reference the same tool row.
func buildSharedToolGraph(inc *incidence.Matrix) *sharedToolGraph {
	g := &sharedToolGraph{neighbors: make(map[string]map[string]struct{})}

	byTool := make(map[int][]string) // tool row -> capability ids touching it
	for _, e := range inc.Entries() {
		capID := inc.CapIDs[e.Col]
		byTool[e.Row] = append(byTool[e.Row], capID)
	}

	for _, caps := range byTool {
		for _, a := range caps {
			for _, b := range caps {
				if a == b {
					continue
				}
				if g.neighbors[a] == nil {
					g.neighbors[a] = make(map[string]struct{})
				}
				g.neighbors[a][b] = struct{}{}
			}
		}
	}

	return g
}

// queueItem pairs a capability id with its BFS depth, mirroring the
// walker state package bfs uses for unweighted shortest-hop search.
type queueItem struct {
	id    string
	depth int
}

// nearestClustered walks the shared-tool graph breadth-first from
// startID and returns the cluster id of the first already-clustered
// capability encountered (clusterOf maps capability id -> cluster id for
// ids with a known assignment). Ties at equal depth are broken by the
// lexicographically smallest id, matching the deterministic visit order
// the queue naturally produces when neighbor sets are iterated in sorted
// order.
//
// Returns found=false if no clustered capability is reachable, or the
// context is cancelled before one is found.
func (g *sharedToolGraph) nearestClustered(ctx context.Context, startID string, clusterOf map[string]int) (clusterID int, found bool) {
	if c, ok := clusterOf[startID]; ok {
		return c, true
	}

	visited := map[string]bool{startID: true}
	queue := []queueItem{{id: startID, depth: 0}}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return 0, false
		default:
		}

		item := queue[0]
		queue = queue[1:]

		for _, nbr := range sortedKeys(g.neighbors[item.id]) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true

			if c, ok := clusterOf[nbr]; ok {
				return c, true
			}
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return 0, false
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Small sets (typical shared-tool fan-out); insertion sort keeps this
	// allocation-free for the common case instead of pulling in sort.Strings.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
