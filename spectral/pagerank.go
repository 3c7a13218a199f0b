package spectral

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/shgat/incidence"
)

// pageRankResult is the stationary distribution over tool ids produced
// by hypergraphPageRank, plus whether the wall-clock cap cut it short.
type pageRankResult struct {
	Scores    map[string]float64
	Truncated bool
	Iters     int
}

// transition is one (fromTool, toTool, weight) entry of the random-walk
// transition matrix, built once from the hyperedge set and reused across
// power-iteration sweeps.
type transition struct {
	from, to int
	weight   float64
}

// buildTransitions derives, for every tool, its outgoing transition
// weights under the spec §4.3 hypergraph random walk: "from a node,
// select an incident hyperedge with probability proportional to its
// cost^-1, then select a neighbor in that hyperedge uniformly."
func buildTransitions(toolIDs []string, edges []incidence.Hyperedge) []transition {
	idx := make(map[string]int, len(toolIDs))
	for i, id := range toolIDs {
		idx[id] = i
	}

	incident := make(map[int][]int) // toolIdx -> incident hyperedge indices
	for e, he := range edges {
		seen := make(map[int]struct{})
		for _, t := range he.Sources {
			if i, ok := idx[t]; ok {
				seen[i] = struct{}{}
			}
		}
		for _, t := range he.Targets {
			if i, ok := idx[t]; ok {
				seen[i] = struct{}{}
			}
		}
		for i := range seen {
			incident[i] = append(incident[i], e)
		}
	}

	var out []transition
	for toolIdx, edgeIdxs := range incident {
		var weightSum float64
		invCosts := make([]float64, len(edgeIdxs))
		for k, e := range edgeIdxs {
			inv := 1.0 / edges[e].Cost
			invCosts[k] = inv
			weightSum += inv
		}
		if weightSum <= 0 {
			continue
		}

		for k, e := range edgeIdxs {
			he := edges[e]
			union := make(map[int]struct{})
			for _, t := range he.Sources {
				if i, ok := idx[t]; ok && i != toolIdx {
					union[i] = struct{}{}
				}
			}
			for _, t := range he.Targets {
				if i, ok := idx[t]; ok && i != toolIdx {
					union[i] = struct{}{}
				}
			}
			if len(union) == 0 {
				continue
			}

			hyperedgeProb := invCosts[k] / weightSum
			perNeighbor := hyperedgeProb / float64(len(union))
			for neighbor := range union {
				out = append(out, transition{from: toolIdx, to: neighbor, weight: perNeighbor})
			}
		}
	}

	return out
}

// hypergraphPageRank runs the damped power iteration of spec §4.3 over
// the tool set until max|delta p| < tol or maxIter sweeps, bounded by
// wallClock wall-clock time (spec §4.7 cancellation: a long-running call
// returns a well-formed partial result on expiry rather than an error).
func hypergraphPageRank(ctx context.Context, toolIDs []string, edges []incidence.Hyperedge, damping, tol float64, maxIter int, wallClock time.Duration) pageRankResult {
	n := len(toolIDs)
	if n == 0 {
		return pageRankResult{Scores: map[string]float64{}}
	}

	transitions := buildTransitions(toolIDs, edges)
	outWeight := make([]float64, n)
	for _, tr := range transitions {
		outWeight[tr.from] += tr.weight
	}

	p := make([]float64, n)
	for i := range p {
		p[i] = 1.0 / float64(n)
	}

	teleport := (1 - damping) / float64(n)
	deadline := time.Now().Add(wallClock)

	iters := 0
	truncated := false
	for iters = 0; iters < maxIter; iters++ {
		select {
		case <-ctx.Done():
			truncated = true
		default:
		}
		if time.Now().After(deadline) {
			truncated = true
		}
		if truncated {
			break
		}

		next := make([]float64, n)
		for i := range next {
			next[i] = teleport
		}
		for _, tr := range transitions {
			next[tr.to] += damping * p[tr.from] * tr.weight
		}
		// Dangling tools (no outgoing transitions) redistribute their
		// mass uniformly, keeping total probability mass conserved.
		var dangling float64
		for i, w := range outWeight {
			if w == 0 {
				dangling += p[i]
			}
		}
		if dangling > 0 {
			share := damping * dangling / float64(n)
			for i := range next {
				next[i] += share
			}
		}

		maxDelta := 0.0
		for i := range p {
			d := math.Abs(next[i] - p[i])
			if d > maxDelta {
				maxDelta = d
			}
		}
		p = next
		if maxDelta < tol {
			iters++
			break
		}
	}

	scores := make(map[string]float64, n)
	for i, id := range toolIDs {
		scores[id] = p[i]
	}

	return pageRankResult{Scores: scores, Truncated: truncated, Iters: iters}
}
