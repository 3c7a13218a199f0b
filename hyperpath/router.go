package hyperpath

import (
	"container/heap"
	"context"
	"math"
	"time"

	"github.com/katalvlaran/shgat/incidence"
)

// FindShortestHyperpath computes the cheapest directed hyperpath from
// source to target through edges, a snapshot of the current capability
// hypergraph (spec §4.6). A hyperedge becomes eligible for relaxation
// once every one of its source nodes has been finalized (popped with its
// shortest distance fixed) — the generalized-Dijkstra analog of "visited"
// for hyperedges with possibly more than one source. Relaxation offers
// max(dist[s] : s in H.Sources) + H.Cost to every node in H.Targets (max,
// not sum: pessimistic aggregation over sources keeps the result
// admissible). Ties for a target's best distance break on lower
// hyperedge cost, then lower hyperedge (capability) id.
//
// Returns ErrUnknownNode if source or target is absent from the node
// space induced by edges. Returns ErrMixedUnitsNotSupported immediately
// if cfg.DirectEdges is non-empty. On context cancellation or wall-clock
// expiry, returns a well-formed Result{Found:false,Cancelled:true} and
// nil error rather than treating cancellation as a failure.
func FindShortestHyperpath(ctx context.Context, edges []incidence.Hyperedge, source, target string, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if len(cfg.DirectEdges) > 0 {
		return Result{}, ErrMixedUnitsNotSupported
	}

	nodes := nodeSpace(edges)
	if _, ok := nodes[source]; !ok {
		return Result{}, ErrUnknownNode
	}
	if _, ok := nodes[target]; !ok {
		return Result{}, ErrUnknownNode
	}
	if source == target {
		return Result{Found: true, NodeSequence: []string{source}, Hyperedges: []incidence.Hyperedge{}, TotalWeight: 0}, nil
	}

	deadline := time.Now().Add(cfg.WallClock)

	r := newRunner(edges)
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &distItem{node: source, dist: 0})

	for r.pq.Len() > 0 {
		if ctx.Err() != nil || time.Now().After(deadline) {
			return Result{Cancelled: true}, nil
		}

		item := heap.Pop(&r.pq).(*distItem)
		u := item.node
		if r.finalized[u] {
			continue
		}
		r.finalized[u] = true

		if u == target {
			return r.reconstruct(source, target), nil
		}

		r.relax(u)
	}

	return Result{Found: false}, nil
}

// nodeSpace returns the set of every tool id appearing as a source or
// target of any hyperedge.
func nodeSpace(edges []incidence.Hyperedge) map[string]struct{} {
	nodes := make(map[string]struct{})
	for _, h := range edges {
		for _, s := range h.Sources {
			nodes[s] = struct{}{}
		}
		for _, t := range h.Targets {
			nodes[t] = struct{}{}
		}
	}

	return nodes
}

// runner holds one FindShortestHyperpath execution's mutable state.
type runner struct {
	edges []incidence.Hyperedge

	dist      map[string]float64
	finalized map[string]bool
	pq        distPQ

	// sourceOf[toolID] lists the indices into edges of every hyperedge
	// for which toolID is a source, for O(1) lookup when toolID finalizes.
	sourceOf map[string][]int

	// remaining[edgeIdx] counts sources not yet finalized; the hyperedge
	// becomes eligible when this reaches zero.
	remaining map[int]int

	// maxSourceDist[edgeIdx] tracks the running max over finalized
	// sources' distances, and maxSourceNode[edgeIdx] the source id that
	// achieved it (tie-break: lowest id), used to reconstruct the path.
	maxSourceDist map[int]float64
	maxSourceNode map[int]string

	// via[v] / anchor[v]: back-pointers recording, for the current best
	// distance to v, which hyperedge produced it and which of that
	// hyperedge's sources was the relaxation's critical (max-distance)
	// source.
	via    map[string]int // index into edges, or -1 if unset
	anchor map[string]string
}

func newRunner(edges []incidence.Hyperedge) *runner {
	r := &runner{
		edges:         edges,
		dist:          make(map[string]float64),
		finalized:     make(map[string]bool),
		pq:            make(distPQ, 0, len(edges)),
		sourceOf:      make(map[string][]int),
		remaining:     make(map[int]int, len(edges)),
		maxSourceDist: make(map[int]float64, len(edges)),
		maxSourceNode: make(map[int]string, len(edges)),
		via:           make(map[string]int),
		anchor:        make(map[string]string),
	}
	for i, h := range edges {
		r.remaining[i] = len(h.Sources)
		for _, s := range h.Sources {
			r.sourceOf[s] = append(r.sourceOf[s], i)
		}
	}

	return r
}

func (r *runner) dOf(node string) float64 {
	if d, ok := r.dist[node]; ok {
		return d
	}

	return math.Inf(1)
}

// relax processes every hyperedge for which u is a source, now that u is
// finalized: updates the hyperedge's running max-source-distance, and
// once all its sources are finalized, offers max+cost to every target.
func (r *runner) relax(u string) {
	for _, ei := range r.sourceOf[u] {
		du := r.dOf(u)
		if du > r.maxSourceDist[ei] || (du == r.maxSourceDist[ei] && (r.maxSourceNode[ei] == "" || u < r.maxSourceNode[ei])) {
			r.maxSourceDist[ei] = du
			r.maxSourceNode[ei] = u
		}
		r.remaining[ei]--
		if r.remaining[ei] > 0 {
			continue
		}

		h := r.edges[ei]
		candidate := r.maxSourceDist[ei] + h.Cost
		anchorNode := r.maxSourceNode[ei]

		for _, v := range h.Targets {
			r.offer(v, candidate, ei, anchorNode)
		}
	}
}

// offer updates v's best distance to candidate if it strictly improves,
// or if it ties and edgeIdx wins the tie-break (lower cost, then lower
// capability id) against v's current best hyperedge.
func (r *runner) offer(v string, candidate float64, edgeIdx int, anchorNode string) {
	cur, known := r.dist[v]
	better := !known || candidate < cur
	if !better && known && candidate == cur {
		better = r.edgeWins(edgeIdx, r.via[v])
	}
	if !better {
		return
	}

	r.dist[v] = candidate
	r.via[v] = edgeIdx
	r.anchor[v] = anchorNode
	heap.Push(&r.pq, &distItem{node: v, dist: candidate})
}

// edgeWins reports whether edges[a] beats edges[b] under the tie-break
// rule: lower Cost, then lower CapabilityID.
func (r *runner) edgeWins(a, b int) bool {
	ea, eb := r.edges[a], r.edges[b]
	if ea.Cost != eb.Cost {
		return ea.Cost < eb.Cost
	}

	return ea.CapabilityID < eb.CapabilityID
}

// reconstruct walks back-pointers from target to source, producing a
// deterministic NodeSequence and ordered Hyperedges list.
func (r *runner) reconstruct(source, target string) Result {
	var nodeSeq []string
	var hedges []incidence.Hyperedge

	cur := target
	for cur != source {
		ei, ok := r.via[cur]
		if !ok {
			// Unreachable: should not happen once target is finalized.
			return Result{Found: false}
		}
		hedges = append(hedges, r.edges[ei])
		nodeSeq = append(nodeSeq, cur)
		cur = r.anchor[cur]
	}
	nodeSeq = append(nodeSeq, source)

	for i, j := 0, len(nodeSeq)-1; i < j; i, j = i+1, j-1 {
		nodeSeq[i], nodeSeq[j] = nodeSeq[j], nodeSeq[i]
	}
	for i, j := 0, len(hedges)-1; i < j; i, j = i+1, j-1 {
		hedges[i], hedges[j] = hedges[j], hedges[i]
	}

	return Result{
		Found:        true,
		NodeSequence: nodeSeq,
		Hyperedges:   hedges,
		TotalWeight:  r.dist[target],
	}
}
