package hyperpath

// distItem is a node and its current candidate distance from the source,
// stored in the priority queue (spec §4.6's generalized Dijkstra). This
// mirrors the teacher dijkstra package's nodeItem/nodePQ exactly, except
// dist is float64 (hyperedge cost is 1/successRate, not an integer edge
// weight).
type distItem struct {
	node string
	dist float64
}

// distPQ is a min-heap of *distItem ordered by dist ascending, using the
// same lazy-decrease-key discipline as the teacher's nodePQ: a shorter
// distance is pushed as a new entry rather than mutating one in place,
// and stale entries are skipped on pop via the caller's finalized set.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
