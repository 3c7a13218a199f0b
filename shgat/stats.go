package shgat

import (
	"sync/atomic"
	"time"
)

// Stats is a plain-data snapshot of scorer-internal counters, exposed so
// an outer metrics collector can read them without coupling this package
// to any particular metrics library (spec §1's "replaceable
// collaborators" posture — this package stays a pure scorer).
type Stats struct {
	UnstableHeadCount   [numHeads]uint64
	LastScoreWallTime   time.Duration
	CandidatesScoredSum uint64
}

// statCounters is the live, concurrently-updated counter set backing Stats.
type statCounters struct {
	unstableHead   [numHeads]atomic.Uint64
	lastWallTimeNs atomic.Int64
	candidatesSum  atomic.Uint64
}

func (c *statCounters) recordUnstable(k HeadKind) {
	c.unstableHead[k].Add(1)
}

func (c *statCounters) recordCall(d time.Duration, candidates int) {
	c.lastWallTimeNs.Store(int64(d))
	c.candidatesSum.Add(uint64(candidates))
}

func (c *statCounters) snapshot() Stats {
	var s Stats
	for i := range c.unstableHead {
		s.UnstableHeadCount[i] = c.unstableHead[i].Load()
	}
	s.LastScoreWallTime = time.Duration(c.lastWallTimeNs.Load())
	s.CandidatesScoredSum = c.candidatesSum.Load()

	return s
}
