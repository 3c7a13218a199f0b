package shgat

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/shgat/nodearena"
)

// Scorer owns learned Params for its lifetime (spec §4.7: "Model
// parameters are owned by the SHGAT scorer... mutated only by the
// trainer during training epochs; reads during scoring see a consistent
// snapshot"). A read lock is held only long enough to clone the current
// Params; the actual scoring work runs against the cloned snapshot.
type Scorer struct {
	cfg config

	mu     sync.RWMutex
	params Params

	stats statCounters
}

// NewScorer constructs a Scorer with cold-start Params (see NewParams).
func NewScorer(opts ...Option) (*Scorer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Scorer{cfg: cfg, params: NewParams()}, nil
}

// Params returns a deep-copied snapshot of the current learned weights.
func (s *Scorer) Params() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.params.Clone()
}

// SetParams installs new learned weights, called by the trainer once
// per mini-batch under the write lock (spec §4.7 scheduling model).
func (s *Scorer) SetParams(p Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
}

// Stats returns a snapshot of scorer-internal counters.
func (s *Scorer) Stats() Stats { return s.stats.snapshot() }

func nodeGateFeatures(n nodearena.Node) []float64 {
	return buildGateFeatures(
		n.Features.PageRank,
		n.Features.AdamicAdar,
		n.Features.Recency,
		n.Features.Reliability.SuccessRate,
		n.Features.HypergraphPageRank,
		n.Features.HeatDiffusion,
	)
}

// cooccurrence returns the fraction of recentSuccessful entries equal to
// id — the chosen, spec-unspecified interpretation of "co-occurrence
// with recent successful candidates" (spec §4.4 names the two H3 inputs
// without fixing a formula for the second).
func cooccurrence(id string, recentSuccessful []string) float64 {
	if len(recentSuccessful) == 0 {
		return 0
	}
	var hits int
	for _, r := range recentSuccessful {
		if r == id {
			hits++
		}
	}

	return float64(hits) / float64(len(recentSuccessful))
}

func idHash(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))

	return h.Sum64()
}

// ScoreCapabilities scores every candidate against intentEmbedding,
// returning a total, descending-sorted ranking (spec §4.4 Scoring API).
// neighbors maps a capability id to the ids of capability nodes sharing
// >=1 tool with it (owned by the caller, typically derived from the
// incidence matrix); recentSuccessful is the list of capability ids from
// recently successful outcomes, feeding the H3 cooccurrence signal.
func (s *Scorer) ScoreCapabilities(intentEmbedding []float64, activeCluster int, candidates []nodearena.Node, neighbors map[string][]string, recentSuccessful []string) ([]CapabilityScore, error) {
	if len(intentEmbedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	start := time.Now()
	params := s.Params()

	heads := make(map[string][numHeads]float64, len(candidates))
	for _, c := range candidates {
		hs, err := s.baseHeadScores(params, intentEmbedding, activeCluster, c, recentSuccessful)
		if err != nil {
			return nil, fmt.Errorf("shgat.ScoreCapabilities: %w", err)
		}
		heads[c.ID] = hs
	}

	heads = s.applyRecursion(params, heads, neighbors)

	out := make([]CapabilityScore, 0, len(candidates))
	for _, c := range candidates {
		hs := heads[c.ID]
		w0, w1, w2, err := threeHeadGate(params, nodeGateFeatures(c))
		if err != nil {
			return nil, fmt.Errorf("shgat.ScoreCapabilities: %w", err)
		}

		// H4 (reliability) is a multiplier on the gated H1-H3 combination,
		// not a fourth softmax peer (see threeHeadGate's doc comment).
		// Floored at 0 before multiplying so that a negative gated base
		// (e.g. an anti-correlated embedding) cannot be driven further from
		// zero by a high reliability multiplier, preserving monotonicity in
		// successRate (spec §8 "increasing successRate never decreases
		// score").
		base := w0*hs[HeadSemantic] + w1*hs[HeadStructure] + w2*hs[HeadTemporal]
		if base < 0 {
			base = 0
		}
		reliabilityMultiplier := hs[HeadReliability]
		combined := base * reliabilityMultiplier

		var weights [numHeads]float64
		weights[HeadSemantic] = w0
		weights[HeadStructure] = w1
		weights[HeadTemporal] = w2
		weights[HeadReliability] = reliabilityMultiplier

		out = append(out, CapabilityScore{
			CapabilityID: c.ID,
			Score:        clampScore(combined),
			HeadScores:   hs,
			HeadWeights:  weights,
		})
	}

	successRateOf := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		successRateOf[c.ID] = c.Features.Reliability.SuccessRate
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		si, sj := successRateOf[out[i].CapabilityID], successRateOf[out[j].CapabilityID]
		if si != sj {
			return si > sj
		}
		return idHash(out[i].CapabilityID) < idHash(out[j].CapabilityID)
	})

	s.stats.recordCall(time.Since(start), len(candidates))

	return out, nil
}

// baseHeadScores computes the layer-0 (no recursion) head outputs for
// one candidate.
func (s *Scorer) baseHeadScores(params Params, intent []float64, activeCluster int, c nodearena.Node, recentSuccessful []string) ([numHeads]float64, error) {
	var hs [numHeads]float64

	h1, err := semanticHead(intent, c.Embedding)
	if err != nil {
		return hs, err
	}
	hs[HeadSemantic], unstable := sanitize(h1)
	if unstable {
		s.stats.recordUnstable(HeadSemantic)
	}

	clusterMatch := 0.0
	if activeCluster != nodearena.NoActiveCluster && c.Features.SpectralCluster == activeCluster {
		clusterMatch = 1.0
	}
	h2 := structureHead(params, c.Features.PageRank, clusterMatch, c.Features.AdamicAdar)
	hs[HeadStructure], unstable = sanitize(h2)
	if unstable {
		s.stats.recordUnstable(HeadStructure)
	}

	h3 := temporalHead(params, c.Features.Recency, cooccurrence(c.ID, recentSuccessful))
	hs[HeadTemporal], unstable = sanitize(h3)
	if unstable {
		s.stats.recordUnstable(HeadTemporal)
	}

	h4 := reliabilityHead(c.Features.Reliability.SuccessRate)
	hs[HeadReliability], unstable = sanitize(h4)
	if unstable {
		s.stats.recordUnstable(HeadReliability)
	}

	return hs, nil
}

// applyRecursion adds the bounded recursive neighbor term per head:
// layer l head score = layer (l-1) head score + lambda_i * mean over
// neighbors of their layer (l-1) head score, for at most cfg.maxRecursionLayers
// layers (spec §4.4).
func (s *Scorer) applyRecursion(params Params, base map[string][numHeads]float64, neighbors map[string][]string) map[string][numHeads]float64 {
	current := base
	for layer := 0; layer < s.cfg.maxRecursionLayers; layer++ {
		next := make(map[string][numHeads]float64, len(current))
		for id, hs := range current {
			nbrs := neighbors[id]
			if len(nbrs) == 0 {
				next[id] = hs
				continue
			}

			var sums [numHeads]float64
			var count int
			for _, nbr := range nbrs {
				nbrScores, ok := current[nbr]
				if !ok {
					continue
				}
				for i := 0; i < numHeads; i++ {
					sums[i] += nbrScores[i]
				}
				count++
			}
			if count == 0 {
				next[id] = hs
				continue
			}

			var updated [numHeads]float64
			for i := 0; i < numHeads; i++ {
				mean := sums[i] / float64(count)
				v, unstable := sanitize(hs[i] + params.Lambda[i]*mean)
				if unstable {
					s.stats.recordUnstable(HeadKind(i))
				}
				updated[i] = v
			}
			next[id] = updated
		}
		current = next
	}

	return current
}

// ScoreTools scores tool candidates using only H1 (Semantic) and H2
// (Structure), matching the discover() operation's "hybrid: embed
// intent, get H1+H2 scores over tools" (spec §4.7). No recursive
// neighbor term applies — neighbors are defined over capability nodes
// sharing a tool, not over tools themselves.
func (s *Scorer) ScoreTools(intentEmbedding []float64, activeCluster int, candidates []nodearena.Node) ([]ToolScore, error) {
	if len(intentEmbedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	start := time.Now()
	params := s.Params()

	out := make([]ToolScore, 0, len(candidates))
	for _, c := range candidates {
		h1, err := semanticHead(intentEmbedding, c.Embedding)
		if err != nil {
			return nil, fmt.Errorf("shgat.ScoreTools: %w", err)
		}
		h1v, unstable := sanitize(h1)
		if unstable {
			s.stats.recordUnstable(HeadSemantic)
		}

		clusterMatch := 0.0
		if activeCluster != nodearena.NoActiveCluster && c.Features.SpectralCluster == activeCluster {
			clusterMatch = 1.0
		}
		h2v, unstable := sanitize(structureHead(params, c.Features.PageRank, clusterMatch, c.Features.AdamicAdar))
		if unstable {
			s.stats.recordUnstable(HeadStructure)
		}

		wSem, wStruct, err := twoHeadGate(params, nodeGateFeatures(c))
		if err != nil {
			return nil, fmt.Errorf("shgat.ScoreTools: %w", err)
		}

		combined := clampScore(wSem*h1v + wStruct*h2v)
		out = append(out, ToolScore{ToolID: c.ID, Score: combined})
	}

	successRateOf := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		successRateOf[c.ID] = c.Features.Reliability.SuccessRate
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		si, sj := successRateOf[out[i].ToolID], successRateOf[out[j].ToolID]
		if si != sj {
			return si > sj
		}
		return idHash(out[i].ToolID) < idHash(out[j].ToolID)
	})

	s.stats.recordCall(time.Since(start), len(candidates))

	return out, nil
}
