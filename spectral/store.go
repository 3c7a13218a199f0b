package spectral

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/shgat/featurestore"
	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/nodearena"
)

// Store holds the spectral cache: the last incidence content hash a
// recompute was run against, and the derived per-node features
// (cluster assignment, tool hypergraph PageRank, capability heat score)
// that Recompute pushes into the feature store.
type Store struct {
	cfg Config

	mu         sync.RWMutex
	lastHash   string
	clusterOf  map[string]int     // node id (tool or capability) -> cluster label
	pagerankOf map[string]float64 // tool id -> hypergraph PageRank
	heatOf     map[string]float64 // capability id -> heat-diffusion score

	recomputeCount atomic.Uint64
	lastTruncated  atomic.Bool
}

// NewStore builds a Store from Options layered on DefaultConfig.
// Returns ErrOptionViolation if any Option rejects its argument.
func NewStore(opts ...Option) (*Store, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Store{
		cfg:       cfg,
		clusterOf: make(map[string]int),
	}, nil
}

// RecomputeCount returns how many times Recompute actually redid the
// clustering work, as opposed to hitting the content-hash cache.
func (s *Store) RecomputeCount() uint64 { return s.recomputeCount.Load() }

// LastTruncated reports whether the most recent Recompute's hypergraph
// PageRank pass was cut short by its wall-clock cap or a cancelled
// context. Using up MaxPageRankIter sweeps without converging is not
// reported as truncation.
func (s *Store) LastTruncated() bool { return s.lastTruncated.Load() }

// restoreFromCacheIfValid reports whether the cached labels/scores are
// still valid for the current incidence content hash, under the read
// lock already held by the caller.
func (s *Store) restoreFromCacheIfValid(hash string) bool {
	return s.lastHash != "" && s.lastHash == hash
}

// Recompute refreshes cluster assignments, hypergraph PageRank, and
// heat-diffusion scores from fs's current incidence matrix, writing the
// results back into fs's node features, and skips all work if the
// incidence content hash is unchanged since the last successful
// recompute (spec §4.2 "Features are recomputed lazily").
func (s *Store) Recompute(ctx context.Context, fs *featurestore.Store) error {
	inc, err := fs.Incidence()
	if err != nil {
		return fmt.Errorf("spectral.Recompute: %w", err)
	}
	hash := inc.ContentHash()

	s.mu.RLock()
	cached := s.restoreFromCacheIfValid(hash)
	s.mu.RUnlock()
	if cached {
		return nil
	}

	if inc.Rows()+inc.Cols() == 0 {
		return ErrNoNodes
	}

	lap, ns, err := buildNormalizedLaplacian(inc)
	if err != nil {
		return fmt.Errorf("spectral.Recompute: %w", err)
	}

	embeddings, eigenvalues, err := spectralEmbed(lap, s.cfg.K)
	if err != nil {
		return fmt.Errorf("spectral.Recompute: %w", err)
	}

	labels := kMeans(embeddings, s.cfg.K, s.cfg.Seed, s.cfg.MaxKMeansIter)

	pr := hypergraphPageRank(ctx, inc.ToolIDs, inc.Hyperedges(), s.cfg.Damping, s.cfg.PageRankTol, s.cfg.MaxPageRankIter, s.cfg.WallClock)

	heat := heatDiffusionScores(embeddings, eigenvalues, s.cfg.HeatTime)

	clusterOf := make(map[string]int, ns.n)
	heatOf := make(map[string]float64, inc.Cols())
	rows := inc.Rows()
	for i, id := range ns.ids {
		clusterOf[id] = labels[i]
		if i >= rows {
			heatOf[id] = heat[i]
		}
	}

	if err := s.writeFeatures(fs, inc, clusterOf, pr.Scores, heatOf); err != nil {
		return fmt.Errorf("spectral.Recompute: %w", err)
	}

	s.mu.Lock()
	s.lastHash = hash
	s.clusterOf = clusterOf
	s.pagerankOf = pr.Scores
	s.heatOf = heatOf
	s.mu.Unlock()

	s.recomputeCount.Add(1)
	s.lastTruncated.Store(pr.Truncated)

	return nil
}

func (s *Store) writeFeatures(fs *featurestore.Store, inc *incidence.Matrix, clusterOf map[string]int, pagerankOf map[string]float64, heatOf map[string]float64) error {
	for _, id := range inc.ToolIDs {
		cluster := clusterOf[id]
		pr := pagerankOf[id]
		if err := fs.UpdateFeature(id, nodearena.FeaturePatch{
			SpectralCluster:    &cluster,
			HypergraphPageRank: &pr,
		}); err != nil {
			return err
		}
	}
	for _, id := range inc.CapIDs {
		cluster := clusterOf[id]
		heat := heatOf[id]
		if err := fs.UpdateFeature(id, nodearena.FeaturePatch{
			SpectralCluster: &cluster,
			HeatDiffusion:   &heat,
		}); err != nil {
			return err
		}
	}

	return nil
}

// ClusterFor returns nodeID's cached cluster assignment if Recompute has
// already run since it was inserted. Otherwise — the cold-start case, a
// capability or tool upserted after the last Recompute — it falls back
// to a breadth-first walk of the current incidence matrix's shared-tool
// adjacency (package-internal sharedToolGraph, adapted from bfs's
// queue-and-visited-set walker) to borrow the nearest already-clustered
// neighbor's label rather than reporting NoActiveCluster.
func (s *Store) ClusterFor(ctx context.Context, fs *featurestore.Store, nodeID string) (int, bool) {
	s.mu.RLock()
	c, ok := s.clusterOf[nodeID]
	s.mu.RUnlock()
	if ok {
		return c, true
	}

	inc, err := fs.Incidence()
	if err != nil {
		return nodearena.NoActiveCluster, false
	}

	s.mu.RLock()
	snapshot := make(map[string]int, len(s.clusterOf))
	for k, v := range s.clusterOf {
		snapshot[k] = v
	}
	s.mu.RUnlock()

	g := buildSharedToolGraph(inc)

	found, ok := g.nearestClustered(ctx, nodeID, snapshot)
	if !ok {
		return nodearena.NoActiveCluster, false
	}

	return found, true
}

// ActiveCluster implements spec §4.3's active-cluster identification:
// the cluster id most frequent among contextTools, ties broken by the
// highest aggregated hypergraph PageRank of the contextTools belonging
// to that cluster. Returns (NoActiveCluster, false) if contextTools is
// empty or none of its members have a known cluster assignment.
func (s *Store) ActiveCluster(contextTools []string) (clusterID int, pagerankTieBreak bool) {
	if len(contextTools) == 0 {
		return nodearena.NoActiveCluster, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	weight := make(map[int]float64)
	seen := false
	for _, tool := range contextTools {
		c, ok := s.clusterOf[tool]
		if !ok {
			continue
		}
		seen = true
		counts[c]++
		weight[c] += s.pagerankOf[tool]
	}
	if !seen {
		return nodearena.NoActiveCluster, false
	}

	best, bestCount, bestWeight, tie := -1, -1, -1.0, false
	for c, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, bestWeight, tie = c, n, weight[c], false
		case n == bestCount:
			tie = true
			if weight[c] > bestWeight || (weight[c] == bestWeight && c < best) {
				best, bestWeight = c, weight[c]
			}
		}
	}

	return best, tie
}
