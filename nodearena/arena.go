package nodearena

import (
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/shgat/vecops"
)

// Arena stores one kind of node (Tool or Capability) as a dense,
// handle-indexed vector plus an id→handle index, guarded by its own
// RWMutex so Tool and Capability arenas never contend with each other.
//
// Embedding dimension is fixed at construction (spec §3 Invariants: "any
// parameter tensor... has a fixed shape known at construction time"
// applies equally to the embedding dimension declared here).
type Arena struct {
	mu   sync.RWMutex
	kind Kind
	dim  int

	byID  map[string]Handle
	nodes []*Node // dense; index == Handle
}

// NewArena constructs an empty Arena for the given Kind and embedding
// dimension. dim must be the same for every node ever inserted.
func NewArena(kind Kind, dim int) *Arena {
	return &Arena{
		kind: kind,
		dim:  dim,
		byID: make(map[string]Handle),
	}
}

// Dim returns the fixed embedding dimension for this arena.
func (a *Arena) Dim() int { return a.dim }

// Len returns the number of nodes currently stored.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.nodes)
}

// Upsert inserts a new node or overwrites an existing one's embedding and
// metadata (toolsUsed/description/parameter schema), leaving Features
// untouched on overwrite so that online feature updates (PageRank,
// clusters, reliability) are never clobbered by a re-registration.
// Embedding is L2-normalized before storage (spec §3 Invariants).
//
// Returns ErrEmptyID, ErrDimensionMismatch, or (for capabilities)
// ErrEmptyCapability when toolsUsed is empty.
func (a *Arena) Upsert(id string, embedding []float64, toolsUsed []string, description string, paramSchema []byte) (Handle, error) {
	if id == "" {
		return 0, ErrEmptyID
	}
	if len(embedding) != a.dim {
		return 0, ErrDimensionMismatch
	}
	if a.kind == KindCapability && len(toolsUsed) == 0 {
		return 0, ErrEmptyCapability
	}

	normalized := vecops.L2Normalize(embedding)

	a.mu.Lock()
	defer a.mu.Unlock()

	if h, ok := a.byID[id]; ok {
		n := a.nodes[h]
		n.Embedding = normalized
		n.ToolsUsed = append([]string(nil), toolsUsed...)
		n.Description = description
		n.ParametersSchema = paramSchema
		return h, nil
	}

	h := Handle(len(a.nodes))
	n := &Node{
		Handle:           h,
		ID:               id,
		Kind:             a.kind,
		Embedding:        normalized,
		Features:         DefaultFeatures(),
		ToolsUsed:        append([]string(nil), toolsUsed...),
		Description:      description,
		ParametersSchema: paramSchema,
	}
	a.nodes = append(a.nodes, n)
	a.byID[id] = h

	return h, nil
}

// Handle returns the Handle for id, or ErrNotFound.
func (a *Arena) Handle(id string) (Handle, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	h, ok := a.byID[id]
	if !ok {
		return 0, ErrNotFound
	}
	return h, nil
}

// Get returns a snapshot copy of the node for id. Mutating the returned
// Node has no effect on arena state; use UpdateFeature to mutate.
func (a *Arena) Get(id string) (Node, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	h, ok := a.byID[id]
	if !ok {
		return Node{}, ErrNotFound
	}
	return a.nodes[h].clone(), nil
}

// GetByHandle is the handle-indexed counterpart of Get, used on the
// scoring hot path to avoid a map lookup per candidate.
func (a *Arena) GetByHandle(h Handle) (Node, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if int(h) < 0 || int(h) >= len(a.nodes) {
		return Node{}, ErrNotFound
	}
	return a.nodes[h].clone(), nil
}

// FeaturePatch carries a sparse set of field updates for UpdateFeature;
// nil pointers leave the corresponding field untouched.
type FeaturePatch struct {
	PageRank           *float64
	LouvainCommunity   *int
	SpectralCluster    *int
	AdamicAdar         *float64
	Recency            *float64
	SuccessRate        *float64
	UsageCountDelta    *int // added to, not assigned
	HypergraphPageRank *float64
	HeatDiffusion      *float64
}

// UpdateFeature applies patch to id's Features in place. Returns
// ErrNotFound if id is unknown, or ErrNonFiniteFeature if any patched
// value is NaN or Inf (spec §3 Invariants: "all feature values are
// finite").
func (a *Arena) UpdateFeature(id string, patch FeaturePatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	h, ok := a.byID[id]
	if !ok {
		return ErrNotFound
	}

	f := &a.nodes[h].Features
	if patch.PageRank != nil {
		f.PageRank = *patch.PageRank
	}
	if patch.LouvainCommunity != nil {
		f.LouvainCommunity = *patch.LouvainCommunity
	}
	if patch.SpectralCluster != nil {
		f.SpectralCluster = *patch.SpectralCluster
	}
	if patch.AdamicAdar != nil {
		f.AdamicAdar = *patch.AdamicAdar
	}
	if patch.Recency != nil {
		f.Recency = *patch.Recency
	}
	if patch.SuccessRate != nil {
		f.Reliability.SuccessRate = *patch.SuccessRate
	}
	if patch.UsageCountDelta != nil {
		f.Reliability.UsageCount += *patch.UsageCountDelta
	}
	if patch.HypergraphPageRank != nil {
		f.HypergraphPageRank = *patch.HypergraphPageRank
	}
	if patch.HeatDiffusion != nil {
		f.HeatDiffusion = *patch.HeatDiffusion
	}

	return nil
}

// MarkCold records now as the ColdSince time for id, without deleting the
// node (spec §3 Lifecycle: "never destroyed, only marked cold").
func (a *Arena) MarkCold(id string, now time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	h, ok := a.byID[id]
	if !ok {
		return ErrNotFound
	}
	ts := now
	a.nodes[h].ColdSince = &ts

	return nil
}

// All returns a snapshot slice of every node currently stored, ordered by
// Handle (i.e. insertion order), for callers that need a deterministic
// full scan (e.g. spec's "must be total: score every known capability").
func (a *Arena) All() []Node {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Node, len(a.nodes))
	for i, n := range a.nodes {
		out[i] = n.clone()
	}

	return out
}

func (n *Node) clone() Node {
	cp := *n
	cp.Embedding = append([]float64(nil), n.Embedding...)
	cp.ToolsUsed = append([]string(nil), n.ToolsUsed...)
	if n.ColdSince != nil {
		t := *n.ColdSince
		cp.ColdSince = &t
	}
	return cp
}

func validatePatch(p FeaturePatch) error {
	check := func(v *float64) error {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return ErrNonFiniteFeature
		}
		return nil
	}
	for _, v := range []*float64{p.PageRank, p.AdamicAdar, p.Recency, p.SuccessRate, p.HypergraphPageRank, p.HeatDiffusion} {
		if err := check(v); err != nil {
			return err
		}
	}
	return nil
}
