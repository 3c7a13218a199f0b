package featurestore

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/nodearena"
)

// Store holds the Tool and Capability arenas plus the derived incidence
// matrix, and implements the dirty-bit / rebuild-and-swap discipline
// described in spec §3 and §4.2.
type Store struct {
	tools *nodearena.Arena
	caps  *nodearena.Arena

	floor float64 // ε, the success-rate cost floor for hyperedges

	dirty atomic.Bool
	inc   atomic.Pointer[incidence.Matrix]

	recomputeCount atomic.Uint64 // debug counter for the idempotence law (spec §8)
}

// NewStore constructs an empty Store with the given embedding dimension
// (shared by both Tool and Capability arenas, per spec §3: "embedding
// dimension must match the one declared at store construction") and
// hyperedge cost floor ε.
func NewStore(embeddingDim int, floor float64) *Store {
	if floor <= 0 {
		floor = incidence.DefaultSuccessRateFloor
	}

	s := &Store{
		tools: nodearena.NewArena(nodearena.KindTool, embeddingDim),
		caps:  nodearena.NewArena(nodearena.KindCapability, embeddingDim),
		floor: floor,
	}
	s.dirty.Store(true) // force a build on first Incidence() call

	return s
}

// UpsertTool registers or updates a Tool node. description is opaque
// passthrough metadata (spec's ToolRegistry description field).
func (s *Store) UpsertTool(id string, embedding []float64, description string) error {
	if _, err := s.tools.Upsert(id, embedding, nil, description, nil); err != nil {
		return err
	}
	s.dirty.Store(true)
	return nil
}

// UpsertCapability registers or updates a Capability node. toolsUsed is
// the observed execution-order tool sequence (must be non-empty);
// successRate seeds the Reliability feature used by the H4 head and the
// hyperedge cost.
func (s *Store) UpsertCapability(id string, embedding []float64, toolsUsed []string, successRate float64, description string, paramSchema []byte) error {
	if _, err := s.caps.Upsert(id, embedding, toolsUsed, description, paramSchema); err != nil {
		return err
	}

	sr := successRate
	if err := s.caps.UpdateFeature(id, nodearena.FeaturePatch{SuccessRate: &sr}); err != nil {
		return err
	}

	s.dirty.Store(true)
	return nil
}

// UpdateFeature applies patch to id's Features, trying the Tool arena
// first and falling back to the Capability arena. Returns ErrUnknownNode
// if id exists in neither.
func (s *Store) UpdateFeature(id string, patch nodearena.FeaturePatch) error {
	if err := s.tools.UpdateFeature(id, patch); err == nil {
		s.dirty.Store(true)
		return nil
	} else if err != nodearena.ErrNotFound {
		return err
	}

	if err := s.caps.UpdateFeature(id, patch); err != nil {
		return err
	}
	s.dirty.Store(true)

	return nil
}

// GetFeatures returns the current Features for id, checking tools then
// capabilities. Returns ErrUnknownNode if id is not registered.
func (s *Store) GetFeatures(id string) (nodearena.Features, error) {
	if n, err := s.tools.Get(id); err == nil {
		return n.Features, nil
	} else if err != nodearena.ErrNotFound {
		return nodearena.Features{}, err
	}

	n, err := s.caps.Get(id)
	if err != nil {
		return nodearena.Features{}, err
	}

	return n.Features, nil
}

// GetNode returns the full node snapshot for id, checking tools then
// capabilities. Returns ErrUnknownNode if id is not registered anywhere.
func (s *Store) GetNode(id string) (nodearena.Node, error) {
	if n, err := s.tools.Get(id); err == nil {
		return n, nil
	} else if err != nodearena.ErrNotFound {
		return nodearena.Node{}, err
	}

	return s.caps.Get(id)
}

// Tools returns a snapshot of every registered Tool node.
func (s *Store) Tools() []nodearena.Node { return s.tools.All() }

// Capabilities returns a snapshot of every registered Capability node.
func (s *Store) Capabilities() []nodearena.Node { return s.caps.All() }

// IsDirty reports whether the incidence matrix needs a rebuild.
func (s *Store) IsDirty() bool { return s.dirty.Load() }

// RecomputeCount returns the number of times Incidence has actually
// rebuilt the matrix (as opposed to returning the cached one), exposed
// for the idempotence law in spec §8 ("observable only via a debug
// counter").
func (s *Store) RecomputeCount() uint64 { return s.recomputeCount.Load() }

// Incidence returns the current incidence.Matrix, rebuilding it first if
// the dirty bit is set. The rebuild is a full recompute followed by an
// atomic pointer swap (never an in-place edit), per spec §3 Invariants.
func (s *Store) Incidence() (*incidence.Matrix, error) {
	if !s.dirty.Load() {
		if cached := s.inc.Load(); cached != nil {
			return cached, nil
		}
	}

	m, err := incidence.Build(s.tools.All(), s.caps.All(), s.floor)
	if err != nil {
		return nil, fmt.Errorf("featurestore.Incidence: %w", err)
	}

	s.inc.Store(m)
	s.dirty.Store(false)
	s.recomputeCount.Add(1)

	return m, nil
}

// IterHyperedges returns the Hyperedge records for every known
// capability, rebuilding the incidence matrix first if dirty.
func (s *Store) IterHyperedges() ([]incidence.Hyperedge, error) {
	m, err := s.Incidence()
	if err != nil {
		return nil, err
	}
	return m.Hyperedges(), nil
}
