package incidence

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/shgat/nodearena"
	"github.com/katalvlaran/shgat/vecops"
)

// DeriveHyperedge splits toolsUsed into a source half and a target half
// by execution order (first half → sources, second half → targets; for
// an odd count the extra element falls into the target half) and computes
// the hyperedge cost from successRate and floor (ε). Both halves are
// deduplicated and sorted for deterministic downstream iteration.
//
// Returns ErrEmptyCapability if toolsUsed is empty, or ErrInvalidFloor if
// floor <= 0.
func DeriveHyperedge(capabilityID string, toolsUsed []string, successRate float64, floor float64) (Hyperedge, error) {
	if len(toolsUsed) == 0 {
		return Hyperedge{}, ErrEmptyCapability
	}
	if floor <= 0 {
		return Hyperedge{}, ErrInvalidFloor
	}

	half := len(toolsUsed) / 2
	sources := dedupSorted(toolsUsed[:half])
	targets := dedupSorted(toolsUsed[half:])

	denom := successRate
	if denom < floor {
		denom = floor
	}

	return Hyperedge{
		CapabilityID: capabilityID,
		Sources:      sources,
		Targets:      targets,
		Cost:         1.0 / denom,
		SuccessRate:  successRate,
	}, nil
}

func dedupSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Matrix is the compressed-sparse incidence view I[t,c] = 1 iff tool t
// appears (as source or target) in capability c, with deterministic row
// (tool) and column (capability) ordering by id.
type Matrix struct {
	ToolIDs []string
	CapIDs  []string

	toolIdx map[string]int
	capIdx  map[string]int

	// entries is sorted row-major (by Row then Col) for deterministic
	// MatVec reductions and content hashing.
	entries []vecops.SparseEntry

	// edges is aligned with CapIDs: edges[j] is the Hyperedge for CapIDs[j].
	edges []Hyperedge
}

// Rows returns |Tools|.
func (m *Matrix) Rows() int { return len(m.ToolIDs) }

// Cols returns |Capabilities|.
func (m *Matrix) Cols() int { return len(m.CapIDs) }

// Entries returns the sparse entries in row-major order. The returned
// slice must not be mutated by callers.
func (m *Matrix) Entries() []vecops.SparseEntry { return m.entries }

// Hyperedges returns the Hyperedge records aligned with CapIDs order.
func (m *Matrix) Hyperedges() []Hyperedge { return m.edges }

// ToolRow returns the row index for toolID, or false if unknown.
func (m *Matrix) ToolRow(toolID string) (int, bool) {
	i, ok := m.toolIdx[toolID]
	return i, ok
}

// CapCol returns the column index for capID, or false if unknown.
func (m *Matrix) CapCol(capID string) (int, bool) {
	j, ok := m.capIdx[capID]
	return j, ok
}

// Build recomputes the incidence matrix and hyperedge set from scratch
// given the current tool and capability node snapshots, in O(|V|+nnz)
// time. It never mutates an existing Matrix in place (spec §3 Invariants:
// "a rebuild-and-swap discipline... is required") — callers swap the
// returned *Matrix into place atomically.
//
// Returns ErrUnknownTool if any capability's derived hyperedge references
// a tool id absent from tools.
func Build(tools []nodearena.Node, caps []nodearena.Node, floor float64) (*Matrix, error) {
	toolIDs := make([]string, 0, len(tools))
	toolIdx := make(map[string]int, len(tools))
	for _, t := range tools {
		toolIDs = append(toolIDs, t.ID)
	}
	sort.Strings(toolIDs)
	for i, id := range toolIDs {
		toolIdx[id] = i
	}

	capIDs := make([]string, 0, len(caps))
	capByID := make(map[string]nodearena.Node, len(caps))
	for _, c := range caps {
		capIDs = append(capIDs, c.ID)
		capByID[c.ID] = c
	}
	sort.Strings(capIDs)
	capIdx := make(map[string]int, len(capIDs))
	for j, id := range capIDs {
		capIdx[id] = j
	}

	edges := make([]Hyperedge, 0, len(capIDs))
	var entries []vecops.SparseEntry

	for j, id := range capIDs {
		c := capByID[id]
		he, err := DeriveHyperedge(id, c.ToolsUsed, c.Features.Reliability.SuccessRate, floor)
		if err != nil {
			return nil, fmt.Errorf("incidence.Build: capability %q: %w", id, err)
		}

		union := dedupSorted(append(append([]string{}, he.Sources...), he.Targets...))
		for _, toolID := range union {
			row, ok := toolIdx[toolID]
			if !ok {
				return nil, fmt.Errorf("incidence.Build: capability %q: tool %q: %w", id, toolID, ErrUnknownTool)
			}
			entries = append(entries, vecops.SparseEntry{Row: row, Col: j, Value: 1})
		}

		edges = append(edges, he)
	}

	sort.Slice(entries, func(i, k int) bool {
		if entries[i].Row != entries[k].Row {
			return entries[i].Row < entries[k].Row
		}
		return entries[i].Col < entries[k].Col
	})

	return &Matrix{
		ToolIDs: toolIDs,
		CapIDs:  capIDs,
		toolIdx: toolIdx,
		capIdx:  capIdx,
		entries: entries,
		edges:   edges,
	}, nil
}

// ContentHash returns a deterministic fingerprint over (sorted tool ids,
// sorted capability ids, sorted incidence pairs), used by the spectral
// cache to decide whether a recompute is needed (spec §4.3 "Cache
// discipline").
func (m *Matrix) ContentHash() string {
	h := sha256.New()

	fmt.Fprintf(h, "tools:%s\n", strings.Join(m.ToolIDs, ","))
	fmt.Fprintf(h, "caps:%s\n", strings.Join(m.CapIDs, ","))
	for _, e := range m.entries {
		fmt.Fprintf(h, "%d:%d\n", e.Row, e.Col)
	}

	return hex.EncodeToString(h.Sum(nil))
}
