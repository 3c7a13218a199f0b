package nodearena

import "time"

// NoActiveCluster is the reserved spectral-cluster id meaning "no active
// cluster" (spec §3 Invariants: "-1 is reserved for 'no active cluster'").
const NoActiveCluster = -1

// Handle is a dense, arena-local index. Handles are stable for the
// lifetime of the arena (never reused after eviction, since nodes are
// never evicted) and are cheap to pass by value across packages instead
// of pointers, per the design notes on cyclic references.
type Handle uint32

// Kind distinguishes the two node kinds sharing the hypergraph.
type Kind uint8

const (
	// KindTool marks a leaf operation exposed by some external server.
	KindTool Kind = iota
	// KindCapability marks a reusable, code-valued workflow.
	KindCapability
)

// String renders Kind for logging.
func (k Kind) String() string {
	switch k {
	case KindTool:
		return "tool"
	case KindCapability:
		return "capability"
	default:
		return "unknown"
	}
}

// Reliability tracks a node's observed success rate and usage volume.
// SuccessRate lives in [0,1]; UsageCount is the total number of completed
// executions (success or failure) observed so far.
type Reliability struct {
	SuccessRate float64
	UsageCount  int
}

// Features is the mutable per-node feature vector F_n described in spec
// §3. Fields not meaningful for a given Kind are left at their zero value
// (e.g. HypergraphPageRank is tool-only, HeatDiffusion is capability-only).
type Features struct {
	PageRank           float64     // generic PageRank score
	LouvainCommunity   int         // community id from Louvain modularity
	SpectralCluster    int         // non-negative cluster id, or NoActiveCluster
	AdamicAdar         float64     // Adamic-Adar cooccurrence score
	Recency            float64     // temporal recency in [0,1]
	Reliability        Reliability // success rate + usage count
	HypergraphPageRank float64     // tool nodes: cached hypergraph PageRank
	HeatDiffusion      float64     // capability nodes: cached heat-diffusion score
}

// DefaultFeatures returns a zero-valued Features with SpectralCluster set
// to NoActiveCluster, so a freshly registered node never spuriously
// matches an active cluster before the first spectral recompute.
func DefaultFeatures() Features {
	return Features{SpectralCluster: NoActiveCluster}
}

// Node is a single Tool or Capability node. Embedding is always
// L2-unit-normalized on insertion (spec §3 Invariants). ColdSince is nil
// for an active node and set the first time the node is marked cold by
// the caller; nodes are never removed from the arena.
type Node struct {
	Handle      Handle
	ID          string
	Kind        Kind
	Embedding   []float64
	Features    Features
	ColdSince   *time.Time
	Description string // capability/tool description, opaque passthrough

	// ToolsUsed is the ordered multiset of tool ids observed during the
	// capability's learned execution trace. Nil/empty for Tool nodes.
	// incidence.DeriveHyperedge splits this in half (first/second, spec §3)
	// to build the hyperedge's source and target sets.
	ToolsUsed []string

	// ParametersSchema is an opaque passthrough of the capability
	// repository's parameter-schema document (spec §6), used only by
	// routing.Accept to merge caller-supplied args with schema defaults.
	ParametersSchema []byte
}
