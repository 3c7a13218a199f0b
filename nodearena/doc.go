// Package nodearena holds the Tool and Capability node storage for the
// routing engine: two dense, integer-handle-indexed arenas (ToolArena,
// CapabilityArena) rather than a pointer graph, per the design notes on
// cyclic references ("arena + integer-indexed handles: two dense vectors,
// reference one from the other by u32 indices").
//
// Each arena is guarded by its own sync.RWMutex, mirroring how
// core.Graph in this codebase's lineage splits vertex and edge/adjacency
// locking into independent mutexes to minimize contention between readers
// and writers that touch disjoint data. Tool nodes are never deleted, only
// marked cold (ColdSince); Capability nodes are created once, on successful
// learning from an execution trace, and their code/parameter schema stay
// opaque to this package.
package nodearena
