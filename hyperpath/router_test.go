package hyperpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/hyperpath"
	"github.com/katalvlaran/shgat/incidence"
)

func he(id string, sources, targets []string, cost float64) incidence.Hyperedge {
	return incidence.Hyperedge{CapabilityID: id, Sources: sources, Targets: targets, Cost: cost, SuccessRate: 1.0 / cost}
}

func TestFindShortestHyperpath_ChainThroughSharedTool(t *testing.T) {
	edges := []incidence.Hyperedge{
		he("H1", []string{"fs:read"}, []string{"json:parse"}, 1.0),
		he("H2", []string{"json:parse"}, []string{"memory:store"}, 2.0),
	}

	result, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "fs:read", "memory:store")
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Equal(t, []string{"fs:read", "json:parse", "memory:store"}, result.NodeSequence)
	require.Equal(t, []string{"H1", "H2"}, []string{result.Hyperedges[0].CapabilityID, result.Hyperedges[1].CapabilityID})
	require.InDelta(t, 3.0, result.TotalWeight, 1e-9)
}

func TestFindShortestHyperpath_Unreachable(t *testing.T) {
	edges := []incidence.Hyperedge{
		he("H1", []string{"fs:read"}, []string{"fs:write"}, 1.0),
		he("H2", []string{"db:query"}, []string{"db:insert"}, 1.0),
	}

	result, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "fs:read", "db:insert")
	require.NoError(t, err)
	require.False(t, result.Found)
	require.Empty(t, result.NodeSequence)
}

func TestFindShortestHyperpath_UnknownNode(t *testing.T) {
	edges := []incidence.Hyperedge{he("H1", []string{"fs:read"}, []string{"fs:write"}, 1.0)}

	_, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "nope", "fs:write")
	require.ErrorIs(t, err, hyperpath.ErrUnknownNode)
}

func TestFindShortestHyperpath_MultiSourceMaxAggregation(t *testing.T) {
	// H3 requires both fs:read and http:get; fs:read is cheap to reach,
	// http:get requires an extra hop, so H3's relaxation must wait for
	// the slower source and use its (larger) distance, not the sum.
	edges := []incidence.Hyperedge{
		he("H1", []string{"start"}, []string{"fs:read"}, 1.0),
		he("H2", []string{"start"}, []string{"http:get"}, 5.0),
		he("H3", []string{"fs:read", "http:get"}, []string{"done"}, 1.0),
	}

	result, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "start", "done")
	require.NoError(t, err)
	require.True(t, result.Found)
	// max(dist[fs:read]=1, dist[http:get]=5) + 1 = 6, not 1+5+1=7.
	require.InDelta(t, 6.0, result.TotalWeight, 1e-9)
}

func TestFindShortestHyperpath_TieBreakLowerCostThenLowerID(t *testing.T) {
	edges := []incidence.Hyperedge{
		he("Hz", []string{"start"}, []string{"done"}, 2.0),
		he("Ha", []string{"start"}, []string{"done"}, 1.0),
	}

	result, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "start", "done")
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Equal(t, "Ha", result.Hyperedges[0].CapabilityID)
	require.InDelta(t, 1.0, result.TotalWeight, 1e-9)
}

func TestFindShortestHyperpath_MixedUnitsNotSupported(t *testing.T) {
	edges := []incidence.Hyperedge{he("H1", []string{"a"}, []string{"b"}, 1.0)}

	_, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "a", "b",
		hyperpath.WithDirectEdges([]hyperpath.DirectEdge{{From: "a", To: "b", Weight: 1.0}}))
	require.ErrorIs(t, err, hyperpath.ErrMixedUnitsNotSupported)
}

func TestFindShortestHyperpath_SameSourceAndTarget(t *testing.T) {
	edges := []incidence.Hyperedge{he("H1", []string{"a"}, []string{"b"}, 1.0)}

	result, err := hyperpath.FindShortestHyperpath(context.Background(), edges, "a", "a")
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Equal(t, []string{"a"}, result.NodeSequence)
	require.Empty(t, result.Hyperedges)
	require.Zero(t, result.TotalWeight)
}

func TestFindShortestHyperpath_CancelledContext(t *testing.T) {
	edges := []incidence.Hyperedge{he("H1", []string{"a"}, []string{"b"}, 1.0)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := hyperpath.FindShortestHyperpath(ctx, edges, "a", "b")
	require.NoError(t, err)
	require.True(t, result.Cancelled)
	require.False(t, result.Found)
}
