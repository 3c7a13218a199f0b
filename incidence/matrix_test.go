package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/nodearena"
)

func makeTools(ids ...string) []nodearena.Node {
	out := make([]nodearena.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, nodearena.Node{ID: id, Kind: nodearena.KindTool})
	}
	return out
}

func TestDeriveHyperedge_SplitAndCost(t *testing.T) {
	he, err := incidence.DeriveHyperedge("cap.fs.read_json", []string{"fs:read", "json:parse"}, 0.95, incidence.DefaultSuccessRateFloor)
	require.NoError(t, err)
	require.Equal(t, []string{"fs:read"}, he.Sources)
	require.Equal(t, []string{"json:parse"}, he.Targets)
	require.InDelta(t, 1.0/0.95, he.Cost, 1e-9)
}

func TestDeriveHyperedge_ZeroSuccessUsesFloor(t *testing.T) {
	he, err := incidence.DeriveHyperedge("cap.x", []string{"a", "b"}, 0.0, incidence.DefaultSuccessRateFloor)
	require.NoError(t, err)
	require.InDelta(t, 1.0/incidence.DefaultSuccessRateFloor, he.Cost, 1e-9)
}

func TestDeriveHyperedge_Empty(t *testing.T) {
	_, err := incidence.DeriveHyperedge("cap.x", nil, 0.5, incidence.DefaultSuccessRateFloor)
	require.ErrorIs(t, err, incidence.ErrEmptyCapability)
}

func TestBuild_Deterministic(t *testing.T) {
	tools := makeTools("fs:read", "json:parse", "memory:store")
	caps := []nodearena.Node{
		{ID: "cap.fs.read_json", ToolsUsed: []string{"fs:read", "json:parse"},
			Features: nodearena.Features{Reliability: nodearena.Reliability{SuccessRate: 0.95}}},
		{ID: "cap.json.store", ToolsUsed: []string{"json:parse", "memory:store"},
			Features: nodearena.Features{Reliability: nodearena.Reliability{SuccessRate: 0.8}}},
	}

	m1, err := incidence.Build(tools, caps, incidence.DefaultSuccessRateFloor)
	require.NoError(t, err)
	m2, err := incidence.Build(tools, caps, incidence.DefaultSuccessRateFloor)
	require.NoError(t, err)

	require.Equal(t, m1.ContentHash(), m2.ContentHash())
	require.Equal(t, []string{"fs:read", "json:parse", "memory:store"}, m1.ToolIDs)
	require.Equal(t, []string{"cap.fs.read_json", "cap.json.store"}, m1.CapIDs)
	require.Len(t, m1.Hyperedges(), 2)
}

func TestBuild_UnknownTool(t *testing.T) {
	tools := makeTools("fs:read")
	caps := []nodearena.Node{
		{ID: "cap.x", ToolsUsed: []string{"fs:read", "json:parse"}},
	}
	_, err := incidence.Build(tools, caps, incidence.DefaultSuccessRateFloor)
	require.ErrorIs(t, err, incidence.ErrUnknownTool)
}
