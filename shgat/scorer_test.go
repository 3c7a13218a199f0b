package shgat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/nodearena"
	"github.com/katalvlaran/shgat/shgat"
)

func cap(id string, embedding []float64, successRate float64) nodearena.Node {
	return nodearena.Node{
		ID:        id,
		Kind:      nodearena.KindCapability,
		Embedding: embedding,
		Features: nodearena.Features{
			SpectralCluster: nodearena.NoActiveCluster,
			Reliability:     nodearena.Reliability{SuccessRate: successRate},
		},
	}
}

func TestScoreCapabilities_IsTotalAndSorted(t *testing.T) {
	s, err := shgat.NewScorer()
	require.NoError(t, err)

	candidates := []nodearena.Node{
		cap("a", []float64{1, 0}, 0.95),
		cap("b", []float64{0, 1}, 0.2),
		cap("c", []float64{1, 0}, 0.6),
	}

	out, err := s.ScoreCapabilities([]float64{1, 0}, nodearena.NoActiveCluster, candidates, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	for _, cs := range out {
		require.LessOrEqual(t, cs.Score, 0.95)
		require.GreaterOrEqual(t, cs.Score, 0.0)
	}
}

func TestScoreCapabilities_EmptyEmbedding(t *testing.T) {
	s, err := shgat.NewScorer()
	require.NoError(t, err)

	_, err = s.ScoreCapabilities(nil, nodearena.NoActiveCluster, nil, nil, nil)
	require.ErrorIs(t, err, shgat.ErrEmptyEmbedding)
}

func TestScoreCapabilities_RecursiveNeighborTerm(t *testing.T) {
	s, err := shgat.NewScorer(shgat.WithMaxRecursionLayers(1))
	require.NoError(t, err)

	params := s.Params()
	params.Lambda[shgat.HeadSemantic] = 1.0
	s.SetParams(params)

	candidates := []nodearena.Node{
		cap("a", []float64{1, 0}, 0.9),
		cap("b", []float64{0, 1}, 0.9),
	}
	neighbors := map[string][]string{"a": {"b"}}

	out, err := s.ScoreCapabilities([]float64{1, 0}, nodearena.NoActiveCluster, candidates, neighbors, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestScoreTools_UsesOnlyTwoHeads(t *testing.T) {
	s, err := shgat.NewScorer()
	require.NoError(t, err)

	tools := []nodearena.Node{
		cap("fs:read", []float64{1, 0}, 0.9),
		cap("http:get", []float64{0, 1}, 0.9),
	}

	out, err := s.ScoreTools([]float64{1, 0}, nodearena.NoActiveCluster, tools)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "fs:read", out[0].ToolID)
}

func TestScorer_ParamsRoundTrip(t *testing.T) {
	s, err := shgat.NewScorer()
	require.NoError(t, err)

	p := s.Params()
	p.H2Bias = 3.14
	s.SetParams(p)

	got := s.Params()
	require.Equal(t, 3.14, got.H2Bias)
}

func TestNewScorer_InvalidOption(t *testing.T) {
	_, err := shgat.NewScorer(shgat.WithMaxRecursionLayers(-1))
	require.ErrorIs(t, err, shgat.ErrOptionViolation)
}

func TestScorer_StatsStartAtZero(t *testing.T) {
	s, err := shgat.NewScorer()
	require.NoError(t, err)

	// Zero-length embeddings of matching length are valid inputs;
	// mismatched dimensions force Cosine to error, not NaN, so instead
	// verify Stats starts at zero and is queryable without a prior call.
	stats := s.Stats()
	require.EqualValues(t, 0, stats.CandidatesScoredSum)
}
