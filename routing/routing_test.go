package routing_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/config"
	"github.com/katalvlaran/shgat/metrics"
	"github.com/katalvlaran/shgat/routing"
)

func embedding(dim int, seed float64) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = seed
	}
	v[0] += 1 // break the all-equal degeneracy so cosine similarity varies across seeds

	return v
}

// unitAxis returns the dim-length standard basis vector e_0, used as an
// intent embedding paired with cosineTarget to produce an exact known
// cosine similarity.
func unitAxis(dim int) []float64 {
	v := make([]float64, dim)
	v[0] = 1
	return v
}

// cosineTarget returns a unit-length dim vector whose cosine similarity
// against unitAxis(dim) is exactly cos: its first component is cos and
// its second is sin(acos(cos)), the rest zero.
func cosineTarget(dim int, cos float64) []float64 {
	v := make([]float64, dim)
	v[0] = cos
	v[1] = math.Sqrt(1 - cos*cos)
	return v
}

func newEngine(t *testing.T) *routing.Engine {
	t.Helper()
	cfg, err := config.New(config.WithEmbeddingDim(64))
	require.NoError(t, err)

	e, err := routing.New(cfg, 5)
	require.NoError(t, err)

	return e
}

func TestEngine_RegisterAndScore(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), "reads a file"))
	require.NoError(t, e.RegisterTool("json:parse", embedding(64, 0.2), "parses json"))
	require.NoError(t, e.RegisterCapability("cap.fs.read_json", embedding(64, 0.15),
		[]string{"fs:read", "json:parse"}, 0.95, "read and parse json", nil))

	ctx := context.Background()
	require.NoError(t, e.UpdateHypergraphFeatures(ctx))

	scores, err := e.ScoreCapabilities(ctx, embedding(64, 0.15), nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "cap.fs.read_json", scores[0].CapabilityID)

	toolScores, err := e.ScoreTools(embedding(64, 0.1), nil)
	require.NoError(t, err)
	require.Len(t, toolScores, 2)
}

func TestEngine_ScoreCapabilities_EmptyArena(t *testing.T) {
	e := newEngine(t)

	scores, err := e.ScoreCapabilities(context.Background(), embedding(64, 0.1), nil)
	require.NoError(t, err)
	require.Nil(t, scores)
}

func TestEngine_SuggestDag_EmptyCapabilitySet(t *testing.T) {
	e := newEngine(t)

	result, err := e.SuggestDag(context.Background(), embedding(64, 0.1), nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, result.Confidence)
}

func TestEngine_SuggestDag_HighConfidenceRunsDirect(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterTool("json:parse", embedding(64, 0.2), ""))
	require.NoError(t, e.RegisterCapability("cap.fs.read_json", embedding(64, 0.15),
		[]string{"fs:read", "json:parse"}, 0.95, "", nil))

	ctx := context.Background()
	require.NoError(t, e.UpdateHypergraphFeatures(ctx))

	result, err := e.SuggestDag(ctx, embedding(64, 0.15), nil)
	require.NoError(t, err)
	require.Equal(t, "cap.fs.read_json", result.BestCapabilityID)
	require.GreaterOrEqual(t, result.Confidence, 0.85)
	require.True(t, result.Run)
	require.Len(t, result.SuggestedDag, 2)
	require.Empty(t, result.SuggestedDag[0].DependsOn)
	require.Equal(t, []string{"task_0"}, result.SuggestedDag[1].DependsOn)
}

func TestEngine_ScoreTools_ReturnsFullUntruncatedList(t *testing.T) {
	e := newEngine(t) // discoverTopN=5

	for i := 0; i < 8; i++ {
		require.NoError(t, e.RegisterTool(toolName(i), embedding(64, 0.1*float64(i+1)), ""))
	}

	scores, err := e.ScoreTools(embedding(64, 0.1), nil)
	require.NoError(t, err)
	require.Len(t, scores, 8)
}

func TestEngine_Discover_TruncatesToTopN(t *testing.T) {
	e := newEngine(t) // discoverTopN=5

	for i := 0; i < 8; i++ {
		require.NoError(t, e.RegisterTool(toolName(i), embedding(64, 0.1*float64(i+1)), ""))
	}

	scores, err := e.Discover(embedding(64, 0.1), nil)
	require.NoError(t, err)
	require.Len(t, scores, 5)
}

func toolName(i int) string {
	return "tool_" + string(rune('a'+i))
}

func TestEngine_RecordOutcome_UnknownCapability(t *testing.T) {
	e := newEngine(t)

	err := e.RecordOutcome(routing.Outcome{CapabilityID: "nope", Success: true})
	require.ErrorIs(t, err, routing.ErrUnknownCapability)
}

func TestEngine_RecordOutcome_UpdatesReliability(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read"}, 0.5, "", nil))

	require.NoError(t, e.RecordOutcome(routing.Outcome{
		CapabilityID:    "cap.a",
		IntentEmbedding: embedding(64, 0.15),
		Success:         true,
	}))
	require.NoError(t, e.RecordOutcome(routing.Outcome{
		CapabilityID:    "cap.a",
		IntentEmbedding: embedding(64, 0.15),
		Success:         false,
	}))

	scores, err := e.ScoreCapabilities(context.Background(), embedding(64, 0.15), nil)
	require.NoError(t, err)
	require.Len(t, scores, 1)
}

func TestEngine_Train_InsufficientExamplesQuarantines(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read"}, 0.5, "", nil))

	_, err := e.Train(1, 4, nil)
	require.Error(t, err)
	require.True(t, e.Quarantined())

	// Reads still work while quarantined.
	_, scoreErr := e.ScoreCapabilities(context.Background(), embedding(64, 0.15), nil)
	require.NoError(t, scoreErr)

	// Mutating calls are blocked.
	regErr := e.RegisterTool("json:parse", embedding(64, 0.2), "")
	require.ErrorIs(t, regErr, routing.ErrQuarantined)

	e.RecoverFromQuarantine()
	require.False(t, e.Quarantined())
	require.NoError(t, e.RegisterTool("json:parse", embedding(64, 0.2), ""))
}

func TestEngine_SnapshotLoadParams_RoundTrip(t *testing.T) {
	e := newEngine(t)

	snap, err := e.SnapshotParams()
	require.NoError(t, err)
	require.NotEmpty(t, snap)

	require.NoError(t, e.LoadParams(snap))
}

func TestEngine_LoadParams_IncompatibleShape(t *testing.T) {
	e := newEngine(t)

	err := e.LoadParams([]byte("not a real snapshot"))
	require.ErrorIs(t, err, routing.ErrIncompatibleShape)
}

func TestEngine_WithLoggerAndMetrics(t *testing.T) {
	cfg, err := config.New(config.WithEmbeddingDim(64))
	require.NoError(t, err)

	collector := metrics.NewCollector()
	e, err := routing.New(cfg, 5,
		routing.WithLogger(metrics.NewLogger("debug")),
		routing.WithMetrics(collector))
	require.NoError(t, err)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read"}, 0.9, "", nil))

	ctx := context.Background()
	require.NoError(t, e.UpdateHypergraphFeatures(ctx))

	_, err = e.ScoreCapabilities(ctx, embedding(64, 0.15), nil)
	require.NoError(t, err)

	families, gatherErr := collector.Registry().Gather()
	require.NoError(t, gatherErr)
	require.NotEmpty(t, families)
}

func TestEngine_FindShortestHyperpath(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterTool("json:parse", embedding(64, 0.2), ""))
	require.NoError(t, e.RegisterCapability("cap.a", embedding(64, 0.15), []string{"fs:read", "json:parse"}, 0.9, "", nil))

	result, err := e.FindShortestHyperpath(context.Background(), "fs:read", "json:parse")
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Equal(t, []string{"fs:read", "json:parse"}, result.NodeSequence)
}

// TestEngine_SuggestDag_SpecScenario1_DirectMatch reproduces the spec's
// worked "direct match" scenario numerically: one capability with
// cosine(intent, embedding) == 0.93 and successRate == 0.95 must clear
// confidence >= 0.85 and report a run decision, at the engine's
// untrained cold start (no Train call).
func TestEngine_SuggestDag_SpecScenario1_DirectMatch(t *testing.T) {
	e := newEngine(t)

	intent := unitAxis(64)
	capEmbedding := cosineTarget(64, 0.93)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterTool("json:parse", embedding(64, 0.2), ""))
	require.NoError(t, e.RegisterCapability("cap.fs.read_json", capEmbedding,
		[]string{"fs:read", "json:parse"}, 0.95, "", nil))

	ctx := context.Background()
	require.NoError(t, e.UpdateHypergraphFeatures(ctx))

	result, err := e.SuggestDag(ctx, intent, nil)
	require.NoError(t, err)
	require.Equal(t, "cap.fs.read_json", result.BestCapabilityID)
	require.GreaterOrEqual(t, result.Confidence, 0.85)
	require.True(t, result.Run)
	require.Len(t, result.SuggestedDag, 2)
	require.Empty(t, result.SuggestedDag[0].DependsOn)
	require.Equal(t, []string{"task_0"}, result.SuggestedDag[1].DependsOn)
}

// TestEngine_ScoreCapabilities_SpecScenario2_ReliabilityGate reproduces
// the spec's "reliability gate" scenario: two capabilities with
// identical semantic score 0.9, A at successRate 0.95 and B at 0.45.
// A must rank first and B's final score must not exceed 0.1 times its
// semantic score (the hard reliability penalty).
func TestEngine_ScoreCapabilities_SpecScenario2_ReliabilityGate(t *testing.T) {
	e := newEngine(t)

	intent := unitAxis(64)
	sharedEmbedding := cosineTarget(64, 0.9)

	require.NoError(t, e.RegisterTool("fs:read", embedding(64, 0.1), ""))
	require.NoError(t, e.RegisterCapability("cap.a", sharedEmbedding, []string{"fs:read"}, 0.95, "", nil))
	require.NoError(t, e.RegisterCapability("cap.b", sharedEmbedding, []string{"fs:read"}, 0.45, "", nil))

	ctx := context.Background()
	require.NoError(t, e.UpdateHypergraphFeatures(ctx))

	scores, err := e.ScoreCapabilities(ctx, intent, nil)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	byID := make(map[string]float64, 2)
	for _, s := range scores {
		byID[s.CapabilityID] = s.Score
	}

	require.Equal(t, "cap.a", scores[0].CapabilityID)
	require.LessOrEqual(t, byID["cap.b"], 0.1*0.9+1e-9)
}
