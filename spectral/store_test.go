package spectral_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/featurestore"
	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/nodearena"
	"github.com/katalvlaran/shgat/spectral"
)

func buildFeatureStore(t *testing.T) *featurestore.Store {
	t.Helper()
	fs := featurestore.NewStore(2, incidence.DefaultSuccessRateFloor)

	require.NoError(t, fs.UpsertTool("fs:read", []float64{1, 0}, "reads a file"))
	require.NoError(t, fs.UpsertTool("json:parse", []float64{0, 1}, "parses json"))
	require.NoError(t, fs.UpsertTool("http:get", []float64{1, 1}, "http get"))

	require.NoError(t, fs.UpsertCapability("cap.read_json", []float64{1, 1}, []string{"fs:read", "json:parse"}, 0.9, "", nil))
	require.NoError(t, fs.UpsertCapability("cap.fetch_json", []float64{1, 0.5}, []string{"http:get", "json:parse"}, 0.8, "", nil))

	return fs
}

func TestStore_RecomputeIsIdempotentUnderContentHash(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)

	require.NoError(t, store.Recompute(context.Background(), fs))
	require.EqualValues(t, 1, store.RecomputeCount())

	require.NoError(t, store.Recompute(context.Background(), fs))
	require.EqualValues(t, 1, store.RecomputeCount(), "unchanged incidence must not trigger a second recompute")

	require.NoError(t, fs.UpsertTool("new:tool", []float64{0, 0}, ""))
	require.NoError(t, store.Recompute(context.Background(), fs))
	require.EqualValues(t, 2, store.RecomputeCount())
}

func TestStore_WritesFeatureStoreClusterAssignment(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)
	require.NoError(t, store.Recompute(context.Background(), fs))

	feat, err := fs.GetFeatures("fs:read")
	require.NoError(t, err)
	require.NotEqual(t, nodearena.NoActiveCluster, feat.SpectralCluster)
}

func TestStore_ActiveCluster_EmptyContext(t *testing.T) {
	store, err := spectral.NewStore()
	require.NoError(t, err)

	id, tie := store.ActiveCluster(nil)
	require.Equal(t, nodearena.NoActiveCluster, id)
	require.False(t, tie)
}

func TestStore_ActiveCluster_UnknownTools(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)
	require.NoError(t, store.Recompute(context.Background(), fs))

	id, _ := store.ActiveCluster([]string{"nonexistent"})
	require.Equal(t, nodearena.NoActiveCluster, id)
}

func TestStore_ActiveCluster_MostFrequent(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)
	require.NoError(t, store.Recompute(context.Background(), fs))

	id, _ := store.ActiveCluster([]string{"fs:read", "json:parse", "http:get"})
	require.NotEqual(t, nodearena.NoActiveCluster, id)
}

func TestNewStore_InvalidOption(t *testing.T) {
	_, err := spectral.NewStore(spectral.WithK(-1))
	require.ErrorIs(t, err, spectral.ErrOptionViolation)
}
