package spectral_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/nodearena"
	"github.com/katalvlaran/shgat/spectral"
)

func TestStore_ClusterFor_ColdStartFallsBackToSharedToolWalk(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)
	require.NoError(t, store.Recompute(context.Background(), fs))

	// A brand-new capability sharing a tool with an already-clustered one,
	// inserted after Recompute already ran.
	require.NoError(t, fs.UpsertCapability("cap.new", []float64{0.5, 0.5}, []string{"fs:read", "http:get"}, 0.5, "", nil))

	cluster, found := store.ClusterFor(context.Background(), fs, "cap.new")
	require.True(t, found)
	require.NotEqual(t, nodearena.NoActiveCluster, cluster)
}

func TestStore_ClusterFor_KnownNodeUsesCache(t *testing.T) {
	fs := buildFeatureStore(t)
	store, err := spectral.NewStore(spectral.WithK(2))
	require.NoError(t, err)
	require.NoError(t, store.Recompute(context.Background(), fs))

	cluster, found := store.ClusterFor(context.Background(), fs, "fs:read")
	require.True(t, found)
	require.NotEqual(t, nodearena.NoActiveCluster, cluster)
}
