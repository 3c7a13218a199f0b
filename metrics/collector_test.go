package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/metrics"
	"github.com/katalvlaran/shgat/shgat"
)

func TestCollector_ObserveScorerStats_Gathers(t *testing.T) {
	c := metrics.NewCollector()

	stats := shgat.Stats{LastScoreWallTime: 5 * time.Millisecond, CandidatesScoredSum: 3}
	stats.UnstableHeadCount[1] = 2

	c.ObserveScorerStats("capabilities", stats)

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestCollector_ObserveTrainEpochAndQuarantine(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveTrainEpoch(0.5, 0.9)
	c.ObserveQuarantine("enter")
	c.ObserveQuarantine("exit")
	c.ObserveSpectralRecompute(10*time.Millisecond, true)
	c.ObserveHyperpathQuery(2*time.Millisecond, "found")

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNewLogger_FallsBackToInfoOnBadLevel(t *testing.T) {
	l := metrics.NewLogger("not-a-level")
	require.Equal(t, "info", l.GetLevel().String())
}
