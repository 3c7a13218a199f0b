package spectral

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/shgat/incidence"
)

func TestHypergraphPageRank_SumsToOne(t *testing.T) {
	edges := []incidence.Hyperedge{
		{CapabilityID: "c1", Sources: []string{"a"}, Targets: []string{"b"}, Cost: 1.0},
		{CapabilityID: "c2", Sources: []string{"b"}, Targets: []string{"c"}, Cost: 2.0},
	}
	res := hypergraphPageRank(context.Background(), []string{"a", "b", "c"}, edges, 0.85, 1e-6, 100, time.Second)

	var sum float64
	for _, v := range res.Scores {
		sum += v
	}
	if diff := sum - 1.0; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected stationary distribution summing to ~1, got %f", sum)
	}
	if res.Truncated {
		t.Fatalf("expected convergence, got truncated")
	}
}

func TestHypergraphPageRank_EmptyTools(t *testing.T) {
	res := hypergraphPageRank(context.Background(), nil, nil, 0.85, 1e-6, 100, time.Second)
	if len(res.Scores) != 0 {
		t.Fatalf("expected empty scores, got %v", res.Scores)
	}
}

func TestHypergraphPageRank_CancelledContextTruncates(t *testing.T) {
	edges := []incidence.Hyperedge{
		{CapabilityID: "c1", Sources: []string{"a"}, Targets: []string{"b"}, Cost: 1.0},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := hypergraphPageRank(ctx, []string{"a", "b"}, edges, 0.85, 1e-9, 1000, time.Second)
	if !res.Truncated {
		t.Fatalf("expected truncated=true for pre-cancelled context")
	}
}

func TestHypergraphPageRank_WallClockTruncates(t *testing.T) {
	edges := []incidence.Hyperedge{
		{CapabilityID: "c1", Sources: []string{"a"}, Targets: []string{"b"}, Cost: 1.0},
	}
	res := hypergraphPageRank(context.Background(), []string{"a", "b"}, edges, 0.85, 0, 1000, time.Nanosecond)
	if !res.Truncated {
		t.Fatalf("expected truncated=true for near-zero wall clock")
	}
}
