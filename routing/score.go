package routing

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shgat/shgat"
)

// ScoreCapabilities ranks every registered capability against
// intentEmbedding (spec §6's scoreCapabilities), using contextTools to
// resolve the active spectral cluster for the structure head's cluster-
// match term. Always available, including while the engine is
// quarantined: it is a pure read path.
func (e *Engine) ScoreCapabilities(ctx context.Context, intentEmbedding []float64, contextTools []string) ([]shgat.CapabilityScore, error) {
	_, neighbors, err := e.incidenceAndNeighbors(ctx)
	if err != nil {
		return nil, fmt.Errorf("routing.ScoreCapabilities: %w", err)
	}

	activeCluster, _ := e.spec.ActiveCluster(contextTools)

	candidates := e.fs.Capabilities()
	if len(candidates) == 0 {
		return nil, nil
	}

	e.mu.Lock()
	recent := append([]string(nil), e.recentSuccessful...)
	e.mu.Unlock()

	scores, err := e.sc.ScoreCapabilities(intentEmbedding, activeCluster, candidates, neighbors, recent)
	if err != nil {
		return nil, fmt.Errorf("routing.ScoreCapabilities: %w", err)
	}

	if e.metrics != nil {
		e.metrics.ObserveScorerStats("capabilities", e.sc.Stats())
	}

	return scores, nil
}

// ScoreTools ranks every registered tool against intentEmbedding (spec
// §6's scoreTools), returning the full untruncated ranked list — unlike
// Discover, which truncates to the engine's configured top-N. Always
// available, including while the engine is quarantined.
func (e *Engine) ScoreTools(intentEmbedding []float64, contextTools []string) ([]shgat.ToolScore, error) {
	scores, err := e.scoreToolsUntruncated(intentEmbedding, contextTools)
	if err != nil {
		return nil, fmt.Errorf("routing.ScoreTools: %w", err)
	}

	return scores, nil
}

// Discover ranks every registered tool against intentEmbedding using the
// same H1+H2 (Semantic+Structure) scoring as ScoreTools, then truncates
// to the engine's configured discovery top-N (spec §4.7 item 1: "hybrid
// — embed intent, get H1+H2 scores over tools, truncate to top-N
// (config)"). Always available, including while the engine is
// quarantined.
func (e *Engine) Discover(intentEmbedding []float64, contextTools []string) ([]shgat.ToolScore, error) {
	scores, err := e.scoreToolsUntruncated(intentEmbedding, contextTools)
	if err != nil {
		return nil, fmt.Errorf("routing.Discover: %w", err)
	}

	if len(scores) > e.discoverTopN {
		scores = scores[:e.discoverTopN]
	}

	return scores, nil
}

func (e *Engine) scoreToolsUntruncated(intentEmbedding []float64, contextTools []string) ([]shgat.ToolScore, error) {
	activeCluster, _ := e.spec.ActiveCluster(contextTools)

	candidates := e.fs.Tools()
	if len(candidates) == 0 {
		return nil, nil
	}

	scores, err := e.sc.ScoreTools(intentEmbedding, activeCluster, candidates)
	if err != nil {
		return nil, err
	}

	if e.metrics != nil {
		e.metrics.ObserveScorerStats("tools", e.sc.Stats())
	}

	return scores, nil
}
