package routing

import (
	"context"
	"fmt"
	"time"
)

// RegisterTool upserts a Tool node (spec §6's registerTool). The first
// registerTool or registerCapability call transitions the trainer out of
// Uninitialized.
func (e *Engine) RegisterTool(id string, embedding []float64, description string) error {
	if err := e.assertNotQuarantined(); err != nil {
		return err
	}

	if err := e.fs.UpsertTool(id, embedding, description); err != nil {
		return fmt.Errorf("routing.RegisterTool: %w", err)
	}
	e.tr.Initialize()

	return nil
}

// RegisterCapability upserts a Capability node (spec §6's
// registerCapability). toolsUsed is the learned execution-order trace
// incidence.DeriveHyperedge splits into the hyperedge's source/target
// halves.
func (e *Engine) RegisterCapability(id string, embedding []float64, toolsUsed []string, successRate float64, description string, paramSchema []byte) error {
	if err := e.assertNotQuarantined(); err != nil {
		return err
	}

	if err := e.fs.UpsertCapability(id, embedding, toolsUsed, successRate, description, paramSchema); err != nil {
		return fmt.Errorf("routing.RegisterCapability: %w", err)
	}
	e.tr.Initialize()

	return nil
}

// UpdateHypergraphFeatures forces a spectral recompute (PageRank,
// hypergraph PageRank, heat diffusion, spectral clustering) over the
// current incidence matrix (spec §6's updateHypergraphFeatures). The
// spectral store's own cache discipline makes repeated calls with an
// unchanged hypergraph a cheap no-op.
func (e *Engine) UpdateHypergraphFeatures(ctx context.Context) error {
	if err := e.assertNotQuarantined(); err != nil {
		return err
	}

	start := time.Now()
	err := e.spec.Recompute(ctx, e.fs)
	elapsed := time.Since(start)

	truncated := e.spec.LastTruncated()
	e.logger.Info().Dur("elapsed", elapsed).Bool("truncated", truncated).Err(err).Msg("routing: spectral recompute")
	if e.metrics != nil {
		e.metrics.ObserveSpectralRecompute(elapsed, truncated)
	}

	if err != nil {
		return fmt.Errorf("routing.UpdateHypergraphFeatures: %w", err)
	}

	return nil
}
