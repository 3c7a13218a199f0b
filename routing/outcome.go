package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/shgat/nodearena"
	"github.com/katalvlaran/shgat/trainer"
)

// Outcome is recordOutcome's input (spec §6): the capability that was
// actually run, the intent and context it was chosen under, whether it
// succeeded, and how long it took.
type Outcome struct {
	CapabilityID    string
	IntentEmbedding []float64
	ContextTools    []string
	Success         bool
	DurationMs      int64
}

// RecordOutcome updates the capability's running reliability aggregate
// and queues a supervised training example for the next Train call
// (spec §6's recordOutcome). Blocked while quarantined: it both mutates
// featurestore state and grows the training queue.
func (e *Engine) RecordOutcome(o Outcome) error {
	if err := e.assertNotQuarantined(); err != nil {
		return err
	}

	node, err := e.fs.GetNode(o.CapabilityID)
	if err != nil {
		if errors.Is(err, nodearena.ErrNotFound) {
			return fmt.Errorf("routing.RecordOutcome: %w", ErrUnknownCapability)
		}

		return fmt.Errorf("routing.RecordOutcome: %w", err)
	}

	count := node.Features.Reliability.UsageCount
	oldRate := node.Features.Reliability.SuccessRate
	var observed float64
	if o.Success {
		observed = 1
	}
	newRate := (oldRate*float64(count) + observed) / float64(count+1)
	delta := 1

	if err := e.fs.UpdateFeature(o.CapabilityID, nodearena.FeaturePatch{
		SuccessRate:     &newRate,
		UsageCountDelta: &delta,
	}); err != nil {
		return fmt.Errorf("routing.RecordOutcome: %w", err)
	}

	e.mu.Lock()
	if o.Success {
		e.recentSuccessful = append(e.recentSuccessful, o.CapabilityID)
		if len(e.recentSuccessful) > recentSuccessfulCap {
			e.recentSuccessful = e.recentSuccessful[len(e.recentSuccessful)-recentSuccessfulCap:]
		}
	}

	candidates := e.fs.Capabilities()
	activeCluster, _ := e.spec.ActiveCluster(o.ContextTools)
	_, neighbors, nerr := e.incidenceAndNeighbors(context.Background())
	recent := append([]string(nil), e.recentSuccessful...)

	if nerr == nil {
		exampleID := uuid.NewString()
		e.pendingExamples = append(e.pendingExamples, trainer.Example{
			IntentEmbedding:  o.IntentEmbedding,
			CandidateID:      o.CapabilityID,
			Success:          o.Success,
			Candidates:       candidates,
			ActiveCluster:    activeCluster,
			Neighbors:        neighbors,
			RecentSuccessful: recent,
		})
		e.logger.Debug().Str("example_id", exampleID).Str("capability_id", o.CapabilityID).Bool("success", o.Success).Msg("routing: queued training example")
	}
	e.mu.Unlock()

	return nil
}

// Train drains the queued training examples accumulated by RecordOutcome
// and runs epochs passes of batchSize mini-batches over them (spec §6's
// train). Blocked while quarantined. A PreconditionFailed
// (ErrInsufficientExamples) or Degenerate (ErrDegenerateLoss) trainer
// failure quarantines the engine (spec §7).
func (e *Engine) Train(epochs, batchSize int, onEpoch trainer.OnEpochFunc) (trainer.TrainResult, error) {
	if err := e.assertNotQuarantined(); err != nil {
		return trainer.TrainResult{}, err
	}

	if err := e.tr.SetEpochs(epochs); err != nil {
		return trainer.TrainResult{}, fmt.Errorf("routing.Train: %w", err)
	}
	if err := e.tr.SetMiniBatchSize(batchSize); err != nil {
		return trainer.TrainResult{}, fmt.Errorf("routing.Train: %w", err)
	}
	e.tr.OnEpoch(func(epoch int, loss, accuracy float64) {
		e.logger.Info().Int("epoch", epoch).Float64("loss", loss).Float64("accuracy", accuracy).Msg("routing: training epoch complete")
		if e.metrics != nil {
			e.metrics.ObserveTrainEpoch(loss, accuracy)
		}
		if onEpoch != nil {
			onEpoch(epoch, loss, accuracy)
		}
	})

	e.mu.Lock()
	examples := e.pendingExamples
	e.mu.Unlock()

	result, err := e.tr.Train(examples)
	if err != nil {
		incidentID := uuid.NewString()
		e.quarantined.Store(true)
		e.logger.Warn().Str("incident_id", incidentID).Err(err).Msg("routing: training failure, entering quarantine")
		if e.metrics != nil {
			e.metrics.ObserveQuarantine("enter")
		}

		return trainer.TrainResult{}, fmt.Errorf("routing.Train: %w", err)
	}

	e.mu.Lock()
	e.pendingExamples = nil
	e.mu.Unlock()

	return result, nil
}
