package routing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/shgat/config"
	"github.com/katalvlaran/shgat/featurestore"
	"github.com/katalvlaran/shgat/incidence"
	"github.com/katalvlaran/shgat/metrics"
	"github.com/katalvlaran/shgat/shgat"
	"github.com/katalvlaran/shgat/spectral"
	"github.com/katalvlaran/shgat/trainer"
)

// recentSuccessfulCap bounds the ring buffer of recently-successful
// capability ids fed to SHGAT's H3 cooccurrence signal (spec §4.4).
const recentSuccessfulCap = 32

// Engine is the public routing API: registerCapability/registerTool/
// updateHypergraphFeatures (model-side mutation), scoreCapabilities/
// scoreTools/suggestDag/findShortestHyperpath (read paths, always
// available), recordOutcome/train (training-side mutation, blocked while
// quarantined), and snapshotParams/loadParams (spec §6's public call
// table). Exactly one Engine owns one featurestore.Store, spectral.Store,
// shgat.Scorer, and trainer.Trainer.
type Engine struct {
	cfg config.Config

	fs   *featurestore.Store
	spec *spectral.Store
	sc   *shgat.Scorer
	tr   *trainer.Trainer

	discoverTopN int

	logger  zerolog.Logger
	metrics *metrics.Collector

	quarantined atomic.Bool

	mu               sync.Mutex
	pendingExamples  []trainer.Example
	recentSuccessful []string
}

// EngineOption configures optional ambient collaborators on New.
type EngineOption func(*Engine)

// WithLogger injects a zerolog.Logger for state-transition logging
// (quarantine entry/exit, spectral recompute, training epoch summaries).
// Defaults to zerolog.Nop() — logging is opt-in ambient infrastructure,
// never required to use the engine.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics injects a metrics.Collector. Defaults to nil, in which
// case observation calls are skipped entirely (never required to use the
// engine).
func WithMetrics(c *metrics.Collector) EngineOption {
	return func(e *Engine) { e.metrics = c }
}

// New constructs an Engine from cfg (spec §6's flat configuration
// struct). discoverTopN bounds discover()'s truncated tool-candidate
// list; it is not one of spec §6's enumerated config fields, so it is a
// constructor-time option rather than a Config field.
func New(cfg config.Config, discoverTopN int, opts ...EngineOption) (*Engine, error) {
	if discoverTopN <= 0 {
		discoverTopN = 10
	}

	fs := featurestore.NewStore(cfg.EmbeddingDim, incidence.DefaultSuccessRateFloor)

	specStore, err := spectral.NewStore(
		spectral.WithK(cfg.SpectralK),
		spectral.WithDamping(cfg.Damping),
		spectral.WithPageRankTol(cfg.PagerankTol),
	)
	if err != nil {
		return nil, fmt.Errorf("routing.New: %w", err)
	}

	scorerOpts := []shgat.Option{shgat.WithMaxRecursionLayers(cfg.MaxRecursionLayers)}
	sc, err := shgat.NewScorer(scorerOpts...)
	if err != nil {
		return nil, fmt.Errorf("routing.New: %w", err)
	}

	tr, err := trainer.New(sc, scorerOpts,
		trainer.WithLearningRate(cfg.LearningRate),
		trainer.WithL2Lambda(cfg.L2Lambda),
	)
	if err != nil {
		return nil, fmt.Errorf("routing.New: %w", err)
	}

	e := &Engine{
		cfg:          cfg,
		fs:           fs,
		spec:         specStore,
		sc:           sc,
		tr:           tr,
		discoverTopN: discoverTopN,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Quarantined reports whether the engine is in the quarantined state
// (spec §7: PreconditionFailed/Degenerate failures quarantine the
// engine; only read paths work until RecoverFromQuarantine is called).
func (e *Engine) Quarantined() bool { return e.quarantined.Load() }

// RecoverFromQuarantine explicitly clears the quarantined state.
func (e *Engine) RecoverFromQuarantine() {
	e.quarantined.Store(false)
	e.logger.Info().Msg("routing: quarantine cleared")
	if e.metrics != nil {
		e.metrics.ObserveQuarantine("exit")
	}
}

func (e *Engine) assertNotQuarantined() error {
	if e.quarantined.Load() {
		return ErrQuarantined
	}

	return nil
}

// incidenceAndNeighbors is a small shared helper: rebuild-or-fetch the
// incidence matrix and derive the capability-capability shared-tool
// neighbor map used by ScoreCapabilities' recursive term.
func (e *Engine) incidenceAndNeighbors(ctx context.Context) (*incidence.Matrix, map[string][]string, error) {
	inc, err := e.fs.Incidence()
	if err != nil {
		return nil, nil, err
	}

	neighbors := buildCapabilityNeighbors(ctx, inc)

	return inc, neighbors, nil
}
