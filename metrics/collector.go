package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shgat/shgat"
)

// headNames mirrors shgat.HeadKind's fixed ordering for the
// unstable_head_total label (spec: H1 semantic, H2 structure, H3
// temporal, H4 reliability).
var headNames = [4]string{"semantic", "structure", "temporal", "reliability"}

// Collector is a self-contained Prometheus registry for one routing
// engine instance. A fresh registry per Collector (rather than
// promauto's global default registry) lets a process run more than one
// engine, and lets tests construct Collectors repeatedly without
// "duplicate metrics collector registration" panics.
type Collector struct {
	registry *prometheus.Registry

	unstableHeadTotal    *prometheus.CounterVec
	scoreLatencySeconds  *prometheus.HistogramVec
	candidatesScoredSum  prometheus.Counter
	trainEpochLoss       prometheus.Gauge
	trainEpochAccuracy   prometheus.Gauge
	trainEpochsRunTotal  prometheus.Counter
	spectralRecomputeSec prometheus.Histogram
	spectralTruncated    prometheus.Counter
	hyperpathQuerySec    *prometheus.HistogramVec
	quarantineTotal      *prometheus.CounterVec
}

// NewCollector builds a Collector with its own prometheus.Registry. The
// host process reads Registry() to expose it over its own HTTP mux (the
// engine never serves /metrics itself).
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		registry: reg,

		unstableHeadTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shgat",
			Subsystem: "scorer",
			Name:      "unstable_head_total",
			Help:      "Count of non-finite head-score occurrences, sanitized to 0, by head.",
		}, []string{"head"}),

		scoreLatencySeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shgat",
			Subsystem: "scorer",
			Name:      "score_latency_seconds",
			Help:      "Wall time of the most recent scoring call, by candidate kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),

		candidatesScoredSum: f.NewCounter(prometheus.CounterOpts{
			Namespace: "shgat",
			Subsystem: "scorer",
			Name:      "candidates_scored_total",
			Help:      "Cumulative number of candidates scored across all calls.",
		}),

		trainEpochLoss: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "shgat",
			Subsystem: "trainer",
			Name:      "epoch_loss",
			Help:      "Mean loss of the most recently completed training epoch.",
		}),

		trainEpochAccuracy: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "shgat",
			Subsystem: "trainer",
			Name:      "epoch_accuracy",
			Help:      "Mean ranking accuracy of the most recently completed training epoch.",
		}),

		trainEpochsRunTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "shgat",
			Subsystem: "trainer",
			Name:      "epochs_run_total",
			Help:      "Cumulative number of training epochs completed.",
		}),

		spectralRecomputeSec: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shgat",
			Subsystem: "spectral",
			Name:      "recompute_seconds",
			Help:      "Wall time of spectral feature recomputation.",
			Buckets:   prometheus.DefBuckets,
		}),

		spectralTruncated: f.NewCounter(prometheus.CounterOpts{
			Namespace: "shgat",
			Subsystem: "spectral",
			Name:      "truncated_total",
			Help:      "Count of recomputes that hit the power-iteration wall-clock budget before converging.",
		}),

		hyperpathQuerySec: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shgat",
			Subsystem: "hyperpath",
			Name:      "query_seconds",
			Help:      "Wall time of DR-DSP queries, by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		quarantineTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shgat",
			Subsystem: "routing",
			Name:      "quarantine_transitions_total",
			Help:      "Count of quarantine state transitions, by direction.",
		}, []string{"direction"}),
	}
}

// Registry returns the Collector's private prometheus.Registry for the
// host process to expose.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveScorerStats records a shgat.Stats snapshot, taken after a
// scoring call completes (not threaded through the hot path itself).
func (c *Collector) ObserveScorerStats(kind string, stats shgat.Stats) {
	for i, n := range stats.UnstableHeadCount {
		if n == 0 {
			continue
		}
		c.unstableHeadTotal.WithLabelValues(headNames[i]).Add(float64(n))
	}
	c.scoreLatencySeconds.WithLabelValues(kind).Observe(stats.LastScoreWallTime.Seconds())
	c.candidatesScoredSum.Add(float64(stats.CandidatesScoredSum))
}

// ObserveTrainEpoch records one completed training epoch's summary.
func (c *Collector) ObserveTrainEpoch(loss, accuracy float64) {
	c.trainEpochLoss.Set(loss)
	c.trainEpochAccuracy.Set(accuracy)
	c.trainEpochsRunTotal.Inc()
}

// ObserveSpectralRecompute records one Recompute call's duration and
// whether it hit the power-iteration wall-clock budget.
func (c *Collector) ObserveSpectralRecompute(d time.Duration, truncated bool) {
	c.spectralRecomputeSec.Observe(d.Seconds())
	if truncated {
		c.spectralTruncated.Inc()
	}
}

// ObserveHyperpathQuery records one FindShortestHyperpath call's duration
// and outcome ("found", "unreachable", "cancelled").
func (c *Collector) ObserveHyperpathQuery(d time.Duration, outcome string) {
	c.hyperpathQuerySec.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveQuarantine records a quarantine state transition ("enter" or
// "exit").
func (c *Collector) ObserveQuarantine(direction string) {
	c.quarantineTotal.WithLabelValues(direction).Inc()
}
