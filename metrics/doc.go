// Package metrics is the Prometheus collector for the routing engine: a
// Collector reads shgat.Stats/trainer epoch summaries/spectral recompute
// timings and exposes them as counters/gauges/histograms (spec §1.1). The
// engine itself never starts an HTTP server or registers with the
// default registry — the host process owns that (matching this
// codebase's "CLI and outer surfaces stay thin" convention).
package metrics
