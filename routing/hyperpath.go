package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/shgat/hyperpath"
)

// FindShortestHyperpath exposes DR-DSP directly over the current
// incidence snapshot (spec §6's findShortestHyperpath). A read path,
// always available including while the engine is quarantined.
func (e *Engine) FindShortestHyperpath(ctx context.Context, source, target string, opts ...hyperpath.Option) (hyperpath.Result, error) {
	inc, err := e.fs.Incidence()
	if err != nil {
		return hyperpath.Result{}, fmt.Errorf("routing.FindShortestHyperpath: %w", err)
	}

	start := time.Now()
	result, err := hyperpath.FindShortestHyperpath(ctx, inc.Hyperedges(), source, target, opts...)
	elapsed := time.Since(start)

	if e.metrics != nil {
		outcome := "unreachable"
		switch {
		case err != nil:
			outcome = "error"
		case result.Cancelled:
			outcome = "cancelled"
		case result.Found:
			outcome = "found"
		}
		e.metrics.ObserveHyperpathQuery(elapsed, outcome)
	}

	return result, err
}
