package spectral

import (
	"fmt"
	"time"
)

// Option configures a Store via functional arguments (spec §4.7's flat
// config struct, expressed the way package bfs expresses its options).
type Option func(*Config)

// Config holds every tunable of the spectral recompute pipeline. Zero
// value is invalid; use DefaultConfig and apply Options on top of it.
type Config struct {
	// K is the number of smallest non-trivial Laplacian eigenvectors
	// used as each node's spectral embedding, and also the number of
	// k-means clusters (spec §4.3 default 8).
	K int

	// Seed fixes the k-means initial-centroid selection for
	// reproducible cluster labels (spec §4.3 "fixed seed").
	Seed int64

	// MaxKMeansIter bounds Lloyd's-algorithm iterations.
	MaxKMeansIter int

	// Damping is the hypergraph PageRank damping factor (spec §4.3
	// default 0.85).
	Damping float64

	// PageRankTol is the L-infinity convergence threshold τ (spec §4.3
	// default 1e-6).
	PageRankTol float64

	// MaxPageRankIter caps the power-iteration sweep count (spec §4.3
	// default 100).
	MaxPageRankIter int

	// WallClock bounds total PageRank iteration time; on expiry the
	// current estimate is returned with truncated=true rather than an
	// error (spec §4.7 cancellation semantics).
	WallClock time.Duration

	// HeatTime is the diffusion time t in the capability heat-kernel
	// score exp(-t*lambda) (not spec-specified numerically; chosen to
	// keep near eigenvalues — the low end of the spectrum — dominant).
	HeatTime float64

	err error
}

// DefaultConfig returns the spec-default Config.
func DefaultConfig() Config {
	return Config{
		K:               8,
		Seed:            42,
		MaxKMeansIter:   100,
		Damping:         0.85,
		PageRankTol:     1e-6,
		MaxPageRankIter: 100,
		WallClock:       2 * time.Second,
		HeatTime:        1.0,
	}
}

// WithK sets the spectral embedding dimension / cluster count.
func WithK(k int) Option {
	return func(c *Config) {
		if k <= 0 {
			c.err = fmt.Errorf("%w: K must be > 0 (%d)", ErrOptionViolation, k)
			return
		}
		c.K = k
	}
}

// WithSeed fixes the k-means initialization seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithDamping sets the PageRank damping factor, must be in (0,1).
func WithDamping(d float64) Option {
	return func(c *Config) {
		if d <= 0 || d >= 1 {
			c.err = fmt.Errorf("%w: Damping must be in (0,1) (%f)", ErrOptionViolation, d)
			return
		}
		c.Damping = d
	}
}

// WithPageRankTol sets the PageRank convergence threshold.
func WithPageRankTol(tol float64) Option {
	return func(c *Config) {
		if tol <= 0 {
			c.err = fmt.Errorf("%w: PageRankTol must be > 0 (%f)", ErrOptionViolation, tol)
			return
		}
		c.PageRankTol = tol
	}
}

// WithMaxPageRankIter caps PageRank power-iteration sweeps.
func WithMaxPageRankIter(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: MaxPageRankIter must be > 0 (%d)", ErrOptionViolation, n)
			return
		}
		c.MaxPageRankIter = n
	}
}

// WithWallClock bounds total PageRank wall-clock time.
func WithWallClock(d time.Duration) Option {
	return func(c *Config) {
		if d <= 0 {
			c.err = fmt.Errorf("%w: WallClock must be > 0", ErrOptionViolation)
			return
		}
		c.WallClock = d
	}
}

// WithHeatTime sets the diffusion time used by the capability
// heat-kernel score.
func WithHeatTime(t float64) Option {
	return func(c *Config) {
		if t <= 0 {
			c.err = fmt.Errorf("%w: HeatTime must be > 0 (%f)", ErrOptionViolation, t)
			return
		}
		c.HeatTime = t
	}
}
