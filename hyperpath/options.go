package hyperpath

import "time"

// Config configures one FindShortestHyperpath call.
type Config struct {
	// WallClock bounds how long the search runs before treating the
	// query as cancelled (spec §4.2 "Cancellation... every long-running
	// call... accepts a cancellation handle").
	WallClock time.Duration

	// DirectEdges, if non-empty, triggers ErrMixedUnitsNotSupported (see
	// DirectEdge doc comment).
	DirectEdges []DirectEdge

	err error
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{WallClock: 2 * time.Second}
}

// Option configures a FindShortestHyperpath call.
type Option func(*Config)

// WithWallClock overrides the cancellation wall-clock budget.
func WithWallClock(d time.Duration) Option {
	return func(c *Config) {
		if d <= 0 {
			c.err = ErrOptionViolation
			return
		}
		c.WallClock = d
	}
}

// WithDirectEdges supplies a set of hypothetical direct tool-to-tool
// edges; any non-empty set forces the query to fail fast with
// ErrMixedUnitsNotSupported (see DirectEdge).
func WithDirectEdges(edges []DirectEdge) Option {
	return func(c *Config) { c.DirectEdges = edges }
}
