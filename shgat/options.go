package shgat

import "fmt"

// Option configures a Scorer via functional arguments.
type Option func(*config)

type config struct {
	maxRecursionLayers int
	err                error
}

func defaultConfig() config {
	return config{maxRecursionLayers: 2}
}

// WithMaxRecursionLayers bounds the recursive neighbor term's depth L
// (spec §4.4 default 2).
func WithMaxRecursionLayers(l int) Option {
	return func(c *config) {
		if l < 0 {
			c.err = fmt.Errorf("%w: MaxRecursionLayers must be >= 0 (%d)", ErrOptionViolation, l)
			return
		}
		c.maxRecursionLayers = l
	}
}
