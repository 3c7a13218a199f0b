package trainer

// Config holds every tunable of the training loop (spec §4.5: Adam
// optimizer, L2 regularization, mini-batch gradient accumulation,
// pairwise ranking margin with sampled negatives).
type Config struct {
	LearningRate float64 // Adam lr, default 1e-3
	Beta1        float64 // Adam beta1, default 0.9
	Beta2        float64 // Adam beta2, default 0.999
	Epsilon      float64 // Adam epsilon, default 1e-8
	L2Lambda     float64 // weight-decay coefficient, default 1e-4

	MiniBatchSize      int // examples accumulated before one atomic apply, default 4
	NegativeSampleSize int // sampled negatives per example for ranking loss, default 8
	Margin             float64 // pairwise ranking margin, default 0.2
	Epochs             int     // passes over the full example set per Train call, default 1

	// FiniteDiffEpsilon is the perturbation size used to estimate
	// gradients by central finite differences (see package doc).
	FiniteDiffEpsilon float64 // default 1e-4

	// DegenerateLossStreakLimit consecutive non-finite-loss mini-batch
	// steps before Train aborts with ErrDegenerateLoss and rolls back.
	DegenerateLossStreakLimit int // default 5

	Seed int64 // seeds the trainer-local negative-sampling RNG, default 0

	err error
}

// DefaultConfig returns the spec-mandated defaults (§4.5).
func DefaultConfig() Config {
	return Config{
		LearningRate:              1e-3,
		Beta1:                     0.9,
		Beta2:                     0.999,
		Epsilon:                   1e-8,
		L2Lambda:                  1e-4,
		MiniBatchSize:             4,
		NegativeSampleSize:        8,
		Margin:                    0.2,
		Epochs:                    1,
		FiniteDiffEpsilon:         1e-4,
		DegenerateLossStreakLimit: 5,
		Seed:                      0,
	}
}

// Option configures a Trainer at construction time.
type Option func(*Config)

func WithLearningRate(lr float64) Option {
	return func(c *Config) {
		if lr <= 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.LearningRate = lr
	}
}

func WithAdamBetas(beta1, beta2 float64) Option {
	return func(c *Config) {
		if beta1 <= 0 || beta1 >= 1 || beta2 <= 0 || beta2 >= 1 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.Beta1, c.Beta2 = beta1, beta2
	}
}

func WithL2Lambda(lambda float64) Option {
	return func(c *Config) {
		if lambda < 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.L2Lambda = lambda
	}
}

func WithMiniBatchSize(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.MiniBatchSize = n
	}
}

func WithNegativeSampleSize(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.NegativeSampleSize = n
	}
}

func WithMargin(m float64) Option {
	return func(c *Config) {
		if m < 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.Margin = m
	}
}

func WithEpochs(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.Epochs = n
	}
}

func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

func WithDegenerateLossStreakLimit(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.err = firstErr(c.err, ErrOptionViolation)
			return
		}
		c.DegenerateLossStreakLimit = n
	}
}

func firstErr(existing, next error) error {
	if existing != nil {
		return existing
	}
	return next
}
