package config

// Option mutates a Config, used by New to apply overrides on top of
// Default before validation (mirrors the teacher's builder.BuilderOption
// functional-options pattern).
type Option func(*Config)

func WithNumHeads(n int) Option        { return func(c *Config) { c.NumHeads = n } }
func WithHiddenDim(n int) Option       { return func(c *Config) { c.HiddenDim = n } }
func WithNumLayers(n int) Option       { return func(c *Config) { c.NumLayers = n } }
func WithEmbeddingDim(n int) Option    { return func(c *Config) { c.EmbeddingDim = n } }
func WithLearningRate(lr float64) Option {
	return func(c *Config) { c.LearningRate = lr }
}
func WithL2Lambda(l float64) Option       { return func(c *Config) { c.L2Lambda = l } }
func WithDamping(d float64) Option        { return func(c *Config) { c.Damping = d } }
func WithPagerankTol(tol float64) Option  { return func(c *Config) { c.PagerankTol = tol } }
func WithSpectralK(k int) Option          { return func(c *Config) { c.SpectralK = k } }
func WithMaxRecursionLayers(l int) Option { return func(c *Config) { c.MaxRecursionLayers = l } }
func WithAcceptanceThreshold(t float64) Option {
	return func(c *Config) { c.AcceptanceThreshold = t }
}
func WithReliabilityThreshold(t float64) Option {
	return func(c *Config) { c.ReliabilityThreshold = t }
}
func WithTransformerSemantic(enabled bool, projectionDim int) Option {
	return func(c *Config) {
		c.UseTransformerSemantic = enabled
		c.SemanticProjectionDim = projectionDim
	}
}

// New returns Default() with opts applied, validated against the spec §6
// range annotations. Returns ErrOptionViolation (wrapped with the
// offending field name) on the first out-of-range field found.
func New(opts ...Option) (Config, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
