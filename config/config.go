package config

// Config is the routing engine's flat configuration struct (spec §6).
// routing.New hands embeddingDim to the feature store, learningRate/
// l2Lambda to the trainer, damping/pagerankTol/spectralK to the spectral
// store, and maxRecursionLayers to the SHGAT scorer's recursive neighbor
// term; SuggestDag reads acceptanceThreshold/reliabilityThreshold.
// numHeads, hiddenDim and numLayers are validated but read by no
// component: the scorer always uses its four fixed heads. See the note
// below for useTransformerSemantic/semanticProjectionDim.
type Config struct {
	NumHeads     int `yaml:"numHeads"`     // 1..16, default 4
	HiddenDim    int `yaml:"hiddenDim"`    // 8..1024, default 64
	NumLayers    int `yaml:"numLayers"`    // 1..4, default 2
	EmbeddingDim int `yaml:"embeddingDim"` // 64..4096

	// UseTransformerSemantic/SemanticProjectionDim are accepted and
	// validated but currently no-op: spec §9 Open Question (iii) treats
	// the transformer semantic head as an optional H1 variant that this
	// implementation does not require building (semanticHead always
	// uses cosine similarity). The fields exist so a config document
	// written against the full spec surface still loads and round-trips
	// rather than failing on an unrecognized key.
	UseTransformerSemantic bool `yaml:"useTransformerSemantic"`
	SemanticProjectionDim  int  `yaml:"semanticProjectionDim"`

	LearningRate float64 `yaml:"learningRate"`
	L2Lambda     float64 `yaml:"l2Lambda"`

	Damping     float64 `yaml:"damping"`     // 0..1, default 0.85
	PagerankTol float64 `yaml:"pagerankTol"` // default 1e-6
	SpectralK   int     `yaml:"spectralK"`   // default 8

	MaxRecursionLayers int `yaml:"maxRecursionLayers"` // default 2

	AcceptanceThreshold  float64 `yaml:"acceptanceThreshold"`  // default 0.7
	ReliabilityThreshold float64 `yaml:"reliabilityThreshold"` // default 0.8
}

// Default returns the spec-mandated defaults (spec §6).
func Default() Config {
	return Config{
		NumHeads:               4,
		HiddenDim:              64,
		NumLayers:              2,
		EmbeddingDim:           256,
		UseTransformerSemantic: false,
		SemanticProjectionDim:  0,
		LearningRate:           1e-3,
		L2Lambda:               1e-4,
		Damping:                0.85,
		PagerankTol:            1e-6,
		SpectralK:              8,
		MaxRecursionLayers:     2,
		AcceptanceThreshold:    0.7,
		ReliabilityThreshold:   0.8,
	}
}
