package shgat

// HeadKind tags the four fixed attention heads (spec §9 "Polymorphism
// over heads": a tagged variant sharing the contribute(node, intent,
// ctx) -> scalar contract, batched by kind instead of dispatched
// per-node).
type HeadKind uint8

const (
	// HeadSemantic is H1: cosine(intent, candidate embedding).
	HeadSemantic HeadKind = iota
	// HeadStructure is H2: learned affine over (PageRank, cluster match, Adamic-Adar).
	HeadStructure
	// HeadTemporal is H3: learned affine over (recency, recent-success cooccurrence).
	HeadTemporal
	// HeadReliability is H4: piecewise monotone function of successRate.
	HeadReliability

	// numHeads is the fixed head count K=4 this scorer implements.
	numHeads = 4
)

// String renders HeadKind for logging and metrics labels.
func (k HeadKind) String() string {
	switch k {
	case HeadSemantic:
		return "semantic"
	case HeadStructure:
		return "structure"
	case HeadTemporal:
		return "temporal"
	case HeadReliability:
		return "reliability"
	default:
		return "unknown"
	}
}

// CapabilityScore is one ranked result of ScoreCapabilities. HeadWeights
// holds the gate weight actually applied to each head: indices
// Semantic/Structure/Temporal are the threeHeadGate softmax weights
// (sum to 1), while index Reliability holds the reliability multiplier
// itself (not a softmax weight — H4 scales the gated H1-H3 sum rather
// than sharing its softmax mass, see threeHeadGate's doc comment).
type CapabilityScore struct {
	CapabilityID string
	Score        float64
	HeadScores   [numHeads]float64
	HeadWeights  [numHeads]float64
}

// ToolScore is one ranked result of ScoreTools.
type ToolScore struct {
	ToolID string
	Score  float64
}
