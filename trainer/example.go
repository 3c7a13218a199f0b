package trainer

import "github.com/katalvlaran/shgat/nodearena"

// Example is one supervised training episode: an intent embedding, the
// capability id that was actually chosen, whether that choice succeeded
// or failed, and the full candidate pool it was chosen from. CandidateID
// is the positive label when Success is true (push its score up against
// a sampled negative set drawn from Candidates), and the negative label
// when Success is false (push its score down against the same pool) —
// recordOutcome's data model requires both labels (spec §3: "Training
// example. {intentEmbedding, contextTools, candidateCapabilityId,
// outcome in {success, failure}}"); a failed execution must never train
// the model toward recommending it more.
type Example struct {
	IntentEmbedding  []float64
	CandidateID      string
	Success          bool
	Candidates       []nodearena.Node
	ActiveCluster    int
	Neighbors        map[string][]string
	RecentSuccessful []string
}

// TrainResult summarizes one Train call.
type TrainResult struct {
	EpochsRun     int
	FinalLoss     float64
	FinalAccuracy float64
}
