package trainer

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/shgat/shgat"
	"github.com/katalvlaran/shgat/vecops"
)

// scoreAll scores every candidate in ex against a scratch scorer holding
// trialParams, returning a score slice aligned with ex.Candidates and the
// index of ex.CandidateID within it. Returns ok=false if the candidate id
// is not present in Candidates (a malformed example, skipped by the
// caller).
func scoreAll(scratch *shgat.Scorer, trialParams shgat.Params, ex Example) (scores []float64, candidateIdx int, ok bool) {
	scratch.SetParams(trialParams)

	out, err := scratch.ScoreCapabilities(ex.IntentEmbedding, ex.ActiveCluster, ex.Candidates, ex.Neighbors, ex.RecentSuccessful)
	if err != nil {
		return nil, -1, false
	}

	byID := make(map[string]float64, len(out))
	for _, cs := range out {
		byID[cs.CapabilityID] = cs.Score
	}

	scores = make([]float64, len(ex.Candidates))
	candidateIdx = -1
	for i, c := range ex.Candidates {
		scores[i] = byID[c.ID]
		if c.ID == ex.CandidateID {
			candidateIdx = i
		}
	}
	if candidateIdx < 0 {
		return nil, -1, false
	}

	return scores, candidateIdx, true
}

// crossEntropyLoss treats scores as pseudo-logits over the full candidate
// set. On success it returns -log(softmax(scores)[labelIdx]), maximizing
// the chosen candidate's probability mass. On failure it returns
// -log(1 - softmax(scores)[labelIdx]), the complementary loss that pushes
// probability mass away from the candidate that failed (spec §3's
// outcome-labeled training example requires a failed execution to train
// the model away from, not toward, recommending it again).
func crossEntropyLoss(scores []float64, labelIdx int, success bool) (float64, error) {
	lse, err := vecops.LogSumExp(scores)
	if err != nil {
		return 0, err
	}

	logP := scores[labelIdx] - lse
	if success {
		return -logP, nil
	}

	// log(1 - exp(logP)), guarded against logP >= 0 (numerically p == 1)
	// which would make 1-p non-positive; clamp to the smallest loss-bearing
	// probability instead of propagating -Inf/NaN through training.
	p := math.Exp(logP)
	if p >= 1 {
		p = 1 - 1e-9
	}
	return -math.Log1p(-p), nil
}

// pairwiseRankingLoss sums the hinge margin loss between labelIdx and
// each sampled comparison index. On success labelIdx is the positive:
// max(0, margin - (score_label - score_other)), pushing it above the
// sampled negatives. On failure labelIdx is the negative: max(0, margin -
// (score_other - score_label)), pushing it below the same sampled pool.
func pairwiseRankingLoss(scores []float64, labelIdx int, otherIdxs []int, margin float64, success bool) float64 {
	var total float64
	for _, oi := range otherIdxs {
		var diff float64
		if success {
			diff = margin - (scores[labelIdx] - scores[oi])
		} else {
			diff = margin - (scores[oi] - scores[labelIdx])
		}
		if diff > 0 {
			total += diff
		}
	}

	return total
}

// l2Penalty returns lambda * sum(flat[i]^2), the weight-decay term.
func l2Penalty(flat []float64, lambda float64) float64 {
	var sumSq float64
	for _, v := range flat {
		sumSq += v * v
	}

	return lambda * sumSq
}

// sampleNegatives picks up to n distinct indices from [0,len) excluding
// exclude, using rng for determinism given a fixed seed.
func sampleNegatives(n, length, exclude int, rng *rand.Rand) []int {
	if length <= 1 {
		return nil
	}

	pool := make([]int, 0, length-1)
	for i := 0; i < length; i++ {
		if i != exclude {
			pool = append(pool, i)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if n > len(pool) {
		n = len(pool)
	}

	return pool[:n]
}

// predictedPositiveCorrect reports whether labelIdx has the strictly
// highest score among the candidates. The caller interprets this
// differently depending on the example's outcome: true is the desired
// prediction on a success example, false is the desired prediction on a
// failure example.
func predictedPositiveCorrect(scores []float64, labelIdx int) bool {
	for i, s := range scores {
		if i != labelIdx && s > scores[labelIdx] {
			return false
		}
	}

	return true
}

func isFiniteLoss(loss float64) bool {
	return !math.IsNaN(loss) && !math.IsInf(loss, 0)
}
