package trainer

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/shgat/shgat"
)

// OnEpochFunc is invoked synchronously once per epoch with the epoch
// index (0-based), the mean loss over that epoch's mini-batches, and the
// mean per-example ranking accuracy.
type OnEpochFunc func(epoch int, loss, accuracy float64)

// Trainer owns the state machine and Adam optimizer state for one
// shgat.Scorer. Negative sampling draws from a trainer-local seeded
// math/rand.Rand (never the package-global RNG), so that training the
// same examples with the same seed reproduces the same final Params
// regardless of what else runs concurrently in the process.
type Trainer struct {
	cfg     Config
	scorer  *shgat.Scorer
	scratch *shgat.Scorer // loss-evaluation-only scorer, never exposed for live scoring

	mu    sync.Mutex
	state State
	rng   *rand.Rand
	adam  *adamState
	onEpoch OnEpochFunc
}

// New constructs a Trainer bound to scorer. scratchOpts should mirror
// whatever shgat.Option values scorer itself was constructed with (e.g.
// WithMaxRecursionLayers), so loss evaluation sees the same recursion
// depth the live scorer uses.
func New(scorer *shgat.Scorer, scratchOpts []shgat.Option, opts ...Option) (*Trainer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	scratch, err := shgat.NewScorer(scratchOpts...)
	if err != nil {
		return nil, fmt.Errorf("trainer.New: constructing scratch scorer: %w", err)
	}

	dim := flatDim(scorer.Params())

	return &Trainer{
		cfg:     cfg,
		scorer:  scorer,
		scratch: scratch,
		state:   Uninitialized,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		adam:    newAdamState(dim, cfg),
	}, nil
}

// OnEpoch registers a callback invoked synchronously at the end of each
// epoch during Train.
func (t *Trainer) OnEpoch(fn OnEpochFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEpoch = fn
}

// State returns the trainer's current lifecycle state.
func (t *Trainer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Initialize transitions Uninitialized -> Initialized, called once the
// system this trainer serves has registered its first capability or
// tool. Idempotent once past Uninitialized.
func (t *Trainer) Initialize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Uninitialized {
		t.state = Initialized
	}
}

// SetEpochs overrides cfg.Epochs for subsequent Train calls. Rejected
// with ErrAlreadyTraining while a Train call is in flight.
func (t *Trainer) SetEpochs(n int) error {
	if n <= 0 {
		return fmt.Errorf("trainer.SetEpochs: epochs must be positive: %w", ErrOptionViolation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Training {
		return ErrAlreadyTraining
	}
	t.cfg.Epochs = n

	return nil
}

// SetMiniBatchSize overrides cfg.MiniBatchSize for subsequent Train
// calls. Rejected with ErrAlreadyTraining while a Train call is in
// flight.
func (t *Trainer) SetMiniBatchSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("trainer.SetMiniBatchSize: mini-batch size must be positive: %w", ErrOptionViolation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Training {
		return ErrAlreadyTraining
	}
	t.cfg.MiniBatchSize = n

	return nil
}

// Train runs cfg.Epochs passes over examples, each pass split into
// mini-batches of cfg.MiniBatchSize applied atomically via SetParams.
// Requires Initialize to have been called first and at least two
// examples; returns ErrInsufficientExamples or ErrDegenerateLoss
// (with Params rolled back to the pre-call snapshot) as non-fatal
// failures alongside a zero TrainResult.
func (t *Trainer) Train(examples []Example) (TrainResult, error) {
	t.mu.Lock()
	if t.state == Training {
		t.mu.Unlock()
		return TrainResult{}, ErrAlreadyTraining
	}
	if t.state == Uninitialized {
		t.mu.Unlock()
		return TrainResult{}, ErrNotInitialized
	}
	if len(examples) < 2 {
		t.mu.Unlock()
		return TrainResult{}, ErrInsufficientExamples
	}
	preTrainState := t.state
	t.state = Training
	t.mu.Unlock()

	snapshot := t.scorer.Params()
	flat := flattenParams(snapshot)

	var (
		lastLoss     float64
		lastAcc      float64
		nonFiniteRun int
		degenerate   bool
	)

	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		var epochLossSum, epochAccSum float64
		var steps int

		for start := 0; start < len(examples); start += t.cfg.MiniBatchSize {
			end := start + t.cfg.MiniBatchSize
			if end > len(examples) {
				end = len(examples)
			}
			batch := examples[start:end]

			negatives := make([][]int, len(batch))

			loss, acc, ok := t.evalBatch(flat, snapshot, batch, negatives, true)
			if !ok {
				continue
			}

			if !isFiniteLoss(loss) {
				nonFiniteRun++
				if nonFiniteRun >= t.cfg.DegenerateLossStreakLimit {
					degenerate = true
					break
				}
				continue
			}
			nonFiniteRun = 0

			grad := t.estimateGradient(flat, snapshot, batch, negatives)
			flat = t.adam.step(flat, grad)

			t.scorer.SetParams(unflattenParams(flat, snapshot))

			epochLossSum += loss
			epochAccSum += acc
			steps++
		}

		if degenerate {
			break
		}

		if steps > 0 {
			lastLoss = epochLossSum / float64(steps)
			lastAcc = epochAccSum / float64(steps)
		}

		t.mu.Lock()
		cb := t.onEpoch
		t.mu.Unlock()
		if cb != nil {
			cb(epoch, lastLoss, lastAcc)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if degenerate {
		t.scorer.SetParams(snapshot)
		t.state = preTrainState
		return TrainResult{}, ErrDegenerateLoss
	}

	t.state = Serving

	return TrainResult{EpochsRun: t.cfg.Epochs, FinalLoss: lastLoss, FinalAccuracy: lastAcc}, nil
}

// evalBatch computes the mean loss and accuracy for flat over batch. When
// sampleFresh is true it draws fresh negative-sample indices into
// negatives (one slot per example) for reuse across the gradient's
// finite-difference evaluations of the same step.
func (t *Trainer) evalBatch(flat []float64, template shgat.Params, batch []Example, negatives [][]int, sampleFresh bool) (loss, acc float64, ok bool) {
	trial := unflattenParams(flat, template)

	var lossSum, accSum float64
	var n int
	for i, ex := range batch {
		scores, candIdx, scored := scoreAll(t.scratch, trial, ex)
		if !scored {
			continue
		}

		if sampleFresh {
			negatives[i] = sampleNegatives(t.cfg.NegativeSampleSize, len(scores), candIdx, t.rng)
		}

		ce, err := crossEntropyLoss(scores, candIdx, ex.Success)
		if err != nil {
			continue
		}
		rank := pairwiseRankingLoss(scores, candIdx, negatives[i], t.cfg.Margin, ex.Success)

		lossSum += ce + rank
		// A success example is predicted correctly when its candidate ranks
		// highest; a failure example is predicted correctly when the model
		// has already learned to rank it below something else.
		top := predictedPositiveCorrect(scores, candIdx)
		if top == ex.Success {
			accSum++
		}
		n++
	}

	if n == 0 {
		return 0, 0, false
	}

	total := lossSum/float64(n) + l2Penalty(flat, t.cfg.L2Lambda)

	return total, accSum / float64(n), true
}

// estimateGradient computes the gradient of the batch loss with respect
// to flat via central finite differences, reusing the negatives already
// sampled for this step so the loss surface being differentiated is
// fixed across all 2*dim perturbed evaluations.
func (t *Trainer) estimateGradient(flat []float64, template shgat.Params, batch []Example, negatives [][]int) []float64 {
	eps := t.cfg.FiniteDiffEpsilon
	grad := make([]float64, len(flat))

	perturbed := make([]float64, len(flat))
	copy(perturbed, flat)

	for i := range flat {
		orig := perturbed[i]

		perturbed[i] = orig + eps
		lossPlus, _, okPlus := t.evalBatch(perturbed, template, batch, negatives, false)

		perturbed[i] = orig - eps
		lossMinus, _, okMinus := t.evalBatch(perturbed, template, batch, negatives, false)

		perturbed[i] = orig

		if !okPlus || !okMinus {
			grad[i] = 0
			continue
		}
		grad[i] = (lossPlus - lossMinus) / (2 * eps)
	}

	return grad
}
