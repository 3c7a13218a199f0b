package trainer

import "math"

// adamState holds the per-parameter first and second moment estimates for
// the Adam optimizer (Kingma & Ba), applied over the flat Params vector.
type adamState struct {
	m, v []float64
	t    int

	lr, beta1, beta2, eps float64
}

func newAdamState(dim int, cfg Config) *adamState {
	return &adamState{
		m:     make([]float64, dim),
		v:     make([]float64, dim),
		lr:    cfg.LearningRate,
		beta1: cfg.Beta1,
		beta2: cfg.Beta2,
		eps:   cfg.Epsilon,
	}
}

// step applies one Adam update to params given grad, both length dim, and
// returns the updated vector (a new slice; params is untouched). Only the
// moment estimates m and v are updated in place.
func (a *adamState) step(params, grad []float64) []float64 {
	a.t++
	biasCorr1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorr2 := 1 - math.Pow(a.beta2, float64(a.t))

	out := make([]float64, len(params))
	for i := range params {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*grad[i]
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*grad[i]*grad[i]

		mHat := a.m[i] / biasCorr1
		vHat := a.v[i] / biasCorr2

		out[i] = params[i] - a.lr*mHat/(math.Sqrt(vHat)+a.eps)
	}

	return out
}
