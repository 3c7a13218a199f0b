package vecops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/vecops"
)

func TestDot(t *testing.T) {
	got, err := vecops.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.InDelta(t, 32.0, got, 1e-12)

	_, err = vecops.Dot([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, vecops.ErrDimensionMismatch)
}

func TestCosine_Identical(t *testing.T) {
	v := []float64{1, 2, 3}
	got, err := vecops.Cosine(v, v)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-6)
}

func TestCosine_Orthogonal(t *testing.T) {
	got, err := vecops.Cosine([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.0, got, 1e-6)
}

func TestL2Normalize_UnitNorm(t *testing.T) {
	out := vecops.L2Normalize([]float64{3, 4})
	require.InDelta(t, 1.0, vecops.Norm(out), 1e-9)
}

func TestL2Normalize_NearZeroUnchanged(t *testing.T) {
	tiny := []float64{1e-13, 0}
	out := vecops.L2Normalize(tiny)
	require.Equal(t, tiny, out)
}

func TestSoftmax_SumsToOne(t *testing.T) {
	out, err := vecops.Softmax([]float64{1, 2, 3, 100})
	require.NoError(t, err)
	sum := vecops.StableSum(out)
	require.InDelta(t, 1.0, sum, 1e-6)
	for _, p := range out {
		require.False(t, math.IsNaN(p))
		require.False(t, math.IsInf(p, 0))
	}
}

func TestSoftmax_EmptyInput(t *testing.T) {
	_, err := vecops.Softmax(nil)
	require.ErrorIs(t, err, vecops.ErrEmptyVector)
}

func TestLogSumExp_MatchesNaive(t *testing.T) {
	x := []float64{0.5, -1.0, 2.0}
	got, err := vecops.LogSumExp(x)
	require.NoError(t, err)

	var naive float64
	for _, v := range x {
		naive += math.Exp(v)
	}
	require.InDelta(t, math.Log(naive), got, 1e-9)
}

func TestMatVecDense(t *testing.T) {
	m := [][]float64{{1, 0}, {0, 1}, {2, 2}}
	out, err := vecops.MatVecDense(m, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 14}, out)
}

func TestMatVecSparse(t *testing.T) {
	entries := []vecops.SparseEntry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 1},
		{Row: 2, Col: 0, Value: 2},
		{Row: 2, Col: 1, Value: 2},
	}
	out, err := vecops.MatVecSparse(3, 2, entries, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 14}, out)
}

func TestMean_Empty(t *testing.T) {
	require.Equal(t, 0.0, vecops.Mean(nil))
}
