package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shgat/matrix"
	"github.com/katalvlaran/shgat/matrix/ops"
)

func TestEigen_NonSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_, _, err := ops.Eigen(m, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigen_NotSymmetric(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 5))

	_, _, err := ops.Eigen(m, 1e-9, 100)
	require.ErrorIs(t, err, ops.ErrNotSymmetric)
}

func TestEigen_Diagonal(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 0, 3))
	require.NoError(t, m.Set(1, 1, 7))

	eigs, _, err := ops.Eigen(m, 1e-9, 100)
	require.NoError(t, err)
	require.Len(t, eigs, 2)

	sum := eigs[0] + eigs[1]
	require.InDelta(t, 10.0, sum, 1e-6)
}

func TestEigen_SymmetricTwoByTwo(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	eigs, _, err := ops.Eigen(m, 1e-9, 100)
	require.NoError(t, err)

	sorted := append([]float64{}, eigs...)
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	require.InDelta(t, 1.0, sorted[0], 1e-6)
	require.InDelta(t, 3.0, sorted[1], 1e-6)
}

func TestEigen_LowMaxIterFails(t *testing.T) {
	m, _ := matrix.NewDense(3, 3)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 2, 1))
	require.NoError(t, m.Set(2, 1, 1))

	_, _, err := ops.Eigen(m, 1e-12, 0)
	require.ErrorIs(t, err, ops.ErrEigenFailed)
	_ = math.Pi
}
