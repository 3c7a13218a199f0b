// Package ops holds the spectral-clustering eigensolver: Jacobi
// rotation decomposition of the symmetric normalized Laplacian produced
// by matrix.NormalizedLaplacian. It is deliberately narrow — one
// algorithm, sized for the small (tool+capability count) dense matrices
// the feature store rebuilds on each incidence change, not a general
// eigenvalue library.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shgat/matrix"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric
// within tol. The normalized Laplacian is symmetric by construction, so
// this firing indicates the caller passed something else.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned if the largest off-diagonal magnitude has
// not dropped below tol after maxIter rotations.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// Eigen runs classical Jacobi rotation on the symmetric matrix m and
// returns its eigenvalues alongside the matching eigenvectors as the
// columns of Q. Each iteration zeroes the largest off-diagonal entry with
// one rotation. tol bounds both the symmetry check and the convergence
// test; maxIter bounds the number of rotations.
//
// Spectral clustering only needs the k eigenvectors with the smallest
// eigenvalues (spec §4.3), so callers are expected to sort the returned
// eigenvalue slice themselves and select columns of Q accordingly —
// Eigen itself makes no ordering guarantee beyond "index i of eigs
// matches column i of Q".
//
// Returns ErrDimensionMismatch for a non-square input, ErrNotSymmetric
// if m[i][j] and m[j][i] disagree by more than tol, or ErrEigenFailed on
// non-convergence. Complexity: O(n^2) per rotation (the pivot search),
// O(maxIter*n^2) worst case; memory O(n^2).
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, nil, fmt.Errorf("ops.Eigen: non-square %dx%d: %w", n, cols, matrix.ErrDimensionMismatch)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	A := m.Clone()
	qd, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("ops.Eigen: %w", err)
	}
	var Q matrix.Matrix = qd
	for i := 0; i < n; i++ {
		_ = Q.Set(i, i, 1.0)
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		p, q, maxOff := 0, 0, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ := A.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff = math.Abs(off)
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, _ := A.At(p, p)
		aqq, _ := A.At(q, q)
		apq, _ := A.At(p, q)

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, _ := A.At(i, p)
			aiq, _ := A.At(i, q)
			rotP := c*aip - s*aiq
			rotQ := s*aip + c*aiq
			_ = A.Set(i, p, rotP)
			_ = A.Set(p, i, rotP)
			_ = A.Set(i, q, rotQ)
			_ = A.Set(q, i, rotQ)
		}

		_ = A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		_ = A.Set(p, q, 0.0)
		_ = A.Set(q, p, 0.0)

		for i := 0; i < n; i++ {
			qip, _ := Q.At(i, p)
			qiq, _ := Q.At(i, q)
			_ = Q.Set(i, p, c*qip-s*qiq)
			_ = Q.Set(i, q, s*qip+c*qiq)
		}
	}

	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = A.At(i, i)
	}

	return eigs, Q, nil
}
