package matrix

import "math"

// Transpose returns a new Dense matrix equal to m^T. Complexity: O(r*c).
func Transpose(m *Dense) *Dense {
	t, _ := NewDense(m.c, m.r) // m.c,m.r are already validated positive by m's own construction
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Scale returns a new Dense matrix equal to s*m. Complexity: O(r*c).
func Scale(m *Dense, s float64) *Dense {
	out, _ := NewDense(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = v * s
	}

	return out
}

// Mul multiplies a*b and returns the result. Returns ErrDimensionMismatch
// if a.Cols() != b.Rows(). Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}

	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// DiagonalInverseSqrt builds the diagonal matrix D^(-1/2) from a degree
// vector deg, treating any degree <= 0 as isolated (its inverse-sqrt is
// defined as 0, keeping isolated nodes inert in the normalized Laplacian
// rather than producing Inf/NaN).
func DiagonalInverseSqrt(deg []float64) *Dense {
	n := len(deg)
	d, _ := NewDense(n, n)
	for i, v := range deg {
		if v > 0 {
			d.data[i*n+i] = 1.0 / math.Sqrt(v)
		}
	}

	return d
}

// NormalizedLaplacian computes L_sym = I - D^(-1/2) A D^(-1/2) for a
// symmetric adjacency matrix a with row-degree vector deg (spec §4.3's
// "symmetric normalized Laplacian of the bipartite tool<->capability
// graph"). Returns ErrDimensionMismatch if a is not square or deg's
// length disagrees with a's dimension.
func NormalizedLaplacian(a *Dense, deg []float64) (*Dense, error) {
	if a.r != a.c || len(deg) != a.r {
		return nil, ErrDimensionMismatch
	}

	dInvSqrt := DiagonalInverseSqrt(deg)

	tmp, err := Mul(dInvSqrt, a)
	if err != nil {
		return nil, err
	}
	norm, err := Mul(tmp, dInvSqrt)
	if err != nil {
		return nil, err
	}

	id, err := Identity(a.r)
	if err != nil {
		return nil, err
	}

	out, _ := NewDense(a.r, a.c)
	for i := range out.data {
		out.data[i] = id.data[i] - norm.data[i]
	}

	return out, nil
}
