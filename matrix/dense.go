package matrix

import (
	"fmt"
	"math"
)

// Matrix is the minimal two-dimensional mutable array abstraction this
// package's algorithms operate against. Dense is its only implementation;
// the interface exists so ops.Eigen can be unit-tested against fakes
// without depending on Dense's storage layout.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
	// At retrieves the element at (i,j). Returns ErrOutOfRange on
	// invalid indices. Complexity: O(1).
	At(i, j int) (float64, error)
	// Set assigns v at (i,j). Returns ErrOutOfRange on invalid indices.
	// Complexity: O(1).
	Set(i, j int, v float64) error
	// Clone returns a deep, independent copy. Complexity: O(rows*cols).
	Clone() Matrix
}

// denseErrorf wraps an underlying error with Dense method context, e.g.
// "Dense.Set(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values, backed by a single flat
// slice for cache-friendly sequential access during Jacobi sweeps.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns an n×n Dense identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("index", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row,col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set assigns v at (row,col). Rejects NaN/Inf with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of m. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i as a plain slice, used by the k-means
// step to build each node's spectral embedding.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}
