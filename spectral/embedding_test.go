package spectral

import (
	"testing"

	"github.com/katalvlaran/shgat/matrix"
)

func TestSpectralEmbed_DropsTrivialEigenvalue(t *testing.T) {
	// Path graph on 3 nodes: 0-1-2, degrees [1,2,1].
	a, _ := matrix.NewDense(3, 3)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 1)
	_ = a.Set(1, 2, 1)
	_ = a.Set(2, 1, 1)

	lap, err := matrix.NormalizedLaplacian(a, []float64{1, 2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embeddings, eigenvalues, err := spectralEmbed(lap, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(embeddings) != 3 {
		t.Fatalf("expected 3 node embeddings, got %d", len(embeddings))
	}
	// n=3, trivial eigenvalue dropped leaves at most n-1=2 dimensions.
	if len(embeddings[0]) != 2 {
		t.Fatalf("expected embedding dim 2 (n-1 cap), got %d", len(embeddings[0]))
	}
	if len(eigenvalues) != 2 {
		t.Fatalf("expected 2 retained eigenvalues, got %d", len(eigenvalues))
	}
}
