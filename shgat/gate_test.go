package shgat

import "testing"

func TestThreeHeadGate_UniformAtColdStart(t *testing.T) {
	p := NewParams()
	w0, w1, w2, err := threeHeadGate(p, buildGateFeatures(1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range []float64{w0, w1, w2} {
		if a < 0.332 || a > 0.335 {
			t.Fatalf("expected uniform ~1/3 gate weights for zero params, got %v %v %v", w0, w1, w2)
		}
	}
}

func TestThreeHeadGate_SumsToOne(t *testing.T) {
	p := NewParams()
	p.WGate[0] = []float64{1, 0, 0, 0, 0, 0}
	p.WGate[1] = []float64{0, 1, 0, 0, 0, 0}
	p.WGate[2] = []float64{0, 0, 1, 0, 0, 0}

	w0, w1, w2, err := threeHeadGate(p, buildGateFeatures(1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum := w0 + w1 + w2; sum < 0.999 || sum > 1.001 {
		t.Fatalf("expected softmax to sum to 1, got %f", sum)
	}
}

func TestThreeHeadGate_ClipsExtremeLogits(t *testing.T) {
	p := NewParams()
	p.WGate[0] = []float64{1000, 0, 0, 0, 0, 0}
	_, _, _, err := threeHeadGate(p, buildGateFeatures(1, 0, 0, 0, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error (clip should prevent overflow): %v", err)
	}
}

func TestTwoHeadGate_SumsToOne(t *testing.T) {
	p := NewParams()
	wSem, wStruct, err := twoHeadGate(p, buildGateFeatures(1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum := wSem + wStruct; sum < 0.999 || sum > 1.001 {
		t.Fatalf("expected two-head gate to sum to 1, got %f", sum)
	}
}
