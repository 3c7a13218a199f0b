package trainer

import "github.com/katalvlaran/shgat/shgat"

// flattenParams packs a shgat.Params into a single flat vector with a
// fixed ordering, so Adam and the finite-difference gradient estimator
// can operate on plain []float64 instead of the structured type. The
// ordering is: WGate[0..3] (GateFeatureDim each), H2Weights, H2Bias,
// H3Weights, H3Bias, Lambda[0..3].
func flattenParams(p shgat.Params) []float64 {
	flat := make([]float64, 0, flatDim(p))
	for _, row := range p.WGate {
		flat = append(flat, row...)
	}
	flat = append(flat, p.H2Weights[:]...)
	flat = append(flat, p.H2Bias)
	flat = append(flat, p.H3Weights[:]...)
	flat = append(flat, p.H3Bias)
	flat = append(flat, p.Lambda[:]...)

	return flat
}

// unflattenParams is the inverse of flattenParams, writing flat back into
// a copy of template (which supplies WGate row lengths and head count).
func unflattenParams(flat []float64, template shgat.Params) shgat.Params {
	out := template.Clone()
	i := 0
	for h := range out.WGate {
		n := len(out.WGate[h])
		copy(out.WGate[h], flat[i:i+n])
		i += n
	}
	for j := range out.H2Weights {
		out.H2Weights[j] = flat[i]
		i++
	}
	out.H2Bias = flat[i]
	i++
	for j := range out.H3Weights {
		out.H3Weights[j] = flat[i]
		i++
	}
	out.H3Bias = flat[i]
	i++
	for j := range out.Lambda {
		out.Lambda[j] = flat[i]
		i++
	}

	return out
}

func flatDim(p shgat.Params) int {
	n := 0
	for _, row := range p.WGate {
		n += len(row)
	}
	n += len(p.H2Weights) + 1
	n += len(p.H3Weights) + 1
	n += len(p.Lambda)

	return n
}
