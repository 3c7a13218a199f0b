package spectral

import (
	"math"
	"math/rand"
	"sort"
)

// kMeans clusters embeddings (n points of equal dimension) into at most
// k labels using Lloyd's algorithm, seeded deterministically so repeated
// calls on identical input produce identical labels (spec §4.3 "k-means
// on spectral embeddings with a fixed seed"). Empty clusters are merged
// into the nearest non-empty centroid, ties broken by lowest label id
// (spec §4.3).
func kMeans(embeddings [][]float64, k int, seed int64, maxIter int) []int {
	n := len(embeddings)
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		k = 1
	}
	dim := len(embeddings[0])

	rng := rand.New(rand.NewSource(seed))
	centroids := initCentroids(embeddings, k, rng)

	labels := make([]int, n)
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range embeddings {
			best, bestDist := 0, math.Inf(1)
			for c, centroid := range centroids {
				d := sqDist(p, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		newCentroids := recomputeCentroids(embeddings, labels, k, dim)
		mergeEmptyClusters(newCentroids, centroids)
		centroids = newCentroids

		if !changed && iter > 0 {
			break
		}
	}

	return labels
}

func initCentroids(embeddings [][]float64, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(embeddings))
	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		src := embeddings[perm[i%len(perm)]]
		cp := make([]float64, len(src))
		copy(cp, src)
		out[i] = cp
	}

	return out
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// recomputeCentroids averages each cluster's assigned points. A cluster
// with no assigned points gets a nil centroid, resolved by
// mergeEmptyClusters.
func recomputeCentroids(embeddings [][]float64, labels []int, k, dim int) [][]float64 {
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := 0; c < k; c++ {
		sums[c] = make([]float64, dim)
	}

	for i, p := range embeddings {
		c := labels[i]
		counts[c]++
		for d := 0; d < dim; d++ {
			sums[c][d] += p[d]
		}
	}

	out := make([][]float64, k)
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			out[c] = nil
			continue
		}
		row := make([]float64, dim)
		for d := 0; d < dim; d++ {
			row[d] = sums[c][d] / float64(counts[c])
		}
		out[c] = row
	}

	return out
}

// mergeEmptyClusters replaces every nil centroid in next with the
// nearest non-nil centroid among next, falling back to the
// corresponding entry of prev if no non-nil centroid exists yet (first
// iteration), breaking ties by the lowest label id.
func mergeEmptyClusters(next, prev [][]float64) {
	nonEmpty := make([]int, 0, len(next))
	for c, centroid := range next {
		if centroid != nil {
			nonEmpty = append(nonEmpty, c)
		}
	}
	sort.Ints(nonEmpty)

	for c, centroid := range next {
		if centroid != nil {
			continue
		}
		if len(nonEmpty) == 0 {
			next[c] = prev[c]
			continue
		}

		best, bestDist := nonEmpty[0], math.Inf(1)
		for _, other := range nonEmpty {
			d := sqDist(prev[c], next[other])
			if d < bestDist {
				bestDist = d
				best = other
			}
		}
		cp := make([]float64, len(next[best]))
		copy(cp, next[best])
		next[c] = cp
	}
}
