package cluster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roughstat/orthopair"
)

// centerFunc writes the new representative of one cluster into dst given
// the rows of its lower region and boundary; at least one is non-empty.
type centerFunc func(dst []float64, rows [][]float64, lower, boundary []int, wl, wu float64)

// update moves every centroid with a non-empty upper region; the others
// stay where they are.
func (s *space) update(centroids *mat.Dense, labels []orthopair.LabelSet, wl, wu float64, center centerFunc) {
	k, _ := centroids.Dims()
	for j := 0; j < k; j++ {
		lower, boundary := regions(labels, j)
		if len(lower)+len(boundary) == 0 {
			continue
		}
		center(centroids.RawRowView(j), s.rows, lower, boundary, wl, wu)
	}
}

// meanCenter is wl·mean(lower) + wu·mean(lower ∪ boundary), or the plain
// mean of the upper region when either part is empty.
func meanCenter(dst []float64, rows [][]float64, lower, boundary []int, wl, wu float64) {
	upper := append(append([]int(nil), lower...), boundary...)
	if len(lower) == 0 || len(boundary) == 0 {
		columnMeans(dst, rows, upper)
		return
	}
	lo := make([]float64, len(dst))
	columnMeans(lo, rows, lower)
	columnMeans(dst, rows, upper)
	floats.Scale(wu, dst)
	floats.AddScaled(dst, wl, lo)
}

func columnMeans(dst []float64, rows [][]float64, items []int) {
	col := make([]float64, len(items))
	for a := range dst {
		for x, i := range items {
			col[x] = rows[i][a]
		}
		dst[a] = stat.Mean(col, nil)
	}
}

// medianCenter takes the weighted median of every attribute, lower items
// weighing wl and boundary items wu. A missing region hands its whole
// weight to the other one.
func medianCenter(dst []float64, rows [][]float64, lower, boundary []int, wl, wu float64) {
	switch {
	case len(boundary) == 0:
		wl, wu = 1, 0
	case len(lower) == 0:
		wl, wu = 0, 1
	}
	n := len(lower) + len(boundary)
	values := make([]float64, n)
	weights := make([]float64, n)
	for a := range dst {
		for x, i := range lower {
			values[x], weights[x] = rows[i][a], wl
		}
		for x, i := range boundary {
			values[len(lower)+x], weights[len(lower)+x] = rows[i][a], wu
		}
		dst[a] = weightedMedian(values, weights)
	}
}

// weightedMedian returns the value at which the cumulative weight of the
// sorted values first reaches half the total. Landing exactly on half
// averages with the next value. values and weights are not modified.
func weightedMedian(values, weights []float64) float64 {
	sorted := append([]float64(nil), values...)
	idx := make([]int, len(sorted))
	floats.Argsort(sorted, idx)

	half := floats.Sum(weights) / 2
	var acc float64
	for x, i := range idx {
		acc += weights[i]
		if acc < half {
			continue
		}
		if acc == half && x+1 < len(sorted) {
			return (sorted[x] + sorted[x+1]) / 2
		}
		return sorted[x]
	}
	return sorted[len(sorted)-1]
}
