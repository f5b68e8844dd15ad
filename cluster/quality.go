package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roughstat/orthopair"
)

// scatter is the rough within-cluster spread of cluster j: the weighted
// sum wl·mean d(P) + wu·mean d(Bnd), or the mean distance over the upper
// region when either part is empty.
func (s *space) scatter(j int, centroid []float64, labels []orthopair.LabelSet, w []float64, wl, wu float64) float64 {
	lower, boundary := regions(labels, j)
	dist := func(items []int) []float64 {
		out := make([]float64, len(items))
		for x, i := range items {
			out[x] = distance(s.rows[i], centroid, w, s.span)
		}
		return out
	}
	if len(lower) == 0 || len(boundary) == 0 {
		upper := append(append([]int(nil), lower...), boundary...)
		if len(upper) == 0 {
			return 0
		}
		return stat.Mean(dist(upper), nil)
	}
	return wl*stat.Mean(dist(lower), nil) + wu*stat.Mean(dist(boundary), nil)
}

// daviesBouldin returns the rough Davies-Bouldin index
//
//	DB = 1/K · Σ_j max_{k≠j} (S_j + S_k) / d(c_j, c_k)
//
// Coincident centroids score +Inf unless both scatters are zero.
func (s *space) daviesBouldin(centroids *mat.Dense, labels []orthopair.LabelSet, w []float64, wl, wu float64) float64 {
	k, _ := centroids.Dims()
	if k < 2 {
		return 0
	}
	sc := make([]float64, k)
	for j := range sc {
		sc[j] = s.scatter(j, centroids.RawRowView(j), labels, w, wl, wu)
	}
	var db float64
	for j := 0; j < k; j++ {
		worst := 0.0
		for l := 0; l < k; l++ {
			if l == j {
				continue
			}
			num := sc[j] + sc[l]
			den := distance(centroids.RawRowView(j), centroids.RawRowView(l), w, s.span)
			var r float64
			switch {
			case den > 0:
				r = num / den
			case num > 0:
				r = math.Inf(1)
			}
			worst = math.Max(worst, r)
		}
		db += worst
	}
	return db / float64(k)
}
