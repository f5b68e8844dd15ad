package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/orthopair"
)

// space is the validated data set: one slice per row plus the range of
// every attribute.
type space struct {
	rows [][]float64
	span []float64
}

func newSpace(data mat.Matrix) (*space, error) {
	if data == nil {
		return nil, ErrEmptyData
	}
	n, d := data.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyData
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		mat.Row(rows[i], i, data)
		if floats.HasNaN(rows[i]) {
			return nil, ErrNaNInf
		}
		for _, v := range rows[i] {
			if math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}
	col := make([]float64, n)
	span := make([]float64, d)
	for a := range span {
		for i, row := range rows {
			col[i] = row[a]
		}
		span[a] = floats.Max(col) - floats.Min(col)
	}
	return &space{rows: rows, span: span}, nil
}

func (s *space) dim() int { return len(s.span) }

// uniform returns equal attribute weights summing to one.
func (s *space) uniform() []float64 {
	w := make([]float64, s.dim())
	for a := range w {
		w[a] = 1 / float64(len(w))
	}
	return w
}

// distance is the weighted range-normalized Manhattan distance.
// Attributes with zero range are skipped.
func distance(x, y, w, span []float64) float64 {
	var d float64
	for a := range x {
		if span[a] == 0 {
			continue
		}
		d += w[a] * math.Abs(x[a]-y[a]) / span[a]
	}
	return d
}

// seed picks k distinct rows: one uniformly at random, then repeatedly the
// unused row with the largest mean distance to the rows already chosen.
func (s *space) seed(k int, w []float64, r *rand.Rand) *mat.Dense {
	n := len(s.rows)
	used := make([]bool, n)
	chosen := []int{r.Intn(n)}
	used[chosen[0]] = true
	for len(chosen) < k {
		best, bestDist := -1, -1.0
		for i, row := range s.rows {
			if used[i] {
				continue
			}
			var sum float64
			for _, c := range chosen {
				sum += distance(row, s.rows[c], w, s.span)
			}
			if m := sum / float64(len(chosen)); m > bestDist {
				best, bestDist = i, m
			}
		}
		used[best] = true
		chosen = append(chosen, best)
	}
	centroids := mat.NewDense(k, s.dim(), nil)
	for j, i := range chosen {
		centroids.SetRow(j, s.rows[i])
	}
	return centroids
}

// members returns the clusters an item at distances d belongs to:
// j qualifies when d[j] is minimal or min(d)/d[j] >= threshold.
func members(d []float64, threshold float64) orthopair.LabelSet {
	dmin := floats.Min(d)
	var out orthopair.LabelSet
	for j, dj := range d {
		if dj == dmin || dmin/dj >= threshold {
			out = append(out, j)
		}
	}
	return out
}

// distancesTo fills dst with the distance of x to every centroid row.
func distancesTo(dst, x []float64, centroids *mat.Dense, w, span []float64) {
	for j := range dst {
		dst[j] = distance(x, centroids.RawRowView(j), w, span)
	}
}

// assign labels every row against centroids.
func (s *space) assign(centroids *mat.Dense, w []float64, threshold float64) []orthopair.LabelSet {
	k, _ := centroids.Dims()
	d := make([]float64, k)
	labels := make([]orthopair.LabelSet, len(s.rows))
	for i, row := range s.rows {
		distancesTo(d, row, centroids, w, s.span)
		labels[i] = members(d, threshold)
	}
	return labels
}

// regions splits the items of cluster j into its lower region and its boundary.
func regions(labels []orthopair.LabelSet, j int) (lower, boundary []int) {
	for i, l := range labels {
		for _, c := range l {
			if c != j {
				continue
			}
			if len(l) == 1 {
				lower = append(lower, i)
			} else {
				boundary = append(boundary, i)
			}
		}
	}
	return lower, boundary
}

// partitionOf builds exactly k orthopairs from per-item memberships.
// Clusters nobody joined are kept as empty orthopairs.
func partitionOf(labels []orthopair.LabelSet, k int) (*orthopair.Orthopartition, error) {
	family := make([]*orthopair.Orthopair, k)
	for j := range family {
		lower, boundary := regions(labels, j)
		p, bnd, n := orthopair.NewSet(lower...), orthopair.NewSet(boundary...), orthopair.NewSet()
		for i := range labels {
			if !p.Has(i) && !bnd.Has(i) {
				n.Add(i)
			}
		}
		o, err := orthopair.New(p, bnd, n)
		if err != nil {
			return nil, err
		}
		family[j] = o
	}
	return orthopair.NewOrthopartition(family, false)
}
