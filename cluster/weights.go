package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/roughstat/orthopair"
)

// reweight scores every attribute by the mutual information between part
// and the orthocovering that attribute induces on its own, then normalizes
// the scores to sum to one. Attributes with zero range, undefined or
// negative information score 0. If every score is 0, prev is returned.
func (s *space) reweight(part *orthopair.Orthopartition, threshold float64, compact bool, prev []float64) []float64 {
	w := make([]float64, s.dim())
	for a := range w {
		if s.span[a] == 0 {
			continue
		}
		cov, err := s.attributeCovering(a, threshold, compact)
		if err != nil {
			continue
		}
		mi, err := part.MutualInformation(cov)
		if err != nil || math.IsNaN(mi) || mi <= 0 {
			continue
		}
		w[a] = mi
	}
	sum := floats.Sum(w)
	if sum <= 0 {
		return prev
	}
	floats.Scale(1/sum, w)
	return w
}

// attributeCovering puts item k in the orthopair of item i when their
// values of attribute a are within (1−threshold) of its range.
func (s *space) attributeCovering(a int, threshold float64, compact bool) (*orthopair.Orthopartition, error) {
	sets := make([]orthopair.Set, len(s.rows))
	for i, x := range s.rows {
		sets[i] = orthopair.NewSet(i)
		for k, y := range s.rows {
			if 1-math.Abs(x[a]-y[a])/s.span[a] >= threshold {
				sets[i].Add(k)
			}
		}
	}
	return s.familyOf(sets, compact)
}

// neighbourhoods puts item k in the orthopair of item i when their weighted
// distance is at most 1−threshold.
func (s *space) neighbourhoods(w []float64, threshold float64) []orthopair.Set {
	sets := make([]orthopair.Set, len(s.rows))
	for i, x := range s.rows {
		sets[i] = orthopair.NewSet(i)
		for k, y := range s.rows {
			if distance(x, y, w, s.span) <= 1-threshold {
				sets[i].Add(k)
			}
		}
	}
	return sets
}

// familyOf turns positive regions into an orthocovering with empty
// boundaries, optionally reduced to a greedy cover first.
func (s *space) familyOf(sets []orthopair.Set, compact bool) (*orthopair.Orthopartition, error) {
	if compact {
		sets = coverGreedy(sets, len(s.rows))
	}
	family, err := positives(sets, len(s.rows))
	if err != nil {
		return nil, err
	}
	return orthopair.FromFamily(family)
}

// positives builds one orthopair per set over the universe 0..n-1.
func positives(sets []orthopair.Set, n int) ([]*orthopair.Orthopair, error) {
	family := make([]*orthopair.Orthopair, len(sets))
	for x, p := range sets {
		neg := orthopair.NewSet()
		for i := 0; i < n; i++ {
			if !p.Has(i) {
				neg.Add(i)
			}
		}
		o, err := orthopair.New(p, nil, neg)
		if err != nil {
			return nil, err
		}
		family[x] = o
	}
	return family, nil
}

// coverGreedy picks sets until 0..n-1 is covered, each time the one adding
// the most uncovered items (first on ties).
func coverGreedy(sets []orthopair.Set, n int) []orthopair.Set {
	covered := orthopair.NewSet()
	var out []orthopair.Set
	for covered.Len() < n {
		best, gain := -1, 0
		for x, p := range sets {
			g := 0
			for i := range p {
				if !covered.Has(i) {
					g++
				}
			}
			if g > gain {
				best, gain = x, g
			}
		}
		if best < 0 {
			break
		}
		for i := range sets[best] {
			covered.Add(i)
		}
		out = append(out, sets[best])
	}
	sort.SliceStable(out, func(x, y int) bool {
		return out[x].Sorted()[0] < out[y].Sorted()[0]
	})
	return out
}
