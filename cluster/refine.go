package cluster

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/orthopair"
)

const opRefine = "Refine"

// Refine clusters without representatives. Each round:
//
//  1. every item's neighbourhood (weighted distance <= 1−Threshold) becomes
//     a positive region, reduced to a greedy cover when opts.Compact is set;
//  2. two regions are merged while one contains the other or
//     |P_i ∩ P_j| / |P_i △ P_j| >= Threshold;
//  3. items still positive in several regions move to the boundary of each;
//  4. attribute weights are re-estimated from the result.
//
// Only opts.Iterations, Threshold, Compact and Logger are used; K, region
// weights and restarts do not apply. Empty clusters are dropped.
//
// Errors: ErrInvalidIterations, ErrInvalidThreshold, ErrEmptyData,
// ErrNaNInf, ctx.Err().
func Refine(ctx context.Context, data mat.Matrix, opts Options) (Refinement, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.validate(); err != nil {
		return Refinement{}, fmt.Errorf("%s: %w", opRefine, err)
	}
	s, err := newSpace(data)
	if err != nil {
		return Refinement{}, fmt.Errorf("%s: %w", opRefine, err)
	}
	log := opts.logger()

	w := s.uniform()
	var part *orthopair.Orthopartition
	for it := 0; it < opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return Refinement{}, fmt.Errorf("%s: %w", opRefine, err)
		}
		sets := s.neighbourhoods(w, opts.Threshold)
		if opts.Compact {
			sets = coverGreedy(sets, len(s.rows))
		}
		sets = mergeOverlapping(sets, opts.Threshold)

		part, err = orthopair.FromFamily(shareBoundaries(sets, len(s.rows)))
		if err != nil {
			return Refinement{}, fmt.Errorf("%s: iteration %d: %w", opRefine, it, err)
		}
		w = s.reweight(part, opts.Threshold, opts.Compact, w)
		log.Debug("cluster: refine round",
			"iteration", it,
			"clusters", part.Len(),
			"boundary", part.TotalBoundary(),
		)
	}

	var kept []*orthopair.Orthopair
	for _, o := range part.Family() {
		if !o.IsEmpty() {
			kept = append(kept, o)
		}
	}
	out, err := orthopair.FromFamily(kept)
	if err != nil {
		return Refinement{}, fmt.Errorf("%s: %w", opRefine, err)
	}
	return Refinement{Partition: out, Weights: w}, nil
}

// mergeOverlapping repeatedly replaces the first qualifying pair of sets by
// their union until no pair qualifies.
func mergeOverlapping(sets []orthopair.Set, threshold float64) []orthopair.Set {
	sets = append([]orthopair.Set(nil), sets...)
	for {
		i, j := qualifyingPair(sets, threshold)
		if i < 0 {
			return sets
		}
		merged := sets[i].Clone()
		for x := range sets[j] {
			merged.Add(x)
		}
		sets[i] = merged
		sets = append(sets[:j], sets[j+1:]...)
	}
}

func qualifyingPair(sets []orthopair.Set, threshold float64) (int, int) {
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			if mergeable(sets[i], sets[j], threshold) {
				return i, j
			}
		}
	}
	return -1, -1
}

// mergeable reports whether one set contains the other or their overlap
// ratio |a ∩ b| / |a △ b| reaches threshold.
func mergeable(a, b orthopair.Set, threshold float64) bool {
	meet := 0
	for x := range a {
		if b.Has(x) {
			meet++
		}
	}
	if meet == a.Len() || meet == b.Len() {
		return true
	}
	diff := a.Len() + b.Len() - 2*meet
	return float64(meet)/float64(diff) >= threshold
}

// shareBoundaries builds one orthopair per set; items claimed by more than
// one set go to the boundary of each instead of their positive region.
func shareBoundaries(sets []orthopair.Set, n int) []*orthopair.Orthopair {
	claims := make([]int, n)
	for _, p := range sets {
		for i := range p {
			claims[i]++
		}
	}
	family := make([]*orthopair.Orthopair, len(sets))
	for x, p := range sets {
		pos, bnd, neg := orthopair.NewSet(), orthopair.NewSet(), orthopair.NewSet()
		for i := 0; i < n; i++ {
			switch {
			case !p.Has(i):
				neg.Add(i)
			case claims[i] > 1:
				bnd.Add(i)
			default:
				pos.Add(i)
			}
		}
		// regions are disjoint by construction
		family[x], _ = orthopair.New(pos, bnd, neg)
	}
	return family
}
