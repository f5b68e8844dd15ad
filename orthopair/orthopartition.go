package orthopair

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opFromLabelSets     = "FromLabelSets"
	opNewOrthopartition = "NewOrthopartition"
	opMeet              = "Meet"
	opMutualInformation = "MutualInformation"
	opPurity            = "Purity"
)

// Orthopartition is an ordered family of orthopairs over one universe.
// When overlap is false no item may be certain (P) in one orthopair while
// being possible (P or Bnd) in another; shared boundaries are always allowed.
// An orthopartition admitting overlaps is an orthocovering.
type Orthopartition struct {
	family  []*Orthopair
	overlap bool
}

// FromLabelSets builds the orthopartition induced by per-item label sets:
// one orthopair per class k in 0..MaxClass(labels); item j is in P_k when
// labels[j] == {k}, in Bnd_k when labels[j] contains k among other classes,
// and in N_k otherwise. The result does not admit overlaps.
//
// Errors: ErrEmptyFamily for no items; label-set errors from validation.
// Complexity: O(K·n) for K classes and n items.
func FromLabelSets(labels []LabelSet) (*Orthopartition, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromLabelSets, ErrEmptyFamily)
	}
	if err := checkItems(labels, noUpperBound); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromLabelSets, err)
	}

	k := MaxClass(labels) + 1
	family := make([]*Orthopair, k)
	for c := 0; c < k; c++ {
		family[c] = &Orthopair{p: make(Set), bnd: make(Set), n: make(Set)}
	}
	for j, item := range labels {
		for c := 0; c < k; c++ {
			family[c].n[j] = struct{}{}
		}
		for _, c := range item {
			delete(family[c].n, j)
			if len(item) == 1 {
				family[c].p[j] = struct{}{}
			} else {
				family[c].bnd[j] = struct{}{}
			}
		}
	}
	return &Orthopartition{family: family}, nil
}

// NewOrthopartition builds an orthopartition from a family of orthopairs.
// The orthopairs are copied.
//
// Errors:
//   - ErrEmptyFamily when family is empty;
//   - ErrDifferentUniverse when the orthopairs disagree on the universe;
//   - ErrOverlap when overlap is false and two orthopairs overlap.
func NewOrthopartition(family []*Orthopair, overlap bool) (*Orthopartition, error) {
	if len(family) == 0 {
		return nil, fmt.Errorf("%s: %w", opNewOrthopartition, ErrEmptyFamily)
	}
	u := family[0].Universe()
	for _, o := range family[1:] {
		if !o.Universe().Equal(u) {
			return nil, fmt.Errorf("%s: %w", opNewOrthopartition, ErrDifferentUniverse)
		}
	}
	if !overlap && hasOverlap(family) {
		return nil, fmt.Errorf("%s: %w", opNewOrthopartition, ErrOverlap)
	}
	return &Orthopartition{family: cloneFamily(family), overlap: overlap}, nil
}

// FromFamily is NewOrthopartition with the overlap flag detected from the family.
func FromFamily(family []*Orthopair) (*Orthopartition, error) {
	if len(family) == 0 {
		return nil, fmt.Errorf("%s: %w", opNewOrthopartition, ErrEmptyFamily)
	}
	return NewOrthopartition(family, hasOverlap(family))
}

// Len returns the number of orthopairs.
func (op *Orthopartition) Len() int { return len(op.family) }

// Overlap reports whether the family admits overlaps.
func (op *Orthopartition) Overlap() bool { return op.overlap }

// At returns a copy of the i-th orthopair.
func (op *Orthopartition) At(i int) *Orthopair { return op.family[i].Clone() }

// Family returns a deep copy of the orthopairs.
func (op *Orthopartition) Family() []*Orthopair { return cloneFamily(op.family) }

// UniverseSize returns the size of the shared universe.
func (op *Orthopartition) UniverseSize() int {
	if len(op.family) == 0 {
		return 0
	}
	return op.family[0].UniverseSize()
}

// Add appends a copy of o.
//
// Errors: ErrDifferentUniverse; ErrOverlap when overlaps are not admitted.
func (op *Orthopartition) Add(o *Orthopair) error {
	if len(op.family) > 0 {
		if !op.family[0].Universe().Equal(o.Universe()) {
			return fmt.Errorf("Add: %w", ErrDifferentUniverse)
		}
		if !op.overlap {
			for _, q := range op.family {
				if o.overlaps(q) || q.overlaps(o) {
					return fmt.Errorf("Add: %w", ErrOverlap)
				}
			}
		}
	}
	op.family = append(op.family, o.Clone())
	return nil
}

// TotalBoundary returns |∪ Bnd_k|.
func (op *Orthopartition) TotalBoundary() int {
	return totalBoundary(op.family)
}

// InBoundary reports whether item i lies in some boundary.
func (op *Orthopartition) InBoundary(i int) bool {
	for _, o := range op.family {
		if o.bnd.Has(i) {
			return true
		}
	}
	return false
}

// NumBoundaries returns the number of boundaries containing item i.
func (op *Orthopartition) NumBoundaries(i int) int {
	var cnt int
	for _, o := range op.family {
		if o.bnd.Has(i) {
			cnt++
		}
	}
	return cnt
}

// InWhich returns the indices of the orthopairs whose upper region contains item i.
func (op *Orthopartition) InWhich(i int) []int {
	var out []int
	for k, o := range op.family {
		if o.p.Has(i) || o.bnd.Has(i) {
			out = append(out, k)
		}
	}
	return out
}

// LowerEntropy returns the lower bound of the logical entropy.
//
// Without overlaps the boundaries are resolved greedily: while some item is
// still in a boundary, the orthopair with the largest upper region (first
// in family order on ties) absorbs its whole boundary and every other
// orthopair cedes those items. With overlaps every boundary is absorbed at
// once and shared positives are discounted pairwise.
//
// Complexity: O(K²·n) for K orthopairs over n items.
func (op *Orthopartition) LowerEntropy() (float64, error) {
	work := cloneFamily(op.family)
	if len(work) == 0 || work[0].UniverseSize() == 0 {
		return 0, fmt.Errorf("LowerEntropy: %w", ErrEmptyFamily)
	}

	if op.overlap {
		for _, o := range work {
			o.absorbBoundary()
		}
	} else {
		for totalBoundary(work) != 0 {
			var best *Orthopair
			for _, o := range work {
				if o.Entropy() > 0 && (best == nil || o.UpperSize() > best.UpperSize()) {
					best = o
				}
			}
			best.absorbBoundary()
			for _, o := range work {
				if o != best {
					o.cede(best.p)
				}
			}
		}
	}
	return logicalEntropy(work, op.overlap), nil
}

// UpperEntropy returns the upper bound of the logical entropy.
//
// Boundaries are resolved one item at a time: the orthopair with the
// smallest lower region among those with a non-empty boundary (first in
// family order on ties) takes its smallest boundary item into P, and every
// other orthopair cedes it.
//
// Complexity: O(K·n·(K+n)) for K orthopairs over n items.
func (op *Orthopartition) UpperEntropy() (float64, error) {
	work := cloneFamily(op.family)
	if len(work) == 0 || work[0].UniverseSize() == 0 {
		return 0, fmt.Errorf("UpperEntropy: %w", ErrEmptyFamily)
	}

	for totalBoundary(work) != 0 {
		var smallest *Orthopair
		for _, o := range work {
			if o.Entropy() > 0 && (smallest == nil || o.LowerSize() < smallest.LowerSize()) {
				smallest = o
			}
		}
		item := smallest.bnd.Sorted()[0]
		smallest.p.Add(item)
		delete(smallest.bnd, item)
		for _, o := range work {
			if o != smallest {
				o.cede(smallest.p)
			}
		}
	}
	return logicalEntropy(work, op.overlap), nil
}

// Meet returns the family of non-empty pairwise intersections of op and pi.
// The result admits overlaps when either operand does.
//
// Errors: ErrDifferentUniverse; ErrOverlap if the intersections overlap
// while neither operand admits overlaps; ErrEmptyFamily if every
// intersection is empty.
func (op *Orthopartition) Meet(pi *Orthopartition) (*Orthopartition, error) {
	var family []*Orthopair
	for _, o := range op.family {
		for _, q := range pi.family {
			x, err := o.Intersect(q)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opMeet, err)
			}
			if !x.IsEmpty() {
				family = append(family, x)
			}
		}
	}
	res, err := NewOrthopartition(family, op.overlap || pi.overlap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMeet, err)
	}
	return res, nil
}

// MeanEntropy returns (LowerEntropy + UpperEntropy) / 2.
func (op *Orthopartition) MeanEntropy() (float64, error) {
	lo, err := op.LowerEntropy()
	if err != nil {
		return 0, err
	}
	hi, err := op.UpperEntropy()
	if err != nil {
		return 0, err
	}
	return (lo + hi) / 2, nil
}

// MutualInformation returns the normalized mutual information
//
//	(H(op) + H(pi) − H(op ∧ pi)) / max(H(op), H(pi))
//
// where H is MeanEntropy and ∧ is Meet.
//
// Errors: ErrZeroEntropy when both mean entropies are 0; Meet errors.
func (op *Orthopartition) MutualInformation(pi *Orthopartition) (float64, error) {
	h1, err := op.MeanEntropy()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMutualInformation, err)
	}
	h2, err := pi.MeanEntropy()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMutualInformation, err)
	}
	m, err := op.Meet(pi)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMutualInformation, err)
	}
	hm, err := m.MeanEntropy()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMutualInformation, err)
	}

	norm := max(h1, h2)
	if norm == 0 {
		return 0, fmt.Errorf("%s: %w", opMutualInformation, ErrZeroEntropy)
	}
	return (h1 + h2 - hm) / norm, nil
}

// Purity scores op against a reference pi. For each orthopair of op the best
// matching orthopair of pi contributes |P ∩ P'| plus, for every boundary
// item of op certain in pi, 1/NumBoundaries(item). The sum is divided by
// the universe size of pi.
//
// Errors: ErrDifferentUniverse; ErrEmptyFamily when pi is empty.
func (op *Orthopartition) Purity(pi *Orthopartition) (float64, error) {
	u := pi.UniverseSize()
	if u == 0 {
		return 0, fmt.Errorf("%s: %w", opPurity, ErrEmptyFamily)
	}

	var total float64
	for _, o := range op.family {
		var best float64
		for _, q := range pi.family {
			x, err := o.Intersect(q)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", opPurity, err)
			}
			size := float64(x.LowerSize())
			for i := range o.bnd {
				if q.p.Has(i) {
					size += 1.0 / float64(op.NumBoundaries(i))
				}
			}
			if size > best {
				best = size
			}
		}
		total += best
	}
	return total / float64(u), nil
}

// String renders one orthopair per line.
func (op *Orthopartition) String() string {
	var b strings.Builder
	for k, o := range op.family {
		fmt.Fprintf(&b, "%d: %s\n", k, o)
	}
	return b.String()
}

// hasOverlap reports whether any ordered pair of distinct orthopairs overlaps.
func hasOverlap(family []*Orthopair) bool {
	for i, o := range family {
		for j, q := range family {
			if i != j && o.overlaps(q) {
				return true
			}
		}
	}
	return false
}

// totalBoundary returns |∪ Bnd_k| over family.
func totalBoundary(family []*Orthopair) int {
	seen := make(Set)
	for _, o := range family {
		for i := range o.bnd {
			seen[i] = struct{}{}
		}
	}
	return len(seen)
}

// logicalEntropy returns Σ_{i≠j} |P_i|·|P_j| / |U|² over resolved orthopairs.
// With overlaps the left factor counts only positives not shared with the
// right-hand orthopair.
func logicalEntropy(family []*Orthopair, overlap bool) float64 {
	var sum float64
	for i, o := range family {
		for j, q := range family {
			if i == j {
				continue
			}
			left := len(o.p)
			if overlap {
				left = len(minus(o.p, q.p))
			}
			sum += float64(left) * float64(len(q.p))
		}
	}
	u := float64(family[0].UniverseSize())
	return sum / (u * u)
}

// cloneFamily deep-copies a family of orthopairs.
func cloneFamily(family []*Orthopair) []*Orthopair {
	out := make([]*Orthopair, len(family))
	for i, o := range family {
		out[i] = o.Clone()
	}
	return out
}
