package orthopair

import (
	"fmt"
	"strings"
)

// Orthopair is a triple of pairwise-disjoint item sets over a universe U:
//
//	P   — positive region (lower approximation): items surely in the class,
//	Bnd — boundary: items possibly in the class,
//	N   — negative region: items surely outside the class,
//
// with U = P ∪ Bnd ∪ N. The upper approximation is P ∪ Bnd.
type Orthopair struct {
	p, bnd, n Set
}

// New builds an orthopair from its three regions. Nil sets are empty.
// The inputs are copied.
//
// Errors: ErrNotDisjoint if any two regions share an item.
// Complexity: O(|U|).
func New(p, bnd, n Set) (*Orthopair, error) {
	if p.intersects(bnd) || p.intersects(n) || bnd.intersects(n) {
		return nil, ErrNotDisjoint
	}
	return &Orthopair{p: p.Clone(), bnd: bnd.Clone(), n: n.Clone()}, nil
}

// P returns a copy of the positive region.
func (o *Orthopair) P() Set { return o.p.Clone() }

// Bnd returns a copy of the boundary region.
func (o *Orthopair) Bnd() Set { return o.bnd.Clone() }

// N returns a copy of the negative region.
func (o *Orthopair) N() Set { return o.n.Clone() }

// Universe returns P ∪ Bnd ∪ N.
func (o *Orthopair) Universe() Set {
	return union(union(o.p, o.bnd), o.n)
}

// UniverseSize returns |U|.
func (o *Orthopair) UniverseSize() int {
	return len(o.p) + len(o.bnd) + len(o.n)
}

// LowerSize returns |P|.
func (o *Orthopair) LowerSize() int { return len(o.p) }

// UpperSize returns |P ∪ Bnd|.
func (o *Orthopair) UpperSize() int { return len(o.p) + len(o.bnd) }

// Entropy is the boundary-based uncertainty |Bnd| / |U|; 0 on an empty universe.
func (o *Orthopair) Entropy() float64 {
	u := o.UniverseSize()
	if u == 0 {
		return 0
	}
	return float64(len(o.bnd)) / float64(u)
}

// IsEmpty reports whether N covers the whole universe.
func (o *Orthopair) IsEmpty() bool {
	return len(o.p) == 0 && len(o.bnd) == 0
}

// Clone returns a deep copy.
func (o *Orthopair) Clone() *Orthopair {
	return &Orthopair{p: o.p.Clone(), bnd: o.bnd.Clone(), n: o.n.Clone()}
}

// Equal reports whether both orthopairs have identical regions.
func (o *Orthopair) Equal(q *Orthopair) bool {
	return o.p.Equal(q.p) && o.bnd.Equal(q.bnd) && o.n.Equal(q.n)
}

// Union is the join of the truth ordering:
//
//	P = P₁ ∪ P₂,  N = N₁ ∩ N₂,  Bnd = U \ (P ∪ N).
//
// Errors: ErrDifferentUniverse.
func (o *Orthopair) Union(q *Orthopair) (*Orthopair, error) {
	if !o.Universe().Equal(q.Universe()) {
		return nil, fmt.Errorf("Union: %w", ErrDifferentUniverse)
	}
	p := union(o.p, q.p)
	n := intersection(o.n, q.n)
	bnd := minus(minus(union(o.bnd, q.bnd), n), p)
	return &Orthopair{p: p, bnd: bnd, n: n}, nil
}

// Intersect is the meet of the truth ordering:
//
//	P = P₁ ∩ P₂,  N = N₁ ∪ N₂,  Bnd = U \ (P ∪ N).
//
// Errors: ErrDifferentUniverse.
func (o *Orthopair) Intersect(q *Orthopair) (*Orthopair, error) {
	if !o.Universe().Equal(q.Universe()) {
		return nil, fmt.Errorf("Intersect: %w", ErrDifferentUniverse)
	}
	p := intersection(o.p, q.p)
	n := union(o.n, q.n)
	bnd := minus(minus(union(o.bnd, q.bnd), p), n)
	return &Orthopair{p: p, bnd: bnd, n: n}, nil
}

// String renders the three regions in ascending item order.
func (o *Orthopair) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P=%v Bnd=%v N=%v", o.p.Sorted(), o.bnd.Sorted(), o.n.Sorted())
	return b.String()
}

// overlaps reports whether o and q claim a common item as certain:
// (P₁ ∪ Bnd₁) ∩ P₂ ≠ ∅ or P₁ ∩ Bnd₂ ≠ ∅. Shared boundaries are not overlaps.
func (o *Orthopair) overlaps(q *Orthopair) bool {
	return o.p.intersects(q.p) || o.bnd.intersects(q.p) || o.p.intersects(q.bnd)
}

// absorbBoundary moves every boundary item into P.
func (o *Orthopair) absorbBoundary() {
	for i := range o.bnd {
		o.p[i] = struct{}{}
	}
	o.bnd = make(Set)
}

// cede removes items claimed by another orthopair from the boundary and
// records them as negative. Items already in P are left untouched.
func (o *Orthopair) cede(items Set) {
	for i := range items {
		if o.p.Has(i) {
			continue
		}
		delete(o.bnd, i)
		o.n[i] = struct{}{}
	}
}
