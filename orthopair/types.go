package orthopair

import (
	"errors"
	"sort"
)

// Sentinel errors. Every message is prefixed with "orthopair: ..."; callers
// match with errors.Is, call sites may wrap with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrInvalidClasses is returned when the number of classes is not positive.
	ErrInvalidClasses = errors.New("orthopair: number of classes must be > 0")

	// ErrEmptyLabelSet is returned when an item carries no candidate class.
	ErrEmptyLabelSet = errors.New("orthopair: empty label set")

	// ErrClassOutOfRange is returned when a class index is negative or ≥ nClasses.
	ErrClassOutOfRange = errors.New("orthopair: class index out of range")

	// ErrDuplicateClass is returned when a label set lists the same class twice.
	ErrDuplicateClass = errors.New("orthopair: duplicate class in label set")

	// ErrNotDisjoint is returned when P, Bnd and N share an item.
	ErrNotDisjoint = errors.New("orthopair: regions are not disjoint")

	// ErrDifferentUniverse is returned when two orthopairs are defined on different universes.
	ErrDifferentUniverse = errors.New("orthopair: different universes")

	// ErrOverlap is returned when overlapping orthopairs are combined into a
	// family that does not admit overlaps.
	ErrOverlap = errors.New("orthopair: orthopairs overlap")

	// ErrEmptyFamily is returned when an orthopartition would hold no orthopair
	// or its universe is empty.
	ErrEmptyFamily = errors.New("orthopair: empty family")

	// ErrZeroEntropy is returned by MutualInformation when both operands have
	// zero mean entropy, leaving the normalization undefined.
	ErrZeroEntropy = errors.New("orthopair: zero entropy")
)

// LabelSet is the set of candidate classes of a single item.
// Valid label sets are non-empty and free of duplicates.
type LabelSet []int

// Set is a finite set of item indices.
type Set map[int]struct{}

// NewSet returns a Set holding items.
func NewSet(items ...int) Set {
	s := make(Set, len(items))
	for _, i := range items {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether i is in s.
func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Add inserts i.
func (s Set) Add(i int) { s[i] = struct{}{} }

// Len returns |s|.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s. A nil Set clones to an empty one.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Equal reports whether s and t hold the same items.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if !t.Has(i) {
			return false
		}
	}
	return true
}

// Sorted returns the items of s in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// intersects reports whether s and t share at least one item.
func (s Set) intersects(t Set) bool {
	if len(t) < len(s) {
		s, t = t, s
	}
	for i := range s {
		if t.Has(i) {
			return true
		}
	}
	return false
}

// union returns s ∪ t as a new Set.
func union(s, t Set) Set {
	out := s.Clone()
	for i := range t {
		out[i] = struct{}{}
	}
	return out
}

// intersection returns s ∩ t as a new Set.
func intersection(s, t Set) Set {
	out := make(Set)
	for i := range s {
		if t.Has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}

// minus returns s \ t as a new Set.
func minus(s, t Set) Set {
	out := make(Set, len(s))
	for i := range s {
		if !t.Has(i) {
			out[i] = struct{}{}
		}
	}
	return out
}
