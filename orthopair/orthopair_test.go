package orthopair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roughstat/orthopair"
)

const epsTight = 1e-12

// mustNew builds an orthopair or fails the test.
func mustNew(t *testing.T, p, bnd, n []int) *orthopair.Orthopair {
	t.Helper()
	o, err := orthopair.New(orthopair.NewSet(p...), orthopair.NewSet(bnd...), orthopair.NewSet(n...))
	require.NoError(t, err)
	return o
}

func TestValidate(t *testing.T) {
	ok := []orthopair.LabelSet{{0}, {1, 2}}
	require.NoError(t, orthopair.Validate(ok, 3))

	assert.ErrorIs(t, orthopair.Validate(ok, 0), orthopair.ErrInvalidClasses)
	assert.ErrorIs(t, orthopair.Validate(ok, 2), orthopair.ErrClassOutOfRange)
	assert.ErrorIs(t, orthopair.Validate([]orthopair.LabelSet{{-1}}, 2), orthopair.ErrClassOutOfRange)
	assert.ErrorIs(t, orthopair.Validate([]orthopair.LabelSet{{0}, {}}, 2), orthopair.ErrEmptyLabelSet)
	assert.ErrorIs(t, orthopair.Validate([]orthopair.LabelSet{{1, 1}}, 2), orthopair.ErrDuplicateClass)

	require.NoError(t, orthopair.ValidateItems([]orthopair.LabelSet{{40}, {7, 3}}))
	assert.ErrorIs(t, orthopair.ValidateItems([]orthopair.LabelSet{{-2}}), orthopair.ErrClassOutOfRange)
}

func TestMaxClass(t *testing.T) {
	assert.Equal(t, -1, orthopair.MaxClass(nil))
	assert.Equal(t, 4, orthopair.MaxClass([]orthopair.LabelSet{{0}, {4, 2}, {1}}))
}

func TestNew_RejectsSharedItems(t *testing.T) {
	_, err := orthopair.New(orthopair.NewSet(1), orthopair.NewSet(1), nil)
	assert.ErrorIs(t, err, orthopair.ErrNotDisjoint)
	_, err = orthopair.New(nil, orthopair.NewSet(2), orthopair.NewSet(2))
	assert.ErrorIs(t, err, orthopair.ErrNotDisjoint)
}

func TestOrthopair_Measures(t *testing.T) {
	o := mustNew(t, []int{0, 1}, []int{2}, []int{3})
	assert.Equal(t, 4, o.UniverseSize())
	assert.Equal(t, 2, o.LowerSize())
	assert.Equal(t, 3, o.UpperSize())
	assert.InDelta(t, 0.25, o.Entropy(), epsTight)
	assert.False(t, o.IsEmpty())
	assert.True(t, mustNew(t, nil, nil, []int{0, 1}).IsEmpty())

	var empty orthopair.Orthopair
	assert.Equal(t, 0.0, empty.Entropy())
}

// TestOrthopair_UnionIntersect checks the join and meet of the truth ordering.
func TestOrthopair_UnionIntersect(t *testing.T) {
	a := mustNew(t, []int{0}, []int{1, 2}, []int{3})
	b := mustNew(t, []int{1}, []int{3}, []int{0, 2})

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.True(t, u.Equal(mustNew(t, []int{0, 1}, []int{2, 3}, nil)), "union: %s", u)

	x, err := a.Intersect(b)
	require.NoError(t, err)
	assert.True(t, x.Equal(mustNew(t, nil, []int{1}, []int{0, 2, 3})), "intersect: %s", x)

	c := mustNew(t, []int{9}, nil, nil)
	_, err = a.Union(c)
	assert.ErrorIs(t, err, orthopair.ErrDifferentUniverse)
	_, err = a.Intersect(c)
	assert.ErrorIs(t, err, orthopair.ErrDifferentUniverse)
}

func TestOrthopair_AccessorsReturnCopies(t *testing.T) {
	o := mustNew(t, []int{0}, nil, []int{1})
	p := o.P()
	p.Add(7)
	assert.Equal(t, 1, o.LowerSize())
	assert.Equal(t, "P=[0] Bnd=[] N=[1]", o.String())
}

func TestFromLabelSets(t *testing.T) {
	pi, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, 2, pi.Len())
	assert.False(t, pi.Overlap())
	assert.Equal(t, 3, pi.UniverseSize())

	assert.True(t, pi.At(0).Equal(mustNew(t, []int{0}, []int{2}, []int{1})))
	assert.True(t, pi.At(1).Equal(mustNew(t, []int{1}, []int{2}, []int{0})))

	assert.Equal(t, 1, pi.TotalBoundary())
	assert.True(t, pi.InBoundary(2))
	assert.False(t, pi.InBoundary(0))
	assert.Equal(t, 2, pi.NumBoundaries(2))
	assert.Equal(t, []int{0, 1}, pi.InWhich(2))
	assert.Equal(t, []int{1}, pi.InWhich(1))

	_, err = orthopair.FromLabelSets(nil)
	assert.ErrorIs(t, err, orthopair.ErrEmptyFamily)
	_, err = orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {}})
	assert.ErrorIs(t, err, orthopair.ErrEmptyLabelSet)
}

func TestNewOrthopartition_Errors(t *testing.T) {
	_, err := orthopair.NewOrthopartition(nil, false)
	assert.ErrorIs(t, err, orthopair.ErrEmptyFamily)

	a := mustNew(t, []int{0}, nil, []int{1})
	b := mustNew(t, []int{0, 1}, nil, nil)
	_, err = orthopair.NewOrthopartition([]*orthopair.Orthopair{a, b}, false)
	assert.ErrorIs(t, err, orthopair.ErrOverlap)

	pi, err := orthopair.FromFamily([]*orthopair.Orthopair{a, b})
	require.NoError(t, err)
	assert.True(t, pi.Overlap())

	c := mustNew(t, []int{5}, nil, nil)
	_, err = orthopair.NewOrthopartition([]*orthopair.Orthopair{a, c}, true)
	assert.ErrorIs(t, err, orthopair.ErrDifferentUniverse)
}

func TestOrthopartition_Add(t *testing.T) {
	a := mustNew(t, []int{0}, []int{2}, []int{1})
	pi, err := orthopair.NewOrthopartition([]*orthopair.Orthopair{a}, false)
	require.NoError(t, err)

	require.NoError(t, pi.Add(mustNew(t, []int{1}, []int{2}, []int{0})))
	assert.Equal(t, 2, pi.Len())

	assert.ErrorIs(t, pi.Add(mustNew(t, []int{0, 2}, nil, []int{1})), orthopair.ErrOverlap)
	assert.ErrorIs(t, pi.Add(mustNew(t, []int{3}, nil, nil)), orthopair.ErrDifferentUniverse)
}

// TestEntropyBounds_Crisp: without boundaries both bounds equal the logical entropy.
func TestEntropyBounds_Crisp(t *testing.T) {
	pi, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}})
	require.NoError(t, err)

	lo, err := pi.LowerEntropy()
	require.NoError(t, err)
	hi, err := pi.UpperEntropy()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, lo, epsTight)
	assert.InDelta(t, 0.5, hi, epsTight)
}

// TestEntropyBounds_Boundary uses a boundary item that the lower bound gives to
// the larger class and the upper bound to the smaller one.
func TestEntropyBounds_Boundary(t *testing.T) {
	pi, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {0}, {1}, {0, 1}})
	require.NoError(t, err)

	lo, err := pi.LowerEntropy()
	require.NoError(t, err)
	hi, err := pi.UpperEntropy()
	require.NoError(t, err)

	assert.InDelta(t, 6.0/16.0, lo, epsTight)
	assert.InDelta(t, 8.0/16.0, hi, epsTight)
	assert.LessOrEqual(t, lo, hi)

	mean, err := pi.MeanEntropy()
	require.NoError(t, err)
	assert.InDelta(t, 7.0/16.0, mean, epsTight)

	// The receiver is not modified by the greedy resolution.
	assert.Equal(t, 1, pi.TotalBoundary())
}

func TestEntropyBounds_Overlap(t *testing.T) {
	a := mustNew(t, []int{0, 1}, nil, []int{2})
	b := mustNew(t, []int{1, 2}, nil, []int{0})
	pi, err := orthopair.NewOrthopartition([]*orthopair.Orthopair{a, b}, true)
	require.NoError(t, err)

	// |{0}|·|{1,2}| + |{2}|·|{0,1}| = 4, over 9.
	lo, err := pi.LowerEntropy()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/9.0, lo, epsTight)
	hi, err := pi.UpperEntropy()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/9.0, hi, epsTight)
}

func TestMutualInformation(t *testing.T) {
	crisp, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {0}, {1}, {1}})
	require.NoError(t, err)

	mi, err := crisp.MutualInformation(crisp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mi, epsTight)

	// A single class has zero entropy on both sides.
	one, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {0}})
	require.NoError(t, err)
	_, err = one.MutualInformation(one)
	assert.ErrorIs(t, err, orthopair.ErrZeroEntropy)

	// Crossed partitions share no information: the meet is the discrete partition.
	rows, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {0}, {1}, {1}})
	require.NoError(t, err)
	cols, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}, {0}, {1}})
	require.NoError(t, err)
	mi, err = rows.MutualInformation(cols)
	require.NoError(t, err)
	// H(rows)=H(cols)=0.5, H(meet)=0.75 → (0.5+0.5−0.75)/0.5.
	assert.InDelta(t, 0.5, mi, epsTight)
}

func TestMeet(t *testing.T) {
	pi, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}, {0, 1}})
	require.NoError(t, err)
	m, err := pi.Meet(pi)
	require.NoError(t, err)
	// Both classes survive; each cross intersection keeps the shared boundary item.
	assert.Equal(t, 4, m.Len())
	assert.True(t, m.At(0).Equal(pi.At(0)))
	assert.True(t, m.At(1).Equal(mustNew(t, nil, []int{2}, []int{0, 1})))
	assert.True(t, m.At(2).Equal(m.At(1)))
}

func TestPurity(t *testing.T) {
	truth, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}, {1}})
	require.NoError(t, err)

	self, err := truth.Purity(truth)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, self, epsTight)

	rough, err := orthopair.FromLabelSets([]orthopair.LabelSet{{0}, {1}, {0, 1}})
	require.NoError(t, err)
	p, err := rough.Purity(truth)
	require.NoError(t, err)
	// class 0 → 1, class 1 → 1 + 1/2.
	assert.InDelta(t, 2.5/3.0, p, epsTight)
}
