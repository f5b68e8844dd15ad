// Package orthopair models ambiguous class membership.
//
// Two complementary views are provided:
//
//   - LabelSet — per item: the set of classes the item may belong to.
//     A singleton is a crisp label; a larger set expresses irreducible
//     ambiguity between its members. Slices of label sets are the input of
//     the entropy package.
//
//   - Orthopair / Orthopartition — per class: the items that surely belong
//     to it (P, the lower region), the items that may belong to it (Bnd, the
//     boundary) and the items that surely do not (N). An Orthopartition is a
//     family of orthopairs over one universe of items, e.g. the output of a
//     rough clustering.
//
// FromLabelSets converts the first view into the second:
//
//	labels := []orthopair.LabelSet{{0}, {1}, {0, 1}}
//	pi, err := orthopair.FromLabelSets(labels)
//	// class 0: P={0} Bnd={2} N={1}
//	// class 1: P={1} Bnd={2} N={0}
//
// Orthopartition measures:
//
//   - LowerEntropy / UpperEntropy — bounds of the logical entropy
//     Σ_{i≠j} |P_i|·|P_j| / |U|² over all crisp resolutions of the boundaries.
//   - MutualInformation — normalized mutual information between two
//     orthopartitions, computed on mean entropies and the Meet.
//   - Purity — fraction of items matched by the best counterpart class,
//     with boundary items split evenly among the orthopairs they belong to.
//
// All operations are deterministic: where a choice among equals is needed
// the first orthopair (family order) and the smallest item index win.
package orthopair
