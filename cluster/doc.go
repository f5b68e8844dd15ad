// Package cluster implements rough clustering: every item ends up either
// in the lower region (P) of exactly one cluster or in the boundary (Bnd)
// of several, and the result is an orthopair.Orthopartition.
//
// Membership rule:
//
//	Let d_j be the weighted distance of an item to representative j and
//	d_min the smallest of them. The item belongs to cluster j when
//	d_j == d_min or d_min/d_j >= Threshold. One cluster puts it in that
//	cluster's P; two or more put it in the boundary of each.
//
// Distance:
//
//	d(x, y) = Σ_a w_a · |x_a − y_a| / (max_a − min_a)
//
//	with per-attribute ranges taken from the data and weights w summing to
//	one, so d lies in [0, 1]. Constant attributes contribute nothing.
//	With Options.Reweight the weights are re-estimated after every
//	iteration as the mutual information between the current clustering
//	and the orthocovering induced by each attribute alone.
//
// Algorithms:
//
//   - KMeans: representatives move to WLower·mean(P) + WUpper·mean(P ∪ Bnd)
//     (or the plain mean when one region is empty).
//   - KMedians: representatives move to the per-attribute weighted median,
//     items in P weighing WLower and boundary items WUpper.
//   - Refine: no representatives; neighbourhoods of radius 1−Threshold are
//     compacted into a cover, merged while they overlap enough, and items
//     claimed by several clusters are moved to their boundaries.
//
// Seeding picks one random row and then, greedily, the row farthest on
// average from the rows already chosen. Each restart draws from its own
// stream derived from Options.Seed. Across all restarts and iterations the
// clustering with the lowest rough Davies-Bouldin index is returned.
package cluster
