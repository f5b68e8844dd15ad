// Package assignment solves the rectangular linear sum assignment problem:
// given an r×c cost matrix, pick min(r, c) row/column pairs, no row or
// column used twice, with the smallest total cost.
//
// What it is used for:
//
//	Minimum-weight bipartite matching between two point clouds, which is
//	the core of the matching statistic in package twosample.
//
// Algorithm:
//
//	Shortest augmenting path with dual potentials (Jonker–Volgenant, in
//	the rectangular form described by Crouse, 2016). One augmentation per
//	row of the shorter side; each augmentation is a Dijkstra-like scan
//	over reduced costs. Wide matrices are solved directly; tall matrices
//	are transposed first.
//
// Entries may be +Inf to forbid a pairing. NaN and -Inf are rejected.
//
// Usage:
//
//	cost := mat.NewDense(3, 3, []float64{
//	    4, 1, 3,
//	    2, 0, 5,
//	    3, 2, 2,
//	})
//	res, err := assignment.Solve(cost)
//	// res.RowToCol == [1 0 2], res.Cost == 5
//
// Complexity:
//
//   - Time:   O(n²·m) with n = min(r, c), m = max(r, c)
//   - Memory: O(r·c) for the working copy of the matrix
package assignment
