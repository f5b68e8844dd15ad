// Package twosample implements a multivariate two-sample permutation test
// built on optimal bipartite matching.
//
// The statistic:
//
//	T(A, B) = Σ d(a_i, b_σ(i)) over the minimum-cost assignment σ between
//	the rows of A and the rows of B (package assignment). When |A| ≠ |B|
//	only min(|A|, |B|) pairs are matched and the surplus rows of the larger
//	sample do not contribute.
//
// The p-value:
//
//	A and B are pooled; each iteration i draws a uniform split of the pool
//	into groups of sizes |A| and |B| from its own stream seeded with
//	seed+i, recomputes the statistic T_i, and counts the iterations with
//	T_obs <= T_i. The p-value is count / iterations.
//
//	The comparison direction is fixed: a small p-value means random splits
//	rarely cost as much to match as the real one did, that is A and B are
//	further apart than chance. Identical samples give T_obs = 0 and p = 1.
//
// Iterations are independent and may run on several workers
// (Options.Workers); the result does not depend on the worker count.
//
// Usage:
//
//	p, err := twosample.MultivariateTwoSample(a, b, 1000, 42)
//
//	opts := twosample.DefaultOptions()
//	opts.Metric = twosample.Manhattan
//	opts.Workers = 8
//	res, err := twosample.Run(ctx, a, b, opts)
//
// Complexity: O(iterations · n²·m) for the assignments, with
// n = min(|A|, |B|) and m = max(|A|, |B|), plus O((|A|+|B|)²·d) once for
// the pooled distance matrix.
package twosample
