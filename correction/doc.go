// Package correction adjusts p-values for multiple comparisons.
//
// Holm-Bonferroni (step-down): sort the m raw p-values ascending and give
// the i-th (0-based) the value
//
//	min(1, max_{j<=i} (m - j) · p_j)
//
// The running maximum keeps the corrected values monotone; each one is at
// least its raw value. Bonferroni is the single-step min(1, m · p_i).
package correction
