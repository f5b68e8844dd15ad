// Package roughstat collects small statistical tools for exploratory
// analysis over ambiguous class labels and multivariate samples.
//
// What is inside?
//
//	orthopair/  — set-valued labels, orthopairs (P / Bnd / N regions) and
//	              orthopartitions with lower / upper logical entropy
//	entropy/    — fractional-count entropy of label sets and its Monte
//	              Carlo counterpart over random label resolutions
//	assignment/ — rectangular linear sum assignment
//	twosample/  — matching-based multivariate two-sample permutation test
//	correction/ — Holm-Bonferroni and Bonferroni p-value adjustment
//	cluster/    — rough k-means, rough k-medians and rough refinement
//	              returning orthopartitions
//	rng/        — deterministic seeded streams shared by the packages above
//
// Every operation is a pure function of its arguments and of an explicit
// random source; nothing is kept between calls.
//
// Runnable scenarios live in examples/.
//
//	go get github.com/katalvlaran/roughstat
package roughstat
