// Package entropy estimates the Shannon entropy of a class distribution
// observed through ambiguous, set-valued labels.
//
// Two estimators are provided and kept separate on purpose:
//
//   - BetEntropy — fractional counts. Each item spreads a unit of mass evenly
//     over its candidate classes (weight 1/|item| each); the counts are
//     normalized and the base-2 entropy is returned.
//       Complexity: O(Σ|item| + nClasses).
//
//   - AverageEntropy — Monte Carlo. Each trial resolves every item to one of
//     its candidates uniformly at random (SampleLabels) and computes
//     BetEntropy on the crisp labeling; the mean over trials is returned.
//       Complexity: O(samples · (Σ|item| + nClasses)).
//
// Estimate runs the same loop and also reports the spread of the trials, so
// callers can size the number of samples from the standard error.
//
// Randomness is always injected: every sampling function takes a *rand.Rand
// (nil selects the deterministic rng.Default stream). Nothing reads the
// math/rand global source.
//
//	labels := []orthopair.LabelSet{{0}, {1}, {0, 1}}
//	h, err := entropy.BetEntropy(labels, 2) // 1 bit
//	avg, err := entropy.AverageEntropy(labels, 2, 1000, rng.New(42))
package entropy
