package entropy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roughstat/orthopair"
	"github.com/katalvlaran/roughstat/rng"
)

const (
	opDistribution   = "Distribution"
	opSampleLabels   = "SampleLabels"
	opEstimate       = "Estimate"
	opAverageEntropy = "AverageEntropy"
)

// Distribution returns the normalized fractional-count class distribution:
// every item adds 1/|item| to each of its candidate classes, then the
// vector is scaled to sum to 1.
//
// Errors:
//   - orthopair.ErrInvalidClasses, ErrClassOutOfRange, ErrEmptyLabelSet,
//     ErrDuplicateClass from validation;
//   - ErrZeroMass when labels is empty.
//
// Complexity: O(Σ|item| + nClasses).
func Distribution(labels []orthopair.LabelSet, nClasses int) ([]float64, error) {
	if err := orthopair.Validate(labels, nClasses); err != nil {
		return nil, fmt.Errorf("%s: %w", opDistribution, err)
	}

	p := make([]float64, nClasses)
	for _, item := range labels {
		w := 1.0 / float64(len(item))
		for _, c := range item {
			p[c] += w
		}
	}

	total := floats.Sum(p)
	if !(total > 0) {
		return nil, fmt.Errorf("%s: %w", opDistribution, ErrZeroMass)
	}
	floats.Scale(1/total, p)
	return p, nil
}

// Bits returns the base-2 Shannon entropy -Σ p·log2(p) of a probability
// vector, with 0·log2(0) = 0. p is not validated.
func Bits(p []float64) float64 {
	// stat.Entropy is in nats and skips zero entries.
	return stat.Entropy(p) / math.Ln2
}

// BetEntropy returns the base-2 entropy of the fractional-count distribution
// of labels (see Distribution). Errors are those of Distribution.
func BetEntropy(labels []orthopair.LabelSet, nClasses int) (float64, error) {
	p, err := Distribution(labels, nClasses)
	if err != nil {
		return 0, err
	}
	return Bits(p), nil
}

// SampleLabels resolves every item to a single class drawn uniformly from its
// candidates. The result has the same length as labels and holds singleton
// label sets. Randomness comes only from r.
//
// A nil r selects a fresh rng.Default() stream on every call, so repeated
// calls with r == nil return the same resolution. Pass one *rand.Rand and
// reuse it to get a different draw per call.
//
// Errors: orthopair.ErrEmptyLabelSet, ErrClassOutOfRange, ErrDuplicateClass.
// Complexity: O(n).
func SampleLabels(labels []orthopair.LabelSet, r *rand.Rand) ([]orthopair.LabelSet, error) {
	if err := orthopair.ValidateItems(labels); err != nil {
		return nil, fmt.Errorf("%s: %w", opSampleLabels, err)
	}
	return sampleLabels(labels, rng.Or(r)), nil
}

// sampleLabels assumes validated, non-empty items and a non-nil r.
func sampleLabels(labels []orthopair.LabelSet, r *rand.Rand) []orthopair.LabelSet {
	out := make([]orthopair.LabelSet, len(labels))
	for i, item := range labels {
		// items are validated non-empty, so Choice cannot fail
		c, _ := rng.Choice(item, r)
		out[i] = orthopair.LabelSet{c}
	}
	return out
}

// Estimate runs samples Monte Carlo trials. Each trial draws one crisp
// labeling with SampleLabels and computes its BetEntropy. Trials are
// independent given r; the summary reports their mean and spread.
//
// Errors: ErrInvalidSamples when samples < 1; Distribution errors.
// Complexity: O(samples · (Σ|item| + nClasses)).
func Estimate(labels []orthopair.LabelSet, nClasses, samples int, r *rand.Rand) (Summary, error) {
	if samples < 1 {
		return Summary{}, fmt.Errorf("%s: %w", opEstimate, ErrInvalidSamples)
	}
	// Validate once up front so that a bad input fails before any draw.
	if err := orthopair.Validate(labels, nClasses); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", opEstimate, err)
	}
	if len(labels) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", opEstimate, ErrZeroMass)
	}

	src := rng.Or(r)
	trials := make([]float64, samples)
	for i := range trials {
		h, err := BetEntropy(sampleLabels(labels, src), nClasses)
		if err != nil {
			return Summary{}, fmt.Errorf("%s: trial %d: %w", opEstimate, i, err)
		}
		trials[i] = h
	}

	sample := stats.Sample{Xs: trials}
	sum := Summary{Mean: sample.Mean(), Samples: samples}
	if samples > 1 {
		sum.StdDev = sample.StdDev()
		sum.StdErr = sum.StdDev / math.Sqrt(float64(samples))
	}
	return sum, nil
}

// AverageEntropy returns the mean BetEntropy over samples random
// resolutions of labels; see Estimate.
func AverageEntropy(labels []orthopair.LabelSet, nClasses, samples int, r *rand.Rand) (float64, error) {
	sum, err := Estimate(labels, nClasses, samples, r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opAverageEntropy, err)
	}
	return sum.Mean, nil
}
