package entropy

import "errors"

var (
	// ErrZeroMass is returned when the class counts sum to zero (no items),
	// which would leave the distribution undefined.
	ErrZeroMass = errors.New("entropy: zero total mass")

	// ErrInvalidSamples is returned when the number of Monte Carlo samples is < 1.
	ErrInvalidSamples = errors.New("entropy: samples must be >= 1")
)

// Summary describes a Monte Carlo entropy estimate in bits.
type Summary struct {
	// Mean is the average entropy over all trials.
	Mean float64

	// StdDev is the sample standard deviation of the trials (0 for one trial).
	StdDev float64

	// StdErr is StdDev / sqrt(Samples): the standard error of Mean.
	StdErr float64

	// Samples is the number of trials.
	Samples int
}
