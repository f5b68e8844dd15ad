package correction

import "errors"

// ErrInvalidPValue is returned for a p-value that is NaN or outside [0, 1].
var ErrInvalidPValue = errors.New("correction: p-value must be in [0, 1]")

// Hypothesis is one row of a table of test results.
type Hypothesis struct {
	// Name identifies the test; it is carried through unchanged.
	Name string

	// PValue is the raw p-value.
	PValue float64

	// Corrected is the adjusted p-value, filled in by HolmBonferroni.
	Corrected float64
}
