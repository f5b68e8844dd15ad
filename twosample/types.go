package twosample

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

var (
	// ErrDimensionMismatch is returned when A and B have different column counts.
	ErrDimensionMismatch = errors.New("twosample: samples differ in dimension")

	// ErrEmptySample is returned for a nil sample or one with no rows or columns.
	ErrEmptySample = errors.New("twosample: empty sample")

	// ErrInvalidIterations is returned when Options.Iterations < 1.
	ErrInvalidIterations = errors.New("twosample: iterations must be >= 1")

	// ErrInvalidWorkers is returned when Options.Workers < 0.
	ErrInvalidWorkers = errors.New("twosample: workers must be >= 0")

	// ErrUnknownMetric is returned for a Metric value outside the defined set.
	ErrUnknownMetric = errors.New("twosample: unknown metric")

	// ErrNaNInf is returned when a sample holds NaN or ±Inf.
	ErrNaNInf = errors.New("twosample: sample contains NaN or Inf")
)

// Metric selects the distance between two observations.
type Metric int

const (
	// Euclidean is the L2 distance.
	Euclidean Metric = iota
	// Manhattan is the L1 distance.
	Manhattan
	// Chebyshev is the L∞ distance.
	Chebyshev
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// norm returns the Minkowski order L of m, as taken by floats.Distance.
func (m Metric) norm() (float64, error) {
	switch m {
	case Euclidean:
		return 2, nil
	case Manhattan:
		return 1, nil
	case Chebyshev:
		return math.Inf(1), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}

// DefaultIterations is the number of permutation splits used by DefaultOptions.
const DefaultIterations = 1000

// Options configures Run.
type Options struct {
	// Iterations is the number of random splits; must be >= 1.
	Iterations int

	// Seed is the base seed; iteration i uses its own stream seeded with Seed+i.
	Seed int64

	// Metric is the pairwise distance (default Euclidean).
	Metric Metric

	// Workers is the number of goroutines sharing the iterations.
	// 0 means runtime.GOMAXPROCS(0); 1 runs everything on one goroutine.
	Workers int

	// Logger receives debug records; nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the settings of a plain sequential test:
// 1000 iterations, seed 0, Euclidean distance, one worker, no logging.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Seed:       0,
		Metric:     Euclidean,
		Workers:    1,
	}
}

func (o Options) validate() error {
	if o.Iterations < 1 {
		return ErrInvalidIterations
	}
	if o.Workers < 0 {
		return ErrInvalidWorkers
	}
	if _, err := o.Metric.norm(); err != nil {
		return err
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Result reports a finished permutation test.
type Result struct {
	// Statistic is T_obs, the optimal matching cost between A and B.
	Statistic float64

	// PValue is Exceed / Iterations.
	PValue float64

	// Exceed counts the splits with T_obs <= T_i.
	Exceed int

	// Iterations is the number of splits drawn.
	Iterations int

	// Matched is the number of pairs in every matching, min(|A|, |B|).
	Matched int
}
