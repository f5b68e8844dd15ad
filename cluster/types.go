package cluster

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/orthopair"
)

var (
	// ErrEmptyData is returned for a nil matrix or one without rows or columns.
	ErrEmptyData = errors.New("cluster: empty data")

	// ErrNaNInf is returned when the data holds NaN or ±Inf.
	ErrNaNInf = errors.New("cluster: data contains NaN or Inf")

	// ErrInvalidK is returned when K < 1 or K exceeds the number of rows.
	ErrInvalidK = errors.New("cluster: k must be in [1, rows]")

	// ErrInvalidIterations is returned when Iterations < 1.
	ErrInvalidIterations = errors.New("cluster: iterations must be >= 1")

	// ErrInvalidThreshold is returned when Threshold is outside (0, 1].
	ErrInvalidThreshold = errors.New("cluster: threshold must be in (0, 1]")

	// ErrInvalidRegionWeights is returned when WLower or WUpper is negative
	// or they do not sum to 1.
	ErrInvalidRegionWeights = errors.New("cluster: region weights must be >= 0 and sum to 1")

	// ErrInvalidRestarts is returned when Restarts < 1.
	ErrInvalidRestarts = errors.New("cluster: restarts must be >= 1")

	// ErrDimensionMismatch is returned when new items do not have the
	// dimension of the clustered data.
	ErrDimensionMismatch = errors.New("cluster: dimension mismatch")
)

// Defaults used by DefaultOptions.
const (
	DefaultK          = 2
	DefaultIterations = 10
	DefaultThreshold  = 0.9
	DefaultWLower     = 0.7
	DefaultWUpper     = 0.3
	DefaultRestarts   = 1
)

// regionWeightTol is the slack allowed on WLower+WUpper == 1.
const regionWeightTol = 1e-9

// Options configures KMeans, KMedians and Refine.
type Options struct {
	// K is the number of clusters (KMeans, KMedians).
	K int

	// Iterations is the number of assign/update rounds per restart.
	Iterations int

	// Threshold in (0, 1] controls boundary membership; 1 keeps only ties.
	// Refine uses 1−Threshold as the neighbourhood radius.
	Threshold float64

	// WLower and WUpper weigh the lower region and the upper region when
	// representatives are recomputed. They must sum to 1.
	WLower, WUpper float64

	// Restarts is the number of independent seedings (KMeans, KMedians).
	Restarts int

	// Seed drives the seeding of every restart.
	Seed int64

	// Reweight re-estimates attribute weights after each iteration.
	Reweight bool

	// Compact reduces attribute orthocoverings (and Refine's neighbourhoods)
	// to a greedy cover before they are used.
	Compact bool

	// Logger receives debug records; nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns K=2, 10 iterations, threshold 0.9, region weights
// 0.7/0.3, one restart, seed 0, reweighting and compaction on.
func DefaultOptions() Options {
	return Options{
		K:          DefaultK,
		Iterations: DefaultIterations,
		Threshold:  DefaultThreshold,
		WLower:     DefaultWLower,
		WUpper:     DefaultWUpper,
		Restarts:   DefaultRestarts,
		Reweight:   true,
		Compact:    true,
	}
}

// validate checks the fields used by every algorithm.
func (o Options) validate() error {
	if o.Iterations < 1 {
		return ErrInvalidIterations
	}
	if !(o.Threshold > 0 && o.Threshold <= 1) {
		return ErrInvalidThreshold
	}
	return nil
}

// validateCentroid adds the checks of the representative-based algorithms.
func (o Options) validateCentroid() error {
	if err := o.validate(); err != nil {
		return err
	}
	if o.K < 1 {
		return ErrInvalidK
	}
	if o.WLower < 0 || o.WUpper < 0 || math.Abs(o.WLower+o.WUpper-1) > regionWeightTol {
		return ErrInvalidRegionWeights
	}
	if o.Restarts < 1 {
		return ErrInvalidRestarts
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Result is a rough clustering produced by KMeans or KMedians.
type Result struct {
	// Partition holds one orthopair per cluster, in cluster order.
	Partition *orthopair.Orthopartition

	// Labels[i] lists the clusters of item i: a singleton for P, two or
	// more for the boundary.
	Labels []orthopair.LabelSet

	// Centroids holds the K representatives (rows) that produced Labels.
	Centroids *mat.Dense

	// Weights are the attribute weights that produced Labels.
	Weights []float64

	// DaviesBouldin is the rough Davies-Bouldin index of the clustering.
	DaviesBouldin float64

	// Threshold is the membership threshold used.
	Threshold float64

	span []float64
}

// Refinement is the output of Refine.
type Refinement struct {
	// Partition holds the non-empty clusters found.
	Partition *orthopair.Orthopartition

	// Weights are the final attribute weights.
	Weights []float64
}
