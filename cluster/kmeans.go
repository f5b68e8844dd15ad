package cluster

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/orthopair"
	"github.com/katalvlaran/roughstat/rng"
)

const (
	opKMeans   = "KMeans"
	opKMedians = "KMedians"
	opAssign   = "Assign"
	opNearest  = "Nearest"
)

// KMeans runs rough k-means on the rows of data. Representatives move to
// WLower·mean(P) + WUpper·mean(P ∪ Bnd).
//
// Errors:
//   - ErrInvalidK, ErrInvalidIterations, ErrInvalidThreshold,
//     ErrInvalidRegionWeights, ErrInvalidRestarts from opts;
//   - ErrEmptyData, ErrNaNInf from data;
//   - ctx.Err() when cancelled.
func KMeans(ctx context.Context, data mat.Matrix, opts Options) (Result, error) {
	return run(ctx, opKMeans, data, opts, meanCenter)
}

// KMedians is KMeans with representatives moved to the per-attribute
// weighted median of the upper region.
//
// Errors: see KMeans.
func KMedians(ctx context.Context, data mat.Matrix, opts Options) (Result, error) {
	return run(ctx, opKMedians, data, opts, medianCenter)
}

// run is the shared restart/iteration loop. Restart r seeds from
// rng.Derive(rng.New(opts.Seed), r); the clustering with the lowest
// Davies-Bouldin index wins, the earliest one on ties.
func run(ctx context.Context, op string, data mat.Matrix, opts Options, center centerFunc) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.validateCentroid(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	s, err := newSpace(data)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	if opts.K > len(s.rows) {
		return Result{}, fmt.Errorf("%s: k=%d rows=%d: %w", op, opts.K, len(s.rows), ErrInvalidK)
	}
	log := opts.logger()

	base := rng.New(opts.Seed)
	best := Result{DaviesBouldin: math.Inf(1)}
	var bestLabels []orthopair.LabelSet
	found := false
	for restart := 0; restart < opts.Restarts; restart++ {
		w := s.uniform()
		centroids := s.seed(opts.K, w, rng.Derive(base, uint64(restart)))
		restartBest := math.Inf(1)
		for it := 0; it < opts.Iterations; it++ {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("%s: %w", op, err)
			}
			labels := s.assign(centroids, w, opts.Threshold)
			db := s.daviesBouldin(centroids, labels, w, opts.WLower, opts.WUpper)
			restartBest = math.Min(restartBest, db)
			if !found || db < best.DaviesBouldin {
				found = true
				best = Result{
					Centroids:     mat.DenseCopyOf(centroids),
					Weights:       append([]float64(nil), w...),
					DaviesBouldin: db,
				}
				bestLabels = labels
			}

			s.update(centroids, labels, opts.WLower, opts.WUpper, center)
			if opts.Reweight {
				part, err := partitionOf(labels, opts.K)
				if err != nil {
					return Result{}, fmt.Errorf("%s: iteration %d: %w", op, it, err)
				}
				w = s.reweight(part, opts.Threshold, opts.Compact, w)
			}
		}
		log.Debug("cluster: restart finished",
			"op", op,
			"restart", restart,
			"davies_bouldin", restartBest,
		)
	}

	part, err := partitionOf(bestLabels, opts.K)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	best.Partition = part
	best.Labels = bestLabels
	best.Threshold = opts.Threshold
	best.span = s.span
	log.Debug("cluster: done",
		"op", op,
		"k", opts.K,
		"davies_bouldin", best.DaviesBouldin,
		"boundary", part.TotalBoundary(),
	)
	return best, nil
}

// Distances returns the weighted distance of x to every representative,
// measured with the attribute ranges of the clustered data.
//
// Errors: ErrDimensionMismatch.
func (r Result) Distances(x []float64) ([]float64, error) {
	if len(x) != len(r.span) {
		return nil, ErrDimensionMismatch
	}
	k, _ := r.Centroids.Dims()
	d := make([]float64, k)
	distancesTo(d, x, r.Centroids, r.Weights, r.span)
	return d, nil
}

// Nearest returns the index of the closest representative, the lowest
// index on ties.
//
// Errors: ErrDimensionMismatch.
func (r Result) Nearest(x []float64) (int, error) {
	d, err := r.Distances(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opNearest, err)
	}
	return floats.MinIdx(d), nil
}

// Assign applies the membership rule of r to the rows of data and returns
// their orthopartition (one orthopair per representative) and label sets.
//
// Errors: ErrEmptyData, ErrNaNInf, ErrDimensionMismatch.
func (r Result) Assign(data mat.Matrix) (*orthopair.Orthopartition, []orthopair.LabelSet, error) {
	s, err := newSpace(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opAssign, err)
	}
	if s.dim() != len(r.span) {
		return nil, nil, fmt.Errorf("%s: %w", opAssign, ErrDimensionMismatch)
	}
	s.span = r.span
	labels := s.assign(r.Centroids, r.Weights, r.Threshold)
	k, _ := r.Centroids.Dims()
	part, err := partitionOf(labels, k)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opAssign, err)
	}
	return part, labels, nil
}
