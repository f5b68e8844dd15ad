package twosample

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/assignment"
	"github.com/katalvlaran/roughstat/rng"
)

const (
	opStatistic             = "Statistic"
	opRun                   = "Run"
	opMultivariateTwoSample = "MultivariateTwoSample"
)

// Statistic returns the optimal matching cost between the rows of a and b
// under metric, and the number of matched pairs (min(|A|, |B|)).
func Statistic(a, b mat.Matrix, metric Metric) (float64, int, error) {
	d, err := PairwiseDistances(a, b, metric)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opStatistic, err)
	}
	res, err := assignment.Solve(d)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", opStatistic, err)
	}
	return res.Cost, res.Pairs(), nil
}

// MultivariateTwoSample runs the permutation test with DefaultOptions,
// the given number of iterations and base seed, and returns the p-value.
//
// Errors: see Run.
func MultivariateTwoSample(a, b mat.Matrix, iterations int, seed int64) (float64, error) {
	opts := DefaultOptions()
	opts.Iterations = iterations
	opts.Seed = seed
	res, err := Run(context.Background(), a, b, opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMultivariateTwoSample, err)
	}
	return res.PValue, nil
}

// Run computes the observed matching statistic between a and b and its
// permutation p-value over opts.Iterations random splits of the pooled
// rows. Iteration i draws its split from rng.Stream(opts.Seed, i), so the
// result depends only on the inputs and opts, never on opts.Workers.
//
// ctx is checked between iterations; a nil ctx means context.Background().
//
// Errors:
//   - ErrInvalidIterations, ErrInvalidWorkers, ErrUnknownMetric from opts;
//   - ErrEmptySample, ErrDimensionMismatch, ErrNaNInf from the samples;
//   - ctx.Err() when cancelled.
func Run(ctx context.Context, a, b mat.Matrix, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}
	na, nb, _, err := checkPair(a, b)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}
	l, _ := opts.Metric.norm()
	log := opts.logger()

	// Pool A then B; every split statistic reads from one distance table.
	var pool mat.Dense
	pool.Stack(a, b)
	n := na + nb
	dist := selfDistances(rowsOf(&pool), l)

	obs, err := assignment.Solve(dist.Slice(0, na, na, n))
	if err != nil {
		return Result{}, fmt.Errorf("%s: observed: %w", opRun, err)
	}
	log.Debug("twosample: observed statistic",
		"statistic", obs.Cost,
		"matched", obs.Pairs(),
		"size_a", na,
		"size_b", nb,
		"metric", opts.Metric.String(),
	)

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Iterations {
		workers = opts.Iterations
	}

	counts := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go.mod targets 1.21 loop semantics)
		g.Go(func() error {
			buf := mat.NewDense(na, nb, nil)
			done := 0
			for i := w; i < opts.Iterations; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := splitStatistic(dist, na, rng.Stream(opts.Seed, i), buf)
				if err != nil {
					return fmt.Errorf("iteration %d: %w", i, err)
				}
				if obs.Cost <= t {
					counts[w]++
				}
				done++
			}
			log.Debug("twosample: worker finished",
				"worker", w,
				"iterations", done,
				"exceed", counts[w],
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}

	exceed := 0
	for _, c := range counts {
		exceed += c
	}
	res := Result{
		Statistic:  obs.Cost,
		PValue:     float64(exceed) / float64(opts.Iterations),
		Exceed:     exceed,
		Iterations: opts.Iterations,
		Matched:    obs.Pairs(),
	}
	log.Debug("twosample: done",
		"p_value", res.PValue,
		"exceed", res.Exceed,
		"iterations", res.Iterations,
		"workers", workers,
	)
	return res, nil
}

// splitStatistic draws one split of the pooled rows into groups of na and
// n-na and returns the optimal matching cost between them. buf must be
// na×(n-na); it is overwritten.
func splitStatistic(dist *mat.Dense, na int, r *rand.Rand, buf *mat.Dense) (float64, error) {
	n, _ := dist.Dims()
	first, second, err := rng.Split(n, na, r)
	if err != nil {
		return 0, err
	}
	for x, i := range first {
		for y, j := range second {
			buf.Set(x, y, dist.At(i, j))
		}
	}
	res, err := assignment.Solve(buf)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}
