package twosample_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/rng"
	"github.com/katalvlaran/roughstat/twosample"
)

const eps = 1e-9

// gaussian returns an n×d sample with independent N(shift, 1) entries.
func gaussian(r *rand.Rand, n, d int, shift float64) *mat.Dense {
	data := make([]float64, n*d)
	for i := range data {
		data[i] = r.NormFloat64() + shift
	}
	return mat.NewDense(n, d, data)
}

// TwoSampleSuite shares two fixed Gaussian samples across the tests.
type TwoSampleSuite struct {
	suite.Suite
	a, b *mat.Dense
}

func (s *TwoSampleSuite) SetupTest() {
	r := rng.New(7)
	s.a = gaussian(r, 10, 3, 0)
	s.b = gaussian(r, 12, 3, 0.5)
}

func (s *TwoSampleSuite) TestSeedDeterminism() {
	opts := twosample.DefaultOptions()
	opts.Iterations = 200
	opts.Seed = 11

	first, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)
	second, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)
	s.Equal(first, second)
}

// TestWorkersDoNotChangeResult: every iteration owns its seed+i stream.
func (s *TwoSampleSuite) TestWorkersDoNotChangeResult() {
	opts := twosample.DefaultOptions()
	opts.Iterations = 150
	opts.Seed = 3
	want, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)

	for _, w := range []int{0, 2, 4, 7, 500} {
		opts.Workers = w
		got, err := twosample.Run(context.Background(), s.a, s.b, opts)
		s.Require().NoError(err, "workers=%d", w)
		s.Equal(want, got, "workers=%d", w)
	}
}

func (s *TwoSampleSuite) TestResultShape() {
	opts := twosample.DefaultOptions()
	opts.Iterations = 64
	res, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)

	s.Equal(64, res.Iterations)
	s.Equal(10, res.Matched)
	s.InDelta(float64(res.Exceed)/64, res.PValue, eps)
	s.GreaterOrEqual(res.PValue, 0.0)
	s.LessOrEqual(res.PValue, 1.0)

	stat, pairs, err := twosample.Statistic(s.a, s.b, twosample.Euclidean)
	s.Require().NoError(err)
	s.InDelta(stat, res.Statistic, eps)
	s.Equal(10, pairs)
}

func (s *TwoSampleSuite) TestFacadeMatchesRun() {
	p, err := twosample.MultivariateTwoSample(s.a, s.b, 120, 5)
	s.Require().NoError(err)

	opts := twosample.DefaultOptions()
	opts.Iterations = 120
	opts.Seed = 5
	res, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)
	s.InDelta(res.PValue, p, eps)
}

func (s *TwoSampleSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := twosample.Run(ctx, s.a, s.b, twosample.DefaultOptions())
	s.ErrorIs(err, context.Canceled)
}

func (s *TwoSampleSuite) TestLogger() {
	var buf bytes.Buffer
	opts := twosample.DefaultOptions()
	opts.Iterations = 10
	opts.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := twosample.Run(context.Background(), s.a, s.b, opts)
	s.Require().NoError(err)
	s.Contains(buf.String(), "twosample: observed statistic")
	s.Contains(buf.String(), "twosample: done")
}

func TestTwoSampleSuite(t *testing.T) {
	suite.Run(t, new(TwoSampleSuite))
}

// TestIdenticalSamples: T_obs is 0, so no split can do better and p is 1.
func TestIdenticalSamples(t *testing.T) {
	a := gaussian(rng.New(1), 6, 2, 0)
	b := mat.DenseCopyOf(a)

	opts := twosample.DefaultOptions()
	opts.Iterations = 200
	res, err := twosample.Run(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, eps)
	assert.Equal(t, 200, res.Exceed)
	assert.InDelta(t, 1.0, res.PValue, eps)
}

// TestSeparatedSamples: only the original split (or its mirror) matches as expensively.
func TestSeparatedSamples(t *testing.T) {
	r := rng.New(2)
	a := gaussian(r, 6, 2, 0)
	b := gaussian(r, 6, 2, 25)

	p, err := twosample.MultivariateTwoSample(a, b, 300, 0)
	require.NoError(t, err)
	assert.Less(t, p, 0.05)
}

// TestNullPValuesRoughlyUniform draws many datasets from one distribution
// and checks the p-values spread over [0, 1].
func TestNullPValuesRoughlyUniform(t *testing.T) {
	if testing.Short() {
		t.Skip("slow Monte Carlo check")
	}
	const datasets = 60
	r := rng.New(2025)
	ps := make([]float64, datasets)
	below := 0
	for k := range ps {
		a := gaussian(r, 8, 2, 0)
		b := gaussian(r, 8, 2, 0)
		p, err := twosample.MultivariateTwoSample(a, b, 100, int64(k)*1000)
		require.NoError(t, err)
		ps[k] = p
		if p < 0.5 {
			below++
		}
	}
	mean := 0.0
	for _, p := range ps {
		mean += p
	}
	mean /= datasets
	assert.InDelta(t, 0.5, mean, 0.15)
	assert.InDelta(t, datasets/2, below, datasets/4)
}

// TestUnequalSizes: the surplus rows of the larger sample are left unmatched.
func TestUnequalSizes(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		0, 0,
		10, 10,
	})
	b := mat.NewDense(3, 2, []float64{
		0, 1,
		10, 11,
		100, 100,
	})
	stat, pairs, err := twosample.Statistic(a, b, twosample.Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, stat, eps)
	assert.Equal(t, 2, pairs)

	// swapping the roles gives the same matching
	stat2, pairs2, err := twosample.Statistic(b, a, twosample.Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, stat, stat2, eps)
	assert.Equal(t, pairs, pairs2)

	opts := twosample.DefaultOptions()
	opts.Iterations = 50
	res, err := twosample.Run(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Matched)
	assert.InDelta(t, 2.0, res.Statistic, eps)
}

func TestPairwiseDistances_Metrics(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{0, 0})
	b := mat.NewDense(2, 2, []float64{3, 4, 0, -2})

	cases := []struct {
		metric twosample.Metric
		want   []float64
	}{
		{twosample.Euclidean, []float64{5, 2}},
		{twosample.Manhattan, []float64{7, 2}},
		{twosample.Chebyshev, []float64{4, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.metric.String(), func(t *testing.T) {
			d, err := twosample.PairwiseDistances(a, b, tc.metric)
			require.NoError(t, err)
			r, c := d.Dims()
			require.Equal(t, 1, r)
			require.Equal(t, 2, c)
			assert.InDeltaSlice(t, tc.want, d.RawRowView(0), eps)
		})
	}
}

func TestErrors(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	b3 := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 1, 1})
	ctx := context.Background()

	_, err := twosample.MultivariateTwoSample(a, b3, 10, 0)
	assert.ErrorIs(t, err, twosample.ErrDimensionMismatch)

	_, err = twosample.MultivariateTwoSample(a, a, 0, 0)
	assert.ErrorIs(t, err, twosample.ErrInvalidIterations)

	_, err = twosample.MultivariateTwoSample(a, nil, 10, 0)
	assert.ErrorIs(t, err, twosample.ErrEmptySample)

	_, err = twosample.MultivariateTwoSample(&mat.Dense{}, a, 10, 0)
	assert.ErrorIs(t, err, twosample.ErrEmptySample)

	bad := mat.NewDense(1, 2, []float64{math.NaN(), 0})
	_, err = twosample.MultivariateTwoSample(a, bad, 10, 0)
	assert.ErrorIs(t, err, twosample.ErrNaNInf)

	bad = mat.NewDense(1, 2, []float64{0, math.Inf(-1)})
	_, _, err = twosample.Statistic(bad, a, twosample.Euclidean)
	assert.ErrorIs(t, err, twosample.ErrNaNInf)

	opts := twosample.DefaultOptions()
	opts.Workers = -1
	_, err = twosample.Run(ctx, a, a, opts)
	assert.ErrorIs(t, err, twosample.ErrInvalidWorkers)

	opts = twosample.DefaultOptions()
	opts.Metric = twosample.Metric(9)
	_, err = twosample.Run(ctx, a, a, opts)
	assert.ErrorIs(t, err, twosample.ErrUnknownMetric)

	_, err = twosample.PairwiseDistances(a, a, twosample.Metric(-1))
	assert.ErrorIs(t, err, twosample.ErrUnknownMetric)
}

func TestDefaultOptions(t *testing.T) {
	opts := twosample.DefaultOptions()
	assert.Equal(t, twosample.DefaultIterations, opts.Iterations)
	assert.Equal(t, int64(0), opts.Seed)
	assert.Equal(t, twosample.Euclidean, opts.Metric)
	assert.Equal(t, 1, opts.Workers)
	assert.Nil(t, opts.Logger)
	assert.Equal(t, "Metric(9)", twosample.Metric(9).String())
}

// TestPValueCountsCostlierSplits: with A = {0, 1} and B = {100, 101} only
// the original split and its mirror cost 200 to match; the other four cost 2.
// p therefore estimates 2/6, not 1 - 2/6.
func TestPValueCountsCostlierSplits(t *testing.T) {
	a := mat.NewDense(2, 1, []float64{0, 1})
	b := mat.NewDense(2, 1, []float64{100, 101})

	opts := twosample.DefaultOptions()
	opts.Iterations = 3000
	opts.Seed = 8
	res, err := twosample.Run(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, res.Statistic, eps)
	assert.InDelta(t, 1.0/3.0, res.PValue, 0.05)
}
