package twosample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opPairwiseDistances = "PairwiseDistances"

// PairwiseDistances returns the |A|×|B| matrix whose (i, j) entry is the
// metric distance between row i of a and row j of b.
//
// Errors: ErrEmptySample, ErrDimensionMismatch, ErrNaNInf, ErrUnknownMetric.
func PairwiseDistances(a, b mat.Matrix, metric Metric) (*mat.Dense, error) {
	l, err := metric.norm()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwiseDistances, err)
	}
	if _, _, _, err = checkPair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwiseDistances, err)
	}
	return distances(rowsOf(a), rowsOf(b), l), nil
}

// checkPair validates both samples and returns their sizes and dimension.
func checkPair(a, b mat.Matrix) (na, nb, dim int, err error) {
	na, dim, err = checkSample(a, "A")
	if err != nil {
		return 0, 0, 0, err
	}
	nb, dimB, err := checkSample(b, "B")
	if err != nil {
		return 0, 0, 0, err
	}
	if dim != dimB {
		return 0, 0, 0, fmt.Errorf("%w: A has %d columns, B has %d", ErrDimensionMismatch, dim, dimB)
	}
	return na, nb, dim, nil
}

func checkSample(m mat.Matrix, name string) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %s is nil", ErrEmptySample, name)
	}
	rows, cols = m.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("%w: %s is %dx%d", ErrEmptySample, name, rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: %s(%d,%d)", ErrNaNInf, name, i, j)
			}
		}
	}
	return rows, cols, nil
}

// rowsOf copies the rows of m into plain slices for floats.Distance.
func rowsOf(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

func distances(xs, ys [][]float64, l float64) *mat.Dense {
	d := mat.NewDense(len(xs), len(ys), nil)
	for i, x := range xs {
		for j, y := range ys {
			d.Set(i, j, floats.Distance(x, y, l))
		}
	}
	return d
}

// selfDistances is distances(xs, xs, l) filling only one triangle.
func selfDistances(xs [][]float64, l float64) *mat.Dense {
	n := len(xs)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := floats.Distance(xs[i], xs[j], l)
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}
	return d
}
