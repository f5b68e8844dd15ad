package assignment_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roughstat/assignment"
	"github.com/katalvlaran/roughstat/rng"
)

func benchCost(rows, cols int) *mat.Dense {
	r := rng.New(99)
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

func benchmarkSolve(b *testing.B, rows, cols int) {
	cost := benchCost(rows, cols)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assignment.Solve(cost); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_50x50(b *testing.B)   { benchmarkSolve(b, 50, 50) }
func BenchmarkSolve_200x200(b *testing.B) { benchmarkSolve(b, 200, 200) }
func BenchmarkSolve_100x300(b *testing.B) { benchmarkSolve(b, 100, 300) }
