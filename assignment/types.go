package assignment

import "errors"

var (
	// ErrEmptyCost is returned for a nil matrix or one with zero rows or columns.
	ErrEmptyCost = errors.New("assignment: empty cost matrix")

	// ErrNaN is returned when the cost matrix holds NaN or -Inf.
	ErrNaN = errors.New("assignment: cost matrix contains NaN or -Inf")

	// ErrInfeasible is returned when no complete matching of the shorter
	// side exists with finite total cost.
	ErrInfeasible = errors.New("assignment: cost matrix is infeasible")
)

// Unassigned marks a row or column left out of the matching.
const Unassigned = -1

// Result is an optimal assignment.
type Result struct {
	// RowToCol[i] is the column matched to row i, or Unassigned.
	RowToCol []int

	// ColToRow[j] is the row matched to column j, or Unassigned.
	ColToRow []int

	// Cost is the sum of the matched entries.
	Cost float64
}

// Pairs returns the number of matched pairs, min(rows, cols) for any
// successful Solve.
func (r Result) Pairs() int {
	n := 0
	for _, j := range r.RowToCol {
		if j != Unassigned {
			n++
		}
	}
	return n
}
