package assignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opSolve = "Solve"

// Solve returns a minimum-cost assignment for cost. For an r×c matrix
// exactly min(r, c) pairs are matched; the surplus rows (or columns) of
// the longer side are reported as Unassigned.
//
// Errors:
//   - ErrEmptyCost if cost is nil or has a zero dimension;
//   - ErrNaN if any entry is NaN or -Inf;
//   - ErrInfeasible if every complete matching uses a +Inf entry.
func Solve(cost mat.Matrix) (Result, error) {
	if cost == nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrEmptyCost)
	}
	rows, cols := cost.Dims()
	if rows == 0 || cols == 0 {
		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrEmptyCost)
	}

	// The solver works on a wide matrix (nr <= nc).
	transpose := rows > cols
	nr, nc := rows, cols
	if transpose {
		nr, nc = cols, rows
	}
	c := make([]float64, nr*nc)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := cost.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return Result{}, fmt.Errorf("%s: entry (%d,%d): %w", opSolve, i, j, ErrNaN)
			}
			if transpose {
				c[j*nc+i] = v
			} else {
				c[i*nc+j] = v
			}
		}
	}

	s := newSolver(c, nr, nc)
	for cur := 0; cur < nr; cur++ {
		if !s.augment(cur) {
			return Result{}, fmt.Errorf("%s: row %d: %w", opSolve, cur, ErrInfeasible)
		}
	}

	res := Result{}
	if transpose {
		res.RowToCol, res.ColToRow = s.row4col, s.col4row
	} else {
		res.RowToCol, res.ColToRow = s.col4row, s.row4col
	}
	for i, j := range res.RowToCol {
		if j != Unassigned {
			res.Cost += cost.At(i, j)
		}
	}
	if math.IsInf(res.Cost, 1) {
		return Result{}, fmt.Errorf("%s: %w", opSolve, ErrInfeasible)
	}
	return res, nil
}

// solver holds the dual potentials and the partial matching of a wide
// nr×nc problem stored row-major in c.
type solver struct {
	c      []float64
	nr, nc int

	u, v    []float64 // row and column potentials
	col4row []int     // matched column per row
	row4col []int     // matched row per column

	// per-augmentation scratch
	dist      []float64 // shortest reduced path cost to each column
	path      []int     // predecessor row of each column
	sr        []bool    // rows reached
	sc        []bool    // columns settled
	remaining []int     // unsettled columns
}

func newSolver(c []float64, nr, nc int) *solver {
	s := &solver{
		c:         c,
		nr:        nr,
		nc:        nc,
		u:         make([]float64, nr),
		v:         make([]float64, nc),
		col4row:   make([]int, nr),
		row4col:   make([]int, nc),
		dist:      make([]float64, nc),
		path:      make([]int, nc),
		sr:        make([]bool, nr),
		sc:        make([]bool, nc),
		remaining: make([]int, nc),
	}
	for i := range s.col4row {
		s.col4row[i] = Unassigned
	}
	for j := range s.row4col {
		s.row4col[j] = Unassigned
		s.path[j] = Unassigned
	}
	return s
}

// augment grows the matching by row cur along a shortest augmenting path
// and updates the potentials. It reports false when cur cannot reach a
// free column at finite cost.
func (s *solver) augment(cur int) bool {
	sink, minVal := s.shortestPath(cur)
	if sink < 0 {
		return false
	}

	s.u[cur] += minVal
	for i := 0; i < s.nr; i++ {
		if s.sr[i] && i != cur {
			s.u[i] += minVal - s.dist[s.col4row[i]]
		}
	}
	for j := 0; j < s.nc; j++ {
		if s.sc[j] {
			s.v[j] -= minVal - s.dist[j]
		}
	}

	// flip the alternating path back to cur
	j := sink
	for {
		i := s.path[j]
		s.row4col[j] = i
		s.col4row[i], j = j, s.col4row[i]
		if i == cur {
			break
		}
	}
	return true
}

// shortestPath runs a Dijkstra scan over reduced costs starting at row i.
// It returns the first free column reached (or -1) and its path length.
func (s *solver) shortestPath(i int) (int, float64) {
	n := s.nc
	for it := 0; it < n; it++ {
		s.remaining[it] = n - it - 1
		s.dist[it] = math.Inf(1)
		s.sc[it] = false
	}
	for r := range s.sr {
		s.sr[r] = false
	}

	minVal := 0.0
	sink := -1
	for sink == -1 {
		index := -1
		lowest := math.Inf(1)
		s.sr[i] = true

		for it := 0; it < n; it++ {
			j := s.remaining[it]
			r := minVal + s.c[i*s.nc+j] - s.u[i] - s.v[j]
			if r < s.dist[j] {
				s.path[j] = i
				s.dist[j] = r
			}
			// ties prefer a free column: it ends the search sooner
			if s.dist[j] < lowest || (s.dist[j] == lowest && s.row4col[j] == Unassigned) {
				lowest = s.dist[j]
				index = it
			}
		}

		minVal = lowest
		if math.IsInf(minVal, 1) {
			return -1, 0
		}

		j := s.remaining[index]
		if s.row4col[j] == Unassigned {
			sink = j
		} else {
			i = s.row4col[j]
		}
		s.sc[j] = true
		n--
		s.remaining[index] = s.remaining[n]
	}
	return sink, minVal
}
