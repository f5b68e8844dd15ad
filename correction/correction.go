package correction

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	opHolmBonferroni       = "HolmBonferroni"
	opHolmBonferroniValues = "HolmBonferroniValues"
	opBonferroni           = "Bonferroni"
)

// HolmBonferroni returns a copy of table sorted ascending by PValue (ties
// keep their input order) with Corrected set to the Holm step-down value.
// The input is not modified.
func HolmBonferroni(table []Hypothesis) ([]Hypothesis, error) {
	for i, h := range table {
		if err := checkP(h.PValue); err != nil {
			return nil, fmt.Errorf("%s: row %d (%q): %w", opHolmBonferroni, i, h.Name, err)
		}
	}

	out := make([]Hypothesis, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PValue < out[j].PValue })

	m := float64(len(out))
	running := 0.0
	for j := range out {
		running = math.Max(running, (m-float64(j))*out[j].PValue)
		out[j].Corrected = math.Min(1, running)
	}
	return out, nil
}

// HolmBonferroniValues returns the Holm-corrected values of p in the
// caller's order.
func HolmBonferroniValues(p []float64) ([]float64, error) {
	if err := checkAll(p); err != nil {
		return nil, fmt.Errorf("%s: %w", opHolmBonferroniValues, err)
	}

	sorted := make([]float64, len(p))
	copy(sorted, p)
	inds := make([]int, len(p))
	// equal p-values receive equal corrections, so sort stability is irrelevant
	floats.Argsort(sorted, inds)

	m := float64(len(p))
	out := make([]float64, len(p))
	running := 0.0
	for j, idx := range inds {
		running = math.Max(running, (m-float64(j))*sorted[j])
		out[idx] = math.Min(1, running)
	}
	return out, nil
}

// Bonferroni returns min(1, m·p_i) for every p_i, in the caller's order.
func Bonferroni(p []float64) ([]float64, error) {
	if err := checkAll(p); err != nil {
		return nil, fmt.Errorf("%s: %w", opBonferroni, err)
	}
	out := make([]float64, len(p))
	copy(out, p)
	floats.Scale(float64(len(p)), out)
	for i, v := range out {
		out[i] = math.Min(1, v)
	}
	return out, nil
}

func checkAll(p []float64) error {
	for i, v := range p {
		if err := checkP(v); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

func checkP(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidPValue, v)
	}
	return nil
}
