package canon

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Tolerance is the absolute per-coordinate tolerance under which two rows
// are considered the same design point. A coordinate difference of exactly
// Tolerance still merges.
const Tolerance = 0.002

var (
	// ErrDimensionMismatch indicates the blocks disagree on column count.
	ErrDimensionMismatch = errors.New("canon: blocks must share one column count")

	// ErrNoRows indicates no block contributed any row.
	ErrNoRows = errors.New("canon: at least one input row required")
)

// Rows merges near-duplicate rows across the given blocks and returns the
// canonical rows together with an index map.
//
// Blocks are concatenated in the order given; nil blocks are skipped. Two
// rows merge when every coordinate differs by at most Tolerance, and the
// representative keeps the values of the group's first row in
// concatenation order. Representatives are sorted ascending by their first
// coordinate, ties broken by the remaining coordinates in descending
// lexicographic order.
//
// The returned index slice has one entry per input row, in concatenation
// order: the position of the first canonical row within Tolerance of it,
// scanning canonical rows in their sorted order.
func Rows(blocks ...mat.Matrix) (*mat.Dense, []int, error) {
	input, p, err := concatRows(blocks)
	if err != nil {
		return nil, nil, err
	}

	// First occurrence wins: a row joins the first representative within
	// tolerance, otherwise it becomes a new representative itself.
	var reps [][]float64
	for _, row := range input {
		found := false
		for _, rep := range reps {
			if withinTolerance(row, rep) {
				found = true

				break
			}
		}
		if !found {
			cp := make([]float64, p)
			copy(cp, row)
			reps = append(reps, cp)
		}
	}

	sort.Slice(reps, func(i, j int) bool {
		return rowLess(reps[i], reps[j])
	})

	// Map every input row to the first sorted representative it matches.
	idx := make([]int, len(input))
	for i, row := range input {
		for j, rep := range reps {
			if withinTolerance(row, rep) {
				idx[i] = j

				break
			}
		}
	}

	out := mat.NewDense(len(reps), p, nil)
	for i, rep := range reps {
		out.SetRow(i, rep)
	}

	return out, idx, nil
}

// concatRows gathers all block rows into one slice-of-rows, validating a
// shared column count.
func concatRows(blocks []mat.Matrix) ([][]float64, int, error) {
	p := -1
	var input [][]float64
	for _, b := range blocks {
		if b == nil {
			continue
		}
		r, c := b.Dims()
		if r == 0 {
			continue
		}
		if p == -1 {
			p = c
		} else if c != p {
			return nil, 0, ErrDimensionMismatch
		}
		for i := 0; i < r; i++ {
			input = append(input, mat.Row(nil, i, b))
		}
	}
	if len(input) == 0 {
		return nil, 0, ErrNoRows
	}

	return input, p, nil
}

// withinTolerance reports whether every coordinate of a and b differs by at
// most Tolerance.
func withinTolerance(a, b []float64) bool {
	for k := range a {
		if math.Abs(a[k]-b[k]) > Tolerance {
			return false
		}
	}

	return true
}

// rowLess orders rows ascending by coordinate 0, breaking ties by the
// remaining coordinates in descending lexicographic order. No two
// representatives agree on every coordinate (they would have merged), so
// the order is total.
func rowLess(a, b []float64) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	for k := 1; k < len(a); k++ {
		if a[k] != b[k] {
			return a[k] > b[k]
		}
	}

	return false
}
