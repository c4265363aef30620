package trapz

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch indicates x and y do not describe the same non-empty
// sample shape. Both slice and matrix entry points return it; a nil
// matrix argument counts as empty.
var ErrShapeMismatch = errors.New("trapz: x and y must have identical non-empty dimensions")

// Value returns the total trapezoid-rule integral of y sampled at x.
//
// The total is the last element of the running integral computed by
// Cumulative, so the two functions round identically on shared prefixes.
// A single sample integrates to 0.
//
// Returns ErrShapeMismatch unless x and y are non-empty and of equal length.
func Value(x, y []float64) (float64, error) {
	c, err := Cumulative(x, y)
	if err != nil {
		return 0, err
	}

	return c[len(c)-1], nil
}

// Cumulative returns the running trapezoid-rule integral of y sampled at x.
// The result has the same length as x and its first element is always 0.
//
// Returns ErrShapeMismatch unless x and y are non-empty and of equal length.
func Cumulative(x, y []float64) ([]float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, ErrShapeMismatch
	}

	out := make([]float64, len(x))
	// Accumulate doubled trapezoid areas, halving at write time, so the
	// rounding of every prefix matches the rounding of the total.
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1])
		out[i] = 0.5 * sum
	}

	return out, nil
}

// ValueCols integrates every column of y over the matching column of x and
// returns one total per column.
//
// A single-row input (1×m with m > 1) is treated as a transposed sample
// vector and canonicalized to a column before integrating, so row and
// column layouts produce the same totals.
//
// Returns ErrShapeMismatch unless x and y share identical non-empty
// dimensions.
func ValueCols(x, y mat.Matrix) ([]float64, error) {
	x, y, err := canonicalCols(x, y)
	if err != nil {
		return nil, err
	}

	r, c := x.Dims()
	totals := make([]float64, c)
	xcol := make([]float64, r)
	ycol := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(xcol, j, x)
		mat.Col(ycol, j, y)
		v, err := Value(xcol, ycol)
		if err != nil {
			return nil, err
		}
		totals[j] = v
	}

	return totals, nil
}

// CumulativeCols computes the running integral of every column of y over
// the matching column of x. The output has the shape of the input: a
// single-row input comes back as a single row.
//
// Returns ErrShapeMismatch unless x and y share identical non-empty
// dimensions.
func CumulativeCols(x, y mat.Matrix) (*mat.Dense, error) {
	cx, cy, err := canonicalCols(x, y)
	if err != nil {
		return nil, err
	}
	xr, _ := x.Dims()

	r, c := cx.Dims()
	out := mat.NewDense(r, c, nil)
	xcol := make([]float64, r)
	ycol := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(xcol, j, cx)
		mat.Col(ycol, j, cy)
		cum, err := Cumulative(xcol, ycol)
		if err != nil {
			return nil, err
		}
		out.SetCol(j, cum)
	}

	// Restore the caller's row orientation.
	if xr == 1 && r > 1 {
		var t mat.Dense
		t.CloneFrom(out.T())

		return &t, nil
	}

	return out, nil
}

// canonicalCols validates that x and y are non-nil and share non-empty
// dimensions, and transposes a single-row pair into column orientation.
func canonicalCols(x, y mat.Matrix) (mat.Matrix, mat.Matrix, error) {
	if x == nil || y == nil {
		return nil, nil, ErrShapeMismatch
	}
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr == 0 || xc == 0 || xr != yr || xc != yc {
		return nil, nil, ErrShapeMismatch
	}
	if xr == 1 && xc > 1 {
		return x.T(), y.T(), nil
	}

	return x, y, nil
}
