package fdist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/funcdata/funcreg/trapz"
)

// Pairwise returns the n×n integral L2 distance matrix between the rows of
// curves, each sampled at the grid points t.
//
// The result is symmetric with an exactly zero diagonal: every unordered
// pair is integrated once and the value mirrored, so d(i,j) == d(j,i)
// bit-for-bit.
//
// Returns trapz.ErrShapeMismatch (wrapped) when curves is nil or empty or
// t does not match its column count.
func Pairwise(curves mat.Matrix, t []float64) (*mat.Dense, error) {
	if curves == nil {
		return nil, fmt.Errorf("fdist: nil curve matrix: %w", trapz.ErrShapeMismatch)
	}
	n, m := curves.Dims()
	if n == 0 || m == 0 || len(t) != m {
		return nil, fmt.Errorf("fdist: grid/curve dimensions: %w", trapz.ErrShapeMismatch)
	}

	rows := extractRows(curves)
	out := mat.NewDense(n, n, nil)
	sq := make([]float64, m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := rowDistance(sq, rows[i], rows[j], t)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, d)
			out.Set(j, i, d)
		}
	}

	return out, nil
}

// Cross returns the q×n integral L2 distance matrix between the rows of
// queries and the rows of curves. Both matrices must share the column
// count of t.
//
// Returns trapz.ErrShapeMismatch (wrapped) when either matrix is nil or
// empty or the grids disagree.
func Cross(queries, curves mat.Matrix, t []float64) (*mat.Dense, error) {
	if queries == nil || curves == nil {
		return nil, fmt.Errorf("fdist: nil curve matrix: %w", trapz.ErrShapeMismatch)
	}
	q, qm := queries.Dims()
	n, m := curves.Dims()
	if q == 0 || n == 0 || m == 0 || qm != m || len(t) != m {
		return nil, fmt.Errorf("fdist: grid/curve dimensions: %w", trapz.ErrShapeMismatch)
	}

	refs := extractRows(curves)
	out := mat.NewDense(q, n, nil)
	sq := make([]float64, m)
	qrow := make([]float64, m)
	for i := 0; i < q; i++ {
		mat.Row(qrow, i, queries)
		for j := 0; j < n; j++ {
			d, err := rowDistance(sq, qrow, refs[j], t)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, d)
		}
	}

	return out, nil
}

// rowDistance computes sqrt(∫ (a-b)² dt) using sq as scratch.
func rowDistance(sq, a, b, t []float64) (float64, error) {
	floats.SubTo(sq, a, b)
	floats.Mul(sq, sq)
	v, err := trapz.Value(t, sq)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// extractRows copies a matrix into per-row slices for cheap repeated access.
func extractRows(a mat.Matrix) [][]float64 {
	n, _ := a.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, a)
	}

	return rows
}
