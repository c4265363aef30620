// SPDX-License-Identifier: MIT

package frechet

import (
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/funcdata/funcreg/canon"
	"github.com/funcdata/funcreg/trapz"
)

// Regression fits a global Fréchet regression of quantile-density
// outcomes on covariates, projects infeasible fitted rows back onto
// valid quantile densities, and reconstructs quantile and density
// functions for both the training rows and an optional prediction block.
//
// Inputs:
//   - xfit: n×p covariate matrix, one training observation per row.
//   - q: n×m quantile densities sampled on the grid t.
//   - q0: n left endpoints Q(0), aligned with the rows of q.
//   - xpred: optional k×p covariates to predict at; nil skips the block.
//   - t: probability grid, strictly increasing from exactly 0 to exactly
//     1; nil selects a uniform grid of m points.
//
// Behavior highlights:
//   - evaluation happens at canonical covariate rows: xpred, xfit and
//     the covariate mean are deduplicated within canon.Tolerance first,
//     so near-identical requests share one fitted row, bit-for-bit.
//   - fitted rows with any strictly negative quantile-density sample are
//     projected by the injected qp.Solver; a missing solver or a failed
//     solve keeps the unconstrained row, increments Result.QPFailures
//     and logs a warning. Nothing is ever zeroed.
//   - the covariate mean row participates in the fit-and-project pass
//     but is not part of the returned blocks.
//
// Errors:
//   - ErrDimensionMismatch — inputs disagree on n, p or m, or a required
//     input is nil.
//   - ErrInvalidGrid — t does not rise strictly from 0 to 1 (or fewer
//     than two grid points).
//   - ErrSingularModel — the normal equations are not solvable.
//
// Complexity: O(n·p²+r·p·m) for the fit plus O(m²) per flagged row.
func Regression(xfit mat.Matrix, q mat.Matrix, q0 []float64, xpred mat.Matrix, t []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if xfit == nil || q == nil {
		return nil, ErrDimensionMismatch
	}
	n, p := xfit.Dims()
	qr, m := q.Dims()
	if n == 0 || p == 0 || qr != n || len(q0) != n {
		return nil, ErrDimensionMismatch
	}
	if m < 2 {
		return nil, ErrInvalidGrid
	}
	k := 0
	if xpred != nil {
		kr, kc := xpred.Dims()
		if kr == 0 {
			xpred = nil
		} else if kc != p {
			return nil, ErrDimensionMismatch
		} else {
			k = kr
		}
	}
	if t == nil {
		t = vec.Linspace(0, 1, m)
	} else if len(t) != m {
		return nil, ErrDimensionMismatch
	}
	if err := checkGrid(t); err != nil {
		return nil, err
	}

	// Canonical evaluation rows: prediction block, training block, then
	// the covariate mean. Index layout of ic follows that concatenation.
	xbar := mat.NewDense(1, p, nil)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, xfit)
		xbar.Set(0, j, stat.Mean(col, nil))
	}
	xall, ic, err := canon.Rows(xpred, xfit, xbar)
	if err != nil {
		return nil, err
	}
	r, _ := xall.Dims()

	// OLS through the normal equations: one solve for the quantile
	// densities, one for the left endpoints, both evaluated at every
	// canonical row.
	afit := designMatrix(xfit)
	aall := designMatrix(xall)

	var ata, atq mat.Dense
	ata.Mul(afit.T(), afit)
	atq.Mul(afit.T(), q)
	var bhat mat.Dense
	if err := bhat.Solve(&ata, &atq); err != nil {
		return nil, ErrSingularModel
	}

	var atq0, ahat mat.VecDense
	atq0.MulVec(afit.T(), mat.NewVecDense(n, q0))
	if err := ahat.SolveVec(&ata, &atq0); err != nil {
		return nil, ErrSingularModel
	}

	var qall mat.Dense
	qall.Mul(aall, &bhat)
	var q0fit mat.VecDense
	q0fit.MulVec(aall, &ahat)
	q0all := make([]float64, r)
	for i := range q0all {
		q0all[i] = q0fit.AtVec(i)
	}

	// A valid quantile density is nonnegative everywhere; any strictly
	// negative sample flags the row for projection.
	var flagged []int
	for i := 0; i < r; i++ {
		for _, v := range qall.RawRowView(i) {
			if v < 0 {
				flagged = append(flagged, i)

				break
			}
		}
	}

	res := &Result{}
	if len(flagged) > 0 {
		res.QPUsed = true
		res.QPFailures = projectRows(&qall, q0all, flagged, t, o)
	}

	// Rebuild quantile functions Q = Q(0) + ∫q and densities 1/q from
	// the (possibly projected) quantile densities.
	bigQ := mat.NewDense(r, m, nil)
	dens := mat.NewDense(r, m, nil)
	for i := 0; i < r; i++ {
		row := qall.RawRowView(i)
		cum, cerr := trapz.Cumulative(t, row)
		if cerr != nil {
			return nil, cerr
		}
		qrow := bigQ.RawRowView(i)
		drow := dens.RawRowView(i)
		for j, v := range row {
			qrow[j] = q0all[i] + cum[j]
			drow[j] = 1 / v
		}
	}

	// Slice canonical rows back into the caller's blocks; the trailing
	// mean row stays internal.
	res.QuantileFit = pickRows(bigQ, ic[k:k+n])
	res.QuantileDensityFit = pickRows(&qall, ic[k:k+n])
	res.DensityFit = pickRows(dens, ic[k:k+n])
	if k > 0 {
		res.QuantilePred = pickRows(bigQ, ic[:k])
		res.QuantileDensityPred = pickRows(&qall, ic[:k])
		res.DensityPred = pickRows(dens, ic[:k])
	}

	return res, nil
}

// checkGrid enforces a strictly increasing probability grid spanning
// exactly [0, 1].
func checkGrid(t []float64) error {
	if len(t) < 2 || t[0] != 0 || t[len(t)-1] != 1 {
		return ErrInvalidGrid
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return ErrInvalidGrid
		}
	}

	return nil
}

// designMatrix prepends an intercept column of ones to the covariates.
func designMatrix(x mat.Matrix) *mat.Dense {
	n, p := x.Dims()
	out := mat.NewDense(n, p+1, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		row[0] = 1
		for j := 0; j < p; j++ {
			row[j+1] = x.At(i, j)
		}
	}

	return out
}

// pickRows copies the named canonical rows, in order, into a fresh matrix.
func pickRows(src *mat.Dense, idx []int) *mat.Dense {
	_, m := src.Dims()
	out := mat.NewDense(len(idx), m, nil)
	for i, k := range idx {
		out.SetRow(i, src.RawRowView(k))
	}

	return out
}
