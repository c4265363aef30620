// SPDX-License-Identifier: MIT

package frechet

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/funcdata/funcreg/qp"
)

// errNoSolver marks projection attempts made without an injected solver.
var errNoSolver = errors.New("frechet: no solver configured")

// projectRows projects every flagged row of qall (and its left endpoint
// in q0all) onto the feasible quantile-density set, in parallel. Each
// task writes only its own row slice and q0all cell, so worker counts
// cannot change results. The return value counts failed projections;
// failed rows keep their unconstrained fit.
func projectRows(qall *mat.Dense, q0all []float64, flagged []int, t []float64, o options) int {
	m := len(t)
	cvec, cmat := quadWeights(t)
	quad := buildQuadratic(cvec, cmat) // shared, read-only
	gmat := buildConstraints(m)        // shared, read-only

	failed := make([]bool, len(flagged))
	parallelFor(len(flagged), o.workers, func(j int) {
		idx := flagged[j]
		row := qall.RawRowView(idx)

		if o.solver == nil {
			failed[j] = true
			warnKept(o, idx, errNoSolver)

			return
		}

		x, err := o.solver.Solve(rowProblem(quad, gmat, cvec, cmat, q0all[idx], row, o.floor))
		if err == nil && len(x) != m+1 {
			err = fmt.Errorf("frechet: solution length %d, want %d", len(x), m+1)
		}
		if err != nil {
			failed[j] = true
			warnKept(o, idx, err)

			return
		}

		q0all[idx] = x[0]
		copy(row, x[1:])
	})

	failures := 0
	for _, f := range failed {
		if f {
			failures++
		}
	}

	return failures
}

// warnKept logs one projection failure, naming the canonical row that
// keeps its unconstrained fit.
func warnKept(o options, row int, err error) {
	if o.log == nil {
		return
	}
	o.log.Warn("quantile density projection failed; keeping unconstrained fit",
		"row", row, "err", err)
}

// rowProblem assembles the quadratic program projecting one fitted row.
// The decision vector is [Q(0); q(t₁..tₘ)]; the objective ½xᵀDx + dᵀx
// with d = −D·x̂ minimizes the D-weighted distance to the unconstrained
// fit x̂; the constraints are the positivity floor on every sample and
// both signs of the first differences, bounded by 1.5× the fit's own
// differences.
func rowProblem(quad *mat.SymDense, gmat *mat.Dense, cvec []float64, cmat *mat.SymDense, q0 float64, row []float64, floor float64) *qp.Problem {
	m := len(row)

	d := make([]float64, m+1)
	d[0] = -(q0 + floats.Dot(cvec, row))
	var cq mat.VecDense
	cq.MulVec(cmat, mat.NewVecDense(m, row))
	for i := 0; i < m; i++ {
		d[i+1] = -(q0*cvec[i] + cq.AtVec(i))
	}

	h := make([]float64, 3*m-2)
	for i := 0; i < m; i++ {
		h[i] = -floor
	}
	for i := 0; i < m-1; i++ {
		slack := 1.5 * math.Abs(row[i+1]-row[i])
		h[m+i] = slack
		h[2*m-1+i] = slack
	}

	return &qp.Problem{Q: quad, C: d, G: gmat, H: h}
}

// buildQuadratic embeds the grid weights into the full decision space:
//
//	D = | 1  cᵀ |
//	    | c  C  |
func buildQuadratic(cvec []float64, cmat *mat.SymDense) *mat.SymDense {
	m := len(cvec)
	quad := mat.NewSymDense(m+1, nil)
	quad.SetSym(0, 0, 1)
	for i := 0; i < m; i++ {
		quad.SetSym(0, i+1, cvec[i])
		for j := i; j < m; j++ {
			quad.SetSym(i+1, j+1, cmat.At(i, j))
		}
	}

	return quad
}

// buildConstraints lays out the inequality matrix shared by every row's
// problem: m positivity rows, then both signs of the m−1 first
// differences. Decision column 0 is the left endpoint; it never appears
// in a constraint.
func buildConstraints(m int) *mat.Dense {
	g := mat.NewDense(3*m-2, m+1, nil)
	for i := 0; i < m; i++ {
		g.Set(i, i+1, -1)
	}
	for i := 0; i < m-1; i++ {
		g.Set(m+i, i+1, -1)
		g.Set(m+i, i+2, 1)
		g.Set(2*m-1+i, i+1, 1)
		g.Set(2*m-1+i, i+2, -1)
	}

	return g
}

// quadWeights derives the weight vector c and matrix C that give the
// decision space its Wasserstein-motivated geometry. bm carries the
// trapezoid weight of each grid sample; the boundary term uses the final
// spacing with a 0.1 scale on its outer product, interior terms average
// adjacent spacings with a 0.5 scale. Both scales are part of the
// defined quadratic form.
func quadWeights(t []float64) ([]float64, *mat.SymDense) {
	m := len(t)
	dt := make([]float64, m-1)
	for i := range dt {
		dt[i] = t[i+1] - t[i]
	}

	bm := make([]float64, m)
	bm[0] = 0.5 * dt[0]
	for i := 1; i < m-1; i++ {
		bm[i] = 0.5 * (dt[i-1] + dt[i])
	}
	bm[m-1] = 0.5 * dt[m-2]

	last := m - 2 // index of the final spacing

	cvec := make([]float64, m)
	for i := range cvec {
		cvec[i] = 0.5 * dt[last] * bm[i]
	}
	cmat := mat.NewSymDense(m, nil)
	addScaledOuter(cmat, 0.1*dt[last], bm)

	// Interior terms reuse the bm prefix of length k+2, zero-padded to
	// the full grid.
	bk := make([]float64, m)
	for k := 0; k < last; k++ {
		copy(bk[:k+2], bm[:k+2])
		for i := k + 2; i < m; i++ {
			bk[i] = 0
		}
		w := 0.5 * (dt[k] + dt[k+1])
		floats.AddScaled(cvec, w, bk)
		addScaledOuter(cmat, w, bk)
	}

	return cvec, cmat
}

// addScaledOuter adds w·b·bᵀ onto sym in place.
func addScaledOuter(sym *mat.SymDense, w float64, b []float64) {
	n := len(b)
	for i := 0; i < n; i++ {
		wb := w * b[i]
		for j := i; j < n; j++ {
			sym.SetSym(i, j, sym.At(i, j)+wb*b[j])
		}
	}
}
