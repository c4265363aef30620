// SPDX-License-Identifier: MIT

package nadaraya

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/funcdata/funcreg/fdist"
)

// Regression fits Nadaraya–Watson kernel regressions of y on the rows of
// x across a whole bandwidth grid, scoring every bandwidth on the
// supplied cross-validation folds.
//
// Inputs:
//   - x: n×m matrix, one functional covariate (curve) per row.
//   - t: grid of length m the curves are sampled on.
//   - y: n scalar outcomes, aligned with the rows of x.
//   - bandwidths: the bandwidth grid, strictly positive values.
//   - folds: cross-validation folds with zero-based row indices; pass nil
//     to skip cross-validation (Result.CVError is then nil).
//
// Behavior highlights:
//   - predictions are leave-nothing-out: every training row contributes
//     to its own in-sample prediction, exactly as the weighted-mean
//     formula dictates.
//   - CVError cells are raw out-of-fold sums of squared errors.
//   - bandwidth columns are computed independently and may run in
//     parallel (WithWorkers); outputs are written to disjoint columns, so
//     results are identical for every worker count.
//
// Errors:
//   - ErrDimensionMismatch — y is not aligned with x, or x is nil or empty.
//   - ErrBandwidth — empty grid, or a non-positive/NaN bandwidth.
//   - ErrIndexOutOfRange — a fold references a row outside [0, n).
//   - ErrEmptyPartition — a fold has an empty train or validate side.
//   - trapz.ErrShapeMismatch — t does not match the curve columns
//     (propagated unchanged from the distance primitive).
//
// Complexity: O(n²·m) for distances, plus O(nh·n²) for weighting.
func Regression(x mat.Matrix, t, y, bandwidths []float64, folds []Fold, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if x == nil {
		return nil, ErrDimensionMismatch
	}
	n, _ := x.Dims()
	if n == 0 || len(y) != n {
		return nil, ErrDimensionMismatch
	}
	if err := checkBandwidths(bandwidths); err != nil {
		return nil, err
	}
	if err := checkFolds(folds, n, true); err != nil {
		return nil, err
	}

	dist, err := fdist.Pairwise(x, t)
	if err != nil {
		return nil, err
	}

	nh := len(bandwidths)
	res := &Result{
		Predictions: mat.NewDense(n, nh, nil),
		Residuals:   mat.NewDense(n, nh, nil),
		SSE:         make([]float64, nh),
		R2:          make([]float64, nh),
	}
	if len(folds) > 0 {
		res.CVError = mat.NewDense(nh, len(folds), nil)
	}

	// R² baseline: total sum of squares against the global outcome mean.
	mean := stat.Mean(y, nil)
	tss := 0.0
	for _, v := range y {
		d := v - mean
		tss += d * d
	}

	fs := splitFolds(dist, y, folds)
	maxTrain := 0
	for _, f := range fs {
		if len(f.yTrain) > maxTrain {
			maxTrain = len(f.yTrain)
		}
	}

	// One bandwidth per task; every task writes its own output column.
	parallelFor(nh, o.workers, func(j int) {
		h := bandwidths[j]

		w := make([]float64, n)
		sse := 0.0
		for i := 0; i < n; i++ {
			o.kern.Weights(w, dist.RawRowView(i), h)
			p := floats.Dot(w, y) / floats.Sum(w)
			res.Predictions.Set(i, j, p)
			r := y[i] - p
			res.Residuals.Set(i, j, r)
			sse += r * r
		}
		res.SSE[j] = sse
		res.R2[j] = 1 - sse/tss

		wt := make([]float64, maxTrain)
		for l, f := range fs {
			ww := wt[:len(f.yTrain)]
			cv := 0.0
			for i := range f.yVal {
				o.kern.Weights(ww, f.dist.RawRowView(i), h)
				p := floats.Dot(ww, f.yTrain) / floats.Sum(ww)
				d := f.yVal[i] - p
				cv += d * d
			}
			res.CVError.Set(j, l, cv)
		}
	})

	return res, nil
}

// Predict evaluates Nadaraya–Watson predictions for new curves against
// the training set, one column per bandwidth.
//
// Folds are replayed in order and each pass overwrites the previous one,
// so the returned predictions reflect the final fold's training rows.
// Callers wanting predictions from the full training set pass exactly one
// fold listing every row in Train; Validate is ignored here.
//
// Inputs mirror Regression, plus:
//   - newX: q×m matrix of query curves on the same grid t.
//   - folds: at least one fold with a non-empty Train side.
//
// Errors: as Regression, with ErrEmptyPartition additionally covering an
// empty fold set, and ErrDimensionMismatch a nil x or newX.
//
// Complexity: O(q·n·m) for distances, plus O(nh·q·n) per fold.
func Predict(x mat.Matrix, t, y, bandwidths []float64, newX mat.Matrix, folds []Fold, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)

	if x == nil || newX == nil {
		return nil, ErrDimensionMismatch
	}
	n, _ := x.Dims()
	if n == 0 || len(y) != n {
		return nil, ErrDimensionMismatch
	}
	if err := checkBandwidths(bandwidths); err != nil {
		return nil, err
	}
	if len(folds) == 0 {
		return nil, ErrEmptyPartition
	}
	if err := checkFolds(folds, n, false); err != nil {
		return nil, err
	}

	cross, err := fdist.Cross(newX, x, t)
	if err != nil {
		return nil, err
	}

	nq, _ := cross.Dims()
	nh := len(bandwidths)
	out := mat.NewDense(nq, nh, nil)

	for _, f := range folds {
		yTrain := gather(y, f.Train)
		sub := gatherCols(cross, f.Train)
		parallelFor(nh, o.workers, func(j int) {
			h := bandwidths[j]
			w := make([]float64, len(yTrain))
			for i := 0; i < nq; i++ {
				o.kern.Weights(w, sub.RawRowView(i), h)
				out.Set(i, j, floats.Dot(w, yTrain)/floats.Sum(w))
			}
		})
	}

	return out, nil
}

// foldData is one fold's slice of the precomputed distance matrix:
// validation rows against training columns, plus the matching outcomes.
type foldData struct {
	dist   *mat.Dense
	yTrain []float64
	yVal   []float64
}

// splitFolds materializes the validate×train distance submatrix and the
// outcome slices for every fold.
func splitFolds(dist *mat.Dense, y []float64, folds []Fold) []foldData {
	out := make([]foldData, len(folds))
	for l, f := range folds {
		sub := mat.NewDense(len(f.Validate), len(f.Train), nil)
		for i, vi := range f.Validate {
			row := dist.RawRowView(vi)
			dst := sub.RawRowView(i)
			for j, ti := range f.Train {
				dst[j] = row[ti]
			}
		}
		out[l] = foldData{
			dist:   sub,
			yTrain: gather(y, f.Train),
			yVal:   gather(y, f.Validate),
		}
	}

	return out
}

// gatherCols copies the named columns of m, keeping all rows.
func gatherCols(m *mat.Dense, cols []int) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, len(cols), nil)
	for i := 0; i < r; i++ {
		src := m.RawRowView(i)
		dst := out.RawRowView(i)
		for j, c := range cols {
			dst[j] = src[c]
		}
	}

	return out
}

// gather copies y at the given indices.
func gather(y []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, k := range idx {
		out[i] = y[k]
	}

	return out
}

// checkBandwidths rejects an empty grid and any non-positive or NaN
// bandwidth.
func checkBandwidths(bandwidths []float64) error {
	if len(bandwidths) == 0 {
		return ErrBandwidth
	}
	for _, h := range bandwidths {
		if h <= 0 || math.IsNaN(h) {
			return ErrBandwidth
		}
	}

	return nil
}

// checkFolds validates fold indices against the training set size.
// needValidate additionally requires a non-empty validate side, which
// Regression needs and Predict does not.
func checkFolds(folds []Fold, n int, needValidate bool) error {
	for _, f := range folds {
		if len(f.Train) == 0 || (needValidate && len(f.Validate) == 0) {
			return ErrEmptyPartition
		}
		for _, i := range f.Train {
			if i < 0 || i >= n {
				return ErrIndexOutOfRange
			}
		}
		for _, i := range f.Validate {
			if i < 0 || i >= n {
				return ErrIndexOutOfRange
			}
		}
	}

	return nil
}
