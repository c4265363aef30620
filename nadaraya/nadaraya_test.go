package nadaraya_test

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/funcdata/funcreg/kernel"
	"github.com/funcdata/funcreg/nadaraya"
	"github.com/funcdata/funcreg/trapz"
)

// constantCurves builds one flat curve per offset over the unit grid, so
// the integral L2 distance between two curves is exactly the absolute
// offset difference. That makes every kernel weight hand-computable.
func constantCurves(offsets []float64, m int) (*mat.Dense, []float64) {
	grid := vec.Linspace(0, 1, m)
	c := mat.NewDense(len(offsets), m, nil)
	for i, v := range offsets {
		for j := 0; j < m; j++ {
			c.Set(i, j, v)
		}
	}

	return c, grid
}

// gaussWeight mirrors the Gaussian weight's written form for test-side
// hand computation.
func gaussWeight(d, h float64) float64 {
	return 2 / math.Sqrt(2*math.Pi) * math.Exp(-0.5*(d/h)*(d/h))
}

// TestRegression_HandComputedWeights cross-checks every in-sample
// prediction at h=1 against the weighted-mean formula expanded by hand
// from the pairwise offsets 0, 1, 2.
func TestRegression_HandComputedWeights(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2}, 5)
	y := []float64{1, 2, 3}

	res, err := nadaraya.Regression(x, grid, y, []float64{1}, nil)
	require.NoError(t, err)

	dist := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	for i := 0; i < 3; i++ {
		num, den := 0.0, 0.0
		for j := 0; j < 3; j++ {
			w := gaussWeight(dist[i][j], 1)
			num += w * y[j]
			den += w
		}
		want := num / den
		assert.InDelta(t, want, res.Predictions.At(i, 0), 1e-12, "prediction row %d", i)
		assert.InDelta(t, y[i]-want, res.Residuals.At(i, 0), 1e-12, "residual row %d", i)
	}
}

// TestRegression_SSEAndR2 verifies the summary columns agree with the
// prediction matrix: SSE sums squared residuals, R² scores against the
// global-mean baseline.
func TestRegression_SSEAndR2(t *testing.T) {
	x, grid := constantCurves([]float64{0, 0.8, 2.5, 3}, 4)
	y := []float64{0.5, 1.5, 2.0, 4.5}
	bandwidths := []float64{0.7, 1.3, 5}

	res, err := nadaraya.Regression(x, grid, y, bandwidths, nil)
	require.NoError(t, err)

	mean := (0.5 + 1.5 + 2.0 + 4.5) / 4
	tss := 0.0
	for _, v := range y {
		tss += (v - mean) * (v - mean)
	}
	for j := range bandwidths {
		sse := 0.0
		for i := range y {
			r := res.Residuals.At(i, j)
			assert.InDelta(t, y[i]-res.Predictions.At(i, j), r, 1e-12)
			sse += r * r
		}
		assert.InDelta(t, sse, res.SSE[j], 1e-12, "SSE column %d", j)
		assert.InDelta(t, 1-sse/tss, res.R2[j], 1e-12, "R2 column %d", j)
	}
}

// TestRegression_LargeBandwidthLimit verifies the flat-weight limit: as
// h → ∞ every prediction collapses to the plain mean of the outcomes.
func TestRegression_LargeBandwidthLimit(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2, 3.5}, 5)
	y := []float64{2, 4, 6, 9}

	res, err := nadaraya.Regression(x, grid, y, []float64{1e8}, nil)
	require.NoError(t, err)

	mean := (2.0 + 4.0 + 6.0 + 9.0) / 4
	for i := range y {
		assert.InDelta(t, mean, res.Predictions.At(i, 0), 1e-8, "row %d must approach the outcome mean", i)
	}
}

// TestRegression_CVErrorRawSums pins all four cells of a 2-bandwidth,
// 2-fold cross-validation: cells are raw sums of squared out-of-fold
// errors, never normalized.
func TestRegression_CVErrorRawSums(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2}, 5)
	y := []float64{1, 2, 3}
	folds := []nadaraya.Fold{
		{Train: []int{0, 1}, Validate: []int{2}},
		{Train: []int{0, 2}, Validate: []int{1}},
	}

	res, err := nadaraya.Regression(x, grid, y, []float64{1, 1e8}, folds)
	require.NoError(t, err)
	require.NotNil(t, res.CVError)

	r, c := res.CVError.Dims()
	require.Equal(t, [2]int{2, 2}, [2]int{r, c}, "bandwidths by folds")

	// h=1, fold 0: predict row 2 from rows {0,1} at distances {2,1}.
	w20, w21 := gaussWeight(2, 1), gaussWeight(1, 1)
	p2 := (w20*y[0] + w21*y[1]) / (w20 + w21)
	assert.InDelta(t, (y[2]-p2)*(y[2]-p2), res.CVError.At(0, 0), 1e-12)

	// h=1, fold 1: row 1 is equidistant from rows {0,2}, so the fold
	// prediction is their plain mean 2 == y[1]; the cell is (near) zero.
	assert.InDelta(t, 0.0, res.CVError.At(0, 1), 1e-20)

	// h=1e8, fold 0: flat weights give prediction 1.5, raw error 2.25 —
	// a value above 1, visibly a sum rather than any normalized score.
	assert.InDelta(t, 2.25, res.CVError.At(1, 0), 1e-6)

	// h=1e8, fold 1: flat weights over {0,2} give exactly y[1].
	assert.InDelta(t, 0.0, res.CVError.At(1, 1), 1e-12)
}

// TestRegression_NoFolds verifies the fold-free path: CVError stays nil
// while the in-sample outputs are fully populated.
func TestRegression_NoFolds(t *testing.T) {
	x, grid := constantCurves([]float64{0, 2}, 3)

	res, err := nadaraya.Regression(x, grid, []float64{1, 3}, []float64{0.5, 1}, nil)
	require.NoError(t, err)
	assert.Nil(t, res.CVError, "no folds means no CV matrix")
	r, c := res.Predictions.Dims()
	assert.Equal(t, [2]int{2, 2}, [2]int{r, c})
}

// TestRegression_CubicKernel verifies kernel selection: with the Cubic
// kernel the predictions follow the compact-support polynomial weights.
func TestRegression_CubicKernel(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2}, 5)
	y := []float64{1, 2, 3}
	h := 3.0

	res, err := nadaraya.Regression(x, grid, y, []float64{h}, nil, nadaraya.WithKernel(kernel.Cubic))
	require.NoError(t, err)

	cubic := func(d float64) float64 {
		u := d / h
		v := 1 - u*u

		return 35.0 / 16.0 * v * v * v
	}
	num := cubic(0)*y[0] + cubic(1)*y[1] + cubic(2)*y[2]
	den := cubic(0) + cubic(1) + cubic(2)
	assert.InDelta(t, num/den, res.Predictions.At(0, 0), 1e-12)
}

// TestPredict_CubicBeyondSupport pins the compact-support degenerate
// documented on WithKernel: when every training curve lies farther than h
// from a query, the total weight is zero and the prediction is NaN.
func TestPredict_CubicBeyondSupport(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1}, 5)
	y := []float64{1, 2}
	newX, _ := constantCurves([]float64{10}, 5)

	out, err := nadaraya.Predict(x, grid, y, []float64{1}, newX,
		[]nadaraya.Fold{{Train: []int{0, 1}}},
		nadaraya.WithKernel(kernel.Cubic))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.At(0, 0)), "zero total weight must surface as NaN")
}

// TestRegression_WorkerCountInvariant verifies worker counts change
// nothing: single-worker and multi-worker runs agree bit-for-bit.
func TestRegression_WorkerCountInvariant(t *testing.T) {
	x, grid := constantCurves([]float64{0, 0.5, 1.2, 2, 3.3}, 6)
	y := []float64{1, 0, 2, 5, 3}
	bandwidths := []float64{0.4, 0.9, 1.7, 4}
	folds := []nadaraya.Fold{
		{Train: []int{0, 1, 2}, Validate: []int{3, 4}},
		{Train: []int{3, 4, 0}, Validate: []int{1, 2}},
	}

	seq, err := nadaraya.Regression(x, grid, y, bandwidths, folds, nadaraya.WithWorkers(1))
	require.NoError(t, err)
	par, err := nadaraya.Regression(x, grid, y, bandwidths, folds, nadaraya.WithWorkers(4))
	require.NoError(t, err)

	assert.True(t, mat.Equal(seq.Predictions, par.Predictions), "predictions must be identical")
	assert.True(t, mat.Equal(seq.Residuals, par.Residuals), "residuals must be identical")
	assert.True(t, mat.Equal(seq.CVError, par.CVError), "CV errors must be identical")
	assert.Equal(t, seq.SSE, par.SSE)
	assert.Equal(t, seq.R2, par.R2)
}

// TestRegression_Idempotent verifies rerunning the exact same inputs
// reproduces every output bit-for-bit.
func TestRegression_Idempotent(t *testing.T) {
	x, grid := constantCurves([]float64{0.3, 1.1, 2.7}, 4)
	y := []float64{-1, 4, 2}
	folds := []nadaraya.Fold{{Train: []int{0, 2}, Validate: []int{1}}}

	a, err := nadaraya.Regression(x, grid, y, []float64{0.8, 2}, folds)
	require.NoError(t, err)
	b, err := nadaraya.Regression(x, grid, y, []float64{0.8, 2}, folds)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.Predictions, b.Predictions))
	assert.True(t, mat.Equal(a.Residuals, b.Residuals))
	assert.True(t, mat.Equal(a.CVError, b.CVError))
	assert.Equal(t, a.SSE, b.SSE)
	assert.Equal(t, a.R2, b.R2)
}

// TestRegression_Validation covers the engine's own failure contract.
func TestRegression_Validation(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2}, 5)
	y := []float64{1, 2, 3}

	_, err := nadaraya.Regression(nil, grid, y, []float64{1}, nil)
	assert.ErrorIs(t, err, nadaraya.ErrDimensionMismatch, "nil curve matrix must error, not panic")

	_, err = nadaraya.Regression(x, grid, []float64{1, 2}, []float64{1}, nil)
	assert.ErrorIs(t, err, nadaraya.ErrDimensionMismatch, "short outcome slice")

	_, err = nadaraya.Regression(x, grid, y, nil, nil)
	assert.ErrorIs(t, err, nadaraya.ErrBandwidth, "empty bandwidth grid")

	_, err = nadaraya.Regression(x, grid, y, []float64{1, 0}, nil)
	assert.ErrorIs(t, err, nadaraya.ErrBandwidth, "zero bandwidth")

	_, err = nadaraya.Regression(x, grid, y, []float64{-2}, nil)
	assert.ErrorIs(t, err, nadaraya.ErrBandwidth, "negative bandwidth")

	_, err = nadaraya.Regression(x, grid, y, []float64{1},
		[]nadaraya.Fold{{Train: []int{0, 3}, Validate: []int{1}}})
	assert.ErrorIs(t, err, nadaraya.ErrIndexOutOfRange, "train index beyond the last row")

	_, err = nadaraya.Regression(x, grid, y, []float64{1},
		[]nadaraya.Fold{{Train: []int{0}, Validate: []int{-1}}})
	assert.ErrorIs(t, err, nadaraya.ErrIndexOutOfRange, "negative validate index")

	_, err = nadaraya.Regression(x, grid, y, []float64{1},
		[]nadaraya.Fold{{Train: []int{0, 1}}})
	assert.ErrorIs(t, err, nadaraya.ErrEmptyPartition, "fold without validation rows")
}

// TestRegression_GridMismatchPropagates verifies a grid/curve mismatch
// surfaces as the integration primitive's sentinel, unchanged.
func TestRegression_GridMismatchPropagates(t *testing.T) {
	x, _ := constantCurves([]float64{0, 1}, 4)

	_, err := nadaraya.Regression(x, []float64{0, 1}, []float64{1, 2}, []float64{1}, nil)
	assert.ErrorIs(t, err, trapz.ErrShapeMismatch)
}

// TestPredict_LastFoldWins verifies the documented overwrite contract:
// every fold is evaluated in order and the final fold's training rows
// determine the returned predictions.
func TestPredict_LastFoldWins(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2, 3}, 5)
	y := []float64{1, 2, 3, 10}
	newX, _ := constantCurves([]float64{1}, 5)
	h := []float64{1e8}

	// Flat weights: each fold predicts the mean of its training outcomes.
	folds := []nadaraya.Fold{
		{Train: []int{0, 1}},
		{Train: []int{2, 3}},
	}
	out, err := nadaraya.Predict(x, grid, y, h, newX, folds)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, out.At(0, 0), 1e-6, "last fold trains on {3,10}")

	// Reversing the fold order flips the answer.
	out, err = nadaraya.Predict(x, grid, y, h, newX, []nadaraya.Fold{folds[1], folds[0]})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, out.At(0, 0), 1e-6, "last fold trains on {1,2}")
}

// TestPredict_MatchesInSample verifies that querying a training curve
// with a single all-rows fold reproduces the in-sample prediction exactly.
func TestPredict_MatchesInSample(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1, 2}, 5)
	y := []float64{1, 2, 3}
	bandwidths := []float64{0.6, 1.1}

	res, err := nadaraya.Regression(x, grid, y, bandwidths, nil)
	require.NoError(t, err)

	newX, _ := constantCurves([]float64{0}, 5)
	out, err := nadaraya.Predict(x, grid, y, bandwidths, newX,
		[]nadaraya.Fold{{Train: []int{0, 1, 2}}})
	require.NoError(t, err)

	for j := range bandwidths {
		assert.Equal(t, res.Predictions.At(0, j), out.At(0, j), "bandwidth %d", j)
	}
}

// TestPredict_Validation covers Predict's failure contract, including the
// mandatory fold set.
func TestPredict_Validation(t *testing.T) {
	x, grid := constantCurves([]float64{0, 1}, 4)
	y := []float64{1, 2}
	newX, _ := constantCurves([]float64{0.5}, 4)

	_, err := nadaraya.Predict(x, grid, y, []float64{1}, newX, nil)
	assert.ErrorIs(t, err, nadaraya.ErrEmptyPartition, "at least one fold required")

	_, err = nadaraya.Predict(x, grid, y, []float64{1}, newX,
		[]nadaraya.Fold{{Train: nil}})
	assert.ErrorIs(t, err, nadaraya.ErrEmptyPartition, "fold without training rows")

	_, err = nadaraya.Predict(x, grid, y, []float64{1}, nil,
		[]nadaraya.Fold{{Train: []int{0}}})
	assert.ErrorIs(t, err, nadaraya.ErrDimensionMismatch, "nil query matrix")

	_, err = nadaraya.Predict(nil, grid, y, []float64{1}, newX,
		[]nadaraya.Fold{{Train: []int{0}}})
	assert.ErrorIs(t, err, nadaraya.ErrDimensionMismatch, "nil training matrix must error, not panic")

	// Validate is ignored by Predict: an empty one is fine.
	out, err := nadaraya.Predict(x, grid, y, []float64{1}, newX,
		[]nadaraya.Fold{{Train: []int{0, 1}}})
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, [2]int{1, 1}, [2]int{r, c})
}

// TestOptions_PanicOnNonsense verifies option constructors reject
// programmer errors eagerly.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { nadaraya.WithKernel(kernel.Kernel(9)) })
	assert.Panics(t, func() { nadaraya.WithWorkers(-1) })
}
