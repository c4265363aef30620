// SPDX-License-Identifier: MIT

package nadaraya

import "gonum.org/v1/gonum/mat"

// Fold names the training and validation rows of one cross-validation
// fold. Indices are zero-based positions into the rows of the curve
// matrix (and the outcome slice) handed to the engine.
//
// The engine validates every index against the training set size and
// rejects folds with an empty side; it does not require folds to
// partition the data or to be disjoint. That freedom is deliberate:
// hosts bring their own resampling schemes.
type Fold struct {
	// Train lists the rows a model may learn from in this fold.
	Train []int
	// Validate lists the rows scored out-of-fold. Predict ignores it.
	Validate []int
}

// Result aggregates everything one Regression call computes. Matrix
// columns correspond to bandwidths in the order supplied.
type Result struct {
	// Predictions holds the in-sample kernel prediction for every
	// training row (rows) at every bandwidth (columns).
	Predictions *mat.Dense

	// Residuals is outcome minus prediction, same shape as Predictions.
	Residuals *mat.Dense

	// SSE is the in-sample sum of squared residuals per bandwidth.
	SSE []float64

	// R2 is 1 − SSE/TSS per bandwidth, with TSS measured once against
	// the global mean of the outcomes.
	R2 []float64

	// CVError is the bandwidth-by-fold matrix of raw out-of-fold sums of
	// squared validation errors: CVError.At(j, l) scores bandwidth j on
	// fold l. Cells are plain sums — not mean errors, not R²-style
	// scores — so callers can weight folds however they see fit.
	// CVError is nil when Regression received no folds.
	CVError *mat.Dense
}
