// SPDX-License-Identifier: MIT

// Package nadaraya implements Nadaraya–Watson kernel regression for
// functional covariates: curves sampled on a shared grid, scalar outcomes.
//
// 🚀 What is Nadaraya–Watson regression?
//
//	The prediction at a covariate is a kernel-weighted mean of observed
//	outcomes, with weights decaying in the distance between covariates:
//
//	  ŷ(c) = Σᵢ K(d(c, cᵢ)/h) · yᵢ  /  Σᵢ K(d(c, cᵢ)/h)
//
//	Here d is the integral L2 distance between curves (package fdist),
//	K is a kernel from the closed set in package kernel, and h is a
//	bandwidth.  The engine evaluates a whole bandwidth grid at once and
//	scores each bandwidth by cross-validation over caller-supplied folds.
//
// ✨ Key features:
//   - one pass computes in-sample predictions, residuals, SSE and R² for
//     every bandwidth
//   - cross-validation bookkeeping: CVError(j, l) is the raw out-of-fold
//     sum of squared validation errors of bandwidth j on fold l — sums,
//     never normalized scores, so fold sizes stay visible to the caller
//   - out-of-sample Predict that replays the supplied folds in order,
//     each pass overwriting the last: the result reflects the final
//     fold's training rows
//   - deterministic parallel fan-out over bandwidths (WithWorkers);
//     worker counts change wall time, never results
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/nadaraya"
//
//	folds := []nadaraya.Fold{
//	  {Train: []int{0, 1, 2}, Validate: []int{3, 4}},
//	  {Train: []int{3, 4, 0}, Validate: []int{1, 2}},
//	}
//	res, err := nadaraya.Regression(curves, grid, y, bandwidths, folds)
//	// pick the bandwidth minimizing summed CVError, then:
//	preds, err := nadaraya.Predict(curves, grid, y, best, newCurves,
//	  []nadaraya.Fold{{Train: allRows}})
//
// Fold indices are zero-based row positions into the training set and are
// validated up front; out-of-range indices fail fast with
// ErrIndexOutOfRange.
//
// Performance:
//
//   - Regression: O(n²·m) for distances + O(nh·n²) for weighting
//   - Predict:    O(q·n·m) for distances + O(nh·q·n) per fold
//   - Memory:     O(n²) for the distance matrix, O(n·nh) for outputs
//
// See example_test.go for a bandwidth-selection walkthrough.
package nadaraya
