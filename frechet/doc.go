// SPDX-License-Identifier: MIT

// Package frechet implements global Fréchet regression for distributional
// outcomes under the Wasserstein metric, with outcomes represented as
// quantile-density functions.
//
// 🚀 What is Fréchet–Wasserstein regression?
//
//	Each observation is a whole distribution, encoded by its
//	quantile density q(t) (the derivative of the quantile function) on
//	a probability grid t ∈ [0, 1], plus the left endpoint Q(0).  Global
//	Fréchet regression under the Wasserstein metric reduces to ordinary
//	least squares on these coordinates:
//
//	  1. fit    — OLS of [Q(0), q(·)] on the covariates, via the normal
//	              equations, evaluated at every requested design point
//	  2. check  — a fitted quantile density with any strictly negative
//	              entry cannot come from a distribution
//	  3. project — flagged rows are projected back onto the feasible set
//	              by a quadratic program whose quadratic form is derived
//	              from the trapezoid rule on t, with a positivity floor
//	              and first-difference smoothness bounds
//	  4. rebuild — quantile functions Q = Q(0) + ∫q and densities 1/q
//	              are reconstructed from the (possibly projected) rows
//
// ✨ Key features:
//   - evaluation rows are canonicalized first (package canon): requests
//     closer than the tolerance share one fitted row, bit-for-bit
//   - the QP solver is an injected collaborator (package qp); without
//     one, or when a solve fails, the engine logs a warning and keeps
//     the unconstrained OLS row — a failed projection never zeroes data
//   - flagged rows are projected in parallel (WithWorkers) with writes
//     confined to disjoint row slices; results never depend on worker
//     count
//   - Result.QPUsed reports whether any projection was attempted,
//     Result.QPFailures how many rows kept their unconstrained fit
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/funcdata/funcreg/frechet"
//	  "github.com/funcdata/funcreg/qp"
//	)
//
//	res, err := frechet.Regression(xfit, q, q0, xpred, t,
//	  frechet.WithSolver(mySolver),          // any qp.Solver
//	  frechet.WithFloor(1e-6),               // positivity floor
//	)
//	// res.QuantileFit, res.DensityPred, ...
//
// The grid t must rise strictly from 0 to 1; pass nil for a uniform
// default grid. xpred is optional: pass nil to fit without a prediction
// block.
//
// Performance:
//
//   - OLS: O(n·p²) normal equations + O(r·p·m) evaluation
//   - QP assembly: O(m²) per grid + O(m²) per flagged row
//   - Memory: O(r·m) outputs, O(m²) shared quadratic form
//
// See example_test.go for a full fit-project-rebuild walkthrough.
package frechet
