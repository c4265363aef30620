// SPDX-License-Identifier: MIT

package frechet

import "gonum.org/v1/gonum/mat"

// Result aggregates one Regression call. Fit matrices have one row per
// training observation, prediction matrices one row per xpred row; all
// share the grid length as column count. Near-duplicate covariate rows
// are evaluated once and copied, so their output rows agree exactly.
//
// The Pred matrices are nil when Regression received no prediction block.
type Result struct {
	// QuantileFit holds reconstructed quantile functions Q = Q(0) + ∫q
	// at the training covariates.
	QuantileFit *mat.Dense
	// QuantilePred holds reconstructed quantile functions at the
	// prediction covariates.
	QuantilePred *mat.Dense

	// QuantileDensityFit holds fitted (and possibly projected) quantile
	// densities at the training covariates.
	QuantileDensityFit *mat.Dense
	// QuantileDensityPred holds fitted quantile densities at the
	// prediction covariates.
	QuantileDensityPred *mat.Dense

	// DensityFit holds probability densities 1/q at the training
	// covariates. Rows that kept an infeasible unconstrained fit can
	// carry ±Inf where the quantile density crosses zero.
	DensityFit *mat.Dense
	// DensityPred holds probability densities at the prediction
	// covariates.
	DensityPred *mat.Dense

	// QPUsed reports whether any fitted row violated positivity and a
	// projection was therefore attempted.
	QPUsed bool

	// QPFailures counts flagged rows whose projection failed (solver
	// absent, solver error, or malformed solution). Those rows keep
	// their unconstrained OLS fit and are logged as warnings.
	QPFailures int
}
