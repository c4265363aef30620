// SPDX-License-Identifier: MIT

// Package frechet: sentinel error set. Engine entry points return these
// sentinels and tests match them via errors.Is. A failed quadratic
// program is deliberately NOT an error: it degrades to the unconstrained
// fit, surfaces in Result.QPFailures and is logged as a warning.

package frechet

import "errors"

var (
	// ErrDimensionMismatch indicates the covariate, outcome and grid
	// inputs do not line up, or a required input is missing entirely.
	ErrDimensionMismatch = errors.New("frechet: input dimensions disagree")

	// ErrInvalidGrid indicates the probability grid does not rise
	// strictly from exactly 0 to exactly 1.
	ErrInvalidGrid = errors.New("frechet: grid must rise strictly from 0 to 1")

	// ErrSingularModel indicates the normal equations could not be
	// solved, typically from collinear covariates or fewer observations
	// than coefficients.
	ErrSingularModel = errors.New("frechet: singular normal equations")
)
