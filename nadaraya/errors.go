// SPDX-License-Identifier: MIT

// Package nadaraya: sentinel error set. Engine entry points return these
// sentinels (possibly wrapped) and tests match them via errors.Is. Shape
// failures raised by the distance primitive are not redeclared here; they
// propagate as trapz.ErrShapeMismatch.

package nadaraya

import "errors"

var (
	// ErrDimensionMismatch indicates the outcome slice does not line up
	// with the curve matrix, or a required input is missing entirely.
	ErrDimensionMismatch = errors.New("nadaraya: outcome and curve dimensions disagree")

	// ErrBandwidth indicates an empty bandwidth grid or a bandwidth that
	// is not strictly positive.
	ErrBandwidth = errors.New("nadaraya: bandwidth grid must be non-empty and strictly positive")

	// ErrIndexOutOfRange indicates a fold referenced a row outside the
	// training set. Fold indices are zero-based.
	ErrIndexOutOfRange = errors.New("nadaraya: fold index out of range")

	// ErrEmptyPartition indicates a missing fold set where one is
	// required, or a fold with an empty train or validate side.
	ErrEmptyPartition = errors.New("nadaraya: at least one non-empty fold required")
)
