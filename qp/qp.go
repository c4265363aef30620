// SPDX-License-Identifier: MIT

package qp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrInfeasible is the conventional sentinel for a problem whose
// constraint set is empty. Solvers are encouraged, not required, to
// return it; the consuming engine treats every solver error the same way.
var ErrInfeasible = errors.New("qp: constraints are infeasible")

// Problem is one convex quadratic program in the inequality-only form
//
//	minimize   (1/2)·xᵀQx + cᵀx
//	subject to G·x ≤ h
//
// All references are owned by the caller and must be treated as read-only
// by solvers.
type Problem struct {
	// Q is the n×n symmetric quadratic term.
	Q *mat.SymDense
	// C is the length-n linear term.
	C []float64
	// G is the k×n inequality constraint matrix.
	G *mat.Dense
	// H is the length-k inequality bound vector.
	H []float64
}

// Dim returns the number of decision variables n.
func (p *Problem) Dim() int {
	return len(p.C)
}

// NumConstraints returns the number of inequality rows k.
func (p *Problem) NumConstraints() int {
	return len(p.H)
}

// Solver solves quadratic programs. Implementations must be safe for
// concurrent Solve calls and must return a vector of length p.Dim() on
// success.
type Solver interface {
	Solve(p *Problem) ([]float64, error)
}

// SolverFunc adapts an ordinary function to the Solver interface.
type SolverFunc func(p *Problem) ([]float64, error)

// Solve calls f(p).
func (f SolverFunc) Solve(p *Problem) ([]float64, error) {
	return f(p)
}
