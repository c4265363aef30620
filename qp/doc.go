// SPDX-License-Identifier: MIT

// Package qp declares the quadratic-program solver contract consumed by
// the frechet regression engine.
//
// 🚀 Why only a contract?
//
//	funcreg does not ship a QP solver.  The projection step of Fréchet
//	regression needs one, but solver choice (active set, interior point,
//	ADMM, a cgo binding) is a deployment decision.  The engine therefore
//	consumes the Solver interface and treats any implementation as a
//	black box: a solution vector on success, an error on failure.
//
// ✨ The problem form:
//
//	minimize   (1/2)·xᵀQx + cᵀx
//	subject to G·x ≤ h     (componentwise)
//
//	Q is symmetric positive semidefinite, G stacks all inequality rows.
//	Equality constraints are not part of the form; the engine never
//	produces them.
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/qp"
//
//	solver := qp.SolverFunc(func(p *qp.Problem) ([]float64, error) {
//	    // ... delegate to your optimizer of choice ...
//	})
//	res, err := frechet.Regression(x, q, q0, nil, t, frechet.WithSolver(solver))
//
// A solver must be safe for concurrent use: the engine projects flagged
// rows in parallel, one Solve call per row.
package qp
