// SPDX-License-Identifier: MIT

// Package frechet: functional configuration for the regression engine.
// Option constructors validate eagerly and panic on nonsensical values
// (programmer errors); data-dependent failures remain error returns from
// the engine itself.

package frechet

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/funcdata/funcreg/qp"
)

// DefaultFloor is the positivity floor imposed on projected quantile
// densities when WithFloor is absent.
const DefaultFloor = 1e-6

// options is the gathered configuration consumed by Regression.
type options struct {
	floor   float64
	solver  qp.Solver
	log     *slog.Logger
	workers int
}

// Option configures Regression.
type Option func(*options)

// WithSolver injects the quadratic-program solver used to project
// infeasible rows. Without one, every flagged row keeps its
// unconstrained fit and counts as a failure. The solver must tolerate
// concurrent Solve calls; passing nil removes a previously set solver.
func WithSolver(s qp.Solver) Option {
	return func(o *options) { o.solver = s }
}

// WithFloor sets the strictly positive lower bound the projection
// enforces on every quantile-density sample.
//
// Panics when v is not positive and finite.
func WithFloor(v float64) Option {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic("frechet: WithFloor: floor must be positive and finite")
	}

	return func(o *options) { o.floor = v }
}

// WithLogger redirects the engine's projection-failure warnings. The
// default is slog.Default(); nil silences them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithWorkers bounds the goroutines used to project flagged rows. Zero
// (the default) selects runtime.GOMAXPROCS(0). Worker count changes wall
// time only, never results.
//
// Panics when n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("frechet: WithWorkers: negative worker count")
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions applies user options over defaults and resolves the
// worker count.
func gatherOptions(user ...Option) options {
	o := options{
		floor: DefaultFloor,
		log:   slog.Default(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
