// SPDX-License-Identifier: MIT

// Package nadaraya: functional configuration for the regression engine.
// Option constructors validate eagerly and panic on nonsensical values
// (programmer errors); data-dependent failures remain error returns from
// the engine itself.

package nadaraya

import (
	"runtime"

	"github.com/funcdata/funcreg/kernel"
)

// DefaultKernel is the weight function used when WithKernel is absent.
const DefaultKernel = kernel.Gaussian

// options is the gathered configuration consumed by engine entry points.
type options struct {
	kern    kernel.Kernel
	workers int
}

// Option configures Regression and Predict.
type Option func(*options)

// WithKernel selects the weight function from the closed kernel set.
//
// Panics when k is not a defined kernel. Note that the Cubic kernel has
// compact support: when every training curve lies farther than h from a
// query, the total weight is zero and the prediction degenerates to NaN.
func WithKernel(k kernel.Kernel) Option {
	if !k.Valid() {
		panic("nadaraya: WithKernel: kernel outside the defined set")
	}

	return func(o *options) { o.kern = k }
}

// WithWorkers bounds the goroutines used for the per-bandwidth fan-out.
// Zero (the default) selects runtime.GOMAXPROCS(0). Worker count changes
// wall time only, never results.
//
// Panics when n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("nadaraya: WithWorkers: negative worker count")
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions applies user options over defaults and resolves the
// worker count.
func gatherOptions(user ...Option) options {
	o := options{kern: DefaultKernel}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
