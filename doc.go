// Package funcreg is an in-memory toolkit for regression on functional
// and distributional data — curves sampled on a shared grid, and
// distributions represented by quantile-density functions.
//
// 🚀 What is funcreg?
//
//	A small, focused library that brings together:
//		• Numerical primitives: trapezoid-rule integrals, scalar & matrix forms
//		• Functional distance: integral L2 distance between sampled curves
//		• Kernel weighting: Gaussian and compact-support cubic kernels
//		• Nadaraya–Watson: kernel regression over a bandwidth grid with
//		  cross-validated bandwidth scoring
//		• Fréchet–Wasserstein: global Fréchet regression for distributional
//		  outcomes, with quadratic-program projection restoring valid
//		  quantile densities
//
// ✨ Why choose funcreg?
//
//   - Deterministic – identical inputs give identical outputs, worker
//     counts change wall time only
//   - Explicit contracts – sentinel errors, validated shapes, documented
//     index bases
//   - Built on gonum – dense matrices and vector kernels throughout
//   - Pluggable – the quadratic-program solver is an interface you provide
//
// Everything is organized under focused subpackages:
//
//	trapz/    — trapezoid-rule integration (totals, running integrals, matrix forms)
//	fdist/    — pairwise and cross integral L2 distances between curves
//	kernel/   — the closed set of kernel weight functions
//	canon/    — tolerance-based row canonicalization for covariate matrices
//	qp/       — the quadratic-program solver contract consumed by frechet
//	nadaraya/ — the Nadaraya–Watson regression engine
//	frechet/  — the Fréchet–Wasserstein regression engine
//
// Quick sketch:
//
//	curves ──► fdist ──► kernel weights ──► nadaraya predictions
//	quantile densities ──► OLS fit ──► qp projection ──► frechet outputs
//
// Dive into the package docs and examples/ for runnable walkthroughs.
//
//	go get github.com/funcdata/funcreg
package funcreg
