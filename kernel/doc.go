// Package kernel defines the closed set of kernel weight functions used by
// the regression engines.
//
// 🚀 What is a kernel here?
//
//	A kernel maps a nonnegative distance d and a bandwidth h > 0 to a
//	nonnegative weight.  Regression engines only ever consume weights as
//	ratios (weighted mean of outcomes), so every kernel's leading
//	constant cancels out of predictions.
//
// ✨ The defined kernels:
//   - Gaussian — unbounded support,
//     w(d, h) = (2/√(2π)) · exp(−0.5·(d/h)²).
//     The 2/√(2π) factor is part of the weight's defined form; it is kept
//     verbatim even though it is not the standard normal constant,
//     because downstream ratios are invariant to it.
//   - Cubic — compact support,
//     w(d, h) = (35/16) · (1 − (d/h)²)³ for d/h ∈ [0, 1], else 0.
//     Distances are nonnegative, so no reflection at zero is needed.
//
// The set is closed: Kernel values other than the two constants are
// rejected by option constructors (see nadaraya.WithKernel) and Weight
// panics on them, as misuse is a programmer error rather than a data
// error.
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/kernel"
//
//	w := kernel.Gaussian.Weight(d, h)
//	kernel.Cubic.Weights(dst, distances, h) // vectorized fill
//
// Performance: O(1) per weight, O(n) for Weights.
package kernel
