// Package trapz computes trapezoid-rule integrals of sampled functions,
// in scalar and matrix forms, with running (cumulative) variants.
//
// 🚀 What is trapz?
//
//	Given samples y of a function observed at grid points x, trapz
//	approximates the integral of y over x by summing trapezoid areas
//	between consecutive grid points.  It is the numeric backbone for:
//	  • integral L2 distances between curves (fdist)
//	  • quantile reconstruction from quantile densities (frechet)
//
// ✨ Key features:
//   - Value: total integral of one sampled function
//   - Cumulative: running integral, same length as the grid, starts at 0
//   - ValueCols / CumulativeCols: column-wise matrix forms that accept a
//     single-row layout and canonicalize it to columns internally
//   - the total is defined as the last element of the running integral,
//     so Value and Cumulative always agree on shared prefixes
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/trapz"
//
//	x := []float64{0, 0.5, 1}
//	y := []float64{2, 2, 2}
//	total, err := trapz.Value(x, y) // 2.0
//
// Grids may be non-uniform; spacing is taken from x directly.  Inputs are
// not checked for monotonicity: a decreasing grid yields the signed
// integral, exactly as the trapezoid formula dictates.
//
// Performance:
//
//   - Time:   O(n) per column
//   - Memory: O(n) for cumulative forms, O(1) extra for totals
//
// See example_test.go for runnable snippets.
package trapz
