// Package fdist measures distances between functional observations:
// curves sampled on a shared grid, compared by integral L2 distance.
//
// 🚀 What is fdist?
//
//	Each row of a curve matrix is one function observed at the grid
//	points t.  The distance between two rows is
//
//	  d(i, j) = sqrt( ∫ (c_i(t) - c_j(t))² dt )
//
//	with the integral evaluated by the trapezoid rule on t.
//
// ✨ Key features:
//   - Pairwise: the full symmetric n×n self-distance matrix with an
//     exactly zero diagonal
//   - Cross: the rectangular query-by-reference distance matrix used for
//     out-of-sample prediction
//   - symmetry is structural, not numerical: each unordered pair is
//     integrated once and mirrored
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/fdist"
//
//	d, err := fdist.Pairwise(curves, t) // n×n, d.At(i,i) == 0
//	c, err := fdist.Cross(newCurves, curves, t)
//
// Grid mismatches surface as trapz.ErrShapeMismatch from the underlying
// integration primitive.
//
// Performance:
//
//   - Pairwise: O(n²·m) time, O(n·m) scratch
//   - Cross:    O(q·n·m) time, O(m) scratch
//
// Distance matrices feed the kernel weighting stage of the regression
// engines; see the nadaraya package.
package fdist
