// Package canon deduplicates near-identical covariate rows and maps every
// original row to its canonical representative.
//
// 🚀 Why canonicalize?
//
//	Regression engines evaluate fitted models at covariate rows gathered
//	from several sources (prediction requests, training data, derived
//	rows such as the covariate mean).  Rows that differ only by noise
//	below a fixed tolerance describe the same design point; evaluating
//	them separately wastes work and, worse, lets downstream consumers
//	see two "different" answers for the same input.
//
// ✨ The contract:
//   - blocks are concatenated in the order given (nil blocks are skipped)
//   - two rows merge when every coordinate differs by at most Tolerance;
//     a difference of exactly Tolerance still merges
//   - the representative keeps the values of the group's first row in
//     concatenation order
//   - representatives come back in a deterministic total order: ascending
//     by the first coordinate, ties broken by the remaining coordinates
//     in descending lexicographic order
//   - the index slice maps every input row (concatenation order) to the
//     first representative within Tolerance, scanning representatives in
//     their returned order
//
// ⚙️ Usage:
//
//	import "github.com/funcdata/funcreg/canon"
//
//	rows, idx, err := canon.Rows(xpred, xfit, xbar)
//	// rows.RawRowView(idx[0]) is the canonical form of xpred's first row
//
// Performance: O(R²·p) time for R input rows of p coordinates; R is small
// in practice (one row per design point).
package canon
