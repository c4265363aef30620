package nadaraya_test

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/mat"

	"github.com/funcdata/funcreg/nadaraya"
)

// benchmarkData builds n deterministic smooth curves at m grid points with
// matching outcomes and a small bandwidth grid.
func benchmarkData(n, m int) (*mat.Dense, []float64, []float64, []float64) {
	grid := vec.Linspace(0, 1, m)
	curves := mat.NewDense(n, m, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		shift := float64(i) / float64(n)
		for j, g := range grid {
			curves.Set(i, j, math.Sin(2*math.Pi*g)+shift)
		}
		y[i] = 3*shift + 0.5
	}
	bandwidths := []float64{0.05, 0.1, 0.2, 0.5, 1}

	return curves, grid, y, bandwidths
}

// benchmarkRegression runs the full fit (no folds) at a given worker count.
func benchmarkRegression(b *testing.B, n, m, workers int) {
	curves, grid, y, bandwidths := benchmarkData(n, m)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := nadaraya.Regression(curves, grid, y, bandwidths, nil,
			nadaraya.WithWorkers(workers))
		if err != nil {
			b.Fatalf("Regression failed: %v", err)
		}
	}
}

// BenchmarkRegression_SmallSequential benchmarks 50×50 data on one worker.
func BenchmarkRegression_SmallSequential(b *testing.B) {
	benchmarkRegression(b, 50, 50, 1)
}

// BenchmarkRegression_SmallParallel benchmarks 50×50 data on the default
// worker count.
func BenchmarkRegression_SmallParallel(b *testing.B) {
	benchmarkRegression(b, 50, 50, 0)
}

// BenchmarkRegression_MediumParallel benchmarks 200×100 data on the
// default worker count.
func BenchmarkRegression_MediumParallel(b *testing.B) {
	benchmarkRegression(b, 200, 100, 0)
}

// BenchmarkPredict_Medium benchmarks 50 queries against 200×100 data.
func BenchmarkPredict_Medium(b *testing.B) {
	curves, grid, y, bandwidths := benchmarkData(200, 100)
	queries, _, _, _ := benchmarkData(50, 100)
	all := make([]int, 200)
	for i := range all {
		all[i] = i
	}
	folds := []nadaraya.Fold{{Train: all}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := nadaraya.Predict(curves, grid, y, bandwidths, queries, folds)
		if err != nil {
			b.Fatalf("Predict failed: %v", err)
		}
	}
}
