package kernel

import (
	"fmt"
	"math"
)

// Kernel selects one member of the closed set of weight functions.
type Kernel int

const (
	// Gaussian is the unbounded-support weight
	//
	//	w(d, h) = (2/√(2π)) · exp(−0.5·(d/h)²).
	//
	// The leading constant is part of the defined form and deliberately
	// kept as written; engines consume weights as ratios, which are
	// invariant to it.
	Gaussian Kernel = iota

	// Cubic is the compact-support weight
	//
	//	w(d, h) = (35/16) · (1 − (d/h)²)³  for d/h ∈ [0, 1], else 0.
	Cubic
)

// gaussNorm mirrors the written form 2/√(2π) of the Gaussian weight.
var gaussNorm = 2 / math.Sqrt(2*math.Pi)

// cubicNorm is the 35/16 leading constant of the Cubic weight.
const cubicNorm = 35.0 / 16.0

// Valid reports whether k names one of the defined kernels.
func (k Kernel) Valid() bool {
	return k == Gaussian || k == Cubic
}

// String returns the kernel's name, or a numeric placeholder for
// out-of-set values.
func (k Kernel) String() string {
	switch k {
	case Gaussian:
		return "Gaussian"
	case Cubic:
		return "Cubic"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// Weight returns the kernel weight for distance d at bandwidth h.
//
// d is expected nonnegative and h positive; both are the caller's
// responsibility (the engines derive d from a metric and validate h).
// Panics when k is outside the defined set.
func (k Kernel) Weight(d, h float64) float64 {
	u := d / h
	switch k {
	case Gaussian:
		return gaussNorm * math.Exp(-0.5*u*u)
	case Cubic:
		if u < 0 || u > 1 {
			return 0
		}
		v := 1 - u*u

		return cubicNorm * v * v * v
	default:
		panic("kernel: Weight on undefined kernel")
	}
}

// Weights evaluates the kernel over a whole distance slice, writing the
// result into dst. dst and d must have equal length; mismatched lengths
// panic, matching the convention of gonum's floats package.
func (k Kernel) Weights(dst, d []float64, h float64) {
	if len(dst) != len(d) {
		panic("kernel: Weights length mismatch")
	}
	for i, v := range d {
		dst[i] = k.Weight(v, h)
	}
}
