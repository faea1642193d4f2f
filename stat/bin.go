package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Binned is a histogram of samples over a fixed range.
type Binned struct {
	// Edges are the n+1 boundaries of n equal-width bins.
	Edges []float64
	// Count is the number of samples per bin.
	Count []int
	// Density is Count scaled so that the histogram integrates to
	// one over the binned range.
	Density []float64
}

// Bin groups xs into n equal-width bins spanning [lo, hi] and counts
// occurrences in these bins. Bins are half open [e_i, e_i+1) except
// the last, which includes hi. Samples outside the range are ignored
// and do not contribute to Density.
//
// Bin panics if n < 1 or if the range is empty (lo >= hi).
func Bin(xs []float64, lo, hi float64, n int) Binned {
	if n < 1 {
		panic("stat: Bin needs at least one bin")
	}
	if lo >= hi {
		panic("stat: Bin range is empty")
	}

	b := Binned{
		Edges:   floats.Span(make([]float64, n+1), lo, hi),
		Count:   make([]int, n),
		Density: make([]float64, n),
	}
	width := (hi - lo) / float64(n)

	total := 0
	for _, x := range xs {
		if math.IsNaN(x) || x < lo || x > hi {
			continue
		}
		i := int((x - lo) / width)
		if i >= n { // x == hi lands in the last bin
			i = n - 1
		}
		b.Count[i]++
		total++
	}
	if total == 0 {
		return b
	}
	for i, c := range b.Count {
		b.Density[i] = float64(c) / (float64(total) * width)
	}
	return b
}
