// Package stat provides the sample statistics behind corner plots:
// quantile summaries for the marginal panels, fixed-range histogram
// binning, a bivariate Gaussian kernel density estimate and the
// conversion of probability masses to density contour levels.
package stat

import (
	"github.com/aclements/go-moremath/stats"
)

// Bounds summarizes a sample by its median and the half-widths of
// the 90% credible interval around it. The interval limits are the
// floor-indexed order statistics at the ranks int(0.05*n) and
// int(0.95*n) of the ascending sorted samples. The ranks are
// deliberately not interpolated; downstream consumers depend on
// these exact values.
//
// Bounds panics if xs is empty. The input is not modified.
func Bounds(xs []float64) (median, upper, lower float64) {
	if len(xs) == 0 {
		panic("stat: Bounds of empty sample")
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()

	n := float64(len(s.Xs))
	median = middle(s.Xs)
	upper = s.Xs[int(0.95*n)] - median
	lower = median - s.Xs[int(0.05*n)]
	return median, upper, lower
}

// middle returns the median of sorted data.
func middle(d []float64) float64 {
	n := len(d)
	if n%2 == 1 {
		return d[(n-1)/2]
	}
	return (d[n/2] + d[n/2-1]) / 2
}
