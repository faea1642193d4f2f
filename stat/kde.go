package stat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"
)

// BandwidthMethod selects the rule that derives the kernel bandwidth
// factor from the sample count.
type BandwidthMethod int

const (
	// Scott is Scott's rule, n^(-1/(d+4)).
	Scott BandwidthMethod = iota
	// Silverman is Silverman's rule, (n*(d+2)/4)^(-1/(d+4)).
	Silverman
)

// KDEOptions tunes NewKDE.
type KDEOptions struct {
	// Method picks the bandwidth rule. The zero value is Scott.
	Method BandwidthMethod

	// Factor, when positive, fixes the bandwidth factor directly
	// and overrides Method.
	Factor float64
}

// KDE is a bivariate Gaussian kernel density estimate. The kernel
// covariance is the sample covariance scaled by the squared
// bandwidth factor, so the estimate adapts to correlated data.
type KDE struct {
	xs, ys        []float64
	factor        float64
	norm          float64
	ixx, ixy, iyy float64 // inverse kernel covariance
}

// NewKDE fits a Gaussian kernel density estimate to the paired
// samples (x[i], y[i]). It fails for slices of different length,
// fewer than two points, or a singular sample covariance (constant
// or perfectly collinear samples). The inputs are copied.
func NewKDE(x, y []float64, opt KDEOptions) (*KDE, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("stat: mismatched sample counts %d and %d", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return nil, errors.New("stat: need at least two points for a density estimate")
	}

	factor := opt.Factor
	if factor <= 0 {
		factor = bandwidthFactor(opt.Method, n)
	}

	d := mat.NewDense(n, 2, nil)
	for i := range x {
		d.Set(i, 0, x[i])
		d.Set(i, 1, y[i])
	}
	var cov mat.SymDense
	gstat.CovarianceMatrix(&cov, d, nil)
	cov.ScaleSym(factor*factor, &cov)

	var chol mat.Cholesky
	if ok := chol.Factorize(&cov); !ok {
		return nil, errors.New("stat: degenerate samples, covariance is singular")
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("stat: inverting kernel covariance: %w", err)
	}

	return &KDE{
		xs:     append([]float64(nil), x...),
		ys:     append([]float64(nil), y...),
		factor: factor,
		norm:   1 / (2 * math.Pi * math.Sqrt(chol.Det()) * float64(n)),
		ixx:    inv.At(0, 0),
		ixy:    inv.At(0, 1),
		iyy:    inv.At(1, 1),
	}, nil
}

func bandwidthFactor(m BandwidthMethod, n int) float64 {
	const d = 2
	switch m {
	case Silverman:
		return math.Pow(float64(n)*(d+2)/4, -1/(d+4.0))
	default:
		return math.Pow(float64(n), -1/(d+4.0))
	}
}

// Factor returns the bandwidth factor in use.
func (k *KDE) Factor() float64 { return k.factor }

// Eval returns the estimated density at (x, y).
func (k *KDE) Eval(x, y float64) float64 {
	sum := 0.0
	for i := range k.xs {
		dx := x - k.xs[i]
		dy := y - k.ys[i]
		sum += math.Exp(-0.5 * (dx*dx*k.ixx + 2*dx*dy*k.ixy + dy*dy*k.iyy))
	}
	return k.norm * sum
}

// EvalGrid evaluates the density over the cross product of xs and
// ys. The result is row major with x varying fastest: the density at
// (xs[i], ys[j]) is element j*len(xs)+i.
func (k *KDE) EvalGrid(xs, ys []float64) []float64 {
	out := make([]float64, len(xs)*len(ys))
	for j, y := range ys {
		row := out[j*len(xs) : (j+1)*len(xs)]
		for i, x := range xs {
			row[i] = k.Eval(x, y)
		}
	}
	return out
}
