package stat

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// gauss2 draws n points from a standard bivariate normal with
// correlation rho.
func gauss2(n int, rho float64, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	s := math.Sqrt(1 - rho*rho)
	for i := range x {
		u := rng.NormFloat64()
		v := rng.NormFloat64()
		x[i] = u
		y[i] = rho*u + s*v
	}
	return x, y
}

func TestKDEIntegratesToOne(t *testing.T) {
	x, y := gauss2(500, 0.4, 3)
	k, err := NewKDE(x, y, KDEOptions{})
	if err != nil {
		t.Fatalf("NewKDE: %v", err)
	}
	const m = 121
	xs := floats.Span(make([]float64, m), -6, 6)
	ys := floats.Span(make([]float64, m), -6, 6)
	d := k.EvalGrid(xs, ys)
	step := xs[1] - xs[0]
	mass := 0.0
	for _, v := range d {
		if v < 0 {
			t.Fatalf("negative density %g", v)
		}
		mass += v * step * step
	}
	if math.Abs(mass-1) > 0.05 {
		t.Errorf("total mass %g want about 1", mass)
	}
}

func TestKDEGridMatchesPointwise(t *testing.T) {
	x, y := gauss2(50, 0, 4)
	k, err := NewKDE(x, y, KDEOptions{})
	if err != nil {
		t.Fatalf("NewKDE: %v", err)
	}
	xs := floats.Span(make([]float64, 7), -2, 2)
	ys := floats.Span(make([]float64, 5), -1, 3)
	d := k.EvalGrid(xs, ys)
	for j, yv := range ys {
		for i, xv := range xs {
			if got, want := d[j*len(xs)+i], k.Eval(xv, yv); got != want {
				t.Fatalf("grid (%d,%d): got %g want %g", i, j, got, want)
			}
		}
	}
}

func TestBandwidthFactor(t *testing.T) {
	tests := []struct {
		m    BandwidthMethod
		n    int
		want float64
	}{
		{Scott, 100, math.Pow(100, -1.0/6)},
		{Scott, 64, math.Pow(64, -1.0/6)},
		{Silverman, 100, math.Pow(100, -1.0/6)}, // both rules coincide at two dimensions
		{Silverman, 49, math.Pow(49, -1.0/6)},
	}
	for i, tc := range tests {
		if got := bandwidthFactor(tc.m, tc.n); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("%d: got %g want %g", i, got, tc.want)
		}
	}
}

func TestKDEFixedFactor(t *testing.T) {
	x, y := gauss2(500, 0, 6)
	narrow, err := NewKDE(x, y, KDEOptions{Factor: 0.5})
	if err != nil {
		t.Fatalf("NewKDE: %v", err)
	}
	wide, err := NewKDE(x, y, KDEOptions{Factor: 2})
	if err != nil {
		t.Fatalf("NewKDE: %v", err)
	}
	if narrow.Factor() != 0.5 || wide.Factor() != 2 {
		t.Fatalf("factors not honored: %g, %g", narrow.Factor(), wide.Factor())
	}
	if narrow.Eval(0, 0) <= wide.Eval(0, 0) {
		t.Errorf("more smoothing did not flatten the peak: narrow %g wide %g",
			narrow.Eval(0, 0), wide.Eval(0, 0))
	}
}

func TestKDEDegenerate(t *testing.T) {
	x, y := gauss2(50, 0, 7)

	if _, err := NewKDE(x[:10], y, KDEOptions{}); err == nil {
		t.Errorf("no error for mismatched lengths")
	}
	if _, err := NewKDE(x[:1], y[:1], KDEOptions{}); err == nil {
		t.Errorf("no error for a single point")
	}
	c := make([]float64, len(y))
	if _, err := NewKDE(c, y, KDEOptions{}); err == nil {
		t.Errorf("no error for constant samples")
	}
	if _, err := NewKDE(x, x, KDEOptions{}); err == nil {
		t.Errorf("no error for collinear samples")
	}
}

func TestKDEInputCopied(t *testing.T) {
	x, y := gauss2(20, 0, 8)
	k, err := NewKDE(x, y, KDEOptions{})
	if err != nil {
		t.Fatalf("NewKDE: %v", err)
	}
	before := k.Eval(0.3, -0.2)
	x[0], y[0] = 1000, -1000
	if after := k.Eval(0.3, -0.2); after != before {
		t.Errorf("estimate changed after mutating inputs: %g != %g", after, before)
	}
}
