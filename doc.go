// Package corner draws corner plots of multidimensional samples, the
// kind of figure used to summarize posterior distributions from MCMC
// runs or other sampling procedures.
//
// # Layout
//
// A corner plot shows every one and two dimensional projection of the
// sample set on a square grid. Panel (i, i) on the diagonal holds the
// marginal distribution of variable i as a histogram; the panel in
// column i, row j below it holds the joint distribution of variables
// i and j as a hexagonally binned density map, optionally overlaid
// with contours enclosing given probability masses. The upper
// triangle, which would only repeat the lower one mirrored, stays
// blank. Tick labels appear on the leftmost column only and axis
// labels on the bottom row only, so the interior panels stay clean.
//
// # Variables
//
// Each dimension is described by a Variable: its name, its samples
// and the display bounds of its axes. The sample slices are parallel,
// element k of every slice belongs to the same draw, so all variables
// must have the same number of samples.
//
//	vars := []corner.Variable{
//	    {Name: "m", Samples: mass, Min: 0.8, Max: 2.2, Label: "mass [Msun]"},
//	    {Name: "r", Samples: radius, Min: 9, Max: 15, Label: "radius [km]"},
//	}
//	fig, err := corner.Corner(vars, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, _ := os.Create("corner.png")
//	defer f.Close()
//	fig.WriteTo(f)
//
// # Options
//
// All appearance is controlled through an explicit Options value, nil
// meaning DefaultOptions: the base color of the ramp, histogram bin
// count and transparency, font sizes, log scaled density shading and
// the contour levels. There is no package level state, so concurrent
// Corner calls with different options do not interfere, and applying
// the same options twice yields the same figure.
//
// The diagonal panels can be titled with the median of the variable
// and its 90% credible interval, stated as asymmetric uncertainties.
// The interval endpoints are the order statistics at ranks 0.05*n and
// 0.95*n, truncating; see the stat subpackage, which also provides
// the histogram binning and the kernel density estimate behind the
// contours.
//
// Figures render through gonum.org/v1/plot: Corner returns a Figure
// holding one *plot.Plot per panel, which can be inspected or tweaked
// before Figure.WriteTo encodes the assembled grid as a PNG.
package corner
