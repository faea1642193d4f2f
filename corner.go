package corner

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/corner/stat"
)

// gridN is the contour evaluation resolution per axis.
const gridN = 100

// -------------------------------------------------------------------------
// Variables

// Variable is one dimension of the sample set. The samples of all
// variables passed to Corner are parallel slices: element k of each
// belongs to the same draw.
type Variable struct {
	// Name identifies the variable. Names must be unique within
	// one corner plot.
	Name string

	// Samples are the draws of this variable.
	Samples []float64

	// Min and Max give the display bounds of the variable's axes.
	// Both must be finite with Min < Max. Binning happens over
	// these bounds, not over the sample range.
	Min, Max float64

	// Label is the axis label. Empty falls back to Name.
	Label string
}

func (v Variable) label() string {
	if v.Label != "" {
		return v.Label
	}
	return v.Name
}

// validate rejects variable sets Corner cannot plot.
func validate(vars []Variable) error {
	if len(vars) == 0 {
		return errors.New("corner: no variables")
	}
	n := len(vars[0].Samples)
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v.Name] {
			return fmt.Errorf("corner: duplicate variable %q", v.Name)
		}
		seen[v.Name] = true
		if len(v.Samples) == 0 {
			return fmt.Errorf("corner: variable %q has no samples", v.Name)
		}
		if len(v.Samples) != n {
			return fmt.Errorf("corner: variable %q has %d samples, %q has %d",
				v.Name, len(v.Samples), vars[0].Name, n)
		}
		if math.IsNaN(v.Min) || math.IsInf(v.Min, 0) ||
			math.IsNaN(v.Max) || math.IsInf(v.Max, 0) {
			return fmt.Errorf("corner: variable %q has non-finite bounds", v.Name)
		}
		if v.Min >= v.Max {
			return fmt.Errorf("corner: variable %q has bounds [%g, %g], need Min < Max",
				v.Name, v.Min, v.Max)
		}
	}
	return nil
}

// -------------------------------------------------------------------------
// Corner

// Corner assembles the corner plot of vars: an NxN grid with the
// marginal distribution of variable i on diagonal panel (i, i) and
// the joint distribution of variables (i, j), i < j, on the panel in
// column i, row j. The upper triangle stays blank.
//
// Diagonal panels show a density histogram over the variable's
// bounds with a step outline, titled with the median and 90%
// credible interval when opt.ShowBounds is set. Off-diagonal panels
// show a hexagonally binned density map, plus smoothed contours of
// the credible regions named by opt.ContourLevels.
//
// Axis tick labels appear only on the leftmost column and axis
// labels only on the bottom row, so the interior panels stay clean.
//
// A nil opt means DefaultOptions. Corner never modifies vars or the
// sample slices.
func Corner(vars []Variable, opt *Options) (*Figure, error) {
	if err := validate(vars); err != nil {
		return nil, err
	}
	o := opt.defaulted()

	n := len(vars)
	fig := &Figure{
		Width:  o.Width,
		Height: o.Height,
		HPad:   o.HSpace,
		WPad:   o.WSpace,
		Panels: make([][]*plot.Plot, n),
	}
	if fig.Width <= 0 {
		fig.Width = vg.Length(2*n) * vg.Inch
	}
	if fig.Height <= 0 {
		fig.Height = vg.Length(2*n) * vg.Inch
	}
	for row := range fig.Panels {
		fig.Panels[row] = make([]*plot.Plot, n)
	}

	for i := range vars {
		fig.Panels[i][i] = histPanel(vars[i], o, i == 0, i == n-1)
		for j := i + 1; j < n; j++ {
			p, err := densityPanel(vars[i], vars[j], o, i == 0, j == n-1)
			if err != nil {
				return nil, err
			}
			fig.Panels[j][i] = p
		}
	}
	return fig, nil
}

// FormatBounds renders a median and its asymmetric uncertainties the
// conventional way, e.g. "3.14^{+0.16}_{-0.08}".
func FormatBounds(median, upper, lower float64) string {
	return fmt.Sprintf("%.2f^{+%.2f}_{-%.2f}", median, upper, lower)
}

// -------------------------------------------------------------------------
// Panels

// histPanel builds a diagonal panel: the distribution of v binned
// over its bounds, drawn filled and translucent with a step outline
// on top.
func histPanel(v Variable, o *Options, first, last bool) *plot.Plot {
	p := plot.New()
	o.Theme.Apply(p)

	b := stat.Bin(v.Samples, v.Min, v.Max, o.Bins)
	base := String2Color(o.Color)

	filled := histogram(b)
	filled.FillColor = SetAlpha(base, o.HistAlpha)
	filled.LineStyle = draw.LineStyle{Color: filled.FillColor, Width: vg.Points(0.25)}

	outline := histogram(b)
	outline.FillColor = nil
	outline.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(1)}

	p.Add(filled, o.Theme.Grid(), outline)
	p.X.Min, p.X.Max = v.Min, v.Max

	if o.ShowBounds {
		p.Title.Text = FormatBounds(stat.Bounds(v.Samples))
		p.Title.TextStyle.Font.Size = o.TitleSize
	}
	decorate(p, o, v.label(), "", last, first)
	return p
}

// histogram converts binned densities into a histogram plotter. The
// caller owns the colors.
func histogram(b stat.Binned) *plotter.Histogram {
	bins := make([]plotter.HistogramBin, len(b.Count))
	for i := range bins {
		bins[i] = plotter.HistogramBin{
			Min:    b.Edges[i],
			Max:    b.Edges[i+1],
			Weight: b.Density[i],
		}
	}
	return &plotter.Histogram{
		Bins:  bins,
		Width: b.Edges[1] - b.Edges[0],
	}
}

// densityPanel builds an off-diagonal panel: the joint distribution
// of (vx, vy) as a hexagonally binned map over the bounds cross
// product, with optional credible region contours.
func densityPanel(vx, vy Variable, o *Options, first, last bool) (*plot.Plot, error) {
	p := plot.New()
	o.Theme.Apply(p)

	xys := make(plotter.XYs, len(vx.Samples))
	for i := range xys {
		xys[i].X = vx.Samples[i]
		xys[i].Y = vy.Samples[i]
	}
	hb, err := NewHexBin(xys, o.Bins)
	if err != nil {
		return nil, fmt.Errorf("corner: %s vs %s: %w", vx.Name, vy.Name, err)
	}
	hb.XMin, hb.XMax = vx.Min, vx.Max
	hb.YMin, hb.YMax = vy.Min, vy.Max
	hb.LogScale = o.LogScale
	if o.VMax != nil {
		hb.VMax = *o.VMax
	}
	hb.Colors = NewColormap(String2Color(o.Color))
	p.Add(hb, o.Theme.Grid())

	if len(o.ContourLevels) > 0 {
		ct, err := contours(vx, vy, o)
		if err != nil {
			return nil, fmt.Errorf("corner: %s vs %s: %w", vx.Name, vy.Name, err)
		}
		p.Add(ct)
	}

	p.X.Min, p.X.Max = vx.Min, vx.Max
	p.Y.Min, p.Y.Max = vy.Min, vy.Max
	decorate(p, o, vx.label(), vy.label(), last, first)
	return p, nil
}

// contours fits a kernel density estimate to the joint samples,
// evaluates it on a gridN x gridN grid over the bounds and traces
// the isolines enclosing the requested probability masses. Masses
// that collapse to the same density threshold are traced once.
func contours(vx, vy Variable, o *Options) (*plotter.Contour, error) {
	kde, err := stat.NewKDE(vx.Samples, vy.Samples, o.ContourKDE)
	if err != nil {
		return nil, err
	}
	xs := floats.Span(make([]float64, gridN), vx.Min, vx.Max)
	ys := floats.Span(make([]float64, gridN), vy.Min, vy.Max)
	z := kde.EvalGrid(xs, ys)
	levels := stat.CredibleLevels(z, o.ContourLevels)

	// The contour palette scale divides by the level span, so equal
	// thresholds, from repeated masses or from masses landing on the
	// same flat stretch of the distribution, must be kept once.
	uniq := levels[:1]
	for _, l := range levels[1:] {
		if l != uniq[len(uniq)-1] {
			uniq = append(uniq, l)
		}
	}
	levels = uniq

	ct := plotter.NewContour(&densityGrid{xs: xs, ys: ys, z: z}, levels,
		rampPalette{o.ContourStyle.Color})
	ct.LineStyles = []draw.LineStyle{o.ContourStyle}
	return ct, nil
}

// densityGrid serves a row major density evaluation as a GridXYZ.
type densityGrid struct {
	xs, ys []float64
	z      []float64
}

var _ plotter.GridXYZ = (*densityGrid)(nil)

func (g *densityGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *densityGrid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }
func (g *densityGrid) X(c int) float64    { return g.xs[c] }
func (g *densityGrid) Y(r int) float64    { return g.ys[r] }

// -------------------------------------------------------------------------
// Axes

// decorate applies the shared axis styling. Panels outside the first
// column lose their y tick labels, panels above the bottom row lose
// their x tick labels, and axis labels appear only where the tick
// labels stay.
func decorate(p *plot.Plot, o *Options, xlabel, ylabel string, showX, showY bool) {
	p.X.Tick.Label.Font.Size = o.TickLabelSize
	p.Y.Tick.Label.Font.Size = o.TickLabelSize
	p.X.Label.TextStyle.Font.Size = o.LabelSize
	p.Y.Label.TextStyle.Font.Size = o.LabelSize
	if showX {
		p.X.Label.Text = xlabel
	} else {
		p.X.Tick.Marker = unlabeledTicks{p.X.Tick.Marker}
	}
	if showY {
		p.Y.Label.Text = ylabel
	} else {
		p.Y.Tick.Marker = unlabeledTicks{p.Y.Tick.Marker}
	}
}

// unlabeledTicks keeps an axis' tick marks aligned with the other
// panels but drops the labels.
type unlabeledTicks struct {
	plot.Ticker
}

var _ plot.Ticker = unlabeledTicks{}

func (u unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
