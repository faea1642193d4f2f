package corner

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/corner/stat"
)

// defaultColor is the base hue used when none is configured.
const defaultColor = "#1f78b4"

// Options control how Corner assembles a figure. Every field has a
// default: a nil *Options means DefaultOptions, and zero values of
// the numeric fields are repaired to their defaults, so a sparse
// literal works. Booleans are taken as given; DefaultOptions turns
// ShowBounds on.
type Options struct {
	// Color is the base hue shared by the 1-D histograms and the
	// white-to-color ramp of the 2-D density panels. It accepts
	// "#rrggbb" hex or a BuiltinColors name.
	Color string

	// HistAlpha is the opacity of the filled 1-D histogram bars.
	HistAlpha float64

	// Bins is the resolution shared by the 1-D histograms (number
	// of bins) and the 2-D density panels (hexagons across).
	Bins int

	// LabelSize, TickLabelSize and TitleSize are the font sizes of
	// axis labels, tick labels and the credible interval titles.
	LabelSize     vg.Length
	TickLabelSize vg.Length
	TitleSize     vg.Length

	// ShowBounds titles each diagonal panel with its median and
	// 90% credible interval.
	ShowBounds bool

	// LogScale shades the 2-D density cells by log count instead
	// of count.
	LogScale bool

	// VMax pins the count mapped to the top of the color ramp.
	// Nil lets every panel scale to its own densest cell.
	VMax *float64

	// Width and Height give the figure size. Zero means 2 inches
	// per variable on each side.
	Width, Height vg.Length

	// HSpace and WSpace set the vertical and horizontal gaps
	// between panels as a fraction of the panel size.
	HSpace, WSpace float64

	// ContourLevels lists the probability masses at which density
	// contours are drawn on the 2-D panels, e.g. 0.68 and 0.95.
	// Empty draws no contours.
	ContourLevels []float64

	// ContourKDE tunes the kernel density estimate behind the
	// contours.
	ContourKDE stat.KDEOptions

	// ContourStyle is the line style of the contours.
	ContourStyle draw.LineStyle

	// Theme styles the panels. Nil means DefaultTheme.
	Theme *Theme
}

// DefaultOptions returns the canonical settings: a blue ramp, 20
// bins, titled diagonals and no contours. The Theme is a fresh copy
// of DefaultTheme, so callers may adjust it without touching the
// package default.
func DefaultOptions() *Options {
	th := DefaultTheme
	return &Options{
		Color:         defaultColor,
		HistAlpha:     0.7,
		Bins:          20,
		LabelSize:     vg.Points(14),
		TickLabelSize: vg.Points(10),
		TitleSize:     vg.Points(14),
		ShowBounds:    true,
		HSpace:        0.1,
		WSpace:        0.1,
		ContourStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
		Theme: &th,
	}
}

// defaulted returns a copy of o with zero fields replaced by their
// defaults. A nil receiver yields DefaultOptions.
func (o *Options) defaulted() *Options {
	if o == nil {
		return DefaultOptions()
	}
	def := DefaultOptions()
	v := *o
	if v.Color == "" {
		v.Color = def.Color
	}
	if v.HistAlpha <= 0 {
		v.HistAlpha = def.HistAlpha
	}
	if v.Bins <= 0 {
		v.Bins = def.Bins
	}
	if v.LabelSize <= 0 {
		v.LabelSize = def.LabelSize
	}
	if v.TickLabelSize <= 0 {
		v.TickLabelSize = def.TickLabelSize
	}
	if v.TitleSize <= 0 {
		v.TitleSize = def.TitleSize
	}
	if v.HSpace <= 0 {
		v.HSpace = def.HSpace
	}
	if v.WSpace <= 0 {
		v.WSpace = def.WSpace
	}
	if v.ContourStyle.Color == nil {
		v.ContourStyle.Color = def.ContourStyle.Color
	}
	if v.ContourStyle.Width <= 0 {
		v.ContourStyle.Width = def.ContourStyle.Width
	}
	if v.Theme == nil {
		v.Theme = def.Theme
	}
	return &v
}
