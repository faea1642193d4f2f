package corner

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme bundles the data-independent panel styling. Applying a theme
// is an explicit call, never an import side effect, and applying it
// twice leaves the panel in the same state as applying it once.
type Theme struct {
	// Background fills each panel.
	Background color.Color

	// GridLine styles the background grid of every panel.
	GridLine draw.LineStyle

	// TickLength is the length of the axis tick marks.
	TickLength vg.Length

	// TitlePadding separates a panel title from the frame.
	TitlePadding vg.Length
}

var DefaultTheme = Theme{
	Background: color.White,
	GridLine: draw.LineStyle{
		Color:  color.Gray{0xb0},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
	},
	TickLength:   vg.Points(3),
	TitlePadding: vg.Points(2),
}

// Apply styles p.
func (t Theme) Apply(p *plot.Plot) {
	p.BackgroundColor = t.Background
	p.X.Tick.Length = t.TickLength
	p.Y.Tick.Length = t.TickLength
	p.Title.Padding = t.TitlePadding
}

// Grid returns the dashed grid drawn underneath the data of a panel.
// The composer attaches it once per panel; Apply does not, so that
// reapplying a theme cannot stack grids.
func (t Theme) Grid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical = t.GridLine
	g.Horizontal = t.GridLine
	return g
}
