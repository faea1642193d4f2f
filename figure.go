package corner

import (
	"image"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is an assembled corner plot, a square grid of panels with
// the marginal histograms on the diagonal and the pairwise density
// plots below it. The zero Figure is empty; Corner is the usual
// constructor.
type Figure struct {
	// Width and Height give the canvas size.
	Width, Height vg.Length

	// Panels holds the grid, indexed [row][col] from the top left.
	// Entries above the diagonal are nil and stay blank.
	Panels [][]*plot.Plot

	// HPad and WPad set the gap between rows and columns as a
	// fraction of the panel height and width.
	HPad, WPad float64
}

var _ io.WriterTo = (*Figure)(nil)

// N returns the number of grid rows (and columns).
func (f *Figure) N() int { return len(f.Panels) }

// Panel returns the plot at the given grid position. It is nil for
// the blank upper triangle and for positions off the grid.
func (f *Figure) Panel(row, col int) *plot.Plot {
	if row < 0 || row >= len(f.Panels) || col < 0 || col >= len(f.Panels[row]) {
		return nil
	}
	return f.Panels[row][col]
}

// Draw aligns the panel axes on a shared grid and renders every
// panel onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	n := f.N()
	if n == 0 {
		return
	}
	sz := dc.Size()
	tiles := draw.Tiles{
		Rows: n,
		Cols: n,
		PadX: vg.Length(f.WPad) * sz.X / vg.Length(n),
		PadY: vg.Length(f.HPad) * sz.Y / vg.Length(n),
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for row := range f.Panels {
		for col, p := range f.Panels[row] {
			if p != nil {
				p.Draw(canvases[row][col])
			}
		}
	}
}

func (f *Figure) canvas() *vgimg.Canvas {
	c := vgimg.New(f.Width, f.Height)
	f.Draw(draw.New(c))
	return c
}

// Image renders the figure and returns the raster.
func (f *Figure) Image() image.Image {
	return f.canvas().Image()
}

// WriteTo renders the figure and writes it to w as a PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: f.canvas()}
	return png.WriteTo(w)
}
