package corner

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HexBin is a plot.Plotter that shades hexagonal cells by the number
// of samples falling into them. The tiling is the usual two offset
// rectangular lattices of pointy-topped hexagons: GridSize cells
// across the x extent, GridSize/sqrt(3) rows, each sample assigned
// to the nearest cell center.
type HexBin struct {
	// XYs are the samples. A sample whose nearest cell center
	// lies off the lattice is dropped.
	plotter.XYs

	// GridSize is the number of hexagons spanning the x extent.
	GridSize int

	// XMin, XMax, YMin and YMax give the binning extent. The
	// extent must be non-degenerate when the plotter draws.
	XMin, XMax, YMin, YMax float64

	// MinCount hides cells with fewer samples.
	MinCount int

	// LogScale shades by log count instead of count. Counts below
	// one clamp to the bottom of the ramp.
	LogScale bool

	// VMax pins the count mapped to the top of the ramp; larger
	// counts clamp. Zero scales to the densest cell.
	VMax float64

	// Colors maps the normalized count onto a fill color.
	Colors Colormap
}

var (
	_ plot.Plotter    = (*HexBin)(nil)
	_ plot.DataRanger = (*HexBin)(nil)
)

// NewHexBin bins xys into gridSize hexagons across. The extent
// defaults to the data range; callers usually pin it to the display
// bounds before plotting.
func NewHexBin(xys plotter.XYer, gridSize int) (*HexBin, error) {
	if gridSize < 1 {
		return nil, fmt.Errorf("corner: hexbin grid size %d, need at least 1", gridSize)
	}
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("corner: no samples to bin")
	}
	h := &HexBin{
		XYs:      data,
		GridSize: gridSize,
		MinCount: 1,
		Colors:   NewColormap(String2Color(defaultColor)),
	}
	h.XMin, h.XMax, h.YMin, h.YMax = plotter.XYRange(data)
	return h, nil
}

// lattice returns the cell grid dimensions and cell sizes for the
// current extent.
func (h *HexBin) lattice() (nx, ny int, sx, sy float64) {
	nx = h.GridSize
	ny = int(float64(nx) / math.Sqrt(3))
	if ny < 1 {
		ny = 1
	}
	sx = (h.XMax - h.XMin) / float64(nx)
	sy = (h.YMax - h.YMin) / float64(ny)
	return nx, ny, sx, sy
}

// hexbinCell is one populated hexagon.
type hexbinCell struct {
	x, y  float64 // center in data coordinates
	count int
}

// cells assigns every sample to the nearest hexagon center and
// returns the populated cells, bottom to top. A sample whose nearest
// center lies outside the lattice is dropped.
func (h *HexBin) cells() []hexbinCell {
	if h.XMax <= h.XMin || h.YMax <= h.YMin {
		return nil
	}
	nx, ny, sx, sy := h.lattice()

	type key struct {
		offset bool // second lattice, shifted by half a cell
		ix, iy int
	}
	counts := make(map[key]int)
	for _, p := range h.XYs {
		// position in lattice units
		x := (p.X - h.XMin) / sx
		y := (p.Y - h.YMin) / sy

		ix1, iy1 := math.Round(x), math.Round(y)
		ix2, iy2 := math.Floor(x), math.Floor(y)
		d1 := sq(x-ix1) + 3*sq(y-iy1)
		d2 := sq(x-ix2-0.5) + 3*sq(y-iy2-0.5)
		if d1 < d2 {
			ix, iy := int(ix1), int(iy1)
			if ix >= 0 && ix <= nx && iy >= 0 && iy <= ny {
				counts[key{false, ix, iy}]++
			}
		} else {
			ix, iy := int(ix2), int(iy2)
			if ix >= 0 && ix < nx && iy >= 0 && iy < ny {
				counts[key{true, ix, iy}]++
			}
		}
	}

	cells := make([]hexbinCell, 0, len(counts))
	for k, c := range counts {
		cx := h.XMin + float64(k.ix)*sx
		cy := h.YMin + float64(k.iy)*sy
		if k.offset {
			cx += sx / 2
			cy += sy / 2
		}
		cells = append(cells, hexbinCell{x: cx, y: cy, count: c})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].y != cells[j].y {
			return cells[i].y < cells[j].y
		}
		return cells[i].x < cells[j].x
	})
	return cells
}

func sq(x float64) float64 { return x * x }

// maxCount returns the population of the densest cell.
func (h *HexBin) maxCount() int {
	max := 0
	for _, c := range h.cells() {
		if c.count > max {
			max = c.count
		}
	}
	return max
}

// normalize maps a cell count onto the ramp position in [0, 1].
func (h *HexBin) normalize(count, vmax float64) float64 {
	if count > vmax {
		count = vmax
	}
	if h.LogScale {
		if vmax <= 1 {
			return 1
		}
		if count < 1 {
			count = 1
		}
		return math.Log(count) / math.Log(vmax)
	}
	return count / vmax
}

// Plot implements plot.Plotter. Cells below MinCount stay unfilled
// and no cell outlines are drawn.
func (h *HexBin) Plot(c draw.Canvas, plt *plot.Plot) {
	cells := h.cells()
	if len(cells) == 0 {
		return
	}
	vmax := h.VMax
	if vmax <= 0 {
		vmax = float64(h.maxCount())
	}
	if vmax <= 0 {
		return
	}

	trX, trY := plt.Transforms(&c)
	_, _, sx, sy := h.lattice()

	for _, cl := range cells {
		if cl.count < h.MinCount {
			continue
		}
		t := h.normalize(float64(cl.count), vmax)
		c.FillPolygon(h.Colors.At(t), c.ClipPolygonXY(hexagon(cl.x, cl.y, sx, sy, trX, trY)))
	}
}

// hexagon returns the canvas polygon of the cell centered at (x, y).
// The cell spans sx across and 2*sy/3 from tip to tip.
func hexagon(x, y, sx, sy float64, trX, trY func(float64) vg.Length) []vg.Point {
	corners := [6][2]float64{
		{x - sx/2, y - sy/6},
		{x - sx/2, y + sy/6},
		{x, y + sy/3},
		{x + sx/2, y + sy/6},
		{x + sx/2, y - sy/6},
		{x, y - sy/3},
	}
	poly := make([]vg.Point, len(corners))
	for i, v := range corners {
		poly[i] = vg.Point{X: trX(v[0]), Y: trY(v[1])}
	}
	return poly
}

// DataRange implements plot.DataRanger. It reports the binning
// extent so the axes cover every cell.
func (h *HexBin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return h.XMin, h.XMax, h.YMin, h.YMax
}
