package corner

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestNewHexBinDefaults(t *testing.T) {
	hb, err := NewHexBin(plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 8}}, 20)
	require.NoError(t, err)

	assert.Equal(t, 20, hb.GridSize)
	assert.Equal(t, 1, hb.MinCount)
	assert.Equal(t, 1.0, hb.XMin)
	assert.Equal(t, 3.0, hb.XMax)
	assert.Equal(t, 2.0, hb.YMin)
	assert.Equal(t, 8.0, hb.YMax)
	assert.False(t, hb.LogScale)
	assert.Zero(t, hb.VMax)
}

func TestNewHexBinErrors(t *testing.T) {
	_, err := NewHexBin(plotter.XYs{{X: 1, Y: 2}}, 0)
	assert.Error(t, err)

	_, err = NewHexBin(plotter.XYs{}, 10)
	assert.Error(t, err)

	_, err = NewHexBin(plotter.XYs{{X: math.NaN(), Y: 1}}, 10)
	assert.Error(t, err)
}

func TestHexBinLattice(t *testing.T) {
	hb := &HexBin{GridSize: 10, XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	nx, ny, sx, sy := hb.lattice()
	assert.Equal(t, 10, nx)
	assert.Equal(t, 5, ny)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 2.0, sy)

	hb.GridSize = 1
	nx, ny, _, _ = hb.lattice()
	assert.Equal(t, 1, nx)
	assert.Equal(t, 1, ny)
}

func TestHexBinCells(t *testing.T) {
	xys := plotter.XYs{
		{X: 3, Y: 4}, {X: 3, Y: 4}, {X: 3, Y: 4}, // center of an aligned cell
		{X: 3.5, Y: 5}, {X: 3.5, Y: 5}, // center of an offset cell
		{X: -5, Y: -5}, // off the lattice
	}
	hb, err := NewHexBin(xys, 10)
	require.NoError(t, err)
	hb.XMin, hb.XMax, hb.YMin, hb.YMax = 0, 10, 0, 10

	cells := hb.cells()
	require.Len(t, cells, 2)
	assert.Equal(t, hexbinCell{x: 3, y: 4, count: 3}, cells[0])
	assert.Equal(t, hexbinCell{x: 3.5, y: 5, count: 2}, cells[1])

	total := 0
	for _, c := range cells {
		total += c.count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, hb.maxCount())
}

func TestHexBinDegenerateExtent(t *testing.T) {
	hb, err := NewHexBin(plotter.XYs{{X: 1, Y: 1}, {X: 1, Y: 2}}, 10)
	require.NoError(t, err)
	// All x equal, so the default extent has no width.
	assert.Nil(t, hb.cells())
}

func TestHexBinNormalize(t *testing.T) {
	h := &HexBin{}
	assert.InDelta(t, 0.5, h.normalize(5, 10), 1e-12)
	assert.InDelta(t, 1.0, h.normalize(15, 10), 1e-12) // clamped

	h.LogScale = true
	assert.InDelta(t, 0.0, h.normalize(1, 100), 1e-12)
	assert.InDelta(t, 0.5, h.normalize(10, 100), 1e-12)
	assert.InDelta(t, 1.0, h.normalize(100, 100), 1e-12)
	assert.InDelta(t, 0.0, h.normalize(0.5, 100), 1e-12) // counts below one clamp up
	assert.InDelta(t, 1.0, h.normalize(3, 1), 1e-12)
}

func TestHexBinDataRange(t *testing.T) {
	hb, err := NewHexBin(plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 8}}, 5)
	require.NoError(t, err)
	hb.XMin, hb.XMax, hb.YMin, hb.YMax = 0, 10, -1, 11

	xmin, xmax, ymin, ymax := hb.DataRange()
	assert.Equal(t, 0.0, xmin)
	assert.Equal(t, 10.0, xmax)
	assert.Equal(t, -1.0, ymin)
	assert.Equal(t, 11.0, ymax)
}

// renderHexBin draws hb on a small canvas over the [0,10] extent.
func renderHexBin(hb *HexBin) image.Image {
	p := plot.New()
	p.Add(hb)
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = 0, 10

	c := vgimg.New(3*vg.Centimeter, 3*vg.Centimeter)
	p.Draw(draw.New(c))
	return c.Image()
}

// hasFill reports whether img contains a clearly blue pixel, the top
// of the default white-to-blue ramp.
func hasFill(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if bl > r+0x2000 && bl > g+0x1000 {
				return true
			}
		}
	}
	return false
}

func TestHexBinMinCount(t *testing.T) {
	xys := plotter.XYs{{X: 5, Y: 5}}

	hb, err := NewHexBin(xys, 5)
	require.NoError(t, err)
	hb.XMin, hb.XMax, hb.YMin, hb.YMax = 0, 10, 0, 10
	assert.True(t, hasFill(renderHexBin(hb)), "single sample should fill its cell")

	sparse, err := NewHexBin(xys, 5)
	require.NoError(t, err)
	sparse.XMin, sparse.XMax, sparse.YMin, sparse.YMax = 0, 10, 0, 10
	sparse.MinCount = 2
	assert.False(t, hasFill(renderHexBin(sparse)), "cell below MinCount must stay empty")
}

func TestHexBinInputCopied(t *testing.T) {
	xys := plotter.XYs{{X: 3, Y: 4}, {X: 3, Y: 4}}
	hb, err := NewHexBin(xys, 10)
	require.NoError(t, err)
	hb.XMin, hb.XMax, hb.YMin, hb.YMax = 0, 10, 0, 10

	xys[0].X = 9 // must not reach the plotter
	cells := hb.cells()
	require.Len(t, cells, 1)
	assert.Equal(t, 2, cells[0].count)
}
