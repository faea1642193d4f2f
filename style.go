package corner

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// SetAlpha returns c with its alpha channel replaced by a in [0, 1].
// The color stays un-premultiplied.
func SetAlpha(c color.Color, a float64) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	nc.A = uint8(a*0xff + 0.5)
	return nc
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color turns s into a color: "#rrggbb" and "#rrggbbaa" hex
// forms or one of the BuiltinColors names. Unparseable input yields
// a fixed murky fallback color so a typo stays visible instead of
// failing the plot.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b uint8
		a := uint8(0xff)
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// -------------------------------------------------------------------------
// Colormap

// Colormap is a linear ramp between two colors. The density panels
// use a ramp from white to their base hue so sparse cells stay close
// to the background.
type Colormap struct {
	Lo, Hi colorful.Color
}

// NewColormap returns the white-to-c ramp.
func NewColormap(c color.Color) Colormap {
	hi, ok := colorful.MakeColor(c)
	if !ok { // fully transparent input
		hi = colorful.Color{}
	}
	return Colormap{
		Lo: colorful.Color{R: 1, G: 1, B: 1},
		Hi: hi,
	}
}

// At returns the ramp color at t, clamped to [0, 1].
func (m Colormap) At(t float64) color.Color {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return m.Lo.BlendRgb(m.Hi, t)
}

// Palette quantizes the ramp into n evenly spaced colors.
func (m Colormap) Palette(n int) palette.Palette {
	if n < 1 {
		n = 1
	}
	cols := make([]color.Color, n)
	if n == 1 {
		cols[0] = m.Hi
	} else {
		for i := range cols {
			cols[i] = m.At(float64(i) / float64(n-1))
		}
	}
	return rampPalette(cols)
}

type rampPalette []color.Color

var _ palette.Palette = rampPalette(nil)

func (p rampPalette) Colors() []color.Color { return p }
