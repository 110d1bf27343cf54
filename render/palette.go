package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	paletteSaturation = 0.68
	paletteValueHigh  = 0.92
	paletteValueLow   = 0.70
)

// Palette holds one distinct color per wheel segment, indexed by the
// segment's position in the entry list.
type Palette []tcell.Color

// NewPalette generates n segment colors by stepping hue around the HSV
// circle. Value alternates between two levels so that neighboring
// segments stay distinguishable even when their hues are close, which
// matters for the wrap pair (first and last segment) at large n.
func NewPalette(n int) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		hue := float64(i) * 360.0 / float64(n)
		value := paletteValueHigh
		if i%2 == 1 {
			value = paletteValueLow
		}
		c := colorful.Hsv(hue, paletteSaturation, value).Clamped()
		r, g, b := c.RGB255()
		p[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return p
}

// At returns the color for segment index i. Out-of-range indices wrap,
// an empty palette yields the empty-wheel fill.
func (p Palette) At(i int) tcell.Color {
	if len(p) == 0 {
		return RgbEmptyWheel
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
