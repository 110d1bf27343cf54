package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/spin"
	"github.com/mattn/go-runewidth"
)

const (
	pointerRune = '◀'
	hubRune     = '●'
)

// drawWheel rasterizes the disc cell by cell. Each cell offset is
// aspect-corrected, mapped to its screen angle and colored with the
// palette entry of the segment currently under that angle.
func (r *Renderer) drawWheel(l layout, v View, pal Palette) {
	n := len(v.Entries)
	radius := float64(l.radius) + discFudge
	rr := radius * radius

	for y := l.centerRow - l.radius; y <= l.centerRow+l.radius; y++ {
		dy := float64(y - l.centerRow)
		for x := 0; x < l.wheelW; x++ {
			dx := float64(x-l.centerCol) / constants.CellAspect
			if dx*dx+dy*dy > rr {
				continue
			}
			bg := RgbEmptyWheel
			if n > 0 {
				bg = pal.At(segmentAt(screenAngle(dx, dy), v.Rotation, n))
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}

	r.screen.SetContent(l.centerCol, l.centerRow, hubRune, nil,
		tcell.StyleDefault.Foreground(RgbHub).Background(RgbBackground))

	// Pointer sits one cell right of the disc rim, on the 3 o'clock axis
	px := l.centerCol + int(constants.CellAspect*float64(l.radius)) + 1
	if px >= l.wheelW {
		px = l.wheelW - 1
	}
	r.screen.SetContent(px, l.centerRow, pointerRune, nil,
		tcell.StyleDefault.Foreground(RgbPointer).Background(RgbBackground).Bold(true))

	r.drawPointedLabel(l, v, pal)
}

// drawPointedLabel writes the entry currently under the pointer on the
// label row beneath the disc.
func (r *Renderer) drawPointedLabel(l layout, v View, pal Palette) {
	n := len(v.Entries)
	if n == 0 {
		msg := "no entries yet, press e to add"
		drawTextWidth(r.screen, centered(l.wheelW, len(msg)), l.labelY,
			tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground), msg, l.wheelW)
		return
	}

	idx := spin.WinningIndex(v.Rotation, n)
	text := runewidth.Truncate(v.Entries[idx], l.wheelW-4, "…")
	style := tcell.StyleDefault.Foreground(pal.At(idx)).Background(RgbBackground).Bold(true)
	x := centered(l.wheelW, runewidth.StringWidth(text)+2)
	x = drawText(r.screen, x, l.labelY, style, "▶ ")
	drawText(r.screen, x, l.labelY, style, text)
}
