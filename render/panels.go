package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/spin"
)

const legendSwatch = '■'

// drawPanel fills the right-hand column with the legend (segment color
// to entry name) and, when toggled, the recent-winner history.
func (r *Renderer) drawPanel(l layout, v View, pal Palette) {
	border := tcell.StyleDefault.Foreground(RgbPanelBorder).Background(RgbBackground)
	for y := 0; y < l.statusY; y++ {
		r.screen.SetContent(l.panelX, y, '│', nil, border)
	}

	x0 := l.panelX + 2
	cw := l.width - x0 - 1
	dim := tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground)
	text := tcell.StyleDefault.Foreground(RgbPanelText).Background(RgbBackground)
	gold := tcell.StyleDefault.Foreground(RgbWinnerGold).Background(RgbBackground).Bold(true)

	title := v.Title
	if title == "" {
		title = "wheel"
	}
	drawTextWidth(r.screen, x0, 0, gold, title, cw)
	fillRow(r.screen, 1, x0, x0+cw, border, '─')

	n := len(v.Entries)
	pointed := -1
	if n > 0 {
		pointed = spin.WinningIndex(v.Rotation, n)
	}

	y := 2
	limit := l.statusY - y
	if v.ShowHistory {
		limit = (limit - 2) / 2
	}
	if limit > constants.LegendMaxSwatches {
		limit = constants.LegendMaxSwatches
	}
	if limit < 0 {
		limit = 0
	}

	shown := n
	if shown > limit {
		shown = limit - 1
		if shown < 0 {
			shown = 0
		}
	}
	for i := 0; i < shown; i++ {
		r.screen.SetContent(x0, y, legendSwatch, nil,
			tcell.StyleDefault.Foreground(pal.At(i)).Background(RgbBackground))
		ts := text
		if i == pointed {
			ts = ts.Foreground(RgbBannerText).Bold(true)
		}
		drawTextWidth(r.screen, x0+2, y, ts, v.Entries[i], cw-2)
		y++
	}
	if n > shown {
		drawTextWidth(r.screen, x0, y, dim, fmt.Sprintf("… %d more", n-shown), cw)
		y++
	}

	if !v.ShowHistory {
		return
	}
	y++
	drawTextWidth(r.screen, x0, y, gold, "history", cw)
	y++
	if len(v.History) == 0 && y < l.statusY {
		drawTextWidth(r.screen, x0, y, dim, "no spins yet", cw)
		return
	}
	for _, h := range v.History {
		if y >= l.statusY {
			break
		}
		drawTextWidth(r.screen, x0, y, dim, h.When.Format("15:04:05")+"  "+h.Winner, cw)
		y++
	}
}
