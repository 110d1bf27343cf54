package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawBanner overlays the winner announcement box on the wheel area.
func (r *Renderer) drawBanner(l layout, winner string) {
	name := runewidth.Truncate(winner, l.wheelW-8, "…")
	inner := runewidth.StringWidth(name) + 6
	if inner < 14 {
		inner = 14
	}

	x0 := centered(l.wheelW, inner+2)
	y0 := l.centerRow - 2
	if y0 < 0 {
		y0 = 0
	}

	box := tcell.StyleDefault.Foreground(RgbWinnerGold).Background(RgbBackground).Bold(true)
	label := tcell.StyleDefault.Foreground(RgbBannerText).Background(RgbBackground).Bold(true)

	r.screen.SetContent(x0, y0, '╔', nil, box)
	fillRow(r.screen, y0, x0+1, x0+1+inner, box, '═')
	r.screen.SetContent(x0+1+inner, y0, '╗', nil, box)
	for row := 1; row <= 2; row++ {
		r.screen.SetContent(x0, y0+row, '║', nil, box)
		fillRow(r.screen, y0+row, x0+1, x0+1+inner, box, ' ')
		r.screen.SetContent(x0+1+inner, y0+row, '║', nil, box)
	}
	r.screen.SetContent(x0, y0+3, '╚', nil, box)
	fillRow(r.screen, y0+3, x0+1, x0+1+inner, box, '═')
	r.screen.SetContent(x0+1+inner, y0+3, '╝', nil, box)

	drawText(r.screen, x0+1+centered(inner, 6), y0+1, label, "WINNER")
	drawText(r.screen, x0+1+centered(inner, runewidth.StringWidth(name)), y0+2, box, name)
}
