package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text starting at (x, y) and returns the column after
// the last rune. Cells past the screen edge are dropped by tcell.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawTextWidth writes text truncated to maxWidth display columns,
// with an ellipsis when it does not fit.
func drawTextWidth(screen tcell.Screen, x, y int, style tcell.Style, text string, maxWidth int) int {
	if maxWidth <= 0 {
		return x
	}
	return drawText(screen, x, y, style, runewidth.Truncate(text, maxWidth, "…"))
}

// fillRow paints one rune across [x0, x1) on row y.
func fillRow(screen tcell.Screen, y, x0, x1 int, style tcell.Style, r rune) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, r, nil, style)
	}
}

// centered returns the starting column that centers a span of the
// given display width inside [0, total).
func centered(total, width int) int {
	x := (total - width) / 2
	if x < 0 {
		x = 0
	}
	return x
}
