package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// EditorView is the presentation state for the entry editor mode.
type EditorView struct {
	Title    string
	Entries  []string
	Cursor   int
	Editing  bool
	Renaming bool
	Input    string
}

// DrawEditor renders the full-screen entry editor.
func (r *Renderer) DrawEditor(v EditorView) {
	r.screen.Clear()
	w, h := r.screen.Size()

	gold := tcell.StyleDefault.Foreground(RgbWinnerGold).Background(RgbBackground).Bold(true)
	text := tcell.StyleDefault.Foreground(RgbPanelText).Background(RgbBackground)
	dim := tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground)
	border := tcell.StyleDefault.Foreground(RgbPanelBorder).Background(RgbBackground)

	title := v.Title
	if title == "" {
		title = "wheel"
	}
	drawTextWidth(r.screen, 2, 0, gold, "edit entries: "+title, w-4)
	fillRow(r.screen, 1, 2, w-2, border, '─')

	visible := h - 4
	first := 0
	if visible > 0 && v.Cursor >= visible {
		first = v.Cursor - visible + 1
	}
	y := 2
	for i := first; i < len(v.Entries) && y < h-2; i++ {
		ts := text
		prefix := "  "
		if i == v.Cursor && !v.Editing {
			ts = text.Reverse(true)
			prefix = "> "
		}
		drawTextWidth(r.screen, 2, y, ts, prefix+v.Entries[i], w-4)
		y++
	}
	if len(v.Entries) == 0 {
		drawTextWidth(r.screen, 2, 2, dim, "empty list", w-4)
	}

	if v.Editing {
		prompt := "add: "
		if v.Renaming {
			prompt = "edit: "
		}
		x := drawText(r.screen, 2, h-1, text.Bold(true), prompt)
		x = drawTextWidth(r.screen, x, h-1, text, v.Input, w-x-2)
		r.screen.SetContent(x, h-1, '█', nil, text)
	} else {
		drawTextWidth(r.screen, 2, h-1, dim, "a add   r rename   d delete   j/k move   esc back", w-4)
	}
	r.screen.Show()
}

// DrawHelp renders the key binding reference.
func (r *Renderer) DrawHelp() {
	r.screen.Clear()
	w, h := r.screen.Size()

	gold := tcell.StyleDefault.Foreground(RgbWinnerGold).Background(RgbBackground).Bold(true)
	text := tcell.StyleDefault.Foreground(RgbPanelText).Background(RgbBackground)
	dim := tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground)

	bindings := []struct {
		key, action string
	}{
		{"space/enter", "spin the wheel"},
		{"m", "toggle sound"},
		{"-/+", "shorter/longer spin"},
		{"e", "edit entries"},
		{"h", "toggle history panel"},
		{"?", "this help"},
		{"q", "quit"},
	}

	y := (h - len(bindings) - 3) / 2
	if y < 0 {
		y = 0
	}
	x0 := centered(w, 36)
	drawText(r.screen, x0, y, gold, "key bindings")
	y += 2
	for _, b := range bindings {
		drawText(r.screen, x0+12-runewidth.StringWidth(b.key), y, gold, b.key)
		drawTextWidth(r.screen, x0+14, y, text, b.action, w-x0-14)
		y++
	}
	drawText(r.screen, x0, y+1, dim, "esc to return")
	r.screen.Show()
}

// DrawSplash renders the intro title with per-line horizontal offsets,
// which the caller animates frame by frame.
func (r *Renderer) DrawSplash(lines []string, offsets []int, hint string) {
	r.screen.Clear()
	w, h := r.screen.Size()

	gold := tcell.StyleDefault.Foreground(RgbWinnerGold).Background(RgbBackground).Bold(true)
	dim := tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground)

	y0 := (h - len(lines)) / 2
	if y0 < 0 {
		y0 = 0
	}
	for i, line := range lines {
		x := centered(w, runewidth.StringWidth(line))
		if i < len(offsets) {
			x += offsets[i]
		}
		drawText(r.screen, x, y0+i, gold, line)
	}
	if hint != "" {
		drawText(r.screen, centered(w, runewidth.StringWidth(hint)), y0+len(lines)+2, dim, hint)
	}
	r.screen.Show()
}
