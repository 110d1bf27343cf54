package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/spinwheel/constants"
)

// View is the presentation state for one frame, passed by value.
type View struct {
	// Wheel state
	Title    string
	Entries  []string
	Rotation float64
	Spinning bool

	// Winner banner, shown while Winner is non-empty and the wheel is idle
	Winner string

	// Side panel
	ShowHistory bool
	History     []HistoryLine

	// Status bar
	Duration time.Duration
	Muted    bool
	AudioOn  bool
}

// HistoryLine is one finished spin shown in the history panel.
type HistoryLine struct {
	Winner string
	When   time.Time
}

// layout is the per-frame screen partition: wheel box on the left,
// optional side panel on the right, status bar at the bottom.
type layout struct {
	width, height int
	wheelW        int // wheel box spans columns [0, wheelW)
	panelX        int // left column of the side panel, -1 when hidden
	statusY       int
	labelY        int // under-pointer label row
	centerCol     int
	centerRow     int
	radius        int // vertical radius in rows
}

// Renderer draws the wheel UI onto a tcell screen. All methods must be
// called from the goroutine that owns the frame loop.
type Renderer struct {
	screen tcell.Screen

	// palette cache, regenerated when the entry count changes
	palette  Palette
	paletteN int
}

func New(screen tcell.Screen) *Renderer {
	screen.SetStyle(tcell.StyleDefault.
		Foreground(RgbPanelText).
		Background(RgbBackground))
	return &Renderer{screen: screen}
}

// Screen exposes the underlying screen for event polling and teardown.
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

func (r *Renderer) paletteFor(n int) Palette {
	if n != r.paletteN {
		r.palette = NewPalette(n)
		r.paletteN = n
	}
	return r.palette
}

func (r *Renderer) computeLayout() layout {
	w, h := r.screen.Size()
	l := layout{width: w, height: h, panelX: -1}
	l.statusY = h - constants.StatusBarHeight
	l.labelY = l.statusY - 1

	l.wheelW = w
	if w-constants.SidePanelWidth >= constants.MinWheelBoxWidth {
		l.panelX = w - constants.SidePanelWidth
		l.wheelW = l.panelX
	}

	discH := l.labelY - 1 // one blank row between disc and label
	l.radius = (discH - 1) / 2
	if byWidth := int(float64(l.wheelW-4) / (2 * constants.CellAspect)); byWidth < l.radius {
		l.radius = byWidth
	}
	l.centerCol = l.wheelW / 2
	l.centerRow = discH / 2
	return l
}

// Draw renders one full frame for the wheel mode and flushes it.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	l := r.computeLayout()

	if l.radius < constants.MinWheelRadius || l.height < 2 {
		r.drawTooSmall(l)
		r.screen.Show()
		return
	}

	pal := r.paletteFor(len(v.Entries))
	r.drawWheel(l, v, pal)
	if l.panelX >= 0 {
		r.drawPanel(l, v, pal)
	}
	if v.Winner != "" && !v.Spinning {
		r.drawBanner(l, v.Winner)
	}
	r.drawStatusBar(l, v)
	r.screen.Show()
}

func (r *Renderer) drawTooSmall(l layout) {
	msg := "resize terminal to spin"
	style := tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground)
	drawText(r.screen, centered(l.width, len(msg)), l.height/2, style, msg)
}

func (r *Renderer) drawStatusBar(l layout, v View) {
	state := " IDLE "
	stateBg := RgbStateIdleBg
	if v.Spinning {
		state = " SPIN "
		stateBg = RgbStateSpinBg
	}
	x := drawText(r.screen, 0, l.statusY,
		tcell.StyleDefault.Foreground(RgbStatusText).Background(stateBg).Bold(true), state)

	sound := "on"
	if v.Muted || !v.AudioOn {
		sound = "off"
	}
	keys := "  space spin   e edit   h history   m sound:" + sound +
		"   -/+ " + formatDuration(v.Duration) + "   ? help   q quit"
	drawTextWidth(r.screen, x, l.statusY,
		tcell.StyleDefault.Foreground(RgbPanelDim).Background(RgbBackground), keys, l.width-x)
}

func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
