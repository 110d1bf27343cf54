// @focus: #sys { term }
// Package terminal provides crash-time terminal restoration. The wheel
// UI itself runs on tcell; this package only exists for the panic path,
// where tcell's own teardown cannot be trusted.
package terminal

import (
	"io"
	"os"
)

// Raw escape sequences for emergency restoration
var (
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiSGR0           = []byte("\x1b[0m")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiRIS            = []byte("\x1bc") // Reset to Initial State
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)

// EmergencyReset restores the terminal to a usable state without any
// knowledge of what mode it was left in. Safe to call from a panic
// handler.
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors
	// ignored in crash context
	resetTerminalMode()
}
