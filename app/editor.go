package app

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spinwheel/audio"
)

// editorState is the entry editor's cursor and inline input.
type editorState struct {
	cursor    int
	editing   bool
	input     string
	editIndex int // -1 while adding, the renamed index otherwise
}

func (e *editorState) down(n int) {
	if e.cursor < n-1 {
		e.cursor++
	}
}

func (e *editorState) up() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (a *App) handleEditorKey(ev *tcell.EventKey) {
	ed := &a.editor

	if ed.editing {
		switch ev.Key() {
		case tcell.KeyEscape:
			ed.editing = false
			ed.input = ""
		case tcell.KeyEnter:
			if ed.editIndex >= 0 {
				if strings.TrimSpace(ed.input) == "" {
					a.player.Play(audio.SoundError)
				} else {
					a.list.Set(ed.editIndex, ed.input)
				}
			} else {
				before := a.list.Len()
				a.list.Add(ed.input)
				if a.list.Len() > before {
					ed.cursor = a.list.Len() - 1
				} else {
					// Blank input is dropped by the list
					a.player.Play(audio.SoundError)
				}
			}
			ed.editing = false
			ed.input = ""
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			ed.input = trimLastRune(ed.input)
		case tcell.KeyRune:
			ed.input += string(ev.Rune())
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.mode = ModeWheel
		return
	case tcell.KeyDown:
		ed.down(a.list.Len())
		return
	case tcell.KeyUp:
		ed.up()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'j':
		ed.down(a.list.Len())
	case 'k':
		ed.up()
	case 'a':
		ed.editing = true
		ed.input = ""
		ed.editIndex = -1
	case 'r':
		if a.list.Len() > 0 {
			ed.editing = true
			ed.input = a.list.At(ed.cursor)
			ed.editIndex = ed.cursor
		}
	case 'd':
		a.list.Remove(ed.cursor)
		if ed.cursor >= a.list.Len() {
			ed.cursor = a.list.Len() - 1
		}
		if ed.cursor < 0 {
			ed.cursor = 0
		}
	case 'q':
		a.mode = ModeWheel
	}
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
