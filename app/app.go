// @focus: #app { shell }
// Package app owns the interactive shell around the spin core: modes,
// key handling, the frame loop, and the glue between collaborators.
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/spinwheel/audio"
	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/engine"
	"github.com/lixenwraith/spinwheel/entries"
	"github.com/lixenwraith/spinwheel/events"
	"github.com/lixenwraith/spinwheel/render"
	"github.com/lixenwraith/spinwheel/spin"
)

// Mode selects which screen the frame loop draws.
type Mode int

const (
	ModeSplash Mode = iota
	ModeWheel
	ModeEditor
	ModeHelp
)

// Options carries the wired collaborators into the shell.
type Options struct {
	Log      *zap.Logger
	Renderer *render.Renderer
	Queue    *events.Queue
	Router   *events.Router
	Machine  *spin.Machine
	List     *entries.List
	Title    string
	Player   *audio.Player
	Driver   *engine.Driver
	Crash    func(any)
}

// App runs the wheel UI. All state is owned by the frame goroutine;
// the input goroutine only forwards terminal events over a channel.
type App struct {
	log      *zap.Logger
	screen   tcell.Screen
	renderer *render.Renderer
	queue    *events.Queue
	router   *events.Router
	machine  *spin.Machine
	list     *entries.List
	player   *audio.Player
	driver   *engine.Driver
	history  *History
	crash    func(any)

	mode        Mode
	title       string
	rotation    float64
	winner      string
	showHistory bool
	splash      *Splash
	editor      editorState

	// Reload that arrived mid-spin, applied on completion
	pending *events.EntriesReloadedPayload
}

func New(opts Options) *App {
	a := &App{
		log:      opts.Log,
		screen:   opts.Renderer.Screen(),
		renderer: opts.Renderer,
		queue:    opts.Queue,
		router:   opts.Router,
		machine:  opts.Machine,
		list:     opts.List,
		player:   opts.Player,
		driver:   opts.Driver,
		history:  NewHistory(constants.HistoryCapacity),
		crash:    opts.Crash,
		mode:     ModeSplash,
		title:    opts.Title,
		splash:   NewSplash(time.Now()),
	}
	if a.crash == nil {
		a.crash = func(any) {}
	}
	return a
}

// History exposes the winner log for registration on the router.
func (a *App) History() *History {
	return a.history
}

// HandleEvent reacts to completions and entry reloads. Reloads landing
// mid-spin are held until the session finishes; the running session is
// unaffected either way because it snapshotted its segments at trigger.
func (a *App) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventSpinCompleted:
		p, ok := ev.Payload.(*events.SpinCompletedPayload)
		if !ok {
			return
		}
		a.winner = p.Winner
		a.log.Info("spin completed",
			zap.String("session", p.SessionID.String()),
			zap.String("winner", p.Winner),
			zap.Int("index", p.Index),
			zap.Float64("rotation", p.Rotation))
		if a.pending != nil {
			a.applyReload(a.pending)
			a.pending = nil
		}
	case events.EventEntriesReloaded:
		p, ok := ev.Payload.(*events.EntriesReloadedPayload)
		if !ok {
			return
		}
		if a.machine.State() == spin.StateSpinning {
			a.pending = p
			a.log.Debug("entries reload deferred until spin completes", zap.String("path", p.Path))
			return
		}
		a.applyReload(p)
	}
}

// EventTypes returns the events the shell itself consumes.
func (a *App) EventTypes() []events.EventType {
	return []events.EventType{events.EventSpinCompleted, events.EventEntriesReloaded}
}

func (a *App) applyReload(p *events.EntriesReloadedPayload) {
	a.list.Replace(p.Entries)
	if p.Title != "" {
		a.title = p.Title
	}
	if a.editor.cursor >= a.list.Len() {
		a.editor.cursor = a.list.Len() - 1
	}
	if a.editor.cursor < 0 {
		a.editor.cursor = 0
	}
	a.log.Info("entries reloaded", zap.String("path", p.Path), zap.Int("count", len(p.Entries)))
}

// Run drives the shell until quit. Input arrives from a dedicated
// polling goroutine; everything else happens here.
func (a *App) Run() error {
	eventChan := make(chan tcell.Event, 256)
	go a.pollEvents(eventChan)

	a.driver.Start()
	defer a.driver.Stop()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			if !a.handleTerminalEvent(ev) {
				a.log.Info("quit requested")
				return nil
			}
			// Route key-initiated events without waiting for the tick
			a.router.DispatchAll()
			a.draw()

		case now := <-a.driver.Frames():
			a.rotation = a.machine.Advance(now)
			a.router.DispatchAll()
			if a.mode == ModeSplash {
				a.splash.Update()
				if a.splash.Done(now) {
					a.mode = ModeWheel
				}
			}
			a.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
// Panics escape tcell's poller occasionally on teardown races, so it
// carries the same crash handler as the main goroutine.
func (a *App) pollEvents(out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			a.crash(r)
		}
	}()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}

func (a *App) handleTerminalEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	switch a.mode {
	case ModeSplash:
		a.mode = ModeWheel
	case ModeHelp:
		a.mode = ModeWheel
	case ModeEditor:
		a.handleEditorKey(ev)
	default:
		return a.handleWheelKey(ev)
	}
	return true
}

func (a *App) handleWheelKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		a.requestSpin()
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case ' ':
		a.requestSpin()
	case 'm':
		a.player.Toggle()
	case '+', '=':
		a.adjustDuration(constants.SpinDurationStep)
	case '-', '_':
		a.adjustDuration(-constants.SpinDurationStep)
	case 'e':
		a.openEditor()
	case 'h':
		a.showHistory = !a.showHistory
	case '?':
		a.mode = ModeHelp
	case 'q':
		return false
	}
	return true
}

// requestSpin pushes a spin request. The empty-wheel check lives here
// so the shell can give feedback; the machine itself rejects silently.
func (a *App) requestSpin() {
	if a.list.Len() == 0 {
		a.player.Play(audio.SoundError)
		return
	}
	a.queue.Push(events.Event{Type: events.EventSpinRequest})
}

func (a *App) adjustDuration(delta time.Duration) {
	d := a.machine.Duration() + delta
	if d < constants.MinSpinDuration {
		d = constants.MinSpinDuration
	}
	if d > constants.MaxSpinDuration {
		d = constants.MaxSpinDuration
	}
	a.machine.SetDuration(d)
}

func (a *App) openEditor() {
	if a.editor.cursor >= a.list.Len() {
		a.editor.cursor = 0
	}
	a.editor.editing = false
	a.editor.input = ""
	a.editor.editIndex = -1
	a.mode = ModeEditor
}

func (a *App) draw() {
	switch a.mode {
	case ModeSplash:
		a.renderer.DrawSplash(splashLines, a.splash.Offsets(), splashHint)
	case ModeEditor:
		a.renderer.DrawEditor(render.EditorView{
			Title:    a.title,
			Entries:  a.list.Entries(),
			Cursor:   a.editor.cursor,
			Editing:  a.editor.editing,
			Renaming: a.editor.editIndex >= 0,
			Input:    a.editor.input,
		})
	case ModeHelp:
		a.renderer.DrawHelp()
	default:
		a.renderer.Draw(a.view())
	}
}

func (a *App) view() render.View {
	recs := a.history.Records()
	lines := make([]render.HistoryLine, len(recs))
	for i, rec := range recs {
		lines[i] = render.HistoryLine{Winner: rec.Winner, When: rec.When}
	}
	return render.View{
		Title: a.title,
		// The face shows the session snapshot while spinning, so mid-spin
		// edits cannot redraw the segment division under the pointer
		Entries:     a.machine.Segments(),
		Rotation:    a.rotation,
		Spinning:    a.machine.State() == spin.StateSpinning,
		Winner:      a.winner,
		ShowHistory: a.showHistory,
		History:     lines,
		Duration:    a.machine.Duration(),
		Muted:       a.player.Muted(),
		AudioOn:     a.player.Available(),
	}
}
