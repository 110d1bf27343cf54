package spin

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/spinwheel/events"
)

// State identifies the machine's animation mode
type State int

const (
	StateIdle State = iota
	StateSpinning
)

// BaseSpinDegrees is the guaranteed travel of every spin: ten full turns.
// The random component adds up to one more turn on top.
const BaseSpinDegrees = 10 * FullCircle

// idleWrapDegrees bounds idle rotation growth. A multiple of a full circle,
// so wrapping never changes the segment under the pointer.
const idleWrapDegrees = 1000 * FullCircle

// EntrySource supplies the ordered entry list. The machine reads it once per
// trigger and snapshots the result; later mutations never affect an active
// session.
type EntrySource interface {
	Entries() []string
}

// Config carries the machine's collaborators and tuning
type Config struct {
	Duration time.Duration // Spin length, must be > 0
	IdleStep float64       // Ambient degrees added per frame while idle
	Source   Source        // Randomness for the spin delta
	Entries  EntrySource
	Queue    *events.Queue
}

// Machine owns all mutable spin state: cumulative rotation, the active
// session if any, and the segment-crossing cursor. It advances once per
// animation frame and emits edge-triggered events through the queue.
//
// Thread-Safety: none. Every method runs on the frame loop goroutine;
// external trigger requests reach it as queued EventSpinRequest events.
type Machine struct {
	cfg      Config
	rotation float64
	frame    int64
	session  *session
}

// session is the ephemeral state of one triggered spin
type session struct {
	id        uuid.UUID
	snapshot  []string
	timeline  Timeline
	started   bool // Start timestamp is captured on the first frame, not at trigger
	startTime time.Time
	cursor    int // Last segment seen under the pointer, -1 until the first frame
	completed bool
}

func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// State returns Idle or Spinning
func (m *Machine) State() State {
	if m.session != nil {
		return StateSpinning
	}
	return StateIdle
}

// Rotation returns the current cumulative rotation in degrees
func (m *Machine) Rotation() float64 {
	return m.rotation
}

// Duration returns the spin length applied to the next session
func (m *Machine) Duration() time.Duration {
	return m.cfg.Duration
}

// SetDuration changes the length of subsequent spins. An active session
// keeps the duration it was triggered with.
func (m *Machine) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	m.cfg.Duration = d
}

// Segments returns the entry list the wheel face is currently divided by:
// the session snapshot while spinning, the live list otherwise. Callers
// must not mutate the returned slice.
func (m *Machine) Segments() []string {
	if m.session != nil {
		return m.session.snapshot
	}
	return m.cfg.Entries.Entries()
}

// Trigger attempts the Idle -> Spinning transition. Triggering while a spin
// is active or while the entry list is empty is a silent no-op.
func (m *Machine) Trigger() {
	if m.session != nil {
		return
	}
	src := m.cfg.Entries.Entries()
	if len(src) == 0 {
		return
	}
	snapshot := make([]string, len(src))
	copy(snapshot, src)

	m.session = &session{
		id:       uuid.New(),
		snapshot: snapshot,
		timeline: Timeline{
			Start:    m.rotation,
			Delta:    BaseSpinDegrees + m.cfg.Source.Float64()*FullCircle,
			Duration: m.cfg.Duration,
		},
		cursor: -1,
	}
}

// Advance moves the wheel by one animation frame and returns the rotation
// to present. Zero or more events are pushed to the queue: one
// SegmentCrossed per distinct segment entered, and exactly one
// SpinCompleted when the session settles. Idle frames apply the ambient
// drift and emit nothing.
func (m *Machine) Advance(now time.Time) float64 {
	m.frame++

	s := m.session
	if s == nil {
		m.rotation += m.cfg.IdleStep
		if m.rotation >= idleWrapDegrees {
			m.rotation -= idleWrapDegrees
		}
		return m.rotation
	}

	if !s.started {
		s.started = true
		s.startTime = now
	}

	n := len(s.snapshot)
	rotation, done := s.timeline.Rotation(now.Sub(s.startTime))
	m.rotation = rotation
	idx := WinningIndex(rotation, n)

	if done {
		if !s.completed {
			s.completed = true
			m.push(events.EventSpinCompleted, &events.SpinCompletedPayload{
				SessionID: s.id,
				Winner:    s.snapshot[idx],
				Index:     idx,
				Rotation:  rotation,
			}, now)
		}
		m.session = nil
		return m.rotation
	}

	if idx != s.cursor {
		s.cursor = idx
		m.push(events.EventSegmentCrossed, &events.SegmentCrossedPayload{
			SessionID: s.id,
			Index:     idx,
		}, now)
	}

	return m.rotation
}

// HandleEvent consumes queued trigger requests
func (m *Machine) HandleEvent(ev events.Event) {
	if ev.Type == events.EventSpinRequest {
		m.Trigger()
	}
}

// EventTypes registers the machine for trigger requests
func (m *Machine) EventTypes() []events.EventType {
	return []events.EventType{events.EventSpinRequest}
}

func (m *Machine) push(t events.EventType, payload any, now time.Time) {
	m.cfg.Queue.Push(events.Event{
		Type:      t,
		Payload:   payload,
		Frame:     m.frame,
		Timestamp: now,
	})
}
