package events

import (
	"time"
)

// EventType represents the type of engine event
type EventType int

const (
	// EventSpinRequest signals player intent to start a spin
	// Trigger: InputHandler (Space/Enter in wheel mode)
	// Consumer: spin.Machine via the frame loop | Payload: nil
	EventSpinRequest EventType = iota

	// EventSegmentCrossed signals the pointer entered a new segment
	// Trigger: spin.Machine during an active spin
	// Consumer: audio.Handler | Payload: *SegmentCrossedPayload
	EventSegmentCrossed

	// EventSpinCompleted signals a spin settled and a winner resolved
	// Trigger: spin.Machine when the spin deadline is reached
	// Consumer: audio.Handler, app history/banner | Payload: *SpinCompletedPayload
	EventSpinCompleted

	// EventEntriesReloaded signals the entries file changed on disk and reloaded
	// Trigger: entries.Watcher
	// Consumer: app (applies the new list when idle) | Payload: *EntriesReloadedPayload
	EventEntriesReloaded
)

// Event represents a single engine event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Frame     int64 // For deduplication
	Timestamp time.Time
}
