package audio

import (
	"testing"

	"github.com/lixenwraith/spinwheel/events"
)

// TestHandlerEventTypes verifies the handler registers for spin feedback
func TestHandlerEventTypes(t *testing.T) {
	h := NewHandler(NewPlayer())

	types := h.EventTypes()
	if len(types) != 2 {
		t.Fatalf("Expected 2 event types, got %d", len(types))
	}
	seen := map[events.EventType]bool{}
	for _, et := range types {
		seen[et] = true
	}
	if !seen[events.EventSegmentCrossed] || !seen[events.EventSpinCompleted] {
		t.Errorf("Expected crossing and completion registrations, got %v", types)
	}
}

// TestHandlerSafeWithoutBackend verifies routed events never panic when the
// audio backend is unavailable
func TestHandlerSafeWithoutBackend(t *testing.T) {
	h := NewHandler(NewPlayer())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Handler panicked without audio backend: %v", r)
		}
	}()

	h.HandleEvent(events.Event{Type: events.EventSegmentCrossed, Payload: &events.SegmentCrossedPayload{Index: 2}})
	h.HandleEvent(events.Event{Type: events.EventSpinCompleted, Payload: &events.SpinCompletedPayload{Winner: "A"}})
	h.HandleEvent(events.Event{Type: events.EventSpinRequest})
}
