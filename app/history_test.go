package app

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/events"
)

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(10)
	for _, name := range []string{"alpha", "bravo", "charlie"} {
		h.Add(Record{Winner: name})
	}

	recs := h.Records()
	if len(recs) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(recs))
	}
	if recs[0].Winner != "charlie" || recs[2].Winner != "alpha" {
		t.Errorf("Expected newest first, got %v", recs)
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 8; i++ {
		h.Add(Record{Index: i})
	}

	if h.Len() != 5 {
		t.Fatalf("Expected capacity 5, got %d", h.Len())
	}
	recs := h.Records()
	if recs[0].Index != 7 {
		t.Errorf("Expected newest record index 7, got %d", recs[0].Index)
	}
	if recs[4].Index != 3 {
		t.Errorf("Expected oldest surviving record index 3, got %d", recs[4].Index)
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(0)
	if h.limit != constants.HistoryCapacity {
		t.Errorf("Expected default capacity %d, got %d", constants.HistoryCapacity, h.limit)
	}
}

func TestHistoryHandleEvent(t *testing.T) {
	h := NewHistory(10)
	id := uuid.New()
	when := time.Now()

	h.HandleEvent(events.Event{
		Type: events.EventSpinCompleted,
		Payload: &events.SpinCompletedPayload{
			SessionID: id,
			Winner:    "bravo",
			Index:     1,
			Rotation:  3780,
		},
		Timestamp: when,
	})

	if h.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", h.Len())
	}
	rec := h.Records()[0]
	if rec.SessionID != id || rec.Winner != "bravo" || rec.Index != 1 || !rec.When.Equal(when) {
		t.Errorf("Record fields not captured: %+v", rec)
	}
}

func TestHistoryIgnoresOtherEvents(t *testing.T) {
	h := NewHistory(10)

	h.HandleEvent(events.Event{Type: events.EventSegmentCrossed, Payload: &events.SegmentCrossedPayload{}})
	h.HandleEvent(events.Event{Type: events.EventSpinCompleted, Payload: "not a payload"})

	if h.Len() != 0 {
		t.Errorf("Expected no records, got %d", h.Len())
	}
}

func TestHistoryRecordsIsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Add(Record{Winner: "alpha"})

	recs := h.Records()
	recs[0].Winner = "mutated"

	if h.Records()[0].Winner != "alpha" {
		t.Errorf("Records must return a copy")
	}
}
