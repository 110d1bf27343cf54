package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/events"
)

// Record is one finished spin.
type Record struct {
	SessionID uuid.UUID
	Winner    string
	Index     int
	When      time.Time
}

// History keeps the most recent winners, newest first. It fills from
// completion events and is only touched on the frame goroutine.
type History struct {
	records []Record
	limit   int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = constants.HistoryCapacity
	}
	return &History{limit: limit}
}

// HandleEvent records completed spins.
func (h *History) HandleEvent(ev events.Event) {
	if ev.Type != events.EventSpinCompleted {
		return
	}
	p, ok := ev.Payload.(*events.SpinCompletedPayload)
	if !ok {
		return
	}
	h.Add(Record{
		SessionID: p.SessionID,
		Winner:    p.Winner,
		Index:     p.Index,
		When:      ev.Timestamp,
	})
}

// EventTypes returns the events History processes.
func (h *History) EventTypes() []events.EventType {
	return []events.EventType{events.EventSpinCompleted}
}

// Add prepends a record, dropping the oldest past the limit.
func (h *History) Add(rec Record) {
	if len(h.records) < h.limit {
		h.records = append(h.records, Record{})
	}
	copy(h.records[1:], h.records)
	h.records[0] = rec
}

// Records returns a newest-first copy.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	return len(h.records)
}
