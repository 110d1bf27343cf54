package events

import (
	"github.com/google/uuid"
)

// SegmentCrossedPayload identifies the segment that moved under the pointer
type SegmentCrossedPayload struct {
	SessionID uuid.UUID
	Index     int
}

// SpinCompletedPayload carries the resolved outcome of a finished spin
type SpinCompletedPayload struct {
	SessionID uuid.UUID
	Winner    string
	Index     int
	Rotation  float64 // Final cumulative rotation in degrees
}

// EntriesReloadedPayload carries a freshly loaded entries file
type EntriesReloadedPayload struct {
	Path    string
	Title   string
	Entries []string
}
