package audio

import (
	"github.com/lixenwraith/spinwheel/events"
)

// Handler maps engine events onto sounds. Registered with the event router
// and invoked on the main loop; playback itself is fire-and-forget.
type Handler struct {
	player *Player
}

// NewHandler creates the audio event handler
func NewHandler(player *Player) *Handler {
	return &Handler{player: player}
}

// HandleEvent plays segment ticks and the winner fanfare
func (h *Handler) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventSegmentCrossed:
		h.player.Play(SoundTick)
	case events.EventSpinCompleted:
		h.player.Play(SoundWin)
	}
}

// EventTypes registers the handler for spin feedback events
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{events.EventSegmentCrossed, events.EventSpinCompleted}
}
