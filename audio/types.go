package audio

// SoundType identifies a synthesized effect
type SoundType int

const (
	// SoundTick is the short click played when the pointer crosses a segment
	SoundTick SoundType = iota

	// SoundWin is the fanfare played when a spin settles on a winner
	SoundWin

	// SoundError is the low blip played for rejected interactions
	SoundError
)
