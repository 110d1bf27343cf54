package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player manages the speaker lifecycle and mixes synthesized effects.
//
// Initialization failure is not fatal: an uninitialized player silently
// drops every Play call, so a missing audio backend never disturbs the
// animation loop.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio backend. Safe to call repeatedly.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops playback and closes the audio backend
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.mixer.Clear()
	speaker.Close()
	p.initialized = false
}

// Available reports whether the audio backend came up
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetMuted toggles sound without touching the backend
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports the current mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Toggle flips the mute state and returns the new value
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Play mixes in one effect, fire-and-forget. No-op when uninitialized or
// muted.
func (p *Player) Play(st SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	var streamer beep.Streamer
	switch st {
	case SoundTick:
		streamer = beep.Take(sampleRate.N(time.Millisecond*40), NewTickGenerator(sampleRate))
	case SoundWin:
		streamer = beep.Take(sampleRate.N(time.Millisecond*900), NewFanfareGenerator(sampleRate))
	case SoundError:
		streamer = beep.Take(sampleRate.N(time.Millisecond*150), NewBlipGenerator(sampleRate, 120))
	default:
		return
	}
	p.mixer.Add(streamer)
}
