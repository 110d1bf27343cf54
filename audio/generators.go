package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// TickGenerator generates the short ratchet click heard as the pointer
// crosses a segment line
type TickGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewTickGenerator creates a tick sound generator
func NewTickGenerator(sr beep.SampleRate) *TickGenerator {
	return &TickGenerator{sr: sr}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// High-pitched strike with a very fast decay reads as a mechanical
		// click rather than a tone
		envelope := math.Exp(-t * 120)
		sample := 0.35 * envelope * math.Sin(2*math.Pi*1800*t)
		sample += 0.1 * envelope * math.Sin(2*math.Pi*3600*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}

// FanfareGenerator generates the rising arpeggio played for the winner
type FanfareGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
}

// fanfareNotes is a rising C-major arpeggio ending an octave up
var fanfareNotes = [4]float64{523.25, 659.25, 783.99, 1046.50}

// NewFanfareGenerator creates a winner fanfare generator
func NewFanfareGenerator(sr beep.SampleRate) *FanfareGenerator {
	return &FanfareGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * 180),
	}
}

func (g *FanfareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteLen
		notePos := g.pos % g.noteLen
		if idx >= len(fanfareNotes) {
			// Hold the top note and let it ring out
			idx = len(fanfareNotes) - 1
			notePos = g.pos - idx*g.noteLen
		}
		freq := fanfareNotes[idx]
		t := float64(notePos) / float64(g.sr)

		// Quick attack, gentle decay per note
		attack := math.Min(t/0.01, 1.0)
		decay := math.Exp(-t * 4)
		envelope := 0.3 * attack * decay

		sample := envelope * math.Sin(2*math.Pi*freq*t)
		sample += 0.5 * envelope * math.Sin(2*math.Pi*freq*2*t) * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FanfareGenerator) Err() error {
	return nil
}

// BlipGenerator generates a low buzz for rejected interactions
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip sound generator
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
