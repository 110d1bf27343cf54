package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

type generator interface {
	Stream(samples [][2]float64) (int, bool)
	Err() error
}

// TestGeneratorStreamBounds verifies every generator fills buffers with
// samples inside [-1, 1]
func TestGeneratorStreamBounds(t *testing.T) {
	sr := beep.SampleRate(48000)
	gens := map[string]generator{
		"tick":    NewTickGenerator(sr),
		"fanfare": NewFanfareGenerator(sr),
		"blip":    NewBlipGenerator(sr, 120),
	}

	for name, g := range gens {
		buf := make([][2]float64, 4096)
		for round := 0; round < 16; round++ {
			n, ok := g.Stream(buf)
			if n != len(buf) || !ok {
				t.Errorf("%s: expected full buffer, got n=%d ok=%v", name, n, ok)
			}
			for i, s := range buf {
				if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
					t.Fatalf("%s: sample %d out of range: %v", name, round*len(buf)+i, s)
				}
				if s[0] != s[1] {
					t.Fatalf("%s: expected mono-identical channels, got %v", name, s)
				}
			}
		}
		if err := g.Err(); err != nil {
			t.Errorf("%s: expected nil Err, got %v", name, err)
		}
	}
}

// TestTickGeneratorDecays verifies the click dies off quickly
func TestTickGeneratorDecays(t *testing.T) {
	sr := beep.SampleRate(48000)
	g := NewTickGenerator(sr)

	buf := make([][2]float64, sr.N(100*time.Millisecond))
	g.Stream(buf)

	var early, late float64
	earlyN := sr.N(5 * time.Millisecond)
	for i := 0; i < earlyN; i++ {
		early = math.Max(early, math.Abs(buf[i][0]))
	}
	for i := len(buf) - earlyN; i < len(buf); i++ {
		late = math.Max(late, math.Abs(buf[i][0]))
	}

	if early < 0.05 {
		t.Errorf("Expected audible click onset, got peak %v", early)
	}
	if late > early/10 {
		t.Errorf("Expected click to decay, early=%v late=%v", early, late)
	}
}
