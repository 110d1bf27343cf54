// @focus: #app { intro }
package app

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/spinwheel/constants"
)

const (
	splashFrequency = 7.0
	splashDamping   = 0.6
	splashSettleEps = 0.5

	splashHint = "press any key"
)

var splashLines = []string{
	`   _____       _       _       __         __`,
	`  / ___/____  (_)___  | |     / /_  ___  / /`,
	`  \__ \/ __ \/ / __ \ | | /| / / _ \/ _ \/ /`,
	` ___/ / /_/ / / / / / | |/ |/ /  __/  __/ /`,
	`/____/ .___/_/_/ /_/  |__/|__/\___/\___/_/`,
	`    /_/`,
}

// Splash animates the title rows sliding in on damped springs, one
// spring per row, alternating entry sides.
type Splash struct {
	spring  harmonica.Spring
	pos     []float64
	vel     []float64
	started time.Time
}

func NewSplash(now time.Time) *Splash {
	s := &Splash{
		spring:  harmonica.NewSpring(harmonica.FPS(60), splashFrequency, splashDamping),
		pos:     make([]float64, len(splashLines)),
		vel:     make([]float64, len(splashLines)),
		started: now,
	}
	for i := range s.pos {
		off := float64(44 + 6*i)
		if i%2 == 1 {
			off = -off
		}
		s.pos[i] = off
	}
	return s
}

// Update advances every row spring by one frame toward rest.
func (s *Splash) Update() {
	for i := range s.pos {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], 0)
	}
}

// Offsets returns the current per-row horizontal offsets in cells.
func (s *Splash) Offsets() []int {
	out := make([]int, len(s.pos))
	for i, p := range s.pos {
		out[i] = int(math.Round(p))
	}
	return out
}

// Done reports whether every row has settled or the intro timed out.
func (s *Splash) Done(now time.Time) bool {
	if now.Sub(s.started) > constants.SplashMaxDuration {
		return true
	}
	for i := range s.pos {
		if math.Abs(s.pos[i]) > splashSettleEps || math.Abs(s.vel[i]) > splashSettleEps {
			return false
		}
	}
	return true
}
