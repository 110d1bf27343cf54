package spin

import (
	"math"
	"time"
)

// Timeline converts elapsed session time into a rotation angle.
//
// The curve is an ease-in-out cubic applied to square-root warped progress.
// A plain ease decelerates too early to read as a flick; the warp pushes
// most of the angular travel into the early portion of real time, leaving a
// long smooth deceleration toward the target.
type Timeline struct {
	Start    float64       // Rotation at trigger time, degrees
	Delta    float64       // Total angular travel, degrees
	Duration time.Duration // Total spin length, > 0
}

// Rotation returns the rotation at the given elapsed time since the first
// session frame, and whether the spin has completed. Once elapsed reaches
// the duration the result is exactly Start+Delta, not the eased value at
// the boundary, so float drift cannot leave the wheel short of its target.
func (tl Timeline) Rotation(elapsed time.Duration) (float64, bool) {
	if elapsed >= tl.Duration {
		return tl.Start + tl.Delta, true
	}
	p := float64(elapsed) / float64(tl.Duration)
	e := easeInOutCubic(math.Sqrt(p))
	return tl.Start + tl.Delta*e, false
}

// easeInOutCubic is the standard symmetric cubic ease on [0, 1]
func easeInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - math.Pow(-2*x+2, 3)/2
}
