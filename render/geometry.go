package render

import (
	"math"

	"github.com/lixenwraith/spinwheel/spin"
)

// discFudge widens the disc membership test by a fraction of a row so
// the rim lands on whole cells at the cardinal points.
const discFudge = 0.3

// screenAngle converts a cell offset from the wheel center into a
// screen angle in degrees: 0 at 12 o'clock, increasing clockwise, in
// [0, 360). dx must already be aspect-corrected into row units.
func screenAngle(dx, dy float64) float64 {
	deg := math.Atan2(dx, -dy) * 180.0 / math.Pi
	if deg < 0 {
		deg += spin.FullCircle
	}
	return deg
}

// segmentAt maps a screen angle onto the original segment index for a
// wheel rotated by rotation degrees. The pointer direction (3 o'clock)
// is screen angle 90, so segmentAt(90, rotation, n) agrees with
// spin.WinningIndex(rotation, n) bit for bit.
func segmentAt(s, rotation float64, n int) int {
	if n <= 0 {
		return 0
	}
	a := math.Mod(s-rotation, spin.FullCircle)
	if a < 0 {
		a += spin.FullCircle
	}
	idx := int(a / spin.SegmentWidth(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
