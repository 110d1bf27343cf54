package spin

import "math"

// PointerAngle is the fixed angular position of the winner pointer in
// degrees, measured clockwise from the top of the wheel face. It sits away
// from the topmost segment boundary so a freshly built wheel does not rest
// exactly on a dividing line.
const PointerAngle = 90.0

// FullCircle is one revolution in degrees
const FullCircle = 360.0

// SegmentWidth returns the angular width in degrees of one segment on a
// wheel with n entries. n must be >= 1; callers guard the empty wheel.
func SegmentWidth(n int) float64 {
	return FullCircle / float64(n)
}

// WinningIndex returns the index of the segment under the pointer for a
// wheel rotated clockwise by rotation degrees.
//
// Segments start at face angle 0 in entry order and proceed clockwise.
// Rotating the wheel moves a segment originally at angle A to A+rotation,
// so the face angle under the pointer is (PointerAngle - rotation),
// normalized into [0, 360). A segment owns its starting boundary: a pointer
// exactly on the line between two segments resolves to the one beginning
// there.
func WinningIndex(rotation float64, n int) int {
	if n <= 0 {
		return 0
	}
	effective := math.Mod(PointerAngle-rotation, FullCircle)
	if effective < 0 {
		effective += FullCircle
	}
	idx := int(effective / SegmentWidth(n))
	// Normalizing a value just below zero can round up to a full circle,
	// which floors to n
	if idx >= n {
		idx = n - 1
	}
	return idx
}
