package spin

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// TestSegmentWidth verifies exact widths for common wheel sizes
func TestSegmentWidth(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{1, 360},
		{2, 180},
		{3, 120},
		{4, 90},
		{6, 60},
		{8, 45},
		{360, 1},
	}
	for _, c := range cases {
		if got := SegmentWidth(c.n); got != c.want {
			t.Errorf("SegmentWidth(%d): expected %v, got %v", c.n, c.want, got)
		}
	}
}

// TestWinningIndexSingleEntry verifies a one-entry wheel always wins at index 0
func TestWinningIndexSingleEntry(t *testing.T) {
	for _, rotation := range []float64{0, 90, 360, 3780, -123.4, 1e6} {
		if got := WinningIndex(rotation, 1); got != 0 {
			t.Errorf("WinningIndex(%v, 1): expected 0, got %d", rotation, got)
		}
	}
}

// TestWinningIndexKnownRotations checks hand-computed mappings for n=4
func TestWinningIndexKnownRotations(t *testing.T) {
	// With n=4 the widths are 90 degrees; the pointer sits at 90, so at
	// rotation 0 the face angle under the pointer is 90 -> segment 1
	cases := []struct {
		rotation float64
		want     int
	}{
		{0, 1},
		{45, 0},
		{90, 0},
		{90.5, 3},
		{180, 3},
		{270, 2},
		{360, 1},
		{3780, 3}, // 3780 mod 360 = 180
		{-90, 2},
	}
	for _, c := range cases {
		if got := WinningIndex(c.rotation, 4); got != c.want {
			t.Errorf("WinningIndex(%v, 4): expected %d, got %d", c.rotation, c.want, got)
		}
	}
}

// TestWinningIndexBoundaryOwnership verifies a pointer landing exactly on a
// segment line resolves to the segment that starts there
func TestWinningIndexBoundaryOwnership(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6, 8, 12} {
		w := SegmentWidth(n)
		for k := 0; k < n; k++ {
			// Rotation that puts face angle k*w exactly under the pointer
			rotation := PointerAngle - float64(k)*w
			if got := WinningIndex(rotation, n); got != k {
				t.Errorf("n=%d k=%d rotation=%v: expected %d, got %d", n, k, rotation, got, k)
			}
		}
	}
}

// TestWinningIndexNonPositiveCount verifies the degenerate guard
func TestWinningIndexNonPositiveCount(t *testing.T) {
	if got := WinningIndex(123, 0); got != 0 {
		t.Errorf("Expected 0 for n=0, got %d", got)
	}
	if got := WinningIndex(123, -5); got != 0 {
		t.Errorf("Expected 0 for n=-5, got %d", got)
	}
}

// TestPropertyWinningIndexInRange: for all rotations and n >= 1 the index
// stays within [0, n-1]
func TestPropertyWinningIndexInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		rotation := rapid.Float64Range(-1e9, 1e9).Draw(t, "rotation")
		idx := WinningIndex(rotation, n)
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range for n=%d rotation=%v", idx, n, rotation)
		}
	})
}

// TestPropertyWinningIndexPeriodic: adding full turns never changes the
// winner away from segment boundaries
func TestPropertyWinningIndexPeriodic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 120).Draw(t, "n")
		rotation := rapid.Float64Range(-7200, 7200).Draw(t, "rotation")
		turns := rapid.IntRange(-20, 20).Draw(t, "turns")

		// Float rounding of rotation+360k can flip a value sitting exactly
		// on a boundary; the property is only meaningful off the lines
		w := SegmentWidth(n)
		effective := math.Mod(PointerAngle-rotation, FullCircle)
		if effective < 0 {
			effective += FullCircle
		}
		frac := math.Mod(effective, w)
		if frac < 1e-6 || w-frac < 1e-6 {
			return
		}

		shifted := rotation + FullCircle*float64(turns)
		if WinningIndex(rotation, n) != WinningIndex(shifted, n) {
			t.Fatalf("periodicity broken: n=%d rotation=%v turns=%d", n, rotation, turns)
		}
	})
}

// TestPropertyWinningIndexBoundary: rotations placing the pointer exactly on
// the k-th segment line resolve to segment k mod n. Widths are restricted to
// exact integer degrees so the boundary value is float-representable.
func TestPropertyWinningIndexBoundary(t *testing.T) {
	divisors := []int{1, 2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 18, 20, 24, 30, 36, 40, 45, 60, 72, 90, 120, 180, 360}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.SampledFrom(divisors).Draw(t, "n")
		k := rapid.IntRange(-720, 720).Draw(t, "k")
		turns := rapid.IntRange(-5, 5).Draw(t, "turns")

		w := SegmentWidth(n)
		rotation := PointerAngle - float64(k)*w + FullCircle*float64(turns)

		want := ((k % n) + n) % n
		if got := WinningIndex(rotation, n); got != want {
			t.Fatalf("boundary: n=%d k=%d turns=%d expected %d, got %d", n, k, turns, want, got)
		}
	})
}
