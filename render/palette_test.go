package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPaletteDistinctColors(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 12, 24, 40} {
		p := NewPalette(n)
		if len(p) != n {
			t.Fatalf("Expected %d colors, got %d", n, len(p))
		}
		seen := make(map[tcell.Color]int, n)
		for i, c := range p {
			if prev, dup := seen[c]; dup {
				t.Errorf("n=%d: segments %d and %d share color %v", n, prev, i, c)
			}
			seen[c] = i
		}
	}
}

func TestPaletteNeighborsDiffer(t *testing.T) {
	// Includes the wrap pair, whose hues are closest at large n
	for _, n := range []int{2, 5, 12, 36, 40} {
		p := NewPalette(n)
		for i := range p {
			next := (i + 1) % n
			if p[i] == p[next] {
				t.Errorf("n=%d: neighbors %d and %d share color %v", n, i, next, p[i])
			}
		}
	}
}

func TestPaletteAtWraps(t *testing.T) {
	p := NewPalette(3)
	if p.At(3) != p.At(0) {
		t.Errorf("Expected At(3) to wrap to At(0)")
	}
	if p.At(-1) != p.At(2) {
		t.Errorf("Expected At(-1) to wrap to At(2)")
	}
}

func TestPaletteEmpty(t *testing.T) {
	if p := NewPalette(0); p != nil {
		t.Errorf("Expected nil palette for zero segments, got %d colors", len(p))
	}
	var p Palette
	if p.At(0) != RgbEmptyWheel {
		t.Errorf("Expected empty-wheel fill from empty palette")
	}
}
