package engine

import "testing"

func TestMorphOpenRemovesSinglePixelNoise(t *testing.T) {
	m := NewMask(9, 9)
	m.Set(4, 4) // isolated single pixel, no 3x3 neighborhood fully set
	out := morphOpen(m)
	if out.Count() != 0 {
		t.Fatalf("expected isolated pixel to be removed by opening, got %d set bits", out.Count())
	}
}

func TestMorphOpenKeepsSolidBlock(t *testing.T) {
	m := NewMask(9, 9)
	for y := 1; y <= 7; y++ {
		for x := 1; x <= 7; x++ {
			m.Set(x, y)
		}
	}
	out := morphOpen(m)
	// the interior of a solid 7x7 block should survive; exact border
	// shrinkage from erosion+dilation is implementation detail, so just
	// check the center pixel and that something survives.
	if !out.At(4, 4) {
		t.Fatalf("expected center of solid block to survive opening")
	}
	if out.Count() == 0 {
		t.Fatalf("expected a solid block to survive opening")
	}
}

func TestErodeBorderAlwaysFalse(t *testing.T) {
	m := NewMask(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m.Set(x, y)
		}
	}
	out := erode(m)
	for x := 0; x < 5; x++ {
		if out.At(x, 0) || out.At(x, 4) {
			t.Fatalf("expected border row to remain false after erosion")
		}
	}
	for y := 0; y < 5; y++ {
		if out.At(0, y) || out.At(4, y) {
			t.Fatalf("expected border column to remain false after erosion")
		}
	}
	if !out.At(2, 2) {
		t.Fatalf("expected interior pixel to survive erosion of a fully-set mask")
	}
}
