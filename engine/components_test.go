package engine

import "testing"

// P8: a connected component of exactly 999 pixels is always rejected by
// the size gate (min size 1000 in a large-enough image).
func TestSizeGateRejects999Pixels(t *testing.T) {
	w, h := 1200, 1200 // minSize = max(1000, 1200*1200/1000) = 1440
	m := NewMask(w, h)
	// 999 pixels in a single row, far from any other component.
	for x := 0; x < 999; x++ {
		m.Set(x, 600)
	}
	out := filterComponents(m)
	if out.Count() != 0 {
		t.Fatalf("expected a 999-pixel component to be rejected, got %d surviving pixels", out.Count())
	}
}

// P7: a single-pixel-wide, 500px-tall vertical line in a 1000x1000 image
// has aspect ratio 1/500 << 0.3 and must not survive.
func TestAspectGateRejectsVerticalLine(t *testing.T) {
	w, h := 1000, 1000
	m := NewMask(w, h)
	for y := 0; y < 500; y++ {
		m.Set(500, y)
	}
	out := filterComponents(m)
	if out.Count() != 0 {
		t.Fatalf("expected vertical line component to fail the aspect gate, got %d surviving pixels", out.Count())
	}
}

func TestSizeGateAcceptsLargeComponent(t *testing.T) {
	w, h := 1000, 1000 // minSize = max(1000, 1_000_000/1000) = 1000
	m := NewMask(w, h)
	// a 100x20 block: 2000 pixels, aspect 5.0 (passes both gates)
	for y := 490; y < 510; y++ {
		for x := 450; x < 550; x++ {
			m.Set(x, y)
		}
	}
	out := filterComponents(m)
	if out.Count() != 2000 {
		t.Fatalf("expected the 100x20 block to survive fully, got %d pixels", out.Count())
	}
}

func TestFilterComponentsDeterministicOrder(t *testing.T) {
	w, h := 50, 50
	m := NewMask(w, h)
	for y := 10; y < 30; y++ {
		for x := 10; x < 20; x++ {
			m.Set(x, y)
		}
	}
	a := filterComponents(m)
	b := filterComponents(m)
	if a.Count() != b.Count() {
		t.Fatalf("expected deterministic component filtering across repeated runs")
	}
	for i := range a.Bits {
		if a.Bits[i] != b.Bits[i] {
			t.Fatalf("expected bit-identical masks across repeated runs, diverged at %d", i)
		}
	}
}
