package engine

import "testing"

func TestRGBToHSVPureRed(t *testing.T) {
	h, s, v := rgbToHSV(255, 0, 0)
	if h != 0 {
		t.Fatalf("expected hue 0 for pure red, got %v", h)
	}
	if s != 1 || v != 1 {
		t.Fatalf("expected full saturation and value for pure red, got s=%v v=%v", s, v)
	}
}

func TestRGBToHSVAchromatic(t *testing.T) {
	h, s, v := rgbToHSV(128, 128, 128)
	if h != 0 || s != 0 {
		t.Fatalf("expected h=0 s=0 for a gray pixel, got h=%v s=%v", h, s)
	}
	if v < 0.49 || v > 0.51 {
		t.Fatalf("expected v~0.5 for mid gray, got %v", v)
	}
}

// P9: a pure red pixel and a crimson pixel near the 0/180 hue wraparound
// both classify as "red".
func TestWraparoundRedClassification(t *testing.T) {
	ranges := rangesForBaseColor("red")
	if len(ranges) != 2 {
		t.Fatalf("expected 2 red ranges for wraparound coverage, got %d", len(ranges))
	}

	h, s, v := rgbToHSV(255, 0, 0)
	if !anyMatch(h, s, v, ranges) {
		t.Fatalf("pure red (255,0,0) should match the red palette entry")
	}

	h2, s2, v2 := rgbToHSV(200, 20, 30)
	if h2 < 340 {
		t.Fatalf("test fixture assumption broke: expected crimson hue near the 360/0 wraparound, got %v", h2)
	}
	if !anyMatch(h2, s2, v2, ranges) {
		t.Fatalf("crimson (200,20,30) near the hue wraparound should match the red palette entry")
	}
}

func anyMatch(h, s, v float64, ranges []ColorRange) bool {
	for _, r := range ranges {
		if matchesRange(h, s, v, r) {
			return true
		}
	}
	return false
}

func TestHueWraparoundBoundary(t *testing.T) {
	// lower > upper triggers the OR branch of the hue test.
	r := ColorRange{HueLower: 170, HueUpper: 10, SatLower: 0, SatUpper: 255, ValLower: 0, ValUpper: 255, Tolerance: 0}
	if !matchesRange(0, 0.5, 0.5, r) {
		t.Fatalf("hue 0 should satisfy wraparound range [170,10]")
	}
	if !matchesRange(340, 0.5, 0.5, r) { // 340/2=170
		t.Fatalf("hue/2=170 should satisfy wraparound range [170,10]")
	}
	if matchesRange(180, 0.5, 0.5, r) { // 180/2=90, outside [170,10] wraparound
		t.Fatalf("hue/2=90 should not satisfy wraparound range [170,10]")
	}
}

func TestClassifyMask(t *testing.T) {
	rst := &Raster{W: 2, H: 1, Pix: []uint8{255, 0, 0, 0, 0, 255}}
	m := classify(rst, rangesForBaseColor("red"))
	if !m.At(0, 0) {
		t.Fatalf("expected (0,0) red pixel to be classified")
	}
	if m.At(1, 0) {
		t.Fatalf("expected (1,0) blue pixel to not classify as red")
	}
}
