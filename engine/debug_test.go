package engine

import "testing"

func TestRenderMaskWhiteIsSet(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(1, 1)
	img := RenderMask(m)
	if img.GrayAt(1, 1).Y != 255 {
		t.Fatalf("expected set pixel to render white")
	}
	if img.GrayAt(0, 0).Y != 0 {
		t.Fatalf("expected unset pixel to render black")
	}
}

func TestGridDensityEstimateFlatImageIsZero(t *testing.T) {
	rst := &Raster{W: 10, H: 10, Pix: make([]uint8, 10*10*3)}
	for i := range rst.Pix {
		rst.Pix[i] = 200
	}
	if d := GridDensityEstimate(rst); d != 0 {
		t.Fatalf("expected zero density for a flat-color image, got %v", d)
	}
}

func TestGridDensityEstimateTinyImage(t *testing.T) {
	rst := &Raster{W: 2, H: 2, Pix: make([]uint8, 2*2*3)}
	if d := GridDensityEstimate(rst); d != 0 {
		t.Fatalf("expected zero density for an image too small to have an interior, got %v", d)
	}
}
