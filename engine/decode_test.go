package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDecodeImageEmptyBuffer(t *testing.T) {
	_, err := DecodeImage(nil)
	if err == nil {
		t.Fatalf("expected an error for an empty buffer")
	}
	ee, ok := err.(*EngineError)
	if !ok || ee.Kind != KindEmptyInput {
		t.Fatalf("expected KindEmptyInput, got %v", err)
	}
}

func TestDecodeImageGarbageBytes(t *testing.T) {
	_, err := DecodeImage([]byte("not an image"))
	if err == nil {
		t.Fatalf("expected an error for undecodable bytes")
	}
	ee, ok := err.(*EngineError)
	if !ok || ee.Kind != KindInvalidImage {
		t.Fatalf("expected KindInvalidImage, got %v", err)
	}
}

func TestDecodeImagePNGRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test fixture: %v", err)
	}

	rst, err := DecodeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rst.W != 4 || rst.H != 3 {
		t.Fatalf("expected a 4x3 raster, got %dx%d", rst.W, rst.H)
	}
	r, g, b := rst.At(2, 1)
	if r != 20 || g != 10 || b != 0 {
		t.Fatalf("expected pixel (2,1) = (20,10,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestFindExifTiffStartNoExif(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xDA, 0, 0}
	if _, err := findExifTiffStart(data); err == nil {
		t.Fatalf("expected an error when no EXIF segment is present")
	}
}

func TestJPEGOrientationNonJPEG(t *testing.T) {
	if _, ok := jpegOrientation([]byte{0x89, 'P', 'N', 'G'}); ok {
		t.Fatalf("expected jpegOrientation to report false for a non-JPEG buffer")
	}
}
