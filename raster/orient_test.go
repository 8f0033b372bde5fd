package raster

import (
	"image"
	"image/color"
	"testing"
)

func makeMarker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 255
		}
	}
	// mark the top-left pixel so orientation can be checked by inspection
	i := img.PixOffset(0, 0)
	img.Pix[i+0], img.Pix[i+1], img.Pix[i+2] = 255, 0, 0
	return img
}

func TestRotate90CWMovesTopLeftToTopRight(t *testing.T) {
	src := makeMarker(5, 3)
	out := Rotate90CWNRGBA(src)
	if out.Bounds().Dx() != 3 || out.Bounds().Dy() != 5 {
		t.Fatalf("unexpected rotated bounds: %v", out.Bounds())
	}
	i := out.PixOffset(out.Bounds().Dx()-1, 0)
	if out.Pix[i+0] != 255 {
		t.Fatalf("marker pixel not at expected top-right corner after CW rotation")
	}
}

func TestAutoOrientIdentityForOrientation1(t *testing.T) {
	src := makeMarker(4, 4)
	out := AutoOrient(src, 1)
	if out != image.Image(src) {
		t.Fatalf("orientation 1 should return the image unchanged")
	}
}

func TestAutoOrientFlipVertical(t *testing.T) {
	src := makeMarker(4, 4)
	out := AutoOrient(src, 4).(*image.NRGBA)
	i := out.PixOffset(0, 3)
	if out.Pix[i+0] != 255 {
		t.Fatalf("orientation 4 should move the marker pixel to the bottom-left corner")
	}
}

func TestMakeSolidNRGBAFillsEveryPixel(t *testing.T) {
	img := MakeSolidNRGBA(3, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if uint8(r>>8) != 10 || uint8(g>>8) != 20 || uint8(b>>8) != 30 || uint8(a>>8) != 255 {
				t.Fatalf("pixel (%d,%d) doesn't match fill color: %v", x, y, img.At(x, y))
			}
		}
	}
}
