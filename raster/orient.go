package raster

import (
	"image"
)

// AutoOrient applies EXIF orientation to a decoded plot screenshot and
// returns a corrected image.Image. A device vendor's "save as image" dialog
// or a phone camera capture of a printed datasheet page can carry any of
// the 8 EXIF orientations; the color classifier and coordinate mapper both
// assume row 0 is the top of the graph, so this must run before either
// sees the raster. orientation follows the EXIF spec (1..8); 1 or an
// out-of-range value returns img unchanged.
func AutoOrient(img image.Image, orientation int) image.Image {
	if img == nil {
		return nil
	}
	if orientation <= 1 || orientation > 8 {
		return img
	}
	src := ToNRGBA(img)
	switch orientation {
	case 2:
		return FlopNRGBA(src)
	case 3:
		return Rotate180NRGBA(src)
	case 4:
		return FlipNRGBA(src)
	case 5:
		tmp := Rotate90CWNRGBA(src)
		return FlopNRGBA(ToNRGBA(tmp))
	case 6:
		return Rotate90CWNRGBA(src)
	case 7:
		tmp := Rotate90CCWNRGBA(src)
		return FlopNRGBA(ToNRGBA(tmp))
	case 8:
		return Rotate90CCWNRGBA(src)
	default:
		return img
	}
}

// FlipNRGBA mirrors the image across the horizontal axis (top/bottom swap).
func FlipNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	w := b.Dx()
	h := b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(x, y)
			dstIdx := out.PixOffset(x, h-1-y)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

// FlopNRGBA mirrors the image across the vertical axis (left/right swap).
func FlopNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	w := b.Dx()
	h := b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(x, y)
			dstIdx := out.PixOffset(w-1-x, y)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

// Rotate180NRGBA rotates the image 180 degrees.
func Rotate180NRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	w := b.Dx()
	h := b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(x, y)
			dstIdx := out.PixOffset(w-1-x, h-1-y)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

// Rotate90CWNRGBA rotates the image 90 degrees clockwise.
func Rotate90CWNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(x, y)
			dstIdx := out.PixOffset(h-1-y, x)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}

// Rotate90CCWNRGBA rotates the image 90 degrees counter-clockwise.
func Rotate90CCWNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			srcIdx := src.PixOffset(x, y)
			dstIdx := out.PixOffset(y, w-1-x)
			copy(out.Pix[dstIdx:dstIdx+4], src.Pix[srcIdx:srcIdx+4])
		}
	}
	return out
}
