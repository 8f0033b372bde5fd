package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/semidash/curvex/raster"
)

// Raster is the decoded, orientation-corrected 8-bit RGB plane the rest of
// the pipeline operates on.
type Raster struct {
	W, H int
	// Pix holds W*H*3 bytes, row-major, R G B per pixel.
	Pix []uint8
}

// At returns the (r, g, b) triple at (x, y). Callers must keep x, y in
// bounds; the hot classification loop skips the bounds check for speed.
func (r *Raster) At(x, y int) (uint8, uint8, uint8) {
	i := (y*r.W + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// DecodeImage decodes a byte buffer into an 8-bit RGB raster. An empty
// buffer is EmptyInput; a buffer the standard decoders all reject is
// InvalidImage carrying the decoder's diagnostic.
func DecodeImage(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, newError(KindEmptyInput, "image buffer is empty", nil)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, newError(KindInvalidImage, "failed to decode image", err)
	}

	if orientation, ok := jpegOrientation(data); ok && orientation > 1 {
		img = raster.AutoOrient(img, orientation)
	}

	nrgba := raster.ToNRGBA(img)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, newError(KindInvalidImage, "decoded image has zero area", nil)
	}

	pix := make([]uint8, w*h*3)
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := nrgba.PixOffset(x, y)
			pix[idx+0] = nrgba.Pix[i+0]
			pix[idx+1] = nrgba.Pix[i+1]
			pix[idx+2] = nrgba.Pix[i+2]
			idx += 3
		}
	}
	return &Raster{W: w, H: h, Pix: pix}, nil
}

// jpegOrientation looks for an EXIF orientation tag (0x0112) in a JPEG's
// APP1 segment. It returns (0, false) for non-JPEG buffers or when no tag
// is found; callers treat that the same as "no correction needed".
func jpegOrientation(data []byte) (int, bool) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, false
	}
	tiffStart, err := findExifTiffStart(data)
	if err != nil {
		return 0, false
	}
	tag, err := readOrientationTag(data, tiffStart)
	if err != nil {
		return 0, false
	}
	return tag, true
}

func findExifTiffStart(data []byte) (int, error) {
	i := 2
	for i+4 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA {
			break
		}
		if i+4 > len(data) {
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 && i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
			return i + 10, nil
		}
		if segLen <= 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1, fmt.Errorf("no exif segment")
}

// readOrientationTag reads just the IFD0 entries looking for tag 0x0112,
// a narrower pass than a full EXIF reader needs since orientation always
// lives in IFD0.
func readOrientationTag(data []byte, tiffStart int) (int, error) {
	if tiffStart+8 > len(data) {
		return 0, fmt.Errorf("tiff header truncated")
	}
	var order binary.ByteOrder
	switch {
	case data[tiffStart] == 'M' && data[tiffStart+1] == 'M':
		order = binary.BigEndian
	case data[tiffStart] == 'I' && data[tiffStart+1] == 'I':
		order = binary.LittleEndian
	default:
		return 0, fmt.Errorf("unknown tiff byte order")
	}
	ifdOffset := int(order.Uint32(data[tiffStart+4 : tiffStart+8]))
	absIfd := tiffStart + ifdOffset
	if absIfd+2 > len(data) {
		return 0, fmt.Errorf("ifd truncated")
	}
	nEntries := int(order.Uint16(data[absIfd : absIfd+2]))
	entriesBase := absIfd + 2
	for e := 0; e < nEntries; e++ {
		ent := entriesBase + e*12
		if ent+12 > len(data) {
			break
		}
		tag := order.Uint16(data[ent : ent+2])
		if tag != 0x0112 {
			continue
		}
		typ := order.Uint16(data[ent+2 : ent+4])
		valOff := data[ent+8 : ent+12]
		if typ == 3 { // SHORT
			return int(order.Uint16(valOff[:2])), nil
		}
		if typ == 4 { // LONG
			return int(order.Uint32(valOff)), nil
		}
	}
	return 0, fmt.Errorf("orientation tag not found")
}
