package engine

import (
	"image"
	"image/color"
	"math"
)

// ClassifyMaskForDebug runs classification and morphological cleanup for a
// single base color and returns the resulting mask, for hosts that want to
// inspect an intermediate stage rather than final curve points. Returns an
// empty mask for an unrecognized base color name.
func ClassifyMaskForDebug(rst *Raster, baseColor string) *Mask {
	ranges := rangesForBaseColor(baseColor)
	if len(ranges) == 0 {
		return NewMask(rst.W, rst.H)
	}
	mask := classify(rst, ranges)
	mask = morphOpen(mask)
	return filterComponents(mask)
}

// RenderMask renders a boolean mask as a grayscale image (white = set,
// black = unset) for debugging and test assertions. Never called from
// DetectColors or ExtractCurves themselves.
func RenderMask(m *Mask) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			v := uint8(0)
			if m.At(x, y) {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// GridDensityEstimate returns a coarse estimate of gridline density: the
// fraction of interior pixels whose local luminance gradient magnitude
// exceeds a fixed threshold. This is deliberately coarse — per spec,
// full grid detection (locating individual gridlines) is out of scope,
// but a density figure is cheap to compute from the same raster the
// classifier already walks and is useful as an extraction-quality signal
// (a plot with almost no gridlines is more likely to be a low-contrast
// scan where color classification will also struggle).
func GridDensityEstimate(rst *Raster) float64 {
	w, h := rst.W, rst.H
	if w < 3 || h < 3 {
		return 0
	}
	const gradientThreshold = 0.1

	edges := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gl := luminance(rst, x-1, y)
			gr := luminance(rst, x+1, y)
			gt := luminance(rst, x, y-1)
			gb := luminance(rst, x, y+1)
			gx := gr - gl
			gy := gb - gt
			if math.Sqrt(gx*gx+gy*gy) > gradientThreshold {
				edges++
			}
		}
	}
	return float64(edges) / float64((w-2)*(h-2))
}

func luminance(rst *Raster, x, y int) float64 {
	r, g, b := rst.At(x, y)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}
