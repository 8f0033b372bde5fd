package engine

import (
	"fmt"
	"math"
	"sort"
)

const (
	binSize       = 0.01
	outlierCutoff = 0.4 // fixed post-map units; deliberately not scaled by (y_max-y_min)
)

// reconstructCurve turns a base color's raw point cloud into a sorted,
// smoothed, scaled CurveData. The returned retention ratio is the fraction
// of raw samples that survived binning and outlier rejection, used by the
// caller as a per-curve confidence signal.
func reconstructCurve(baseColor string, pts []rawPoint, cfg GraphConfig) (CurveData, float64) {
	binned, kept, seen := binAndDenoise(pts)
	sort.Slice(binned, func(i, j int) bool { return binned[i].x < binned[j].x })

	xs := make([]float64, len(binned))
	ys := make([]float64, len(binned))
	for i, p := range binned {
		xs[i] = p.x
		ys[i] = p.y
	}

	smoothedY := smooth(ys, smoothingWindow(baseColor, len(ys)))

	points := make([]Point, len(xs))
	for i := range xs {
		sx := xs[i] * cfg.XScale
		sy := smoothedY[i] * cfg.YScale
		points[i] = Point{
			X:     sx,
			Y:     sy,
			Label: fmt.Sprintf("%.3f, %.3f", sx, sy),
		}
	}

	retention := 1.0
	if seen > 0 {
		retention = float64(kept) / float64(seen)
	}

	return CurveData{
		Name:           baseColor,
		Color:          displayHexForBaseColor(baseColor),
		Points:         points,
		Representation: baseColor,
		PointCount:     len(points),
		Metadata:       curveMetadata(points),
	}, retention
}

// binAndDenoise buckets samples by rounded x/BIN_SIZE, discards values
// with |y-median| >= outlierCutoff, and averages what's left. Buckets that
// end up with zero retained values are dropped entirely. Alongside the
// binned points it reports kept (samples that survived outlier rejection)
// and seen (total samples considered), so callers can derive a retention
// ratio as a denoising-confidence signal.
func binAndDenoise(pts []rawPoint) (out []rawPoint, kept, seen int) {
	buckets := make(map[int64][]float64)
	keysInOrder := make([]int64, 0)
	for _, p := range pts {
		k := int64(math.Round(p.x / binSize))
		if _, ok := buckets[k]; !ok {
			keysInOrder = append(keysInOrder, k)
		}
		buckets[k] = append(buckets[k], p.y)
	}

	out = make([]rawPoint, 0, len(keysInOrder))
	for _, k := range keysInOrder {
		ys := buckets[k]
		seen += len(ys)
		med := median(ys)
		sum := 0.0
		n := 0
		for _, y := range ys {
			if math.Abs(y-med) >= outlierCutoff {
				continue
			}
			sum += y
			n++
		}
		if n == 0 {
			continue
		}
		kept += n
		out = append(out, rawPoint{x: float64(k) * binSize, y: sum / float64(n)})
	}
	return out, kept, seen
}

// median returns the arithmetic median of a slice, sorting a copy so the
// caller's slice order is undisturbed.
func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

// smoothingWindow picks the distance-weighted moving-average window size
// for a base color.
func smoothingWindow(baseColor string, n int) int {
	switch baseColor {
	case "red":
		return clampWindow(n/10, 5, 25)
	case "blue":
		return clampWindow(n/12, 5, 20)
	default:
		return clampWindow(n/15, 3, 15)
	}
}

func clampWindow(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// smooth applies a distance-weighted moving average. Smoothing is skipped
// entirely when len(ys) <= w, leaving short curves untouched.
func smooth(ys []float64, w int) []float64 {
	n := len(ys)
	if n <= w {
		out := make([]float64, n)
		copy(out, ys)
		return out
	}

	out := make([]float64, n)
	half := w / 2
	for i := 0; i < n; i++ {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > n {
			hi = n
		}
		windowLen := hi - lo
		center := float64(windowLen) / 2.0

		var weightedSum, weightSum float64
		for j := lo; j < hi; j++ {
			dist := math.Abs(float64(j-lo) - center)
			weight := 1.0 / (1.0 + 0.5*dist)
			weightedSum += weight * ys[j]
			weightSum += weight
		}
		out[i] = weightedSum / weightSum
	}
	return out
}

// curveMetadata computes summary metadata (min/max bounds, average slope)
// from the final, already-scaled point sequence. Returns nil for an empty
// curve; slope is left nil for a single-point curve where it's undefined.
func curveMetadata(points []Point) *CurveMetadata {
	if len(points) == 0 {
		return nil
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	md := &CurveMetadata{MinX: &minX, MaxX: &maxX, MinY: &minY, MaxY: &maxY}
	if len(points) >= 2 {
		dx := points[len(points)-1].X - points[0].X
		dy := points[len(points)-1].Y - points[0].Y
		if dx != 0 {
			slope := dy / dx
			md.AverageSlope = &slope
		}
	}
	return md
}
