package engine

import (
	"math"
	"testing"
)

func TestMedianOddEven(t *testing.T) {
	if median([]float64{1, 2, 3}) != 2 {
		t.Fatalf("expected median of [1,2,3] = 2")
	}
	if median([]float64{1, 2, 3, 4}) != 2.5 {
		t.Fatalf("expected median of [1,2,3,4] = 2.5")
	}
}

func TestBinAndDenoiseDropsOutliers(t *testing.T) {
	pts := []rawPoint{
		{x: 0.001, y: 1.0},
		{x: 0.001, y: 1.02},
		{x: 0.001, y: 1.01},
		{x: 0.001, y: 5.0}, // far outlier, should be dropped
	}
	out, kept, seen := binAndDenoise(pts)
	if len(out) != 1 {
		t.Fatalf("expected single bucket, got %d", len(out))
	}
	if out[0].y > 1.1 || out[0].y < 0.9 {
		t.Fatalf("expected outlier-free mean near 1.0, got %v", out[0].y)
	}
	if seen != 4 {
		t.Fatalf("expected all 4 samples counted as seen, got %d", seen)
	}
	if kept != 3 {
		t.Fatalf("expected the far outlier excluded from kept, got %d", kept)
	}
}

func TestBinAndDenoiseDropsEmptyBucket(t *testing.T) {
	// a single-sample bucket always keeps its sample (it is its own median).
	pts := []rawPoint{{x: 1.0, y: 10}}
	out, kept, seen := binAndDenoise(pts)
	if len(out) != 1 || out[0].y != 10 {
		t.Fatalf("expected single surviving point, got %+v", out)
	}
	if kept != 1 || seen != 1 {
		t.Fatalf("expected kept=seen=1, got kept=%d seen=%d", kept, seen)
	}

	// two samples 1.0 apart: the median is their midpoint, 0.5 away from
	// each, which is past the 0.4 cutoff, so the bucket retains nothing
	// and is dropped.
	pts = []rawPoint{{x: 1.0, y: 0}, {x: 1.0, y: 1.0}}
	out, kept, seen = binAndDenoise(pts)
	if len(out) != 0 {
		t.Fatalf("expected the all-outlier bucket to be dropped, got %+v", out)
	}
	if kept != 0 || seen != 2 {
		t.Fatalf("expected kept=0 seen=2, got kept=%d seen=%d", kept, seen)
	}
}

func TestSmoothSkippedWhenShort(t *testing.T) {
	ys := []float64{1, 2, 3}
	out := smooth(ys, 5)
	for i := range ys {
		if out[i] != ys[i] {
			t.Fatalf("expected smoothing skipped for len<=w, got %v", out)
		}
	}
}

func TestSmoothFlattensNoise(t *testing.T) {
	ys := make([]float64, 40)
	for i := range ys {
		ys[i] = 1.0
	}
	ys[20] = 10.0 // single spike
	out := smooth(ys, 9)
	if out[20] >= 10.0 {
		t.Fatalf("expected spike to be averaged down by smoothing, got %v", out[20])
	}
	if out[20] <= 1.0 {
		t.Fatalf("expected spike to still raise the smoothed value above baseline, got %v", out[20])
	}
}

func TestSmoothingWindowByBaseColor(t *testing.T) {
	if w := smoothingWindow("red", 1000); w != 25 {
		t.Fatalf("expected red window clamped to 25, got %d", w)
	}
	if w := smoothingWindow("red", 20); w != 5 {
		t.Fatalf("expected red window clamped to 5, got %d", w)
	}
	if w := smoothingWindow("blue", 1000); w != 20 {
		t.Fatalf("expected blue window clamped to 20, got %d", w)
	}
	if w := smoothingWindow("green", 1000); w != 15 {
		t.Fatalf("expected default window clamped to 15, got %d", w)
	}
}

func TestReconstructCurveSortedAndLabeled(t *testing.T) {
	cfg := GraphConfig{XMin: 0, XMax: 1, YMin: 0, YMax: 1, XScale: 1, YScale: 1, XScaleType: ScaleLinear, YScaleType: ScaleLinear}
	pts := []rawPoint{
		{x: 0.50, y: 0.5},
		{x: 0.10, y: 0.2},
		{x: 0.30, y: 0.35},
	}
	cd, retention := reconstructCurve("red", pts, cfg)
	if retention != 1.0 {
		t.Fatalf("expected full retention with no outliers, got %v", retention)
	}
	for i := 1; i < len(cd.Points); i++ {
		if cd.Points[i-1].X > cd.Points[i].X {
			t.Fatalf("expected points sorted ascending by x, got %+v", cd.Points)
		}
	}
	if cd.PointCount != len(cd.Points) {
		t.Fatalf("point_count must equal len(points)")
	}
	if cd.Color != "#FF0000" {
		t.Fatalf("expected red display hex, got %s", cd.Color)
	}
	for _, p := range cd.Points {
		if p.Label == "" {
			t.Fatalf("expected a non-empty label on every point")
		}
	}
}

func TestCurveMetadataSlope(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 2}}
	md := curveMetadata(points)
	if md == nil || md.AverageSlope == nil {
		t.Fatalf("expected average slope to be populated")
	}
	if math.Abs(*md.AverageSlope-2.0) > 1e-9 {
		t.Fatalf("expected slope 2.0, got %v", *md.AverageSlope)
	}
}
