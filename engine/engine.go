package engine

import (
	"strings"
	"sync"
	"time"
)

// DetectColors decodes image bytes and enumerates the palette colors
// present, ranked by prominence. At most one DetectedColor is
// emitted per base-color tag: the palette is walked in its fixed order
// and a tag already emitted is skipped, so the first matching range's
// pixel count wins for tags with multiple ranges (only "red" has this
// today). The reported count is that one range's count, not the sum over
// all ranges sharing the tag.
func DetectColors(imageBytes []byte) ([]DetectedColor, error) {
	rst, err := DecodeImage(imageBytes)
	if err != nil {
		return nil, err
	}

	totalPixels := rst.W * rst.H
	minPixels := int(0.0005 * float64(totalPixels))
	if minPixels < 1 {
		minPixels = 1
	}

	var out []DetectedColor
	emitted := make(map[string]bool, len(paletteTable))
	for _, r := range paletteTable {
		if emitted[r.BaseColor] {
			continue
		}
		mask := classify(rst, []ColorRange{r})
		count := mask.Count()
		if count > minPixels {
			out = append(out, DetectedColor{
				Name:        r.BaseColor,
				DisplayName: r.BaseColor,
				Color:       r.DisplayHex,
				PixelCount:  count,
			})
			emitted[r.BaseColor] = true
		}
	}

	sortDetectedColorsByCount(out)
	return out, nil
}

// ExtractCurves runs the full pipeline for each requested, recognized base
// color and assembles an ExtractionResult. Unknown color names are
// silently ignored. A bad config produces a failed result rather than a
// Go error, but invalid image bytes still surface as a Go error since
// decoding must succeed before there's any result to fail.
func ExtractCurves(imageBytes []byte, selected []string, cfg GraphConfig) (ExtractionResult, error) {
	start := time.Now()
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return failedResult(err, start), nil
	}

	rst, err := DecodeImage(imageBytes)
	if err != nil {
		return ExtractionResult{}, err
	}

	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		wanted[strings.ToLower(strings.TrimSpace(name))] = true
	}

	// Each requested base color's classify/clean/map/reconstruct chain is
	// independent of every other color's, so they run on their own
	// goroutine. Results land in a slot fixed by the base color's position
	// in BaseColorNames(), not by goroutine completion order, so assembly
	// below stays deterministic regardless of scheduling.
	names := BaseColorNames()
	results := make([]*curveResult, len(names))
	var wg sync.WaitGroup
	for i, base := range names {
		if !wanted[base] {
			continue
		}
		wg.Add(1)
		go func(i int, base string) {
			defer wg.Done()
			ranges := rangesForBaseColor(base)
			mask := classify(rst, ranges)
			mask = morphOpen(mask)
			mask = filterComponents(mask)
			pts := mapMaskToPoints(mask, cfg)
			if len(pts) == 0 {
				return
			}
			cd, retention := reconstructCurve(base, pts, cfg)
			if cd.PointCount == 0 {
				return
			}
			results[i] = &curveResult{data: cd, retention: retention}
		}(i, base)
	}
	wg.Wait()

	var curves []CurveData
	var retentions []float64
	total := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		curves = append(curves, r.data)
		retentions = append(retentions, r.retention)
		total += r.data.PointCount
	}

	quality := qualityScore(retentions)
	return ExtractionResult{
		Success:        true,
		Curves:         curves,
		TotalPoints:    total,
		ProcessingTime: time.Since(start).Seconds(),
		Metadata: &ExtractionMetadata{
			ImageWidth:       rst.W,
			ImageHeight:      rst.H,
			DetectedColors:   len(paletteTable),
			ExtractionMethod: "curve_extraction",
			QualityScore:     quality,
		},
	}, nil
}

// curveResult pairs a reconstructed curve with its bin-retention ratio, so
// goroutines fanned out over base colors can report both without a shared
// mutable accumulator.
type curveResult struct {
	data      CurveData
	retention float64
}

func failedResult(err error, start time.Time) ExtractionResult {
	return ExtractionResult{
		Success:        false,
		Curves:         nil,
		TotalPoints:    0,
		ProcessingTime: time.Since(start).Seconds(),
		Error:          err.Error(),
	}
}

// qualityScore is the mean, across recovered curves, of the fraction of
// binned samples that survived outlier rejection in binAndDenoise. A curve
// whose bins were mostly clean of stray pixels scores close to 1; one that
// leaned heavily on the median filter to reject noise scores lower. Returns
// nil when no curves were recovered.
func qualityScore(retentions []float64) *float64 {
	if len(retentions) == 0 {
		return nil
	}
	sum := 0.0
	for _, r := range retentions {
		sum += r
	}
	v := sum / float64(len(retentions))
	return &v
}
