package engine

import "math"

// mapX converts a pixel column px (0..W) to a logical x value.
func mapX(px, w int, cfg GraphConfig) float64 {
	f := float64(px) / float64(w)
	if cfg.XScaleType == ScaleLog {
		return math.Exp(math.Log(cfg.XMin) + f*(math.Log(cfg.XMax)-math.Log(cfg.XMin)))
	}
	return f*(cfg.XMax-cfg.XMin) + cfg.XMin
}

// mapY converts a pixel row py (0..H, measured from the top) to a logical
// y value. The (H-py)/H flip accounts for image-Y growing downward while
// graph-Y grows upward.
func mapY(py, h int, cfg GraphConfig) float64 {
	f := float64(h-py) / float64(h)
	if cfg.YScaleType == ScaleLog {
		return math.Exp(math.Log(cfg.YMin) + f*(math.Log(cfg.YMax)-math.Log(cfg.YMin)))
	}
	return f*(cfg.YMax-cfg.YMin) + cfg.YMin
}

// rawPoint is a logical-space sample before binning/smoothing/scaling.
type rawPoint struct {
	x, y float64
}

// mapMaskToPoints converts every true pixel of m to a logical-space point.
func mapMaskToPoints(m *Mask, cfg GraphConfig) []rawPoint {
	var pts []rawPoint
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.At(x, y) {
				continue
			}
			pts = append(pts, rawPoint{x: mapX(x, m.W, cfg), y: mapY(y, m.H, cfg)})
		}
	}
	return pts
}
