// Package engine implements the curve-extraction core: identifying colored
// traces in a rasterized semiconductor-datasheet plot and reconstructing
// each as a sorted sequence of (x, y) points in the graph's logical
// coordinate system. The package holds no shared mutable state and every
// call is synchronous: ExtractCurves fans its per-color work out across
// goroutines it owns and joins them before returning, so callers can treat
// a single call as a plain blocking function from whatever goroutine they
// call it on.
package engine

// ScaleType is the axis transform applied between pixel space and logical
// units.
type ScaleType string

const (
	ScaleLinear ScaleType = "linear"
	ScaleLog    ScaleType = "log"
)

// GraphConfig carries the axis calibration a host supplies for extraction:
// the logical range of each axis, a multiplicative post-scale, and whether
// each axis is linear or logarithmic.
type GraphConfig struct {
	XMin       float64   `json:"x_min"`
	XMax       float64   `json:"x_max"`
	YMin       float64   `json:"y_min"`
	YMax       float64   `json:"y_max"`
	XScale     float64   `json:"x_scale"`
	YScale     float64   `json:"y_scale"`
	XScaleType ScaleType `json:"x_scale_type"`
	YScaleType ScaleType `json:"y_scale_type"`
	GraphType  string    `json:"graph_type"`
	XAxisName  string    `json:"x_axis_name,omitempty"`
	YAxisName  string    `json:"y_axis_name,omitempty"`
}

// ColorRange is one entry of the compile-time palette: an HSV membership
// test plus the metadata needed to report or render a match.
type ColorRange struct {
	// HueLower/HueUpper, SatLower/SatUpper, ValLower/ValUpper are all on
	// the 0-180 (hue) / 0-255 (sat, val) axes used by the membership test.
	HueLower, HueUpper uint8
	SatLower, SatUpper uint8
	ValLower, ValUpper uint8
	DisplayHex         string
	BaseColor          string
	Tolerance          float64
}

// Point is a single reconstructed sample in logical coordinates.
type Point struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Label      string   `json:"label,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// CurveMetadata summarizes a reconstructed curve.
type CurveMetadata struct {
	MinX         *float64 `json:"min_x,omitempty"`
	MaxX         *float64 `json:"max_x,omitempty"`
	MinY         *float64 `json:"min_y,omitempty"`
	MaxY         *float64 `json:"max_y,omitempty"`
	AverageSlope *float64 `json:"average_slope,omitempty"`
}

// CurveData is one extracted trace.
type CurveData struct {
	Name           string         `json:"name"`
	Color          string         `json:"color"`
	Points         []Point        `json:"points"`
	Representation string         `json:"representation,omitempty"`
	PointCount     int            `json:"point_count"`
	Metadata       *CurveMetadata `json:"metadata,omitempty"`
}

// DetectedColor is one entry of the palette ranked by prominence.
type DetectedColor struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Color       string `json:"color"`
	PixelCount  int    `json:"pixel_count"`
}

// ExtractionMetadata carries auxiliary facts about a single extraction call.
type ExtractionMetadata struct {
	ImageWidth       int      `json:"image_width,omitempty"`
	ImageHeight      int      `json:"image_height,omitempty"`
	DetectedColors   int      `json:"detected_colors,omitempty"`
	ExtractionMethod string   `json:"extraction_method,omitempty"`
	QualityScore     *float64 `json:"quality_score,omitempty"`
}

// ExtractionResult is returned once per ExtractCurves call.
type ExtractionResult struct {
	Success        bool                `json:"success"`
	Curves         []CurveData         `json:"curves"`
	TotalPoints    int                 `json:"total_points"`
	ProcessingTime float64             `json:"processing_time"`
	Error          string              `json:"error,omitempty"`
	Metadata       *ExtractionMetadata `json:"metadata,omitempty"`
}

// Mask is a W*H boolean array, row-major, true where a pixel belongs to a
// given predicate (color membership, survival past morphology, ...).
type Mask struct {
	W, H int
	Bits []bool
}

// NewMask allocates a cleared W*H mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

// At reports whether (x, y) is set. Out-of-range coordinates return false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[y*m.W+x]
}

// Set marks (x, y) as true.
func (m *Mask) Set(x, y int) {
	m.Bits[y*m.W+x] = true
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}
