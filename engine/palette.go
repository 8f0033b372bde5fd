package engine

import "sort"

// paletteTable is the compile-time constant color table. Bounds are on
// the 0-180 hue axis and 0-255 sat/val axes. Red is split
// across two ranges to cover the 0/180 hue wraparound; both share the
// base color "red" and are merged into one CurveData downstream.
//
// Bounds and per-range tolerances are carried over from the original
// implementation's tuned detection table for semiconductor I-V plots.
var paletteTable = []ColorRange{
	{HueLower: 0, HueUpper: 15, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#FF0000", BaseColor: "red", Tolerance: 0.12},
	{HueLower: 165, HueUpper: 180, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#FF0000", BaseColor: "red", Tolerance: 0.12},
	{HueLower: 85, HueUpper: 135, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#0000FF", BaseColor: "blue", Tolerance: 0.10},
	{HueLower: 35, HueUpper: 85, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#00FF00", BaseColor: "green", Tolerance: 0.15},
	{HueLower: 10, HueUpper: 45, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#FFFF00", BaseColor: "yellow", Tolerance: 0.18},
	{HueLower: 75, HueUpper: 105, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#00FFFF", BaseColor: "cyan", Tolerance: 0.12},
	{HueLower: 135, HueUpper: 175, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#FF00FF", BaseColor: "magenta", Tolerance: 0.15},
	{HueLower: 3, HueUpper: 25, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#FFA500", BaseColor: "orange", Tolerance: 0.20},
	{HueLower: 120, HueUpper: 150, SatLower: 120, SatUpper: 255, ValLower: 100, ValUpper: 255, DisplayHex: "#800080", BaseColor: "purple", Tolerance: 0.15},
}

// Palette returns a read-only snapshot of the compile-time color table in
// its fixed iteration order, for hosts that want to list available base
// colors without running DetectColors.
func Palette() []ColorRange {
	out := make([]ColorRange, len(paletteTable))
	copy(out, paletteTable)
	return out
}

// BaseColorNames returns the distinct base-color tags in fixed palette
// order, deduplicated (red's two hue ranges collapse to one entry).
func BaseColorNames() []string {
	seen := make(map[string]bool, len(paletteTable))
	var names []string
	for _, r := range paletteTable {
		if seen[r.BaseColor] {
			continue
		}
		seen[r.BaseColor] = true
		names = append(names, r.BaseColor)
	}
	return names
}

// rangesForBaseColor returns every ColorRange entry sharing the given base
// color tag, in fixed palette order.
func rangesForBaseColor(base string) []ColorRange {
	var out []ColorRange
	for _, r := range paletteTable {
		if r.BaseColor == base {
			out = append(out, r)
		}
	}
	return out
}

// displayHexForBaseColor returns the display hex of the first palette
// entry (in fixed iteration order) carrying this base color tag.
func displayHexForBaseColor(base string) string {
	for _, r := range paletteTable {
		if r.BaseColor == base {
			return r.DisplayHex
		}
	}
	return "#000000"
}

// sortDetectedColorsByCount orders detected colors by pixel count
// descending. sort.SliceStable preserves the caller's insertion order for
// ties, which is the palette's fixed iteration order, so output is
// deterministic across runs on the same input.
func sortDetectedColorsByCount(colors []DetectedColor) {
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].PixelCount > colors[j].PixelCount
	})
}
