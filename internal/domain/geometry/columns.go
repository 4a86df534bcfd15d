// Package geometry decomposes a wardrobe snapshot into columns and
// compartments. Every consumer (layout preview, cut list, door metrics) goes
// through the functions in this package so the decomposition cannot diverge.
package geometry

import (
	"math"
	"sort"
)

// Column is one vertical slice of the wardrobe, in centimetres from the left edge.
type Column struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Width float64 `json:"width"`
}

// BuildColumns converts centre-relative boundary positions (metres) into
// contiguous columns covering [0, widthCm]. Boundaries that fall on or
// outside the previous cut point or the right edge are dropped.
func BuildColumns(widthCm float64, boundariesM []float64) []Column {
	if widthCm <= 0 || math.IsNaN(widthCm) || math.IsInf(widthCm, 0) {
		return []Column{{Index: 0, Start: 0, End: 0, Width: 0}}
	}

	offsets := make([]float64, 0, len(boundariesM))
	for _, b := range boundariesM {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			continue
		}
		offsets = append(offsets, CenterMetersToCm(b, widthCm))
	}
	sort.Float64s(offsets)

	cuts := make([]float64, 0, len(offsets))
	prev := 0.0
	for _, x := range offsets {
		if x > prev && x < widthCm {
			cuts = append(cuts, x)
			prev = x
		}
	}

	columns := make([]Column, 0, len(cuts)+1)
	start := 0.0
	for i, end := range append(cuts, widthCm) {
		columns = append(columns, Column{Index: i, Start: start, End: end, Width: end - start})
		start = end
	}
	return columns
}

// CenterMetersToCm maps a centre-relative position in metres to an absolute
// offset in centimetres from the left edge.
func CenterMetersToCm(m, widthCm float64) float64 {
	return (m + widthCm/200) * 100
}
