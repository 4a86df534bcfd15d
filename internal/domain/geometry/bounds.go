package geometry

import "math"

// ModuleSplitThreshold is the column height (cm) a column must exceed before
// a module boundary takes effect.
const ModuleSplitThreshold = 200.0

// ColumnInput is everything the resolver needs for one column. Heights are
// centimetres, shelf and module positions are metres from the floor.
type ColumnInput struct {
	Index          int
	Height         float64
	Thickness      float64
	BaseHeight     float64
	Shelves        []float64
	ModuleBoundary *float64
	TopShelves     []float64
}

// ColumnBounds are the vertical limits of one column, in centimetres.
type ColumnBounds struct {
	Height          float64 `json:"height"`
	InnerBottom     float64 `json:"inner_bottom"`
	InnerTop        float64 `json:"inner_top"`
	Split           bool    `json:"split"`
	ModuleBoundary  float64 `json:"module_boundary,omitempty"`
	BottomModuleTop float64 `json:"bottom_module_top"`
	TopModuleBottom float64 `json:"top_module_bottom,omitempty"`
}

// ResolveColumnBounds computes the inner floor/ceiling of a column and
// whether its module boundary splits it. An invalid boundary means no split.
func ResolveColumnBounds(in ColumnInput) ColumnBounds {
	t := in.Thickness
	b := ColumnBounds{
		Height:      in.Height,
		InnerBottom: in.BaseHeight + t,
		InnerTop:    in.Height - t,
	}
	b.BottomModuleTop = b.InnerTop

	if in.ModuleBoundary == nil || in.Height <= ModuleSplitThreshold {
		return b
	}
	y := *in.ModuleBoundary * 100
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return b
	}
	if y <= b.InnerBottom+t || y >= b.InnerTop-t {
		return b
	}

	b.Split = true
	b.ModuleBoundary = y
	b.BottomModuleTop = y - t
	b.TopModuleBottom = y + t
	return b
}
