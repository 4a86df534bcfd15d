package geometry

import (
	"math"
	"sort"
)

// Module identifies which sub-unit of a split column a compartment belongs to.
type Module int

const (
	ModuleBottom Module = 0
	ModuleTop    Module = 1
)

// Compartment is one vertical cell of a column.
type Compartment struct {
	Key     string  `json:"key"`
	Column  int     `json:"column"`
	Module  Module  `json:"module"`
	BottomY float64 `json:"bottom_y"`
	TopY    float64 `json:"top_y"`
	Height  float64 `json:"height"`
}

// ColumnLayout is the resolved vertical stack of one column. Shelves holds
// the centre-lines (cm) of the shelves that actually produced a compartment
// boundary, bottom module first.
type ColumnLayout struct {
	Bounds       ColumnBounds  `json:"bounds"`
	Compartments []Compartment `json:"compartments"`
	Shelves      []float64     `json:"shelves"`
}

type span struct {
	bottom, top float64
}

// ResolveCompartments computes the compartments of one column and assigns
// keys A1, A2, ... counted bottom to top across both modules.
func ResolveCompartments(in ColumnInput) ColumnLayout {
	bounds := ResolveColumnBounds(in)
	t := in.Thickness

	spans, shelves := walkModule(bounds.InnerBottom, bounds.BottomModuleTop, in.Shelves, t)
	modules := make([]Module, len(spans))

	if bounds.Split {
		topSpans, topShelves := walkModule(bounds.TopModuleBottom, bounds.InnerTop, in.TopShelves, t)
		spans = append(spans, topSpans...)
		shelves = append(shelves, topShelves...)
		for range topSpans {
			modules = append(modules, ModuleTop)
		}
	}

	if len(spans) == 0 {
		spans = []span{{bottom: bounds.InnerBottom, top: bounds.InnerTop}}
		modules = []Module{ModuleBottom}
		shelves = nil
	}

	compartments := make([]Compartment, len(spans))
	for i, s := range spans {
		compartments[i] = Compartment{
			Key:     CompartmentKey(in.Index, i+1),
			Column:  in.Index,
			Module:  modules[i],
			BottomY: s.bottom,
			TopY:    s.top,
			Height:  math.Max(0, s.top-s.bottom),
		}
	}
	if shelves == nil {
		shelves = []float64{}
	}
	return ColumnLayout{Bounds: bounds, Compartments: compartments, Shelves: shelves}
}

// walkModule splits [bottom, top] at the given shelves (metres). A shelf whose
// faces would not clear the current compartment floor or the module top is
// skipped.
func walkModule(bottom, top float64, shelvesM []float64, t float64) ([]span, []float64) {
	if !(top > bottom) {
		return nil, nil
	}

	ys := make([]float64, 0, len(shelvesM))
	for _, m := range shelvesM {
		y := m * 100
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		if y > bottom && y < top {
			ys = append(ys, y)
		}
	}
	sort.Float64s(ys)

	half := t / 2
	spans := make([]span, 0, len(ys)+1)
	used := make([]float64, 0, len(ys))
	cur := bottom
	for _, y := range ys {
		if y-half <= cur || y+half >= top {
			continue
		}
		spans = append(spans, span{bottom: cur, top: y - half})
		used = append(used, y)
		cur = y + half
	}
	spans = append(spans, span{bottom: cur, top: top})
	return spans, used
}
