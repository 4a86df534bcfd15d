package response

import "wardrobe_pricing/internal/domain/geometry"

type CompartmentResponse struct {
	Key     string  `json:"key"`
	Module  string  `json:"module"`
	BottomY float64 `json:"bottom_y"`
	TopY    float64 `json:"top_y"`
	Height  float64 `json:"height"`
}

type ColumnResponse struct {
	Index        int                   `json:"index"`
	Start        float64               `json:"start"`
	End          float64               `json:"end"`
	Width        float64               `json:"width"`
	Height       float64               `json:"height"`
	Split        bool                  `json:"split"`
	Shelves      []float64             `json:"shelves"`
	Compartments []CompartmentResponse `json:"compartments"`
}

type LayoutResponse struct {
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	Depth     float64          `json:"depth"`
	Thickness float64          `json:"thickness"`
	Columns   []ColumnResponse `json:"columns"`
}

func moduleName(m geometry.Module) string {
	if m == geometry.ModuleTop {
		return "top"
	}
	return "bottom"
}

func FromLayout(l geometry.WardrobeLayout) LayoutResponse {
	res := LayoutResponse{
		Width:     l.Width,
		Height:    l.Height,
		Depth:     l.Depth,
		Thickness: l.Thickness,
		Columns:   make([]ColumnResponse, 0, len(l.Columns)),
	}
	for _, c := range l.Columns {
		col := ColumnResponse{
			Index:        c.Index,
			Start:        c.Start,
			End:          c.End,
			Width:        c.Width,
			Height:       c.Bounds.Height,
			Split:        c.Bounds.Split,
			Shelves:      c.Shelves,
			Compartments: make([]CompartmentResponse, 0, len(c.Compartments)),
		}
		if col.Shelves == nil {
			col.Shelves = []float64{}
		}
		for _, comp := range c.Compartments {
			col.Compartments = append(col.Compartments, CompartmentResponse{
				Key:     comp.Key,
				Module:  moduleName(comp.Module),
				BottomY: comp.BottomY,
				TopY:    comp.TopY,
				Height:  comp.Height,
			})
		}
		res.Columns = append(res.Columns, col)
	}
	return res
}
